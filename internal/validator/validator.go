// Package validator runs the full defect scan over a populated content
// store: base-field shape, tag closure, mechanics schemas, reference
// integrity, choice-group shape, and version/date sanity. The pass is
// exhaustive: no finding stops validation of the rest of the store, so
// content authors get the complete picture in one run.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/resolver"
	"github.com/KirkDiggler/rpg-codex/internal/schema"
	"github.com/KirkDiggler/rpg-codex/internal/store"
	"github.com/KirkDiggler/rpg-codex/internal/tags"
)

// Validator checks a content store against the schema registry and tag
// dictionary
type Validator struct {
	registry *schema.Registry
	tags     *tags.Dictionary
}

// Config contains configuration for the Validator
type Config struct {
	// Registry defaults to the compiled static registry when nil
	Registry *schema.Registry
	Tags     *tags.Dictionary
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Tags == nil {
		return errors.InvalidArgument("tag dictionary cannot be nil")
	}
	return nil
}

// New creates a Validator
func New(cfg *Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := cfg.Registry
	if registry == nil {
		registry = schema.NewRegistry()
	}

	return &Validator{
		registry: registry,
		tags:     cfg.Tags,
	}, nil
}

// Validate runs every check over every record and returns the complete
// report. Records are visited in category-declaration order, then
// insertion order within a category.
func (v *Validator) Validate(st *store.Store) (*Report, error) {
	res, err := resolver.New(&resolver.Config{Store: st})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	report := &Report{}
	for _, category := range st.Categories() {
		for _, record := range st.AllOf(category) {
			v.validateRecord(res, category, record, report)
		}
	}
	return report, nil
}

func (v *Validator) validateRecord(res *resolver.Resolver, category codex.Category, record *codex.Record, report *Report) {
	// Findings name the bucket's record type even when the record's own
	// recordType field is wrong or missing.
	recordType := category.RecordType()

	v.checkBaseFields(category, record, report)
	v.checkTags(recordType, record, report)
	v.checkMechanics(recordType, record, report)
	v.checkReferences(res, recordType, record, report)
	v.checkChoiceGroups(recordType, record, report)
	v.checkVersionAndDates(recordType, record, report)
}

func (v *Validator) checkBaseFields(category codex.Category, record *codex.Record, report *Report) {
	recordType := category.RecordType()

	if record.ID == "" {
		report.AddError(recordType, record.ID, "id", "is required")
	} else if !codex.ValidID(record.ID) {
		report.AddError(recordType, record.ID, "id", "must be lowercase-with-dashes")
	}

	switch {
	case record.RecordType == "":
		report.AddError(recordType, record.ID, "recordType", "is required")
	case !record.RecordType.Valid():
		report.AddError(recordType, record.ID, "recordType",
			fmt.Sprintf("unknown record type %q", record.RecordType))
	case record.RecordType != recordType:
		report.AddError(recordType, record.ID, "recordType",
			fmt.Sprintf("record type %q does not match category %q", record.RecordType, category))
	}

	if strings.TrimSpace(record.Name) == "" {
		report.AddError(recordType, record.ID, "name", "is required")
	}
	if strings.TrimSpace(record.Summary) == "" {
		report.AddError(recordType, record.ID, "summary", "is required")
	}
}

func (v *Validator) checkTags(recordType codex.RecordType, record *codex.Record, report *Report) {
	for _, tag := range record.Tags {
		if !v.tags.Contains(tag) {
			report.AddError(recordType, record.ID, "tags",
				fmt.Sprintf("tag %q is not in the tag dictionary", tag))
		}
	}

	typeTag := recordType.TypeTag()
	if !record.HasTag(typeTag) {
		report.AddError(recordType, record.ID, "tags",
			fmt.Sprintf("missing mandatory %q tag", typeTag))
	}
}

func (v *Validator) checkMechanics(recordType codex.RecordType, record *codex.Record, report *Report) {
	s, err := v.registry.SchemaFor(recordType)
	if err != nil {
		// Category set is fixed, so every bucket has a schema
		return
	}

	for _, field := range s.RequiredMechanics() {
		if !mechanicsFieldPresent(record.Mechanics, field.Name) {
			report.AddError(recordType, record.ID, "mechanics."+field.Name, "is required")
		}
	}

	if ability := record.Mechanics.Ability; ability != nil {
		if ability.Category != "" {
			if field, ok := s.MechanicsField("category"); ok && !enumContains(field.Enum, ability.Category) {
				report.AddError(recordType, record.ID, "mechanics.category",
					fmt.Sprintf("%q is not one of: %s", ability.Category, strings.Join(field.Enum, ", ")))
			}
		}
		if grantedBy := ability.GrantedBy; grantedBy != nil {
			if !codex.ValidGrantedByType(grantedBy.Type) {
				report.AddError(recordType, record.ID, "mechanics.grantedBy.type",
					fmt.Sprintf("%q cannot grant abilities", grantedBy.Type))
			}
			if grantedBy.ID == "" {
				report.AddError(recordType, record.ID, "mechanics.grantedBy.id", "is required")
			}
		}
	}

	// Unrecognized mechanics keys are tolerated but surfaced, so schema
	// drift between content variants stays visible without being fatal.
	extraKeys := make([]string, 0, len(record.Mechanics.Extra))
	for key := range record.Mechanics.Extra {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		report.AddWarning(recordType, record.ID, "mechanics."+key, "unrecognized mechanics field")
	}
}

func (v *Validator) checkReferences(res *resolver.Resolver, recordType codex.RecordType, record *codex.Record, report *Report) {
	for _, ref := range record.ReferenceFields() {
		for _, resolution := range res.Resolve(ref.IDs, ref.Category) {
			if !resolution.Found {
				report.AddError(recordType, record.ID, ref.Field,
					fmt.Sprintf("reference %q does not resolve in %s", resolution.ID, ref.Category))
			}
		}
	}

	result := res.CheckGrantedBy(record)
	if !result.Checked {
		return
	}
	if !codex.ValidGrantedByType(result.SourceType) {
		// Already reported as a schema error
		return
	}
	if !result.SourceFound {
		report.AddError(recordType, record.ID, "mechanics.grantedBy",
			fmt.Sprintf("reference %q does not resolve in %s", result.SourceID, result.SourceType.Category()))
		return
	}
	if result.HasBackLink && !result.BackLinked {
		report.AddWarning(recordType, record.ID, "mechanics.grantedBy",
			fmt.Sprintf("%s %q does not list %q back", result.SourceType, result.SourceID, record.ID))
	}
}

func (v *Validator) checkChoiceGroups(recordType codex.RecordType, record *codex.Record, report *Report) {
	mods := record.Mechanics.AttributeMods()
	if len(mods) == 0 {
		return
	}

	set := codex.ParseModSet(mods)
	for _, letter := range set.GroupLetters() {
		group := set.ChoiceGroups[letter]
		if len(group.Candidates) < 2 {
			report.AddWarning(recordType, record.ID, "mechanics.attributeMods",
				fmt.Sprintf("choice group %q has a single candidate %q", letter, group.CandidateKeys()[0]))
		}
	}
}

func (v *Validator) checkVersionAndDates(recordType codex.RecordType, record *codex.Record, report *Report) {
	if version := record.Version; version != nil {
		if version.Major < 1 {
			report.AddError(recordType, record.ID, "version.major", "must be at least 1")
		}
		if version.Minor < 0 {
			report.AddError(recordType, record.ID, "version.minor", "must not be negative")
		}
	}

	var created, updated bool
	var createdAt, updatedAt = record.CreatedAt, record.UpdatedAt

	createdTime, ok := codex.ParseDate(createdAt)
	if createdAt != "" {
		if !ok {
			report.AddError(recordType, record.ID, "createdAt",
				fmt.Sprintf("%q is not a valid date", createdAt))
		}
		created = ok
	}

	updatedTime, ok := codex.ParseDate(updatedAt)
	if updatedAt != "" {
		if !ok {
			report.AddError(recordType, record.ID, "updatedAt",
				fmt.Sprintf("%q is not a valid date", updatedAt))
		}
		updated = ok
	}

	if created && updated && updatedTime.Before(createdTime) {
		report.AddWarning(recordType, record.ID, "updatedAt", "is earlier than createdAt")
	}
}

func mechanicsFieldPresent(m codex.Mechanics, name string) bool {
	switch name {
	case "rulesText":
		if m.Trait != nil {
			return strings.TrimSpace(m.Trait.RulesText) != ""
		}
		if m.Ability != nil {
			return strings.TrimSpace(m.Ability.RulesText) != ""
		}
	case "itemType":
		if m.Item != nil {
			return strings.TrimSpace(m.Item.ItemType) != ""
		}
	}
	return false
}

func enumContains(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
