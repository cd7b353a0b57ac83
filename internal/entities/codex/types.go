// Package codex defines the content record entities shared across the library:
// records, their category-specific mechanics blocks, and the attribute-mod
// conventions used by races and classes.
package codex

import (
	"encoding/json"
	"regexp"
	"time"
)

// idPattern is the required shape of every record ID: lowercase words
// separated by single dashes, e.g. "race-tettari".
var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidID reports whether id matches the lowercase-with-dashes ID pattern
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Record is one entry in the content library. Base fields are shared by
// every record type; the category-specific rules live in Mechanics.
type Record struct {
	ID          string     `json:"id"`
	RecordType  RecordType `json:"recordType"`
	Name        string     `json:"name"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Source      *Source    `json:"source,omitempty"`
	Version     *Version   `json:"version,omitempty"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
	Mechanics   Mechanics  `json:"mechanics,omitempty"`
}

// Source records where a piece of content was published
type Source struct {
	Book string `json:"book"`
	Page int    `json:"page,omitempty"`
}

// Version is a record's content revision
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// dateLayouts are the accepted createdAt/updatedAt formats. Content files
// use plain dates; published manifests use RFC 3339.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a createdAt/updatedAt value
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasTag reports whether the record carries the given tag
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ReferenceField is one identifier-list field on a record together with
// the category those identifiers must resolve in.
type ReferenceField struct {
	Field    string
	Category Category
	IDs      []string
}

// ReferenceFields returns every declared identifier reference on the
// record, in schema order. Empty fields are omitted.
func (r *Record) ReferenceFields() []ReferenceField {
	var refs []ReferenceField
	add := func(field string, category Category, ids []string) {
		if len(ids) == 0 {
			return
		}
		refs = append(refs, ReferenceField{Field: field, Category: category, IDs: ids})
	}

	switch {
	case r.Mechanics.Race != nil:
		add("mechanics.innateTraits", CategoryTraits, r.Mechanics.Race.InnateTraits)
		add("mechanics.innateAbilities", CategoryAbilities, r.Mechanics.Race.InnateAbilities)
	case r.Mechanics.Class != nil:
		add("mechanics.startingTraits", CategoryTraits, r.Mechanics.Class.StartingTraits)
		add("mechanics.startingAbilities", CategoryAbilities, r.Mechanics.Class.StartingAbilities)
	case r.Mechanics.Origin != nil:
		if r.Mechanics.Origin.StartingTrait != "" {
			add("mechanics.startingTrait", CategoryTraits, []string{r.Mechanics.Origin.StartingTrait})
		}
		if r.Mechanics.Origin.StartingAbility != "" {
			add("mechanics.startingAbility", CategoryAbilities, []string{r.Mechanics.Origin.StartingAbility})
		}
	case r.Mechanics.Circle != nil:
		add("mechanics.signatureAbilities", CategoryAbilities, r.Mechanics.Circle.SignatureAbilities)
	}

	return refs
}

// GrantsAbility reports whether this record's back-link field lists the
// given ability ID. The second result is false when the record's type
// defines no back-link field at all (traits, items), in which case no
// asymmetry can be detected.
func (r *Record) GrantsAbility(abilityID string) (listed, hasBackLink bool) {
	contains := func(ids []string) bool {
		for _, id := range ids {
			if id == abilityID {
				return true
			}
		}
		return false
	}

	switch {
	case r.Mechanics.Race != nil:
		return contains(r.Mechanics.Race.InnateAbilities), true
	case r.Mechanics.Class != nil:
		return contains(r.Mechanics.Class.StartingAbilities), true
	case r.Mechanics.Circle != nil:
		return contains(r.Mechanics.Circle.SignatureAbilities), true
	case r.Mechanics.Origin != nil:
		return r.Mechanics.Origin.StartingAbility == abilityID, true
	}
	return false, false
}

// recordAlias avoids recursion in Record's custom JSON methods
type recordAlias struct {
	ID          string          `json:"id"`
	RecordType  RecordType      `json:"recordType"`
	Name        string          `json:"name"`
	Summary     string          `json:"summary"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Source      *Source         `json:"source,omitempty"`
	Version     *Version        `json:"version,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
	Mechanics   json.RawMessage `json:"mechanics,omitempty"`
}

// UnmarshalJSON decodes a record, dispatching the mechanics block to the
// variant matching recordType. Unrecognized mechanics keys are preserved
// in Mechanics.Extra for the validator to report.
func (r *Record) UnmarshalJSON(data []byte) error {
	var alias recordAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	r.ID = alias.ID
	r.RecordType = alias.RecordType
	r.Name = alias.Name
	r.Summary = alias.Summary
	r.Description = alias.Description
	r.Tags = alias.Tags
	r.Source = alias.Source
	r.Version = alias.Version
	r.CreatedAt = alias.CreatedAt
	r.UpdatedAt = alias.UpdatedAt

	mechanics, err := decodeMechanics(alias.RecordType, alias.Mechanics)
	if err != nil {
		return err
	}
	r.Mechanics = mechanics
	return nil
}

// MarshalJSON encodes the record with its mechanics variant flattened
// back into a single mechanics object, Extra keys included.
func (r *Record) MarshalJSON() ([]byte, error) {
	mechanics, err := encodeMechanics(r.Mechanics)
	if err != nil {
		return nil, err
	}

	return json.Marshal(recordAlias{
		ID:          r.ID,
		RecordType:  r.RecordType,
		Name:        r.Name,
		Summary:     r.Summary,
		Description: r.Description,
		Tags:        r.Tags,
		Source:      r.Source,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Mechanics:   mechanics,
	})
}
