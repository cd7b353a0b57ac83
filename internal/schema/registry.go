// Package schema defines the per-record-type field schemas the validator
// checks content against. Schemas are compiled once from static definitions
// and never change at runtime.
package schema

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Kind classifies what a field holds
type Kind string

// Field kinds
const (
	// KindScalar is a plain value or list of plain values
	KindScalar Kind = "scalar"
	// KindEnum is a scalar restricted to a closed value set
	KindEnum Kind = "enum"
	// KindListOfIDs is one or more record identifiers
	KindListOfIDs Kind = "list_of_ids"
	// KindMapping is a string-keyed mapping of numbers
	KindMapping Kind = "mapping"
	// KindNested is a structured sub-object
	KindNested Kind = "nested"
)

// Field describes one schema field
type Field struct {
	Name     string
	Required bool
	Kind     Kind
	// Enum is the allowed value set for KindEnum fields
	Enum []string
	// Ref is the category KindListOfIDs identifiers must resolve in;
	// empty means any record
	Ref codex.Category
}

// Schema is the field schema for one record type. Mechanics fields are
// in declaration order; base fields are shared and live on the Registry.
type Schema struct {
	RecordType codex.RecordType
	Mechanics  []Field
}

// MechanicsField returns the named mechanics field, if declared
func (s Schema) MechanicsField(name string) (Field, bool) {
	for _, f := range s.Mechanics {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredMechanics returns the mechanics fields marked required
func (s Schema) RequiredMechanics() []Field {
	var out []Field
	for _, f := range s.Mechanics {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Registry holds the compiled schemas for every record type
type Registry struct {
	base    []Field
	schemas map[codex.RecordType]Schema
}

// NewRegistry compiles the static schema definitions
func NewRegistry() *Registry {
	recordTypes := make([]string, 0)
	for _, rt := range codex.RecordTypes() {
		recordTypes = append(recordTypes, string(rt))
	}

	r := &Registry{
		// Base fields shared by every record type. Provenance and
		// versioning fields are optional: older content variants
		// predate them and "field absent" is always valid.
		base: []Field{
			{Name: "id", Required: true, Kind: KindScalar},
			{Name: "recordType", Required: true, Kind: KindEnum, Enum: recordTypes},
			{Name: "name", Required: true, Kind: KindScalar},
			{Name: "summary", Required: true, Kind: KindScalar},
			{Name: "description", Kind: KindScalar},
			{Name: "tags", Required: true, Kind: KindScalar},
			{Name: "source", Kind: KindNested},
			{Name: "version", Kind: KindNested},
			{Name: "createdAt", Kind: KindScalar},
			{Name: "updatedAt", Kind: KindScalar},
		},
		schemas: make(map[codex.RecordType]Schema),
	}

	add := func(rt codex.RecordType, mechanics ...Field) {
		r.schemas[rt] = Schema{RecordType: rt, Mechanics: mechanics}
	}

	add(codex.RecordTypeRace,
		Field{Name: "attributeMods", Kind: KindMapping},
		Field{Name: "baseSpeed", Kind: KindScalar},
		Field{Name: "baseSpeedFeet", Kind: KindScalar},
		Field{Name: "senses", Kind: KindScalar},
		Field{Name: "innateTraits", Kind: KindListOfIDs, Ref: codex.CategoryTraits},
		Field{Name: "innateAbilities", Kind: KindListOfIDs, Ref: codex.CategoryAbilities},
	)

	add(codex.RecordTypeClass,
		Field{Name: "primaryRoles", Kind: KindScalar},
		Field{Name: "hitDie", Kind: KindScalar},
		Field{Name: "resourceModel", Kind: KindScalar},
		Field{Name: "attributeMods", Kind: KindMapping},
		Field{Name: "startingTraits", Kind: KindListOfIDs, Ref: codex.CategoryTraits},
		Field{Name: "startingAbilities", Kind: KindListOfIDs, Ref: codex.CategoryAbilities},
	)

	add(codex.RecordTypeOrigin,
		Field{Name: "startingTrait", Kind: KindListOfIDs, Ref: codex.CategoryTraits},
		Field{Name: "startingAbility", Kind: KindListOfIDs, Ref: codex.CategoryAbilities},
		Field{Name: "skillBonuses", Kind: KindMapping},
	)

	add(codex.RecordTypeCircle,
		Field{Name: "focusStat", Kind: KindScalar},
		Field{Name: "signatureAbilities", Kind: KindListOfIDs, Ref: codex.CategoryAbilities},
	)

	add(codex.RecordTypeTrait,
		Field{Name: "rulesText", Required: true, Kind: KindScalar},
	)

	add(codex.RecordTypeAbility,
		Field{Name: "rulesText", Required: true, Kind: KindScalar},
		Field{Name: "actionType", Kind: KindScalar},
		Field{Name: "range", Kind: KindScalar},
		Field{Name: "duration", Kind: KindScalar},
		Field{Name: "target", Kind: KindScalar},
		Field{Name: "cost", Kind: KindScalar},
		Field{Name: "cooldown", Kind: KindScalar},
		Field{Name: "category", Kind: KindEnum, Enum: codex.AbilityCategories()},
		Field{Name: "grantedBy", Kind: KindNested},
	)

	add(codex.RecordTypeItem,
		Field{Name: "itemType", Required: true, Kind: KindScalar},
		Field{Name: "rarity", Kind: KindScalar},
		Field{Name: "properties", Kind: KindScalar},
		Field{Name: "rulesText", Kind: KindScalar},
	)

	add(codex.RecordTypeProfession,
		Field{Name: "skillBonuses", Kind: KindMapping},
		Field{Name: "incomeNotes", Kind: KindScalar},
		Field{Name: "downtimeOptions", Kind: KindScalar},
	)

	return r
}

// BaseFields returns the fields shared by every record type, in order.
// Callers must not mutate the returned slice.
func (r *Registry) BaseFields() []Field {
	out := make([]Field, len(r.base))
	copy(out, r.base)
	return out
}

// SchemaFor returns the schema for a record type.
// Returns errors.NotFound for unknown types.
func (r *Registry) SchemaFor(recordType codex.RecordType) (Schema, error) {
	s, ok := r.schemas[recordType]
	if !ok {
		return Schema{}, errors.NotFoundf("no schema for record type %q", recordType).
			WithMeta("record_type", string(recordType))
	}
	return s, nil
}
