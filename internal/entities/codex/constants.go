package codex

// RecordType identifies the kind of content a record describes
type RecordType string

// Record types
const (
	RecordTypeRace       RecordType = "race"
	RecordTypeClass      RecordType = "class"
	RecordTypeOrigin     RecordType = "origin"
	RecordTypeCircle     RecordType = "circle"
	RecordTypeTrait      RecordType = "trait"
	RecordTypeAbility    RecordType = "ability"
	RecordTypeItem       RecordType = "item"
	RecordTypeProfession RecordType = "profession"
)

// Category is the plural bucket name a record lives under in the content store
type Category string

// Store categories
const (
	CategoryRaces       Category = "races"
	CategoryClasses     Category = "classes"
	CategoryOrigins     Category = "origins"
	CategoryCircles     Category = "circles"
	CategoryTraits      Category = "traits"
	CategoryAbilities   Category = "abilities"
	CategoryItems       Category = "items"
	CategoryProfessions Category = "professions"
)

// categoryOrder is the declaration order used everywhere a stable
// cross-category iteration is needed (validation, publishing).
var categoryOrder = []Category{
	CategoryRaces,
	CategoryClasses,
	CategoryOrigins,
	CategoryCircles,
	CategoryTraits,
	CategoryAbilities,
	CategoryItems,
	CategoryProfessions,
}

var typeToCategory = map[RecordType]Category{
	RecordTypeRace:       CategoryRaces,
	RecordTypeClass:      CategoryClasses,
	RecordTypeOrigin:     CategoryOrigins,
	RecordTypeCircle:     CategoryCircles,
	RecordTypeTrait:      CategoryTraits,
	RecordTypeAbility:    CategoryAbilities,
	RecordTypeItem:       CategoryItems,
	RecordTypeProfession: CategoryProfessions,
}

var categoryToType = map[Category]RecordType{
	CategoryRaces:       RecordTypeRace,
	CategoryClasses:     RecordTypeClass,
	CategoryOrigins:     RecordTypeOrigin,
	CategoryCircles:     RecordTypeCircle,
	CategoryTraits:      RecordTypeTrait,
	CategoryAbilities:   RecordTypeAbility,
	CategoryItems:       RecordTypeItem,
	CategoryProfessions: RecordTypeProfession,
}

// Categories returns every store category in declaration order.
// Callers must not mutate the returned slice.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// RecordTypes returns every record type in category-declaration order
func RecordTypes() []RecordType {
	out := make([]RecordType, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		out = append(out, categoryToType[c])
	}
	return out
}

// Valid reports whether t is a known record type
func (t RecordType) Valid() bool {
	_, ok := typeToCategory[t]
	return ok
}

// Category returns the store category for this record type
func (t RecordType) Category() Category {
	return typeToCategory[t]
}

// TypeTag returns the mandatory type tag every record of this type must carry
func (t RecordType) TypeTag() string {
	return "type:" + string(t)
}

// Valid reports whether c is a known store category
func (c Category) Valid() bool {
	_, ok := categoryToType[c]
	return ok
}

// RecordType returns the record type stored under this category
func (c Category) RecordType() RecordType {
	return categoryToType[c]
}

// Ability categories
const (
	AbilityCategoryCombat      = "combat"
	AbilityCategoryAdventuring = "adventuring"
	AbilityCategorySocial      = "social"
	AbilityCategoryExploration = "exploration"
	AbilityCategoryOther       = "other"
)

// AbilityCategories returns the closed set of ability category values
func AbilityCategories() []string {
	return []string{
		AbilityCategoryCombat,
		AbilityCategoryAdventuring,
		AbilityCategorySocial,
		AbilityCategoryExploration,
		AbilityCategoryOther,
	}
}

// Fixed attribute keys recognized in attribute-mod mappings. Any other
// un-suffixed key is a virtual mod whose target is chosen downstream.
const (
	AttributeStrength  = "strength"
	AttributeAgility   = "agility"
	AttributeEndurance = "endurance"
	AttributeIntellect = "intellect"
	AttributeWillpower = "willpower"
	AttributePresence  = "presence"
)

var fixedAttributes = map[string]struct{}{
	AttributeStrength:  {},
	AttributeAgility:   {},
	AttributeEndurance: {},
	AttributeIntellect: {},
	AttributeWillpower: {},
	AttributePresence:  {},
}

// IsFixedAttribute reports whether key names a recognized fixed attribute
func IsFixedAttribute(key string) bool {
	_, ok := fixedAttributes[key]
	return ok
}

// grantedByTypes is the closed set of record types allowed as a
// grantedBy source on an ability.
var grantedByTypes = map[RecordType]struct{}{
	RecordTypeRace:   {},
	RecordTypeClass:  {},
	RecordTypeCircle: {},
	RecordTypeOrigin: {},
	RecordTypeTrait:  {},
	RecordTypeItem:   {},
}

// ValidGrantedByType reports whether t may appear as a grantedBy source type
func ValidGrantedByType(t RecordType) bool {
	_, ok := grantedByTypes[t]
	return ok
}

// GrantedByTypes returns the allowed grantedBy source types in
// category-declaration order
func GrantedByTypes() []RecordType {
	out := make([]RecordType, 0, len(grantedByTypes))
	for _, t := range RecordTypes() {
		if _, ok := grantedByTypes[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
