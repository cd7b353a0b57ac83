package codex

import (
	"encoding/json"
)

// Mechanics is the category-specific rules block of a record. Exactly one
// variant is populated, matching the record's type. Extra holds mechanics
// keys the schema does not recognize; they are tolerated on load and
// reported as warnings by the validator.
type Mechanics struct {
	Race       *RaceMechanics       `json:"-"`
	Class      *ClassMechanics      `json:"-"`
	Origin     *OriginMechanics     `json:"-"`
	Circle     *CircleMechanics     `json:"-"`
	Trait      *TraitMechanics      `json:"-"`
	Ability    *AbilityMechanics    `json:"-"`
	Item       *ItemMechanics       `json:"-"`
	Profession *ProfessionMechanics `json:"-"`
	Extra      map[string]any       `json:"-"`
}

// RaceMechanics holds race rules
type RaceMechanics struct {
	AttributeMods   map[string]int `json:"attributeMods,omitempty"`
	BaseSpeed       int            `json:"baseSpeed,omitempty"`
	BaseSpeedFeet   int            `json:"baseSpeedFeet,omitempty"`
	Senses          []string       `json:"senses,omitempty"`
	InnateTraits    []string       `json:"innateTraits,omitempty"`
	InnateAbilities []string       `json:"innateAbilities,omitempty"`
}

// ClassMechanics holds class rules
type ClassMechanics struct {
	PrimaryRoles      []string       `json:"primaryRoles,omitempty"`
	HitDie            string         `json:"hitDie,omitempty"`
	ResourceModel     string         `json:"resourceModel,omitempty"`
	AttributeMods     map[string]int `json:"attributeMods,omitempty"`
	StartingTraits    []string       `json:"startingTraits,omitempty"`
	StartingAbilities []string       `json:"startingAbilities,omitempty"`
}

// OriginMechanics holds origin rules
type OriginMechanics struct {
	StartingTrait   string         `json:"startingTrait,omitempty"`
	StartingAbility string         `json:"startingAbility,omitempty"`
	SkillBonuses    map[string]int `json:"skillBonuses,omitempty"`
}

// CircleMechanics holds circle rules
type CircleMechanics struct {
	FocusStat          string   `json:"focusStat,omitempty"`
	SignatureAbilities []string `json:"signatureAbilities,omitempty"`
}

// TraitMechanics holds trait rules. RulesText is required.
type TraitMechanics struct {
	RulesText string `json:"rulesText"`
}

// AbilityMechanics holds ability rules. RulesText is required.
type AbilityMechanics struct {
	RulesText  string     `json:"rulesText"`
	ActionType string     `json:"actionType,omitempty"`
	Range      string     `json:"range,omitempty"`
	Duration   string     `json:"duration,omitempty"`
	Target     string     `json:"target,omitempty"`
	Cost       string     `json:"cost,omitempty"`
	Cooldown   string     `json:"cooldown,omitempty"`
	Category   string     `json:"category,omitempty"`
	GrantedBy  *GrantedBy `json:"grantedBy,omitempty"`
}

// GrantedBy names the record that grants an ability
type GrantedBy struct {
	Type RecordType `json:"type"`
	ID   string     `json:"id"`
}

// ItemMechanics holds item rules. ItemType is required.
type ItemMechanics struct {
	ItemType   string   `json:"itemType"`
	Rarity     string   `json:"rarity,omitempty"`
	Properties []string `json:"properties,omitempty"`
	RulesText  string   `json:"rulesText,omitempty"`
}

// ProfessionMechanics holds profession rules
type ProfessionMechanics struct {
	SkillBonuses    map[string]int `json:"skillBonuses,omitempty"`
	IncomeNotes     string         `json:"incomeNotes,omitempty"`
	DowntimeOptions []string       `json:"downtimeOptions,omitempty"`
}

// mechanicsKeys lists the recognized mechanics keys per record type.
// Anything else in a mechanics block lands in Extra.
var mechanicsKeys = map[RecordType][]string{
	RecordTypeRace:       {"attributeMods", "baseSpeed", "baseSpeedFeet", "senses", "innateTraits", "innateAbilities"},
	RecordTypeClass:      {"primaryRoles", "hitDie", "resourceModel", "attributeMods", "startingTraits", "startingAbilities"},
	RecordTypeOrigin:     {"startingTrait", "startingAbility", "skillBonuses"},
	RecordTypeCircle:     {"focusStat", "signatureAbilities"},
	RecordTypeTrait:      {"rulesText"},
	RecordTypeAbility:    {"rulesText", "actionType", "range", "duration", "target", "cost", "cooldown", "category", "grantedBy"},
	RecordTypeItem:       {"itemType", "rarity", "properties", "rulesText"},
	RecordTypeProfession: {"skillBonuses", "incomeNotes", "downtimeOptions"},
}

// AttributeMods returns the attribute-mod mapping for record types that
// define one (races and classes), or nil.
func (m Mechanics) AttributeMods() map[string]int {
	switch {
	case m.Race != nil:
		return m.Race.AttributeMods
	case m.Class != nil:
		return m.Class.AttributeMods
	}
	return nil
}

// decodeMechanics unmarshals a raw mechanics block into the variant for
// the given record type, collecting unrecognized keys into Extra.
func decodeMechanics(recordType RecordType, raw json.RawMessage) (Mechanics, error) {
	var m Mechanics
	if len(raw) == 0 || string(raw) == "null" {
		return m, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return m, err
	}

	var target any
	switch recordType {
	case RecordTypeRace:
		m.Race = &RaceMechanics{}
		target = m.Race
	case RecordTypeClass:
		m.Class = &ClassMechanics{}
		target = m.Class
	case RecordTypeOrigin:
		m.Origin = &OriginMechanics{}
		target = m.Origin
	case RecordTypeCircle:
		m.Circle = &CircleMechanics{}
		target = m.Circle
	case RecordTypeTrait:
		m.Trait = &TraitMechanics{}
		target = m.Trait
	case RecordTypeAbility:
		m.Ability = &AbilityMechanics{}
		target = m.Ability
	case RecordTypeItem:
		m.Item = &ItemMechanics{}
		target = m.Item
	case RecordTypeProfession:
		m.Profession = &ProfessionMechanics{}
		target = m.Profession
	default:
		// Unknown record type: the whole block is unrecognized. The
		// validator rejects the record type itself, so keep the raw
		// keys around for the report.
		for key, value := range fields {
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return m, err
			}
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = v
		}
		return m, nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return m, err
	}

	known := make(map[string]struct{}, len(mechanicsKeys[recordType]))
	for _, key := range mechanicsKeys[recordType] {
		known[key] = struct{}{}
	}
	for key, value := range fields {
		if _, ok := known[key]; ok {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return m, err
		}
		if m.Extra == nil {
			m.Extra = make(map[string]any)
		}
		m.Extra[key] = v
	}

	return m, nil
}

// encodeMechanics flattens a mechanics variant and its Extra keys back
// into a single JSON object. Returns nil when the block is empty.
func encodeMechanics(m Mechanics) (json.RawMessage, error) {
	var variant any
	switch {
	case m.Race != nil:
		variant = m.Race
	case m.Class != nil:
		variant = m.Class
	case m.Origin != nil:
		variant = m.Origin
	case m.Circle != nil:
		variant = m.Circle
	case m.Trait != nil:
		variant = m.Trait
	case m.Ability != nil:
		variant = m.Ability
	case m.Item != nil:
		variant = m.Item
	case m.Profession != nil:
		variant = m.Profession
	}

	if variant == nil && len(m.Extra) == 0 {
		return nil, nil
	}

	merged := make(map[string]any)
	if variant != nil {
		data, err := json.Marshal(variant)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &merged); err != nil {
			return nil, err
		}
	}
	for key, value := range m.Extra {
		merged[key] = value
	}

	return json.Marshal(merged)
}
