package testutils

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
)

// NewTestTrait returns a minimal valid trait record
func NewTestTrait(id string) *codex.Record {
	return &codex.Record{
		ID:         id,
		RecordType: codex.RecordTypeTrait,
		Name:       "Trait " + id,
		Summary:    "A test trait.",
		Tags:       []string{"type:trait"},
		Mechanics:  codex.Mechanics{Trait: &codex.TraitMechanics{RulesText: "Does a test thing."}},
	}
}

// NewTestAbility returns a minimal valid ability record
func NewTestAbility(id string) *codex.Record {
	return &codex.Record{
		ID:         id,
		RecordType: codex.RecordTypeAbility,
		Name:       "Ability " + id,
		Summary:    "A test ability.",
		Tags:       []string{"type:ability"},
		Mechanics:  codex.Mechanics{Ability: &codex.AbilityMechanics{RulesText: "Does a test thing."}},
	}
}

// NewTestRace returns a minimal valid race record
func NewTestRace(id string) *codex.Record {
	return &codex.Record{
		ID:         id,
		RecordType: codex.RecordTypeRace,
		Name:       "Race " + id,
		Summary:    "A test race.",
		Tags:       []string{"type:race"},
		Mechanics:  codex.Mechanics{Race: &codex.RaceMechanics{BaseSpeedFeet: 30}},
	}
}

// NewTestClass returns a minimal valid class record
func NewTestClass(id string) *codex.Record {
	return &codex.Record{
		ID:         id,
		RecordType: codex.RecordTypeClass,
		Name:       "Class " + id,
		Summary:    "A test class.",
		Tags:       []string{"type:class"},
		Mechanics:  codex.Mechanics{Class: &codex.ClassMechanics{HitDie: "d8"}},
	}
}
