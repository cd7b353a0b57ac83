package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/schema"
)

func TestBaseFields(t *testing.T) {
	r := schema.NewRegistry()
	base := r.BaseFields()

	byName := make(map[string]schema.Field)
	for _, f := range base {
		byName[f.Name] = f
	}

	assert.True(t, byName["id"].Required)
	assert.True(t, byName["name"].Required)
	assert.True(t, byName["summary"].Required)

	// Provenance fields stay optional: older content variants omit them
	assert.False(t, byName["source"].Required)
	assert.False(t, byName["version"].Required)
	assert.False(t, byName["createdAt"].Required)
	assert.False(t, byName["updatedAt"].Required)

	recordType, ok := byName["recordType"]
	require.True(t, ok)
	assert.Equal(t, schema.KindEnum, recordType.Kind)
	assert.Contains(t, recordType.Enum, "race")
	assert.Contains(t, recordType.Enum, "profession")
}

func TestSchemaForEveryRecordType(t *testing.T) {
	r := schema.NewRegistry()

	for _, rt := range codex.RecordTypes() {
		s, err := r.SchemaFor(rt)
		require.NoError(t, err, "record type %s", rt)
		assert.Equal(t, rt, s.RecordType)
	}

	_, err := r.SchemaFor(codex.RecordType("spell"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRequiredMechanics(t *testing.T) {
	r := schema.NewRegistry()

	testCases := []struct {
		recordType codex.RecordType
		want       []string
	}{
		{codex.RecordTypeTrait, []string{"rulesText"}},
		{codex.RecordTypeAbility, []string{"rulesText"}},
		{codex.RecordTypeItem, []string{"itemType"}},
		{codex.RecordTypeRace, nil},
		{codex.RecordTypeProfession, nil},
	}

	for _, tc := range testCases {
		s, err := r.SchemaFor(tc.recordType)
		require.NoError(t, err)

		var names []string
		for _, f := range s.RequiredMechanics() {
			names = append(names, f.Name)
		}
		assert.Equal(t, tc.want, names, "record type %s", tc.recordType)
	}
}

func TestReferenceFieldDeclarations(t *testing.T) {
	r := schema.NewRegistry()

	race, err := r.SchemaFor(codex.RecordTypeRace)
	require.NoError(t, err)

	innateTraits, ok := race.MechanicsField("innateTraits")
	require.True(t, ok)
	assert.Equal(t, schema.KindListOfIDs, innateTraits.Kind)
	assert.Equal(t, codex.CategoryTraits, innateTraits.Ref)

	ability, err := r.SchemaFor(codex.RecordTypeAbility)
	require.NoError(t, err)

	category, ok := ability.MechanicsField("category")
	require.True(t, ok)
	assert.Equal(t, schema.KindEnum, category.Kind)
	assert.Equal(t, codex.AbilityCategories(), category.Enum)

	_, ok = ability.MechanicsField("nope")
	assert.False(t, ok)
}
