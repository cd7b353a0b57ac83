package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/validator"
)

func TestReportHelpers(t *testing.T) {
	report := &validator.Report{}
	assert.False(t, report.HasErrors())
	assert.Equal(t, 0, report.Len())

	report.AddWarning(codex.RecordTypeRace, "race-tettari", "mechanics.attributeMods", "singleton group")
	assert.False(t, report.HasErrors())

	report.AddError(codex.RecordTypeRace, "race-tettari", "mechanics.innateTraits", "dangling reference")
	assert.True(t, report.HasErrors())
	assert.Equal(t, 2, report.Len())
	assert.Len(t, report.Errors(), 1)
	assert.Len(t, report.Warnings(), 1)
}

func TestFindingString(t *testing.T) {
	f := validator.Finding{
		Severity:   validator.SeverityError,
		RecordType: codex.RecordTypeRace,
		RecordID:   "race-tettari",
		Field:      "mechanics.innateTraits",
		Message:    `reference "trait-gone" does not resolve in traits`,
	}
	assert.Equal(t,
		`ERROR race/race-tettari mechanics.innateTraits: reference "trait-gone" does not resolve in traits`,
		f.String())

	f.Field = ""
	f.Severity = validator.SeverityWarning
	f.Message = "something odd"
	assert.Equal(t, "WARNING race/race-tettari: something odd", f.String())
}
