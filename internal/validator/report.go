package validator

import (
	"fmt"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
)

// Severity classifies a finding
type Severity string

// Finding severities
const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Finding is one reported defect or warning
type Finding struct {
	Severity   Severity         `json:"severity"`
	RecordType codex.RecordType `json:"recordType"`
	RecordID   string           `json:"recordId"`
	Field      string           `json:"field,omitempty"`
	Message    string           `json:"message"`
}

// String renders the finding on one line
func (f Finding) String() string {
	if f.Field == "" {
		return fmt.Sprintf("%s %s/%s: %s", f.Severity, f.RecordType, f.RecordID, f.Message)
	}
	return fmt.Sprintf("%s %s/%s %s: %s", f.Severity, f.RecordType, f.RecordID, f.Field, f.Message)
}

// Report is the ordered list of findings from one validation pass.
// Findings appear in category-declaration order, then insertion order
// within a category, then check order within a record; two passes over an
// unmodified store produce identical reports.
type Report struct {
	Findings []Finding `json:"findings"`
}

// AddError appends an error finding. Exposed so callers can route store
// insertion failures (duplicate IDs) into the same report.
func (r *Report) AddError(recordType codex.RecordType, recordID, field, message string) {
	r.Findings = append(r.Findings, Finding{
		Severity:   SeverityError,
		RecordType: recordType,
		RecordID:   recordID,
		Field:      field,
		Message:    message,
	})
}

// AddWarning appends a warning finding
func (r *Report) AddWarning(recordType codex.RecordType, recordID, field, message string) {
	r.Findings = append(r.Findings, Finding{
		Severity:   SeverityWarning,
		RecordType: recordType,
		RecordID:   recordID,
		Field:      field,
		Message:    message,
	})
}

// Errors returns the error findings in report order
func (r *Report) Errors() []Finding {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning findings in report order
func (r *Report) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

func (r *Report) bySeverity(severity Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

// HasErrors reports whether any finding is an error
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the total finding count
func (r *Report) Len() int {
	return len(r.Findings)
}
