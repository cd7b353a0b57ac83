// Package errors provides structured error handling for the rpg-codex project.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("record not found")
//	err := errors.InvalidArgumentf("invalid category: %q", category)
//
// Adding metadata:
//
//	err := errors.NotFound("record not found").
//	    WithMeta("record_id", recordID).
//	    WithMeta("category", category)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get published record")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateEnum("record_type", input.RecordType, allowedTypes, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Store layer:
//   - Return AlreadyExists on duplicate record IDs
//   - Return NotFound for missing records, with IDs in metadata
//
// Loader/repository layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap I/O and storage errors with context
//
// Validator layer:
//   - Content defects are Findings in a Report, not errors; errors from
//     this package are reserved for misuse of the API itself
package errors
