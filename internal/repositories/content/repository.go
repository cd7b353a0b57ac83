// Package content provides the interface for published-content
// distribution: a validated library is written to shared storage so
// consuming services (character builders, content browsers) can pull it
// without re-reading content packs.
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/KirkDiggler/rpg-codex/internal/repositories/content Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
)

// Repository defines the interface for published-content storage
type Repository interface {
	// Put writes one record, overwriting any previous version
	// Returns errors.InvalidArgument for nil records or empty IDs
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a record by category and ID
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCategory retrieves every published record in a category
	// Returns errors.InvalidArgument for unknown categories
	// Returns errors.Internal for storage failures
	ListByCategory(ctx context.Context, input ListByCategoryInput) (*ListByCategoryOutput, error)

	// Delete removes a record and its index entry
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// PutManifest writes the library manifest
	// Returns errors.InvalidArgument for nil manifests
	PutManifest(ctx context.Context, input PutManifestInput) (*PutManifestOutput, error)

	// GetManifest retrieves the library manifest
	// Returns errors.NotFound if no library has been published
	GetManifest(ctx context.Context, input GetManifestInput) (*GetManifestOutput, error)
}

// Manifest describes one published library
type Manifest struct {
	PublishedAt  time.Time      `json:"publishedAt"`
	RecordCounts map[string]int `json:"recordCounts"`
}

// PutInput defines the input for publishing a record
type PutInput struct {
	Record *codex.Record
}

// PutOutput defines the output for publishing a record
type PutOutput struct {
	Record *codex.Record
}

// GetInput defines the input for getting a published record
type GetInput struct {
	Category codex.Category
	ID       string
}

// GetOutput defines the output for getting a published record
type GetOutput struct {
	Record *codex.Record
}

// ListByCategoryInput defines the input for listing a category
type ListByCategoryInput struct {
	Category codex.Category
}

// ListByCategoryOutput defines the output for listing a category
type ListByCategoryOutput struct {
	Records []*codex.Record
}

// DeleteInput defines the input for deleting a published record
type DeleteInput struct {
	Category codex.Category
	ID       string
}

// DeleteOutput defines the output for deleting a published record
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// PutManifestInput defines the input for writing the manifest
type PutManifestInput struct {
	Manifest *Manifest
}

// PutManifestOutput defines the output for writing the manifest
type PutManifestOutput struct {
	Manifest *Manifest
}

// GetManifestInput defines the input for reading the manifest
type GetManifestInput struct {
	// Empty for now, can be extended later
}

// GetManifestOutput defines the output for reading the manifest
type GetManifestOutput struct {
	Manifest *Manifest
}
