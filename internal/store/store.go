// Package store provides the in-memory content store: a pure container of
// records grouped by category. The store performs no content validation on
// insert; loading bad data and reporting on it in bulk is the validator's
// job. The one rule it does enforce is ID uniqueness, globally across all
// categories.
//
// A store is built once by a loader, frozen, and then handed to the
// validator and query facade. It is not safe for concurrent use during the
// load phase; after Freeze, any number of readers may use it concurrently.
package store

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

type bucket struct {
	records []*codex.Record
	byID    map[string]*codex.Record
}

// Store holds the loaded content library
type Store struct {
	buckets map[codex.Category]*bucket
	// owners indexes every ID to the category that owns it, for the
	// global-uniqueness check
	owners map[string]codex.Category
	frozen bool
}

// New creates an empty store with every category bucket present
func New() *Store {
	s := &Store{
		buckets: make(map[codex.Category]*bucket),
		owners:  make(map[string]codex.Category),
	}
	for _, c := range codex.Categories() {
		s.buckets[c] = &bucket{byID: make(map[string]*codex.Record)}
	}
	return s
}

// Add inserts a record into a category bucket.
// Returns errors.InvalidArgument for a nil record, empty ID, or unknown
// category; errors.FailedPrecondition after Freeze; errors.AlreadyExists
// when the ID is already taken anywhere in the store. A failed Add leaves
// the store unchanged.
func (s *Store) Add(category codex.Category, record *codex.Record) error {
	if s.frozen {
		return errors.FailedPrecondition("store is frozen")
	}
	if record == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return errors.InvalidArgument("record ID cannot be empty")
	}

	b, ok := s.buckets[category]
	if !ok {
		return errors.InvalidArgumentf("unknown category %q", category)
	}

	if owner, exists := s.owners[record.ID]; exists {
		return errors.AlreadyExistsf("record %q already exists", record.ID).
			WithMeta("record_id", record.ID).
			WithMeta("category", string(owner))
	}

	b.records = append(b.records, record)
	b.byID[record.ID] = record
	s.owners[record.ID] = category
	return nil
}

// Get retrieves a record by category and ID.
// Returns errors.InvalidArgument for an unknown category and
// errors.NotFound when the ID is absent from that category.
func (s *Store) Get(category codex.Category, id string) (*codex.Record, error) {
	b, ok := s.buckets[category]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown category %q", category)
	}

	record, ok := b.byID[id]
	if !ok {
		return nil, errors.NotFoundf("record %q not found in %s", id, category).
			WithMeta("record_id", id).
			WithMeta("category", string(category))
	}
	return record, nil
}

// AllOf returns a category's records in insertion order. The returned
// slice is a copy; the records themselves are shared.
func (s *Store) AllOf(category codex.Category) []*codex.Record {
	b, ok := s.buckets[category]
	if !ok {
		return nil
	}
	out := make([]*codex.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Categories returns the fixed category set in declaration order
func (s *Store) Categories() []codex.Category {
	return codex.Categories()
}

// Len returns the total record count across all categories
func (s *Store) Len() int {
	return len(s.owners)
}

// Freeze marks the end of the load phase. Further Adds fail with
// FailedPrecondition; concurrent readers are safe from here on.
func (s *Store) Freeze() {
	s.frozen = true
}

// Frozen reports whether the load phase has ended
func (s *Store) Frozen() bool {
	return s.frozen
}
