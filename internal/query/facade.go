// Package query is the consumer-facing surface of a loaded content
// library: lookup by ID, listing by category, and tag filtering.
// Downstream applications depend on this package and the tag dictionary
// only; they never reach into the store's internals.
//
// The facade performs no validation. Querying a store that has not been
// validated may surface malformed records; whether errors gate querying
// is the caller's policy.
package query

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/store"
)

// Facade queries one content store
type Facade struct {
	store *store.Store
}

// Config contains configuration for the Facade
type Config struct {
	Store *store.Store
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	return nil
}

// New creates a Facade over the given store
func New(cfg *Config) (*Facade, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Facade{store: cfg.Store}, nil
}

// Seq is a restartable lazy sequence of records. Iteration re-scans the
// store each time; there is no cached cursor state. The yield function
// returns false to stop early.
type Seq func(yield func(*codex.Record) bool)

// ByID returns the record with the given ID in the given category.
// Returns errors.NotFound when absent.
func (f *Facade) ByID(category codex.Category, id string) (*codex.Record, error) {
	return f.store.Get(category, id)
}

// All returns a category's records in insertion order
func (f *Facade) All(category codex.Category) Seq {
	return func(yield func(*codex.Record) bool) {
		for _, record := range f.store.AllOf(category) {
			if !yield(record) {
				return
			}
		}
	}
}

// ByTag returns every record across all categories carrying the tag, in
// category-declaration order then insertion order.
func (f *Facade) ByTag(tag string) Seq {
	return func(yield func(*codex.Record) bool) {
		for _, category := range f.store.Categories() {
			for _, record := range f.store.AllOf(category) {
				if !record.HasTag(tag) {
					continue
				}
				if !yield(record) {
					return
				}
			}
		}
	}
}

// ByCategoryAndTag returns a category's records carrying the tag, in
// insertion order.
func (f *Facade) ByCategoryAndTag(category codex.Category, tag string) Seq {
	return func(yield func(*codex.Record) bool) {
		for _, record := range f.store.AllOf(category) {
			if !record.HasTag(tag) {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice
func Collect(seq Seq) []*codex.Record {
	var out []*codex.Record
	seq(func(record *codex.Record) bool {
		out = append(out, record)
		return true
	})
	return out
}
