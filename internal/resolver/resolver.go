// Package resolver resolves identifier references between records against a
// populated content store. It never fails on a miss; every result is
// reported back for the validator to aggregate into findings.
package resolver

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/store"
)

// Resolver resolves references against one content store
type Resolver struct {
	store *store.Store
}

// Config contains configuration for the Resolver
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

// New creates a resolver over the given store
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{store: cfg.Store}, nil
}

// Resolution is the outcome of resolving one identifier
type Resolution struct {
	ID    string
	Found bool
}

// Resolve checks each identifier against the expected category, in input
// order. Misses do not stop resolution.
func (r *Resolver) Resolve(ids []string, expected codex.Category) []Resolution {
	out := make([]Resolution, 0, len(ids))
	for _, id := range ids {
		_, err := r.store.Get(expected, id)
		out = append(out, Resolution{ID: id, Found: err == nil})
	}
	return out
}

// GrantResult is the outcome of a grantedBy consistency check
type GrantResult struct {
	// Checked is false when the record declares no grantedBy source
	Checked bool
	// SourceType and SourceID identify the declared granting record
	SourceType codex.RecordType
	SourceID   string
	// SourceFound reports whether the granting record exists in the
	// category its type implies
	SourceFound bool
	// HasBackLink reports whether the granting record's type defines a
	// back-link field (traits and items do not)
	HasBackLink bool
	// BackLinked reports whether that field lists this ability; only
	// meaningful when HasBackLink is true
	BackLinked bool
}

// CheckGrantedBy resolves an ability's grantedBy declaration: the source
// must exist, and when its category defines a back-link field, that field
// should list the ability. A missing back-link is an asymmetry the
// validator reports as a warning, since the forward link is legitimately
// optional for some categories.
func (r *Resolver) CheckGrantedBy(record *codex.Record) GrantResult {
	if record.Mechanics.Ability == nil || record.Mechanics.Ability.GrantedBy == nil {
		return GrantResult{}
	}

	grantedBy := record.Mechanics.Ability.GrantedBy
	result := GrantResult{
		Checked:    true,
		SourceType: grantedBy.Type,
		SourceID:   grantedBy.ID,
	}

	if !codex.ValidGrantedByType(grantedBy.Type) {
		return result
	}

	source, err := r.store.Get(grantedBy.Type.Category(), grantedBy.ID)
	if err != nil {
		return result
	}
	result.SourceFound = true

	result.BackLinked, result.HasBackLink = source.GrantsAbility(record.ID)
	return result
}
