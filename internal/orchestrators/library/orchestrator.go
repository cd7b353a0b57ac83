// Package library implements the library orchestrator for publishing a
// validated content store to durable storage and pulling it back.
package library

//go:generate mockgen -destination=mock/mock_service.go -package=librarymock github.com/KirkDiggler/rpg-codex/internal/orchestrators/library Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/content"
	"github.com/KirkDiggler/rpg-codex/internal/store"
)

// Service defines the interface for library publish and pull operations
type Service interface {
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)
	Pull(ctx context.Context, input *PullInput) (*PullOutput, error)
}

// Config holds the dependencies for the library orchestrator
type Config struct {
	ContentRepo content.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	contentRepo content.Repository
}

// NewOrchestrator creates a new library orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		contentRepo: cfg.ContentRepo,
	}, nil
}

// Publish writes every record in the store to the repository, category by
// category in declaration order, then stamps a manifest with the counts.
// The caller is expected to have validated the store first.
func (o *orchestrator) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil || input.Store == nil {
		return nil, errors.InvalidArgument("store cannot be nil")
	}

	counts := make(map[string]int)
	published := 0

	for _, category := range codex.Categories() {
		records := input.Store.AllOf(category)
		for _, record := range records {
			if _, err := o.contentRepo.Put(ctx, content.PutInput{Record: record}); err != nil {
				return nil, errors.Wrapf(err, "failed to publish %s %q", record.RecordType, record.ID)
			}
			published++
		}
		if len(records) > 0 {
			counts[string(category)] = len(records)
		}
	}

	output, err := o.contentRepo.PutManifest(ctx, content.PutManifestInput{
		Manifest: &content.Manifest{RecordCounts: counts},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to write manifest")
	}

	slog.Info("published library",
		"records", published,
		"published_at", output.Manifest.PublishedAt)

	return &PublishOutput{
		Manifest:         output.Manifest,
		RecordsPublished: published,
	}, nil
}

// Pull reads the published library back into a frozen store. Returns
// NotFound when nothing has been published yet.
func (o *orchestrator) Pull(ctx context.Context, _ *PullInput) (*PullOutput, error) {
	manifestOutput, err := o.contentRepo.GetManifest(ctx, content.GetManifestInput{})
	if err != nil {
		return nil, err
	}

	st := store.New()
	for _, category := range codex.Categories() {
		listOutput, err := o.contentRepo.ListByCategory(ctx, content.ListByCategoryInput{
			Category: category,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to pull %s", category)
		}
		for _, record := range listOutput.Records {
			if err := st.Add(category, record); err != nil {
				return nil, errors.Wrapf(err, "failed to load pulled record %q", record.ID)
			}
		}
	}
	st.Freeze()

	return &PullOutput{
		Store:    st,
		Manifest: manifestOutput.Manifest,
	}, nil
}
