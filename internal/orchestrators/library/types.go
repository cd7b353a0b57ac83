package library

import (
	"github.com/KirkDiggler/rpg-codex/internal/repositories/content"
	"github.com/KirkDiggler/rpg-codex/internal/store"
)

// PublishInput contains the validated content to publish
type PublishInput struct {
	Store *store.Store
}

// PublishOutput reports what was published
type PublishOutput struct {
	Manifest         *content.Manifest
	RecordsPublished int
}

// PullInput requests the currently published library
type PullInput struct{}

// PullOutput contains the pulled library, frozen and ready to query
type PullOutput struct {
	Store    *store.Store
	Manifest *content.Manifest
}
