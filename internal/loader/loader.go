// Package loader populates a content store from externally supplied
// records. The core packages never touch files; this collaborator owns
// the boundary between raw content packs on disk and the in-memory
// library the validator and query facade work with.
//
// A content pack is a directory of JSON envelope files, each holding one
// category's records, plus an optional tags.json layered over the builtin
// tag dictionary. Records that fail insertion (duplicate IDs) are skipped
// and collected rather than aborting the load, so a partially bad pack
// can still be validated and reported on in full.
package loader

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/rpg-codex/internal/entities/codex"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/store"
	"github.com/KirkDiggler/rpg-codex/internal/tags"
	"github.com/KirkDiggler/rpg-codex/internal/validator"
)

// TagsFileName is the reserved file name for a pack's tag definitions
const TagsFileName = "tags.json"

// Envelope is one category's worth of records
type Envelope struct {
	Category codex.Category  `json:"category"`
	Records  []*codex.Record `json:"records"`
}

// tagsFile is the shape of tags.json
type tagsFile struct {
	Tags []tags.Entry `json:"tags"`
}

// Issue is one record the loader had to skip
type Issue struct {
	Category codex.Category
	RecordID string
	Err      error
}

// Result is a populated, frozen library ready for validation
type Result struct {
	Store  *store.Store
	Tags   *tags.Dictionary
	Issues []Issue
}

// IssuesInto routes the loader's skipped-record issues into a validation
// report as errors, so one report carries the whole picture.
func (r *Result) IssuesInto(report *validator.Report) {
	for _, issue := range r.Issues {
		report.AddError(issue.Category.RecordType(), issue.RecordID, "id", errors.GetMessage(issue.Err))
	}
}

// Load populates a store from already-parsed envelopes. Envelopes with an
// unknown category fail the load outright; individual records that
// collide on ID are skipped and collected as issues. The returned store
// is frozen.
func Load(envelopes []Envelope, dict *tags.Dictionary) (*Result, error) {
	if dict == nil {
		return nil, errors.InvalidArgument("tag dictionary cannot be nil")
	}

	result := &Result{
		Store: store.New(),
		Tags:  dict,
	}

	for _, envelope := range envelopes {
		if !envelope.Category.Valid() {
			return nil, errors.InvalidArgumentf("unknown category %q", envelope.Category)
		}
		for _, record := range envelope.Records {
			if err := result.Store.Add(envelope.Category, record); err != nil {
				if errors.IsAlreadyExists(err) {
					id := ""
					if record != nil {
						id = record.ID
					}
					result.Issues = append(result.Issues, Issue{
						Category: envelope.Category,
						RecordID: id,
						Err:      err,
					})
					continue
				}
				return nil, err
			}
		}
	}

	result.Store.Freeze()
	return result, nil
}

// LoadDir reads a content pack directory: every *.json file except
// tags.json is an envelope; files are processed in sorted path order so
// loads are deterministic.
func LoadDir(dir string) (*Result, error) {
	dict, err := loadTags(filepath.Join(dir, TagsFileName))
	if err != nil {
		return nil, err
	}

	var paths []string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" || filepath.Base(path) == TagsFileName {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "failed to walk content dir %s", dir)
	}
	sort.Strings(paths)

	var envelopes []Envelope
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- paths come from walking the configured content dir
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", path)
		}
		envelopes = append(envelopes, envelope)
	}

	return Load(envelopes, dict)
}

// loadTags layers a pack's tags.json, when present, over the builtin
// dictionary.
func loadTags(path string) (*tags.Dictionary, error) {
	entries := tags.Builtin()

	data, err := os.ReadFile(path) // #nosec G304 -- path is the configured content dir's tags.json
	if err != nil {
		if os.IsNotExist(err) {
			return tags.New(entries)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var f tagsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", path)
	}

	return tags.New(tags.Merge(entries, f.Tags))
}
