// Package tags provides the tag dictionary: the single source of truth for
// every tag a content record may carry. Tags follow "category:value" syntax
// and are defined centrally so filtering stays consistent across consumers.
package tags

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Entry defines one tag
type Entry struct {
	Name        string `json:"tagName"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Dictionary is an immutable tag lookup built once at load time
type Dictionary struct {
	entries map[string]Entry
}

// New builds a dictionary from entries. Every entry's name must follow
// "category:value" syntax with the category field matching the prefix.
// Returns errors.InvalidArgument for malformed entries and
// errors.AlreadyExists for duplicate names.
func New(entries []Entry) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string]Entry, len(entries))}

	for _, entry := range entries {
		prefix, _, found := strings.Cut(entry.Name, ":")
		if !found || prefix == "" {
			return nil, errors.InvalidArgumentf("tag %q does not follow category:value syntax", entry.Name)
		}
		if entry.Category != prefix {
			return nil, errors.InvalidArgumentf("tag %q declares category %q, want %q", entry.Name, entry.Category, prefix).
				WithMeta("tag", entry.Name)
		}
		if _, exists := d.entries[entry.Name]; exists {
			return nil, errors.AlreadyExistsf("tag %q defined twice", entry.Name)
		}
		d.entries[entry.Name] = entry
	}

	return d, nil
}

// Lookup returns the entry for a tag name.
// Returns errors.NotFound when the tag is not defined.
func (d *Dictionary) Lookup(name string) (Entry, error) {
	entry, ok := d.entries[name]
	if !ok {
		return Entry{}, errors.NotFoundf("tag %q is not defined", name).WithMeta("tag", name)
	}
	return entry, nil
}

// Contains reports whether the tag is defined
func (d *Dictionary) Contains(name string) bool {
	_, ok := d.entries[name]
	return ok
}

// AllCategories returns the distinct tag categories in sorted order
func (d *Dictionary) AllCategories() []string {
	seen := make(map[string]struct{})
	for _, entry := range d.entries {
		seen[entry.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of defined tags
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Merge overlays entries onto base, replacing by name. The result keeps
// base order with overlay additions appended; used to layer a content
// pack's tags.json over the builtin dictionary.
func Merge(base, overlay []Entry) []Entry {
	byName := make(map[string]int, len(base))
	out := make([]Entry, len(base))
	copy(out, base)
	for i, entry := range out {
		byName[entry.Name] = i
	}

	for _, entry := range overlay {
		if i, ok := byName[entry.Name]; ok {
			out[i] = entry
			continue
		}
		byName[entry.Name] = len(out)
		out = append(out, entry)
	}

	return out
}
