package codex

import (
	"sort"
	"strings"
)

// ModSet is the parsed form of an attribute-mod mapping. The raw mapping
// encodes three kinds of keys: fixed attribute bonuses, virtual bonuses
// whose target attribute is chosen by a downstream character builder, and
// choice-group members sharing an "_X" suffix that together form one
// "choose exactly one" decision. Parsing happens once at load; nothing
// downstream re-inspects key suffixes.
type ModSet struct {
	// Fixed maps recognized attribute keys to always-applied bonuses
	Fixed map[string]int
	// Virtual maps unrecognized plain keys to bonuses resolved downstream
	Virtual map[string]int
	// ChoiceGroups maps a group letter to its mutually-exclusive candidates
	ChoiceGroups map[string]ChoiceGroup
}

// ChoiceGroup is one mutually-exclusive set of candidate bonuses. The
// library stores the shape of the choice; it never resolves it.
type ChoiceGroup struct {
	// Group is the single-letter group identifier from the key suffix
	Group string
	// Candidates maps the full candidate keys (suffix included) to amounts
	Candidates map[string]int
}

// choiceGroupSuffix extracts the group letter from a key ending in an
// underscore plus a single uppercase letter, e.g. "anyAttribute_A".
func choiceGroupSuffix(key string) (string, bool) {
	if len(key) < 3 {
		return "", false
	}
	letter := key[len(key)-1]
	if key[len(key)-2] != '_' || letter < 'A' || letter > 'Z' {
		return "", false
	}
	return string(letter), true
}

// ParseModSet classifies every key of a raw attribute-mod mapping
func ParseModSet(mods map[string]int) ModSet {
	set := ModSet{
		Fixed:        make(map[string]int),
		Virtual:      make(map[string]int),
		ChoiceGroups: make(map[string]ChoiceGroup),
	}

	for key, amount := range mods {
		if group, ok := choiceGroupSuffix(key); ok {
			g, exists := set.ChoiceGroups[group]
			if !exists {
				g = ChoiceGroup{Group: group, Candidates: make(map[string]int)}
			}
			g.Candidates[key] = amount
			set.ChoiceGroups[group] = g
			continue
		}
		if IsFixedAttribute(key) {
			set.Fixed[key] = amount
			continue
		}
		set.Virtual[key] = amount
	}

	return set
}

// GroupLetters returns the choice-group identifiers in sorted order
func (s ModSet) GroupLetters() []string {
	letters := make([]string, 0, len(s.ChoiceGroups))
	for letter := range s.ChoiceGroups {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}

// CandidateKeys returns a group's candidate keys in sorted order
func (g ChoiceGroup) CandidateKeys() []string {
	keys := make([]string, 0, len(g.Candidates))
	for key := range g.Candidates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// BaseKey strips the choice-group suffix from a candidate key
func BaseKey(key string) string {
	if _, ok := choiceGroupSuffix(key); ok {
		return strings.TrimSuffix(key[:len(key)-1], "_")
	}
	return key
}
