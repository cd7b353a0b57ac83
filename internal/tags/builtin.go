package tags

import "github.com/KirkDiggler/rpg-codex/internal/entities/codex"

// Builtin returns the tag entries every content pack starts from: the
// mandatory type tags plus the filtering vocabulary shared across packs.
// Packs layer their own tags.json on top via Merge.
func Builtin() []Entry {
	entries := []Entry{}

	for _, rt := range codex.RecordTypes() {
		entries = append(entries, Entry{
			Name:        rt.TypeTag(),
			Category:    "type",
			Description: "Marks a record as a " + string(rt) + ".",
		})
	}

	entries = append(entries,
		Entry{Name: "role:striker", Category: "role", Description: "Focused single-target damage."},
		Entry{Name: "role:defender", Category: "role", Description: "Holds the line and protects allies."},
		Entry{Name: "role:support", Category: "role", Description: "Heals, buffs, and enables allies."},
		Entry{Name: "role:controller", Category: "role", Description: "Shapes the battlefield and the enemy's options."},

		Entry{Name: "action:standard", Category: "action", Description: "Uses a standard action."},
		Entry{Name: "action:bonus", Category: "action", Description: "Uses a bonus action."},
		Entry{Name: "action:reaction", Category: "action", Description: "Triggered outside your turn."},
		Entry{Name: "action:passive", Category: "action", Description: "Always on; no action required."},

		Entry{Name: "use:combat", Category: "use", Description: "Primarily useful in combat."},
		Entry{Name: "use:adventuring", Category: "use", Description: "Primarily useful while adventuring."},
		Entry{Name: "use:social", Category: "use", Description: "Primarily useful in social scenes."},
		Entry{Name: "use:exploration", Category: "use", Description: "Primarily useful while exploring."},

		Entry{Name: "rarity:common", Category: "rarity", Description: "Commonly available."},
		Entry{Name: "rarity:uncommon", Category: "rarity", Description: "Takes some effort to find."},
		Entry{Name: "rarity:rare", Category: "rarity", Description: "Notable and hard to come by."},
		Entry{Name: "rarity:legendary", Category: "rarity", Description: "Unique or nearly so."},

		Entry{Name: "setting:wastes", Category: "setting", Description: "Content tied to the salt wastes."},
		Entry{Name: "setting:reaches", Category: "setting", Description: "Content tied to the verdant reaches."},
		Entry{Name: "setting:anywhere", Category: "setting", Description: "Setting-agnostic content."},
	)

	return entries
}
