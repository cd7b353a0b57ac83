package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/tags"
)

func TestNewDictionary(t *testing.T) {
	t.Run("valid entries", func(t *testing.T) {
		d, err := tags.New([]tags.Entry{
			{Name: "type:race", Category: "type", Description: "Marks a race."},
			{Name: "setting:wastes", Category: "setting", Description: "Salt wastes content."},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, d.Len())
	})

	t.Run("missing colon", func(t *testing.T) {
		_, err := tags.New([]tags.Entry{{Name: "race", Category: "race"}})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("category prefix mismatch", func(t *testing.T) {
		_, err := tags.New([]tags.Entry{{Name: "type:race", Category: "kind"}})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := tags.New([]tags.Entry{
			{Name: "type:race", Category: "type"},
			{Name: "type:race", Category: "type"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))
	})
}

func TestLookup(t *testing.T) {
	d, err := tags.New([]tags.Entry{
		{Name: "type:trait", Category: "type", Description: "Marks a trait."},
	})
	require.NoError(t, err)

	entry, err := d.Lookup("type:trait")
	require.NoError(t, err)
	assert.Equal(t, "type", entry.Category)

	_, err = d.Lookup("type:spell")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "type:spell", errors.GetMeta(err)["tag"])

	assert.True(t, d.Contains("type:trait"))
	assert.False(t, d.Contains("type:spell"))
}

func TestAllCategories(t *testing.T) {
	d, err := tags.New([]tags.Entry{
		{Name: "type:race", Category: "type"},
		{Name: "type:class", Category: "type"},
		{Name: "action:bonus", Category: "action"},
		{Name: "setting:wastes", Category: "setting"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"action", "setting", "type"}, d.AllCategories())
}

func TestMerge(t *testing.T) {
	base := []tags.Entry{
		{Name: "type:race", Category: "type", Description: "builtin"},
		{Name: "action:bonus", Category: "action", Description: "builtin"},
	}
	overlay := []tags.Entry{
		{Name: "type:race", Category: "type", Description: "pack override"},
		{Name: "setting:wastes", Category: "setting", Description: "pack"},
	}

	merged := tags.Merge(base, overlay)
	require.Len(t, merged, 3)
	assert.Equal(t, "pack override", merged[0].Description)
	assert.Equal(t, "action:bonus", merged[1].Name)
	assert.Equal(t, "setting:wastes", merged[2].Name)
}

func TestBuiltinIsWellFormed(t *testing.T) {
	d, err := tags.New(tags.Builtin())
	require.NoError(t, err)

	for _, tag := range []string{"type:race", "type:profession", "action:reaction", "rarity:rare"} {
		assert.True(t, d.Contains(tag), "builtin dictionary missing %s", tag)
	}
}
