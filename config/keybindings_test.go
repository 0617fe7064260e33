package config

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBinds(t *testing.T) {
	binds := DefaultBinds()
	require.NotEmpty(t, binds)

	t.Run("keys are unique", func(t *testing.T) {
		seen := make(map[Key]bool, len(binds))
		for _, b := range binds {
			assert.False(t, seen[b.Key], "duplicate default bind %s", b.Key)
			seen[b.Key] = true
		}
	})

	t.Run("every action is declarable", func(t *testing.T) {
		names := ActionNames()
		for _, b := range binds {
			name := ActionName(b.Action)
			assert.True(t, slices.Contains(names, name), "%s maps to %s", b.Key, name)
		}
	})

	t.Run("locked binds only spawn", func(t *testing.T) {
		for _, b := range binds {
			if b.AllowWhenLocked {
				assert.True(t, IsSpawn(b.Action), "%s", b.Key)
			}
		}
	})

	t.Run("inhibitor toggle is never inhibited", func(t *testing.T) {
		bind, ok := binds.Find(mustKey(t, "Mod+Escape"))
		require.True(t, ok)
		assert.Equal(t, ToggleKeyboardShortcutsInhibit{}, bind.Action)
		assert.False(t, bind.AllowInhibiting)
		assert.False(t, bind.Repeat)
	})

	t.Run("wheel binds have a cooldown", func(t *testing.T) {
		bind, ok := binds.Find(mustKey(t, "Mod+WheelScrollDown"))
		require.True(t, ok)
		require.NotNil(t, bind.Cooldown)
	})

	t.Run("workspace digits", func(t *testing.T) {
		bind, ok := binds.Find(mustKey(t, "Mod+3"))
		require.True(t, ok)
		assert.Equal(t, FocusWorkspace{Reference: WorkspaceIndex(3)}, bind.Action)
	})
}

func TestDefaultBindsAreFresh(t *testing.T) {
	a := DefaultBinds()
	a[0].Repeat = false
	b := DefaultBinds()
	assert.True(t, b[0].Repeat)
}
