package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleConfigLoadsCleanly(t *testing.T) {
	path := filepath.Join("..", "examples", "config.kdl")

	loader := NewLoader(nil)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{path, filepath.Join("..", "examples", "binds.kdl")}, loader.Files())
	assert.Len(t, cfg.Binds, 22)
	assert.Len(t, cfg.WindowRules, 2)
	assert.Len(t, cfg.LayerRules, 1)
	assert.Equal(t, 12.0, cfg.Layout.Gaps)

	bind, ok := cfg.Binds.Find(mustKey(t, "Mod+T"))
	require.True(t, ok)
	assert.Equal(t, Spawn{Command: []string{"foot"}}, bind.Action)

	bind, ok = cfg.Binds.Find(mustKey(t, "Mod+Escape"))
	require.True(t, ok)
	assert.False(t, bind.AllowInhibiting)
}
