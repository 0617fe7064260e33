package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContextLogger(t *testing.T) {
	ctx, logs := TestContext()

	ctx = With(ctx, "command", "watch")
	ctx = ForConfig(ctx, "/etc/tilewm/config.kdl")
	Sugar(ctx).Infow("Config loaded", "binds", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "watch", fields["command"])
	assert.Equal(t, "/etc/tilewm/config.kdl", fields["config"])
	assert.EqualValues(t, 3, fields["binds"])
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, zap.L(), FromContext(context.Background()))
}
