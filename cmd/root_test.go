package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	config "github.com/inference-gateway/tilecfg/config"
	diag "github.com/inference-gateway/tilecfg/internal/diag"
	services "github.com/inference-gateway/tilecfg/internal/services"
	cobra "github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
input { mod-key "Super"; }
binds {
    Mod+T hotkey-overlay-title="Open a Terminal" { spawn "foot"; }
    Mod+Q repeat=false { close-window; }
    XF86AudioMute allow-when-locked=true hotkey-overlay-title=null { spawn-sh "wpctl set-mute @DEFAULT_AUDIO_SINK@ toggle"; }
}
window-rule {
    match app-id="firefox"
    opacity 0.9
}
window-rule {
    match app-id="mpv"
    open-floating true
}
layer-rule {
    match namespace="^launcher$"
    opacity 0.8
}
`

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.kdl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestConfigFromEnvironment(t *testing.T) {
	path := writeConfig(t, testConfig)
	t.Setenv("TILECFG_CONFIG", path)

	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestConfigFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("TILECFG_CONFIG", filepath.Join(t.TempDir(), "missing.kdl"))
	path := writeConfig(t, testConfig)

	out, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 binds, no problems found")
}

func TestValidate(t *testing.T) {
	t.Run("clean config", func(t *testing.T) {
		out, err := execute(t, "validate", "-c", writeConfig(t, testConfig))
		require.NoError(t, err)
		assert.Contains(t, out, "no problems found")
	})

	t.Run("diagnostics fail the command", func(t *testing.T) {
		path := writeConfig(t, "animations {}\nbinds { Mod+T { spawn \"foot\"; }; }\n")
		out, err := execute(t, "validate", "-c", path)
		require.Error(t, err)
		assert.Contains(t, out, "1 problems found")
		assert.Contains(t, out, "unexpected node `animations`")
		assert.Contains(t, out, path+":1:")
	})

	t.Run("syntax error", func(t *testing.T) {
		out, err := execute(t, "validate", "-c", writeConfig(t, "binds {"))
		require.Error(t, err)
		assert.Contains(t, out, "config.kdl")
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		out, err := execute(t, "validate", "-c", filepath.Join(t.TempDir(), "none.kdl"))
		require.NoError(t, err)
		assert.Contains(t, out, "not found, using defaults")
	})
}

func TestDump(t *testing.T) {
	out, err := execute(t, "dump", "-c", writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Contains(t, out, "binds:")
	assert.Contains(t, out, "action: spawn")
	assert.Contains(t, out, "action: close-window")
	assert.Contains(t, out, "hotkey_overlay_title: Open a Terminal")
}

func TestBindsList(t *testing.T) {
	path := writeConfig(t, testConfig)

	t.Run("overlay", func(t *testing.T) {
		out, err := execute(t, "binds", "list", "-c", path)
		require.NoError(t, err)
		assert.Contains(t, out, "KEYBINDINGS (2 shown, Mod is Super)")
		assert.Contains(t, out, "Super + T")
		assert.Contains(t, out, "Open a Terminal")
		assert.Contains(t, out, "Close window")
		assert.NotContains(t, out, "spawn-sh")
	})

	t.Run("all", func(t *testing.T) {
		out, err := execute(t, "binds", "list", "--all", "-c", path)
		require.NoError(t, err)
		assert.Contains(t, out, "KEYBINDINGS (3 total, Mod is Super)")
		assert.Contains(t, out, "spawn-sh")
		assert.Contains(t, out, "when-locked")
		assert.Contains(t, out, "hidden")
	})

	t.Run("nested resolves mod as alt", func(t *testing.T) {
		path := writeConfig(t, "binds { Mod+T { spawn \"foot\"; }; }")
		out, err := execute(t, "binds", "list", "--nested", "-c", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Alt + T")
	})
}

func TestBindsResolve(t *testing.T) {
	path := writeConfig(t, testConfig)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"triggers", []string{"Super+T"}, "triggers spawn"},
		{"wire form", []string{"Super+Q"}, `{"CloseWindow":{"id":null}}`},
		{"no bind", []string{"Super+Z"}, "passed through: no bind"},
		{"locked", []string{"Super+T", "--locked"}, "passed through"},
		{"locked allowed", []string{"XF86AudioMute", "--locked"}, "triggers spawn-sh"},
		{"inhibited", []string{"Super+Q", "--inhibited"}, "passed through"},
		{"repeat", []string{"Super+Q", "--repeat"}, "passed through"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"binds", "resolve", "-c", path}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}

	t.Run("invalid combo", func(t *testing.T) {
		_, err := execute(t, "binds", "resolve", "-c", path, "Hyper+T")
		assert.Error(t, err)
	})
}

func TestIPC(t *testing.T) {
	t.Run("translate", func(t *testing.T) {
		out, err := execute(t, "ipc", "translate", `{"CloseWindow":{"id":null}}`)
		require.NoError(t, err)
		assert.Contains(t, out, "close-window")
		assert.Contains(t, out, `{"Action":{"CloseWindow":{"id":null}}}`)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := execute(t, "ipc", "translate", `{"Teleport":{}}`)
		assert.Error(t, err)
	})

	t.Run("variants", func(t *testing.T) {
		out, err := execute(t, "ipc", "variants")
		require.NoError(t, err)
		assert.Contains(t, out, "CloseWindow\n")
		assert.Contains(t, out, "FocusWorkspace\n")
	})
}

func TestRules(t *testing.T) {
	path := writeConfig(t, testConfig)

	t.Run("window", func(t *testing.T) {
		out, err := execute(t, "rules", "window", "-c", path, "--app-id", "firefox")
		require.NoError(t, err)
		assert.Contains(t, out, "WINDOW RULES (1 of 2 apply)")
		assert.Contains(t, out, "opacity: 0.9")
		assert.NotContains(t, out, "open_floating")
	})

	t.Run("window without app id", func(t *testing.T) {
		out, err := execute(t, "rules", "window", "-c", path)
		require.NoError(t, err)
		assert.Contains(t, out, "WINDOW RULES (0 of 2 apply)")
	})

	t.Run("layer", func(t *testing.T) {
		out, err := execute(t, "rules", "layer", "-c", path, "--namespace", "launcher")
		require.NoError(t, err)
		assert.Contains(t, out, "LAYER RULES (1 of 1 apply)")
		assert.Contains(t, out, "opacity: 0.8")
	})
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tilecfg version "+version)
}

func TestReportReload(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Binds = config.DefaultBinds()

	tests := []struct {
		name     string
		snap     *services.Snapshot
		err      error
		expected []string
	}{
		{
			name:     "clean",
			snap:     &services.Snapshot{Path: "/cfg/config.kdl", Config: cfg},
			expected: []string{"loaded /cfg/config.kdl", "binds)"},
		},
		{
			name: "diagnostics",
			snap: &services.Snapshot{Path: "/cfg/config.kdl", Config: cfg, Err: &config.LoadError{
				Diagnostics: []diag.Diagnostic{{File: "/cfg/config.kdl", Message: "duplicate keybind"}},
			}},
			expected: []string{"with 1 problems", "/cfg/config.kdl:0:0: duplicate keybind"},
		},
		{
			name:     "failed",
			err:      errors.New("syntax error"),
			expected: []string{"reload failed, keeping previous config: syntax error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportReload(&buf, tt.snap, tt.err)
			for _, want := range tt.expected {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
