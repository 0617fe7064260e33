package config

import (
	"testing"
	"time"

	diag "github.com/inference-gateway/tilecfg/internal/diag"
	document "github.com/inference-gateway/tilecfg/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBindsSource(t *testing.T, src string) (Binds, []diag.Diagnostic) {
	t.Helper()
	doc, err := document.Parse("binds.kdl", []byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	d := &decoder{diags: diag.NewCollector("binds.kdl")}
	return decodeBinds(d, doc.Nodes[0]), d.diags.Diagnostics()
}

func messages(diags []diag.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestDecodeBinds(t *testing.T) {
	binds, diags := decodeBindsSource(t, `
binds {
    Mod+T hotkey-overlay-title="Open a Terminal" { spawn "alacritty"; }
    Mod+Q repeat=false { close-window; }
    Mod+L cooldown-ms=150 { focus-column-right; }
    Super+Alt+L allow-when-locked=true { spawn "swaylock"; }
    Mod+Shift+Slash hotkey-overlay-title=null { show-hotkey-overlay; }
}
`)
	require.Empty(t, diags)
	require.Len(t, binds, 5)

	assert.Equal(t, Bind{
		Key:                mustKey(t, "Mod+T"),
		Action:             Spawn{Command: []string{"alacritty"}},
		Repeat:             true,
		AllowInhibiting:    true,
		HotkeyOverlayTitle: OverlayTitle{Kind: TitleCustom, Text: "Open a Terminal"},
	}, binds[0])

	assert.False(t, binds[1].Repeat)
	assert.Equal(t, CloseWindow{}, binds[1].Action)

	require.NotNil(t, binds[2].Cooldown)
	assert.Equal(t, 150*time.Millisecond, *binds[2].Cooldown)

	assert.True(t, binds[3].AllowWhenLocked)
	assert.Equal(t, OverlayTitle{Kind: TitleHidden}, binds[4].HotkeyOverlayTitle)
}

func TestDecodeBindsDuplicateKeepsFirst(t *testing.T) {
	binds, diags := decodeBindsSource(t, `
binds {
    Mod+Return { spawn "alacritty"; }
    Mod+Q { close-window; }
    mod+return { spawn "foot"; }
}
`)
	require.Len(t, binds, 2)
	assert.Equal(t, Spawn{Command: []string{"alacritty"}}, binds[0].Action)

	require.Len(t, diags, 1)
	assert.Equal(t, "duplicate keybind", diags[0].Message)
	assert.Equal(t, 5, diags[0].Span.Line)
}

func TestDecodeBindsBrokenActionStillCountsAsDuplicate(t *testing.T) {
	binds, diags := decodeBindsSource(t, `
binds {
    Mod+K { no-such-action; }
    Mod+K { focus-window-up; }
}
`)
	require.Len(t, binds, 1)
	assert.Equal(t, placeholderBind(mustKey(t, "Mod+K")), binds[0])
	assert.Equal(t, []string{"unknown action `no-such-action`", "duplicate keybind"}, messages(diags))
}

func TestDecodeBindStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		binds int
		want  []string
	}{
		{
			name:  "invalid key",
			src:   `binds { Mod+Nope { close-window; }; }`,
			binds: 0,
			want:  []string{"invalid keybind: invalid key: Nope"},
		},
		{
			name:  "invalid modifier",
			src:   `binds { Hyper+A { close-window; }; }`,
			binds: 0,
			want:  []string{"invalid keybind: invalid modifier: Hyper"},
		},
		{
			name:  "arguments",
			src:   `binds { Mod+A "x" { close-window; }; }`,
			binds: 1,
			want:  []string{"no arguments expected for this node"},
		},
		{
			name:  "type name",
			src:   `binds { (t)Mod+A { close-window; }; }`,
			binds: 1,
			want:  []string{"no type name expected for this node"},
		},
		{
			name:  "missing action",
			src:   `binds { Mod+A; }`,
			binds: 1,
			want:  []string{"expected an action for this keybind"},
		},
		{
			name:  "two actions",
			src:   `binds { Mod+A { close-window; center-column; }; }`,
			binds: 1,
			want:  []string{"only one action is allowed per keybind"},
		},
		{
			name:  "unknown property",
			src:   `binds { Mod+A fast=true { close-window; }; }`,
			binds: 1,
			want:  []string{"unexpected property `fast`"},
		},
		{
			name:  "bad property value drops the bind",
			src:   `binds { Mod+A repeat="no" { close-window; }; }`,
			binds: 0,
			want:  []string{"expected boolean, found string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binds, diags := decodeBindsSource(t, tt.src)
			assert.Len(t, binds, tt.binds)
			assert.Equal(t, tt.want, messages(diags))
		})
	}
}

func TestCooldownOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		ms   string
		want string
	}{
		{"above uint64", "99999999999999999999", "value 99999999999999999999 does not fit into u64"},
		{"above duration", "18446744073709551615", "value 18446744073709551615 does not fit into a duration"},
		{"negative", "-5", "value -5 does not fit into u64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binds, diags := decodeBindsSource(t, `
binds {
    Mod+T cooldown-ms=`+tt.ms+` { spawn "a"; }
    Mod+Q { close-window; }
}
`)
			assert.Equal(t, []string{tt.want}, messages(diags))
			require.Len(t, binds, 1)
			assert.Equal(t, mustKey(t, "Mod+Q"), binds[0].Key)
			assert.Equal(t, CloseWindow{}, binds[0].Action)
		})
	}

	t.Run("largest duration", func(t *testing.T) {
		binds, diags := decodeBindsSource(t, `binds { Mod+T cooldown-ms=9223372036854 { spawn "a"; }; }`)
		require.Empty(t, diags)
		require.Len(t, binds, 1)
		require.NotNil(t, binds[0].Cooldown)
		assert.Positive(t, *binds[0].Cooldown)
	})
}

func TestParseKeepsSiblingsAfterIntegerOverflow(t *testing.T) {
	cfg, diags := parseConfig(t, `
layout { gaps 99999999999999999999; }
binds {
    Mod+T cooldown-ms=99999999999999999999 { spawn "a"; }
    Mod+Q { close-window; }
}
`)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{
		"value must be between 0 and 65535",
		"value 99999999999999999999 does not fit into u64",
	}, messages(diags))
	assert.Equal(t, DefaultLayout().Gaps, cfg.Layout.Gaps)
	_, ok := cfg.Binds.Find(mustKey(t, "Mod+Q"))
	assert.True(t, ok)
}

func TestAllowWhenLockedOnlyOnSpawn(t *testing.T) {
	binds, diags := decodeBindsSource(t, `
binds {
    Mod+X allow-when-locked=true { spawn "playerctl" "play-pause"; }
    Mod+Y allow-when-locked=true { spawn-sh "loginctl lock-session"; }
    Mod+H allow-when-locked=true { focus-column-left; }
}
`)
	require.Len(t, binds, 3)
	assert.True(t, binds[0].AllowWhenLocked)
	assert.True(t, binds[1].AllowWhenLocked)
	assert.False(t, binds[2].AllowWhenLocked)
	assert.Equal(t, []string{"allow-when-locked can only be set on spawn binds"}, messages(diags))
}

func TestToggleInhibitIsNeverInhibitable(t *testing.T) {
	binds, diags := decodeBindsSource(t, `
binds {
    Mod+Escape allow-inhibiting=true { toggle-keyboard-shortcuts-inhibit; }
    Mod+F allow-inhibiting=false { fullscreen-window; }
}
`)
	require.Empty(t, diags)
	require.Len(t, binds, 2)
	assert.False(t, binds[0].AllowInhibiting)
	assert.False(t, binds[1].AllowInhibiting)
}

func TestBindsMergeWith(t *testing.T) {
	base := Binds{
		{Key: mustKey(t, "Mod+T"), Action: Spawn{Command: []string{"alacritty"}}},
		{Key: mustKey(t, "Mod+Q"), Action: CloseWindow{}},
	}
	base.MergeWith(Binds{
		{Key: mustKey(t, "Mod+T"), Action: Spawn{Command: []string{"foot"}}},
		{Key: mustKey(t, "Mod+O"), Action: ToggleOverview{}},
	})

	require.Len(t, base, 3)
	assert.Equal(t, Spawn{Command: []string{"foot"}}, base[0].Action)
	assert.Equal(t, CloseWindow{}, base[1].Action)
	assert.Equal(t, ToggleOverview{}, base[2].Action)

	b, ok := base.Find(mustKey(t, "Mod+O"))
	assert.True(t, ok)
	assert.Equal(t, ToggleOverview{}, b.Action)
}

func TestDecodeSwitchBinds(t *testing.T) {
	doc, err := document.Parse("", []byte(`
switch-events {
    lid-close { spawn "systemctl" "suspend"; }
    tablet-mode-on { spawn "wvkbd"; }
    lid-close { spawn "true"; }
}
`))
	require.NoError(t, err)

	d := &decoder{diags: diag.NewCollector("")}
	got := decodeSwitchBinds(d, doc.Nodes[0])

	require.NotNil(t, got.LidClose)
	assert.Equal(t, []string{"systemctl", "suspend"}, got.LidClose.Spawn)
	assert.Equal(t, []string{"wvkbd"}, got.TabletModeOn.Spawn)
	assert.Nil(t, got.LidOpen)
	assert.Equal(t, []string{"duplicate node `lid-close`, single node expected"}, messages(d.diags.Diagnostics()))

	full := SwitchBinds{LidOpen: &SwitchAction{Spawn: []string{"a"}}}
	full.MergeWith(got)
	assert.Equal(t, []string{"a"}, full.LidOpen.Spawn)
	assert.Equal(t, got.LidClose, full.LidClose)
}
