package config

import (
	"errors"
	"path/filepath"
	"testing"

	diag "github.com/inference-gateway/tilecfg/internal/diag"
	document "github.com/inference-gateway/tilecfg/internal/document"
	afero "github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, s string) Key {
	t.Helper()
	k, err := ParseKey(s)
	require.NoError(t, err)
	return k
}

func parseConfig(t *testing.T, src string) (*Config, []diag.Diagnostic) {
	t.Helper()
	cfg, err := Parse("config.kdl", []byte(src))
	if err == nil {
		require.NotNil(t, cfg)
		return cfg, nil
	}
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.NotNil(t, cfg)
	return cfg, loadErr.Diagnostics
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("layout defaults", func(t *testing.T) {
		assert.Equal(t, 16.0, cfg.Layout.Gaps)
		assert.Equal(t, []PresetSize{Proportion(1.0 / 3), Proportion(0.5), Proportion(2.0 / 3)}, cfg.Layout.PresetColumnWidths)
		require.NotNil(t, cfg.Layout.DefaultColumnWidth)
		assert.Equal(t, Proportion(0.5), *cfg.Layout.DefaultColumnWidth)
		assert.False(t, cfg.Layout.FocusRing.Off)
		assert.True(t, cfg.Layout.Border.Off)
		assert.False(t, cfg.Layout.Shadow.On)
	})
	t.Run("input defaults", func(t *testing.T) {
		assert.Equal(t, uint16(600), cfg.Input.Keyboard.RepeatDelay)
		assert.Equal(t, uint8(25), cfg.Input.Keyboard.RepeatRate)
		assert.Nil(t, cfg.Input.ModKey)
	})
	t.Run("misc defaults", func(t *testing.T) {
		assert.Equal(t, "default", cfg.Cursor.XcursorTheme)
		assert.Equal(t, uint8(24), cfg.Cursor.XcursorSize)
		assert.Equal(t, "xwayland-satellite", cfg.XwaylandSatellite.Path)
		assert.Equal(t, 0.5, cfg.Overview.Zoom)
		require.NotNil(t, cfg.ScreenshotPath.Path)
		assert.Equal(t, DefaultScreenshotPath, *cfg.ScreenshotPath.Path)
	})
	t.Run("no binds", func(t *testing.T) {
		assert.Empty(t, cfg.Binds)
	})
}

func TestParseSections(t *testing.T) {
	cfg, diags := parseConfig(t, `
input {
    keyboard {
        xkb { layout "us,ru"; options "grp:win_space_toggle"; }
        repeat-delay 300
        numlock
    }
    touchpad { tap; natural-scroll; accel-speed 0.2; scroll-method "two-finger"; }
    mod-key "Alt"
    focus-follows-mouse max-scroll-amount="10%"
}

layout {
    gaps 8
    center-focused-column "on-overflow"
    preset-column-widths {
        proportion 0.25
        fixed 1280
    }
    default-column-width {}
    focus-ring { width 2; active-color "#ff0000"; }
    border { on; }
}

cursor { xcursor-size 32; hide-when-typing; }
screenshot-path null
prefer-no-csd
spawn-at-startup "waybar"
spawn-sh-at-startup "swaybg -i ~/bg.png"
environment { DISPLAY ":0"; QT_QPA_PLATFORM null; }
`)
	require.Empty(t, messages(diags))

	kb := cfg.Input.Keyboard
	assert.Equal(t, "us,ru", kb.Xkb.Layout)
	require.NotNil(t, kb.Xkb.Options)
	assert.Equal(t, "grp:win_space_toggle", *kb.Xkb.Options)
	assert.Equal(t, uint16(300), kb.RepeatDelay)
	assert.Equal(t, uint8(25), kb.RepeatRate)
	assert.True(t, kb.Numlock)

	assert.True(t, cfg.Input.Touchpad.Tap)
	assert.True(t, cfg.Input.Touchpad.NaturalScroll)
	assert.Equal(t, 0.2, cfg.Input.Touchpad.AccelSpeed)
	require.NotNil(t, cfg.Input.Touchpad.ScrollMethod)
	assert.Equal(t, ScrollTwoFinger, *cfg.Input.Touchpad.ScrollMethod)
	require.NotNil(t, cfg.Input.ModKey)
	assert.Equal(t, ModKeyAlt, *cfg.Input.ModKey)
	require.NotNil(t, cfg.Input.FocusFollowsMouse)
	require.NotNil(t, cfg.Input.FocusFollowsMouse.MaxScrollAmount)
	assert.InDelta(t, 0.1, *cfg.Input.FocusFollowsMouse.MaxScrollAmount, 1e-9)

	assert.Equal(t, 8.0, cfg.Layout.Gaps)
	assert.Equal(t, CenterOnOverflow, cfg.Layout.CenterFocusedColumn)
	assert.Equal(t, []PresetSize{Proportion(0.25), FixedSize(1280)}, cfg.Layout.PresetColumnWidths)
	assert.Nil(t, cfg.Layout.DefaultColumnWidth)
	assert.Equal(t, 2.0, cfg.Layout.FocusRing.Width)
	assert.Equal(t, "#ff0000", cfg.Layout.FocusRing.ActiveColor.Hex())
	assert.False(t, cfg.Layout.Border.Off)

	assert.Equal(t, uint8(32), cfg.Cursor.XcursorSize)
	assert.True(t, cfg.Cursor.HideWhenTyping)
	assert.Nil(t, cfg.ScreenshotPath.Path)
	assert.True(t, cfg.PreferNoCSD)

	assert.Equal(t, []SpawnAtStartup{{Command: []string{"waybar"}}}, cfg.SpawnAtStartup)
	assert.Equal(t, []SpawnShAtStartup{{Command: "swaybg -i ~/bg.png"}}, cfg.SpawnShAtStartup)

	require.Len(t, cfg.Environment, 2)
	assert.Equal(t, "DISPLAY", cfg.Environment[0].Name)
	require.NotNil(t, cfg.Environment[0].Value)
	assert.Equal(t, ":0", *cfg.Environment[0].Value)
	assert.Nil(t, cfg.Environment[1].Value)
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "unknown top-level node",
			src:      `animations { off; }`,
			expected: []string{"unexpected node `animations`"},
		},
		{
			name:     "duplicate section",
			src:      "layout { gaps 4; }\nlayout { gaps 8; }",
			expected: []string{"duplicate node `layout`, single node expected"},
		},
		{
			name:     "out of range integer",
			src:      `input { keyboard { repeat-rate 300; }; }`,
			expected: []string{"value 300 does not fit into u8"},
		},
		{
			name:     "bad enum",
			src:      `layout { center-focused-column "sometimes"; }`,
			expected: []string{`invalid center-focused-column value, can be "never", "always", or "on-overflow"`},
		},
		{
			name:     "border off and on",
			src:      `layout { border { off; on; }; }`,
			expected: []string{"cannot set both `off` and `on` at the same time"},
		},
		{
			name:     "preset with unknown kind",
			src:      `layout { preset-column-widths { pixels 100; }; }`,
			expected: []string{"unexpected node `pixels`, expected `proportion` or `fixed`"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := parseConfig(t, tt.src)
			assert.Equal(t, tt.expected, messages(diags))
		})
	}
}

func TestParseSyntaxErrorIsFatal(t *testing.T) {
	cfg, err := Parse("broken.kdl", []byte(`layout { gaps 4`))
	require.Error(t, err)
	assert.Nil(t, cfg)

	var syntax *document.SyntaxError
	assert.ErrorAs(t, err, &syntax)

	var loadErr *LoadError
	assert.False(t, errors.As(err, &loadErr))
}

func TestLayoutMerge(t *testing.T) {
	t.Run("empty preset list reverts to defaults", func(t *testing.T) {
		l := DefaultLayout()
		l.MergeWith(&LayoutPart{PresetColumnWidths: &[]PresetSize{}})
		assert.Equal(t, defaultPresets(), l.PresetColumnWidths)
	})

	t.Run("presets replace rather than append", func(t *testing.T) {
		l := DefaultLayout()
		l.MergeWith(&LayoutPart{PresetColumnWidths: &[]PresetSize{FixedSize(800)}})
		assert.Equal(t, []PresetSize{FixedSize(800)}, l.PresetColumnWidths)
	})

	t.Run("flags only turn on", func(t *testing.T) {
		l := DefaultLayout()
		l.MergeWith(&LayoutPart{AlwaysCenterSingleColumn: ptr(true)})
		l.MergeWith(&LayoutPart{AlwaysCenterSingleColumn: ptr(false)})
		assert.True(t, l.AlwaysCenterSingleColumn)
	})

	t.Run("border on then off", func(t *testing.T) {
		l := DefaultLayout()
		l.MergeWith(&LayoutPart{Border: &BorderRule{On: true}})
		assert.False(t, l.Border.Off)
		l.MergeWith(&LayoutPart{Border: &BorderRule{Off: true}})
		assert.True(t, l.Border.Off)
	})

	t.Run("shadow off overrides on", func(t *testing.T) {
		l := DefaultLayout()
		l.MergeWith(&LayoutPart{Shadow: &ShadowRule{On: true}})
		assert.True(t, l.Shadow.On)
		l.MergeWith(&LayoutPart{Shadow: &ShadowRule{Off: true}})
		assert.False(t, l.Shadow.On)
	})

	t.Run("nested fields merge individually", func(t *testing.T) {
		l := DefaultLayout()
		width := 10.0
		l.MergeWith(&LayoutPart{FocusRing: &BorderRule{Width: &width}})
		assert.Equal(t, 10.0, l.FocusRing.Width)
		assert.Equal(t, DefaultFocusRing().ActiveColor, l.FocusRing.ActiveColor)
	})
}

func TestBorderRuleMerge(t *testing.T) {
	red := rgba(255, 0, 0, 255)
	width := 3.0

	r := BorderRule{Off: true, Width: &width}
	r.MergeWith(&BorderRule{On: true, ActiveColor: &red})

	assert.False(t, r.Off)
	assert.True(t, r.On)
	assert.Equal(t, &width, r.Width)
	assert.Equal(t, &red, r.ActiveColor)

	r.MergeWith(nil)
	assert.True(t, r.On)
	assert.True(t, BorderRule{}.IsEmpty())
	assert.False(t, r.IsEmpty())
}

func TestInputMerge(t *testing.T) {
	in := DefaultInput()
	in.MergeWith(&InputPart{Touchpad: &Touchpad{Tap: true, Dwt: true}})
	in.MergeWith(&InputPart{Touchpad: &Touchpad{PointerSettings: PointerSettings{NaturalScroll: true}}})

	assert.False(t, in.Touchpad.Tap, "a later touchpad block replaces the earlier one")
	assert.True(t, in.Touchpad.NaturalScroll)

	delay := uint16(200)
	in.MergeWith(&InputPart{Keyboard: &KeyboardPart{RepeatDelay: &delay}})
	assert.Equal(t, uint16(200), in.Keyboard.RepeatDelay)
	assert.Equal(t, uint8(25), in.Keyboard.RepeatRate)
}

func TestXwaylandSatelliteMerge(t *testing.T) {
	x := DefaultXwaylandSatellite()
	x.MergeWith(&XwaylandSatellitePart{Off: true})
	assert.True(t, x.Off)
	x.MergeWith(&XwaylandSatellitePart{})
	assert.True(t, x.Off)
	x.MergeWith(&XwaylandSatellitePart{On: true})
	assert.False(t, x.Off)
}

func TestConfigMergeAppendsLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeWith(&ConfigPart{
		SpawnAtStartup: []SpawnAtStartup{{Command: []string{"a"}}},
		Binds:          Binds{{Key: mustKey(t, "Mod+T"), Action: CloseWindow{}}},
	})
	cfg.MergeWith(&ConfigPart{
		SpawnAtStartup: []SpawnAtStartup{{Command: []string{"b"}}},
		Binds: Binds{
			{Key: mustKey(t, "Mod+Q"), Action: Quit{}},
			{Key: mustKey(t, "Mod+T"), Action: Spawn{Command: []string{"foot"}}},
		},
	})

	assert.Equal(t, []SpawnAtStartup{{Command: []string{"a"}}, {Command: []string{"b"}}}, cfg.SpawnAtStartup)
	require.Len(t, cfg.Binds, 2)
	assert.Equal(t, Spawn{Command: []string{"foot"}}, cfg.Binds[0].Action)
	assert.Equal(t, Quit{}, cfg.Binds[1].Action)
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for name, src := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(src), 0o644))
	}
}

func TestLoaderIncludes(t *testing.T) {
	t.Run("include applies in document order", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{
			"/cfg/config.kdl": `
layout { gaps 4; }
include "parts/layout.kdl"
binds { Mod+Q { close-window; }; }
`,
			"/cfg/parts/layout.kdl": `
layout { gaps 12; }
binds { Mod+Q { quit; }; Mod+T { spawn "foot"; }; }
`,
		})

		loader := NewLoader(fs)
		cfg, err := loader.Load("/cfg/config.kdl")
		require.NoError(t, err)

		assert.Equal(t, 12.0, cfg.Layout.Gaps)
		assert.Equal(t, []string{"/cfg/config.kdl", "/cfg/parts/layout.kdl"}, loader.Files())

		bind, ok := cfg.Binds.Find(mustKey(t, "Mod+Q"))
		require.True(t, ok)
		assert.Equal(t, CloseWindow{}, bind.Action)
		_, ok = cfg.Binds.Find(mustKey(t, "Mod+T"))
		assert.True(t, ok)
	})

	t.Run("later section overrides include", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{
			"/cfg/config.kdl": "include \"base.kdl\"\nlayout { gaps 20; }",
			"/cfg/base.kdl":   "layout { gaps 2; }",
		})
		cfg, err := NewLoader(fs).Load("/cfg/config.kdl")
		require.NoError(t, err)
		assert.Equal(t, 20.0, cfg.Layout.Gaps)
	})

	t.Run("cycle is fatal", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{
			"/cfg/a.kdl": `include "b.kdl"`,
			"/cfg/b.kdl": `include "a.kdl"`,
		})
		cfg, err := NewLoader(fs).Load("/cfg/a.kdl")
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrIncludeCycle)
	})

	t.Run("missing include is a diagnostic", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{
			"/cfg/config.kdl": "include \"missing.kdl\"\nlayout { gaps 6; }",
		})
		cfg, err := NewLoader(fs).Load("/cfg/config.kdl")
		require.NotNil(t, cfg)
		assert.Equal(t, 6.0, cfg.Layout.Gaps)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		require.Len(t, loadErr.Diagnostics, 1)
		assert.Contains(t, loadErr.Diagnostics[0].Message, `failed to include "missing.kdl"`)
		assert.Equal(t, "/cfg/config.kdl", loadErr.Diagnostics[0].File)
	})

	t.Run("syntax error in include is fatal", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{
			"/cfg/config.kdl": `include "bad.kdl"`,
			"/cfg/bad.kdl":    `layout {`,
		})
		cfg, err := NewLoader(fs).Load("/cfg/config.kdl")
		assert.Nil(t, cfg)
		var syntax *document.SyntaxError
		assert.ErrorAs(t, err, &syntax)
	})

	t.Run("diagnostics keep file attribution", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFiles(t, fs, map[string]string{
			"/cfg/config.kdl": "include \"part.kdl\"\nbogus",
			"/cfg/part.kdl":   "also-bogus",
		})
		_, err := NewLoader(fs).Load("/cfg/config.kdl")

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		require.Len(t, loadErr.Diagnostics, 2)
		assert.Equal(t, "/cfg/part.kdl", loadErr.Diagnostics[0].File)
		assert.Equal(t, "/cfg/config.kdl", loadErr.Diagnostics[1].File)
		assert.Len(t, loadErr.Unwrap(), 2)
	})
}

func TestLoadMissingFileUsesDefaultBinds(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.kdl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBinds(), cfg.Binds)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "tilewm", "config.kdl"), DefaultConfigPath())
}
