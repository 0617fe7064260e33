package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexEq(t *testing.T) {
	t.Run("unanchored search", func(t *testing.T) {
		re := MustRegexEq(`fire`)
		assert.True(t, re.MatchString("org.mozilla.firefox"))
		assert.False(t, re.MatchString("chromium"))

		anchored := MustRegexEq(`^firefox$`)
		assert.True(t, anchored.MatchString("firefox"))
		assert.False(t, anchored.MatchString("org.mozilla.firefox"))
	})

	t.Run("equality is by pattern text", func(t *testing.T) {
		assert.True(t, MustRegexEq(`a+`).Equal(MustRegexEq(`a+`)))
		assert.False(t, MustRegexEq(`a+`).Equal(MustRegexEq(`a{1,}`)))

		a := MustRegexEq(`x`)
		assert.True(t, regexEqual(nil, nil))
		assert.False(t, regexEqual(&a, nil))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := ParseRegexEq(`(unclosed`)
		assert.Error(t, err)
	})

	t.Run("zero value never matches", func(t *testing.T) {
		assert.False(t, RegexEq{}.MatchString("anything"))
		assert.Equal(t, "", RegexEq{}.String())
	})
}

func TestDecodeWindowRule(t *testing.T) {
	cfg, diags := parseConfig(t, `
window-rule {
    match app-id=r#"^org\.wezfurlong\.wezterm$"#
    match title="Picture-in-Picture" is-floating=true
    exclude is-active=false

    open-floating true
    open-on-workspace "chat"
    default-column-width { proportion 0.75; }
    default-window-height {}
    min-width 400
    opacity 0.9
    focus-ring { off; }
    border { width 2; active-color "#ffffff"; }
    geometry-corner-radius 12
    block-out-from "screencast"
    default-floating-position x=16 y=32 relative-to="bottom-right"
}
window-rule {
    match is-urgent=true
    border { urgent-color 255 0 0 255; }
}
`)
	require.Empty(t, messages(diags))
	require.Len(t, cfg.WindowRules, 2)

	r := cfg.WindowRules[0]
	require.Len(t, r.Matches, 2)
	require.NotNil(t, r.Matches[0].AppID)
	assert.Equal(t, `^org\.wezfurlong\.wezterm$`, r.Matches[0].AppID.String())
	require.NotNil(t, r.Matches[1].IsFloating)
	assert.True(t, *r.Matches[1].IsFloating)
	require.Len(t, r.Excludes, 1)
	assert.Equal(t, ptr(false), r.Excludes[0].IsActive)

	assert.Equal(t, ptr(true), r.OpenFloating)
	assert.Equal(t, ptr("chat"), r.OpenOnWorkspace)
	require.NotNil(t, r.DefaultColumnWidth)
	assert.Equal(t, ptr(Proportion(0.75)), r.DefaultColumnWidth.Size)
	require.NotNil(t, r.DefaultWindowHeight)
	assert.Nil(t, r.DefaultWindowHeight.Size)
	assert.Equal(t, ptr(uint16(400)), r.MinWidth)
	assert.Equal(t, ptr(0.9), r.Opacity)
	assert.True(t, r.FocusRing.Off)
	assert.Equal(t, ptr(2.0), r.Border.Width)
	assert.Equal(t, &CornerRadius{TopLeft: 12, TopRight: 12, BottomRight: 12, BottomLeft: 12}, r.GeometryCornerRadius)
	assert.Equal(t, ptr(BlockOutScreencast), r.BlockOutFrom)
	require.NotNil(t, r.DefaultFloatingPosition)
	assert.Equal(t, FloatingPosition{X: 16, Y: 32, RelativeTo: RelativeBottomRight}, *r.DefaultFloatingPosition)

	urgent := cfg.WindowRules[1].Border.UrgentColor
	require.NotNil(t, urgent)
	assert.Equal(t, "#ff0000", urgent.Hex())
}

func TestDecodeWindowRuleDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "unknown match property",
			src:      `window-rule { match class="x"; }`,
			expected: []string{"unexpected property `class`"},
		},
		{
			name:     "duplicate property node",
			src:      `window-rule { opacity 0.5; opacity 0.7; }`,
			expected: []string{"duplicate node `opacity`, single node expected"},
		},
		{
			name:     "floating position needs both coordinates",
			src:      `window-rule { default-floating-position x=1; }`,
			expected: []string{"property `y` is required"},
		},
		{
			name:     "unknown rule child",
			src:      `window-rule { blur { on; }; }`,
			expected: []string{"unexpected node `blur`"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := parseConfig(t, tt.src)
			assert.Equal(t, tt.expected, messages(diags))
		})
	}
}

func TestMatchEqual(t *testing.T) {
	firefox := MustRegexEq("firefox")
	same := MustRegexEq("firefox")
	other := MustRegexEq("chromium")

	assert.True(t, Match{AppID: &firefox, IsActive: ptr(true)}.Equal(Match{AppID: &same, IsActive: ptr(true)}))
	assert.False(t, Match{AppID: &firefox}.Equal(Match{AppID: &other}))
	assert.False(t, Match{IsActive: ptr(true)}.Equal(Match{}))
}

func TestDecodeLayerRule(t *testing.T) {
	cfg, diags := parseConfig(t, `
layer-rule {
    match namespace="^notifications$"
    match namespace="waybar" at-startup=true
    block-out-from "screen-capture"
    opacity 0.8
    shadow { on; softness 20; }
    place-within-backdrop true
}
`)
	require.Empty(t, messages(diags))
	require.Len(t, cfg.LayerRules, 1)

	r := cfg.LayerRules[0]
	require.Len(t, r.Matches, 2)
	assert.Equal(t, "^notifications$", r.Matches[0].Namespace.String())
	assert.Equal(t, ptr(true), r.Matches[1].AtStartup)
	assert.Equal(t, ptr(BlockOutScreenCapture), r.BlockOutFrom)
	assert.Equal(t, ptr(0.8), r.Opacity)
	assert.True(t, r.Shadow.On)
	assert.Equal(t, ptr(20.0), r.Shadow.Softness)
	assert.Equal(t, ptr(true), r.PlaceWithinBackdrop)

	assert.True(t, r.Matches[0].Equal(LayerMatch{Namespace: r.Matches[0].Namespace}))
	assert.False(t, r.Matches[0].Equal(r.Matches[1]))
}
