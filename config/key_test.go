package config

import (
	"testing"

	keysym "github.com/inference-gateway/tilecfg/internal/keysym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyCaseInsensitive(t *testing.T) {
	want := Key{Trigger: KeysymTrigger(0x61), Modifiers: ModCtrl}
	for _, s := range []string{"ctrl+a", "CTRL+A", "Ctrl+a", "Control+A"} {
		assert.Equal(t, want, mustKey(t, s), s)
	}
}

func TestParseKeyScreensaver(t *testing.T) {
	upper := mustKey(t, "XF86ScreenSaver")
	lower := mustKey(t, "XF86Screensaver")
	folded := mustKey(t, "xf86screensaver")

	assert.Equal(t, Key{Trigger: KeysymTrigger(keysym.XF86ScreenSaver)}, upper)
	assert.Equal(t, Key{Trigger: KeysymTrigger(keysym.XF86Screensaver)}, lower)
	assert.Equal(t, upper, folded)
	assert.NotEqual(t, upper, lower)
}

func TestParseKeyIsoLevelShifts(t *testing.T) {
	a := KeysymTrigger(0x61)

	assert.Equal(t, Key{Trigger: a, Modifiers: ModIsoLevel3Shift}, mustKey(t, "ISO_Level3_Shift+A"))
	assert.Equal(t, Key{Trigger: a, Modifiers: ModIsoLevel3Shift}, mustKey(t, "Mod5+A"))
	assert.Equal(t, Key{Trigger: a, Modifiers: ModIsoLevel5Shift}, mustKey(t, "ISO_Level5_Shift+A"))
	assert.Equal(t, Key{Trigger: a, Modifiers: ModIsoLevel5Shift}, mustKey(t, "Mod3+A"))

	assert.NotEqual(t, mustKey(t, "Mod5+A"), mustKey(t, "Mod3+A"))
}

func TestParseKeyModifiersAndTriggers(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"Mod+T", Key{Trigger: KeysymTrigger(0x74), Modifiers: ModCompositor}},
		{"Super+Alt+L", Key{Trigger: KeysymTrigger(0x6c), Modifiers: ModSuper | ModAlt}},
		{"Win+Shift+Return", Key{Trigger: KeysymTrigger(0xff0d), Modifiers: ModSuper | ModShift}},
		{"Mod +Left", Key{Trigger: KeysymTrigger(0xff51), Modifiers: ModCompositor}},
		{"Mod+WheelScrollDown", Key{Trigger: Trigger{Kind: TriggerWheelScrollDown}, Modifiers: ModCompositor}},
		{"mouseleft", Key{Trigger: Trigger{Kind: TriggerMouseLeft}}},
		{"Mod+TouchpadScrollRight", Key{Trigger: Trigger{Kind: TriggerTouchpadScrollRight}, Modifiers: ModCompositor}},
		{"XF86AudioRaiseVolume", Key{Trigger: KeysymTrigger(0x1008ff13)}},
		{"Print", Key{Trigger: KeysymTrigger(0xff61)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mustKey(t, tt.input))
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	_, err := ParseKey("Hyper+A")
	require.Error(t, err)
	assert.Equal(t, "invalid modifier: Hyper", err.Error())

	_, err = ParseKey("Mod+NotAKey")
	require.Error(t, err)
	assert.Equal(t, "invalid key: NotAKey", err.Error())

	_, err = ParseKey("Mod+")
	require.Error(t, err)
	assert.Equal(t, "invalid key: ", err.Error())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Mod+Shift+Return", mustKey(t, "Shift+Mod+Return").String())
	assert.Equal(t, "MouseLeft", mustKey(t, "MouseLeft").String())
	assert.True(t, mustKey(t, "WheelScrollUp").Trigger.IsScroll())
	assert.False(t, mustKey(t, "MouseBack").Trigger.IsScroll())
}

func TestParseModKey(t *testing.T) {
	tests := map[string]ModKey{
		"ctrl":             ModKeyCtrl,
		"Control":          ModKeyCtrl,
		"SUPER":            ModKeySuper,
		"win":              ModKeySuper,
		"alt":              ModKeyAlt,
		"shift":            ModKeyShift,
		"ISO_Level3_Shift": ModKeyIsoLevel3Shift,
		"mod5":             ModKeyIsoLevel3Shift,
		"iso_level5_shift": ModKeyIsoLevel5Shift,
		"Mod3":             ModKeyIsoLevel5Shift,
	}
	for input, want := range tests {
		got, err := ParseModKey(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseModKey("hyper")
	assert.EqualError(t, err, "invalid Mod key: hyper")
	assert.Equal(t, ModIsoLevel3Shift, ModKeyIsoLevel3Shift.Modifiers())
}
