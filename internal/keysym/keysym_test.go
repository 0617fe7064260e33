package keysym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags Flags
		want  Keysym
	}{
		{"exact letter", "a", NoFlags, 0x61},
		{"exact upper letter", "A", NoFlags, 0x41},
		{"folded letter prefers lowercase", "A", CaseInsensitive, 0x61},
		{"navigation", "Left", NoFlags, 0xff51},
		{"folded navigation", "left", CaseInsensitive, 0xff51},
		{"case sensitive miss", "left", NoFlags, NoSymbol},
		{"alias", "Page_Up", NoFlags, 0xff55},
		{"function key", "F12", NoFlags, 0xffc9},
		{"media key", "XF86AudioRaiseVolume", CaseInsensitive, 0x1008ff13},
		{"screensaver upper exact", "XF86ScreenSaver", NoFlags, XF86ScreenSaver},
		{"screensaver lower exact", "XF86Screensaver", NoFlags, XF86Screensaver},
		{"screensaver folded picks lowercase spelling", "XF86ScreenSaver", CaseInsensitive, XF86Screensaver},
		{"unicode", "U20AC", NoFlags, 0x010020ac},
		{"unicode latin1", "U00E9", NoFlags, 0xe9},
		{"unicode lowercase prefix", "u20ac", CaseInsensitive, 0x010020ac},
		{"hex", "0xff0d", NoFlags, 0xff0d},
		{"unknown", "NotAKey", CaseInsensitive, NoSymbol},
		{"empty", "", CaseInsensitive, NoSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromName(tt.input, tt.flags))
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Return", Name(0xff0d))
	assert.Equal(t, "Prior", Name(0xff55))
	assert.Equal(t, "apostrophe", Name(0x27))
	assert.Equal(t, "U20AC", Name(0x010020ac))
	assert.Equal(t, "0x12345678", Name(0x12345678))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "[", Label(FromName("bracketleft", NoFlags)))
	assert.Equal(t, "T", Label(FromName("t", NoFlags)))
	assert.Equal(t, "Return", Label(0xff0d))
}
