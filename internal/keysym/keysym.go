package keysym

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	xproto "github.com/BurntSushi/xgb/xproto"
	keybind "github.com/BurntSushi/xgbutil/keybind"
)

// Keysym is an X11/xkb keyboard symbol identifier
type Keysym = xproto.Keysym

const NoSymbol Keysym = 0

// Well-known symbols referenced by the key parser and its callers.
const (
	XF86ScreenSaver Keysym = 0x1008ff2d
	XF86Screensaver Keysym = 0x10081245
)

// Flags controls name lookup
type Flags int

const (
	NoFlags Flags = iota
	CaseInsensitive
)

type entry struct {
	name string
	sym  Keysym
}

var (
	byName  map[string]Keysym
	byFold  map[string]entry
	canonic map[Keysym]string
)

func init() {
	byName = make(map[string]Keysym, len(names))
	byFold = make(map[string]entry, len(names))
	canonic = make(map[Keysym]string, len(names))

	for _, e := range names {
		byName[e.name] = e.sym
		if _, ok := canonic[e.sym]; !ok {
			canonic[e.sym] = e.name
		}

		// Case-insensitive lookups resolve to the lowercase spelling when
		// several names fold together.
		fold := strings.ToLower(e.name)
		if prev, ok := byFold[fold]; !ok || e.name > prev.name {
			byFold[fold] = e
		}
	}
}

// FromName resolves a keysym name. It returns NoSymbol when nothing matches.
func FromName(name string, flags Flags) Keysym {
	if name == "" {
		return NoSymbol
	}

	if flags == CaseInsensitive {
		if e, ok := byFold[strings.ToLower(name)]; ok {
			return e.sym
		}
	} else if sym, ok := byName[name]; ok {
		return sym
	}

	if name[0] == 'U' || (flags == CaseInsensitive && name[0] == 'u') {
		if sym, ok := fromUnicodeName(name[1:]); ok {
			return sym
		}
	}

	if len(name) > 2 && name[0] == '0' && (name[1] == 'x' || (flags == CaseInsensitive && name[1] == 'X')) {
		v, err := strconv.ParseUint(name[2:], 16, 32)
		if err == nil {
			return Keysym(v)
		}
	}

	return NoSymbol
}

func fromUnicodeName(hex string) (Keysym, bool) {
	if hex == "" || len(hex) > 8 {
		return NoSymbol, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > unicode.MaxRune {
		return NoSymbol, false
	}
	return FromRune(rune(v)), true
}

// FromRune maps a unicode code point to its keysym
func FromRune(r rune) Keysym {
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return Keysym(r)
	}
	return Keysym(0x01000000 | uint32(r))
}

// Name returns the canonical name of a keysym
func Name(sym Keysym) string {
	if name, ok := canonic[sym]; ok {
		return name
	}
	if sym&0xff000000 == 0x01000000 {
		return fmt.Sprintf("U%04X", uint32(sym)&0x00ffffff)
	}
	return fmt.Sprintf("0x%08x", uint32(sym))
}

// Label renders a keysym for display, preferring a single printable
// character where one exists (e.g. "bracketleft" becomes "[").
func Label(sym Keysym) string {
	s := keybind.KeysymToStr(sym)
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return string(unicode.ToUpper(r))
	}
	return Name(sym)
}
