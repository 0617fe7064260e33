package config

import (
	"fmt"
	"strings"

	keysym "github.com/inference-gateway/tilecfg/internal/keysym"
)

// TriggerKind distinguishes keyboard symbols from pointer triggers
type TriggerKind uint8

const (
	TriggerKeysym TriggerKind = iota
	TriggerMouseLeft
	TriggerMouseRight
	TriggerMouseMiddle
	TriggerMouseBack
	TriggerMouseForward
	TriggerWheelScrollDown
	TriggerWheelScrollUp
	TriggerWheelScrollLeft
	TriggerWheelScrollRight
	TriggerTouchpadScrollDown
	TriggerTouchpadScrollUp
	TriggerTouchpadScrollLeft
	TriggerTouchpadScrollRight
)

var syntheticTriggers = []struct {
	name string
	kind TriggerKind
}{
	{"MouseLeft", TriggerMouseLeft},
	{"MouseRight", TriggerMouseRight},
	{"MouseMiddle", TriggerMouseMiddle},
	{"MouseBack", TriggerMouseBack},
	{"MouseForward", TriggerMouseForward},
	{"WheelScrollDown", TriggerWheelScrollDown},
	{"WheelScrollUp", TriggerWheelScrollUp},
	{"WheelScrollLeft", TriggerWheelScrollLeft},
	{"WheelScrollRight", TriggerWheelScrollRight},
	{"TouchpadScrollDown", TriggerTouchpadScrollDown},
	{"TouchpadScrollUp", TriggerTouchpadScrollUp},
	{"TouchpadScrollLeft", TriggerTouchpadScrollLeft},
	{"TouchpadScrollRight", TriggerTouchpadScrollRight},
}

// Trigger identifies a physical input independent of modifiers. Keysym is
// only meaningful for TriggerKeysym. The type is comparable and used as a
// map key.
type Trigger struct {
	Kind   TriggerKind
	Keysym keysym.Keysym
}

func KeysymTrigger(sym keysym.Keysym) Trigger {
	return Trigger{Kind: TriggerKeysym, Keysym: sym}
}

func (t Trigger) String() string {
	if t.Kind == TriggerKeysym {
		return keysym.Name(t.Keysym)
	}
	for _, s := range syntheticTriggers {
		if s.kind == t.Kind {
			return s.name
		}
	}
	return fmt.Sprintf("Trigger(%d)", t.Kind)
}

// IsScroll reports whether the trigger is a discrete scroll direction
func (t Trigger) IsScroll() bool {
	return t.Kind >= TriggerWheelScrollDown && t.Kind <= TriggerTouchpadScrollRight
}

// Modifiers is a bit set of held modifiers
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
	ModIsoLevel3Shift
	ModIsoLevel5Shift
	// ModCompositor is the configurable "Mod" key, resolved against the
	// active mod-key at dispatch time.
	ModCompositor
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModCompositor, "Mod"},
	{ModSuper, "Super"},
	{ModCtrl, "Ctrl"},
	{ModShift, "Shift"},
	{ModAlt, "Alt"},
	{ModIsoLevel3Shift, "ISO_Level3_Shift"},
	{ModIsoLevel5Shift, "ISO_Level5_Shift"},
}

func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}

func (m Modifiers) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m.Contains(n.mod) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Key is a trigger together with the modifiers that must be held
type Key struct {
	Trigger   Trigger
	Modifiers Modifiers
}

func (k Key) String() string {
	if k.Modifiers == 0 {
		return k.Trigger.String()
	}
	return k.Modifiers.String() + "+" + k.Trigger.String()
}

func (k Key) MarshalYAML() (any, error) {
	return k.String(), nil
}

func parseModifier(part string) (Modifiers, bool) {
	switch strings.ToLower(part) {
	case "mod":
		return ModCompositor, true
	case "ctrl", "control":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	case "alt":
		return ModAlt, true
	case "super", "win":
		return ModSuper, true
	case "iso_level3_shift", "mod5":
		return ModIsoLevel3Shift, true
	case "iso_level5_shift", "mod3":
		return ModIsoLevel5Shift, true
	}
	return 0, false
}

// ParseKey parses a combo like "Mod+Shift+Left". Everything before the last
// '+' is a modifier; the last token is the key.
func ParseKey(s string) (Key, error) {
	var key Key

	parts := strings.Split(s, "+")
	name := parts[len(parts)-1]

	for _, part := range parts[:len(parts)-1] {
		part = strings.TrimSpace(part)
		mod, ok := parseModifier(part)
		if !ok {
			return Key{}, fmt.Errorf("invalid modifier: %s", part)
		}
		key.Modifiers |= mod
	}

	for _, t := range syntheticTriggers {
		if strings.EqualFold(name, t.name) {
			key.Trigger = Trigger{Kind: t.kind}
			return key, nil
		}
	}

	sym := keysym.FromName(name, keysym.CaseInsensitive)
	// There is no case mapping between XF86ScreenSaver and XF86Screensaver
	// and the folded lookup prefers the latter. Retry with the exact
	// spelling so both stay bindable, and fall back to the uppercase one.
	if sym == keysym.XF86Screensaver {
		sym = keysym.FromName(name, keysym.NoFlags)
		if sym == keysym.NoSymbol {
			sym = keysym.XF86ScreenSaver
		}
	}
	if sym == keysym.NoSymbol {
		return Key{}, fmt.Errorf("invalid key: %s", name)
	}

	key.Trigger = KeysymTrigger(sym)
	return key, nil
}
