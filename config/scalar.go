package config

import (
	"fmt"
	"strconv"
	"strings"
)

// enumSpec maps the document spellings of an enum to its values. Lookup is
// case-sensitive.
type enumSpec[T comparable] struct {
	what  string
	names []string
	vals  []T
}

func (e enumSpec[T]) parse(s string) (T, error) {
	for i, n := range e.names {
		if n == s {
			return e.vals[i], nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %s, can be %s", e.what, quoteAll(e.names...))
}

func (e enumSpec[T]) name(v T) string {
	for i, val := range e.vals {
		if val == v {
			return e.names[i]
		}
	}
	return "unknown"
}

type AccelProfile int

const (
	AccelAdaptive AccelProfile = iota
	AccelFlat
)

var accelProfiles = enumSpec[AccelProfile]{
	what:  "accel profile",
	names: []string{"adaptive", "flat"},
	vals:  []AccelProfile{AccelAdaptive, AccelFlat},
}

func ParseAccelProfile(s string) (AccelProfile, error) { return accelProfiles.parse(s) }
func (a AccelProfile) String() string                  { return accelProfiles.name(a) }
func (a AccelProfile) MarshalYAML() (any, error)       { return a.String(), nil }

type ScrollMethod int

const (
	ScrollNoScroll ScrollMethod = iota
	ScrollTwoFinger
	ScrollEdge
	ScrollOnButtonDown
)

var scrollMethods = enumSpec[ScrollMethod]{
	what:  "scroll method",
	names: []string{"no-scroll", "two-finger", "edge", "on-button-down"},
	vals:  []ScrollMethod{ScrollNoScroll, ScrollTwoFinger, ScrollEdge, ScrollOnButtonDown},
}

func ParseScrollMethod(s string) (ScrollMethod, error) { return scrollMethods.parse(s) }
func (m ScrollMethod) String() string                  { return scrollMethods.name(m) }
func (m ScrollMethod) MarshalYAML() (any, error)       { return m.String(), nil }

type TapButtonMap int

const (
	TapLeftRightMiddle TapButtonMap = iota
	TapLeftMiddleRight
)

var tapButtonMaps = enumSpec[TapButtonMap]{
	what:  "tap button map",
	names: []string{"left-right-middle", "left-middle-right"},
	vals:  []TapButtonMap{TapLeftRightMiddle, TapLeftMiddleRight},
}

func ParseTapButtonMap(s string) (TapButtonMap, error) { return tapButtonMaps.parse(s) }
func (m TapButtonMap) String() string                  { return tapButtonMaps.name(m) }
func (m TapButtonMap) MarshalYAML() (any, error)       { return m.String(), nil }

type ClickMethod int

const (
	ClickButtonAreas ClickMethod = iota
	ClickClickfinger
)

var clickMethods = enumSpec[ClickMethod]{
	what:  "click method",
	names: []string{"button-areas", "clickfinger"},
	vals:  []ClickMethod{ClickButtonAreas, ClickClickfinger},
}

func ParseClickMethod(s string) (ClickMethod, error) { return clickMethods.parse(s) }
func (m ClickMethod) String() string                 { return clickMethods.name(m) }
func (m ClickMethod) MarshalYAML() (any, error)      { return m.String(), nil }

type WarpMouseToFocusMode int

const (
	WarpCenterXY WarpMouseToFocusMode = iota + 1
	WarpCenterXYAlways
)

func ParseWarpMouseToFocusMode(s string) (WarpMouseToFocusMode, error) {
	switch s {
	case "center-xy":
		return WarpCenterXY, nil
	case "center-xy-always":
		return WarpCenterXYAlways, nil
	}
	return 0, fmt.Errorf(`invalid mode for warp-mouse-to-focus, can be "center-xy" or "center-xy-always" (or leave unset for separate centering)`)
}

func (m WarpMouseToFocusMode) String() string {
	switch m {
	case WarpCenterXY:
		return "center-xy"
	case WarpCenterXYAlways:
		return "center-xy-always"
	}
	return ""
}

func (m WarpMouseToFocusMode) MarshalYAML() (any, error) { return m.String(), nil }

type TrackLayout int

const (
	TrackLayoutGlobal TrackLayout = iota
	TrackLayoutWindow
)

var trackLayouts = enumSpec[TrackLayout]{
	what:  "track layout",
	names: []string{"global", "window"},
	vals:  []TrackLayout{TrackLayoutGlobal, TrackLayoutWindow},
}

func ParseTrackLayout(s string) (TrackLayout, error) { return trackLayouts.parse(s) }
func (t TrackLayout) String() string                 { return trackLayouts.name(t) }
func (t TrackLayout) MarshalYAML() (any, error)      { return t.String(), nil }

type CenterFocusedColumn int

const (
	CenterNever CenterFocusedColumn = iota
	CenterAlways
	CenterOnOverflow
)

var centerFocusedColumns = enumSpec[CenterFocusedColumn]{
	what:  "center-focused-column value",
	names: []string{"never", "always", "on-overflow"},
	vals:  []CenterFocusedColumn{CenterNever, CenterAlways, CenterOnOverflow},
}

func ParseCenterFocusedColumn(s string) (CenterFocusedColumn, error) {
	return centerFocusedColumns.parse(s)
}
func (c CenterFocusedColumn) String() string            { return centerFocusedColumns.name(c) }
func (c CenterFocusedColumn) MarshalYAML() (any, error) { return c.String(), nil }

type BlockOutFrom int

const (
	BlockOutScreencast BlockOutFrom = iota
	BlockOutScreenCapture
)

var blockOutFroms = enumSpec[BlockOutFrom]{
	what:  "block-out-from value",
	names: []string{"screencast", "screen-capture"},
	vals:  []BlockOutFrom{BlockOutScreencast, BlockOutScreenCapture},
}

func ParseBlockOutFrom(s string) (BlockOutFrom, error) { return blockOutFroms.parse(s) }
func (b BlockOutFrom) String() string                  { return blockOutFroms.name(b) }
func (b BlockOutFrom) MarshalYAML() (any, error)       { return b.String(), nil }

type RelativeTo int

const (
	RelativeTopLeft RelativeTo = iota
	RelativeTopRight
	RelativeBottomLeft
	RelativeBottomRight
	RelativeTop
	RelativeBottom
	RelativeLeft
	RelativeRight
	RelativeCursor
)

var relativeTos = enumSpec[RelativeTo]{
	what: "relative-to value",
	names: []string{
		"top-left", "top-right", "bottom-left", "bottom-right",
		"top", "bottom", "left", "right", "cursor",
	},
	vals: []RelativeTo{
		RelativeTopLeft, RelativeTopRight, RelativeBottomLeft, RelativeBottomRight,
		RelativeTop, RelativeBottom, RelativeLeft, RelativeRight, RelativeCursor,
	},
}

func ParseRelativeTo(s string) (RelativeTo, error) { return relativeTos.parse(s) }
func (r RelativeTo) String() string                { return relativeTos.name(r) }
func (r RelativeTo) MarshalYAML() (any, error)     { return r.String(), nil }

// ModKey is the physical modifier that stands in for "Mod" in binds
type ModKey int

const (
	ModKeyCtrl ModKey = iota + 1
	ModKeyShift
	ModKeyAlt
	ModKeySuper
	ModKeyIsoLevel3Shift
	ModKeyIsoLevel5Shift
)

// ParseModKey is case-insensitive. Note that mod5 is level 3 and mod3 is
// level 5, matching the X11 modifier numbering.
func ParseModKey(s string) (ModKey, error) {
	switch strings.ToLower(s) {
	case "ctrl", "control":
		return ModKeyCtrl, nil
	case "shift":
		return ModKeyShift, nil
	case "alt":
		return ModKeyAlt, nil
	case "super", "win":
		return ModKeySuper, nil
	case "iso_level3_shift", "mod5":
		return ModKeyIsoLevel3Shift, nil
	case "iso_level5_shift", "mod3":
		return ModKeyIsoLevel5Shift, nil
	}
	return 0, fmt.Errorf("invalid Mod key: %s", s)
}

// Modifiers returns the single modifier flag of the key
func (m ModKey) Modifiers() Modifiers {
	switch m {
	case ModKeyCtrl:
		return ModCtrl
	case ModKeyShift:
		return ModShift
	case ModKeyAlt:
		return ModAlt
	case ModKeySuper:
		return ModSuper
	case ModKeyIsoLevel3Shift:
		return ModIsoLevel3Shift
	case ModKeyIsoLevel5Shift:
		return ModIsoLevel5Shift
	}
	return 0
}

func (m ModKey) String() string {
	switch m {
	case ModKeyCtrl:
		return "Ctrl"
	case ModKeyShift:
		return "Shift"
	case ModKeyAlt:
		return "Alt"
	case ModKeySuper:
		return "Super"
	case ModKeyIsoLevel3Shift:
		return "ISO_Level3_Shift"
	case ModKeyIsoLevel5Shift:
		return "ISO_Level5_Shift"
	}
	return ""
}

func (m ModKey) MarshalYAML() (any, error) { return m.String(), nil }

// ParsePercent parses "NN%" into a fraction
func ParsePercent(s string) (float64, error) {
	value, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, fmt.Errorf("value must end with %%")
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	return f / 100, nil
}
