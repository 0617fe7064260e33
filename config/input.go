package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
)

type Input struct {
	Keyboard                  Keyboard           `yaml:"keyboard"`
	Touchpad                  Touchpad           `yaml:"touchpad"`
	Mouse                     Mouse              `yaml:"mouse"`
	Trackpoint                Trackpoint         `yaml:"trackpoint"`
	Trackball                 Trackball          `yaml:"trackball"`
	Tablet                    Tablet             `yaml:"tablet"`
	Touch                     Touch              `yaml:"touch"`
	DisablePowerKeyHandling   bool               `yaml:"disable_power_key_handling"`
	WarpMouseToFocus          *WarpMouseToFocus  `yaml:"warp_mouse_to_focus,omitempty"`
	FocusFollowsMouse         *FocusFollowsMouse `yaml:"focus_follows_mouse,omitempty"`
	WorkspaceAutoBackAndForth bool               `yaml:"workspace_auto_back_and_forth"`
	ModKey                    *ModKey            `yaml:"mod_key,omitempty"`
	ModKeyNested              *ModKey            `yaml:"mod_key_nested,omitempty"`
}

// InputPart carries device sections whole: a device block in a later file
// replaces the earlier one instead of merging into it.
type InputPart struct {
	Keyboard                  *KeyboardPart
	Touchpad                  *Touchpad
	Mouse                     *Mouse
	Trackpoint                *Trackpoint
	Trackball                 *Trackball
	Tablet                    *Tablet
	Touch                     *Touch
	DisablePowerKeyHandling   *bool
	WarpMouseToFocus          *WarpMouseToFocus
	FocusFollowsMouse         *FocusFollowsMouse
	WorkspaceAutoBackAndForth *bool
	ModKey                    *ModKey
	ModKeyNested              *ModKey
}

func DefaultInput() Input {
	return Input{Keyboard: DefaultKeyboard()}
}

func (in *Input) MergeWith(part *InputPart) {
	if part == nil {
		return
	}
	in.Keyboard.MergeWith(part.Keyboard)
	mergeFlag(&in.DisablePowerKeyHandling, part.DisablePowerKeyHandling)
	mergeFlag(&in.WorkspaceAutoBackAndForth, part.WorkspaceAutoBackAndForth)

	mergeOpt(&in.Touchpad, part.Touchpad)
	mergeOpt(&in.Mouse, part.Mouse)
	mergeOpt(&in.Trackpoint, part.Trackpoint)
	mergeOpt(&in.Trackball, part.Trackball)
	mergeOpt(&in.Tablet, part.Tablet)
	mergeOpt(&in.Touch, part.Touch)

	mergePtr(&in.WarpMouseToFocus, part.WarpMouseToFocus)
	mergePtr(&in.FocusFollowsMouse, part.FocusFollowsMouse)
	mergePtr(&in.ModKey, part.ModKey)
	mergePtr(&in.ModKeyNested, part.ModKeyNested)
}

func decodeInputPart(d *decoder, node *document.Node) *InputPart {
	d.onlyChildren(node)

	p := &InputPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "keyboard":
			p.Keyboard = decodeKeyboardPart(d, child)
		case "touchpad":
			p.Touchpad = decodeTouchpad(d, child)
		case "mouse":
			p.Mouse = decodeMouse(d, child)
		case "trackpoint":
			p.Trackpoint = &Trackpoint{decodePointerOnly(d, child)}
		case "trackball":
			p.Trackball = &Trackball{decodePointerOnly(d, child)}
		case "tablet":
			p.Tablet = decodeTablet(d, child)
		case "touch":
			p.Touch = decodeTouch(d, child)
		case "disable-power-key-handling":
			p.DisablePowerKeyHandling = d.flagPtr(child)
		case "warp-mouse-to-focus":
			p.WarpMouseToFocus = decodeWarpMouseToFocus(d, child)
		case "focus-follows-mouse":
			p.FocusFollowsMouse = decodeFocusFollowsMouse(d, child)
		case "workspace-auto-back-and-forth":
			p.WorkspaceAutoBackAndForth = d.flagPtr(child)
		case "mod-key":
			p.ModKey = parsedArg(d, child, ParseModKey)
		case "mod-key-nested":
			p.ModKeyNested = parsedArg(d, child, ParseModKey)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

// Xkb is replaced as a whole when a part sets it
type Xkb struct {
	Rules   string  `yaml:"rules,omitempty"`
	Model   string  `yaml:"model,omitempty"`
	Layout  string  `yaml:"layout,omitempty"`
	Variant string  `yaml:"variant,omitempty"`
	Options *string `yaml:"options,omitempty"`
	File    *string `yaml:"file,omitempty"`
}

func decodeXkb(d *decoder, node *document.Node) *Xkb {
	d.onlyChildren(node)

	x := &Xkb{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "rules":
			mergeOpt(&x.Rules, arg(d, child, d.stringValue))
		case "model":
			mergeOpt(&x.Model, arg(d, child, d.stringValue))
		case "layout":
			mergeOpt(&x.Layout, arg(d, child, d.stringValue))
		case "variant":
			mergeOpt(&x.Variant, arg(d, child, d.stringValue))
		case "options":
			x.Options = arg(d, child, d.stringValue)
		case "file":
			x.File = arg(d, child, d.stringValue)
		default:
			unexpectedNode(d, child)
		}
	}
	return x
}

type Keyboard struct {
	Xkb         Xkb         `yaml:"xkb"`
	RepeatDelay uint16      `yaml:"repeat_delay"`
	RepeatRate  uint8       `yaml:"repeat_rate"`
	TrackLayout TrackLayout `yaml:"track_layout"`
	Numlock     bool        `yaml:"numlock"`
}

type KeyboardPart struct {
	Xkb         *Xkb
	RepeatDelay *uint16
	RepeatRate  *uint8
	TrackLayout *TrackLayout
	Numlock     *bool
}

// DefaultKeyboard matches the repeat settings of wlroots and sway
func DefaultKeyboard() Keyboard {
	return Keyboard{
		RepeatDelay: 600,
		RepeatRate:  25,
		TrackLayout: TrackLayoutGlobal,
	}
}

func (k *Keyboard) MergeWith(part *KeyboardPart) {
	if part == nil {
		return
	}
	mergeOpt(&k.Xkb, part.Xkb)
	mergeOpt(&k.RepeatDelay, part.RepeatDelay)
	mergeOpt(&k.RepeatRate, part.RepeatRate)
	mergeOpt(&k.TrackLayout, part.TrackLayout)
	mergeFlag(&k.Numlock, part.Numlock)
}

func decodeKeyboardPart(d *decoder, node *document.Node) *KeyboardPart {
	d.onlyChildren(node)

	p := &KeyboardPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "xkb":
			p.Xkb = decodeXkb(d, child)
		case "repeat-delay":
			p.RepeatDelay = arg(d, child, d.u16Value)
		case "repeat-rate":
			p.RepeatRate = arg(d, child, d.u8Value)
		case "track-layout":
			p.TrackLayout = parsedArg(d, child, ParseTrackLayout)
		case "numlock":
			p.Numlock = d.flagPtr(child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

// ScrollFactor scales scroll deltas. Per-axis values override the base.
type ScrollFactor struct {
	Base       *float64 `yaml:"base,omitempty"`
	Horizontal *float64 `yaml:"horizontal,omitempty"`
	Vertical   *float64 `yaml:"vertical,omitempty"`
}

func (s ScrollFactor) HVFactors() (float64, float64) {
	base := 1.0
	mergeOpt(&base, s.Base)
	h, v := base, base
	mergeOpt(&h, s.Horizontal)
	mergeOpt(&v, s.Vertical)
	return h, v
}

func decodeScrollFactor(d *decoder, node *document.Node) *ScrollFactor {
	d.noType(node)
	d.noChildren(node)

	s := &ScrollFactor{}
	if len(node.Args) > 0 {
		s.Base = ptrIf(d.floatOrInt(node.Args[0], 0, 100))
		for _, extra := range node.Args[1:] {
			d.errorf(extra.Span, "unexpected argument")
		}
	}
	for _, prop := range node.Props {
		switch prop.Name {
		case "horizontal":
			s.Horizontal = ptrIf(d.floatOrInt(prop.Value, -100, 100))
		case "vertical":
			s.Vertical = ptrIf(d.floatOrInt(prop.Value, -100, 100))
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
		}
	}
	return s
}

// PointerSettings are shared by every pointing device section
type PointerSettings struct {
	Off              bool          `yaml:"off"`
	NaturalScroll    bool          `yaml:"natural_scroll"`
	AccelSpeed       float64       `yaml:"accel_speed"`
	AccelProfile     *AccelProfile `yaml:"accel_profile,omitempty"`
	ScrollMethod     *ScrollMethod `yaml:"scroll_method,omitempty"`
	ScrollButton     *uint32       `yaml:"scroll_button,omitempty"`
	ScrollButtonLock bool          `yaml:"scroll_button_lock"`
	LeftHanded       bool          `yaml:"left_handed"`
	MiddleEmulation  bool          `yaml:"middle_emulation"`
}

// decodeField handles one child common to pointer devices. It returns
// false for names it does not know.
func (s *PointerSettings) decodeField(d *decoder, child *document.Node) bool {
	switch child.Name {
	case "off":
		s.Off = d.presence(child)
	case "natural-scroll":
		s.NaturalScroll = d.presence(child)
	case "accel-speed":
		mergeOpt(&s.AccelSpeed, arg(d, child, d.floatIn(-1, 1)))
	case "accel-profile":
		s.AccelProfile = parsedArg(d, child, ParseAccelProfile)
	case "scroll-method":
		s.ScrollMethod = parsedArg(d, child, ParseScrollMethod)
	case "scroll-button":
		s.ScrollButton = arg(d, child, d.u32Value)
	case "scroll-button-lock":
		s.ScrollButtonLock = d.presence(child)
	case "left-handed":
		s.LeftHanded = d.presence(child)
	case "middle-emulation":
		s.MiddleEmulation = d.presence(child)
	default:
		return false
	}
	return true
}

type Touchpad struct {
	PointerSettings         `yaml:",inline"`
	Tap                     bool          `yaml:"tap"`
	Dwt                     bool          `yaml:"dwt"`
	Dwtp                    bool          `yaml:"dwtp"`
	Drag                    *bool         `yaml:"drag,omitempty"`
	DragLock                bool          `yaml:"drag_lock"`
	ClickMethod             *ClickMethod  `yaml:"click_method,omitempty"`
	TapButtonMap            *TapButtonMap `yaml:"tap_button_map,omitempty"`
	DisabledOnExternalMouse bool          `yaml:"disabled_on_external_mouse"`
	ScrollFactor            *ScrollFactor `yaml:"scroll_factor,omitempty"`
}

func decodeTouchpad(d *decoder, node *document.Node) *Touchpad {
	d.onlyChildren(node)

	t := &Touchpad{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) || t.decodeField(d, child) {
			continue
		}
		switch child.Name {
		case "tap":
			t.Tap = d.presence(child)
		case "dwt":
			t.Dwt = d.presence(child)
		case "dwtp":
			t.Dwtp = d.presence(child)
		case "drag":
			t.Drag = arg(d, child, d.boolValue)
		case "drag-lock":
			t.DragLock = d.presence(child)
		case "click-method":
			t.ClickMethod = parsedArg(d, child, ParseClickMethod)
		case "tap-button-map":
			t.TapButtonMap = parsedArg(d, child, ParseTapButtonMap)
		case "disabled-on-external-mouse":
			t.DisabledOnExternalMouse = d.presence(child)
		case "scroll-factor":
			t.ScrollFactor = decodeScrollFactor(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	return t
}

type Mouse struct {
	PointerSettings `yaml:",inline"`
	ScrollFactor    *ScrollFactor `yaml:"scroll_factor,omitempty"`
}

func decodeMouse(d *decoder, node *document.Node) *Mouse {
	d.onlyChildren(node)

	m := &Mouse{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) || m.decodeField(d, child) {
			continue
		}
		if child.Name == "scroll-factor" {
			m.ScrollFactor = decodeScrollFactor(d, child)
			continue
		}
		unexpectedNode(d, child)
	}
	return m
}

type Trackpoint struct {
	PointerSettings `yaml:",inline"`
}

type Trackball struct {
	PointerSettings `yaml:",inline"`
}

func decodePointerOnly(d *decoder, node *document.Node) PointerSettings {
	d.onlyChildren(node)

	var s PointerSettings
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) || s.decodeField(d, child) {
			continue
		}
		unexpectedNode(d, child)
	}
	return s
}

type Tablet struct {
	Off               bool      `yaml:"off"`
	CalibrationMatrix []float64 `yaml:"calibration_matrix,omitempty"`
	MapToOutput       *string   `yaml:"map_to_output,omitempty"`
	LeftHanded        bool      `yaml:"left_handed"`
}

type Touch struct {
	Off               bool      `yaml:"off"`
	CalibrationMatrix []float64 `yaml:"calibration_matrix,omitempty"`
	MapToOutput       *string   `yaml:"map_to_output,omitempty"`
}

func decodeCalibrationMatrix(d *decoder, node *document.Node) []float64 {
	d.noType(node)
	d.noProps(node)
	d.noChildren(node)

	m := make([]float64, 0, len(node.Args))
	for _, v := range node.Args {
		f, ok := d.numberValue(v)
		if !ok {
			return nil
		}
		m = append(m, f)
	}
	return m
}

func decodeTablet(d *decoder, node *document.Node) *Tablet {
	d.onlyChildren(node)

	t := &Tablet{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			t.Off = d.presence(child)
		case "calibration-matrix":
			t.CalibrationMatrix = decodeCalibrationMatrix(d, child)
		case "map-to-output":
			t.MapToOutput = arg(d, child, d.stringValue)
		case "left-handed":
			t.LeftHanded = d.presence(child)
		default:
			unexpectedNode(d, child)
		}
	}
	return t
}

func decodeTouch(d *decoder, node *document.Node) *Touch {
	d.onlyChildren(node)

	t := &Touch{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			t.Off = d.presence(child)
		case "calibration-matrix":
			t.CalibrationMatrix = decodeCalibrationMatrix(d, child)
		case "map-to-output":
			t.MapToOutput = arg(d, child, d.stringValue)
		default:
			unexpectedNode(d, child)
		}
	}
	return t
}

// FocusFollowsMouse moves focus to the window under the pointer. With
// MaxScrollAmount set, focus does not follow when the view would scroll
// further than that fraction of the screen.
type FocusFollowsMouse struct {
	MaxScrollAmount *float64 `yaml:"max_scroll_amount,omitempty"`
}

func decodeFocusFollowsMouse(d *decoder, node *document.Node) *FocusFollowsMouse {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	f := &FocusFollowsMouse{}
	for _, prop := range node.Props {
		if prop.Name != "max-scroll-amount" {
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
			continue
		}
		if v, ok := parsed(d, prop.Value, ParsePercent); ok {
			f.MaxScrollAmount = &v
		}
	}
	return f
}

type WarpMouseToFocus struct {
	Mode *WarpMouseToFocusMode `yaml:"mode,omitempty"`
}

func decodeWarpMouseToFocus(d *decoder, node *document.Node) *WarpMouseToFocus {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	w := &WarpMouseToFocus{}
	for _, prop := range node.Props {
		if prop.Name != "mode" {
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
			continue
		}
		if m, ok := parsed(d, prop.Value, ParseWarpMouseToFocusMode); ok {
			w.Mode = &m
		}
	}
	return w
}

func ptrIf[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
