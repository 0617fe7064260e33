package config

import (
	"slices"

	document "github.com/inference-gateway/tilecfg/internal/document"
)

var (
	DefaultBackgroundColor = rgba(0x40, 0x40, 0x40, 0xff)
	DefaultBackdropColor   = rgba(0x26, 0x26, 0x26, 0xff)
)

type GradientRelativeTo int

const (
	GradientRelativeWindow GradientRelativeTo = iota
	GradientRelativeWorkspaceView
)

var gradientRelativeTos = enumSpec[GradientRelativeTo]{
	what:  "gradient relative-to",
	names: []string{"window", "workspace-view"},
	vals:  []GradientRelativeTo{GradientRelativeWindow, GradientRelativeWorkspaceView},
}

func (g GradientRelativeTo) String() string            { return gradientRelativeTos.name(g) }
func (g GradientRelativeTo) MarshalYAML() (any, error) { return g.String(), nil }
func ParseGradientRelativeTo(s string) (GradientRelativeTo, error) {
	return gradientRelativeTos.parse(s)
}

var gradientColorSpaces = []string{
	"srgb",
	"srgb-linear",
	"oklab",
	"oklch shorter hue",
	"oklch longer hue",
	"oklch increasing hue",
	"oklch decreasing hue",
}

// Gradient is a two-stop linear gradient
type Gradient struct {
	From       Color              `yaml:"from"`
	To         Color              `yaml:"to"`
	Angle      int16              `yaml:"angle"`
	RelativeTo GradientRelativeTo `yaml:"relative_to"`
	In         string             `yaml:"in"`
}

func decodeGradient(d *decoder, node *document.Node) *Gradient {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	g := Gradient{Angle: 180, In: "srgb"}
	var hasFrom, hasTo, ok bool
	for _, prop := range node.Props {
		switch prop.Name {
		case "from":
			g.From, ok = d.colorValue(prop.Value)
			hasFrom = ok
		case "to":
			g.To, ok = d.colorValue(prop.Value)
			hasTo = ok
		case "angle":
			var n int64
			if n, ok = d.intValue(prop.Value, "i16", -32768, 32767); ok {
				g.Angle = int16(n)
			}
		case "relative-to":
			g.RelativeTo, ok = parsed(d, prop.Value, ParseGradientRelativeTo)
		case "in":
			var s string
			if s, ok = d.stringValue(prop.Value); ok {
				if !slices.Contains(gradientColorSpaces, s) {
					d.errorf(prop.Value.Span, "invalid color space, can be %s", quoteAll(gradientColorSpaces...))
					ok = false
				} else {
					g.In = s
				}
			}
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
			ok = true
		}
		if !ok {
			return nil
		}
	}

	if !hasFrom {
		d.errorf(node.NameSpan, "property `from` is required")
	}
	if !hasTo {
		d.errorf(node.NameSpan, "property `to` is required")
	}
	if !hasFrom || !hasTo {
		return nil
	}
	return &g
}

// decodeColorNode accepts `name "#rrggbb"` or the legacy four-component form
// `name 127 200 255 255`.
func decodeColorNode(d *decoder, node *document.Node) *Color {
	d.noType(node)
	d.noProps(node)
	d.noChildren(node)

	switch len(node.Args) {
	case 0:
		d.errorf(node.NameSpan, "additional argument is required")
	case 1:
		if c, ok := d.colorValue(node.Args[0]); ok {
			return &c
		}
	case 4:
		var comp [4]uint8
		for i, v := range node.Args {
			n, ok := d.u8Value(v)
			if !ok {
				return nil
			}
			comp[i] = n
		}
		c := rgba(comp[0], comp[1], comp[2], comp[3])
		return &c
	default:
		d.errorf(node.Args[1].Span, "expected a color string or four color components")
	}
	return nil
}

// BorderRule is the optional form of a focus ring or border, used both in
// the layout section and in window rules.
type BorderRule struct {
	Off              bool      `yaml:"off,omitempty"`
	On               bool      `yaml:"on,omitempty"`
	Width            *float64  `yaml:"width,omitempty"`
	ActiveColor      *Color    `yaml:"active_color,omitempty"`
	InactiveColor    *Color    `yaml:"inactive_color,omitempty"`
	UrgentColor      *Color    `yaml:"urgent_color,omitempty"`
	ActiveGradient   *Gradient `yaml:"active_gradient,omitempty"`
	InactiveGradient *Gradient `yaml:"inactive_gradient,omitempty"`
	UrgentGradient   *Gradient `yaml:"urgent_gradient,omitempty"`
}

func (r BorderRule) IsEmpty() bool {
	return r == BorderRule{}
}

// MergeWith folds a later rule over r. An explicit off or on in the later
// rule replaces whichever of the two r carried.
func (r *BorderRule) MergeWith(other *BorderRule) {
	if other == nil {
		return
	}
	if other.Off {
		r.Off, r.On = true, false
	}
	if other.On {
		r.Off, r.On = false, true
	}
	mergePtr(&r.Width, other.Width)
	mergePtr(&r.ActiveColor, other.ActiveColor)
	mergePtr(&r.InactiveColor, other.InactiveColor)
	mergePtr(&r.UrgentColor, other.UrgentColor)
	mergePtr(&r.ActiveGradient, other.ActiveGradient)
	mergePtr(&r.InactiveGradient, other.InactiveGradient)
	mergePtr(&r.UrgentGradient, other.UrgentGradient)
}

func decodeBorderRule(d *decoder, node *document.Node) *BorderRule {
	d.onlyChildren(node)

	r := &BorderRule{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			r.Off = d.presence(child)
		case "on":
			r.On = d.presence(child)
		case "width":
			r.Width = arg(d, child, d.floatIn(0, 65535))
		case "active-color":
			r.ActiveColor = decodeColorNode(d, child)
		case "inactive-color":
			r.InactiveColor = decodeColorNode(d, child)
		case "urgent-color":
			r.UrgentColor = decodeColorNode(d, child)
		case "active-gradient":
			r.ActiveGradient = decodeGradient(d, child)
		case "inactive-gradient":
			r.InactiveGradient = decodeGradient(d, child)
		case "urgent-gradient":
			r.UrgentGradient = decodeGradient(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	if r.Off && r.On {
		d.errorf(node.NameSpan, "cannot set both `off` and `on` at the same time")
	}
	return r
}

// BorderStyle is the resolved look of a focus ring or border
type BorderStyle struct {
	Off              bool      `yaml:"off"`
	Width            float64   `yaml:"width"`
	ActiveColor      Color     `yaml:"active_color"`
	InactiveColor    Color     `yaml:"inactive_color"`
	UrgentColor      Color     `yaml:"urgent_color"`
	ActiveGradient   *Gradient `yaml:"active_gradient,omitempty"`
	InactiveGradient *Gradient `yaml:"inactive_gradient,omitempty"`
	UrgentGradient   *Gradient `yaml:"urgent_gradient,omitempty"`
}

func DefaultFocusRing() BorderStyle {
	return BorderStyle{
		Width:         4,
		ActiveColor:   rgba(127, 200, 255, 255),
		InactiveColor: rgba(80, 80, 80, 255),
		UrgentColor:   rgba(155, 0, 0, 255),
	}
}

func DefaultBorder() BorderStyle {
	return BorderStyle{
		Off:           true,
		Width:         4,
		ActiveColor:   rgba(255, 200, 127, 255),
		InactiveColor: rgba(80, 80, 80, 255),
		UrgentColor:   rgba(155, 0, 0, 255),
	}
}

func (b *BorderStyle) MergeWith(part *BorderRule) {
	if part == nil {
		return
	}
	b.Off = (b.Off || part.Off) && !part.On
	mergeOpt(&b.Width, part.Width)
	mergeOpt(&b.ActiveColor, part.ActiveColor)
	mergeOpt(&b.InactiveColor, part.InactiveColor)
	mergeOpt(&b.UrgentColor, part.UrgentColor)
	mergePtr(&b.ActiveGradient, part.ActiveGradient)
	mergePtr(&b.InactiveGradient, part.InactiveGradient)
	mergePtr(&b.UrgentGradient, part.UrgentGradient)
}

type ShadowOffset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func decodeShadowOffset(d *decoder, node *document.Node) *ShadowOffset {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	var off ShadowOffset
	for _, prop := range node.Props {
		var ok bool
		switch prop.Name {
		case "x":
			off.X, ok = d.floatOrInt(prop.Value, -65535, 65535)
		case "y":
			off.Y, ok = d.floatOrInt(prop.Value, -65535, 65535)
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
			ok = true
		}
		if !ok {
			return nil
		}
	}
	return &off
}

// ShadowRule is the optional form of a shadow
type ShadowRule struct {
	Off              bool          `yaml:"off,omitempty"`
	On               bool          `yaml:"on,omitempty"`
	Offset           *ShadowOffset `yaml:"offset,omitempty"`
	Softness         *float64      `yaml:"softness,omitempty"`
	Spread           *float64      `yaml:"spread,omitempty"`
	DrawBehindWindow *bool         `yaml:"draw_behind_window,omitempty"`
	Color            *Color        `yaml:"color,omitempty"`
	InactiveColor    *Color        `yaml:"inactive_color,omitempty"`
}

func (r *ShadowRule) MergeWith(other *ShadowRule) {
	if other == nil {
		return
	}
	if other.Off {
		r.Off, r.On = true, false
	}
	if other.On {
		r.Off, r.On = false, true
	}
	mergePtr(&r.Offset, other.Offset)
	mergePtr(&r.Softness, other.Softness)
	mergePtr(&r.Spread, other.Spread)
	mergePtr(&r.DrawBehindWindow, other.DrawBehindWindow)
	mergePtr(&r.Color, other.Color)
	mergePtr(&r.InactiveColor, other.InactiveColor)
}

func decodeShadowRule(d *decoder, node *document.Node) *ShadowRule {
	d.onlyChildren(node)

	r := &ShadowRule{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			r.Off = d.presence(child)
		case "on":
			r.On = d.presence(child)
		case "offset":
			r.Offset = decodeShadowOffset(d, child)
		case "softness":
			r.Softness = arg(d, child, d.floatIn(0, 1024))
		case "spread":
			r.Spread = arg(d, child, d.floatIn(-1024, 1024))
		case "draw-behind-window":
			r.DrawBehindWindow = arg(d, child, d.boolValue)
		case "color":
			r.Color = decodeColorNode(d, child)
		case "inactive-color":
			r.InactiveColor = decodeColorNode(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	if r.Off && r.On {
		d.errorf(node.NameSpan, "cannot set both `off` and `on` at the same time")
	}
	return r
}

type Shadow struct {
	On               bool         `yaml:"on"`
	Offset           ShadowOffset `yaml:"offset"`
	Softness         float64      `yaml:"softness"`
	Spread           float64      `yaml:"spread"`
	DrawBehindWindow bool         `yaml:"draw_behind_window"`
	Color            Color        `yaml:"color"`
	InactiveColor    *Color       `yaml:"inactive_color,omitempty"`
}

func DefaultShadow() Shadow {
	return Shadow{
		Offset:   ShadowOffset{X: 0, Y: 5},
		Softness: 30,
		Spread:   5,
		Color:    rgba(0, 0, 0, 0x77),
	}
}

func (s *Shadow) MergeWith(part *ShadowRule) {
	if part == nil {
		return
	}
	s.On = (s.On || part.On) && !part.Off
	mergeOpt(&s.Offset, part.Offset)
	mergeOpt(&s.Softness, part.Softness)
	mergeOpt(&s.Spread, part.Spread)
	mergeOpt(&s.DrawBehindWindow, part.DrawBehindWindow)
	mergeOpt(&s.Color, part.Color)
	mergePtr(&s.InactiveColor, part.InactiveColor)
}

// WorkspaceShadow is drawn behind workspaces in the overview
type WorkspaceShadow struct {
	Off      bool         `yaml:"off"`
	Offset   ShadowOffset `yaml:"offset"`
	Softness float64      `yaml:"softness"`
	Spread   float64      `yaml:"spread"`
	Color    Color        `yaml:"color"`
}

type WorkspaceShadowPart struct {
	Off      bool
	On       bool
	Offset   *ShadowOffset
	Softness *float64
	Spread   *float64
	Color    *Color
}

func DefaultWorkspaceShadow() WorkspaceShadow {
	return WorkspaceShadow{
		Offset:   ShadowOffset{X: 0, Y: 10},
		Softness: 40,
		Spread:   10,
		Color:    rgba(0, 0, 0, 0x50),
	}
}

func (s *WorkspaceShadow) MergeWith(part *WorkspaceShadowPart) {
	if part == nil {
		return
	}
	s.Off = (s.Off || part.Off) && !part.On
	mergeOpt(&s.Offset, part.Offset)
	mergeOpt(&s.Softness, part.Softness)
	mergeOpt(&s.Spread, part.Spread)
	mergeOpt(&s.Color, part.Color)
}

func decodeWorkspaceShadowPart(d *decoder, node *document.Node) *WorkspaceShadowPart {
	d.onlyChildren(node)

	p := &WorkspaceShadowPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			p.Off = d.presence(child)
		case "on":
			p.On = d.presence(child)
		case "offset":
			p.Offset = decodeShadowOffset(d, child)
		case "softness":
			p.Softness = arg(d, child, d.floatIn(0, 1024))
		case "spread":
			p.Spread = arg(d, child, d.floatIn(-1024, 1024))
		case "color":
			p.Color = decodeColorNode(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

// InsertHint marks where a dragged window will land
type InsertHint struct {
	Off      bool      `yaml:"off"`
	Color    Color     `yaml:"color"`
	Gradient *Gradient `yaml:"gradient,omitempty"`
}

type InsertHintPart struct {
	Off      bool
	On       bool
	Color    *Color
	Gradient *Gradient
}

func DefaultInsertHint() InsertHint {
	return InsertHint{Color: rgba(127, 200, 255, 128)}
}

func (h *InsertHint) MergeWith(part *InsertHintPart) {
	if part == nil {
		return
	}
	h.Off = (h.Off || part.Off) && !part.On
	mergeOpt(&h.Color, part.Color)
	mergePtr(&h.Gradient, part.Gradient)
}

func decodeInsertHintPart(d *decoder, node *document.Node) *InsertHintPart {
	d.onlyChildren(node)

	p := &InsertHintPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			p.Off = d.presence(child)
		case "on":
			p.On = d.presence(child)
		case "color":
			p.Color = decodeColorNode(d, child)
		case "gradient":
			p.Gradient = decodeGradient(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

// CornerRadius lists radii clockwise from the top-left corner
type CornerRadius struct {
	TopLeft     float64 `yaml:"top_left"`
	TopRight    float64 `yaml:"top_right"`
	BottomRight float64 `yaml:"bottom_right"`
	BottomLeft  float64 `yaml:"bottom_left"`
}

func decodeCornerRadius(d *decoder, node *document.Node) *CornerRadius {
	d.noType(node)
	d.noProps(node)
	d.noChildren(node)

	var radii []float64
	for _, v := range node.Args {
		r, ok := d.floatOrInt(v, 0, 65535)
		if !ok {
			return nil
		}
		radii = append(radii, r)
	}

	switch len(radii) {
	case 1:
		return &CornerRadius{radii[0], radii[0], radii[0], radii[0]}
	case 4:
		return &CornerRadius{radii[0], radii[1], radii[2], radii[3]}
	}
	d.errorf(node.NameSpan, "expected one or four corner radii, found %d", len(radii))
	return nil
}
