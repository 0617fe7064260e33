package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
)

const DefaultScreenshotPath = "~/Pictures/Screenshots/Screenshot from %Y-%m-%d %H-%M-%S.png"

type SpawnAtStartup struct {
	Command []string `yaml:"command"`
}

type SpawnShAtStartup struct {
	Command string `yaml:"command"`
}

func decodeSpawnAtStartup(d *decoder, node *document.Node) (SpawnAtStartup, bool) {
	d.noType(node)
	d.noProps(node)
	d.noChildren(node)

	cmd := make([]string, 0, len(node.Args))
	for _, v := range node.Args {
		s, ok := d.stringValue(v)
		if !ok {
			return SpawnAtStartup{}, false
		}
		cmd = append(cmd, s)
	}
	return SpawnAtStartup{Command: cmd}, true
}

func decodeSpawnShAtStartup(d *decoder, node *document.Node) (SpawnShAtStartup, bool) {
	cmd := arg(d, node, d.stringValue)
	if cmd == nil {
		return SpawnShAtStartup{}, false
	}
	return SpawnShAtStartup{Command: *cmd}, true
}

type Cursor struct {
	XcursorTheme        string  `yaml:"xcursor_theme"`
	XcursorSize         uint8   `yaml:"xcursor_size"`
	HideWhenTyping      bool    `yaml:"hide_when_typing"`
	HideAfterInactiveMs *uint32 `yaml:"hide_after_inactive_ms,omitempty"`
}

type CursorPart struct {
	XcursorTheme        *string
	XcursorSize         *uint8
	HideWhenTyping      *bool
	HideAfterInactiveMs *uint32
}

func DefaultCursor() Cursor {
	return Cursor{XcursorTheme: "default", XcursorSize: 24}
}

func (c *Cursor) MergeWith(part *CursorPart) {
	if part == nil {
		return
	}
	mergeOpt(&c.XcursorTheme, part.XcursorTheme)
	mergeOpt(&c.XcursorSize, part.XcursorSize)
	mergeFlag(&c.HideWhenTyping, part.HideWhenTyping)
	mergePtr(&c.HideAfterInactiveMs, part.HideAfterInactiveMs)
}

func decodeCursorPart(d *decoder, node *document.Node) *CursorPart {
	d.onlyChildren(node)

	p := &CursorPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "xcursor-theme":
			p.XcursorTheme = arg(d, child, d.stringValue)
		case "xcursor-size":
			p.XcursorSize = arg(d, child, d.u8Value)
		case "hide-when-typing":
			p.HideWhenTyping = d.flagPtr(child)
		case "hide-after-inactive-ms":
			p.HideAfterInactiveMs = arg(d, child, d.u32Value)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

// ScreenshotPath is where screenshots are saved. Nil disables saving.
type ScreenshotPath struct {
	Path *string `yaml:"path"`
}

func DefaultScreenshotPathValue() ScreenshotPath {
	return ScreenshotPath{Path: ptr(DefaultScreenshotPath)}
}

func decodeScreenshotPath(d *decoder, node *document.Node) *ScreenshotPath {
	v, ok := d.singleArg(node)
	if !ok {
		return nil
	}
	path, ok := d.optStringValue(v)
	if !ok {
		return nil
	}
	return &ScreenshotPath{Path: path}
}

type HotkeyOverlay struct {
	SkipAtStartup bool `yaml:"skip_at_startup"`
	HideNotBound  bool `yaml:"hide_not_bound"`
}

type HotkeyOverlayPart struct {
	SkipAtStartup *bool
	HideNotBound  *bool
}

func (h *HotkeyOverlay) MergeWith(part *HotkeyOverlayPart) {
	if part == nil {
		return
	}
	mergeFlag(&h.SkipAtStartup, part.SkipAtStartup)
	mergeFlag(&h.HideNotBound, part.HideNotBound)
}

func decodeHotkeyOverlayPart(d *decoder, node *document.Node) *HotkeyOverlayPart {
	d.onlyChildren(node)

	p := &HotkeyOverlayPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "skip-at-startup":
			p.SkipAtStartup = d.flagPtr(child)
		case "hide-not-bound":
			p.HideNotBound = d.flagPtr(child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

type ConfigNotification struct {
	DisableFailed bool `yaml:"disable_failed"`
}

type ConfigNotificationPart struct {
	DisableFailed *bool
}

func (c *ConfigNotification) MergeWith(part *ConfigNotificationPart) {
	if part == nil {
		return
	}
	mergeFlag(&c.DisableFailed, part.DisableFailed)
}

type Clipboard struct {
	DisablePrimary bool `yaml:"disable_primary"`
}

type ClipboardPart struct {
	DisablePrimary *bool
}

func (c *Clipboard) MergeWith(part *ClipboardPart) {
	if part == nil {
		return
	}
	mergeFlag(&c.DisablePrimary, part.DisablePrimary)
}

// decodeSingleFlagSection decodes a section holding one flag child, such as
// `clipboard { disable-primary; }`.
func decodeSingleFlagSection(d *decoder, node *document.Node, name string) *bool {
	d.onlyChildren(node)

	var out *bool
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		if child.Name != name {
			unexpectedNode(d, child)
			continue
		}
		out = d.flagPtr(child)
	}
	return out
}

type Overview struct {
	Zoom            float64         `yaml:"zoom"`
	BackdropColor   Color           `yaml:"backdrop_color"`
	WorkspaceShadow WorkspaceShadow `yaml:"workspace_shadow"`
}

type OverviewPart struct {
	Zoom            *float64
	BackdropColor   *Color
	WorkspaceShadow *WorkspaceShadowPart
}

func DefaultOverview() Overview {
	return Overview{
		Zoom:            0.5,
		BackdropColor:   DefaultBackdropColor,
		WorkspaceShadow: DefaultWorkspaceShadow(),
	}
}

func (o *Overview) MergeWith(part *OverviewPart) {
	if part == nil {
		return
	}
	mergeOpt(&o.Zoom, part.Zoom)
	mergeOpt(&o.BackdropColor, part.BackdropColor)
	o.WorkspaceShadow.MergeWith(part.WorkspaceShadow)
}

func decodeOverviewPart(d *decoder, node *document.Node) *OverviewPart {
	d.onlyChildren(node)

	p := &OverviewPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "zoom":
			p.Zoom = arg(d, child, d.floatIn(0, 1))
		case "backdrop-color":
			p.BackdropColor = decodeColorNode(d, child)
		case "workspace-shadow":
			p.WorkspaceShadow = decodeWorkspaceShadowPart(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

// EnvironmentVariable sets or, with a nil Value, unsets a variable for
// spawned processes
type EnvironmentVariable struct {
	Name  string  `yaml:"name"`
	Value *string `yaml:"value"`
}

func decodeEnvironment(d *decoder, node *document.Node) []EnvironmentVariable {
	d.onlyChildren(node)

	vars := make([]EnvironmentVariable, 0, len(node.Children))
	for _, child := range node.Children {
		v, ok := d.singleArg(child)
		if !ok {
			continue
		}
		value, ok := d.optStringValue(v)
		if !ok {
			continue
		}
		vars = append(vars, EnvironmentVariable{Name: child.Name, Value: value})
	}
	return vars
}

type XwaylandSatellite struct {
	Off  bool   `yaml:"off"`
	Path string `yaml:"path"`
}

type XwaylandSatellitePart struct {
	Off  bool
	On   bool
	Path *string
}

func DefaultXwaylandSatellite() XwaylandSatellite {
	return XwaylandSatellite{Path: "xwayland-satellite"}
}

// MergeWith turns the integration off on an explicit `off` and back on
// with `on`, which wins when a part sets both.
func (x *XwaylandSatellite) MergeWith(part *XwaylandSatellitePart) {
	if part == nil {
		return
	}
	x.Off = x.Off || part.Off
	if part.On {
		x.Off = false
	}
	mergeOpt(&x.Path, part.Path)
}

func decodeXwaylandSatellitePart(d *decoder, node *document.Node) *XwaylandSatellitePart {
	d.onlyChildren(node)

	p := &XwaylandSatellitePart{}
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
		case "path":
			p.Path = arg(d, child, d.stringValue)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}
