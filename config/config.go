package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
)

// Config is the fully resolved compositor configuration
type Config struct {
	Input              Input                 `yaml:"input"`
	Layout             Layout                `yaml:"layout"`
	Gestures           Gestures              `yaml:"gestures"`
	Cursor             Cursor                `yaml:"cursor"`
	ScreenshotPath     ScreenshotPath        `yaml:"screenshot_path"`
	HotkeyOverlay      HotkeyOverlay         `yaml:"hotkey_overlay"`
	ConfigNotification ConfigNotification    `yaml:"config_notification"`
	Clipboard          Clipboard             `yaml:"clipboard"`
	Overview           Overview              `yaml:"overview"`
	Environment        []EnvironmentVariable `yaml:"environment,omitempty"`
	XwaylandSatellite  XwaylandSatellite     `yaml:"xwayland_satellite"`
	PreferNoCSD        bool                  `yaml:"prefer_no_csd"`
	SpawnAtStartup     []SpawnAtStartup      `yaml:"spawn_at_startup,omitempty"`
	SpawnShAtStartup   []SpawnShAtStartup    `yaml:"spawn_sh_at_startup,omitempty"`
	WindowRules        []WindowRule          `yaml:"window_rules,omitempty"`
	LayerRules         []LayerRule           `yaml:"layer_rules,omitempty"`
	Binds              Binds                 `yaml:"binds"`
	SwitchEvents       SwitchBinds           `yaml:"switch_events"`
}

// ConfigPart is what a single document contributes. List sections append to
// the full config; everything else overrides or merges field by field.
type ConfigPart struct {
	Input              *InputPart
	Layout             *LayoutPart
	Gestures           *GesturesPart
	Cursor             *CursorPart
	ScreenshotPath     *ScreenshotPath
	HotkeyOverlay      *HotkeyOverlayPart
	ConfigNotification *ConfigNotificationPart
	Clipboard          *ClipboardPart
	Overview           *OverviewPart
	Environment        []EnvironmentVariable
	XwaylandSatellite  *XwaylandSatellitePart
	PreferNoCSD        *bool
	SpawnAtStartup     []SpawnAtStartup
	SpawnShAtStartup   []SpawnShAtStartup
	WindowRules        []WindowRule
	LayerRules         []LayerRule
	Binds              Binds
	SwitchEvents       *SwitchBinds
}

// DefaultConfig returns the built-in defaults with no binds. The binds a
// fresh install starts with come from DefaultBinds.
func DefaultConfig() *Config {
	return &Config{
		Input:             DefaultInput(),
		Layout:            DefaultLayout(),
		Gestures:          DefaultGestures(),
		Cursor:            DefaultCursor(),
		ScreenshotPath:    DefaultScreenshotPathValue(),
		Overview:          DefaultOverview(),
		XwaylandSatellite: DefaultXwaylandSatellite(),
	}
}

// MergeWith applies one part. Parts must be applied in the order their
// files were included.
func (c *Config) MergeWith(part *ConfigPart) {
	if part == nil {
		return
	}
	c.Input.MergeWith(part.Input)
	c.Layout.MergeWith(part.Layout)
	c.Gestures.MergeWith(part.Gestures)
	c.Cursor.MergeWith(part.Cursor)
	mergeOpt(&c.ScreenshotPath, part.ScreenshotPath)
	c.HotkeyOverlay.MergeWith(part.HotkeyOverlay)
	c.ConfigNotification.MergeWith(part.ConfigNotification)
	c.Clipboard.MergeWith(part.Clipboard)
	c.Overview.MergeWith(part.Overview)
	c.XwaylandSatellite.MergeWith(part.XwaylandSatellite)
	mergeFlag(&c.PreferNoCSD, part.PreferNoCSD)

	c.Environment = append(c.Environment, part.Environment...)
	c.SpawnAtStartup = append(c.SpawnAtStartup, part.SpawnAtStartup...)
	c.SpawnShAtStartup = append(c.SpawnShAtStartup, part.SpawnShAtStartup...)
	c.WindowRules = append(c.WindowRules, part.WindowRules...)
	c.LayerRules = append(c.LayerRules, part.LayerRules...)

	c.Binds.MergeWith(part.Binds)
	c.SwitchEvents.MergeWith(part.SwitchEvents)
}

// repeatableSections may appear any number of times in one document
var repeatableSections = map[string]bool{
	"spawn-at-startup":    true,
	"spawn-sh-at-startup": true,
	"window-rule":         true,
	"layer-rule":          true,
	"include":             true,
}

// decodeSection decodes one top-level node into part
func decodeSection(d *decoder, node *document.Node, part *ConfigPart) {
	switch node.Name {
	case "input":
		part.Input = decodeInputPart(d, node)
	case "layout":
		part.Layout = decodeLayoutPart(d, node)
	case "gestures":
		part.Gestures = decodeGesturesPart(d, node)
	case "cursor":
		part.Cursor = decodeCursorPart(d, node)
	case "screenshot-path":
		part.ScreenshotPath = decodeScreenshotPath(d, node)
	case "hotkey-overlay":
		part.HotkeyOverlay = decodeHotkeyOverlayPart(d, node)
	case "config-notification":
		part.ConfigNotification = &ConfigNotificationPart{
			DisableFailed: decodeSingleFlagSection(d, node, "disable-failed"),
		}
	case "clipboard":
		part.Clipboard = &ClipboardPart{
			DisablePrimary: decodeSingleFlagSection(d, node, "disable-primary"),
		}
	case "overview":
		part.Overview = decodeOverviewPart(d, node)
	case "environment":
		part.Environment = append(part.Environment, decodeEnvironment(d, node)...)
	case "xwayland-satellite":
		part.XwaylandSatellite = decodeXwaylandSatellitePart(d, node)
	case "prefer-no-csd":
		part.PreferNoCSD = d.flagPtr(node)
	case "spawn-at-startup":
		if s, ok := decodeSpawnAtStartup(d, node); ok {
			part.SpawnAtStartup = append(part.SpawnAtStartup, s)
		}
	case "spawn-sh-at-startup":
		if s, ok := decodeSpawnShAtStartup(d, node); ok {
			part.SpawnShAtStartup = append(part.SpawnShAtStartup, s)
		}
	case "window-rule":
		part.WindowRules = append(part.WindowRules, decodeWindowRule(d, node))
	case "layer-rule":
		part.LayerRules = append(part.LayerRules, decodeLayerRule(d, node))
	case "binds":
		part.Binds = decodeBinds(d, node)
	case "switch-events":
		part.SwitchEvents = decodeSwitchBinds(d, node)
	default:
		unexpectedNode(d, node)
	}
}
