package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
)

// Match is a conjunction of window predicates. Unset fields match anything.
type Match struct {
	AppID              *RegexEq `yaml:"app_id,omitempty"`
	Title              *RegexEq `yaml:"title,omitempty"`
	IsActive           *bool    `yaml:"is_active,omitempty"`
	IsFocused          *bool    `yaml:"is_focused,omitempty"`
	IsActiveInColumn   *bool    `yaml:"is_active_in_column,omitempty"`
	IsFloating         *bool    `yaml:"is_floating,omitempty"`
	IsWindowCastTarget *bool    `yaml:"is_window_cast_target,omitempty"`
	IsUrgent           *bool    `yaml:"is_urgent,omitempty"`
	AtStartup          *bool    `yaml:"at_startup,omitempty"`
}

// Equal compares regex fields by pattern text
func (m Match) Equal(o Match) bool {
	return regexEqual(m.AppID, o.AppID) &&
		regexEqual(m.Title, o.Title) &&
		boolPtrEqual(m.IsActive, o.IsActive) &&
		boolPtrEqual(m.IsFocused, o.IsFocused) &&
		boolPtrEqual(m.IsActiveInColumn, o.IsActiveInColumn) &&
		boolPtrEqual(m.IsFloating, o.IsFloating) &&
		boolPtrEqual(m.IsWindowCastTarget, o.IsWindowCastTarget) &&
		boolPtrEqual(m.IsUrgent, o.IsUrgent) &&
		boolPtrEqual(m.AtStartup, o.AtStartup)
}

func decodeMatch(d *decoder, node *document.Node) Match {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	var m Match
	for _, prop := range node.Props {
		switch prop.Name {
		case "app-id":
			m.AppID = regexProp(d, prop)
		case "title":
			m.Title = regexProp(d, prop)
		case "is-active":
			m.IsActive = d.optBool(prop)
		case "is-focused":
			m.IsFocused = d.optBool(prop)
		case "is-active-in-column":
			m.IsActiveInColumn = d.optBool(prop)
		case "is-floating":
			m.IsFloating = d.optBool(prop)
		case "is-window-cast-target":
			m.IsWindowCastTarget = d.optBool(prop)
		case "is-urgent":
			m.IsUrgent = d.optBool(prop)
		case "at-startup":
			m.AtStartup = d.optBool(prop)
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
		}
	}
	return m
}

func regexProp(d *decoder, prop document.Property) *RegexEq {
	re, ok := parsed(d, prop.Value, ParseRegexEq)
	if !ok {
		return nil
	}
	return &re
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// FloatingPosition places a floating window relative to a screen anchor
type FloatingPosition struct {
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	RelativeTo RelativeTo `yaml:"relative_to"`
}

func decodeFloatingPosition(d *decoder, node *document.Node) *FloatingPosition {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	var pos FloatingPosition
	var hasX, hasY bool
	for _, prop := range node.Props {
		var ok bool
		switch prop.Name {
		case "x":
			pos.X, ok = d.floatOrInt(prop.Value, -65535, 65535)
			hasX = ok
		case "y":
			pos.Y, ok = d.floatOrInt(prop.Value, -65535, 65535)
			hasY = ok
		case "relative-to":
			pos.RelativeTo, ok = parsed(d, prop.Value, ParseRelativeTo)
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
			ok = true
		}
		if !ok {
			return nil
		}
	}
	if !hasX {
		d.errorf(node.NameSpan, "property `x` is required")
	}
	if !hasY {
		d.errorf(node.NameSpan, "property `y` is required")
	}
	if !hasX || !hasY {
		return nil
	}
	return &pos
}

type WindowRule struct {
	Matches  []Match `yaml:"matches,omitempty"`
	Excludes []Match `yaml:"excludes,omitempty"`

	// Applied when the window first opens
	DefaultColumnWidth   *DefaultPresetSize `yaml:"default_column_width,omitempty"`
	DefaultWindowHeight  *DefaultPresetSize `yaml:"default_window_height,omitempty"`
	OpenOnOutput         *string            `yaml:"open_on_output,omitempty"`
	OpenOnWorkspace      *string            `yaml:"open_on_workspace,omitempty"`
	OpenMaximized        *bool              `yaml:"open_maximized,omitempty"`
	OpenMaximizedToEdges *bool              `yaml:"open_maximized_to_edges,omitempty"`
	OpenFullscreen       *bool              `yaml:"open_fullscreen,omitempty"`
	OpenFloating         *bool              `yaml:"open_floating,omitempty"`
	OpenFocused          *bool              `yaml:"open_focused,omitempty"`

	// Re-evaluated whenever the window state changes
	MinWidth                 *uint16           `yaml:"min_width,omitempty"`
	MinHeight                *uint16           `yaml:"min_height,omitempty"`
	MaxWidth                 *uint16           `yaml:"max_width,omitempty"`
	MaxHeight                *uint16           `yaml:"max_height,omitempty"`
	FocusRing                BorderRule        `yaml:"focus_ring,omitempty"`
	Border                   BorderRule        `yaml:"border,omitempty"`
	Shadow                   ShadowRule        `yaml:"shadow,omitempty"`
	DrawBorderWithBackground *bool             `yaml:"draw_border_with_background,omitempty"`
	Opacity                  *float64          `yaml:"opacity,omitempty"`
	GeometryCornerRadius     *CornerRadius     `yaml:"geometry_corner_radius,omitempty"`
	ClipToGeometry           *bool             `yaml:"clip_to_geometry,omitempty"`
	BabaIsFloat              *bool             `yaml:"baba_is_float,omitempty"`
	BlockOutFrom             *BlockOutFrom     `yaml:"block_out_from,omitempty"`
	VariableRefreshRate      *bool             `yaml:"variable_refresh_rate,omitempty"`
	DefaultFloatingPosition  *FloatingPosition `yaml:"default_floating_position,omitempty"`
	ScrollFactor             *float64          `yaml:"scroll_factor,omitempty"`
	TiledState               *bool             `yaml:"tiled_state,omitempty"`
}

func (p DefaultPresetSize) MarshalYAML() (any, error) {
	if p.Size == nil {
		return "client", nil
	}
	return p.Size.MarshalYAML()
}

func decodeWindowRule(d *decoder, node *document.Node) WindowRule {
	d.onlyChildren(node)

	var r WindowRule
	once := setOnce{}
	for _, child := range node.Children {
		switch child.Name {
		case "match":
			r.Matches = append(r.Matches, decodeMatch(d, child))
			continue
		case "exclude":
			r.Excludes = append(r.Excludes, decodeMatch(d, child))
			continue
		}
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "default-column-width":
			r.DefaultColumnWidth = decodeDefaultPresetSize(d, child)
		case "default-window-height":
			r.DefaultWindowHeight = decodeDefaultPresetSize(d, child)
		case "open-on-output":
			r.OpenOnOutput = arg(d, child, d.stringValue)
		case "open-on-workspace":
			r.OpenOnWorkspace = arg(d, child, d.stringValue)
		case "open-maximized":
			r.OpenMaximized = arg(d, child, d.boolValue)
		case "open-maximized-to-edges":
			r.OpenMaximizedToEdges = arg(d, child, d.boolValue)
		case "open-fullscreen":
			r.OpenFullscreen = arg(d, child, d.boolValue)
		case "open-floating":
			r.OpenFloating = arg(d, child, d.boolValue)
		case "open-focused":
			r.OpenFocused = arg(d, child, d.boolValue)
		case "min-width":
			r.MinWidth = arg(d, child, d.u16Value)
		case "min-height":
			r.MinHeight = arg(d, child, d.u16Value)
		case "max-width":
			r.MaxWidth = arg(d, child, d.u16Value)
		case "max-height":
			r.MaxHeight = arg(d, child, d.u16Value)
		case "focus-ring":
			mergeOpt(&r.FocusRing, decodeBorderRule(d, child))
		case "border":
			mergeOpt(&r.Border, decodeBorderRule(d, child))
		case "shadow":
			mergeOpt(&r.Shadow, decodeShadowRule(d, child))
		case "draw-border-with-background":
			r.DrawBorderWithBackground = arg(d, child, d.boolValue)
		case "opacity":
			r.Opacity = arg(d, child, d.numberValue)
		case "geometry-corner-radius":
			r.GeometryCornerRadius = decodeCornerRadius(d, child)
		case "clip-to-geometry":
			r.ClipToGeometry = arg(d, child, d.boolValue)
		case "baba-is-float":
			r.BabaIsFloat = arg(d, child, d.boolValue)
		case "block-out-from":
			r.BlockOutFrom = parsedArg(d, child, ParseBlockOutFrom)
		case "variable-refresh-rate":
			r.VariableRefreshRate = arg(d, child, d.boolValue)
		case "default-floating-position":
			r.DefaultFloatingPosition = decodeFloatingPosition(d, child)
		case "scroll-factor":
			r.ScrollFactor = arg(d, child, d.floatIn(0, 100))
		case "tiled-state":
			r.TiledState = arg(d, child, d.boolValue)
		default:
			unexpectedNode(d, child)
		}
	}
	return r
}
