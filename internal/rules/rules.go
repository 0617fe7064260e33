package rules

import (
	"reflect"

	config "github.com/inference-gateway/tilecfg/config"
)

// Window describes the window a rule is evaluated against
type Window struct {
	// AppID and Title are nil when the client never set them
	AppID              *string
	Title              *string
	IsActive           bool
	IsFocused          bool
	IsActiveInColumn   bool
	IsFloating         bool
	IsWindowCastTarget bool
	IsUrgent           bool
	// AtStartup is true while the window opened during the startup period
	AtStartup bool
}

// Layer describes a layer-shell surface
type Layer struct {
	Namespace string
	AtStartup bool
}

// WindowMatches reports whether every predicate set in m holds for w. A
// regex field never matches a window that lacks the property.
func WindowMatches(w Window, m config.Match) bool {
	if !regexHolds(m.AppID, w.AppID) || !regexHolds(m.Title, w.Title) {
		return false
	}
	return boolHolds(m.IsActive, w.IsActive) &&
		boolHolds(m.IsFocused, w.IsFocused) &&
		boolHolds(m.IsActiveInColumn, w.IsActiveInColumn) &&
		boolHolds(m.IsFloating, w.IsFloating) &&
		boolHolds(m.IsWindowCastTarget, w.IsWindowCastTarget) &&
		boolHolds(m.IsUrgent, w.IsUrgent) &&
		boolHolds(m.AtStartup, w.AtStartup)
}

func LayerMatches(l Layer, m config.LayerMatch) bool {
	if m.Namespace != nil && !m.Namespace.MatchString(l.Namespace) {
		return false
	}
	return boolHolds(m.AtStartup, l.AtStartup)
}

func regexHolds(re *config.RegexEq, got *string) bool {
	if re == nil {
		return true
	}
	return got != nil && re.MatchString(*got)
}

func boolHolds(want *bool, got bool) bool {
	return want == nil || *want == got
}

// RuleApplies is true when some match holds (or there are none) and no
// exclude holds
func RuleApplies[M any](matches, excludes []M, holds func(M) bool) bool {
	if len(matches) > 0 && !anyHolds(matches, holds) {
		return false
	}
	return !anyHolds(excludes, holds)
}

func anyHolds[M any](ms []M, holds func(M) bool) bool {
	for _, m := range ms {
		if holds(m) {
			return true
		}
	}
	return false
}

// ResolvedWindowRules is the fold of every window rule that applies to one
// window. Later rules override earlier ones field by field.
type ResolvedWindowRules struct {
	DefaultColumnWidth   *config.DefaultPresetSize `yaml:"default_column_width,omitempty"`
	DefaultWindowHeight  *config.DefaultPresetSize `yaml:"default_window_height,omitempty"`
	OpenOnOutput         *string                   `yaml:"open_on_output,omitempty"`
	OpenOnWorkspace      *string                   `yaml:"open_on_workspace,omitempty"`
	OpenMaximized        *bool                     `yaml:"open_maximized,omitempty"`
	OpenMaximizedToEdges *bool                     `yaml:"open_maximized_to_edges,omitempty"`
	OpenFullscreen       *bool                     `yaml:"open_fullscreen,omitempty"`
	OpenFloating         *bool                     `yaml:"open_floating,omitempty"`
	OpenFocused          *bool                     `yaml:"open_focused,omitempty"`

	MinWidth                 *uint16                  `yaml:"min_width,omitempty"`
	MinHeight                *uint16                  `yaml:"min_height,omitempty"`
	MaxWidth                 *uint16                  `yaml:"max_width,omitempty"`
	MaxHeight                *uint16                  `yaml:"max_height,omitempty"`
	FocusRing                config.BorderRule        `yaml:"focus_ring,omitempty"`
	Border                   config.BorderRule        `yaml:"border,omitempty"`
	Shadow                   config.ShadowRule        `yaml:"shadow,omitempty"`
	DrawBorderWithBackground *bool                    `yaml:"draw_border_with_background,omitempty"`
	Opacity                  *float64                 `yaml:"opacity,omitempty"`
	GeometryCornerRadius     *config.CornerRadius     `yaml:"geometry_corner_radius,omitempty"`
	ClipToGeometry           *bool                    `yaml:"clip_to_geometry,omitempty"`
	BabaIsFloat              bool                     `yaml:"baba_is_float,omitempty"`
	BlockOutFrom             *config.BlockOutFrom     `yaml:"block_out_from,omitempty"`
	VariableRefreshRate      *bool                    `yaml:"variable_refresh_rate,omitempty"`
	DefaultFloatingPosition  *config.FloatingPosition `yaml:"default_floating_position,omitempty"`
	ScrollFactor             *float64                 `yaml:"scroll_factor,omitempty"`
	TiledState               *bool                    `yaml:"tiled_state,omitempty"`
}

func ComputeWindowRules(rules []config.WindowRule, w Window) ResolvedWindowRules {
	var out ResolvedWindowRules
	holds := func(m config.Match) bool { return WindowMatches(w, m) }

	for i := range rules {
		r := &rules[i]
		if !RuleApplies(r.Matches, r.Excludes, holds) {
			continue
		}
		set(&out.DefaultColumnWidth, r.DefaultColumnWidth)
		set(&out.DefaultWindowHeight, r.DefaultWindowHeight)
		set(&out.OpenOnOutput, r.OpenOnOutput)
		set(&out.OpenOnWorkspace, r.OpenOnWorkspace)
		set(&out.OpenMaximized, r.OpenMaximized)
		set(&out.OpenMaximizedToEdges, r.OpenMaximizedToEdges)
		set(&out.OpenFullscreen, r.OpenFullscreen)
		set(&out.OpenFloating, r.OpenFloating)
		set(&out.OpenFocused, r.OpenFocused)

		set(&out.MinWidth, r.MinWidth)
		set(&out.MinHeight, r.MinHeight)
		set(&out.MaxWidth, r.MaxWidth)
		set(&out.MaxHeight, r.MaxHeight)
		out.FocusRing.MergeWith(&r.FocusRing)
		out.Border.MergeWith(&r.Border)
		out.Shadow.MergeWith(&r.Shadow)
		set(&out.DrawBorderWithBackground, r.DrawBorderWithBackground)
		set(&out.Opacity, r.Opacity)
		set(&out.GeometryCornerRadius, r.GeometryCornerRadius)
		set(&out.ClipToGeometry, r.ClipToGeometry)
		if r.BabaIsFloat != nil {
			out.BabaIsFloat = *r.BabaIsFloat
		}
		set(&out.BlockOutFrom, r.BlockOutFrom)
		set(&out.VariableRefreshRate, r.VariableRefreshRate)
		set(&out.DefaultFloatingPosition, r.DefaultFloatingPosition)
		set(&out.ScrollFactor, r.ScrollFactor)
		set(&out.TiledState, r.TiledState)
	}
	return out
}

// Recompute replaces r with a fresh resolution and reports whether it
// changed
func (r *ResolvedWindowRules) Recompute(rules []config.WindowRule, w Window) bool {
	next := ComputeWindowRules(rules, w)
	if reflect.DeepEqual(*r, next) {
		return false
	}
	*r = next
	return true
}

type ResolvedLayerRules struct {
	Opacity              *float64             `yaml:"opacity,omitempty"`
	BlockOutFrom         *config.BlockOutFrom `yaml:"block_out_from,omitempty"`
	Shadow               config.ShadowRule    `yaml:"shadow,omitempty"`
	GeometryCornerRadius *config.CornerRadius `yaml:"geometry_corner_radius,omitempty"`
	PlaceWithinBackdrop  bool                 `yaml:"place_within_backdrop,omitempty"`
	BabaIsFloat          bool                 `yaml:"baba_is_float,omitempty"`
}

func ComputeLayerRules(rules []config.LayerRule, l Layer) ResolvedLayerRules {
	var out ResolvedLayerRules
	holds := func(m config.LayerMatch) bool { return LayerMatches(l, m) }

	for i := range rules {
		r := &rules[i]
		if !RuleApplies(r.Matches, r.Excludes, holds) {
			continue
		}
		set(&out.Opacity, r.Opacity)
		set(&out.BlockOutFrom, r.BlockOutFrom)
		out.Shadow.MergeWith(&r.Shadow)
		set(&out.GeometryCornerRadius, r.GeometryCornerRadius)
		if r.PlaceWithinBackdrop != nil {
			out.PlaceWithinBackdrop = *r.PlaceWithinBackdrop
		}
		if r.BabaIsFloat != nil {
			out.BabaIsFloat = *r.BabaIsFloat
		}
	}
	return out
}

func (r *ResolvedLayerRules) Recompute(rules []config.LayerRule, l Layer) bool {
	next := ComputeLayerRules(rules, l)
	if reflect.DeepEqual(*r, next) {
		return false
	}
	*r = next
	return true
}

func set[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
