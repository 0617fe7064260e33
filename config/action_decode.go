package config

import (
	"sort"

	document "github.com/inference-gateway/tilecfg/internal/document"
	ipc "github.com/inference-gateway/tilecfg/ipc"
)

// actionParser consumes the arguments and properties of one action node.
// Each decoder pulls what its variant needs and finish reports the rest.
type actionParser struct {
	d    *decoder
	node *document.Node
	next int
	used map[string]bool
}

// arg returns the next positional argument
func (p *actionParser) arg() (document.Value, bool) {
	if p.next >= len(p.node.Args) {
		p.d.errorf(p.node.NameSpan, "additional argument is required")
		return document.Value{}, false
	}
	v := p.node.Args[p.next]
	p.next++
	return v, true
}

func (p *actionParser) stringArg() string {
	v, ok := p.arg()
	if !ok {
		return ""
	}
	s, _ := p.d.stringValue(v)
	return s
}

// optStringArg accepts a missing argument, null, or a string
func (p *actionParser) optStringArg() *string {
	if p.next >= len(p.node.Args) {
		return nil
	}
	v := p.node.Args[p.next]
	p.next++
	s, _ := p.d.optStringValue(v)
	return s
}

// stringArgs consumes every remaining argument
func (p *actionParser) stringArgs() []string {
	out := []string{}
	for p.next < len(p.node.Args) {
		v := p.node.Args[p.next]
		p.next++
		if s, ok := p.d.stringValue(v); ok {
			out = append(out, s)
		}
	}
	return out
}

func (p *actionParser) u8Arg() uint8 {
	v, ok := p.arg()
	if !ok {
		return 0
	}
	n, _ := p.d.u8Value(v)
	return n
}

func (p *actionParser) usizeArg() int {
	v, ok := p.arg()
	if !ok {
		return 0
	}
	n, _ := p.d.usizeValue(v)
	return n
}

func (p *actionParser) sizeChangeArg() ipc.SizeChange {
	v, ok := p.arg()
	if !ok {
		return ipc.SizeChange{}
	}
	c, _ := parsed(p.d, v, ipc.ParseSizeChange)
	return c
}

func (p *actionParser) layoutArg() ipc.LayoutSwitchTarget {
	v, ok := p.arg()
	if !ok {
		return ipc.LayoutSwitchTarget{}
	}
	t, _ := parsed(p.d, v, ipc.ParseLayoutSwitchTarget)
	return t
}

func (p *actionParser) directionArg() WindowMoveDirection {
	v, ok := p.arg()
	if !ok {
		return DirectionUp
	}
	dir, _ := parsed(p.d, v, windowMoveDirections.parse)
	return dir
}

// workspaceArg decodes a workspace reference: strings are names and integers
// are indices.
func (p *actionParser) workspaceArg() WorkspaceReference {
	v, ok := p.arg()
	if !ok {
		return WorkspaceIndex(0)
	}
	switch v.Kind {
	case document.KindString:
		p.d.valueType(v)
		return WorkspaceName(v.Str)
	case document.KindInt:
		n, _ := p.d.u8Value(v)
		return WorkspaceIndex(n)
	}
	p.d.valueType(v)
	p.d.errorf(v.Span, "Unsupported value, only numbers and strings are recognized")
	return WorkspaceIndex(0)
}

func (p *actionParser) prop(name string) (document.Value, bool) {
	prop, ok := p.node.Prop(name)
	if !ok {
		return document.Value{}, false
	}
	p.used[name] = true
	return prop.Value, true
}

func (p *actionParser) boolProp(name string, def bool) bool {
	v, ok := p.prop(name)
	if !ok {
		return def
	}
	b, ok := p.d.boolValue(v)
	if !ok {
		return def
	}
	return b
}

func (p *actionParser) u16Prop(name string) *uint16 {
	v, ok := p.prop(name)
	if !ok {
		return nil
	}
	n, ok := p.d.u16Value(v)
	if !ok {
		return nil
	}
	return &n
}

func (p *actionParser) finish() {
	p.d.noType(p.node)
	for _, extra := range p.node.Args[p.next:] {
		p.d.errorf(extra.Span, "unexpected argument")
	}
	for _, prop := range p.node.Props {
		if !p.used[prop.Name] {
			p.d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
		}
	}
	p.d.noChildren(p.node)
}

type actionDecoder func(p *actionParser) Action

func unit(a Action) actionDecoder {
	return func(*actionParser) Action { return a }
}

// actionDecoders lists every action a bind may name
var actionDecoders = map[string]actionDecoder{
	"quit": func(p *actionParser) Action {
		return Quit{SkipConfirmation: p.boolProp("skip-confirmation", false)}
	},
	"suspend":                     unit(Suspend{}),
	"power-off-monitors":          unit(PowerOffMonitors{}),
	"power-on-monitors":           unit(PowerOnMonitors{}),
	"toggle-debug-tint":           unit(ToggleDebugTint{}),
	"debug-toggle-opaque-regions": unit(DebugToggleOpaqueRegions{}),
	"debug-toggle-damage":         unit(DebugToggleDamage{}),
	"spawn": func(p *actionParser) Action {
		return Spawn{Command: p.stringArgs()}
	},
	"spawn-sh": func(p *actionParser) Action {
		return SpawnSh{Command: p.stringArg()}
	},
	"do-screen-transition": func(p *actionParser) Action {
		return DoScreenTransition{DelayMs: p.u16Prop("delay-ms")}
	},
	"screenshot": func(p *actionParser) Action {
		return Screenshot{ShowPointer: p.boolProp("show-pointer", true)}
	},
	"screenshot-screen": func(p *actionParser) Action {
		return ScreenshotScreen{
			WriteToDisk: p.boolProp("write-to-disk", true),
			ShowPointer: p.boolProp("show-pointer", true),
		}
	},
	"screenshot-window": func(p *actionParser) Action {
		return ScreenshotWindow{WriteToDisk: p.boolProp("write-to-disk", true)}
	},
	"toggle-keyboard-shortcuts-inhibit": unit(ToggleKeyboardShortcutsInhibit{}),
	"close-window":                      unit(CloseWindow{}),
	"toggle-group":                      unit(ToggleGroup{}),
	"move-window-into-or-out-of-group": func(p *actionParser) Action {
		return MoveWindowIntoOrOutOfGroup{Direction: p.directionArg()}
	},
	"focus-next-window":          unit(FocusNextWindow{}),
	"focus-previous-window":      unit(FocusPreviousWindow{}),
	"fullscreen-window":          unit(FullscreenWindow{}),
	"toggle-windowed-fullscreen": unit(ToggleWindowedFullscreen{}),
	"focus-window-in-column": func(p *actionParser) Action {
		return FocusWindowInColumn{Index: p.u8Arg()}
	},
	"focus-window-previous":       unit(FocusWindowPrevious{}),
	"focus-column-left":           unit(FocusColumnLeft{}),
	"focus-column-right":          unit(FocusColumnRight{}),
	"focus-column-first":          unit(FocusColumnFirst{}),
	"focus-column-last":           unit(FocusColumnLast{}),
	"focus-column-right-or-first": unit(FocusColumnRightOrFirst{}),
	"focus-column-left-or-last":   unit(FocusColumnLeftOrLast{}),
	"focus-column": func(p *actionParser) Action {
		return FocusColumn{Index: p.usizeArg()}
	},
	"focus-window-or-monitor-up":            unit(FocusWindowOrMonitorUp{}),
	"focus-window-or-monitor-down":          unit(FocusWindowOrMonitorDown{}),
	"focus-column-or-monitor-left":          unit(FocusColumnOrMonitorLeft{}),
	"focus-column-or-monitor-right":         unit(FocusColumnOrMonitorRight{}),
	"focus-window-down":                     unit(FocusWindowDown{}),
	"focus-window-up":                       unit(FocusWindowUp{}),
	"focus-window-down-or-column-left":      unit(FocusWindowDownOrColumnLeft{}),
	"focus-window-down-or-column-right":     unit(FocusWindowDownOrColumnRight{}),
	"focus-window-up-or-column-left":        unit(FocusWindowUpOrColumnLeft{}),
	"focus-window-up-or-column-right":       unit(FocusWindowUpOrColumnRight{}),
	"focus-window-or-workspace-down":        unit(FocusWindowOrWorkspaceDown{}),
	"focus-window-or-workspace-up":          unit(FocusWindowOrWorkspaceUp{}),
	"focus-window-top":                      unit(FocusWindowTop{}),
	"focus-window-bottom":                   unit(FocusWindowBottom{}),
	"focus-window-down-or-top":              unit(FocusWindowDownOrTop{}),
	"focus-window-up-or-bottom":             unit(FocusWindowUpOrBottom{}),
	"move-column-left":                      unit(MoveColumnLeft{}),
	"move-column-right":                     unit(MoveColumnRight{}),
	"move-column-to-first":                  unit(MoveColumnToFirst{}),
	"move-column-to-last":                   unit(MoveColumnToLast{}),
	"move-column-left-or-to-monitor-left":   unit(MoveColumnLeftOrToMonitorLeft{}),
	"move-column-right-or-to-monitor-right": unit(MoveColumnRightOrToMonitorRight{}),
	"move-column-to-index": func(p *actionParser) Action {
		return MoveColumnToIndex{Index: p.usizeArg()}
	},
	"move-window-down":                      unit(MoveWindowDown{}),
	"move-window-up":                        unit(MoveWindowUp{}),
	"move-window-down-or-to-workspace-down": unit(MoveWindowDownOrToWorkspaceDown{}),
	"move-window-up-or-to-workspace-up":     unit(MoveWindowUpOrToWorkspaceUp{}),
	"consume-or-expel-window-left":          unit(ConsumeOrExpelWindowLeft{}),
	"consume-or-expel-window-right":         unit(ConsumeOrExpelWindowRight{}),
	"consume-window-into-column":            unit(ConsumeWindowIntoColumn{}),
	"expel-window-from-column":              unit(ExpelWindowFromColumn{}),
	"swap-window-left":                      unit(SwapWindowLeft{}),
	"swap-window-right":                     unit(SwapWindowRight{}),
	"center-column":                         unit(CenterColumn{}),
	"center-window":                         unit(CenterWindow{}),
	"center-visible-columns":                unit(CenterVisibleColumns{}),
	"focus-workspace-down":                  unit(FocusWorkspaceDown{}),
	"focus-workspace-up":                    unit(FocusWorkspaceUp{}),
	"focus-workspace": func(p *actionParser) Action {
		return FocusWorkspace{Reference: p.workspaceArg()}
	},
	"focus-workspace-previous": unit(FocusWorkspacePrevious{}),
	"move-window-to-workspace-down": func(p *actionParser) Action {
		return MoveWindowToWorkspaceDown{Focus: p.boolProp("focus", true)}
	},
	"move-window-to-workspace-up": func(p *actionParser) Action {
		return MoveWindowToWorkspaceUp{Focus: p.boolProp("focus", true)}
	},
	"move-window-to-workspace": func(p *actionParser) Action {
		return MoveWindowToWorkspace{Reference: p.workspaceArg(), Focus: p.boolProp("focus", true)}
	},
	"move-column-to-workspace-down": func(p *actionParser) Action {
		return MoveColumnToWorkspaceDown{Focus: p.boolProp("focus", true)}
	},
	"move-column-to-workspace-up": func(p *actionParser) Action {
		return MoveColumnToWorkspaceUp{Focus: p.boolProp("focus", true)}
	},
	"move-column-to-workspace": func(p *actionParser) Action {
		return MoveColumnToWorkspace{Reference: p.workspaceArg(), Focus: p.boolProp("focus", true)}
	},
	"move-workspace-down": unit(MoveWorkspaceDown{}),
	"move-workspace-up":   unit(MoveWorkspaceUp{}),
	"move-workspace-to-index": func(p *actionParser) Action {
		return MoveWorkspaceToIndex{Index: p.usizeArg()}
	},
	"move-workspace-to-monitor": func(p *actionParser) Action {
		return MoveWorkspaceToMonitor{Output: p.stringArg()}
	},
	"set-workspace-name": func(p *actionParser) Action {
		return SetWorkspaceName{Name: p.stringArg()}
	},
	"unset-workspace-name":   unit(UnsetWorkspaceName{}),
	"focus-monitor-left":     unit(FocusMonitorLeft{}),
	"focus-monitor-right":    unit(FocusMonitorRight{}),
	"focus-monitor-down":     unit(FocusMonitorDown{}),
	"focus-monitor-up":       unit(FocusMonitorUp{}),
	"focus-monitor-previous": unit(FocusMonitorPrevious{}),
	"focus-monitor-next":     unit(FocusMonitorNext{}),
	"focus-monitor": func(p *actionParser) Action {
		return FocusMonitor{Output: p.stringArg()}
	},
	"move-window-to-monitor-left":     unit(MoveWindowToMonitorLeft{}),
	"move-window-to-monitor-right":    unit(MoveWindowToMonitorRight{}),
	"move-window-to-monitor-down":     unit(MoveWindowToMonitorDown{}),
	"move-window-to-monitor-up":       unit(MoveWindowToMonitorUp{}),
	"move-window-to-monitor-previous": unit(MoveWindowToMonitorPrevious{}),
	"move-window-to-monitor-next":     unit(MoveWindowToMonitorNext{}),
	"move-window-to-monitor": func(p *actionParser) Action {
		return MoveWindowToMonitor{Output: p.stringArg()}
	},
	"move-column-to-monitor-left":     unit(MoveColumnToMonitorLeft{}),
	"move-column-to-monitor-right":    unit(MoveColumnToMonitorRight{}),
	"move-column-to-monitor-down":     unit(MoveColumnToMonitorDown{}),
	"move-column-to-monitor-up":       unit(MoveColumnToMonitorUp{}),
	"move-column-to-monitor-previous": unit(MoveColumnToMonitorPrevious{}),
	"move-column-to-monitor-next":     unit(MoveColumnToMonitorNext{}),
	"move-column-to-monitor": func(p *actionParser) Action {
		return MoveColumnToMonitor{Output: p.stringArg()}
	},
	"set-window-width": func(p *actionParser) Action {
		return SetWindowWidth{Change: p.sizeChangeArg()}
	},
	"set-window-height": func(p *actionParser) Action {
		return SetWindowHeight{Change: p.sizeChangeArg()}
	},
	"reset-window-height":              unit(ResetWindowHeight{}),
	"switch-preset-column-width":       unit(SwitchPresetColumnWidth{}),
	"switch-preset-column-width-back":  unit(SwitchPresetColumnWidthBack{}),
	"switch-preset-window-width":       unit(SwitchPresetWindowWidth{}),
	"switch-preset-window-width-back":  unit(SwitchPresetWindowWidthBack{}),
	"switch-preset-window-height":      unit(SwitchPresetWindowHeight{}),
	"switch-preset-window-height-back": unit(SwitchPresetWindowHeightBack{}),
	"maximize-column":                  unit(MaximizeColumn{}),
	"maximize-window-to-edges":         unit(MaximizeWindowToEdges{}),
	"set-column-width": func(p *actionParser) Action {
		return SetColumnWidth{Change: p.sizeChangeArg()}
	},
	"expand-column-to-available-width": unit(ExpandColumnToAvailableWidth{}),
	"switch-layout": func(p *actionParser) Action {
		return SwitchLayout{Layout: p.layoutArg()}
	},
	"show-hotkey-overlay":                      unit(ShowHotkeyOverlay{}),
	"move-workspace-to-monitor-left":           unit(MoveWorkspaceToMonitorLeft{}),
	"move-workspace-to-monitor-right":          unit(MoveWorkspaceToMonitorRight{}),
	"move-workspace-to-monitor-down":           unit(MoveWorkspaceToMonitorDown{}),
	"move-workspace-to-monitor-up":             unit(MoveWorkspaceToMonitorUp{}),
	"move-workspace-to-monitor-previous":       unit(MoveWorkspaceToMonitorPrevious{}),
	"move-workspace-to-monitor-next":           unit(MoveWorkspaceToMonitorNext{}),
	"toggle-window-floating":                   unit(ToggleWindowFloating{}),
	"move-window-to-floating":                  unit(MoveWindowToFloating{}),
	"move-window-to-tiling":                    unit(MoveWindowToTiling{}),
	"focus-floating":                           unit(FocusFloating{}),
	"focus-tiling":                             unit(FocusTiling{}),
	"switch-focus-between-floating-and-tiling": unit(SwitchFocusBetweenFloatingAndTiling{}),
	"toggle-window-rule-opacity":               unit(ToggleWindowRuleOpacity{}),
	"set-dynamic-cast-window":                  unit(SetDynamicCastWindow{}),
	"set-dynamic-cast-monitor": func(p *actionParser) Action {
		return SetDynamicCastMonitor{Output: p.optStringArg()}
	},
	"clear-dynamic-cast-target": unit(ClearDynamicCastTarget{}),
	"toggle-overview":           unit(ToggleOverview{}),
	"open-overview":             unit(OpenOverview{}),
	"close-overview":            unit(CloseOverview{}),
}

// ActionNames lists every action node name accepted in binds, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionDecoders))
	for name := range actionDecoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// decodeAction decodes the action child of a bind. ok is false when any
// diagnostic was reported for the node, in which case the action must not
// be used.
func decodeAction(d *decoder, node *document.Node) (Action, bool) {
	decode, found := actionDecoders[node.Name]
	if !found {
		d.errorf(node.NameSpan, "unknown action `%s`", node.Name)
		return nil, false
	}

	before := d.diags.Len()
	p := &actionParser{d: d, node: node, used: map[string]bool{}}
	a := decode(p)
	p.finish()

	return a, d.diags.Len() == before
}
