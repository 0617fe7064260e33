package config

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	ipc "github.com/inference-gateway/tilecfg/ipc"
)

// Action is a compositor command bound to a key or sent over IPC. The set of
// implementations is closed: every variant embeds action and lives in this
// file.
type Action interface {
	isAction()
}

type action struct{}

func (action) isAction() {}

// WindowMoveDirection selects where a window moves relative to its group
type WindowMoveDirection int

const (
	DirectionUp WindowMoveDirection = iota
	DirectionLeft
	DirectionRight
	DirectionDown
)

var windowMoveDirections = enumSpec[WindowMoveDirection]{
	what:  "direction",
	names: []string{"up", "left", "right", "down"},
	vals:  []WindowMoveDirection{DirectionUp, DirectionLeft, DirectionRight, DirectionDown},
}

func (d WindowMoveDirection) String() string            { return windowMoveDirections.name(d) }
func (d WindowMoveDirection) MarshalYAML() (any, error) { return d.String(), nil }

// WorkspaceRefKind tags a WorkspaceReference
type WorkspaceRefKind int

const (
	WorkspaceRefIndex WorkspaceRefKind = iota
	WorkspaceRefName
	WorkspaceRefID
)

// WorkspaceReference names a workspace by index, name or (over IPC) id.
// Documents can only spell the first two.
type WorkspaceReference struct {
	Kind  WorkspaceRefKind
	ID    uint64
	Index uint8
	Name  string
}

func WorkspaceIndex(i uint8) WorkspaceReference {
	return WorkspaceReference{Kind: WorkspaceRefIndex, Index: i}
}

func WorkspaceName(name string) WorkspaceReference {
	return WorkspaceReference{Kind: WorkspaceRefName, Name: name}
}

func WorkspaceID(id uint64) WorkspaceReference {
	return WorkspaceReference{Kind: WorkspaceRefID, ID: id}
}

func (w WorkspaceReference) String() string {
	switch w.Kind {
	case WorkspaceRefName:
		return w.Name
	case WorkspaceRefID:
		return "id:" + strconv.FormatUint(w.ID, 10)
	}
	return strconv.FormatUint(uint64(w.Index), 10)
}

func (w WorkspaceReference) MarshalYAML() (any, error) {
	switch w.Kind {
	case WorkspaceRefName:
		return w.Name, nil
	case WorkspaceRefID:
		return map[string]uint64{"id": w.ID}, nil
	}
	return w.Index, nil
}

// MruDirection orders the recent-windows switcher
type MruDirection int

const (
	MruForward MruDirection = iota
	MruBackward
)

// MruScope limits which windows the recent-windows switcher cycles through
type MruScope int

const (
	MruScopeAll MruScope = iota
	MruScopeOutput
	MruScopeWorkspace
)

var mruScopes = enumSpec[MruScope]{
	what:  "scope",
	names: []string{"all", "output", "workspace"},
	vals:  []MruScope{MruScopeAll, MruScopeOutput, MruScopeWorkspace},
}

func ParseMruScope(s string) (MruScope, error) { return mruScopes.parse(s) }
func (s MruScope) String() string              { return mruScopes.name(s) }

// MruFilter narrows the recent-windows switcher
type MruFilter int

const (
	MruFilterAll MruFilter = iota
	MruFilterAppID
)

var mruFilters = enumSpec[MruFilter]{
	what:  "filter",
	names: []string{"app-id"},
	vals:  []MruFilter{MruFilterAppID},
}

func ParseMruFilter(s string) (MruFilter, error) { return mruFilters.parse(s) }

func (f MruFilter) String() string {
	if f == MruFilterAll {
		return "all"
	}
	return mruFilters.name(f)
}

type (
	Quit struct {
		action
		SkipConfirmation bool
	}
	ChangeVt struct {
		action
		Vt int32
	}
	Suspend                  struct{ action }
	PowerOffMonitors         struct{ action }
	PowerOnMonitors          struct{ action }
	ToggleDebugTint          struct{ action }
	DebugToggleOpaqueRegions struct{ action }
	DebugToggleDamage        struct{ action }
	Spawn                    struct {
		action
		Command []string
	}
	SpawnSh struct {
		action
		Command string
	}
	DoScreenTransition struct {
		action
		DelayMs *uint16
	}
	ConfirmScreenshot struct {
		action
		WriteToDisk bool
	}
	CancelScreenshot        struct{ action }
	ScreenshotTogglePointer struct{ action }
	Screenshot              struct {
		action
		ShowPointer bool
		Path        *string
	}
	ScreenshotScreen struct {
		action
		WriteToDisk bool
		ShowPointer bool
		Path        *string
	}
	ScreenshotWindow struct {
		action
		WriteToDisk bool
		Path        *string
	}
	ScreenshotWindowByID struct {
		action
		ID          uint64
		WriteToDisk bool
		Path        *string
	}
	ToggleKeyboardShortcutsInhibit struct{ action }
	CloseWindow                    struct{ action }
	CloseWindowByID                struct {
		action
		ID uint64
	}
	ToggleGroup                struct{ action }
	MoveWindowIntoOrOutOfGroup struct {
		action
		Direction WindowMoveDirection
	}
	FocusNextWindow     struct{ action }
	FocusPreviousWindow struct{ action }
	FullscreenWindow    struct{ action }
	FullscreenWindowByID struct {
		action
		ID uint64
	}
	ToggleWindowedFullscreen     struct{ action }
	ToggleWindowedFullscreenByID struct {
		action
		ID uint64
	}
	FocusWindow struct {
		action
		ID uint64
	}
	FocusWindowInColumn struct {
		action
		Index uint8
	}
	FocusWindowPrevious        struct{ action }
	FocusColumnLeft            struct{ action }
	FocusColumnLeftUnderMouse  struct{ action }
	FocusColumnRight           struct{ action }
	FocusColumnRightUnderMouse struct{ action }
	FocusColumnFirst           struct{ action }
	FocusColumnLast            struct{ action }
	FocusColumnRightOrFirst    struct{ action }
	FocusColumnLeftOrLast      struct{ action }
	FocusColumn                struct {
		action
		Index int
	}
	FocusWindowOrMonitorUp          struct{ action }
	FocusWindowOrMonitorDown        struct{ action }
	FocusColumnOrMonitorLeft        struct{ action }
	FocusColumnOrMonitorRight       struct{ action }
	FocusWindowDown                 struct{ action }
	FocusWindowUp                   struct{ action }
	FocusWindowDownOrColumnLeft     struct{ action }
	FocusWindowDownOrColumnRight    struct{ action }
	FocusWindowUpOrColumnLeft       struct{ action }
	FocusWindowUpOrColumnRight      struct{ action }
	FocusWindowOrWorkspaceDown      struct{ action }
	FocusWindowOrWorkspaceUp        struct{ action }
	FocusWindowTop                  struct{ action }
	FocusWindowBottom               struct{ action }
	FocusWindowDownOrTop            struct{ action }
	FocusWindowUpOrBottom           struct{ action }
	MoveColumnLeft                  struct{ action }
	MoveColumnRight                 struct{ action }
	MoveColumnToFirst               struct{ action }
	MoveColumnToLast                struct{ action }
	MoveColumnLeftOrToMonitorLeft   struct{ action }
	MoveColumnRightOrToMonitorRight struct{ action }
	MoveColumnToIndex               struct {
		action
		Index int
	}
	MoveWindowDown                  struct{ action }
	MoveWindowUp                    struct{ action }
	MoveWindowDownOrToWorkspaceDown struct{ action }
	MoveWindowUpOrToWorkspaceUp     struct{ action }
	ConsumeOrExpelWindowLeft        struct{ action }
	ConsumeOrExpelWindowLeftByID    struct {
		action
		ID uint64
	}
	ConsumeOrExpelWindowRight     struct{ action }
	ConsumeOrExpelWindowRightByID struct {
		action
		ID uint64
	}
	ConsumeWindowIntoColumn struct{ action }
	ExpelWindowFromColumn   struct{ action }
	SwapWindowLeft          struct{ action }
	SwapWindowRight         struct{ action }
	CenterColumn            struct{ action }
	CenterWindow            struct{ action }
	CenterWindowByID        struct {
		action
		ID uint64
	}
	CenterVisibleColumns         struct{ action }
	FocusWorkspaceDown           struct{ action }
	FocusWorkspaceDownUnderMouse struct{ action }
	FocusWorkspaceUp             struct{ action }
	FocusWorkspaceUpUnderMouse   struct{ action }
	FocusWorkspace               struct {
		action
		Reference WorkspaceReference
	}
	FocusWorkspacePrevious    struct{ action }
	MoveWindowToWorkspaceDown struct {
		action
		Focus bool
	}
	MoveWindowToWorkspaceUp struct {
		action
		Focus bool
	}
	MoveWindowToWorkspace struct {
		action
		Reference WorkspaceReference
		Focus     bool
	}
	MoveWindowToWorkspaceByID struct {
		action
		WindowID  uint64
		Reference WorkspaceReference
		Focus     bool
	}
	MoveColumnToWorkspaceDown struct {
		action
		Focus bool
	}
	MoveColumnToWorkspaceUp struct {
		action
		Focus bool
	}
	MoveColumnToWorkspace struct {
		action
		Reference WorkspaceReference
		Focus     bool
	}
	MoveWorkspaceDown    struct{ action }
	MoveWorkspaceUp      struct{ action }
	MoveWorkspaceToIndex struct {
		action
		Index int
	}
	MoveWorkspaceToIndexByRef struct {
		action
		NewIndex  int
		Reference WorkspaceReference
	}
	MoveWorkspaceToMonitorByRef struct {
		action
		OutputName string
		Reference  WorkspaceReference
	}
	MoveWorkspaceToMonitor struct {
		action
		Output string
	}
	SetWorkspaceName struct {
		action
		Name string
	}
	SetWorkspaceNameByRef struct {
		action
		Name      string
		Reference WorkspaceReference
	}
	UnsetWorkspaceName      struct{ action }
	UnsetWorkspaceNameByRef struct {
		action
		Reference WorkspaceReference
	}
	FocusMonitorLeft     struct{ action }
	FocusMonitorRight    struct{ action }
	FocusMonitorDown     struct{ action }
	FocusMonitorUp       struct{ action }
	FocusMonitorPrevious struct{ action }
	FocusMonitorNext     struct{ action }
	FocusMonitor         struct {
		action
		Output string
	}
	MoveWindowToMonitorLeft     struct{ action }
	MoveWindowToMonitorRight    struct{ action }
	MoveWindowToMonitorDown     struct{ action }
	MoveWindowToMonitorUp       struct{ action }
	MoveWindowToMonitorPrevious struct{ action }
	MoveWindowToMonitorNext     struct{ action }
	MoveWindowToMonitor         struct {
		action
		Output string
	}
	MoveWindowToMonitorByID struct {
		action
		ID     uint64
		Output string
	}
	MoveColumnToMonitorLeft     struct{ action }
	MoveColumnToMonitorRight    struct{ action }
	MoveColumnToMonitorDown     struct{ action }
	MoveColumnToMonitorUp       struct{ action }
	MoveColumnToMonitorPrevious struct{ action }
	MoveColumnToMonitorNext     struct{ action }
	MoveColumnToMonitor         struct {
		action
		Output string
	}
	SetWindowWidth struct {
		action
		Change ipc.SizeChange
	}
	SetWindowWidthByID struct {
		action
		ID     uint64
		Change ipc.SizeChange
	}
	SetWindowHeight struct {
		action
		Change ipc.SizeChange
	}
	SetWindowHeightByID struct {
		action
		ID     uint64
		Change ipc.SizeChange
	}
	ResetWindowHeight     struct{ action }
	ResetWindowHeightByID struct {
		action
		ID uint64
	}
	SwitchPresetColumnWidth     struct{ action }
	SwitchPresetColumnWidthBack struct{ action }
	SwitchPresetWindowWidth     struct{ action }
	SwitchPresetWindowWidthBack struct{ action }
	SwitchPresetWindowWidthByID struct {
		action
		ID uint64
	}
	SwitchPresetWindowWidthBackByID struct {
		action
		ID uint64
	}
	SwitchPresetWindowHeight     struct{ action }
	SwitchPresetWindowHeightBack struct{ action }
	SwitchPresetWindowHeightByID struct {
		action
		ID uint64
	}
	SwitchPresetWindowHeightBackByID struct {
		action
		ID uint64
	}
	MaximizeColumn            struct{ action }
	MaximizeWindowToEdges     struct{ action }
	MaximizeWindowToEdgesByID struct {
		action
		ID uint64
	}
	SetColumnWidth struct {
		action
		Change ipc.SizeChange
	}
	ExpandColumnToAvailableWidth struct{ action }
	SwitchLayout                 struct {
		action
		Layout ipc.LayoutSwitchTarget
	}
	ShowHotkeyOverlay              struct{ action }
	MoveWorkspaceToMonitorLeft     struct{ action }
	MoveWorkspaceToMonitorRight    struct{ action }
	MoveWorkspaceToMonitorDown     struct{ action }
	MoveWorkspaceToMonitorUp       struct{ action }
	MoveWorkspaceToMonitorPrevious struct{ action }
	MoveWorkspaceToMonitorNext     struct{ action }
	ToggleWindowFloating           struct{ action }
	ToggleWindowFloatingByID       struct {
		action
		ID uint64
	}
	MoveWindowToFloating     struct{ action }
	MoveWindowToFloatingByID struct {
		action
		ID uint64
	}
	MoveWindowToTiling     struct{ action }
	MoveWindowToTilingByID struct {
		action
		ID uint64
	}
	FocusFloating                       struct{ action }
	FocusTiling                         struct{ action }
	SwitchFocusBetweenFloatingAndTiling struct{ action }
	// MoveFloatingWindowByID targets the focused window when ID is nil.
	MoveFloatingWindowByID struct {
		action
		ID *uint64
		X  ipc.PositionChange
		Y  ipc.PositionChange
	}
	ToggleWindowRuleOpacity     struct{ action }
	ToggleWindowRuleOpacityByID struct {
		action
		ID uint64
	}
	SetDynamicCastWindow     struct{ action }
	SetDynamicCastWindowByID struct {
		action
		ID uint64
	}
	SetDynamicCastMonitor struct {
		action
		Output *string
	}
	ClearDynamicCastTarget struct{ action }
	ToggleOverview         struct{ action }
	OpenOverview           struct{ action }
	CloseOverview          struct{ action }
	ToggleWindowUrgent     struct {
		action
		ID uint64
	}
	SetWindowUrgent struct {
		action
		ID uint64
	}
	UnsetWindowUrgent struct {
		action
		ID uint64
	}
	LoadConfigFile struct{ action }
	MruAdvance     struct {
		action
		Direction MruDirection
		Scope     *MruScope
		Filter    *MruFilter
	}
	MruConfirm            struct{ action }
	MruCancel             struct{ action }
	MruCloseCurrentWindow struct{ action }
	MruFirst              struct{ action }
	MruLast               struct{ action }
	MruSetScope           struct {
		action
		Scope MruScope
	}
	MruCycleScope struct{ action }
)

// IsSpawn reports whether a is one of the command-launching actions
func IsSpawn(a Action) bool {
	switch a.(type) {
	case Spawn, SpawnSh:
		return true
	}
	return false
}

// ActionName returns the kebab-case name of the variant, e.g.
// "focus-column-left" or "close-window-by-id". Document-declarable variants
// use the same spelling in binds.
func ActionName(a Action) string {
	if a == nil {
		return ""
	}
	t := reflect.TypeOf(a)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return kebab(t.Name())
}

func kebab(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && !unicode.IsUpper(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if i > 0 && (prevLower || (prevUpper && nextLower)) {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
