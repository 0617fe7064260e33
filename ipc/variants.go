package ipc

// Wire variants of the Action message. Field names follow the JSON
// protocol; a nil ID targets the focused window or workspace.

type Quit struct {
	wire
	SkipConfirmation bool `json:"skip_confirmation"`
}

type PowerOffMonitors struct{ wire }

type PowerOnMonitors struct{ wire }

type Spawn struct {
	wire
	Command []string `json:"command"`
}

type SpawnSh struct {
	wire
	Command string `json:"command"`
}

type DoScreenTransition struct {
	wire
	DelayMs *uint16 `json:"delay_ms"`
}

type Screenshot struct {
	wire
	ShowPointer bool    `json:"show_pointer"`
	Path        *string `json:"path"`
}

type ScreenshotScreen struct {
	wire
	WriteToDisk bool    `json:"write_to_disk"`
	ShowPointer bool    `json:"show_pointer"`
	Path        *string `json:"path"`
}

type ScreenshotWindow struct {
	wire
	ID          *uint64 `json:"id"`
	WriteToDisk bool    `json:"write_to_disk"`
	Path        *string `json:"path"`
}

type ToggleKeyboardShortcutsInhibit struct{ wire }

type CloseWindow struct {
	wire
	ID *uint64 `json:"id"`
}

type FullscreenWindow struct {
	wire
	ID *uint64 `json:"id"`
}

type ToggleWindowedFullscreen struct {
	wire
	ID *uint64 `json:"id"`
}

type FocusWindow struct {
	wire
	ID uint64 `json:"id"`
}

type FocusWindowInColumn struct {
	wire
	Index uint8 `json:"index"`
}

type FocusWindowPrevious struct{ wire }

type FocusColumnLeft struct{ wire }

type FocusColumnRight struct{ wire }

type FocusColumnFirst struct{ wire }

type FocusColumnLast struct{ wire }

type FocusColumnRightOrFirst struct{ wire }

type FocusColumnLeftOrLast struct{ wire }

type FocusColumn struct {
	wire
	Index int `json:"index"`
}

type FocusWindowOrMonitorUp struct{ wire }

type FocusWindowOrMonitorDown struct{ wire }

type FocusColumnOrMonitorLeft struct{ wire }

type FocusColumnOrMonitorRight struct{ wire }

type FocusWindowDown struct{ wire }

type FocusWindowUp struct{ wire }

type FocusWindowDownOrColumnLeft struct{ wire }

type FocusWindowDownOrColumnRight struct{ wire }

type FocusWindowUpOrColumnLeft struct{ wire }

type FocusWindowUpOrColumnRight struct{ wire }

type FocusWindowOrWorkspaceDown struct{ wire }

type FocusWindowOrWorkspaceUp struct{ wire }

type FocusWindowTop struct{ wire }

type FocusWindowBottom struct{ wire }

type FocusWindowDownOrTop struct{ wire }

type FocusWindowUpOrBottom struct{ wire }

type MoveColumnLeft struct{ wire }

type MoveColumnRight struct{ wire }

type MoveColumnToFirst struct{ wire }

type MoveColumnToLast struct{ wire }

type MoveColumnLeftOrToMonitorLeft struct{ wire }

type MoveColumnRightOrToMonitorRight struct{ wire }

type MoveColumnToIndex struct {
	wire
	Index int `json:"index"`
}

type MoveWindowDown struct{ wire }

type MoveWindowUp struct{ wire }

type MoveWindowDownOrToWorkspaceDown struct{ wire }

type MoveWindowUpOrToWorkspaceUp struct{ wire }

type ConsumeOrExpelWindowLeft struct {
	wire
	ID *uint64 `json:"id"`
}

type ConsumeOrExpelWindowRight struct {
	wire
	ID *uint64 `json:"id"`
}

type ConsumeWindowIntoColumn struct{ wire }

type ExpelWindowFromColumn struct{ wire }

type SwapWindowRight struct{ wire }

type SwapWindowLeft struct{ wire }

type CenterColumn struct{ wire }

type CenterWindow struct {
	wire
	ID *uint64 `json:"id"`
}

type CenterVisibleColumns struct{ wire }

type FocusWorkspaceDown struct{ wire }

type FocusWorkspaceUp struct{ wire }

type FocusWorkspace struct {
	wire
	Reference WorkspaceReferenceArg `json:"reference"`
}

type FocusWorkspacePrevious struct{ wire }

type MoveWindowToWorkspaceDown struct {
	wire
	Focus bool `json:"focus"`
}

type MoveWindowToWorkspaceUp struct {
	wire
	Focus bool `json:"focus"`
}

type MoveWindowToWorkspace struct {
	wire
	WindowID  *uint64               `json:"window_id"`
	Reference WorkspaceReferenceArg `json:"reference"`
	Focus     bool                  `json:"focus"`
}

type MoveColumnToWorkspaceDown struct {
	wire
	Focus bool `json:"focus"`
}

type MoveColumnToWorkspaceUp struct {
	wire
	Focus bool `json:"focus"`
}

type MoveColumnToWorkspace struct {
	wire
	Reference WorkspaceReferenceArg `json:"reference"`
	Focus     bool                  `json:"focus"`
}

type MoveWorkspaceDown struct{ wire }

type MoveWorkspaceUp struct{ wire }

type SetWorkspaceName struct {
	wire
	Name      string                 `json:"name"`
	Workspace *WorkspaceReferenceArg `json:"workspace"`
}

type UnsetWorkspaceName struct {
	wire
	Reference *WorkspaceReferenceArg `json:"reference"`
}

type FocusMonitorLeft struct{ wire }

type FocusMonitorRight struct{ wire }

type FocusMonitorDown struct{ wire }

type FocusMonitorUp struct{ wire }

type FocusMonitorPrevious struct{ wire }

type FocusMonitorNext struct{ wire }

type FocusMonitor struct {
	wire
	Output string `json:"output"`
}

type MoveWindowToMonitorLeft struct{ wire }

type MoveWindowToMonitorRight struct{ wire }

type MoveWindowToMonitorDown struct{ wire }

type MoveWindowToMonitorUp struct{ wire }

type MoveWindowToMonitorPrevious struct{ wire }

type MoveWindowToMonitorNext struct{ wire }

type MoveWindowToMonitor struct {
	wire
	ID     *uint64 `json:"id"`
	Output string  `json:"output"`
}

type MoveColumnToMonitorLeft struct{ wire }

type MoveColumnToMonitorRight struct{ wire }

type MoveColumnToMonitorDown struct{ wire }

type MoveColumnToMonitorUp struct{ wire }

type MoveColumnToMonitorPrevious struct{ wire }

type MoveColumnToMonitorNext struct{ wire }

type MoveColumnToMonitor struct {
	wire
	Output string `json:"output"`
}

type SetWindowWidth struct {
	wire
	ID     *uint64    `json:"id"`
	Change SizeChange `json:"change"`
}

type SetWindowHeight struct {
	wire
	ID     *uint64    `json:"id"`
	Change SizeChange `json:"change"`
}

type ResetWindowHeight struct {
	wire
	ID *uint64 `json:"id"`
}

type SwitchPresetColumnWidth struct{ wire }

type SwitchPresetColumnWidthBack struct{ wire }

type SwitchPresetWindowWidth struct {
	wire
	ID *uint64 `json:"id"`
}

type SwitchPresetWindowWidthBack struct {
	wire
	ID *uint64 `json:"id"`
}

type SwitchPresetWindowHeight struct {
	wire
	ID *uint64 `json:"id"`
}

type SwitchPresetWindowHeightBack struct {
	wire
	ID *uint64 `json:"id"`
}

type MaximizeColumn struct{ wire }

type MaximizeWindowToEdges struct {
	wire
	ID *uint64 `json:"id"`
}

type SetColumnWidth struct {
	wire
	Change SizeChange `json:"change"`
}

type ExpandColumnToAvailableWidth struct{ wire }

type SwitchLayout struct {
	wire
	Layout LayoutSwitchTarget `json:"layout"`
}

type ShowHotkeyOverlay struct{ wire }

type MoveWorkspaceToMonitorLeft struct{ wire }

type MoveWorkspaceToMonitorRight struct{ wire }

type MoveWorkspaceToMonitorDown struct{ wire }

type MoveWorkspaceToMonitorUp struct{ wire }

type MoveWorkspaceToMonitorPrevious struct{ wire }

type MoveWorkspaceToMonitorNext struct{ wire }

type MoveWorkspaceToIndex struct {
	wire
	Index     int                    `json:"index"`
	Reference *WorkspaceReferenceArg `json:"reference"`
}

type MoveWorkspaceToMonitor struct {
	wire
	Output    string                 `json:"output"`
	Reference *WorkspaceReferenceArg `json:"reference"`
}

type ToggleDebugTint struct{ wire }

type DebugToggleOpaqueRegions struct{ wire }

type DebugToggleDamage struct{ wire }

type ToggleWindowFloating struct {
	wire
	ID *uint64 `json:"id"`
}

type MoveWindowToFloating struct {
	wire
	ID *uint64 `json:"id"`
}

type MoveWindowToTiling struct {
	wire
	ID *uint64 `json:"id"`
}

type FocusFloating struct{ wire }

type FocusTiling struct{ wire }

type SwitchFocusBetweenFloatingAndTiling struct{ wire }

type MoveFloatingWindow struct {
	wire
	ID *uint64        `json:"id"`
	X  PositionChange `json:"x"`
	Y  PositionChange `json:"y"`
}

type ToggleWindowRuleOpacity struct {
	wire
	ID *uint64 `json:"id"`
}

type SetDynamicCastWindow struct {
	wire
	ID *uint64 `json:"id"`
}

type SetDynamicCastMonitor struct {
	wire
	Output *string `json:"output"`
}

type ClearDynamicCastTarget struct{ wire }

type ToggleOverview struct{ wire }

type OpenOverview struct{ wire }

type CloseOverview struct{ wire }

type ToggleWindowUrgent struct {
	wire
	ID uint64 `json:"id"`
}

type SetWindowUrgent struct {
	wire
	ID uint64 `json:"id"`
}

type UnsetWindowUrgent struct {
	wire
	ID uint64 `json:"id"`
}

type LoadConfigFile struct{ wire }

var variants = []Action{
	Quit{},
	PowerOffMonitors{},
	PowerOnMonitors{},
	Spawn{},
	SpawnSh{},
	DoScreenTransition{},
	Screenshot{},
	ScreenshotScreen{},
	ScreenshotWindow{},
	ToggleKeyboardShortcutsInhibit{},
	CloseWindow{},
	FullscreenWindow{},
	ToggleWindowedFullscreen{},
	FocusWindow{},
	FocusWindowInColumn{},
	FocusWindowPrevious{},
	FocusColumnLeft{},
	FocusColumnRight{},
	FocusColumnFirst{},
	FocusColumnLast{},
	FocusColumnRightOrFirst{},
	FocusColumnLeftOrLast{},
	FocusColumn{},
	FocusWindowOrMonitorUp{},
	FocusWindowOrMonitorDown{},
	FocusColumnOrMonitorLeft{},
	FocusColumnOrMonitorRight{},
	FocusWindowDown{},
	FocusWindowUp{},
	FocusWindowDownOrColumnLeft{},
	FocusWindowDownOrColumnRight{},
	FocusWindowUpOrColumnLeft{},
	FocusWindowUpOrColumnRight{},
	FocusWindowOrWorkspaceDown{},
	FocusWindowOrWorkspaceUp{},
	FocusWindowTop{},
	FocusWindowBottom{},
	FocusWindowDownOrTop{},
	FocusWindowUpOrBottom{},
	MoveColumnLeft{},
	MoveColumnRight{},
	MoveColumnToFirst{},
	MoveColumnToLast{},
	MoveColumnLeftOrToMonitorLeft{},
	MoveColumnRightOrToMonitorRight{},
	MoveColumnToIndex{},
	MoveWindowDown{},
	MoveWindowUp{},
	MoveWindowDownOrToWorkspaceDown{},
	MoveWindowUpOrToWorkspaceUp{},
	ConsumeOrExpelWindowLeft{},
	ConsumeOrExpelWindowRight{},
	ConsumeWindowIntoColumn{},
	ExpelWindowFromColumn{},
	SwapWindowRight{},
	SwapWindowLeft{},
	CenterColumn{},
	CenterWindow{},
	CenterVisibleColumns{},
	FocusWorkspaceDown{},
	FocusWorkspaceUp{},
	FocusWorkspace{},
	FocusWorkspacePrevious{},
	MoveWindowToWorkspaceDown{},
	MoveWindowToWorkspaceUp{},
	MoveWindowToWorkspace{},
	MoveColumnToWorkspaceDown{},
	MoveColumnToWorkspaceUp{},
	MoveColumnToWorkspace{},
	MoveWorkspaceDown{},
	MoveWorkspaceUp{},
	SetWorkspaceName{},
	UnsetWorkspaceName{},
	FocusMonitorLeft{},
	FocusMonitorRight{},
	FocusMonitorDown{},
	FocusMonitorUp{},
	FocusMonitorPrevious{},
	FocusMonitorNext{},
	FocusMonitor{},
	MoveWindowToMonitorLeft{},
	MoveWindowToMonitorRight{},
	MoveWindowToMonitorDown{},
	MoveWindowToMonitorUp{},
	MoveWindowToMonitorPrevious{},
	MoveWindowToMonitorNext{},
	MoveWindowToMonitor{},
	MoveColumnToMonitorLeft{},
	MoveColumnToMonitorRight{},
	MoveColumnToMonitorDown{},
	MoveColumnToMonitorUp{},
	MoveColumnToMonitorPrevious{},
	MoveColumnToMonitorNext{},
	MoveColumnToMonitor{},
	SetWindowWidth{},
	SetWindowHeight{},
	ResetWindowHeight{},
	SwitchPresetColumnWidth{},
	SwitchPresetColumnWidthBack{},
	SwitchPresetWindowWidth{},
	SwitchPresetWindowWidthBack{},
	SwitchPresetWindowHeight{},
	SwitchPresetWindowHeightBack{},
	MaximizeColumn{},
	MaximizeWindowToEdges{},
	SetColumnWidth{},
	ExpandColumnToAvailableWidth{},
	SwitchLayout{},
	ShowHotkeyOverlay{},
	MoveWorkspaceToMonitorLeft{},
	MoveWorkspaceToMonitorRight{},
	MoveWorkspaceToMonitorDown{},
	MoveWorkspaceToMonitorUp{},
	MoveWorkspaceToMonitorPrevious{},
	MoveWorkspaceToMonitorNext{},
	MoveWorkspaceToIndex{},
	MoveWorkspaceToMonitor{},
	ToggleDebugTint{},
	DebugToggleOpaqueRegions{},
	DebugToggleDamage{},
	ToggleWindowFloating{},
	MoveWindowToFloating{},
	MoveWindowToTiling{},
	FocusFloating{},
	FocusTiling{},
	SwitchFocusBetweenFloatingAndTiling{},
	MoveFloatingWindow{},
	ToggleWindowRuleOpacity{},
	SetDynamicCastWindow{},
	SetDynamicCastMonitor{},
	ClearDynamicCastTarget{},
	ToggleOverview{},
	OpenOverview{},
	CloseOverview{},
	ToggleWindowUrgent{},
	SetWindowUrgent{},
	UnsetWindowUrgent{},
	LoadConfigFile{},
}
