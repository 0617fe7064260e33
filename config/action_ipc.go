package config

import (
	"fmt"

	ipc "github.com/inference-gateway/tilecfg/ipc"
)

func workspaceRefFromIPC(r ipc.WorkspaceReferenceArg) WorkspaceReference {
	switch r.Kind {
	case ipc.WorkspaceByID:
		return WorkspaceID(r.ID)
	case ipc.WorkspaceByIndex:
		return WorkspaceIndex(r.Index)
	}
	return WorkspaceName(r.Name)
}

func workspaceRefToIPC(r WorkspaceReference) ipc.WorkspaceReferenceArg {
	switch r.Kind {
	case WorkspaceRefID:
		return ipc.WorkspaceReferenceArg{Kind: ipc.WorkspaceByID, ID: r.ID}
	case WorkspaceRefIndex:
		return ipc.WorkspaceReferenceArg{Kind: ipc.WorkspaceByIndex, Index: r.Index}
	}
	return ipc.WorkspaceReferenceArg{Kind: ipc.WorkspaceByName, Name: r.Name}
}

// ActionFromIPC converts a wire action into its internal variant. Wire
// actions with an optional target map to the focused-target variant when
// the target is absent and to the matching ByID or ByRef variant otherwise.
func ActionFromIPC(a ipc.Action) (Action, error) {
	switch v := a.(type) {
	case ipc.Quit:
		return Quit{SkipConfirmation: v.SkipConfirmation}, nil
	case ipc.Spawn:
		return Spawn{Command: v.Command}, nil
	case ipc.SpawnSh:
		return SpawnSh{Command: v.Command}, nil
	case ipc.DoScreenTransition:
		return DoScreenTransition{DelayMs: v.DelayMs}, nil
	case ipc.Screenshot:
		return Screenshot{ShowPointer: v.ShowPointer, Path: v.Path}, nil
	case ipc.ScreenshotScreen:
		return ScreenshotScreen{WriteToDisk: v.WriteToDisk, ShowPointer: v.ShowPointer, Path: v.Path}, nil
	case ipc.ScreenshotWindow:
		if v.ID == nil {
			return ScreenshotWindow{WriteToDisk: v.WriteToDisk, Path: v.Path}, nil
		}
		return ScreenshotWindowByID{ID: *v.ID, WriteToDisk: v.WriteToDisk, Path: v.Path}, nil
	case ipc.FocusWindow:
		return FocusWindow{ID: v.ID}, nil
	case ipc.FocusWindowInColumn:
		return FocusWindowInColumn{Index: v.Index}, nil
	case ipc.FocusColumn:
		return FocusColumn{Index: v.Index}, nil
	case ipc.MoveColumnToIndex:
		return MoveColumnToIndex{Index: v.Index}, nil
	case ipc.FocusWorkspace:
		return FocusWorkspace{Reference: workspaceRefFromIPC(v.Reference)}, nil
	case ipc.MoveWindowToWorkspaceDown:
		return MoveWindowToWorkspaceDown{Focus: v.Focus}, nil
	case ipc.MoveWindowToWorkspaceUp:
		return MoveWindowToWorkspaceUp{Focus: v.Focus}, nil
	case ipc.MoveWindowToWorkspace:
		ref := workspaceRefFromIPC(v.Reference)
		if v.WindowID == nil {
			return MoveWindowToWorkspace{Reference: ref, Focus: v.Focus}, nil
		}
		return MoveWindowToWorkspaceByID{WindowID: *v.WindowID, Reference: ref, Focus: v.Focus}, nil
	case ipc.MoveColumnToWorkspaceDown:
		return MoveColumnToWorkspaceDown{Focus: v.Focus}, nil
	case ipc.MoveColumnToWorkspaceUp:
		return MoveColumnToWorkspaceUp{Focus: v.Focus}, nil
	case ipc.MoveColumnToWorkspace:
		return MoveColumnToWorkspace{Reference: workspaceRefFromIPC(v.Reference), Focus: v.Focus}, nil
	case ipc.SetWorkspaceName:
		if v.Workspace == nil {
			return SetWorkspaceName{Name: v.Name}, nil
		}
		return SetWorkspaceNameByRef{Name: v.Name, Reference: workspaceRefFromIPC(*v.Workspace)}, nil
	case ipc.UnsetWorkspaceName:
		if v.Reference == nil {
			return UnsetWorkspaceName{}, nil
		}
		return UnsetWorkspaceNameByRef{Reference: workspaceRefFromIPC(*v.Reference)}, nil
	case ipc.FocusMonitor:
		return FocusMonitor{Output: v.Output}, nil
	case ipc.MoveWindowToMonitor:
		if v.ID == nil {
			return MoveWindowToMonitor{Output: v.Output}, nil
		}
		return MoveWindowToMonitorByID{ID: *v.ID, Output: v.Output}, nil
	case ipc.MoveColumnToMonitor:
		return MoveColumnToMonitor{Output: v.Output}, nil
	case ipc.SetWindowWidth:
		if v.ID == nil {
			return SetWindowWidth{Change: v.Change}, nil
		}
		return SetWindowWidthByID{ID: *v.ID, Change: v.Change}, nil
	case ipc.SetWindowHeight:
		if v.ID == nil {
			return SetWindowHeight{Change: v.Change}, nil
		}
		return SetWindowHeightByID{ID: *v.ID, Change: v.Change}, nil
	case ipc.SetColumnWidth:
		return SetColumnWidth{Change: v.Change}, nil
	case ipc.SwitchLayout:
		return SwitchLayout{Layout: v.Layout}, nil
	case ipc.MoveWorkspaceToIndex:
		if v.Reference == nil {
			return MoveWorkspaceToIndex{Index: v.Index}, nil
		}
		return MoveWorkspaceToIndexByRef{NewIndex: v.Index, Reference: workspaceRefFromIPC(*v.Reference)}, nil
	case ipc.MoveWorkspaceToMonitor:
		if v.Reference == nil {
			return MoveWorkspaceToMonitor{Output: v.Output}, nil
		}
		return MoveWorkspaceToMonitorByRef{OutputName: v.Output, Reference: workspaceRefFromIPC(*v.Reference)}, nil
	case ipc.MoveFloatingWindow:
		return MoveFloatingWindowByID{ID: v.ID, X: v.X, Y: v.Y}, nil
	case ipc.SetDynamicCastMonitor:
		return SetDynamicCastMonitor{Output: v.Output}, nil
	case ipc.ToggleWindowUrgent:
		return ToggleWindowUrgent{ID: v.ID}, nil
	case ipc.SetWindowUrgent:
		return SetWindowUrgent{ID: v.ID}, nil
	case ipc.UnsetWindowUrgent:
		return UnsetWindowUrgent{ID: v.ID}, nil
	case ipc.CloseWindow:
		if v.ID == nil {
			return CloseWindow{}, nil
		}
		return CloseWindowByID{ID: *v.ID}, nil
	case ipc.FullscreenWindow:
		if v.ID == nil {
			return FullscreenWindow{}, nil
		}
		return FullscreenWindowByID{ID: *v.ID}, nil
	case ipc.ToggleWindowedFullscreen:
		if v.ID == nil {
			return ToggleWindowedFullscreen{}, nil
		}
		return ToggleWindowedFullscreenByID{ID: *v.ID}, nil
	case ipc.ConsumeOrExpelWindowLeft:
		if v.ID == nil {
			return ConsumeOrExpelWindowLeft{}, nil
		}
		return ConsumeOrExpelWindowLeftByID{ID: *v.ID}, nil
	case ipc.ConsumeOrExpelWindowRight:
		if v.ID == nil {
			return ConsumeOrExpelWindowRight{}, nil
		}
		return ConsumeOrExpelWindowRightByID{ID: *v.ID}, nil
	case ipc.CenterWindow:
		if v.ID == nil {
			return CenterWindow{}, nil
		}
		return CenterWindowByID{ID: *v.ID}, nil
	case ipc.ResetWindowHeight:
		if v.ID == nil {
			return ResetWindowHeight{}, nil
		}
		return ResetWindowHeightByID{ID: *v.ID}, nil
	case ipc.SwitchPresetWindowWidth:
		if v.ID == nil {
			return SwitchPresetWindowWidth{}, nil
		}
		return SwitchPresetWindowWidthByID{ID: *v.ID}, nil
	case ipc.SwitchPresetWindowWidthBack:
		if v.ID == nil {
			return SwitchPresetWindowWidthBack{}, nil
		}
		return SwitchPresetWindowWidthBackByID{ID: *v.ID}, nil
	case ipc.SwitchPresetWindowHeight:
		if v.ID == nil {
			return SwitchPresetWindowHeight{}, nil
		}
		return SwitchPresetWindowHeightByID{ID: *v.ID}, nil
	case ipc.SwitchPresetWindowHeightBack:
		if v.ID == nil {
			return SwitchPresetWindowHeightBack{}, nil
		}
		return SwitchPresetWindowHeightBackByID{ID: *v.ID}, nil
	case ipc.MaximizeWindowToEdges:
		if v.ID == nil {
			return MaximizeWindowToEdges{}, nil
		}
		return MaximizeWindowToEdgesByID{ID: *v.ID}, nil
	case ipc.ToggleWindowFloating:
		if v.ID == nil {
			return ToggleWindowFloating{}, nil
		}
		return ToggleWindowFloatingByID{ID: *v.ID}, nil
	case ipc.MoveWindowToFloating:
		if v.ID == nil {
			return MoveWindowToFloating{}, nil
		}
		return MoveWindowToFloatingByID{ID: *v.ID}, nil
	case ipc.MoveWindowToTiling:
		if v.ID == nil {
			return MoveWindowToTiling{}, nil
		}
		return MoveWindowToTilingByID{ID: *v.ID}, nil
	case ipc.ToggleWindowRuleOpacity:
		if v.ID == nil {
			return ToggleWindowRuleOpacity{}, nil
		}
		return ToggleWindowRuleOpacityByID{ID: *v.ID}, nil
	case ipc.SetDynamicCastWindow:
		if v.ID == nil {
			return SetDynamicCastWindow{}, nil
		}
		return SetDynamicCastWindowByID{ID: *v.ID}, nil
	case ipc.PowerOffMonitors:
		return PowerOffMonitors{}, nil
	case ipc.PowerOnMonitors:
		return PowerOnMonitors{}, nil
	case ipc.ToggleKeyboardShortcutsInhibit:
		return ToggleKeyboardShortcutsInhibit{}, nil
	case ipc.FocusWindowPrevious:
		return FocusWindowPrevious{}, nil
	case ipc.FocusColumnLeft:
		return FocusColumnLeft{}, nil
	case ipc.FocusColumnRight:
		return FocusColumnRight{}, nil
	case ipc.FocusColumnFirst:
		return FocusColumnFirst{}, nil
	case ipc.FocusColumnLast:
		return FocusColumnLast{}, nil
	case ipc.FocusColumnRightOrFirst:
		return FocusColumnRightOrFirst{}, nil
	case ipc.FocusColumnLeftOrLast:
		return FocusColumnLeftOrLast{}, nil
	case ipc.FocusWindowOrMonitorUp:
		return FocusWindowOrMonitorUp{}, nil
	case ipc.FocusWindowOrMonitorDown:
		return FocusWindowOrMonitorDown{}, nil
	case ipc.FocusColumnOrMonitorLeft:
		return FocusColumnOrMonitorLeft{}, nil
	case ipc.FocusColumnOrMonitorRight:
		return FocusColumnOrMonitorRight{}, nil
	case ipc.FocusWindowDown:
		return FocusWindowDown{}, nil
	case ipc.FocusWindowUp:
		return FocusWindowUp{}, nil
	case ipc.FocusWindowDownOrColumnLeft:
		return FocusWindowDownOrColumnLeft{}, nil
	case ipc.FocusWindowDownOrColumnRight:
		return FocusWindowDownOrColumnRight{}, nil
	case ipc.FocusWindowUpOrColumnLeft:
		return FocusWindowUpOrColumnLeft{}, nil
	case ipc.FocusWindowUpOrColumnRight:
		return FocusWindowUpOrColumnRight{}, nil
	case ipc.FocusWindowOrWorkspaceDown:
		return FocusWindowOrWorkspaceDown{}, nil
	case ipc.FocusWindowOrWorkspaceUp:
		return FocusWindowOrWorkspaceUp{}, nil
	case ipc.FocusWindowTop:
		return FocusWindowTop{}, nil
	case ipc.FocusWindowBottom:
		return FocusWindowBottom{}, nil
	case ipc.FocusWindowDownOrTop:
		return FocusWindowDownOrTop{}, nil
	case ipc.FocusWindowUpOrBottom:
		return FocusWindowUpOrBottom{}, nil
	case ipc.MoveColumnLeft:
		return MoveColumnLeft{}, nil
	case ipc.MoveColumnRight:
		return MoveColumnRight{}, nil
	case ipc.MoveColumnToFirst:
		return MoveColumnToFirst{}, nil
	case ipc.MoveColumnToLast:
		return MoveColumnToLast{}, nil
	case ipc.MoveColumnLeftOrToMonitorLeft:
		return MoveColumnLeftOrToMonitorLeft{}, nil
	case ipc.MoveColumnRightOrToMonitorRight:
		return MoveColumnRightOrToMonitorRight{}, nil
	case ipc.MoveWindowDown:
		return MoveWindowDown{}, nil
	case ipc.MoveWindowUp:
		return MoveWindowUp{}, nil
	case ipc.MoveWindowDownOrToWorkspaceDown:
		return MoveWindowDownOrToWorkspaceDown{}, nil
	case ipc.MoveWindowUpOrToWorkspaceUp:
		return MoveWindowUpOrToWorkspaceUp{}, nil
	case ipc.ConsumeWindowIntoColumn:
		return ConsumeWindowIntoColumn{}, nil
	case ipc.ExpelWindowFromColumn:
		return ExpelWindowFromColumn{}, nil
	case ipc.SwapWindowRight:
		return SwapWindowRight{}, nil
	case ipc.SwapWindowLeft:
		return SwapWindowLeft{}, nil
	case ipc.CenterColumn:
		return CenterColumn{}, nil
	case ipc.CenterVisibleColumns:
		return CenterVisibleColumns{}, nil
	case ipc.FocusWorkspaceDown:
		return FocusWorkspaceDown{}, nil
	case ipc.FocusWorkspaceUp:
		return FocusWorkspaceUp{}, nil
	case ipc.FocusWorkspacePrevious:
		return FocusWorkspacePrevious{}, nil
	case ipc.MoveWorkspaceDown:
		return MoveWorkspaceDown{}, nil
	case ipc.MoveWorkspaceUp:
		return MoveWorkspaceUp{}, nil
	case ipc.FocusMonitorLeft:
		return FocusMonitorLeft{}, nil
	case ipc.FocusMonitorRight:
		return FocusMonitorRight{}, nil
	case ipc.FocusMonitorDown:
		return FocusMonitorDown{}, nil
	case ipc.FocusMonitorUp:
		return FocusMonitorUp{}, nil
	case ipc.FocusMonitorPrevious:
		return FocusMonitorPrevious{}, nil
	case ipc.FocusMonitorNext:
		return FocusMonitorNext{}, nil
	case ipc.MoveWindowToMonitorLeft:
		return MoveWindowToMonitorLeft{}, nil
	case ipc.MoveWindowToMonitorRight:
		return MoveWindowToMonitorRight{}, nil
	case ipc.MoveWindowToMonitorDown:
		return MoveWindowToMonitorDown{}, nil
	case ipc.MoveWindowToMonitorUp:
		return MoveWindowToMonitorUp{}, nil
	case ipc.MoveWindowToMonitorPrevious:
		return MoveWindowToMonitorPrevious{}, nil
	case ipc.MoveWindowToMonitorNext:
		return MoveWindowToMonitorNext{}, nil
	case ipc.MoveColumnToMonitorLeft:
		return MoveColumnToMonitorLeft{}, nil
	case ipc.MoveColumnToMonitorRight:
		return MoveColumnToMonitorRight{}, nil
	case ipc.MoveColumnToMonitorDown:
		return MoveColumnToMonitorDown{}, nil
	case ipc.MoveColumnToMonitorUp:
		return MoveColumnToMonitorUp{}, nil
	case ipc.MoveColumnToMonitorPrevious:
		return MoveColumnToMonitorPrevious{}, nil
	case ipc.MoveColumnToMonitorNext:
		return MoveColumnToMonitorNext{}, nil
	case ipc.SwitchPresetColumnWidth:
		return SwitchPresetColumnWidth{}, nil
	case ipc.SwitchPresetColumnWidthBack:
		return SwitchPresetColumnWidthBack{}, nil
	case ipc.MaximizeColumn:
		return MaximizeColumn{}, nil
	case ipc.ExpandColumnToAvailableWidth:
		return ExpandColumnToAvailableWidth{}, nil
	case ipc.ShowHotkeyOverlay:
		return ShowHotkeyOverlay{}, nil
	case ipc.MoveWorkspaceToMonitorLeft:
		return MoveWorkspaceToMonitorLeft{}, nil
	case ipc.MoveWorkspaceToMonitorRight:
		return MoveWorkspaceToMonitorRight{}, nil
	case ipc.MoveWorkspaceToMonitorDown:
		return MoveWorkspaceToMonitorDown{}, nil
	case ipc.MoveWorkspaceToMonitorUp:
		return MoveWorkspaceToMonitorUp{}, nil
	case ipc.MoveWorkspaceToMonitorPrevious:
		return MoveWorkspaceToMonitorPrevious{}, nil
	case ipc.MoveWorkspaceToMonitorNext:
		return MoveWorkspaceToMonitorNext{}, nil
	case ipc.ToggleDebugTint:
		return ToggleDebugTint{}, nil
	case ipc.DebugToggleOpaqueRegions:
		return DebugToggleOpaqueRegions{}, nil
	case ipc.DebugToggleDamage:
		return DebugToggleDamage{}, nil
	case ipc.FocusFloating:
		return FocusFloating{}, nil
	case ipc.FocusTiling:
		return FocusTiling{}, nil
	case ipc.SwitchFocusBetweenFloatingAndTiling:
		return SwitchFocusBetweenFloatingAndTiling{}, nil
	case ipc.ClearDynamicCastTarget:
		return ClearDynamicCastTarget{}, nil
	case ipc.ToggleOverview:
		return ToggleOverview{}, nil
	case ipc.OpenOverview:
		return OpenOverview{}, nil
	case ipc.CloseOverview:
		return CloseOverview{}, nil
	case ipc.LoadConfigFile:
		return LoadConfigFile{}, nil
	}
	return nil, fmt.Errorf("unsupported ipc action %T", a)
}

// ActionToIPC converts an internal action into its wire form. It reports
// false for variants the wire protocol cannot express, such as Suspend or
// the recent-windows switcher actions.
func ActionToIPC(a Action) (ipc.Action, bool) {
	switch v := a.(type) {
	case Quit:
		return ipc.Quit{SkipConfirmation: v.SkipConfirmation}, true
	case Spawn:
		return ipc.Spawn{Command: v.Command}, true
	case SpawnSh:
		return ipc.SpawnSh{Command: v.Command}, true
	case DoScreenTransition:
		return ipc.DoScreenTransition{DelayMs: v.DelayMs}, true
	case Screenshot:
		return ipc.Screenshot{ShowPointer: v.ShowPointer, Path: v.Path}, true
	case ScreenshotScreen:
		return ipc.ScreenshotScreen{WriteToDisk: v.WriteToDisk, ShowPointer: v.ShowPointer, Path: v.Path}, true
	case ScreenshotWindow:
		return ipc.ScreenshotWindow{WriteToDisk: v.WriteToDisk, Path: v.Path}, true
	case ScreenshotWindowByID:
		return ipc.ScreenshotWindow{ID: &v.ID, WriteToDisk: v.WriteToDisk, Path: v.Path}, true
	case FocusWindow:
		return ipc.FocusWindow{ID: v.ID}, true
	case FocusWindowInColumn:
		return ipc.FocusWindowInColumn{Index: v.Index}, true
	case FocusColumn:
		return ipc.FocusColumn{Index: v.Index}, true
	case MoveColumnToIndex:
		return ipc.MoveColumnToIndex{Index: v.Index}, true
	case FocusWorkspace:
		return ipc.FocusWorkspace{Reference: workspaceRefToIPC(v.Reference)}, true
	case MoveWindowToWorkspaceDown:
		return ipc.MoveWindowToWorkspaceDown{Focus: v.Focus}, true
	case MoveWindowToWorkspaceUp:
		return ipc.MoveWindowToWorkspaceUp{Focus: v.Focus}, true
	case MoveWindowToWorkspace:
		return ipc.MoveWindowToWorkspace{Reference: workspaceRefToIPC(v.Reference), Focus: v.Focus}, true
	case MoveWindowToWorkspaceByID:
		return ipc.MoveWindowToWorkspace{WindowID: &v.WindowID, Reference: workspaceRefToIPC(v.Reference), Focus: v.Focus}, true
	case MoveColumnToWorkspaceDown:
		return ipc.MoveColumnToWorkspaceDown{Focus: v.Focus}, true
	case MoveColumnToWorkspaceUp:
		return ipc.MoveColumnToWorkspaceUp{Focus: v.Focus}, true
	case MoveColumnToWorkspace:
		return ipc.MoveColumnToWorkspace{Reference: workspaceRefToIPC(v.Reference), Focus: v.Focus}, true
	case SetWorkspaceName:
		return ipc.SetWorkspaceName{Name: v.Name}, true
	case SetWorkspaceNameByRef:
		ref := workspaceRefToIPC(v.Reference)
		return ipc.SetWorkspaceName{Name: v.Name, Workspace: &ref}, true
	case UnsetWorkspaceName:
		return ipc.UnsetWorkspaceName{}, true
	case UnsetWorkspaceNameByRef:
		ref := workspaceRefToIPC(v.Reference)
		return ipc.UnsetWorkspaceName{Reference: &ref}, true
	case FocusMonitor:
		return ipc.FocusMonitor{Output: v.Output}, true
	case MoveWindowToMonitor:
		return ipc.MoveWindowToMonitor{Output: v.Output}, true
	case MoveWindowToMonitorByID:
		return ipc.MoveWindowToMonitor{ID: &v.ID, Output: v.Output}, true
	case MoveColumnToMonitor:
		return ipc.MoveColumnToMonitor{Output: v.Output}, true
	case SetWindowWidth:
		return ipc.SetWindowWidth{Change: v.Change}, true
	case SetWindowWidthByID:
		return ipc.SetWindowWidth{ID: &v.ID, Change: v.Change}, true
	case SetWindowHeight:
		return ipc.SetWindowHeight{Change: v.Change}, true
	case SetWindowHeightByID:
		return ipc.SetWindowHeight{ID: &v.ID, Change: v.Change}, true
	case SetColumnWidth:
		return ipc.SetColumnWidth{Change: v.Change}, true
	case SwitchLayout:
		return ipc.SwitchLayout{Layout: v.Layout}, true
	case MoveWorkspaceToIndex:
		return ipc.MoveWorkspaceToIndex{Index: v.Index}, true
	case MoveWorkspaceToIndexByRef:
		ref := workspaceRefToIPC(v.Reference)
		return ipc.MoveWorkspaceToIndex{Index: v.NewIndex, Reference: &ref}, true
	case MoveWorkspaceToMonitor:
		return ipc.MoveWorkspaceToMonitor{Output: v.Output}, true
	case MoveWorkspaceToMonitorByRef:
		ref := workspaceRefToIPC(v.Reference)
		return ipc.MoveWorkspaceToMonitor{Output: v.OutputName, Reference: &ref}, true
	case MoveFloatingWindowByID:
		return ipc.MoveFloatingWindow{ID: v.ID, X: v.X, Y: v.Y}, true
	case SetDynamicCastMonitor:
		return ipc.SetDynamicCastMonitor{Output: v.Output}, true
	case ToggleWindowUrgent:
		return ipc.ToggleWindowUrgent{ID: v.ID}, true
	case SetWindowUrgent:
		return ipc.SetWindowUrgent{ID: v.ID}, true
	case UnsetWindowUrgent:
		return ipc.UnsetWindowUrgent{ID: v.ID}, true
	case CloseWindow:
		return ipc.CloseWindow{}, true
	case CloseWindowByID:
		return ipc.CloseWindow{ID: &v.ID}, true
	case FullscreenWindow:
		return ipc.FullscreenWindow{}, true
	case FullscreenWindowByID:
		return ipc.FullscreenWindow{ID: &v.ID}, true
	case ToggleWindowedFullscreen:
		return ipc.ToggleWindowedFullscreen{}, true
	case ToggleWindowedFullscreenByID:
		return ipc.ToggleWindowedFullscreen{ID: &v.ID}, true
	case ConsumeOrExpelWindowLeft:
		return ipc.ConsumeOrExpelWindowLeft{}, true
	case ConsumeOrExpelWindowLeftByID:
		return ipc.ConsumeOrExpelWindowLeft{ID: &v.ID}, true
	case ConsumeOrExpelWindowRight:
		return ipc.ConsumeOrExpelWindowRight{}, true
	case ConsumeOrExpelWindowRightByID:
		return ipc.ConsumeOrExpelWindowRight{ID: &v.ID}, true
	case CenterWindow:
		return ipc.CenterWindow{}, true
	case CenterWindowByID:
		return ipc.CenterWindow{ID: &v.ID}, true
	case ResetWindowHeight:
		return ipc.ResetWindowHeight{}, true
	case ResetWindowHeightByID:
		return ipc.ResetWindowHeight{ID: &v.ID}, true
	case SwitchPresetWindowWidth:
		return ipc.SwitchPresetWindowWidth{}, true
	case SwitchPresetWindowWidthByID:
		return ipc.SwitchPresetWindowWidth{ID: &v.ID}, true
	case SwitchPresetWindowWidthBack:
		return ipc.SwitchPresetWindowWidthBack{}, true
	case SwitchPresetWindowWidthBackByID:
		return ipc.SwitchPresetWindowWidthBack{ID: &v.ID}, true
	case SwitchPresetWindowHeight:
		return ipc.SwitchPresetWindowHeight{}, true
	case SwitchPresetWindowHeightByID:
		return ipc.SwitchPresetWindowHeight{ID: &v.ID}, true
	case SwitchPresetWindowHeightBack:
		return ipc.SwitchPresetWindowHeightBack{}, true
	case SwitchPresetWindowHeightBackByID:
		return ipc.SwitchPresetWindowHeightBack{ID: &v.ID}, true
	case MaximizeWindowToEdges:
		return ipc.MaximizeWindowToEdges{}, true
	case MaximizeWindowToEdgesByID:
		return ipc.MaximizeWindowToEdges{ID: &v.ID}, true
	case ToggleWindowFloating:
		return ipc.ToggleWindowFloating{}, true
	case ToggleWindowFloatingByID:
		return ipc.ToggleWindowFloating{ID: &v.ID}, true
	case MoveWindowToFloating:
		return ipc.MoveWindowToFloating{}, true
	case MoveWindowToFloatingByID:
		return ipc.MoveWindowToFloating{ID: &v.ID}, true
	case MoveWindowToTiling:
		return ipc.MoveWindowToTiling{}, true
	case MoveWindowToTilingByID:
		return ipc.MoveWindowToTiling{ID: &v.ID}, true
	case ToggleWindowRuleOpacity:
		return ipc.ToggleWindowRuleOpacity{}, true
	case ToggleWindowRuleOpacityByID:
		return ipc.ToggleWindowRuleOpacity{ID: &v.ID}, true
	case SetDynamicCastWindow:
		return ipc.SetDynamicCastWindow{}, true
	case SetDynamicCastWindowByID:
		return ipc.SetDynamicCastWindow{ID: &v.ID}, true
	case PowerOffMonitors:
		return ipc.PowerOffMonitors{}, true
	case PowerOnMonitors:
		return ipc.PowerOnMonitors{}, true
	case ToggleKeyboardShortcutsInhibit:
		return ipc.ToggleKeyboardShortcutsInhibit{}, true
	case FocusWindowPrevious:
		return ipc.FocusWindowPrevious{}, true
	case FocusColumnLeft:
		return ipc.FocusColumnLeft{}, true
	case FocusColumnRight:
		return ipc.FocusColumnRight{}, true
	case FocusColumnFirst:
		return ipc.FocusColumnFirst{}, true
	case FocusColumnLast:
		return ipc.FocusColumnLast{}, true
	case FocusColumnRightOrFirst:
		return ipc.FocusColumnRightOrFirst{}, true
	case FocusColumnLeftOrLast:
		return ipc.FocusColumnLeftOrLast{}, true
	case FocusWindowOrMonitorUp:
		return ipc.FocusWindowOrMonitorUp{}, true
	case FocusWindowOrMonitorDown:
		return ipc.FocusWindowOrMonitorDown{}, true
	case FocusColumnOrMonitorLeft:
		return ipc.FocusColumnOrMonitorLeft{}, true
	case FocusColumnOrMonitorRight:
		return ipc.FocusColumnOrMonitorRight{}, true
	case FocusWindowDown:
		return ipc.FocusWindowDown{}, true
	case FocusWindowUp:
		return ipc.FocusWindowUp{}, true
	case FocusWindowDownOrColumnLeft:
		return ipc.FocusWindowDownOrColumnLeft{}, true
	case FocusWindowDownOrColumnRight:
		return ipc.FocusWindowDownOrColumnRight{}, true
	case FocusWindowUpOrColumnLeft:
		return ipc.FocusWindowUpOrColumnLeft{}, true
	case FocusWindowUpOrColumnRight:
		return ipc.FocusWindowUpOrColumnRight{}, true
	case FocusWindowOrWorkspaceDown:
		return ipc.FocusWindowOrWorkspaceDown{}, true
	case FocusWindowOrWorkspaceUp:
		return ipc.FocusWindowOrWorkspaceUp{}, true
	case FocusWindowTop:
		return ipc.FocusWindowTop{}, true
	case FocusWindowBottom:
		return ipc.FocusWindowBottom{}, true
	case FocusWindowDownOrTop:
		return ipc.FocusWindowDownOrTop{}, true
	case FocusWindowUpOrBottom:
		return ipc.FocusWindowUpOrBottom{}, true
	case MoveColumnLeft:
		return ipc.MoveColumnLeft{}, true
	case MoveColumnRight:
		return ipc.MoveColumnRight{}, true
	case MoveColumnToFirst:
		return ipc.MoveColumnToFirst{}, true
	case MoveColumnToLast:
		return ipc.MoveColumnToLast{}, true
	case MoveColumnLeftOrToMonitorLeft:
		return ipc.MoveColumnLeftOrToMonitorLeft{}, true
	case MoveColumnRightOrToMonitorRight:
		return ipc.MoveColumnRightOrToMonitorRight{}, true
	case MoveWindowDown:
		return ipc.MoveWindowDown{}, true
	case MoveWindowUp:
		return ipc.MoveWindowUp{}, true
	case MoveWindowDownOrToWorkspaceDown:
		return ipc.MoveWindowDownOrToWorkspaceDown{}, true
	case MoveWindowUpOrToWorkspaceUp:
		return ipc.MoveWindowUpOrToWorkspaceUp{}, true
	case ConsumeWindowIntoColumn:
		return ipc.ConsumeWindowIntoColumn{}, true
	case ExpelWindowFromColumn:
		return ipc.ExpelWindowFromColumn{}, true
	case SwapWindowRight:
		return ipc.SwapWindowRight{}, true
	case SwapWindowLeft:
		return ipc.SwapWindowLeft{}, true
	case CenterColumn:
		return ipc.CenterColumn{}, true
	case CenterVisibleColumns:
		return ipc.CenterVisibleColumns{}, true
	case FocusWorkspaceDown:
		return ipc.FocusWorkspaceDown{}, true
	case FocusWorkspaceUp:
		return ipc.FocusWorkspaceUp{}, true
	case FocusWorkspacePrevious:
		return ipc.FocusWorkspacePrevious{}, true
	case MoveWorkspaceDown:
		return ipc.MoveWorkspaceDown{}, true
	case MoveWorkspaceUp:
		return ipc.MoveWorkspaceUp{}, true
	case FocusMonitorLeft:
		return ipc.FocusMonitorLeft{}, true
	case FocusMonitorRight:
		return ipc.FocusMonitorRight{}, true
	case FocusMonitorDown:
		return ipc.FocusMonitorDown{}, true
	case FocusMonitorUp:
		return ipc.FocusMonitorUp{}, true
	case FocusMonitorPrevious:
		return ipc.FocusMonitorPrevious{}, true
	case FocusMonitorNext:
		return ipc.FocusMonitorNext{}, true
	case MoveWindowToMonitorLeft:
		return ipc.MoveWindowToMonitorLeft{}, true
	case MoveWindowToMonitorRight:
		return ipc.MoveWindowToMonitorRight{}, true
	case MoveWindowToMonitorDown:
		return ipc.MoveWindowToMonitorDown{}, true
	case MoveWindowToMonitorUp:
		return ipc.MoveWindowToMonitorUp{}, true
	case MoveWindowToMonitorPrevious:
		return ipc.MoveWindowToMonitorPrevious{}, true
	case MoveWindowToMonitorNext:
		return ipc.MoveWindowToMonitorNext{}, true
	case MoveColumnToMonitorLeft:
		return ipc.MoveColumnToMonitorLeft{}, true
	case MoveColumnToMonitorRight:
		return ipc.MoveColumnToMonitorRight{}, true
	case MoveColumnToMonitorDown:
		return ipc.MoveColumnToMonitorDown{}, true
	case MoveColumnToMonitorUp:
		return ipc.MoveColumnToMonitorUp{}, true
	case MoveColumnToMonitorPrevious:
		return ipc.MoveColumnToMonitorPrevious{}, true
	case MoveColumnToMonitorNext:
		return ipc.MoveColumnToMonitorNext{}, true
	case SwitchPresetColumnWidth:
		return ipc.SwitchPresetColumnWidth{}, true
	case SwitchPresetColumnWidthBack:
		return ipc.SwitchPresetColumnWidthBack{}, true
	case MaximizeColumn:
		return ipc.MaximizeColumn{}, true
	case ExpandColumnToAvailableWidth:
		return ipc.ExpandColumnToAvailableWidth{}, true
	case ShowHotkeyOverlay:
		return ipc.ShowHotkeyOverlay{}, true
	case MoveWorkspaceToMonitorLeft:
		return ipc.MoveWorkspaceToMonitorLeft{}, true
	case MoveWorkspaceToMonitorRight:
		return ipc.MoveWorkspaceToMonitorRight{}, true
	case MoveWorkspaceToMonitorDown:
		return ipc.MoveWorkspaceToMonitorDown{}, true
	case MoveWorkspaceToMonitorUp:
		return ipc.MoveWorkspaceToMonitorUp{}, true
	case MoveWorkspaceToMonitorPrevious:
		return ipc.MoveWorkspaceToMonitorPrevious{}, true
	case MoveWorkspaceToMonitorNext:
		return ipc.MoveWorkspaceToMonitorNext{}, true
	case ToggleDebugTint:
		return ipc.ToggleDebugTint{}, true
	case DebugToggleOpaqueRegions:
		return ipc.DebugToggleOpaqueRegions{}, true
	case DebugToggleDamage:
		return ipc.DebugToggleDamage{}, true
	case FocusFloating:
		return ipc.FocusFloating{}, true
	case FocusTiling:
		return ipc.FocusTiling{}, true
	case SwitchFocusBetweenFloatingAndTiling:
		return ipc.SwitchFocusBetweenFloatingAndTiling{}, true
	case ClearDynamicCastTarget:
		return ipc.ClearDynamicCastTarget{}, true
	case ToggleOverview:
		return ipc.ToggleOverview{}, true
	case OpenOverview:
		return ipc.OpenOverview{}, true
	case CloseOverview:
		return ipc.CloseOverview{}, true
	case LoadConfigFile:
		return ipc.LoadConfigFile{}, true
	}
	return nil, false
}
