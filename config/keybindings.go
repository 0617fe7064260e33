package config

import (
	"time"

	ipc "github.com/inference-gateway/tilecfg/ipc"
)

// DefaultBinds returns the binds used when no config file exists. A config
// file that exists replaces them entirely.
func DefaultBinds() Binds {
	var binds Binds

	addSpawnBinds(&binds)
	addSessionBinds(&binds)
	addFocusBinds(&binds)
	addMoveBinds(&binds)
	addWorkspaceBinds(&binds)
	addSizingBinds(&binds)
	addScreenshotBinds(&binds)
	addMediaBinds(&binds)

	return binds
}

type bindOption func(*Bind)

func titled(title string) bindOption {
	return func(b *Bind) { b.HotkeyOverlayTitle = OverlayTitle{Kind: TitleCustom, Text: title} }
}

func hidden() bindOption {
	return func(b *Bind) { b.HotkeyOverlayTitle = OverlayTitle{Kind: TitleHidden} }
}

func whenLocked() bindOption {
	return func(b *Bind) { b.AllowWhenLocked = true }
}

func noRepeat() bindOption {
	return func(b *Bind) { b.Repeat = false }
}

func cooldown(d time.Duration) bindOption {
	return func(b *Bind) { b.Cooldown = &d }
}

func addBind(binds *Binds, key string, action Action, opts ...bindOption) {
	k, err := ParseKey(key)
	if err != nil {
		panic("default bind " + key + ": " + err.Error())
	}
	b := Bind{Key: k, Action: action, Repeat: true, AllowInhibiting: true}
	for _, opt := range opts {
		opt(&b)
	}
	if _, ok := action.(ToggleKeyboardShortcutsInhibit); ok {
		b.AllowInhibiting = false
	}
	*binds = append(*binds, b)
}

func addSpawnBinds(binds *Binds) {
	addBind(binds, "Mod+Shift+Slash", ShowHotkeyOverlay{})
	addBind(binds, "Mod+T", Spawn{Command: []string{"alacritty"}}, titled("Open a Terminal: alacritty"))
	addBind(binds, "Mod+D", Spawn{Command: []string{"fuzzel"}}, titled("Run an Application: fuzzel"))
	addBind(binds, "Super+Alt+L", Spawn{Command: []string{"swaylock"}}, titled("Lock the Screen: swaylock"))
}

func addSessionBinds(binds *Binds) {
	addBind(binds, "Mod+O", ToggleOverview{}, noRepeat())
	addBind(binds, "Mod+Q", CloseWindow{}, noRepeat())
	addBind(binds, "Mod+Escape", ToggleKeyboardShortcutsInhibit{}, noRepeat())
	addBind(binds, "Mod+Shift+E", Quit{})
	addBind(binds, "Ctrl+Alt+Delete", Quit{})
	addBind(binds, "Mod+Shift+P", PowerOffMonitors{})
}

func addFocusBinds(binds *Binds) {
	addBind(binds, "Mod+Left", FocusColumnLeft{})
	addBind(binds, "Mod+Down", FocusWindowDown{})
	addBind(binds, "Mod+Up", FocusWindowUp{})
	addBind(binds, "Mod+Right", FocusColumnRight{})
	addBind(binds, "Mod+H", FocusColumnLeft{})
	addBind(binds, "Mod+J", FocusWindowDown{})
	addBind(binds, "Mod+K", FocusWindowUp{})
	addBind(binds, "Mod+L", FocusColumnRight{})
	addBind(binds, "Mod+Home", FocusColumnFirst{})
	addBind(binds, "Mod+End", FocusColumnLast{})
	addBind(binds, "Mod+Shift+Left", FocusMonitorLeft{})
	addBind(binds, "Mod+Shift+Right", FocusMonitorRight{})
}

func addMoveBinds(binds *Binds) {
	addBind(binds, "Mod+Ctrl+Left", MoveColumnLeft{})
	addBind(binds, "Mod+Ctrl+Down", MoveWindowDown{})
	addBind(binds, "Mod+Ctrl+Up", MoveWindowUp{})
	addBind(binds, "Mod+Ctrl+Right", MoveColumnRight{})
	addBind(binds, "Mod+Ctrl+Home", MoveColumnToFirst{})
	addBind(binds, "Mod+Ctrl+End", MoveColumnToLast{})
	addBind(binds, "Mod+BracketLeft", ConsumeOrExpelWindowLeft{})
	addBind(binds, "Mod+BracketRight", ConsumeOrExpelWindowRight{})
	addBind(binds, "Mod+V", ToggleWindowFloating{})
	addBind(binds, "Mod+Shift+V", SwitchFocusBetweenFloatingAndTiling{})
	addBind(binds, "Mod+W", ToggleGroup{})
}

func addWorkspaceBinds(binds *Binds) {
	addBind(binds, "Mod+Page_Down", FocusWorkspaceDown{})
	addBind(binds, "Mod+Page_Up", FocusWorkspaceUp{})
	addBind(binds, "Mod+Ctrl+Page_Down", MoveColumnToWorkspaceDown{Focus: true})
	addBind(binds, "Mod+Ctrl+Page_Up", MoveColumnToWorkspaceUp{Focus: true})
	addBind(binds, "Mod+WheelScrollDown", FocusWorkspaceDown{}, cooldown(150*time.Millisecond))
	addBind(binds, "Mod+WheelScrollUp", FocusWorkspaceUp{}, cooldown(150*time.Millisecond))
	addBind(binds, "Mod+WheelScrollRight", FocusColumnRight{})
	addBind(binds, "Mod+WheelScrollLeft", FocusColumnLeft{})

	digits := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for i, digit := range digits {
		ref := WorkspaceIndex(uint8(i + 1))
		addBind(binds, "Mod+"+digit, FocusWorkspace{Reference: ref})
		addBind(binds, "Mod+Ctrl+"+digit, MoveColumnToWorkspace{Reference: ref, Focus: true})
	}
	addBind(binds, "Mod+Tab", FocusWorkspacePrevious{})
}

func addSizingBinds(binds *Binds) {
	addBind(binds, "Mod+R", SwitchPresetColumnWidth{})
	addBind(binds, "Mod+Shift+R", SwitchPresetWindowHeight{})
	addBind(binds, "Mod+Ctrl+R", ResetWindowHeight{})
	addBind(binds, "Mod+F", MaximizeColumn{})
	addBind(binds, "Mod+Shift+F", FullscreenWindow{})
	addBind(binds, "Mod+C", CenterColumn{})
	addBind(binds, "Mod+Minus", SetColumnWidth{Change: ipc.SizeChange{Kind: ipc.AdjustProportion, Proportion: -10}})
	addBind(binds, "Mod+Equal", SetColumnWidth{Change: ipc.SizeChange{Kind: ipc.AdjustProportion, Proportion: 10}})
	addBind(binds, "Mod+Shift+Minus", SetWindowHeight{Change: ipc.SizeChange{Kind: ipc.AdjustProportion, Proportion: -10}})
	addBind(binds, "Mod+Shift+Equal", SetWindowHeight{Change: ipc.SizeChange{Kind: ipc.AdjustProportion, Proportion: 10}})
}

func addScreenshotBinds(binds *Binds) {
	addBind(binds, "Print", Screenshot{ShowPointer: true})
	addBind(binds, "Ctrl+Print", ScreenshotScreen{WriteToDisk: true, ShowPointer: true})
	addBind(binds, "Alt+Print", ScreenshotWindow{WriteToDisk: true})
}

func addMediaBinds(binds *Binds) {
	addBind(binds, "XF86AudioRaiseVolume", SpawnSh{Command: "wpctl set-volume @DEFAULT_AUDIO_SINK@ 0.1+ -l 1.0"}, whenLocked(), hidden())
	addBind(binds, "XF86AudioLowerVolume", SpawnSh{Command: "wpctl set-volume @DEFAULT_AUDIO_SINK@ 0.1-"}, whenLocked(), hidden())
	addBind(binds, "XF86AudioMute", SpawnSh{Command: "wpctl set-mute @DEFAULT_AUDIO_SINK@ toggle"}, whenLocked(), hidden())
	addBind(binds, "XF86AudioPlay", SpawnSh{Command: "playerctl play-pause"}, whenLocked(), hidden())
	addBind(binds, "XF86MonBrightnessUp", Spawn{Command: []string{"brightnessctl", "--class=backlight", "set", "+10%"}}, whenLocked(), hidden())
	addBind(binds, "XF86MonBrightnessDown", Spawn{Command: []string{"brightnessctl", "--class=backlight", "set", "10%-"}}, whenLocked(), hidden())
}
