package keybinding

import (
	"testing"
	"time"

	config "github.com/inference-gateway/tilecfg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(t *testing.T, s string) config.Key {
	t.Helper()
	k, err := config.ParseKey(s)
	require.NoError(t, err)
	return k
}

func event(t *testing.T, s string) Event {
	k := key(t, s)
	return Event{Trigger: k.Trigger, Modifiers: k.Modifiers}
}

func testBinds(t *testing.T) config.Binds {
	cooldown := 150 * time.Millisecond
	return config.Binds{
		{Key: key(t, "Mod+T"), Action: config.Spawn{Command: []string{"foot"}}, Repeat: true, AllowInhibiting: true,
			HotkeyOverlayTitle: config.OverlayTitle{Kind: config.TitleCustom, Text: "Open a Terminal"}},
		{Key: key(t, "Mod+Q"), Action: config.CloseWindow{}, Repeat: false, AllowInhibiting: true},
		{Key: key(t, "XF86AudioMute"), Action: config.SpawnSh{Command: "wpctl set-mute @DEFAULT_AUDIO_SINK@ toggle"},
			Repeat: true, AllowWhenLocked: true, AllowInhibiting: true,
			HotkeyOverlayTitle: config.OverlayTitle{Kind: config.TitleHidden}},
		{Key: key(t, "Mod+Escape"), Action: config.ToggleKeyboardShortcutsInhibit{}, Repeat: false, AllowInhibiting: false},
		{Key: key(t, "Mod+WheelScrollDown"), Action: config.FocusWorkspaceDown{}, Repeat: true, AllowInhibiting: true, Cooldown: &cooldown},
		{Key: key(t, "Ctrl+Alt+Delete"), Action: config.Quit{}, Repeat: true, AllowInhibiting: true},
	}
}

func TestEffectiveModKey(t *testing.T) {
	ctrl := config.ModKeyCtrl
	shift := config.ModKeyShift

	assert.Equal(t, config.ModKeySuper, EffectiveModKey(config.Input{}, false))
	assert.Equal(t, config.ModKeyAlt, EffectiveModKey(config.Input{}, true))
	assert.Equal(t, config.ModKeyCtrl, EffectiveModKey(config.Input{ModKey: &ctrl, ModKeyNested: &shift}, false))
	assert.Equal(t, config.ModKeyShift, EffectiveModKey(config.Input{ModKey: &ctrl, ModKeyNested: &shift}, true))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		modKey  config.ModKey
		event   Event
		state   State
		action  config.Action
		wantErr error
	}{
		{
			name:   "mod resolved against super",
			modKey: config.ModKeySuper,
			event:  event(t, "Super+T"),
			action: config.Spawn{Command: []string{"foot"}},
		},
		{
			name:   "mod resolved against alt",
			modKey: config.ModKeyAlt,
			event:  event(t, "Alt+T"),
			action: config.Spawn{Command: []string{"foot"}},
		},
		{
			name:    "wrong physical modifier",
			modKey:  config.ModKeyAlt,
			event:   event(t, "Super+T"),
			wantErr: ErrNoBinding,
		},
		{
			name:    "extra modifier does not match",
			modKey:  config.ModKeySuper,
			event:   event(t, "Super+Shift+T"),
			wantErr: ErrNoBinding,
		},
		{
			name:   "explicit modifiers without mod",
			modKey: config.ModKeySuper,
			event:  event(t, "Ctrl+Alt+Delete"),
			action: config.Quit{},
		},
		{
			name:    "explicit bind containing the mod key",
			modKey:  config.ModKeyAlt,
			event:   event(t, "Ctrl+Alt+Delete"),
			action:  config.Quit{},
			wantErr: nil,
		},
		{
			name:    "locked blocks regular binds",
			modKey:  config.ModKeySuper,
			event:   event(t, "Super+T"),
			state:   State{Locked: true},
			wantErr: ErrLocked,
		},
		{
			name:   "locked allows opted-in binds",
			modKey: config.ModKeySuper,
			event:  event(t, "XF86AudioMute"),
			state:  State{Locked: true},
			action: config.SpawnSh{Command: "wpctl set-mute @DEFAULT_AUDIO_SINK@ toggle"},
		},
		{
			name:    "inhibited passes through",
			modKey:  config.ModKeySuper,
			event:   event(t, "Super+Q"),
			state:   State{Inhibited: true},
			wantErr: ErrInhibited,
		},
		{
			name:   "inhibitor toggle works while inhibited",
			modKey: config.ModKeySuper,
			event:  event(t, "Super+Escape"),
			state:  State{Inhibited: true},
			action: config.ToggleKeyboardShortcutsInhibit{},
		},
		{
			name:    "repeat suppressed",
			modKey:  config.ModKeySuper,
			event:   Event{Trigger: key(t, "Q").Trigger, Modifiers: config.ModSuper, Repeat: true},
			wantErr: ErrRepeat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(testBinds(t), tt.modKey)
			bind, err := r.Resolve(tt.event, tt.state)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, bind.Action)
		})
	}
}

func TestResolveCooldown(t *testing.T) {
	r := NewRegistry(testBinds(t), config.ModKeySuper)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ev := event(t, "Super+WheelScrollDown")

	ev.Time = start
	_, err := r.Resolve(ev, State{})
	require.NoError(t, err)

	ev.Time = start.Add(100 * time.Millisecond)
	_, err = r.Resolve(ev, State{})
	assert.ErrorIs(t, err, ErrCooldown)

	ev.Time = start.Add(200 * time.Millisecond)
	_, err = r.Resolve(ev, State{})
	assert.NoError(t, err)
}

func TestNewRegistryShadowing(t *testing.T) {
	binds := config.Binds{
		{Key: key(t, "Mod+T"), Action: config.CloseWindow{}},
		{Key: key(t, "Super+T"), Action: config.Quit{}},
	}

	r := NewRegistry(binds, config.ModKeySuper)
	require.Len(t, r.Binds(), 1)
	bind, ok := r.Find(key(t, "Super+T"))
	require.True(t, ok)
	assert.Equal(t, config.CloseWindow{}, bind.Action)

	r = NewRegistry(binds, config.ModKeyAlt)
	assert.Len(t, r.Binds(), 2)
}

func TestHotkeyOverlay(t *testing.T) {
	r := NewRegistry(testBinds(t), config.ModKeySuper)
	entries := r.HotkeyOverlay()

	require.Len(t, entries, 5)
	assert.Equal(t, OverlayEntry{Key: "Super + T", Title: "Open a Terminal", Action: "spawn"}, entries[0])
	assert.Equal(t, OverlayEntry{Key: "Super + Q", Title: "Close window", Action: "close-window"}, entries[1])

	for _, e := range entries {
		assert.NotEqual(t, "spawn-sh", e.Action, "hidden binds are left out")
	}
}
