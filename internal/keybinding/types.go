package keybinding

import (
	"errors"
	"time"

	config "github.com/inference-gateway/tilecfg/config"
)

// Event is one trigger press as seen by the input dispatch loop
type Event struct {
	Trigger   config.Trigger
	Modifiers config.Modifiers
	// Repeat is set for key repeats generated while the key is held
	Repeat bool
	Time   time.Time
}

// State is the session state that gates binds
type State struct {
	Locked bool
	// Inhibited is set while a client holds a keyboard shortcuts inhibitor
	Inhibited bool
}

var (
	ErrNoBinding = errors.New("no bind for key")
	ErrLocked    = errors.New("bind is not allowed while the session is locked")
	ErrInhibited = errors.New("shortcuts are inhibited")
	ErrRepeat    = errors.New("bind does not repeat")
	ErrCooldown  = errors.New("bind is cooling down")
)

// OverlayEntry is one line of the hotkey overlay
type OverlayEntry struct {
	Key    string
	Title  string
	Action string
}
