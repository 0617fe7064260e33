package keybinding

import (
	"fmt"
	"strings"
	"sync"
	"time"

	config "github.com/inference-gateway/tilecfg/config"
	keysym "github.com/inference-gateway/tilecfg/internal/keysym"
	logger "github.com/inference-gateway/tilecfg/internal/logger"
)

// Registry resolves input events against a fixed set of binds. Build a new
// registry when the config changes.
type Registry struct {
	modKey config.ModKey
	binds  []config.Bind
	keyMap map[config.Key]int

	mutex     sync.Mutex
	lastFired map[config.Key]time.Time
}

// EffectiveModKey picks the key that stands in for Mod. Nested sessions
// default to Alt so they don't fight the host compositor over Super.
func EffectiveModKey(in config.Input, nested bool) config.ModKey {
	if nested {
		if in.ModKeyNested != nil {
			return *in.ModKeyNested
		}
		return config.ModKeyAlt
	}
	if in.ModKey != nil {
		return *in.ModKey
	}
	return config.ModKeySuper
}

func NewRegistry(binds config.Binds, modKey config.ModKey) *Registry {
	r := &Registry{
		modKey:    modKey,
		binds:     make([]config.Bind, 0, len(binds)),
		keyMap:    make(map[config.Key]int, len(binds)),
		lastFired: make(map[config.Key]time.Time),
	}

	for _, bind := range binds {
		key := r.normalize(bind.Key)
		if prev, exists := r.keyMap[key]; exists {
			logger.Warn("Bind shadowed by an earlier bind with the same effective key",
				"key", bind.Key.String(), "shadowed_by", r.binds[prev].Key.String(), "mod_key", modKey.String())
			continue
		}
		r.keyMap[key] = len(r.binds)
		r.binds = append(r.binds, bind)
	}

	logger.Debug("Built bind registry", "binds", len(r.binds), "mod_key", modKey.String())
	return r
}

func (r *Registry) ModKey() config.ModKey {
	return r.modKey
}

// Binds returns the reachable binds in config order
func (r *Registry) Binds() []config.Bind {
	out := make([]config.Bind, len(r.binds))
	copy(out, r.binds)
	return out
}

// normalize makes Mod and the physical mod key interchangeable
func (r *Registry) normalize(key config.Key) config.Key {
	mod := r.modKey.Modifiers()
	if key.Modifiers.Contains(config.ModCompositor) {
		key.Modifiers |= mod
	} else if mod != 0 && key.Modifiers.Contains(mod) {
		key.Modifiers |= config.ModCompositor
	}
	return key
}

// Find looks up the bind for a key without applying any gating
func (r *Registry) Find(key config.Key) (config.Bind, bool) {
	i, ok := r.keyMap[r.normalize(key)]
	if !ok {
		return config.Bind{}, false
	}
	return r.binds[i], true
}

// Resolve returns the bind an event triggers. A non-nil error means the
// event should be passed through to the focused client.
func (r *Registry) Resolve(ev Event, st State) (config.Bind, error) {
	key := config.Key{Trigger: ev.Trigger, Modifiers: ev.Modifiers}
	bind, ok := r.Find(key)
	if !ok {
		return config.Bind{}, ErrNoBinding
	}

	if st.Locked && !bind.AllowWhenLocked {
		return config.Bind{}, ErrLocked
	}
	if st.Inhibited && bind.AllowInhibiting {
		return config.Bind{}, ErrInhibited
	}
	if ev.Repeat && !bind.Repeat {
		return config.Bind{}, ErrRepeat
	}

	if bind.Cooldown != nil {
		now := ev.Time
		if now.IsZero() {
			now = time.Now()
		}
		norm := r.normalize(bind.Key)

		r.mutex.Lock()
		last, fired := r.lastFired[norm]
		if fired && now.Sub(last) < *bind.Cooldown {
			r.mutex.Unlock()
			return config.Bind{}, ErrCooldown
		}
		r.lastFired[norm] = now
		r.mutex.Unlock()
	}

	return bind, nil
}

// HotkeyOverlay lists the binds to show in the hotkey overlay. Binds with
// an explicit null title are left out.
func (r *Registry) HotkeyOverlay() []OverlayEntry {
	entries := make([]OverlayEntry, 0, len(r.binds))
	for _, bind := range r.binds {
		var title string
		switch bind.HotkeyOverlayTitle.Kind {
		case config.TitleHidden:
			continue
		case config.TitleCustom:
			title = bind.HotkeyOverlayTitle.Text
		default:
			title = defaultTitle(bind.Action)
		}
		entries = append(entries, OverlayEntry{
			Key:    r.FormatKey(bind.Key),
			Title:  title,
			Action: config.ActionName(bind.Action),
		})
	}
	return entries
}

// FormatKey renders a key for display with Mod spelled as the active mod key
func (r *Registry) FormatKey(key config.Key) string {
	mods := key.Modifiers
	if mods.Contains(config.ModCompositor) {
		mods = (mods &^ config.ModCompositor) | r.modKey.Modifiers()
	}

	var parts []string
	if mods != 0 {
		parts = strings.Split(mods.String(), "+")
	}

	trigger := key.Trigger.String()
	if key.Trigger.Kind == config.TriggerKeysym {
		trigger = keysym.Label(key.Trigger.Keysym)
	}
	return strings.Join(append(parts, trigger), " + ")
}

func defaultTitle(action config.Action) string {
	if spawn, ok := action.(config.Spawn); ok && len(spawn.Command) > 0 {
		return fmt.Sprintf("Spawn %s", strings.Join(spawn.Command, " "))
	}
	if spawn, ok := action.(config.SpawnSh); ok {
		return fmt.Sprintf("Spawn %s", spawn.Command)
	}

	words := strings.Split(config.ActionName(action), "-")
	if len(words) > 0 && words[0] != "" {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}
