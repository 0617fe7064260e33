package config

import (
	"encoding/json"
	"math"
	"time"

	document "github.com/inference-gateway/tilecfg/internal/document"
	ipc "github.com/inference-gateway/tilecfg/ipc"
)

// OverlayTitleKind distinguishes an unset hotkey overlay title from an
// explicit null that hides the bind
type OverlayTitleKind int

const (
	TitleDefault OverlayTitleKind = iota
	TitleHidden
	TitleCustom
)

type OverlayTitle struct {
	Kind OverlayTitleKind
	Text string
}

func (t OverlayTitle) MarshalYAML() (any, error) {
	switch t.Kind {
	case TitleHidden:
		return "(hidden)", nil
	case TitleCustom:
		return t.Text, nil
	}
	return nil, nil
}

// Bind associates a key chord with an action
type Bind struct {
	Key                Key            `yaml:"key"`
	Action             Action         `yaml:"-"`
	Repeat             bool           `yaml:"repeat"`
	Cooldown           *time.Duration `yaml:"cooldown,omitempty"`
	AllowWhenLocked    bool           `yaml:"allow_when_locked"`
	AllowInhibiting    bool           `yaml:"allow_inhibiting"`
	HotkeyOverlayTitle OverlayTitle   `yaml:"hotkey_overlay_title,omitempty"`
}

type bindYAML struct {
	Key                Key            `yaml:"key"`
	Action             string         `yaml:"action"`
	Args               map[string]any `yaml:"args,omitempty"`
	Repeat             bool           `yaml:"repeat"`
	Cooldown           *time.Duration `yaml:"cooldown,omitempty"`
	AllowWhenLocked    bool           `yaml:"allow_when_locked"`
	AllowInhibiting    bool           `yaml:"allow_inhibiting"`
	HotkeyOverlayTitle OverlayTitle   `yaml:"hotkey_overlay_title,omitempty"`
}

// MarshalYAML writes the action by name with its arguments in wire form
func (b Bind) MarshalYAML() (any, error) {
	out := bindYAML{
		Key:                b.Key,
		Action:             ActionName(b.Action),
		Repeat:             b.Repeat,
		Cooldown:           b.Cooldown,
		AllowWhenLocked:    b.AllowWhenLocked,
		AllowInhibiting:    b.AllowInhibiting,
		HotkeyOverlayTitle: b.HotkeyOverlayTitle,
	}
	if wa, ok := ActionToIPC(b.Action); ok {
		data, err := ipc.MarshalAction(wa)
		if err != nil {
			return nil, err
		}
		var env map[string]map[string]any
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, err
		}
		if args := env[ipc.Name(wa)]; len(args) > 0 {
			out.Args = args
		}
	}
	return out, nil
}

// maxCooldownMs is the longest cooldown a time.Duration can hold
const maxCooldownMs = uint64(math.MaxInt64 / int64(time.Millisecond))

// placeholderBind stands in for a bind whose action failed to decode so the
// key still takes part in duplicate detection
func placeholderBind(key Key) Bind {
	return Bind{
		Key:             key,
		Action:          Spawn{Command: []string{}},
		Repeat:          true,
		AllowInhibiting: true,
	}
}

// Binds is an ordered list of binds with unique keys
type Binds []Bind

// Find returns the bind for key
func (b Binds) Find(key Key) (Bind, bool) {
	for _, bind := range b {
		if bind.Key == key {
			return bind, true
		}
	}
	return Bind{}, false
}

// MergeWith replaces binds with the same key in place and appends new ones
func (b *Binds) MergeWith(part Binds) {
	for _, bind := range part {
		replaced := false
		for i := range *b {
			if (*b)[i].Key == bind.Key {
				(*b)[i] = bind
				replaced = true
				break
			}
		}
		if !replaced {
			*b = append(*b, bind)
		}
	}
}

func decodeBinds(d *decoder, node *document.Node) Binds {
	d.onlyChildren(node)

	seen := make(map[Key]bool, len(node.Children))
	binds := make(Binds, 0, len(node.Children))

	for _, child := range node.Children {
		bind, ok := decodeBind(d, child)
		if !ok {
			continue
		}
		if seen[bind.Key] {
			d.errorf(child.NameSpan, "duplicate keybind")
			continue
		}
		seen[bind.Key] = true
		binds = append(binds, bind)
	}

	return binds
}

// decodeBind decodes one bind node. It returns false only when the bind has
// no usable key; a broken action yields a placeholder bind instead.
func decodeBind(d *decoder, node *document.Node) (Bind, bool) {
	if node.HasType {
		d.errorf(node.TypeSpan, "no type name expected for this node")
	}
	for _, arg := range node.Args {
		d.errorf(arg.Span, "no arguments expected for this node")
	}

	key, err := ParseKey(node.Name)
	if err != nil {
		d.errorf(node.NameSpan, "invalid keybind: %v", err)
		return Bind{}, false
	}

	bind := Bind{
		Key:             key,
		Repeat:          true,
		AllowInhibiting: true,
	}

	var lockedProp *document.Property
	for i := range node.Props {
		prop := &node.Props[i]
		var ok bool
		switch prop.Name {
		case "repeat":
			bind.Repeat, ok = d.boolValue(prop.Value)
		case "cooldown-ms":
			var ms uint64
			if ms, ok = d.u64Value(prop.Value); ok {
				if ms > maxCooldownMs {
					d.errorf(prop.Value.Span, "value %d does not fit into a duration", ms)
					ok = false
					break
				}
				cooldown := time.Duration(ms) * time.Millisecond
				bind.Cooldown = &cooldown
			}
		case "allow-when-locked":
			bind.AllowWhenLocked, ok = d.boolValue(prop.Value)
			lockedProp = prop
		case "allow-inhibiting":
			bind.AllowInhibiting, ok = d.boolValue(prop.Value)
		case "hotkey-overlay-title":
			var title *string
			if title, ok = d.optStringValue(prop.Value); ok {
				if title == nil {
					bind.HotkeyOverlayTitle = OverlayTitle{Kind: TitleHidden}
				} else {
					bind.HotkeyOverlayTitle = OverlayTitle{Kind: TitleCustom, Text: *title}
				}
			}
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
			ok = true
		}
		if !ok {
			return Bind{}, false
		}
	}

	if len(node.Children) == 0 {
		d.errorf(node.NameSpan, "expected an action for this keybind")
		return placeholderBind(key), true
	}
	for _, extra := range node.Children[1:] {
		d.errorf(extra.NameSpan, "only one action is allowed per keybind")
	}

	action, ok := decodeAction(d, node.Children[0])
	if !ok {
		return placeholderBind(key), true
	}
	bind.Action = action

	if lockedProp != nil && !IsSpawn(action) {
		d.errorf(lockedProp.NameSpan, "allow-when-locked can only be set on spawn binds")
		bind.AllowWhenLocked = false
	}

	// This action lifts the inhibitor, so the inhibitor must never block it.
	if _, ok := action.(ToggleKeyboardShortcutsInhibit); ok {
		bind.AllowInhibiting = false
	}

	return bind, true
}

// SwitchAction runs a command when a hardware switch changes state
type SwitchAction struct {
	Spawn []string `yaml:"spawn"`
}

// SwitchBinds maps lid and tablet-mode switches to commands
type SwitchBinds struct {
	LidOpen       *SwitchAction `yaml:"lid_open,omitempty"`
	LidClose      *SwitchAction `yaml:"lid_close,omitempty"`
	TabletModeOn  *SwitchAction `yaml:"tablet_mode_on,omitempty"`
	TabletModeOff *SwitchAction `yaml:"tablet_mode_off,omitempty"`
}

func (s *SwitchBinds) MergeWith(part *SwitchBinds) {
	if part == nil {
		return
	}
	mergePtr(&s.LidOpen, part.LidOpen)
	mergePtr(&s.LidClose, part.LidClose)
	mergePtr(&s.TabletModeOn, part.TabletModeOn)
	mergePtr(&s.TabletModeOff, part.TabletModeOff)
}

func decodeSwitchBinds(d *decoder, node *document.Node) *SwitchBinds {
	d.onlyChildren(node)

	out := &SwitchBinds{}
	once := setOnce{}
	for _, child := range node.Children {
		var slot **SwitchAction
		switch child.Name {
		case "lid-open":
			slot = &out.LidOpen
		case "lid-close":
			slot = &out.LidClose
		case "tablet-mode-on":
			slot = &out.TabletModeOn
		case "tablet-mode-off":
			slot = &out.TabletModeOff
		default:
			unexpectedNode(d, child)
			continue
		}
		if !once.first(d, child) {
			continue
		}
		if a, ok := decodeSwitchAction(d, child); ok {
			*slot = a
		}
	}
	return out
}

func decodeSwitchAction(d *decoder, node *document.Node) (*SwitchAction, bool) {
	d.onlyChildren(node)

	var action *SwitchAction
	for _, child := range node.Children {
		if child.Name != "spawn" {
			unexpectedNode(d, child)
			continue
		}
		d.noType(child)
		d.noProps(child)
		d.noChildren(child)
		cmd := []string{}
		for _, arg := range child.Args {
			if s, ok := d.stringValue(arg); ok {
				cmd = append(cmd, s)
			}
		}
		action = &SwitchAction{Spawn: cmd}
	}
	if action == nil {
		d.errorf(node.NameSpan, "child node `spawn` is required")
		return nil, false
	}
	return action, true
}
