package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ChangeKind says whether a size or position change is absolute or relative,
// and whether it is in logical pixels or a proportion of the available space
type ChangeKind int

const (
	SetFixed ChangeKind = iota
	SetProportion
	AdjustFixed
	AdjustProportion
)

var changeKindNames = [...]string{"SetFixed", "SetProportion", "AdjustFixed", "AdjustProportion"}

func (k ChangeKind) String() string {
	if int(k) < len(changeKindNames) {
		return changeKindNames[k]
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

func parseChangeKind(s string) (ChangeKind, bool) {
	for i, n := range changeKindNames {
		if n == s {
			return ChangeKind(i), true
		}
	}
	return 0, false
}

// splitChange classifies "N", "+N", "-N", "N%", "+N%" and "-N%"
func splitChange(s string) (string, ChangeKind, error) {
	value, rest, percent := strings.Cut(s, "%")
	if percent && rest != "" {
		return "", 0, errors.New("trailing characters after '%' are not allowed")
	}
	if value == "" {
		return "", 0, errors.New("value is missing")
	}

	relative := value[0] == '+' || value[0] == '-'
	switch {
	case percent && relative:
		return value, AdjustProportion, nil
	case percent:
		return value, SetProportion, nil
	case relative:
		return value, AdjustFixed, nil
	}
	return value, SetFixed, nil
}

// SizeChange resizes a window or column. Proportions are in percent.
type SizeChange struct {
	Kind       ChangeKind
	Fixed      int32
	Proportion float64
}

// ParseSizeChange parses "1000", "+10", "-10", "50%" or "+5%"
func ParseSizeChange(s string) (SizeChange, error) {
	value, kind, err := splitChange(s)
	if err != nil {
		return SizeChange{}, err
	}
	if kind == SetProportion || kind == AdjustProportion {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return SizeChange{}, errors.New("error parsing value")
		}
		return SizeChange{Kind: kind, Proportion: f}, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return SizeChange{}, errors.New("error parsing value")
	}
	return SizeChange{Kind: kind, Fixed: int32(n)}, nil
}

func (c SizeChange) String() string {
	switch c.Kind {
	case SetProportion:
		return formatFloat(c.Proportion) + "%"
	case AdjustProportion:
		return signed(formatFloat(c.Proportion)) + "%"
	case AdjustFixed:
		return signed(strconv.Itoa(int(c.Fixed)))
	}
	return strconv.Itoa(int(c.Fixed))
}

func (c SizeChange) MarshalYAML() (any, error) { return c.String(), nil }

func (c SizeChange) MarshalJSON() ([]byte, error) {
	if c.Kind == SetProportion || c.Kind == AdjustProportion {
		return json.Marshal(map[string]float64{c.Kind.String(): c.Proportion})
	}
	return json.Marshal(map[string]int32{c.Kind.String(): c.Fixed})
}

func (c *SizeChange) UnmarshalJSON(data []byte) error {
	kind, raw, err := unmarshalTagged(data)
	if err != nil {
		return fmt.Errorf("size change: %w", err)
	}
	k, ok := parseChangeKind(kind)
	if !ok {
		return fmt.Errorf("size change: unknown variant %q", kind)
	}
	*c = SizeChange{Kind: k}
	if k == SetProportion || k == AdjustProportion {
		return json.Unmarshal(raw, &c.Proportion)
	}
	return json.Unmarshal(raw, &c.Fixed)
}

// PositionChange moves a floating window. Proportions are in percent.
type PositionChange struct {
	Kind  ChangeKind
	Value float64
}

func ParsePositionChange(s string) (PositionChange, error) {
	value, kind, err := splitChange(s)
	if err != nil {
		return PositionChange{}, err
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return PositionChange{}, errors.New("error parsing value")
	}
	return PositionChange{Kind: kind, Value: f}, nil
}

func (c PositionChange) String() string {
	out := formatFloat(c.Value)
	if c.Kind == AdjustFixed || c.Kind == AdjustProportion {
		out = signed(out)
	}
	if c.Kind == SetProportion || c.Kind == AdjustProportion {
		out += "%"
	}
	return out
}

func (c PositionChange) MarshalYAML() (any, error) { return c.String(), nil }

func (c PositionChange) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{c.Kind.String(): c.Value})
}

func (c *PositionChange) UnmarshalJSON(data []byte) error {
	kind, raw, err := unmarshalTagged(data)
	if err != nil {
		return fmt.Errorf("position change: %w", err)
	}
	k, ok := parseChangeKind(kind)
	if !ok {
		return fmt.Errorf("position change: unknown variant %q", kind)
	}
	*c = PositionChange{Kind: k}
	return json.Unmarshal(raw, &c.Value)
}

// LayoutSwitchTarget selects a keyboard layout
type LayoutSwitchTarget struct {
	// Index is used when neither Next nor Prev is set.
	Next  bool
	Prev  bool
	Index uint8
}

var (
	LayoutNext = LayoutSwitchTarget{Next: true}
	LayoutPrev = LayoutSwitchTarget{Prev: true}
)

func LayoutIndex(i uint8) LayoutSwitchTarget {
	return LayoutSwitchTarget{Index: i}
}

func ParseLayoutSwitchTarget(s string) (LayoutSwitchTarget, error) {
	switch s {
	case "next":
		return LayoutNext, nil
	case "prev":
		return LayoutPrev, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return LayoutSwitchTarget{}, errors.New(`invalid layout action, can be "next", "prev" or a layout index`)
	}
	return LayoutIndex(uint8(n)), nil
}

func (t LayoutSwitchTarget) String() string {
	switch {
	case t.Next:
		return "next"
	case t.Prev:
		return "prev"
	}
	return strconv.Itoa(int(t.Index))
}

func (t LayoutSwitchTarget) MarshalYAML() (any, error) { return t.String(), nil }

func (t LayoutSwitchTarget) MarshalJSON() ([]byte, error) {
	switch {
	case t.Next:
		return json.Marshal("Next")
	case t.Prev:
		return json.Marshal("Prev")
	}
	return json.Marshal(map[string]uint8{"Index": t.Index})
}

func (t *LayoutSwitchTarget) UnmarshalJSON(data []byte) error {
	var unit string
	if json.Unmarshal(data, &unit) == nil {
		switch unit {
		case "Next":
			*t = LayoutNext
			return nil
		case "Prev":
			*t = LayoutPrev
			return nil
		}
		return fmt.Errorf("layout switch target: unknown variant %q", unit)
	}

	kind, raw, err := unmarshalTagged(data)
	if err != nil {
		return fmt.Errorf("layout switch target: %w", err)
	}
	if kind != "Index" {
		return fmt.Errorf("layout switch target: unknown variant %q", kind)
	}
	*t = LayoutSwitchTarget{}
	return json.Unmarshal(raw, &t.Index)
}

// WorkspaceReferenceKind tags a WorkspaceReferenceArg
type WorkspaceReferenceKind int

const (
	WorkspaceByID WorkspaceReferenceKind = iota
	WorkspaceByIndex
	WorkspaceByName
)

// WorkspaceReferenceArg addresses a workspace over IPC
type WorkspaceReferenceArg struct {
	Kind  WorkspaceReferenceKind
	ID    uint64
	Index uint8
	Name  string
}

// ParseWorkspaceReferenceArg treats integers as indices and anything else as
// a workspace name
func ParseWorkspaceReferenceArg(s string) (WorkspaceReferenceArg, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return WorkspaceReferenceArg{Kind: WorkspaceByName, Name: s}, nil
	}
	if n < 0 || n > math.MaxUint8 {
		return WorkspaceReferenceArg{}, errors.New("workspace index must be between 0 and 255")
	}
	return WorkspaceReferenceArg{Kind: WorkspaceByIndex, Index: uint8(n)}, nil
}

func (w WorkspaceReferenceArg) String() string {
	switch w.Kind {
	case WorkspaceByID:
		return "id:" + strconv.FormatUint(w.ID, 10)
	case WorkspaceByIndex:
		return strconv.Itoa(int(w.Index))
	}
	return w.Name
}

func (w WorkspaceReferenceArg) MarshalJSON() ([]byte, error) {
	switch w.Kind {
	case WorkspaceByID:
		return json.Marshal(map[string]uint64{"Id": w.ID})
	case WorkspaceByIndex:
		return json.Marshal(map[string]uint8{"Index": w.Index})
	}
	return json.Marshal(map[string]string{"Name": w.Name})
}

func (w *WorkspaceReferenceArg) UnmarshalJSON(data []byte) error {
	kind, raw, err := unmarshalTagged(data)
	if err != nil {
		return fmt.Errorf("workspace reference: %w", err)
	}
	*w = WorkspaceReferenceArg{}
	switch kind {
	case "Id":
		w.Kind = WorkspaceByID
		return json.Unmarshal(raw, &w.ID)
	case "Index":
		w.Kind = WorkspaceByIndex
		return json.Unmarshal(raw, &w.Index)
	case "Name":
		w.Kind = WorkspaceByName
		return json.Unmarshal(raw, &w.Name)
	}
	return fmt.Errorf("workspace reference: unknown variant %q", kind)
}

// unmarshalTagged splits an externally tagged value {"Variant": payload}
func unmarshalTagged(data []byte) (string, json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, err
	}
	if len(m) != 1 {
		return "", nil, fmt.Errorf("expected a single variant, got %d keys", len(m))
	}
	for k, v := range m {
		return k, v, nil
	}
	return "", nil, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return s
	}
	return "+" + s
}
