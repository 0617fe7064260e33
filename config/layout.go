package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
	ipc "github.com/inference-gateway/tilecfg/ipc"
)

// PresetSize is a column width or window height, either a fraction of the
// working area or a fixed logical size.
type PresetSize struct {
	Fixed      bool
	Proportion float64
	Size       int32
}

func Proportion(p float64) PresetSize { return PresetSize{Proportion: p} }
func FixedSize(px int32) PresetSize   { return PresetSize{Fixed: true, Size: px} }

func (p PresetSize) MarshalYAML() (any, error) {
	if p.Fixed {
		return map[string]int32{"fixed": p.Size}, nil
	}
	return map[string]float64{"proportion": p.Proportion}, nil
}

// SizeChange converts the preset to the change that applies it
func (p PresetSize) SizeChange() ipc.SizeChange {
	if p.Fixed {
		return ipc.SizeChange{Kind: ipc.SetFixed, Fixed: p.Size}
	}
	return ipc.SizeChange{Kind: ipc.SetProportion, Proportion: p.Proportion * 100}
}

func defaultPresets() []PresetSize {
	return []PresetSize{Proportion(1. / 3.), Proportion(0.5), Proportion(2. / 3.)}
}

func decodePresetSize(d *decoder, node *document.Node) (PresetSize, bool) {
	switch node.Name {
	case "proportion":
		if p := arg(d, node, d.numberValue); p != nil {
			return Proportion(*p), true
		}
	case "fixed":
		if px := arg(d, node, d.i32Value); px != nil {
			return FixedSize(*px), true
		}
	default:
		d.errorf(node.NameSpan, "unexpected node `%s`, expected `proportion` or `fixed`", node.Name)
	}
	return PresetSize{}, false
}

func decodePresetList(d *decoder, node *document.Node) *[]PresetSize {
	d.onlyChildren(node)

	sizes := []PresetSize{}
	for _, child := range node.Children {
		if s, ok := decodePresetSize(d, child); ok {
			sizes = append(sizes, s)
		}
	}
	return &sizes
}

// DefaultPresetSize is an explicit default size. A nil Size means the client
// picks its own size, written as an empty block `{}`.
type DefaultPresetSize struct {
	Size *PresetSize
}

func decodeDefaultPresetSize(d *decoder, node *document.Node) *DefaultPresetSize {
	d.onlyChildren(node)

	if len(node.Children) == 0 {
		return &DefaultPresetSize{}
	}
	for _, extra := range node.Children[1:] {
		d.errorf(extra.NameSpan, "expected no more than one child")
	}
	s, ok := decodePresetSize(d, node.Children[0])
	if !ok {
		return nil
	}
	return &DefaultPresetSize{Size: &s}
}

type Struts struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

func decodeStruts(d *decoder, node *document.Node) *Struts {
	d.onlyChildren(node)

	s := &Struts{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		var dst *float64
		switch child.Name {
		case "left":
			dst = &s.Left
		case "right":
			dst = &s.Right
		case "top":
			dst = &s.Top
		case "bottom":
			dst = &s.Bottom
		default:
			unexpectedNode(d, child)
			continue
		}
		mergeOpt(dst, arg(d, child, d.floatIn(-65535, 65535)))
	}
	return s
}

type Layout struct {
	FocusRing                BorderStyle         `yaml:"focus_ring"`
	Border                   BorderStyle         `yaml:"border"`
	Shadow                   Shadow              `yaml:"shadow"`
	InsertHint               InsertHint          `yaml:"insert_hint"`
	PresetColumnWidths       []PresetSize        `yaml:"preset_column_widths"`
	DefaultColumnWidth       *PresetSize         `yaml:"default_column_width"`
	PresetWindowHeights      []PresetSize        `yaml:"preset_window_heights"`
	CenterFocusedColumn      CenterFocusedColumn `yaml:"center_focused_column"`
	AlwaysCenterSingleColumn bool                `yaml:"always_center_single_column"`
	EmptyWorkspaceAboveFirst bool                `yaml:"empty_workspace_above_first"`
	Gaps                     float64             `yaml:"gaps"`
	Struts                   Struts              `yaml:"struts"`
	BackgroundColor          Color               `yaml:"background_color"`
}

type LayoutPart struct {
	FocusRing                *BorderRule
	Border                   *BorderRule
	Shadow                   *ShadowRule
	InsertHint               *InsertHintPart
	PresetColumnWidths       *[]PresetSize
	DefaultColumnWidth       *DefaultPresetSize
	PresetWindowHeights      *[]PresetSize
	CenterFocusedColumn      *CenterFocusedColumn
	AlwaysCenterSingleColumn *bool
	EmptyWorkspaceAboveFirst *bool
	Gaps                     *float64
	Struts                   *Struts
	BackgroundColor          *Color
}

func DefaultLayout() Layout {
	half := Proportion(0.5)
	return Layout{
		FocusRing:           DefaultFocusRing(),
		Border:              DefaultBorder(),
		Shadow:              DefaultShadow(),
		InsertHint:          DefaultInsertHint(),
		PresetColumnWidths:  defaultPresets(),
		DefaultColumnWidth:  &half,
		PresetWindowHeights: defaultPresets(),
		CenterFocusedColumn: CenterNever,
		Gaps:                16,
		BackgroundColor:     DefaultBackgroundColor,
	}
}

// MergeWith applies part. A preset list left empty afterwards reverts to
// the built-in presets.
func (l *Layout) MergeWith(part *LayoutPart) {
	if part == nil {
		return
	}
	l.FocusRing.MergeWith(part.FocusRing)
	l.Border.MergeWith(part.Border)
	l.Shadow.MergeWith(part.Shadow)
	l.InsertHint.MergeWith(part.InsertHint)
	mergeFlag(&l.AlwaysCenterSingleColumn, part.AlwaysCenterSingleColumn)
	mergeFlag(&l.EmptyWorkspaceAboveFirst, part.EmptyWorkspaceAboveFirst)
	mergeOpt(&l.Gaps, part.Gaps)

	if part.PresetColumnWidths != nil {
		l.PresetColumnWidths = append([]PresetSize(nil), *part.PresetColumnWidths...)
	}
	if part.PresetWindowHeights != nil {
		l.PresetWindowHeights = append([]PresetSize(nil), *part.PresetWindowHeights...)
	}
	mergeOpt(&l.CenterFocusedColumn, part.CenterFocusedColumn)
	mergeOpt(&l.Struts, part.Struts)
	mergeOpt(&l.BackgroundColor, part.BackgroundColor)

	if part.DefaultColumnWidth != nil {
		l.DefaultColumnWidth = part.DefaultColumnWidth.Size
	}

	if len(l.PresetColumnWidths) == 0 {
		l.PresetColumnWidths = defaultPresets()
	}
	if len(l.PresetWindowHeights) == 0 {
		l.PresetWindowHeights = defaultPresets()
	}
}

func decodeLayoutPart(d *decoder, node *document.Node) *LayoutPart {
	d.onlyChildren(node)

	p := &LayoutPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "focus-ring":
			p.FocusRing = decodeBorderRule(d, child)
		case "border":
			p.Border = decodeBorderRule(d, child)
		case "shadow":
			p.Shadow = decodeShadowRule(d, child)
		case "insert-hint":
			p.InsertHint = decodeInsertHintPart(d, child)
		case "preset-column-widths":
			p.PresetColumnWidths = decodePresetList(d, child)
		case "default-column-width":
			p.DefaultColumnWidth = decodeDefaultPresetSize(d, child)
		case "preset-window-heights":
			p.PresetWindowHeights = decodePresetList(d, child)
		case "center-focused-column":
			p.CenterFocusedColumn = parsedArg(d, child, ParseCenterFocusedColumn)
		case "always-center-single-column":
			p.AlwaysCenterSingleColumn = d.flagPtr(child)
		case "empty-workspace-above-first":
			p.EmptyWorkspaceAboveFirst = d.flagPtr(child)
		case "gaps":
			p.Gaps = arg(d, child, d.floatIn(0, 65535))
		case "struts":
			p.Struts = decodeStruts(d, child)
		case "background-color":
			p.BackgroundColor = decodeColorNode(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}
