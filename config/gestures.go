package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
)

type Gestures struct {
	DndEdgeViewScroll      DndEdge    `yaml:"dnd_edge_view_scroll"`
	DndEdgeWorkspaceSwitch DndEdge    `yaml:"dnd_edge_workspace_switch"`
	HotCorners             HotCorners `yaml:"hot_corners"`
}

type GesturesPart struct {
	DndEdgeViewScroll      *DndEdgePart
	DndEdgeWorkspaceSwitch *DndEdgePart
	HotCorners             *HotCorners
}

// DndEdge scrolls the view or switches workspaces while a drag hovers near
// a screen edge. Trigger is the width of the edge zone for view scrolling
// and its height for workspace switching.
type DndEdge struct {
	Trigger  float64 `yaml:"trigger"`
	DelayMs  uint16  `yaml:"delay_ms"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type DndEdgePart struct {
	Trigger  *float64
	DelayMs  *uint16
	MaxSpeed *float64
}

type HotCorners struct {
	Off         bool `yaml:"off"`
	TopLeft     bool `yaml:"top_left"`
	TopRight    bool `yaml:"top_right"`
	BottomLeft  bool `yaml:"bottom_left"`
	BottomRight bool `yaml:"bottom_right"`
}

func DefaultGestures() Gestures {
	return Gestures{
		DndEdgeViewScroll:      DndEdge{Trigger: 30, DelayMs: 100, MaxSpeed: 1500},
		DndEdgeWorkspaceSwitch: DndEdge{Trigger: 50, DelayMs: 100, MaxSpeed: 1500},
	}
}

func (g *Gestures) MergeWith(part *GesturesPart) {
	if part == nil {
		return
	}
	g.DndEdgeViewScroll.MergeWith(part.DndEdgeViewScroll)
	g.DndEdgeWorkspaceSwitch.MergeWith(part.DndEdgeWorkspaceSwitch)
	mergeOpt(&g.HotCorners, part.HotCorners)
}

func (e *DndEdge) MergeWith(part *DndEdgePart) {
	if part == nil {
		return
	}
	mergeOpt(&e.Trigger, part.Trigger)
	mergeOpt(&e.DelayMs, part.DelayMs)
	mergeOpt(&e.MaxSpeed, part.MaxSpeed)
}

func decodeGesturesPart(d *decoder, node *document.Node) *GesturesPart {
	d.onlyChildren(node)

	p := &GesturesPart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "dnd-edge-view-scroll":
			p.DndEdgeViewScroll = decodeDndEdgePart(d, child, "trigger-width")
		case "dnd-edge-workspace-switch":
			p.DndEdgeWorkspaceSwitch = decodeDndEdgePart(d, child, "trigger-height")
		case "hot-corners":
			p.HotCorners = decodeHotCorners(d, child)
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

func decodeDndEdgePart(d *decoder, node *document.Node, trigger string) *DndEdgePart {
	d.onlyChildren(node)

	p := &DndEdgePart{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case trigger:
			p.Trigger = arg(d, child, d.floatIn(0, 65535))
		case "delay-ms":
			p.DelayMs = arg(d, child, d.u16Value)
		case "max-speed":
			p.MaxSpeed = arg(d, child, d.floatIn(0, 1_000_000))
		default:
			unexpectedNode(d, child)
		}
	}
	return p
}

func decodeHotCorners(d *decoder, node *document.Node) *HotCorners {
	d.onlyChildren(node)

	h := &HotCorners{}
	once := setOnce{}
	for _, child := range node.Children {
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "off":
			h.Off = d.presence(child)
		case "top-left":
			h.TopLeft = d.presence(child)
		case "top-right":
			h.TopRight = d.presence(child)
		case "bottom-left":
			h.BottomLeft = d.presence(child)
		case "bottom-right":
			h.BottomRight = d.presence(child)
		default:
			unexpectedNode(d, child)
		}
	}
	return h
}
