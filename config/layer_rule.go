package config

import (
	document "github.com/inference-gateway/tilecfg/internal/document"
)

type LayerMatch struct {
	Namespace *RegexEq `yaml:"namespace,omitempty"`
	AtStartup *bool    `yaml:"at_startup,omitempty"`
}

func (m LayerMatch) Equal(o LayerMatch) bool {
	return regexEqual(m.Namespace, o.Namespace) && boolPtrEqual(m.AtStartup, o.AtStartup)
}

func decodeLayerMatch(d *decoder, node *document.Node) LayerMatch {
	d.noType(node)
	d.noArgs(node)
	d.noChildren(node)

	var m LayerMatch
	for _, prop := range node.Props {
		switch prop.Name {
		case "namespace":
			m.Namespace = regexProp(d, prop)
		case "at-startup":
			m.AtStartup = d.optBool(prop)
		default:
			d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
		}
	}
	return m
}

// LayerRule overrides the look of layer-shell surfaces such as panels and
// notifications
type LayerRule struct {
	Matches  []LayerMatch `yaml:"matches,omitempty"`
	Excludes []LayerMatch `yaml:"excludes,omitempty"`

	Opacity              *float64      `yaml:"opacity,omitempty"`
	BlockOutFrom         *BlockOutFrom `yaml:"block_out_from,omitempty"`
	Shadow               ShadowRule    `yaml:"shadow,omitempty"`
	GeometryCornerRadius *CornerRadius `yaml:"geometry_corner_radius,omitempty"`
	PlaceWithinBackdrop  *bool         `yaml:"place_within_backdrop,omitempty"`
	BabaIsFloat          *bool         `yaml:"baba_is_float,omitempty"`
}

func decodeLayerRule(d *decoder, node *document.Node) LayerRule {
	d.onlyChildren(node)

	var r LayerRule
	once := setOnce{}
	for _, child := range node.Children {
		switch child.Name {
		case "match":
			r.Matches = append(r.Matches, decodeLayerMatch(d, child))
			continue
		case "exclude":
			r.Excludes = append(r.Excludes, decodeLayerMatch(d, child))
			continue
		}
		if !once.first(d, child) {
			continue
		}
		switch child.Name {
		case "opacity":
			r.Opacity = arg(d, child, d.numberValue)
		case "block-out-from":
			r.BlockOutFrom = parsedArg(d, child, ParseBlockOutFrom)
		case "shadow":
			mergeOpt(&r.Shadow, decodeShadowRule(d, child))
		case "geometry-corner-radius":
			r.GeometryCornerRadius = decodeCornerRadius(d, child)
		case "place-within-backdrop":
			r.PlaceWithinBackdrop = arg(d, child, d.boolValue)
		case "baba-is-float":
			r.BabaIsFloat = arg(d, child, d.boolValue)
		default:
			unexpectedNode(d, child)
		}
	}
	return r
}
