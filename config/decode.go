package config

import (
	"fmt"
	"math"
	"strings"

	diag "github.com/inference-gateway/tilecfg/internal/diag"
	document "github.com/inference-gateway/tilecfg/internal/document"
)

// decoder wraps the diagnostic collector with the structural checks shared
// by every section. Helpers report problems and return ok=false; callers
// skip the offending field and carry on.
type decoder struct {
	diags *diag.Collector
}

func (d *decoder) errorf(span document.Span, format string, args ...any) {
	d.diags.Errorf(span, format, args...)
}

func (d *decoder) noType(node *document.Node) {
	if node.HasType {
		d.errorf(node.TypeSpan, "no type name expected for this node")
	}
}

func (d *decoder) noArgs(node *document.Node) {
	for _, arg := range node.Args {
		d.errorf(arg.Span, "no arguments expected for this node")
	}
}

func (d *decoder) noProps(node *document.Node) {
	for _, prop := range node.Props {
		d.errorf(prop.NameSpan, "unexpected property `%s`", prop.Name)
	}
}

func (d *decoder) noChildren(node *document.Node) {
	for _, child := range node.Children {
		d.errorf(child.NameSpan, "unexpected node `%s`", child.Name)
	}
}

// onlyChildren validates a pure container node such as `layout { ... }`
func (d *decoder) onlyChildren(node *document.Node) {
	d.noType(node)
	d.noArgs(node)
	d.noProps(node)
}

// presence validates a flag-like node whose existence is the value
func (d *decoder) presence(node *document.Node) bool {
	d.noType(node)
	d.noArgs(node)
	d.noProps(node)
	d.noChildren(node)
	return true
}

// flag decodes a node that may carry an optional boolean argument:
// `numlock` and `numlock true` both turn it on, `numlock false` does not.
func (d *decoder) flag(node *document.Node) (bool, bool) {
	d.noType(node)
	d.noProps(node)
	d.noChildren(node)
	switch len(node.Args) {
	case 0:
		return true, true
	case 1:
		return d.boolValue(node.Args[0])
	default:
		for _, extra := range node.Args[1:] {
			d.errorf(extra.Span, "unexpected argument")
		}
		return d.boolValue(node.Args[0])
	}
}

// singleArg returns the only argument of node. The node must not carry
// properties or children.
func (d *decoder) singleArg(node *document.Node) (document.Value, bool) {
	d.noType(node)
	d.noProps(node)
	d.noChildren(node)
	if len(node.Args) == 0 {
		d.errorf(node.NameSpan, "additional argument is required")
		return document.Value{}, false
	}
	for _, extra := range node.Args[1:] {
		d.errorf(extra.Span, "unexpected argument")
	}
	return node.Args[0], true
}

func (d *decoder) valueType(v document.Value) {
	if v.HasType {
		d.errorf(v.TypeSpan, "no type name expected for this value")
	}
}

func (d *decoder) boolValue(v document.Value) (bool, bool) {
	d.valueType(v)
	if v.Kind != document.KindBool {
		d.errorf(v.Span, "expected boolean, found %s", v.Kind)
		return false, false
	}
	return v.Bool, true
}

func (d *decoder) stringValue(v document.Value) (string, bool) {
	d.valueType(v)
	if v.Kind != document.KindString {
		d.errorf(v.Span, "expected string, found %s", v.Kind)
		return "", false
	}
	return v.Str, true
}

// optStringValue accepts a string or null
func (d *decoder) optStringValue(v document.Value) (*string, bool) {
	if v.Kind == document.KindNull {
		d.valueType(v)
		return nil, true
	}
	s, ok := d.stringValue(v)
	if !ok {
		return nil, false
	}
	return &s, true
}

func (d *decoder) intValue(v document.Value, typeName string, min, max int64) (int64, bool) {
	d.valueType(v)
	if v.Kind != document.KindInt {
		d.errorf(v.Span, "expected integer, found %s", v.Kind)
		return 0, false
	}
	if v.Overflow {
		d.errorf(v.Span, "value %s does not fit into %s", v.Raw, typeName)
		return 0, false
	}
	if v.Int < min || v.Int > max {
		d.errorf(v.Span, "value %d does not fit into %s", v.Int, typeName)
		return 0, false
	}
	return v.Int, true
}

func (d *decoder) u8Value(v document.Value) (uint8, bool) {
	n, ok := d.intValue(v, "u8", 0, math.MaxUint8)
	return uint8(n), ok
}

func (d *decoder) u16Value(v document.Value) (uint16, bool) {
	n, ok := d.intValue(v, "u16", 0, math.MaxUint16)
	return uint16(n), ok
}

func (d *decoder) u32Value(v document.Value) (uint32, bool) {
	n, ok := d.intValue(v, "u32", 0, math.MaxUint32)
	return uint32(n), ok
}

func (d *decoder) u64Value(v document.Value) (uint64, bool) {
	d.valueType(v)
	if v.Kind != document.KindInt {
		d.errorf(v.Span, "expected integer, found %s", v.Kind)
		return 0, false
	}
	n, ok := v.Uint64()
	if !ok {
		d.errorf(v.Span, "value %s does not fit into u64", v.Raw)
		return 0, false
	}
	return n, true
}

func (d *decoder) i32Value(v document.Value) (int32, bool) {
	n, ok := d.intValue(v, "i32", math.MinInt32, math.MaxInt32)
	return int32(n), ok
}

func (d *decoder) usizeValue(v document.Value) (int, bool) {
	n, ok := d.intValue(v, "usize", 0, math.MaxInt32)
	return int(n), ok
}

// floatOrInt accepts either numeric literal and rejects values outside
// [min, max] instead of clamping them.
func (d *decoder) floatOrInt(v document.Value, min, max float64) (float64, bool) {
	d.valueType(v)
	f, ok := v.Number()
	if !ok {
		d.errorf(v.Span, "expected number, found %s", v.Kind)
		return 0, false
	}
	if f < min || f > max {
		d.errorf(v.Span, "value must be between %s and %s", formatBound(min), formatBound(max))
		return 0, false
	}
	return f, true
}

func formatBound(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// parsed runs a string parser on a value and reports its error at the
// value's span.
func parsed[T any](d *decoder, v document.Value, parse func(string) (T, error)) (T, bool) {
	var zero T
	s, ok := d.stringValue(v)
	if !ok {
		return zero, false
	}
	out, err := parse(s)
	if err != nil {
		d.errorf(v.Span, "%v", err)
		return zero, false
	}
	return out, true
}

// setOnce reports repeated child nodes within one section. It returns false
// for every occurrence after the first.
type setOnce map[string]bool

func (s setOnce) first(d *decoder, node *document.Node) bool {
	if s[node.Name] {
		d.errorf(node.NameSpan, "duplicate node `%s`, single node expected", node.Name)
		return false
	}
	s[node.Name] = true
	return true
}

func unexpectedNode(d *decoder, node *document.Node) {
	d.errorf(node.NameSpan, "unexpected node `%s`", node.Name)
}

func quoteAll(names ...string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// Helpers shared by the optional fields of Part types.

func ptr[T any](v T) *T {
	return &v
}

func mergeOpt[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// mergePtr keeps an optional field of the full value optional
func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// mergeFlag ORs an explicitly enabled flag into dst. A part never clears a
// flag; flags are reset only by rebuilding the full config.
func mergeFlag(dst *bool, src *bool) {
	if src != nil && *src {
		*dst = true
	}
}

// arg decodes the value of a `name value` child node
func arg[T any](d *decoder, node *document.Node, conv func(document.Value) (T, bool)) *T {
	v, ok := d.singleArg(node)
	if !ok {
		return nil
	}
	out, ok := conv(v)
	if !ok {
		return nil
	}
	return &out
}

func (d *decoder) flagPtr(node *document.Node) *bool {
	v, ok := d.flag(node)
	if !ok {
		return nil
	}
	return &v
}

func (d *decoder) floatIn(min, max float64) func(document.Value) (float64, bool) {
	return func(v document.Value) (float64, bool) {
		return d.floatOrInt(v, min, max)
	}
}

func (d *decoder) colorValue(v document.Value) (Color, bool) {
	return parsed(d, v, ParseColor)
}

// optBool decodes an optional boolean property
func (d *decoder) optBool(prop document.Property) *bool {
	v, ok := d.boolValue(prop.Value)
	if !ok {
		return nil
	}
	return &v
}

// parsedArg decodes a `name "value"` child through a string parser
func parsedArg[T any](d *decoder, node *document.Node, parse func(string) (T, error)) *T {
	return arg(d, node, func(v document.Value) (T, bool) {
		return parsed(d, v, parse)
	})
}

// numberValue accepts any numeric literal without a range check
func (d *decoder) numberValue(v document.Value) (float64, bool) {
	d.valueType(v)
	f, ok := v.Number()
	if !ok {
		d.errorf(v.Span, "expected number, found %s", v.Kind)
	}
	return f, ok
}
