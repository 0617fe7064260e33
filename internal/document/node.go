package document

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ValueKind is the literal class of a Value
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindNull
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Value is a literal argument or property value
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	// Raw is the source text for numbers, used in diagnostics.
	Raw string
	// Overflow marks an integer literal outside int64. Int is zero and the
	// value is only reachable through Raw, Uint64 and Number.
	Overflow bool

	Type     string
	HasType  bool
	TypeSpan Span
	Span     Span
}

func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.Str)
	case KindInt, KindFloat:
		return v.Raw
	case KindBool:
		return strconv.FormatBool(v.Bool)
	}
	return "null"
}

// Number returns the value as a float for either numeric kind
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		if v.Overflow {
			n, ok := v.bigInt()
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

// Uint64 returns a non-negative integer literal, including ones above
// MaxInt64
func (v Value) Uint64() (uint64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	if !v.Overflow {
		return uint64(v.Int), v.Int >= 0
	}
	n, ok := v.bigInt()
	if !ok || !n.IsUint64() {
		return 0, false
	}
	return n.Uint64(), true
}

func (v Value) bigInt() (*big.Int, bool) {
	raw := strings.TrimPrefix(v.Raw, "+")
	base := 0
	if !isRadixLiteral(raw) {
		raw, base = strings.ReplaceAll(raw, "_", ""), 10
	}
	return new(big.Int).SetString(raw, base)
}

// Property is a key=value pair on a node, kept in document order
type Property struct {
	Name     string
	NameSpan Span
	Value    Value
}

// Node is one entry of the document tree
type Node struct {
	Name     string
	NameSpan Span

	Type     string
	HasType  bool
	TypeSpan Span

	Args     []Value
	Props    []Property
	Children []*Node
	// HasChildren distinguishes `node {}` from `node`.
	HasChildren bool

	Span Span
}

// Prop returns the last property with the given name
func (n *Node) Prop(name string) (Property, bool) {
	for i := len(n.Props) - 1; i >= 0; i-- {
		if n.Props[i].Name == name {
			return n.Props[i], true
		}
	}
	return Property{}, false
}

// Document is a parsed config file
type Document struct {
	Filename string
	Nodes    []*Node
}

// SyntaxError reports malformed document structure. It is always fatal.
type SyntaxError struct {
	Filename string
	Span     Span
	Msg      string
}

func (e *SyntaxError) Error() string {
	name := e.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", name, e.Span.Line, e.Span.Col, e.Msg)
}
