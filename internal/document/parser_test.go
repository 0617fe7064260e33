package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeShapes(t *testing.T) {
	src := `
binds {
    Mod+T hotkey-overlay-title="Open a Terminal" { spawn "alacritty"; }
    Mod+Shift+Slash repeat=false cooldown-ms=150 { show-hotkey-overlay; }
}
layout { gaps 16; }
(tag)output "eDP-1" scale=1.5
`
	doc, err := Parse("config.kdl", []byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 3)

	binds := doc.Nodes[0]
	assert.Equal(t, "binds", binds.Name)
	require.True(t, binds.HasChildren)
	require.Len(t, binds.Children, 2)

	first := binds.Children[0]
	assert.Equal(t, "Mod+T", first.Name)
	require.Len(t, first.Props, 1)
	assert.Equal(t, "hotkey-overlay-title", first.Props[0].Name)
	assert.Equal(t, "Open a Terminal", first.Props[0].Value.Str)
	require.Len(t, first.Children, 1)
	assert.Equal(t, "spawn", first.Children[0].Name)
	assert.Equal(t, "alacritty", first.Children[0].Args[0].Str)

	second := binds.Children[1]
	assert.Equal(t, "Mod+Shift+Slash", second.Name)
	repeat, ok := second.Prop("repeat")
	require.True(t, ok)
	assert.Equal(t, KindBool, repeat.Value.Kind)
	assert.False(t, repeat.Value.Bool)
	cooldown, _ := second.Prop("cooldown-ms")
	assert.Equal(t, int64(150), cooldown.Value.Int)

	gaps := doc.Nodes[1].Children[0]
	assert.Equal(t, KindInt, gaps.Args[0].Kind)
	assert.Equal(t, int64(16), gaps.Args[0].Int)

	output := doc.Nodes[2]
	assert.True(t, output.HasType)
	assert.Equal(t, "tag", output.Type)
	assert.Equal(t, "output", output.Name)
	scale, _ := output.Prop("scale")
	assert.Equal(t, KindFloat, scale.Value.Kind)
	assert.InDelta(t, 1.5, scale.Value.Float, 1e-9)
}

func TestParseSpans(t *testing.T) {
	doc, err := Parse("a.kdl", []byte("one\n  two 1\n"))
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, Span{Offset: 0, Line: 1, Col: 1}, doc.Nodes[0].NameSpan)
	assert.Equal(t, Span{Offset: 6, Line: 2, Col: 3}, doc.Nodes[1].NameSpan)
	assert.Equal(t, 2, doc.Nodes[1].Args[0].Span.Line)
	assert.Equal(t, 7, doc.Nodes[1].Args[0].Span.Col)
}

func TestParseComments(t *testing.T) {
	src := `
// line comment
a /* inline */ 1
/* block
   /* nested */
*/
/-b 2
c 3 /-4 5
d /-{ ignored }
e \
  6
`
	doc, err := Parse("", []byte(src))
	require.NoError(t, err)

	var names []string
	for _, n := range doc.Nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"a", "c", "d", "e"}, names)

	c := doc.Nodes[1]
	require.Len(t, c.Args, 2)
	assert.Equal(t, int64(3), c.Args[0].Int)
	assert.Equal(t, int64(5), c.Args[1].Int)
	assert.False(t, doc.Nodes[2].HasChildren)
	require.Len(t, doc.Nodes[3].Args, 1)
	assert.Equal(t, int64(6), doc.Nodes[3].Args[0].Int)
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, v Value)
	}{
		{"escapes", `n "a\tb\n\"q\" \u{1F600}"`, func(t *testing.T, v Value) {
			assert.Equal(t, "a\tb\n\"q\" \U0001F600", v.Str)
		}},
		{"raw string", `n r#"C:\path "quoted""#`, func(t *testing.T, v Value) {
			assert.Equal(t, `C:\path "quoted"`, v.Str)
		}},
		{"plain raw string", `n r"\d+"`, func(t *testing.T, v Value) {
			assert.Equal(t, `\d+`, v.Str)
		}},
		{"hex", `n 0xff_ff`, func(t *testing.T, v Value) {
			assert.Equal(t, int64(0xffff), v.Int)
		}},
		{"octal", `n 0o17`, func(t *testing.T, v Value) {
			assert.Equal(t, int64(15), v.Int)
		}},
		{"binary", `n 0b101`, func(t *testing.T, v Value) {
			assert.Equal(t, int64(5), v.Int)
		}},
		{"leading zero decimal", `n 010`, func(t *testing.T, v Value) {
			assert.Equal(t, int64(10), v.Int)
		}},
		{"negative", `n -12`, func(t *testing.T, v Value) {
			assert.Equal(t, int64(-12), v.Int)
		}},
		{"underscores", `n 1_000`, func(t *testing.T, v Value) {
			assert.Equal(t, int64(1000), v.Int)
		}},
		{"above int64", `n 18446744073709551615`, func(t *testing.T, v Value) {
			assert.Equal(t, KindInt, v.Kind)
			assert.True(t, v.Overflow)
			n, ok := v.Uint64()
			require.True(t, ok)
			assert.Equal(t, uint64(18446744073709551615), n)
		}},
		{"hex above int64", `n 0xffff_ffff_ffff_ffff`, func(t *testing.T, v Value) {
			n, ok := v.Uint64()
			require.True(t, ok)
			assert.Equal(t, uint64(0xffffffffffffffff), n)
		}},
		{"above uint64", `n 99999999999999999999`, func(t *testing.T, v Value) {
			assert.True(t, v.Overflow)
			_, ok := v.Uint64()
			assert.False(t, ok)
			f, ok := v.Number()
			require.True(t, ok)
			assert.InDelta(t, 1e20, f, 1e6)
		}},
		{"below int64", `n -99999999999999999999`, func(t *testing.T, v Value) {
			assert.True(t, v.Overflow)
			_, ok := v.Uint64()
			assert.False(t, ok)
		}},
		{"negative is not unsigned", `n -1`, func(t *testing.T, v Value) {
			_, ok := v.Uint64()
			assert.False(t, ok)
		}},
		{"exponent", `n 1.5e2`, func(t *testing.T, v Value) {
			assert.Equal(t, KindFloat, v.Kind)
			assert.InDelta(t, 150.0, v.Float, 1e-9)
		}},
		{"keyword true", `n #true`, func(t *testing.T, v Value) {
			assert.Equal(t, KindBool, v.Kind)
			assert.True(t, v.Bool)
		}},
		{"bare false", `n false`, func(t *testing.T, v Value) {
			assert.Equal(t, KindBool, v.Kind)
			assert.False(t, v.Bool)
		}},
		{"null", `n null`, func(t *testing.T, v Value) {
			assert.Equal(t, KindNull, v.Kind)
		}},
		{"typed value", `n (u8)5`, func(t *testing.T, v Value) {
			assert.True(t, v.HasType)
			assert.Equal(t, "u8", v.Type)
			assert.Equal(t, int64(5), v.Int)
		}},
		{"bare identifier", `n next`, func(t *testing.T, v Value) {
			assert.Equal(t, KindString, v.Kind)
			assert.Equal(t, "next", v.Str)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse("", []byte(tt.src))
			require.NoError(t, err)
			require.Len(t, doc.Nodes, 1)
			require.Len(t, doc.Nodes[0].Args, 1)
			tt.check(t, doc.Nodes[0].Args[0])
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unclosed children", "a {\n b\n", "expected '}'"},
		{"stray brace", "a\n}\n", "unexpected '}'"},
		{"unterminated string", `a "abc`, "unterminated string"},
		{"unterminated comment", "a /* b", "unterminated block comment"},
		{"bad escape", `a "\q"`, "invalid escape"},
		{"bad number", "a 12abc", "invalid number"},
		{"number name", "12 a", "expected node name"},
		{"args after children", "a {} b", "after children block"},
		{"unknown keyword", "a #maybe", "unknown keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.kdl", []byte(tt.src))
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "bad.kdl:")
		})
	}
}
