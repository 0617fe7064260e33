package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer turns a config document into tokens. Comments and line
// continuations are consumed here and never reach the parser.
type Lexer struct {
	input []byte
	pos   int
	line  int
	col   int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// NextToken returns the next token in the stream
func (l *Lexer) NextToken() Token {
	if tok, ok := l.skipTrivia(); !ok {
		return tok
	}

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Span: l.span()}
	}

	start := l.span()
	ch := l.peek()

	switch ch {
	case '\n':
		l.advance()
		return Token{Type: TokenNewline, Literal: "\n", Span: start}
	case ';':
		l.advance()
		return Token{Type: TokenSemicolon, Literal: ";", Span: start}
	case '{':
		l.advance()
		return Token{Type: TokenLBrace, Literal: "{", Span: start}
	case '}':
		l.advance()
		return Token{Type: TokenRBrace, Literal: "}", Span: start}
	case '(':
		l.advance()
		return Token{Type: TokenLParen, Literal: "(", Span: start}
	case ')':
		l.advance()
		return Token{Type: TokenRParen, Literal: ")", Span: start}
	case '=':
		l.advance()
		return Token{Type: TokenEquals, Literal: "=", Span: start}
	case '"':
		return l.readString(start)
	case '#':
		return l.readHash(start)
	}

	if ch == '/' && l.peekAt(1) == '-' {
		l.advance()
		l.advance()
		return Token{Type: TokenSlashdash, Literal: "/-", Span: start}
	}

	if ch == 'r' && (l.peekAt(1) == '"' || (l.peekAt(1) == '#' && l.rawStringAhead(1))) {
		l.advance()
		return l.readRawString(start)
	}

	if isDigit(ch) || ((ch == '+' || ch == '-') && isDigit(l.peekAt(1))) {
		return l.readBare(start, TokenNumber)
	}

	if isIdentChar(ch) {
		return l.readBare(start, TokenIdent)
	}

	l.advance()
	return l.errorf(start, "unexpected character %q", ch)
}

func (l *Lexer) span() Span {
	return Span{Offset: l.pos, Line: l.line, Col: l.col}
}

func (l *Lexer) errorf(at Span, format string, args ...any) Token {
	return Token{Type: TokenError, Literal: fmt.Sprintf(format, args...), Span: at}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, w := utf8.DecodeRune(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt looks n runes ahead without consuming anything
func (l *Lexer) peekAt(n int) rune {
	pos := l.pos
	for i := 0; ; i++ {
		if pos >= len(l.input) {
			return 0
		}
		r, w := utf8.DecodeRune(l.input[pos:])
		if i == n {
			return r
		}
		pos += w
	}
}

// skipTrivia consumes whitespace, comments and line continuations. It
// returns false with an error token when a block comment is unterminated.
func (l *Lexer) skipTrivia() (Token, bool) {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == '\n':
			return Token{}, true
		case ch == '\uFEFF' || (ch != '\n' && unicode.IsSpace(ch)):
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case ch == '/' && l.peekAt(1) == '*':
			start := l.span()
			if !l.skipBlockComment() {
				return l.errorf(start, "unterminated block comment"), false
			}
		case ch == '\\':
			start := l.span()
			if !l.skipContinuation() {
				return l.errorf(start, "expected newline after line continuation"), false
			}
		default:
			return Token{}, true
		}
	}
	return Token{}, true
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() bool {
	l.advance()
	l.advance()
	depth := 1
	for l.pos < len(l.input) {
		switch {
		case l.peek() == '/' && l.peekAt(1) == '*':
			l.advance()
			l.advance()
			depth++
		case l.peek() == '*' && l.peekAt(1) == '/':
			l.advance()
			l.advance()
			depth--
			if depth == 0 {
				return true
			}
		default:
			l.advance()
		}
	}
	return false
}

func (l *Lexer) skipContinuation() bool {
	l.advance()
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == '\n':
			l.advance()
			return true
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		default:
			return false
		}
	}
	return true
}

func (l *Lexer) readString(start Span) Token {
	l.advance()
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.advance()
		switch ch {
		case '"':
			return Token{Type: TokenString, Literal: sb.String(), Span: start}
		case '\\':
			if err := l.readEscape(&sb); err != "" {
				return l.errorf(start, "%s", err)
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return l.errorf(start, "unterminated string")
}

func (l *Lexer) readEscape(sb *strings.Builder) string {
	if l.pos >= len(l.input) {
		return "unterminated escape sequence"
	}
	ch := l.advance()
	switch ch {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 's':
		sb.WriteByte(' ')
	case '\\', '"', '/':
		sb.WriteRune(ch)
	case 'u':
		if l.peek() != '{' {
			return "expected '{' after \\u"
		}
		l.advance()
		var hex strings.Builder
		for l.pos < len(l.input) && l.peek() != '}' {
			hex.WriteRune(l.advance())
		}
		if l.pos >= len(l.input) {
			return "unterminated unicode escape"
		}
		l.advance()
		n, err := strconv.ParseUint(hex.String(), 16, 32)
		if err != nil || hex.Len() == 0 || hex.Len() > 6 || !utf8.ValidRune(rune(n)) {
			return fmt.Sprintf("invalid unicode escape \\u{%s}", hex.String())
		}
		sb.WriteRune(rune(n))
	default:
		if unicode.IsSpace(ch) {
			for l.pos < len(l.input) && unicode.IsSpace(l.peek()) {
				l.advance()
			}
			return ""
		}
		return fmt.Sprintf("invalid escape sequence \\%c", ch)
	}
	return ""
}

// rawStringAhead reports whether the runes from offset n are a run of '#'
// followed by a quote.
func (l *Lexer) rawStringAhead(n int) bool {
	for {
		switch l.peekAt(n) {
		case '#':
			n++
		case '"':
			return true
		default:
			return false
		}
	}
}

func (l *Lexer) readRawString(start Span) Token {
	hashes := 0
	for l.peek() == '#' {
		l.advance()
		hashes++
	}
	if l.peek() != '"' {
		return l.errorf(start, "expected '\"' in raw string")
	}
	l.advance()

	closing := "\"" + strings.Repeat("#", hashes)
	begin := l.pos
	for l.pos < len(l.input) {
		if bytes.HasPrefix(l.input[l.pos:], []byte(closing)) {
			lit := string(l.input[begin:l.pos])
			for range closing {
				l.advance()
			}
			return Token{Type: TokenString, Literal: lit, Span: start}
		}
		l.advance()
	}
	return l.errorf(start, "unterminated raw string")
}

func (l *Lexer) readHash(start Span) Token {
	if l.rawStringAhead(0) {
		return l.readRawString(start)
	}
	l.advance()
	begin := l.pos
	for l.pos < len(l.input) && isIdentChar(l.peek()) {
		l.advance()
	}
	word := string(l.input[begin:l.pos])
	switch word {
	case "true", "false", "null":
		return Token{Type: TokenKeyword, Literal: word, Span: start}
	}
	return l.errorf(start, "unknown keyword #%s", word)
}

func (l *Lexer) readBare(start Span, typ TokenType) Token {
	begin := l.pos
	for l.pos < len(l.input) && isIdentChar(l.peek()) {
		l.advance()
	}
	return Token{Type: typ, Literal: string(l.input[begin:l.pos]), Span: start}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentChar(r rune) bool {
	if r == 0 || unicode.IsSpace(r) {
		return false
	}
	return !strings.ContainsRune(`\/(){}<>;[]=,"#`, r)
}
