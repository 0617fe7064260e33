package document

import "fmt"

// TokenType identifies the lexical class of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenError
	TokenNewline
	TokenSemicolon
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenEquals
	TokenSlashdash
	TokenIdent
	TokenString
	TokenNumber
	TokenKeyword
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "end of input",
	TokenError:     "error",
	TokenNewline:   "newline",
	TokenSemicolon: "';'",
	TokenLBrace:    "'{'",
	TokenRBrace:    "'}'",
	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenEquals:    "'='",
	TokenSlashdash: "'/-'",
	TokenIdent:     "identifier",
	TokenString:    "string",
	TokenNumber:    "number",
	TokenKeyword:   "keyword",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Span locates a token or node in the source document
type Span struct {
	Offset int `yaml:"offset"`
	Line   int `yaml:"line"`
	Col    int `yaml:"col"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Token is a single lexeme. For strings Literal holds the unescaped value,
// for keywords it holds the name without the leading '#'.
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}
