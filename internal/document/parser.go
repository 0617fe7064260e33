package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parser builds a Document from the token stream
type Parser struct {
	l        *Lexer
	filename string

	curToken  Token
	peekToken Token
}

// Parse parses a whole document. Any syntax problem aborts with a
// *SyntaxError; nothing is decoded from a malformed document.
func Parse(filename string, src []byte) (*Document, error) {
	p := NewParser(filename, src)
	nodes, err := p.parseNodes(false)
	if err != nil {
		return nil, err
	}
	return &Document{Filename: filename, Nodes: nodes}, nil
}

func NewParser(filename string, src []byte) *Parser {
	p := &Parser{l: NewLexer(src), filename: filename}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) errorf(at Span, format string, args ...any) error {
	return &SyntaxError{Filename: p.filename, Span: at, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) check() error {
	if p.curToken.Type == TokenError {
		return p.errorf(p.curToken.Span, "%s", p.curToken.Literal)
	}
	return nil
}

func (p *Parser) skipTerminators() {
	for p.curToken.Type == TokenNewline || p.curToken.Type == TokenSemicolon {
		p.nextToken()
	}
}

func (p *Parser) parseNodes(nested bool) ([]*Node, error) {
	var nodes []*Node
	for {
		p.skipTerminators()
		if err := p.check(); err != nil {
			return nil, err
		}

		switch p.curToken.Type {
		case TokenEOF:
			if nested {
				return nil, p.errorf(p.curToken.Span, "unexpected end of input, expected '}'")
			}
			return nodes, nil
		case TokenRBrace:
			if !nested {
				return nil, p.errorf(p.curToken.Span, "unexpected '}'")
			}
			p.nextToken()
			return nodes, nil
		case TokenSlashdash:
			p.nextToken()
			p.skipNewlines()
			if _, err := p.parseNode(); err != nil {
				return nil, err
			}
		default:
			node, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
	}
}

func (p *Parser) skipNewlines() {
	for p.curToken.Type == TokenNewline {
		p.nextToken()
	}
}

func (p *Parser) parseTypeAnnotation() (string, Span, error) {
	start := p.curToken.Span
	p.nextToken()
	if err := p.check(); err != nil {
		return "", start, err
	}
	if p.curToken.Type != TokenIdent && p.curToken.Type != TokenString {
		return "", start, p.errorf(p.curToken.Span, "expected type name, found %s", p.curToken.Type)
	}
	name := p.curToken.Literal
	p.nextToken()
	if p.curToken.Type != TokenRParen {
		return "", start, p.errorf(p.curToken.Span, "expected ')', found %s", p.curToken.Type)
	}
	p.nextToken()
	return name, start, nil
}

func (p *Parser) parseNode() (*Node, error) {
	node := &Node{Span: p.curToken.Span}

	if p.curToken.Type == TokenLParen {
		name, span, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		node.Type, node.TypeSpan, node.HasType = name, span, true
	}

	if err := p.check(); err != nil {
		return nil, err
	}
	switch p.curToken.Type {
	case TokenIdent, TokenString:
		node.Name = p.curToken.Literal
		node.NameSpan = p.curToken.Span
	default:
		return nil, p.errorf(p.curToken.Span, "expected node name, found %s", p.curToken.Type)
	}
	p.nextToken()

	for {
		if err := p.check(); err != nil {
			return nil, err
		}

		switch p.curToken.Type {
		case TokenNewline, TokenSemicolon:
			p.nextToken()
			return node, nil
		case TokenEOF, TokenRBrace:
			return node, nil
		case TokenLBrace:
			if node.HasChildren {
				return nil, p.errorf(p.curToken.Span, "node already has a children block")
			}
			p.nextToken()
			children, err := p.parseNodes(true)
			if err != nil {
				return nil, err
			}
			node.Children = children
			node.HasChildren = true
		case TokenSlashdash:
			p.nextToken()
			if p.curToken.Type == TokenLBrace {
				p.nextToken()
				if _, err := p.parseNodes(true); err != nil {
					return nil, err
				}
				continue
			}
			if err := p.parseEntry(&Node{}); err != nil {
				return nil, err
			}
		default:
			if node.HasChildren {
				return nil, p.errorf(p.curToken.Span, "unexpected %s after children block", p.curToken.Type)
			}
			if err := p.parseEntry(node); err != nil {
				return nil, err
			}
		}
	}
}

// parseEntry reads one argument or property into node
func (p *Parser) parseEntry(node *Node) error {
	if (p.curToken.Type == TokenIdent || p.curToken.Type == TokenString) && p.peekToken.Type == TokenEquals {
		prop := Property{Name: p.curToken.Literal, NameSpan: p.curToken.Span}
		p.nextToken()
		p.nextToken()
		val, err := p.parseValue()
		if err != nil {
			return err
		}
		prop.Value = val
		node.Props = append(node.Props, prop)
		return nil
	}

	val, err := p.parseValue()
	if err != nil {
		return err
	}
	node.Args = append(node.Args, val)
	return nil
}

func (p *Parser) parseValue() (Value, error) {
	var val Value
	if p.curToken.Type == TokenLParen {
		name, span, err := p.parseTypeAnnotation()
		if err != nil {
			return val, err
		}
		val.Type, val.TypeSpan, val.HasType = name, span, true
	}
	if err := p.check(); err != nil {
		return val, err
	}

	tok := p.curToken
	val.Span = tok.Span
	switch tok.Type {
	case TokenString:
		val.Kind = KindString
		val.Str = tok.Literal
	case TokenKeyword:
		setKeyword(&val, tok.Literal)
	case TokenIdent:
		switch tok.Literal {
		case "true", "false", "null":
			setKeyword(&val, tok.Literal)
		default:
			val.Kind = KindString
			val.Str = tok.Literal
		}
	case TokenNumber:
		if err := parseNumber(&val, tok.Literal); err != nil {
			return val, p.errorf(tok.Span, "%v", err)
		}
	default:
		return val, p.errorf(tok.Span, "expected value, found %s", tok.Type)
	}
	if !val.HasType {
		val.TypeSpan = val.Span
	}
	p.nextToken()
	return val, nil
}

func setKeyword(val *Value, word string) {
	switch word {
	case "true":
		val.Kind, val.Bool = KindBool, true
	case "false":
		val.Kind, val.Bool = KindBool, false
	default:
		val.Kind = KindNull
	}
}

func isRadixLiteral(raw string) bool {
	lower := strings.ToLower(strings.TrimLeft(raw, "+-"))
	return strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b")
}

// parseNumber fills val from a numeric literal. Integers outside int64 are
// kept with Overflow set so the decoder can report them on their node.
func parseNumber(val *Value, raw string) error {
	val.Raw = raw
	lower := strings.ToLower(strings.TrimLeft(raw, "+-"))
	isRadix := isRadixLiteral(raw)

	if !isRadix && strings.ContainsAny(lower, ".e") {
		f, err := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", raw)
		}
		val.Kind, val.Float = KindFloat, f
		return nil
	}

	var n int64
	var err error
	if isRadix {
		n, err = strconv.ParseInt(raw, 0, 64)
	} else {
		n, err = strconv.ParseInt(strings.ReplaceAll(raw, "_", ""), 10, 64)
	}
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			val.Kind, val.Overflow = KindInt, true
			return nil
		}
		return fmt.Errorf("invalid number %q", raw)
	}
	val.Kind, val.Int = KindInt, n
	return nil
}
