package redfa

import "fmt"

// parser is a predictive recursive-descent parser for the grammar
//
//	expression     = subExpression EOF
//	subExpression  = sequence ('|' subExpression)?
//	sequence       = subSequence | ε
//	subSequence    = star subSequence | star
//	star           = factor '*' | factor
//	factor         = '(' subExpression ')' | Character
//
// Concatenation is implicit and binds tighter than union; star binds
// tightest and applies only to the preceding factor. One token of
// lookahead, no backtracking.
type parser struct {
	lex  *lexer
	look token
}

func newParser(pat string) *parser {
	p := &parser{lex: newLexer(pat)}
	p.look = p.lex.next()
	return p
}

func (p *parser) scan() { p.look = p.lex.next() }

func (p *parser) parse() (*astNode, error) { return p.expression() }

func (p *parser) expression() (*astNode, error) {
	node, err := p.subExpression()
	if err != nil {
		return nil, err
	}
	if p.look.typ != tEOF {
		return nil, p.unexpected("EOF")
	}
	return node, nil
}

// Union is right-associative: a|b|c parses as a|(b|c).
func (p *parser) subExpression() (*astNode, error) {
	left, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if p.look.typ != tUnion {
		return left, nil
	}
	p.scan()
	right, err := p.subExpression()
	if err != nil {
		return nil, err
	}
	return &astNode{typ: nUnion, left: left, right: right}, nil
}

// An empty sequence (inside "()" or beside a '|') is the Empty node, not
// an error.
func (p *parser) sequence() (*astNode, error) {
	if p.startsFactor() {
		return p.subSequence()
	}
	return &astNode{typ: nEmpty}, nil
}

func (p *parser) subSequence() (*astNode, error) {
	left, err := p.star()
	if err != nil {
		return nil, err
	}
	if !p.startsFactor() {
		return left, nil
	}
	right, err := p.subSequence()
	if err != nil {
		return nil, err
	}
	return &astNode{typ: nConcat, left: left, right: right}, nil
}

func (p *parser) star() (*astNode, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	if p.look.typ == tStar {
		p.scan()
		return &astNode{typ: nStar, left: node}, nil
	}
	return node, nil
}

func (p *parser) factor() (*astNode, error) {
	switch p.look.typ {
	case tLParen:
		p.scan()
		inner, err := p.subExpression()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, p.unexpected("')'")
		}
		p.scan()
		return inner, nil
	case tChar:
		node := charNode(p.look.ch)
		p.scan()
		return node, nil
	default:
		return nil, p.unexpected("one of '(', Character")
	}
}

func (p *parser) startsFactor() bool {
	return p.look.typ == tChar || p.look.typ == tLParen
}

func (p *parser) unexpected(expected string) error {
	got := p.look.typ.String()
	if p.look.typ == tChar {
		got = fmt.Sprintf("'%c'", p.look.ch)
	}
	return &ParseError{Pos: p.look.pos, Expected: expected, Got: got}
}
