package spec

import (
	"io"

	verr "github.com/Samhenry97/GrammarUtil/error"
)

const epsilonText = "ε"

type RootNode struct {
	Productions []*ProductionNode
}

// A continuation line takes the preceding production's LHS, so LHS always
// carries a concrete name.
type ProductionNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

type AlternativeNode struct {
	Elements []*ElementNode
}

type ElementNode struct {
	Text string
}

func raiseSyntaxError(row int, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   row,
	})
}

func Parse(src io.Reader) (*RootNode, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
	lastLHS   string
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{}
	for {
		if p.consume(tokenKindNewline) {
			continue
		}
		if p.consume(tokenKindEOF) {
			break
		}
		root.Productions = append(root.Productions, p.parseProduction())
	}
	return root
}

func (p *parser) parseProduction() *ProductionNode {
	var lhs string
	var pos Position
	switch {
	case p.consume(tokenKindIdentifier):
		lhs = p.lastTok.text
		pos = p.lastTok.pos
		if !p.consume(tokenKindArrow) {
			raiseSyntaxError(pos.Row, synErrNoArrow)
		}
	case p.consume(tokenKindArrow):
		pos = p.lastTok.pos
		if p.lastLHS == "" {
			raiseSyntaxError(pos.Row, synErrNoProductionName)
		}
		lhs = p.lastLHS
	default:
		raiseSyntaxError(p.peek().pos.Row, synErrNoProductionName)
	}

	rhs := []*AlternativeNode{p.parseAlternative()}
	for p.consume(tokenKindOr) {
		rhs = append(rhs, p.parseAlternative())
	}
	switch tok := p.peek(); tok.kind {
	case tokenKindNewline:
		p.consume(tokenKindNewline)
	case tokenKindEOF:
		// Left in place so parseRoot sees it.
	default:
		raiseSyntaxError(tok.pos.Row, synErrDupArrow)
	}

	p.lastLHS = lhs
	return &ProductionNode{
		LHS: lhs,
		RHS: rhs,
		Pos: pos,
	}
}

func (p *parser) parseAlternative() *AlternativeNode {
	elems := []*ElementNode{}
	for {
		elem := p.parseElement()
		if elem == nil {
			break
		}
		elems = append(elems, elem)
	}
	return &AlternativeNode{
		Elements: elems,
	}
}

func (p *parser) parseElement() *ElementNode {
	switch {
	case p.consume(tokenKindIdentifier):
		return &ElementNode{
			Text: p.lastTok.text,
		}
	case p.consume(tokenKindEmpty):
		return &ElementNode{
			Text: epsilonText,
		}
	}
	return nil
}

func (p *parser) peek() *token {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(err)
		}
		if tok.kind == tokenKindInvalid {
			raiseSyntaxError(tok.pos.Row, synErrInvalidToken)
		}
		p.peekedTok = tok
	}
	return p.peekedTok
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.peek()
	if tok.kind == expected {
		p.lastTok = tok
		p.peekedTok = nil
		return true
	}
	return false
}
