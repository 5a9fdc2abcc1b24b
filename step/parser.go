// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goparam/gm"
)

// F is the kernel's scalar type.
type F = gm.F

type valueKind int

const (
	valReal valueKind = iota
	valString
	valEnum
	valRef
	valList
	valOmitted // $
	valDerived // *
)

// value is one parsed argument of an entity's parameter list.
type value struct {
	kind  valueKind
	real  F
	text  string
	ref   int
	items []value
}

// entity is one `#N=TYPE(args);` statement, or (for STEP's complex-entity
// syntax `#N=(TYPE1(...) TYPE2(...));`) the first of its simple-instance
// components, with the rest recorded in extra.
type entity struct {
	id    int
	kind  string
	args  []value
	extra []simpleInstance
}

type simpleInstance struct {
	kind string
	args []value
}

// document is the parsed DATA section: every entity keyed by its #id.
type document struct {
	entities map[int]*entity
}

func (d *document) get(id int) *entity {
	return d.entities[id]
}

// findAll returns every entity whose primary kind matches name, in
// ascending id order. The extra components of a complex entity are not
// matched.
func (d *document) findAll(name string) []*entity {
	var out []*entity
	ids := make([]int, 0, len(d.entities))
	for id := range d.entities {
		ids = append(ids, id)
	}
	sortInts(ids)
	for _, id := range ids {
		e := d.entities[id]
		if e.kind == name {
			out = append(out, e)
		}
	}
	return out
}

// componentOf returns the simple-instance component of e matching kind,
// searching the primary kind/args first and then any complex-entity extras.
func (e *entity) componentOf(kind string) ([]value, bool) {
	if e.kind == kind {
		return e.args, true
	}
	for _, c := range e.extra {
		if c.kind == kind {
			return c.args, true
		}
	}
	return nil, false
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// parseDocument parses the DATA section of a STEP physical file. Sections
// other than DATA (HEADER, the ISO-10303-21 envelope) are skipped over.
func parseDocument(source string) *document {
	doc := &document{entities: make(map[int]*entity)}
	dataStart := strings.Index(source, "DATA;")
	if dataStart < 0 {
		chk.Panic("step: missing DATA section")
	}
	dataEnd := strings.LastIndex(source, "ENDSEC;")
	if dataEnd < 0 || dataEnd < dataStart {
		dataEnd = len(source)
	}
	body := source[dataStart+len("DATA;") : dataEnd]

	p := &parser{lex: newLexer(body)}
	p.advance()
	for p.tok.kind != tokEOF {
		if p.tok.kind != tokHash {
			p.advance()
			continue
		}
		id := p.tok.ref
		p.advance()
		p.expect(tokEquals)
		e := &entity{id: id}
		if p.tok.kind == tokLParen {
			// complex entity: #N=(KIND1(...) KIND2(...) ...);
			p.advance()
			first := true
			for p.tok.kind == tokIdent {
				kind := p.tok.text
				p.advance()
				p.expect(tokLParen)
				args := p.parseArgs()
				p.expect(tokRParen)
				if first {
					e.kind = kind
					e.args = args
					first = false
				} else {
					e.extra = append(e.extra, simpleInstance{kind: kind, args: args})
				}
			}
			p.expect(tokRParen)
		} else {
			kind := p.tok.text
			p.advance()
			p.expect(tokLParen)
			args := p.parseArgs()
			p.expect(tokRParen)
			e.kind = kind
			e.args = args
		}
		p.expect(tokSemi)
		doc.entities[id] = e
	}
	return doc
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() {
	p.tok = p.lex.next()
}

func (p *parser) expect(kind tokenKind) {
	if p.tok.kind != kind {
		chk.Panic("step: unexpected token (want kind %d, got kind %d text %q)", kind, p.tok.kind, p.tok.text)
	}
	p.advance()
}

// parseArgs parses a comma-separated argument list up to (but not
// consuming) the closing paren.
func (p *parser) parseArgs() []value {
	var args []value
	if p.tok.kind == tokRParen {
		return args
	}
	for {
		args = append(args, p.parseValue())
		if p.tok.kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	return args
}

func (p *parser) parseValue() value {
	switch p.tok.kind {
	case tokReal:
		v := value{kind: valReal, real: p.tok.num}
		p.advance()
		return v
	case tokString:
		v := value{kind: valString, text: p.tok.text}
		p.advance()
		return v
	case tokEnum:
		v := value{kind: valEnum, text: p.tok.text}
		p.advance()
		return v
	case tokHash:
		v := value{kind: valRef, ref: p.tok.ref}
		p.advance()
		return v
	case tokDollar:
		p.advance()
		return value{kind: valOmitted}
	case tokStar:
		p.advance()
		return value{kind: valDerived}
	case tokLParen:
		p.advance()
		items := p.parseArgs()
		p.expect(tokRParen)
		return value{kind: valList, items: items}
	case tokIdent:
		// a typed-parameter wrapper, e.g. IFCLABEL('x') — treat as a
		// single-argument constructor and unwrap it.
		p.advance()
		p.expect(tokLParen)
		inner := p.parseArgs()
		p.expect(tokRParen)
		if len(inner) == 1 {
			return inner[0]
		}
		return value{kind: valList, items: inner}
	default:
		chk.Panic("step: unexpected token in value position (kind %d)", p.tok.kind)
		return value{}
	}
}
