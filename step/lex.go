// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package step implements a reader for the STEP AP214 entities listed in
// the external-interfaces contract: it tokenizes and parses an
// ISO-10303-21 physical file's DATA section into a flat entity table,
// then walks AdvancedFace/FaceBound/EdgeLoop structures to reconstruct
// surfaces, trimming edge loops, and curves.
package step

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokHash    // #123
	tokIdent   // CARTESIAN_POINT, or a bare keyword
	tokEnum    // .T. .F. .UNSPECIFIED.
	tokString  // 'quoted'
	tokReal    // 1.5, -2, 3.0E-4
	tokLParen  // (
	tokRParen  // )
	tokComma   // ,
	tokSemi    // ;
	tokEquals  // =
	tokDollar  // $ (unset attribute)
	tokStar    // * (derived attribute)
)

type token struct {
	kind tokenKind
	text string
	num  F
	ref  int
}

// lexer tokenizes a STEP physical-file source string.
type lexer struct {
	src []rune
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src)}
}

func (l *lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) skipSpaceAndComments() {
	for {
		r, ok := l.peekRune()
		if !ok {
			return
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			l.pos++
			continue
		}
		if r == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*' {
			l.pos += 2
			for l.pos+1 < len(l.src) && !(l.src[l.pos] == '*' && l.src[l.pos+1] == '/') {
				l.pos++
			}
			l.pos += 2
			continue
		}
		return
	}
}

// next returns the next token, or a tokEOF token at end of input.
func (l *lexer) next() token {
	l.skipSpaceAndComments()
	r, ok := l.peekRune()
	if !ok {
		return token{kind: tokEOF}
	}

	switch r {
	case '(':
		l.pos++
		return token{kind: tokLParen}
	case ')':
		l.pos++
		return token{kind: tokRParen}
	case ',':
		l.pos++
		return token{kind: tokComma}
	case ';':
		l.pos++
		return token{kind: tokSemi}
	case '=':
		l.pos++
		return token{kind: tokEquals}
	case '$':
		l.pos++
		return token{kind: tokDollar}
	case '*':
		l.pos++
		return token{kind: tokStar}
	case '#':
		l.pos++
		start := l.pos
		for {
			r, ok := l.peekRune()
			if !ok || r < '0' || r > '9' {
				break
			}
			l.pos++
		}
		n, _ := strconv.Atoi(string(l.src[start:l.pos]))
		return token{kind: tokHash, ref: n}
	case '\'':
		l.pos++
		var b strings.Builder
		for {
			r, ok := l.peekRune()
			if !ok {
				chk.Panic("step: unterminated string literal")
			}
			if r == '\'' {
				if l.pos+1 < len(l.src) && l.src[l.pos+1] == '\'' {
					b.WriteRune('\'')
					l.pos += 2
					continue
				}
				l.pos++
				break
			}
			b.WriteRune(r)
			l.pos++
		}
		return token{kind: tokString, text: b.String()}
	case '.':
		l.pos++
		start := l.pos
		for {
			r, ok := l.peekRune()
			if !ok || r == '.' {
				break
			}
			l.pos++
		}
		name := string(l.src[start:l.pos])
		if l.pos < len(l.src) && l.src[l.pos] == '.' {
			l.pos++
		}
		return token{kind: tokEnum, text: name}
	}

	if r == '-' || r == '+' || (r >= '0' && r <= '9') {
		start := l.pos
		l.pos++
		for {
			r, ok := l.peekRune()
			if !ok || !(r >= '0' && r <= '9' || r == '.' || r == 'E' || r == 'e' || r == '+' || r == '-') {
				break
			}
			l.pos++
		}
		text := string(l.src[start:l.pos])
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			chk.Panic("step: malformed number %q", text)
		}
		return token{kind: tokReal, num: value}
	}

	if isIdentStart(r) {
		start := l.pos
		for {
			r, ok := l.peekRune()
			if !ok || !isIdentRune(r) {
				break
			}
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos])}
	}

	chk.Panic("step: unexpected character %q at offset %d", string(r), l.pos)
	return token{}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
