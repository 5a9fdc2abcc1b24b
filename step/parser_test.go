// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_lexer_tokens01(tst *testing.T) {

	chk.PrintTitle("lexer_tokens01")

	lex := newLexer(`#12=CARTESIAN_POINT('',(1.0,-2.5,3.E-2));`)
	kinds := []tokenKind{tokHash, tokEquals, tokIdent, tokLParen, tokString, tokComma, tokLParen, tokReal, tokComma, tokReal, tokComma, tokReal, tokRParen, tokRParen, tokSemi, tokEOF}
	for i, want := range kinds {
		tok := lex.next()
		if tok.kind != want {
			tst.Fatalf("token %d: want kind %d, got kind %d (text=%q)", i, want, tok.kind, tok.text)
		}
	}
}

func Test_parse_document_simple_entity01(tst *testing.T) {

	chk.PrintTitle("parse_document_simple_entity01")

	source := "DATA;\n#1=CARTESIAN_POINT('',(1.,2.,3.));\nENDSEC;\n"
	doc := parseDocument(source)

	e := doc.get(1)
	if e == nil {
		tst.Fatalf("entity #1 not found")
	}
	if e.kind != "CARTESIAN_POINT" {
		tst.Fatalf("want kind CARTESIAN_POINT, got %q", e.kind)
	}
	coords := asRealList(e.args[1])
	if len(coords) != 3 || coords[0] != 1 || coords[1] != 2 || coords[2] != 3 {
		tst.Fatalf("unexpected coords: %v", coords)
	}
}

func Test_parse_document_complex_entity01(tst *testing.T) {

	chk.PrintTitle("parse_document_complex_entity01")

	source := "DATA;\n" +
		"#1=(B_SPLINE_SURFACE(1,1,(()),.UNSPECIFIED.,.F.,.F.,.F.) " +
		"BOUNDED_SURFACE() GEOMETRIC_REPRESENTATION_ITEM() " +
		"RATIONAL_B_SPLINE_SURFACE(((1.,1.),(1.,1.))) " +
		"REPRESENTATION_ITEM('') SURFACE());\n" +
		"ENDSEC;\n"
	doc := parseDocument(source)

	e := doc.get(1)
	if e.kind != "B_SPLINE_SURFACE" {
		tst.Fatalf("want primary kind B_SPLINE_SURFACE, got %q", e.kind)
	}
	weights, ok := e.componentOf("RATIONAL_B_SPLINE_SURFACE")
	if !ok {
		tst.Fatalf("expected a RATIONAL_B_SPLINE_SURFACE component")
	}
	rows := asList(weights[0])
	if len(rows) != 2 {
		tst.Fatalf("expected 2 weight rows, got %d", len(rows))
	}
}

func Test_find_all_sorted01(tst *testing.T) {

	chk.PrintTitle("find_all_sorted01")

	source := "DATA;\n" +
		"#5=CARTESIAN_POINT('',(0.,0.,0.));\n" +
		"#2=CARTESIAN_POINT('',(1.,0.,0.));\n" +
		"#9=DIRECTION('',(0.,0.,1.));\n" +
		"ENDSEC;\n"
	doc := parseDocument(source)

	points := doc.findAll("CARTESIAN_POINT")
	if len(points) != 2 {
		tst.Fatalf("want 2 CARTESIAN_POINT entities, got %d", len(points))
	}
	if points[0].id != 2 || points[1].id != 5 {
		tst.Fatalf("want ascending ids [2,5], got [%d,%d]", points[0].id, points[1].id)
	}
}
