// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goparam/gm"
)

// asReal requires v to be a real number.
func asReal(v value) F {
	if v.kind != valReal {
		chk.Panic("step: expected a real, got kind %d", v.kind)
	}
	return v.real
}

// asRef requires v to be an entity reference and returns its id.
func asRef(v value) int {
	if v.kind != valRef {
		chk.Panic("step: expected an entity reference, got kind %d", v.kind)
	}
	return v.ref
}

// asList requires v to be an aggregate and returns its items.
func asList(v value) []value {
	if v.kind != valList {
		chk.Panic("step: expected a list, got kind %d", v.kind)
	}
	return v.items
}

// asString requires v to be a string.
func asString(v value) string {
	if v.kind != valString {
		chk.Panic("step: expected a string, got kind %d", v.kind)
	}
	return v.text
}

// asBool reads a STEP .T./.F. logical as a Go bool.
func asBool(v value) bool {
	if v.kind != valEnum {
		chk.Panic("step: expected a logical enumeration, got kind %d", v.kind)
	}
	return v.text == "T"
}

// asRealList requires v to be a list of reals and returns them as []F.
func asRealList(v value) []F {
	items := asList(v)
	out := make([]F, len(items))
	for i, item := range items {
		out[i] = asReal(item)
	}
	return out
}

// asRefList requires v to be a list of entity references and returns
// their ids.
func asRefList(v value) []int {
	items := asList(v)
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = asRef(item)
	}
	return out
}

// asIntList requires v to be a list of reals and truncates each to int,
// used for knot_multiplicities.
func asIntList(v value) []int {
	items := asList(v)
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = int(asReal(item))
	}
	return out
}

// cartesianPoint extracts a CARTESIAN_POINT's coordinates: (name,
// (x,y,z)).
func (d *document) cartesianPoint(id int) gm.Point3 {
	e := d.get(id)
	coords := asRealList(e.args[1])
	return gm.NewVec3(coords[0], coords[1], coords[2])
}

// direction extracts a DIRECTION's components: (name, (x,y,z)).
func (d *document) direction(id int) gm.Vec3 {
	e := d.get(id)
	coords := asRealList(e.args[1])
	return gm.NewVec3(coords[0], coords[1], coords[2])
}

// axis1Placement extracts AXIS1_PLACEMENT: (name, location, axis) and
// returns (location, normalized axis). axis defaults to +Z if omitted.
func (d *document) axis1Placement(id int) (gm.Point3, gm.Vec3) {
	e := d.get(id)
	location := d.cartesianPoint(asRef(e.args[1]))
	axis := gm.NewVec3(0, 0, 1)
	if e.args[2].kind == valRef {
		axis = d.direction(asRef(e.args[2])).Normalize()
	}
	return location, axis
}

// axis2Placement3d extracts AXIS2_PLACEMENT_3D: (name, location, axis,
// ref_direction) and returns (location, axis, ref_direction), both
// normalized and orthogonalized the way every AP214 writer already
// guarantees (ref_direction has already been made perpendicular to
// axis). axis defaults to +Z and ref_direction to +X when omitted, per
// the standard's derivation rule.
func (d *document) axis2Placement3d(id int) (gm.Point3, gm.Vec3, gm.Vec3) {
	e := d.get(id)
	location := d.cartesianPoint(asRef(e.args[1]))
	axis := gm.NewVec3(0, 0, 1)
	if e.args[2].kind == valRef {
		axis = d.direction(asRef(e.args[2])).Normalize()
	}
	refDir := gm.NewVec3(1, 0, 0)
	if e.args[3].kind == valRef {
		refDir = d.direction(asRef(e.args[3])).Normalize()
	}
	return location, axis, refDir
}
