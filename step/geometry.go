// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package step

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goparam/curve"
	"github.com/cpmech/goparam/gm"
	"github.com/cpmech/goparam/surface"
)

// curveEntity builds the curve.Curve for an entity id, dispatching on its
// STEP kind.
func (d *document) curveEntity(id int) curve.Curve {
	e := d.get(id)
	switch e.kind {
	case "LINE":
		location := d.cartesianPoint(asRef(e.args[1]))
		_, direction := d.vector(asRef(e.args[2]))
		return curve.Line{Origin: location, Direction: direction}
	case "CIRCLE":
		location, axis, refDir := d.axis2Placement3d(asRef(e.args[1]))
		radius := asReal(e.args[2])
		return curve.Circle{Center: location, Radius: radius, Axis: axis, RefDir: refDir}
	case "POLYLINE":
		points := asRefList(e.args[1])
		vertices := make([]gm.Point3, len(points))
		for i, p := range points {
			vertices[i] = d.cartesianPoint(p)
		}
		return curve.NewPolyline(vertices)
	case "B_SPLINE_CURVE_WITH_KNOTS":
		return d.bSplineCurveWithKnots(e)
	case "TRIMMED_CURVE":
		return d.curveRef(e.args[1])
	case "COMPOSITE_CURVE":
		return d.compositeCurve(e)
	default:
		chk.Panic("step: unsupported curve entity kind %q (#%d)", e.kind, id)
		return nil
	}
}

// curveRef resolves a basis_curve attribute that, per AP214, may arrive
// either as a bare entity reference or wrapped in a select-type list
// whose sole item is the reference.
func (d *document) curveRef(v value) curve.Curve {
	if v.kind == valRef {
		return d.curveEntity(v.ref)
	}
	items := asList(v)
	return d.curveEntity(asRef(items[0]))
}

// vector extracts VECTOR: (name, orientation, magnitude) and returns the
// magnitude together with the displacement orientation*magnitude.
func (d *document) vector(id int) (F, gm.Vec3) {
	e := d.get(id)
	orientation := d.direction(asRef(e.args[1]))
	magnitude := asReal(e.args[2])
	return magnitude, orientation.Scale(magnitude)
}

// bSplineCurveWithKnots builds a 3D B-spline curve from:
// (name, degree, control_points_list, curve_form, closed, self_intersect,
//  knot_multiplicities, knots, knot_spec).
func (d *document) bSplineCurveWithKnots(e *entity) curve.BSplineCurve {
	degree := int(asReal(e.args[1]))
	controlRefs := asRefList(e.args[2])
	points := make([]gm.Point3, len(controlRefs))
	for i, r := range controlRefs {
		points[i] = d.cartesianPoint(r)
	}
	multiplicities := asIntList(e.args[6])
	values := asRealList(e.args[7])
	knots := gm.FromValuesAndMultiplicities(values, multiplicities)
	return curve.BSplineCurve{ControlPoints: points, Knots: knots, Degree: degree}
}

// compositeCurve concatenates its COMPOSITE_CURVE_SEGMENT components,
// each wrapping a basis curve, into a single polyline-sampled curve: the
// kernel's Curve contract has no native heterogeneous-piecewise variant,
// so a composite curve is resampled as a Polyline over its segments'
// sampled points, matching how the rest of the kernel treats a polycurve
// edge loop.
func (d *document) compositeCurve(e *entity) curve.Curve {
	segmentRefs := asRefList(e.args[1])
	var points []gm.Point3
	for _, segID := range segmentRefs {
		seg := d.get(segID)
		sameSense := asBool(seg.args[1])
		parent := d.curveRef(seg.args[2])
		pts := curve.Segment{Curve: parent, U0: 0, U1: 1, Division: 32}.GetPoints()
		if !sameSense {
			for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
				pts[i], pts[j] = pts[j], pts[i]
			}
		}
		if len(points) > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		points = append(points, pts...)
	}
	return curve.NewPolyline(points)
}

// surfaceEntity builds the surface.Surface for an entity id, dispatching
// on its STEP kind (or, for a complex entity, on whichever component
// names a recognized surface kind).
func (d *document) surfaceEntity(id int) surface.Surface {
	e := d.get(id)
	switch {
	case hasComponent(e, "RATIONAL_B_SPLINE_SURFACE"):
		return d.rationalBSplineSurface(e)
	case e.kind == "PLANE":
		return d.plane(e)
	case e.kind == "CYLINDRICAL_SURFACE":
		return d.cylindricalSurface(e)
	case e.kind == "BEZIER_SURFACE":
		return d.bezierSurface(e)
	case e.kind == "B_SPLINE_SURFACE_WITH_KNOTS":
		return d.bSplineSurfaceWithKnots(e)
	case e.kind == "SURFACE_OF_REVOLUTION":
		return d.surfaceOfRevolution(e)
	default:
		chk.Panic("step: unsupported surface entity kind %q (#%d)", e.kind, id)
		return nil
	}
}

func hasComponent(e *entity, kind string) bool {
	_, ok := e.componentOf(kind)
	return ok
}

// plane extracts PLANE: (name, position(Axis2Placement3d)). The
// parametric u/v axes are the placement's ref_direction and
// axis×ref_direction, matching how an AP214 writer derives a plane's
// local frame.
func (d *document) plane(e *entity) surface.Plane {
	location, axis, refDir := d.axis2Placement3d(asRef(e.args[1]))
	return surface.Plane{Origin: location, Normal: axis, UAxis: refDir, VAxis: axis.Cross(refDir)}
}

// cylindricalSurface extracts CYLINDRICAL_SURFACE: (name,
// position(Axis2Placement3d), radius).
func (d *document) cylindricalSurface(e *entity) surface.Cylinder {
	location, axis, refDir := d.axis2Placement3d(asRef(e.args[1]))
	radius := asReal(e.args[2])
	return surface.Cylinder{Origin: location, Axis: axis, RefDir: refDir, Radius: radius}
}

// bezierSurface extracts BEZIER_SURFACE: (name, u_degree, v_degree,
// control_points_list (rows of refs), ...).
func (d *document) bezierSurface(e *entity) surface.BezierSurface {
	grid := d.controlPointGrid(e.args[3])
	return surface.BezierSurface{ControlPoints: grid}
}

// controlPointGrid reads a nested list-of-lists of CARTESIAN_POINT refs
// (rows varying with v, columns with u) into a gm.Grid.
func (d *document) controlPointGrid(v value) *gm.Grid[gm.Point3] {
	rows := asList(v)
	cols := len(asList(rows[0]))
	data := make([]gm.Point3, 0, len(rows)*cols)
	for _, row := range rows {
		refs := asRefList(row)
		for _, r := range refs {
			data = append(data, d.cartesianPoint(r))
		}
	}
	return gm.GridFromSlice(data, cols)
}

// bSplineSurfaceWithKnots extracts B_SPLINE_SURFACE_WITH_KNOTS: (name,
// u_degree, v_degree, control_points_list, surface_form, u_closed,
// v_closed, self_intersect, u_multiplicities, v_multiplicities, u_knots,
// v_knots, knot_spec).
func (d *document) bSplineSurfaceWithKnots(e *entity) surface.BSplineSurface {
	degreeU := int(asReal(e.args[1]))
	degreeV := int(asReal(e.args[2]))
	grid := d.controlPointGrid(e.args[3])
	multU := asIntList(e.args[8])
	multV := asIntList(e.args[9])
	knotsU := asRealList(e.args[10])
	knotsV := asRealList(e.args[11])
	return surface.BSplineSurface{
		ControlPoints: grid,
		KnotsU:        gm.FromValuesAndMultiplicities(knotsU, multU),
		KnotsV:        gm.FromValuesAndMultiplicities(knotsV, multV),
		DegreeU:       degreeU,
		DegreeV:       degreeV,
	}
}

// rationalBSplineSurface merges the RATIONAL_B_SPLINE_SURFACE complex
// entity's weights component with its B_SPLINE_SURFACE_WITH_KNOTS (or
// plain B_SPLINE_SURFACE) sibling component into a single 4D rational
// B-spline surface, following how a STEP AP214 writer always emits
// rational surfaces as that three-way aggregate. Unlike a standalone
// entity instance, a complex entity's simple-instance components do not
// repeat the inherited name attribute (that comes from a separate
// REPRESENTATION_ITEM('name') component instead), so the sibling's own
// args here start directly at u_degree rather than at index 1.
func (d *document) rationalBSplineSurface(e *entity) surface.BSplineSurfaceR {
	weightArgs, _ := e.componentOf("RATIONAL_B_SPLINE_SURFACE")
	weightRows := asList(weightArgs[0])

	base, ok := e.componentOf("B_SPLINE_SURFACE_WITH_KNOTS")
	if !ok {
		base, ok = e.componentOf("B_SPLINE_SURFACE")
		if !ok {
			chk.Panic("step: rational surface #%d has no B-spline sibling component", e.id)
		}
	}

	degreeU := int(asReal(base[0]))
	degreeV := int(asReal(base[1]))
	grid := d.controlPointGrid(base[2])

	var knotsU, knotsV gm.KnotVector
	if len(base) > 8 {
		multU := asIntList(base[7])
		multV := asIntList(base[8])
		knotsU = gm.FromValuesAndMultiplicities(asRealList(base[9]), multU)
		knotsV = gm.FromValuesAndMultiplicities(asRealList(base[10]), multV)
	} else {
		knotsU = gm.UniformKnot(degreeU, grid.Cols()-degreeU)
		knotsV = gm.UniformKnot(degreeV, grid.Rows()-degreeV)
	}

	rational := gm.NewGrid[gm.Point4](grid.Rows(), grid.Cols())
	for i := 0; i < grid.Rows(); i++ {
		weights := asRealList(weightRows[i])
		for j := 0; j < grid.Cols(); j++ {
			p := grid.At(i, j)
			w := weights[j]
			rational.Set(i, j, gm.NewVec4(p.X*w, p.Y*w, p.Z*w, w))
		}
	}

	return surface.BSplineSurfaceR{ControlPoints: rational, KnotsU: knotsU, KnotsV: knotsV, DegreeU: degreeU, DegreeV: degreeV}
}

// surfaceOfRevolution extracts SURFACE_OF_REVOLUTION: (name,
// swept_curve, axis_position(Axis1Placement)) into a SpinSurface.
func (d *document) surfaceOfRevolution(e *entity) surface.SpinSurface {
	section := d.curveRef(e.args[1])
	location, axis := d.axis1Placement(asRef(e.args[2]))
	return surface.SpinSurface{Origin: location, Axis: axis, Section: section}
}
