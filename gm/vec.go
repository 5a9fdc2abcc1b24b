// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm

import "math"

// Vec2 is a 2D vector; Point2 is used as an alias wherever the value is
// conceptually a position rather than a displacement.
type Vec2 struct {
	X, Y F
}

// Point2 is a 2D position.
type Point2 = Vec2

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z F
}

// Point3 is a 3D position.
type Point3 = Vec3

// Vec4 is a 4D (homogeneous) vector: (w·x, w·y, w·z, w) for a rational
// control point with weight w.
type Vec4 struct {
	X, Y, Z, W F
}

// Point4 is a 4D homogeneous position.
type Point4 = Vec4

// NewVec2 builds a Vec2.
func NewVec2(x, y F) Vec2 { return Vec2{x, y} }

// NewVec3 builds a Vec3.
func NewVec3(x, y, z F) Vec3 { return Vec3{x, y, z} }

// NewVec4 builds a Vec4.
func NewVec4(x, y, z, w F) Vec4 { return Vec4{x, y, z, w} }

// Add returns a+b.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Scale returns a*s.
func (a Vec2) Scale(s F) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Dot returns the dot product a·b.
func (a Vec2) Dot(b Vec2) F { return a.X*b.X + a.Y*b.Y }

// PerpDot returns the 2D perp-dot (a.x*b.y - a.y*b.x), equal to the z
// component of the 3D cross product of a and b.
func (a Vec2) PerpDot(b Vec2) F { return a.X*b.Y - a.Y*b.X }

// Perp returns a vector perpendicular to a, rotated 90° counter-clockwise.
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

// Length returns |a|.
func (a Vec2) Length() F { return math.Sqrt(a.X*a.X + a.Y*a.Y) }

// LengthSquared returns |a|².
func (a Vec2) LengthSquared() F { return a.X*a.X + a.Y*a.Y }

// Normalize returns a scaled to unit length; returns the zero vector if
// a is (near) zero length.
func (a Vec2) Normalize() Vec2 {
	length := a.Length()
	if length <= ulps {
		return Vec2{}
	}
	return a.Scale(1 / length)
}

// DistanceSquared returns |a-b|².
func (a Vec2) DistanceSquared(b Vec2) F { return a.Sub(b).LengthSquared() }

// Lerp linearly interpolates from a to b by t.
func (a Vec2) Lerp(b Vec2, t F) Vec2 { return a.Add(b.Sub(a).Scale(t)) }

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a*s.
func (a Vec3) Scale(s F) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Dot returns the dot product a·b.
func (a Vec3) Dot(b Vec3) F { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns |a|.
func (a Vec3) Length() F { return math.Sqrt(a.Dot(a)) }

// LengthSquared returns |a|².
func (a Vec3) LengthSquared() F { return a.Dot(a) }

// Distance returns |a-b|.
func (a Vec3) Distance(b Vec3) F { return a.Sub(b).Length() }

// DistanceSquared returns |a-b|².
func (a Vec3) DistanceSquared(b Vec3) F { return a.Sub(b).LengthSquared() }

// Normalize returns a scaled to unit length; returns the zero vector if
// a is (near) zero length.
func (a Vec3) Normalize() Vec3 {
	length := a.Length()
	if length <= ulps {
		return Vec3{}
	}
	return a.Scale(1 / length)
}

// Lerp linearly interpolates from a to b by t.
func (a Vec3) Lerp(b Vec3, t F) Vec3 { return a.Add(b.Sub(a).Scale(t)) }

// Truncate drops the W component, returning the (X,Y,Z) part.
func (a Vec4) Truncate() Vec3 { return Vec3{a.X, a.Y, a.Z} }

// Add returns a+b.
func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }

// Scale returns a*s.
func (a Vec4) Scale(s F) Vec4 { return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s} }
