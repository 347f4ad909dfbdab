// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements the math used by the rasterizer: fixed-size
// vectors, a 4x4 matrix, and the transform constructors the renderer
// composes every frame.
package linear

import "math"

// V2 is a 2-component vector of float32.
type V2 struct{ X, Y float32 }

// Add returns v + w.
func (v V2) Add(w V2) V2 { return V2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v V2) Sub(w V2) V2 { return V2{v.X - w.X, v.Y - w.Y} }

// Scale returns s*v.
func (v V2) Scale(s float32) V2 { return V2{v.X * s, v.Y * s} }

// Dot returns v . w.
func (v V2) Dot(w V2) float32 { return v.X*w.X + v.Y*w.Y }

// Len returns the length of v.
func (v V2) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Rotate returns v rotated by theta radians about the origin.
func (v V2) Rotate(theta float32) V2 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	return V2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// V3 is a 3-component vector of float32.
type V3 struct{ X, Y, Z float32 }

// Add returns v + w.
func (v V3) Add(w V3) V3 { return V3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v V3) Sub(w V3) V3 { return V3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Neg returns -v.
func (v V3) Neg() V3 { return V3{-v.X, -v.Y, -v.Z} }

// Scale returns s*v.
func (v V3) Scale(s float32) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Div returns v/s, componentwise.
func (v V3) Div(s float32) V3 { return V3{v.X / s, v.Y / s, v.Z / s} }

// Dot returns v . w.
func (v V3) Dot(w V3) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v x w (right-handed).
func (v V3) Cross(w V3) V3 {
	return V3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Len returns the length of v.
func (v V3) Len() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Unit returns v normalized. It is undefined for the zero vector; callers
// must check v != (V3{}) first.
func (v V3) Unit() V3 { return v.Scale(1 / v.Len()) }

// V4 is a 4-component vector of float32, used for homogeneous coordinates.
type V4 struct{ X, Y, Z, W float32 }

// NewV4 builds a V4 from a V3 position and the given w.
func NewV4(p V3, w float32) V4 { return V4{p.X, p.Y, p.Z, w} }

// V3 discards w and returns the (x, y, z) components.
func (v V4) V3() V3 { return V3{v.X, v.Y, v.Z} }

// Add returns v + w.
func (v V4) Add(w V4) V4 { return V4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W} }

// Sub returns v - w.
func (v V4) Sub(w V4) V4 { return V4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W} }

// Scale returns s*v.
func (v V4) Scale(s float32) V4 { return V4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Div returns v/s, componentwise.
func (v V4) Div(s float32) V4 { return V4{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Dot returns v . w.
func (v V4) Dot(w V4) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W }

// Lerp returns v + t*(w - v).
func (v V4) Lerp(w V4, t float32) V4 { return v.Add(w.Sub(v).Scale(t)) }
