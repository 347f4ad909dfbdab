// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool { return float32(math.Abs(float64(a-b))) < eps }

func TestV3Cross(t *testing.T) {
	x := V3{1, 0, 0}
	y := V3{0, 1, 0}
	if u := x.Cross(y); u != (V3{0, 0, 1}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [0 0 1]", u)
	}
	if u := y.Cross(x); u != (V3{0, 0, -1}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [0 0 -1]", u)
	}
}

func TestV3Arith(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u := v.Add(w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u := v.Sub(w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u := v.Scale(-1); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := v.Dot(w); d != 6 {
		t.Fatalf("V3.Dot\nhave %v\nwant 6", d)
	}
	if d := v.Dot(v); d != 21 {
		t.Fatalf("V3.Dot\nhave %v\nwant 21", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v", l, math.Sqrt(21))
	}
}

func TestV3Unit(t *testing.T) {
	if u := (V3{0, 0, -2}).Unit(); u != (V3{0, 0, -1}) {
		t.Fatalf("V3.Unit\nhave %v\nwant [0 0 -1]", u)
	}
	if u := (V3{0, 4, 0}).Unit(); u != (V3{0, 1, 0}) {
		t.Fatalf("V3.Unit\nhave %v\nwant [0 1 0]", u)
	}
}

func TestV4Lerp(t *testing.T) {
	a := V4{0, 0, 0, 1}
	b := V4{4, 2, 0, 1}
	if u := a.Lerp(b, 0.5); u != (V4{2, 1, 0, 1}) {
		t.Fatalf("V4.Lerp\nhave %v\nwant [2 1 0 1]", u)
	}
}

func TestM4MulIdentity(t *testing.T) {
	m := Translation(V3{1, 2, 3})
	if have := m.Mul(I4); have != m {
		t.Fatalf("M4.Mul identity\nhave %v\nwant %v", have, m)
	}
}

func TestM4Translation(t *testing.T) {
	m := Translation(V3{1, 2, 3})
	have := m.MulV4(V4{5, 5, 5, 1})
	want := V4{6, 7, 8, 1}
	if have != want {
		t.Fatalf("Translation.MulV4\nhave %v\nwant %v", have, want)
	}
}

func TestM4Composition(t *testing.T) {
	a := Translation(V3{1, 0, 0})
	b := Scaling(V3{2, 2, 2})
	p := V4{1, 1, 1, 1}
	have := a.Mul(b).MulV4(p)
	want := a.MulV4(b.MulV4(p))
	if have != want {
		t.Fatalf("composition mismatch\nhave %v\nwant %v", have, want)
	}
}

func TestM4RotationZQuarterTurn(t *testing.T) {
	m := RotationZ(float32(math.Pi / 2))
	have := m.MulV4(V4{1, 0, 0, 1})
	if !near(have.X, 0) || !near(have.Y, 1) {
		t.Fatalf("RotationZ(pi/2)\nhave %v\nwant [0 1 0 1]", have)
	}
}

func TestPerspectiveMapsNearFarPlanes(t *testing.T) {
	const n, f = float32(1), float32(10)
	m := Perspective(float32(math.Pi/2), 1, n, f)

	atNear := m.MulV4(V4{0, 0, -n, 1})
	atNear = atNear.Div(atNear.W)
	if !near(atNear.Z, -1) {
		t.Fatalf("perspective near plane: have z=%v want -1", atNear.Z)
	}

	atFar := m.MulV4(V4{0, 0, -f, 1})
	atFar = atFar.Div(atFar.W)
	if !near(atFar.Z, 1) {
		t.Fatalf("perspective far plane: have z=%v want 1", atFar.Z)
	}
}
