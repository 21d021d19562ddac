// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quat

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/akhenakh/vecmath/r3"
)

func TestFromAxisAngle(t *testing.T) {
	tests := []struct {
		axis  r3.Vector
		angle float64
		p     r3.Vector
		want  r3.Vector
	}{
		{r3.Vector{Z: 1}, math.Pi / 2, r3.Vector{X: 1}, r3.Vector{Y: 1}},
		{r3.Vector{Z: 5}, math.Pi / 2, r3.Vector{X: 1}, r3.Vector{Y: 1}},
		{r3.Vector{X: 1}, math.Pi / 2, r3.Vector{Y: 1}, r3.Vector{Z: 1}},
		{r3.Vector{Y: 1}, math.Pi / 2, r3.Vector{Z: 1}, r3.Vector{X: 1}},
		{r3.Vector{X: 1, Y: 1, Z: 1}, 2 * math.Pi / 3, r3.Vector{X: 1}, r3.Vector{Y: 1}},
		{r3.Vector{}, 1, r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 1, Y: 2, Z: 3}},
	}
	for _, test := range tests {
		q := FromAxisAngle(test.axis, test.angle)
		got := q.Rotate(test.p)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
			t.Errorf("FromAxisAngle(%v, %v).Rotate(%v) mismatch (-want +got):\n%s", test.axis, test.angle, test.p, diff)
		}
		if m := r3.MatrixFromCols(q.Rotate(r3.Vector{X: 1}), q.Rotate(r3.Vector{Y: 1}), q.Rotate(r3.Vector{Z: 1})); !m.ApproxEqual(q.Matrix(), tolerance) {
			t.Errorf("basis images of %v = %v, want %v", q, m, q.Matrix())
		}
	}
}

func TestAxisAngleRoundTrip(t *testing.T) {
	axis := r3.Vector{X: 1, Y: -2, Z: 0.5}.Normalize()
	for _, angle := range []float64{0.1, 1, math.Pi / 2, 3} {
		gotAxis, gotAngle := FromAxisAngle(axis, angle).AxisAngle()
		if math.Abs(gotAngle-angle) > tolerance || gotAxis.Sub(axis).Norm() > tolerance {
			t.Errorf("AxisAngle of (%v, %v) = (%v, %v)", axis, angle, gotAxis, gotAngle)
		}
	}
	if axis, angle := Identity().AxisAngle(); angle != 0 || axis != (r3.Vector{X: 1}) {
		t.Errorf("Identity().AxisAngle() = %v, %v, want X axis, 0", axis, angle)
	}
	// -q gives the same rotation.
	q := FromAxisAngle(axis, 1)
	_, a1 := q.AxisAngle()
	_, a2 := q.Neg().AxisAngle()
	if math.Abs(a1-a2) > tolerance {
		t.Errorf("AxisAngle angles of q and -q = %v, %v, want equal", a1, a2)
	}
}

func TestFromEuler(t *testing.T) {
	x, y, z := 0.3, -1.1, 2.4
	q := FromEuler(x, y, z)
	want := r3.RotationZ(z).Mul(r3.RotationY(y)).Mul(r3.RotationX(x))
	if !q.Matrix().ApproxEqual(want, tolerance) {
		t.Errorf("FromEuler(%v, %v, %v).Matrix() = %v, want %v", x, y, z, q.Matrix(), want)
	}
	if !FromMatrix(want).ApproxEqual(q, tolerance) {
		t.Errorf("FromMatrix(%v) = %v, want ±%v", want, FromMatrix(want), q)
	}
}

func TestMulComposesRotations(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a, b := randomQuaternion(r), randomQuaternion(r)
		got := a.Mul(b).Matrix()
		want := a.Matrix().Mul(b.Matrix())
		if !got.ApproxEqual(want, tolerance) {
			t.Errorf("(%v * %v).Matrix() = %v, want %v", a, b, got, want)
		}
		if !a.Mul(a.Inverse()).ApproxEqual(Identity(), tolerance) {
			t.Errorf("%v * %v⁻¹ = %v, want identity", a, a, a.Mul(a.Inverse()))
		}
	}

	// Hamilton's rules.
	i, j, k := New(1, 0, 0, 0), New(0, 1, 0, 0), New(0, 0, 1, 0)
	minusOne := New(0, 0, 0, -1)
	tests := []struct {
		name      string
		got, want Quaternion
	}{
		{"ii", i.Mul(i), minusOne},
		{"jj", j.Mul(j), minusOne},
		{"kk", k.Mul(k), minusOne},
		{"ij", i.Mul(j), k},
		{"jk", j.Mul(k), i},
		{"ki", k.Mul(i), j},
		{"ji", j.Mul(i), k.Neg()},
	}
	for _, test := range tests {
		if !test.got.Equal(test.want) {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestInverse(t *testing.T) {
	q := New(1, 2, 3, 4)
	if got := q.Mul(q.Inverse()); !got.Value.ApproxEqual(Identity().Value, 1e-15) {
		t.Errorf("%v * %v.Inverse() = %v, want identity", q, q, got)
	}
	var zero Quaternion
	if got := zero.Inverse(); !got.Equal(zero) {
		t.Errorf("zero.Inverse() = %v, want zero", got)
	}
	if got := zero.Normalize(); !got.Equal(Identity()) {
		t.Errorf("zero.Normalize() = %v, want identity", got)
	}
	if got, want := q.Conjugate(), New(-1, -2, -3, 4); !got.Equal(want) {
		t.Errorf("Conjugate() = %v, want %v", got, want)
	}
}

func TestAngle(t *testing.T) {
	a := FromAxisAngle(r3.Vector{Z: 1}, 0.25)
	b := FromAxisAngle(r3.Vector{Z: 1}, 1.25)
	if got := a.Angle(b); math.Abs(got-1) > tolerance {
		t.Errorf("Angle = %v, want 1", got)
	}
	// acos loses half the precision near 1.
	if got := a.Angle(a.Neg()); got > 1e-7 {
		t.Errorf("Angle(q, -q) = %v, want 0", got)
	}
}

func TestInterpolation(t *testing.T) {
	a := Identity()
	b := FromAxisAngle(r3.Vector{Y: 1}, 2)
	for _, f := range []float64{0, 0.25, 0.5, 1} {
		got := a.Slerp(b, f)
		want := FromAxisAngle(r3.Vector{Y: 1}, 2*f)
		if !got.ApproxEqual(want, tolerance) {
			t.Errorf("Slerp(%v) = %v, want %v", f, got, want)
		}
		if n := a.Nlerp(b, f); !n.IsUnit(tolerance) {
			t.Errorf("Nlerp(%v) = %v, want unit", f, n)
		}
	}
	if got := a.Nlerp(b, 1); !got.ApproxEqual(b, tolerance) {
		t.Errorf("Nlerp(1) = %v, want %v", got, b)
	}
	// Slerp takes the shorter arc even when b is given with the other sign.
	if got, want := a.Slerp(b.Neg(), 0.5), FromAxisAngle(r3.Vector{Y: 1}, 1); !got.ApproxEqual(want, tolerance) {
		t.Errorf("Slerp(-b, 0.5) = %v, want ±%v", got, want)
	}
	// Nearly parallel inputs.
	c := FromAxisAngle(r3.Vector{Y: 1}, 1e-12)
	if got := a.Slerp(c, 0.5); !got.IsUnit(tolerance) || math.IsNaN(got.W()) {
		t.Errorf("Slerp of nearly equal quaternions = %v", got)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(1, 2, 3, 4)
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("%v and %v: Equal %v, hashes %#x %#x", a, b, a.Equal(b), a.Hash(), b.Hash())
	}
	if a.Equal(a.Neg()) {
		t.Errorf("%v.Equal(%v) = true, want false", a, a.Neg())
	}
	if !a.ApproxEqual(a.Neg(), 0) {
		t.Errorf("%v.ApproxEqual(%v) = false, want true", a, a.Neg())
	}
	if a.Hash() == New(1, 2, 3, 5).Hash() {
		t.Errorf("hash of %v collides with a neighbour", a)
	}
	negZero := New(math.Copysign(0, -1), 0, 0, 1)
	if !negZero.Equal(Identity()) || negZero.Hash() != Identity().Hash() {
		t.Errorf("%v and identity: Equal %v, hashes %#x %#x", negZero, negZero.Equal(Identity()), negZero.Hash(), Identity().Hash())
	}
}

func TestString(t *testing.T) {
	if got, want := New(0, 0.5, -1, 1).String(), "Quaternion(0, 0.5, -1, 1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEncodeDecode(t *testing.T) {
	qs := []Quaternion{Identity(), New(math.Copysign(0, -1), math.Inf(1), -2.5, math.SmallestNonzeroFloat64)}
	var buf bytes.Buffer
	for _, q := range qs {
		if err := q.Encode(&buf); err != nil {
			t.Fatalf("Encode(%v): %v", q, err)
		}
	}
	if got, want := buf.Len(), len(qs)*33; got != want {
		t.Errorf("encoded %d bytes, want %d", got, want)
	}
	r := bytes.NewReader(buf.Bytes())
	for _, want := range qs {
		var got Quaternion
		if err := got.Decode(r); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got.Value.Bits() != want.Value.Bits() {
			t.Errorf("Decode() = %v, want %v", got, want)
		}
	}

	var q Quaternion
	if err := q.Decode(bytes.NewReader(buf.Bytes()[:20])); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Decode of truncated input error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if !q.Equal(Quaternion{}) {
		t.Errorf("failed Decode modified q: %v", q)
	}
	if err := q.Decode(bytes.NewReader([]byte{2})); err == nil {
		t.Error("Decode of unknown version succeeded, want error")
	}
}
