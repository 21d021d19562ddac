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

package r3

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMatrixRowsCols(t *testing.T) {
	m := MatrixFromRows(Vector{1, 2, 3}, Vector{4, 5, 6}, Vector{7, 8, 9})
	if got, want := m.Col(0), (Vector{1, 4, 7}); got != want {
		t.Errorf("Col(0) = %v, want %v", got, want)
	}
	if got, want := m.Row(2), (Vector{7, 8, 9}); got != want {
		t.Errorf("Row(2) = %v, want %v", got, want)
	}
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("Transpose twice = %v, want %v", got, m)
	}
	if got, want := m.Transpose().Row(0), m.Col(0); got != want {
		t.Errorf("Transpose().Row(0) = %v, want %v", got, want)
	}
	if got, want := m.String(), "[ 1.0000 2.0000 3.0000 ] [ 4.0000 5.0000 6.0000 ] [ 7.0000 8.0000 9.0000 ]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatrixApplyMul(t *testing.T) {
	m := MatrixFromRows(Vector{1, 2, 3}, Vector{4, 5, 6}, Vector{7, 8, 10})
	p := Vector{1, -1, 2}
	if got, want := m.Apply(p), (Vector{5, 11, 19}); !got.ApproxEqual(want) {
		t.Errorf("Apply(%v) = %v, want %v", p, got, want)
	}
	if got := IdentityMatrix().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	n := RotationZ(0.3)
	if got, want := m.Mul(n).Apply(p), m.Apply(n.Apply(p)); !got.ApproxEqual(want) {
		t.Errorf("(m*n)p = %v, want m(np) = %v", got, want)
	}
	if got, want := m.Det(), -3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Det() = %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		m    Matrix
		p    Vector
		want Vector
	}{
		{RotationX(math.Pi / 2), Vector{0, 1, 0}, Vector{0, 0, 1}},
		{RotationY(math.Pi / 2), Vector{0, 0, 1}, Vector{1, 0, 0}},
		{RotationZ(math.Pi / 2), Vector{1, 0, 0}, Vector{0, 1, 0}},
		{RotationZ(math.Pi), Vector{1, 2, 3}, Vector{-1, -2, 3}},
	}
	for _, test := range tests {
		got := test.m.Apply(test.p)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
			t.Errorf("%v.Apply(%v) mismatch (-want +got):\n%s", test.m, test.p, diff)
		}
		if !test.m.IsOrthonormal(1e-15) {
			t.Errorf("%v.IsOrthonormal() = false, want true", test.m)
		}
		if d := test.m.Det(); math.Abs(d-1) > 1e-15 {
			t.Errorf("%v.Det() = %v, want 1", test.m, d)
		}
	}
}

func TestIsOrthonormal(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		m := RotationX(r.Float64() * 7).Mul(RotationY(r.Float64() * 7)).Mul(RotationZ(r.Float64() * 7))
		if !m.IsOrthonormal(1e-12) {
			t.Errorf("%v.IsOrthonormal() = false, want true", m)
		}
		if !m.Transpose().Mul(m).ApproxEqual(IdentityMatrix(), 1e-12) {
			t.Errorf("mᵀm != I for %v", m)
		}
	}
	scaled := MatrixFromCols(Vector{2, 0, 0}, Vector{0, 1, 0}, Vector{0, 0, 1})
	if scaled.IsOrthonormal(1e-9) {
		t.Errorf("%v.IsOrthonormal() = true, want false", scaled)
	}
	sheared := MatrixFromCols(Vector{1, 0, 0}, Vector{0.6, 0.8, 0}, Vector{0, 0, 1})
	if sheared.IsOrthonormal(1e-9) {
		t.Errorf("%v.IsOrthonormal() = true, want false", sheared)
	}
}
