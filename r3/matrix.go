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
	"fmt"
	"math"
)

// Matrix is a 3x3 matrix of float64 stored as its three columns.
// Applied to a vector p it computes U*p.X + V*p.Y + W*p.Z.
type Matrix struct {
	U, V, W Vector
}

// IdentityMatrix returns the 3x3 identity matrix.
func IdentityMatrix() Matrix {
	return Matrix{
		U: Vector{1, 0, 0},
		V: Vector{0, 1, 0},
		W: Vector{0, 0, 1},
	}
}

// MatrixFromCols returns the matrix with the given columns.
func MatrixFromCols(u, v, w Vector) Matrix {
	return Matrix{U: u, V: v, W: w}
}

// MatrixFromRows returns the matrix with the given rows.
func MatrixFromRows(r0, r1, r2 Vector) Matrix {
	return Matrix{
		U: Vector{r0.X, r1.X, r2.X},
		V: Vector{r0.Y, r1.Y, r2.Y},
		W: Vector{r0.Z, r1.Z, r2.Z},
	}
}

// RotationX returns the matrix rotating by angle radians about the X axis.
func RotationX(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return MatrixFromCols(Vector{1, 0, 0}, Vector{0, c, s}, Vector{0, -s, c})
}

// RotationY returns the matrix rotating by angle radians about the Y axis.
func RotationY(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return MatrixFromCols(Vector{c, 0, -s}, Vector{0, 1, 0}, Vector{s, 0, c})
}

// RotationZ returns the matrix rotating by angle radians about the Z axis.
func RotationZ(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return MatrixFromCols(Vector{c, s, 0}, Vector{-s, c, 0}, Vector{0, 0, 1})
}

// Col returns column i (0, 1 or 2) of m.
func (m Matrix) Col(i int) Vector {
	switch i {
	case 0:
		return m.U
	case 1:
		return m.V
	case 2:
		return m.W
	}
	panic(fmt.Sprintf("r3: matrix column %d out of range", i))
}

// Row returns row i (0, 1 or 2) of m.
func (m Matrix) Row(i int) Vector {
	switch i {
	case 0:
		return Vector{m.U.X, m.V.X, m.W.X}
	case 1:
		return Vector{m.U.Y, m.V.Y, m.W.Y}
	case 2:
		return Vector{m.U.Z, m.V.Z, m.W.Z}
	}
	panic(fmt.Sprintf("r3: matrix row %d out of range", i))
}

// Apply returns the product m * p.
func (m Matrix) Apply(p Vector) Vector {
	return m.U.Mul(p.X).Add(m.V.Mul(p.Y)).Add(m.W.Mul(p.Z))
}

// Mul returns the matrix product m * o, which applies o first.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{U: m.Apply(o.U), V: m.Apply(o.V), W: m.Apply(o.W)}
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return MatrixFromRows(m.U, m.V, m.W)
}

// Det returns the determinant of m.
func (m Matrix) Det() float64 {
	return m.U.Dot(m.V.Cross(m.W))
}

// IsOrthonormal reports whether the columns of m are unit length and
// mutually perpendicular within eps.
func (m Matrix) IsOrthonormal(eps float64) bool {
	cols := [3]Vector{m.U, m.V, m.W}
	for i := range cols {
		if math.Abs(cols[i].Norm2()-1) > eps {
			return false
		}
		for j := i + 1; j < len(cols); j++ {
			if math.Abs(cols[i].Dot(cols[j])) > eps {
				return false
			}
		}
	}
	return true
}

// ApproxEqual reports whether every element of m and o differs by at most
// eps.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	a := [3]Vector{m.U, m.V, m.W}
	b := [3]Vector{o.U, o.V, o.W}
	for i := range a {
		d := a[i].Sub(b[i]).Abs()
		if d.X > eps || d.Y > eps || d.Z > eps {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	return fmt.Sprintf("[ %.4f %.4f %.4f ] [ %.4f %.4f %.4f ] [ %.4f %.4f %.4f ]",
		r0.X, r0.Y, r0.Z, r1.X, r1.Y, r1.Z, r2.X, r2.Y, r2.Z)
}
