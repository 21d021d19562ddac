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

// Package r4 implements a vector of four float64 lanes, the storage of
// quaternions, together with its bit-level view as a veci.ULong4.
package r4

import (
	"fmt"
	"math"

	"github.com/akhenakh/vecmath/veci"
)

// Vector represents a point in ℝ⁴.
type Vector struct {
	X, Y, Z, W float64
}

// FromBits returns the vector whose lanes have the IEEE-754 bit patterns of
// the lanes of b.
func FromBits(b veci.ULong4) Vector {
	return Vector{
		math.Float64frombits(b.X),
		math.Float64frombits(b.Y),
		math.Float64frombits(b.Z),
		math.Float64frombits(b.W),
	}
}

// Bits returns the IEEE-754 bit patterns of the lanes of v.
func (v Vector) Bits() veci.ULong4 {
	return veci.NewULong4(
		math.Float64bits(v.X),
		math.Float64bits(v.Y),
		math.Float64bits(v.Z),
		math.Float64bits(v.W),
	)
}

// FromLong4 converts an integer vector to a real one.
func FromLong4(v veci.Long4) Vector {
	return Vector{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

// Long4 truncates v toward zero.
func (v Vector) Long4() veci.Long4 {
	return veci.NewLong4(int64(v.X), int64(v.Y), int64(v.Z), int64(v.W))
}

// ApproxEqual reports whether every lane of v and ov differs by at most eps.
func (v Vector) ApproxEqual(ov Vector, eps float64) bool {
	return math.Abs(v.X-ov.X) <= eps && math.Abs(v.Y-ov.Y) <= eps &&
		math.Abs(v.Z-ov.Z) <= eps && math.Abs(v.W-ov.W) <= eps
}

func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Add returns v + ov.
func (v Vector) Add(ov Vector) Vector {
	return Vector{v.X + ov.X, v.Y + ov.Y, v.Z + ov.Z, v.W + ov.W}
}

// Sub returns v - ov.
func (v Vector) Sub(ov Vector) Vector {
	return Vector{v.X - ov.X, v.Y - ov.Y, v.Z - ov.Z, v.W - ov.W}
}

// Mul returns v scaled by m.
func (v Vector) Mul(m float64) Vector {
	return Vector{m * v.X, m * v.Y, m * v.Z, m * v.W}
}

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the dot product of v and ov.
func (v Vector) Dot(ov Vector) float64 {
	return v.X*ov.X + v.Y*ov.Y + v.Z*ov.Z + v.W*ov.W
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Norm2 returns the square of the norm.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector) Normalize() Vector {
	n2 := v.Norm2()
	if n2 == 0 {
		return v
	}
	return v.Mul(1 / math.Sqrt(n2))
}
