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
	"math"

	"github.com/akhenakh/vecmath/r3"
	"github.com/akhenakh/vecmath/r4"
	"github.com/akhenakh/vecmath/veci"
)

const signBit = 1 << 63

// smear returns all ones if the sign bit of bits is set and zero otherwise.
func smear(bits uint64) veci.ULong4 {
	return veci.Long4Splat(int64(bits)).Shr(63).ULong4()
}

// FromMatrix returns the unit quaternion of the rotation matrix m, whose
// columns are the images of the X, Y and Z axes. m must be orthonormal with
// determinant +1; other matrices give a meaningless result. Either sign of
// the quaternion may be returned.
//
// The conversion does not branch on the matrix entries. It picks the
// numerically stable formula from the signs of m00 and m11 ± m22, flipping
// float signs by xoring bit patterns and choosing lane orders with masks.
func FromMatrix(m r3.Matrix) Quaternion {
	u, v, w := m.U, m.V, m.W

	// t = m11 + m22 when m00 >= 0, m11 - m22 otherwise.
	uSign := math.Float64bits(u.X) & signBit
	t := v.Y + math.Float64frombits(math.Float64bits(w.Z)^uSign)

	uMask := smear(uSign)
	tMask := smear(math.Float64bits(t))

	flips := veci.NewULong4(0, signBit, signBit, signBit).
		Xor(uMask.And(veci.NewULong4(0, signBit, 0, signBit))).
		Xor(tMask.And(veci.NewULong4(signBit, signBit, signBit, 0)))

	// Each lane is 4*c*q_i where q_i runs over the quaternion components in
	// an order fixed by the two signs, and c is the dominant component.
	a := r4.Vector{X: 1 + math.Abs(u.X), Y: u.Y, Z: w.X, W: v.Z}
	b := r4.Vector{X: t, Y: v.X, Z: u.Z, W: w.Y}
	value := a.Add(r4.FromBits(b.Bits().Xor(flips))).Bits()

	// Restore (x, y, z, w) order.
	value = value.AndNot(uMask).Or(value.Swizzle4(veci.Z, veci.W, veci.X, veci.Y).And(uMask))
	value = value.Swizzle4(veci.W, veci.Z, veci.Y, veci.X).AndNot(tMask).Or(value.And(tMask))

	return Quaternion{r4.FromBits(value).Normalize()}
}

// Matrix returns the rotation matrix of the unit quaternion q.
func (q Quaternion) Matrix() r3.Matrix {
	x, y, z, w := q.Value.X, q.Value.Y, q.Value.Z, q.Value.W
	return r3.MatrixFromCols(
		r3.Vector{X: 1 - 2*(y*y+z*z), Y: 2 * (x*y + w*z), Z: 2 * (x*z - w*y)},
		r3.Vector{X: 2 * (x*y - w*z), Y: 1 - 2*(x*x+z*z), Z: 2 * (y*z + w*x)},
		r3.Vector{X: 2 * (x*z + w*y), Y: 2 * (y*z - w*x), Z: 1 - 2*(x*x+y*y)},
	)
}
