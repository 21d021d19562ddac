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

// Package quat implements double-precision quaternions for representing
// rotations in ℝ³.
//
// A quaternion is stored as an r4.Vector (x, y, z, w) where (x, y, z) is the
// vector part and w the scalar part. Rotations are represented by unit
// quaternions; q and -q represent the same rotation.
package quat

import (
	"fmt"
	"math"

	"github.com/akhenakh/vecmath/r3"
	"github.com/akhenakh/vecmath/r4"
)

// Quaternion is a quaternion x*i + y*j + z*k + w.
type Quaternion struct {
	Value r4.Vector
}

// Identity returns the quaternion of the identity rotation.
func Identity() Quaternion {
	return Quaternion{r4.Vector{W: 1}}
}

// New returns the quaternion x*i + y*j + z*k + w.
func New(x, y, z, w float64) Quaternion {
	return Quaternion{r4.Vector{X: x, Y: y, Z: z, W: w}}
}

// FromAxisAngle returns the rotation by angle radians about axis, following
// the right-hand rule. The axis need not be normalized; a zero axis gives the
// identity.
func FromAxisAngle(axis r3.Vector, angle float64) Quaternion {
	if axis.Norm2() == 0 {
		return Identity()
	}
	s, c := math.Sincos(angle / 2)
	a := axis.Normalize().Mul(s)
	return New(a.X, a.Y, a.Z, c)
}

// FromEuler returns the rotation by x radians about the X axis, then y about
// the Y axis, then z about the Z axis, all about fixed axes. Its matrix is
// RotationZ(z) * RotationY(y) * RotationX(x).
func FromEuler(x, y, z float64) Quaternion {
	sx, cx := math.Sincos(x / 2)
	sy, cy := math.Sincos(y / 2)
	sz, cz := math.Sincos(z / 2)
	return New(
		sx*cy*cz-cx*sy*sz,
		cx*sy*cz+sx*cy*sz,
		cx*cy*sz-sx*sy*cz,
		cx*cy*cz+sx*sy*sz,
	)
}

// X returns the i component.
func (q Quaternion) X() float64 { return q.Value.X }

// Y returns the j component.
func (q Quaternion) Y() float64 { return q.Value.Y }

// Z returns the k component.
func (q Quaternion) Z() float64 { return q.Value.Z }

// W returns the scalar component.
func (q Quaternion) W() float64 { return q.Value.W }

// Vector returns the vector part (x, y, z).
func (q Quaternion) Vector() r3.Vector {
	return r3.Vector{X: q.Value.X, Y: q.Value.Y, Z: q.Value.Z}
}

// Norm returns the norm of q.
func (q Quaternion) Norm() float64 { return q.Value.Norm() }

// Norm2 returns the squared norm of q.
func (q Quaternion) Norm2() float64 { return q.Value.Norm2() }

// Dot returns the four dimensional dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float64 { return q.Value.Dot(o.Value) }

// Normalize returns q scaled to unit norm. The zero quaternion normalizes to
// the identity.
func (q Quaternion) Normalize() Quaternion {
	if q.Norm2() == 0 {
		return Identity()
	}
	return Quaternion{q.Value.Normalize()}
}

// IsUnit reports whether the norm of q is within eps of 1.
func (q Quaternion) IsUnit(eps float64) bool {
	return math.Abs(q.Norm2()-1) <= eps
}

// Neg returns -q, which represents the same rotation as q.
func (q Quaternion) Neg() Quaternion { return Quaternion{q.Value.Neg()} }

// Conjugate returns (-x, -y, -z, w). For unit quaternions this is the
// inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return New(-q.Value.X, -q.Value.Y, -q.Value.Z, q.Value.W)
}

// Inverse returns the multiplicative inverse of q. The zero quaternion has
// no inverse and is returned unchanged.
func (q Quaternion) Inverse() Quaternion {
	n2 := q.Norm2()
	if n2 == 0 {
		return q
	}
	return Quaternion{q.Conjugate().Value.Mul(1 / n2)}
}

// Mul returns the Hamilton product q * o. As a rotation it applies o first,
// then q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	a, b := q.Value, o.Value
	return New(
		a.W*b.X+a.X*b.W+a.Y*b.Z-a.Z*b.Y,
		a.W*b.Y-a.X*b.Z+a.Y*b.W+a.Z*b.X,
		a.W*b.Z+a.X*b.Y-a.Y*b.X+a.Z*b.W,
		a.W*b.W-a.X*b.X-a.Y*b.Y-a.Z*b.Z,
	)
}

// Rotate applies the rotation q to p. q must be a unit quaternion.
func (q Quaternion) Rotate(p r3.Vector) r3.Vector {
	// p' = p + 2w(v x p) + 2v x (v x p)
	v := q.Vector()
	t := v.Cross(p).Mul(2)
	return p.Add(t.Mul(q.Value.W)).Add(v.Cross(t))
}

// AxisAngle returns the rotation axis and angle in [0, π] of the unit
// quaternion q. The identity returns the X axis and a zero angle.
func (q Quaternion) AxisAngle() (axis r3.Vector, angle float64) {
	if q.Value.W < 0 {
		q = q.Neg()
	}
	v := q.Vector()
	s := v.Norm()
	if s == 0 {
		return r3.Vector{X: 1}, 0
	}
	return v.Mul(1 / s), 2 * math.Atan2(s, q.Value.W)
}

// Angle returns the angle in [0, π] of the rotation taking q to o. Both must
// be unit quaternions.
func (q Quaternion) Angle(o Quaternion) float64 {
	d := math.Min(math.Abs(q.Dot(o)), 1)
	return 2 * math.Acos(d)
}

// Nlerp interpolates linearly between q and o along the shorter arc and
// normalizes the result. t = 0 gives q and t = 1 gives o.
func (q Quaternion) Nlerp(o Quaternion, t float64) Quaternion {
	if q.Dot(o) < 0 {
		o = o.Neg()
	}
	return Quaternion{q.Value.Add(o.Value.Sub(q.Value).Mul(t))}.Normalize()
}

// Slerp interpolates between the unit quaternions q and o along the shorter
// great arc with constant angular velocity. Nearly parallel inputs fall back
// to Nlerp.
func (q Quaternion) Slerp(o Quaternion, t float64) Quaternion {
	const parallel = 1 - 1e-9
	d := q.Dot(o)
	if d < 0 {
		o, d = o.Neg(), -d
	}
	if d > parallel {
		return q.Nlerp(o, t)
	}
	theta := math.Acos(d)
	sin := math.Sin(theta)
	a := math.Sin((1-t)*theta) / sin
	b := math.Sin(t*theta) / sin
	return Quaternion{q.Value.Mul(a).Add(o.Value.Mul(b))}
}

// Equal reports whether q and o have equal components.
func (q Quaternion) Equal(o Quaternion) bool {
	return q.Value == o.Value
}

// ApproxEqual reports whether q and o represent the same rotation within
// eps per component, accepting either sign of o.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	return q.Value.ApproxEqual(o.Value, eps) || q.Value.ApproxEqual(o.Value.Neg(), eps)
}

// Hash returns a hash of the components of q consistent with Equal.
func (q Quaternion) Hash() uint64 {
	// Adding zero maps -0 to +0 so Equal values hash alike.
	v := q.Value.Add(r4.Vector{})
	return v.Bits().Hash()
}

func (q Quaternion) String() string {
	v := q.Value
	return fmt.Sprintf("Quaternion(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
