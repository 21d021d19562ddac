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
	"github.com/akhenakh/vecmath/r3"
)

// Quaternions holds a set of quaternions in SoA layout, one slice per
// component.
type Quaternions struct {
	X, Y, Z, W []float64
}

// NewQuaternions returns n zero quaternions.
func NewQuaternions(n int) *Quaternions {
	return &Quaternions{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
		W: make([]float64, n),
	}
}

// QuaternionsOf transposes qs into SoA layout.
func QuaternionsOf(qs []Quaternion) *Quaternions {
	s := NewQuaternions(len(qs))
	for i, q := range qs {
		s.X[i], s.Y[i], s.Z[i], s.W[i] = q.Value.X, q.Value.Y, q.Value.Z, q.Value.W
	}
	return s
}

// Len returns the number of quaternions.
func (s *Quaternions) Len() int { return len(s.X) }

// At returns quaternion i.
func (s *Quaternions) At(i int) Quaternion {
	return New(s.X[i], s.Y[i], s.Z[i], s.W[i])
}

// Normalize scales every quaternion to unit norm in place, mapping zero
// quaternions to the identity like Quaternion.Normalize.
func (s *Quaternions) Normalize() {
	BaseNormalizeBatch(s.X, s.Y, s.Z, s.W)
}

// FromAxisAngles returns the rotations by angles[i] about axes[i], with the
// same conventions as FromAxisAngle.
func FromAxisAngles(axes *r3.Points, angles []float64) *Quaternions {
	s := NewQuaternions(min(axes.Len(), len(angles)))
	BaseFromAxisAnglesBatch(axes.X, axes.Y, axes.Z, angles, s.X, s.Y, s.Z, s.W)
	return s
}

// RotateBatch applies q to every point of src and stores the results in dst,
// which may alias src. q must be a unit quaternion.
func (q Quaternion) RotateBatch(src, dst *r3.Points) {
	q.Matrix().ApplyBatch(src, dst)
}
