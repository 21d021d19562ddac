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

// Points holds a set of vectors in SoA layout, one slice per component,
// the layout the batch kernels operate on.
type Points struct {
	X, Y, Z []float64
}

// PointsOf transposes vs into SoA layout.
func PointsOf(vs []Vector) *Points {
	p := NewPoints(len(vs))
	for i, v := range vs {
		p.X[i], p.Y[i], p.Z[i] = v.X, v.Y, v.Z
	}
	return p
}

// NewPoints returns n zero vectors.
func NewPoints(n int) *Points {
	return &Points{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
}

// Len returns the number of vectors.
func (p *Points) Len() int { return len(p.X) }

// At returns vector i.
func (p *Points) At(i int) Vector { return Vector{p.X[i], p.Y[i], p.Z[i]} }

// Vectors returns the points as a slice of vectors.
func (p *Points) Vectors() []Vector {
	vs := make([]Vector, p.Len())
	for i := range vs {
		vs[i] = p.At(i)
	}
	return vs
}

// ApplyBatch writes m * src[i] to dst[i]. dst may alias src.
func (m Matrix) ApplyBatch(src, dst *Points) {
	BaseApplyBatch(
		m.U.X, m.U.Y, m.U.Z,
		m.V.X, m.V.Y, m.V.Z,
		m.W.X, m.W.Y, m.W.Z,
		src.X, src.Y, src.Z,
		dst.X, dst.Y, dst.Z,
	)
}

// Cross returns the rowwise cross products p[i] x o[i].
func (p *Points) Cross(o *Points) *Points {
	out := NewPoints(min(p.Len(), o.Len()))
	BaseCrossBatch(p.X, p.Y, p.Z, o.X, o.Y, o.Z, out.X, out.Y, out.Z)
	return out
}

// Dots returns v · p[i] for every point.
func (p *Points) Dots(v Vector) []float64 {
	dst := make([]float64, p.Len())
	BaseDotConstBatch(v.X, v.Y, v.Z, p.X, p.Y, p.Z, dst)
	return dst
}

// MinDistance2 returns the smallest squared distance from v to any point,
// or +Inf if there are none.
func (p *Points) MinDistance2(v Vector) float64 {
	return BaseMinDistance2Batch(v.X, v.Y, v.Z, p.X, p.Y, p.Z)
}

// Sum returns the sum of all points.
func (p *Points) Sum() Vector {
	x, y, z := BaseSumBatch(p.X, p.Y, p.Z)
	return Vector{x, y, z}
}

// Centroid returns the mean of the points, or the zero vector when there are
// none.
func (p *Points) Centroid() Vector {
	if p.Len() == 0 {
		return Vector{}
	}
	return p.Sum().Mul(1 / float64(p.Len()))
}
