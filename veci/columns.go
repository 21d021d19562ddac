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

package veci

import "fmt"

// Vector is implemented by every vector type of this package.
type Vector[S Scalar] interface {
	lanes() []S
}

// Columns stores vectors of one width in structure-of-arrays layout, one
// slice per lane. This is the layout the batch kernels work on.
type Columns[S Scalar] struct {
	lanes [][]S
}

// NewColumns returns an empty column set for vectors of the given width,
// with room for capacity rows. It panics unless width is 2, 3 or 4.
func NewColumns[S Scalar](width, capacity int) *Columns[S] {
	if width < 2 || width > 4 {
		panic(fmt.Sprintf("veci: invalid column width %d", width))
	}
	c := &Columns[S]{lanes: make([][]S, width)}
	for i := range c.lanes {
		c.lanes[i] = make([]S, 0, capacity)
	}
	return c
}

// ColumnsOf transposes vs into a column set.
func ColumnsOf[S Scalar, V Vector[S]](vs []V) *Columns[S] {
	var zero V
	c := NewColumns[S](len(zero.lanes()), len(vs))
	for _, v := range vs {
		for i, x := range v.lanes() {
			c.lanes[i] = append(c.lanes[i], x)
		}
	}
	return c
}

func widthError(want, got int) error {
	return fmt.Errorf("veci: column width %d, want %d", got, want)
}

// Width returns the number of lanes of the stored vectors.
func (c *Columns[S]) Width() int {
	return len(c.lanes)
}

// Len returns the number of stored vectors.
func (c *Columns[S]) Len() int {
	return len(c.lanes[0])
}

// Lane returns the slice holding lane l of every vector. The slice aliases
// the column storage.
func (c *Columns[S]) Lane(l Lane) []S {
	if int(l) < 0 || int(l) >= len(c.lanes) {
		panic(laneError(fmt.Sprintf("Columns[%d]", len(c.lanes)), int(l)))
	}
	return c.lanes[l]
}

// Append adds one vector given by its lanes.
func (c *Columns[S]) Append(lanes ...S) error {
	if len(lanes) != len(c.lanes) {
		return widthError(len(c.lanes), len(lanes))
	}
	for i, x := range lanes {
		c.lanes[i] = append(c.lanes[i], x)
	}
	return nil
}

// Row returns the lanes of vector i.
func (c *Columns[S]) Row(i int) []S {
	row := make([]S, len(c.lanes))
	for l := range c.lanes {
		row[l] = c.lanes[l][i]
	}
	return row
}

type batchKernel[S Scalar] func(a, b, dst []S)

func (c *Columns[S]) apply(o *Columns[S], kernel batchKernel[S]) (*Columns[S], error) {
	if o.Width() != c.Width() {
		return nil, widthError(c.Width(), o.Width())
	}
	if o.Len() != c.Len() {
		return nil, fmt.Errorf("veci: column length %d, want %d", o.Len(), c.Len())
	}
	out := &Columns[S]{lanes: make([][]S, c.Width())}
	for i := range c.lanes {
		out.lanes[i] = make([]S, c.Len())
		kernel(c.lanes[i], o.lanes[i], out.lanes[i])
	}
	return out, nil
}

// Add returns the rowwise sum of c and o.
func (c *Columns[S]) Add(o *Columns[S]) (*Columns[S], error) {
	return c.apply(o, BaseAddBatch[S])
}

// Sub returns the rowwise difference of c and o.
func (c *Columns[S]) Sub(o *Columns[S]) (*Columns[S], error) {
	return c.apply(o, BaseSubBatch[S])
}

// Mul returns the rowwise product of c and o.
func (c *Columns[S]) Mul(o *Columns[S]) (*Columns[S], error) {
	return c.apply(o, BaseMulBatch[S])
}

// Xor returns the rowwise bitwise XOR of c and o.
func (c *Columns[S]) Xor(o *Columns[S]) (*Columns[S], error) {
	return c.apply(o, BaseXorBatch[S])
}

// Bounds returns the lanewise minimum and maximum over all rows: the
// corners of the bounding box of the stored vectors. Both are nil when c is
// empty.
func (c *Columns[S]) Bounds() (lo, hi []S) {
	if c.Len() == 0 {
		return nil, nil
	}
	lo = make([]S, c.Width())
	hi = make([]S, c.Width())
	for i, lane := range c.lanes {
		lo[i], hi[i] = BaseMinMaxBatch(lane)
	}
	return lo, hi
}

// Sums returns the wrapping sum of every lane over all rows.
func (c *Columns[S]) Sums() []S {
	sums := make([]S, c.Width())
	for i, lane := range c.lanes {
		sums[i] = BaseSumBatch(lane)
	}
	return sums
}
