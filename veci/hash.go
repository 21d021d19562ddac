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

// hashConstants are the per-type multipliers and addends of Hash and
// HashWide. Lanes past the width of the type are unused.
type hashConstants struct {
	mul     [4]uint64
	add     uint64
	wideMul [4]uint64
	wideAdd [4]uint64
}

// mix folds the high half of x into the low half and multiplies by m.
func mix(x, m uint64) uint64 {
	return (x ^ x>>32) * m
}

// hashWideColumns computes HashWide for every row of c with the constants h.
func hashWideColumns[S Scalar](c *Columns[S], width int, h *hashConstants) (*Columns[uint64], error) {
	if c.Width() != width {
		return nil, widthError(width, c.Width())
	}
	out := NewColumns[uint64](width, c.Len())
	scratch := make([]uint64, c.Len())
	for i := 0; i < width; i++ {
		for j, x := range c.lanes[i] {
			scratch[j] = uint64(x)
		}
		dst := make([]uint64, c.Len())
		HashWideBatch(scratch, h.wideMul[i], h.wideAdd[i], dst)
		out.lanes[i] = dst
	}
	return out, nil
}
