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

package coding

import (
	"fmt"
	"math/bits"
)

// MaxColumnBytes bounds the payload of a decoded column.
const MaxColumnBytes = 1 << 30

// EncodeUintColumn writes values using a fixed number of bytes per value,
// the smallest that holds the largest value. The header is the uvarint
// (len(values)*8) | (bytesPerValue-1).
func EncodeUintColumn(values []uint64, e *Encoder) {
	if len(values) == 0 {
		e.WriteUvarint(0)
		return
	}

	var maxVal uint64
	for _, x := range values {
		maxVal = max(maxVal, x)
	}
	width := 1
	if maxVal > 0 {
		width = (bits.Len64(maxVal) + 7) / 8
	}

	e.WriteUvarint(uint64(len(values))*8 | uint64(width-1))
	for _, x := range values {
		for i := 0; i < width; i++ {
			e.WriteUint8(uint8(x))
			x >>= 8
		}
	}
}

// DecodeUintColumn reads a column written by EncodeUintColumn.
func DecodeUintColumn(d *Decoder) ([]uint64, error) {
	header := d.ReadUvarint()
	if err := d.Err(); err != nil {
		return nil, err
	}
	size := header / 8
	width := int(header&7) + 1

	if size*uint64(width) > MaxColumnBytes {
		return nil, fmt.Errorf("uint column too large: %d values of %d bytes", size, width)
	}

	values := make([]uint64, size)
	for i := range values {
		var x uint64
		for b := 0; b < width; b++ {
			x |= uint64(d.ReadUint8()) << (8 * b)
		}
		values[i] = x
	}
	return values, d.Err()
}
