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

import (
	"fmt"
	"io"

	"github.com/akhenakh/vecmath/internal/coding"
)

const encodingVersion = 1

func checkVersion(d *coding.Decoder) error {
	v := d.ReadUint8()
	if err := d.Err(); err != nil {
		return err
	}
	if v != encodingVersion {
		return fmt.Errorf("veci: unsupported encoding version %d", v)
	}
	return nil
}

// encodeLongs writes signed lanes as zigzag varints.
func encodeLongs(w io.Writer, lanes []int64) error {
	e := coding.NewEncoder(w)
	e.WriteUint8(encodingVersion)
	for _, x := range lanes {
		e.WriteVarint(x)
	}
	return e.Err()
}

func decodeLongs(r io.Reader, n int) ([]int64, error) {
	d := coding.NewDecoder(r)
	if err := checkVersion(d); err != nil {
		return nil, err
	}
	lanes := make([]int64, n)
	for i := range lanes {
		lanes[i] = d.ReadVarint()
	}
	return lanes, d.Err()
}

// encodeULongs writes unsigned lanes as uvarints.
func encodeULongs(w io.Writer, lanes []uint64) error {
	e := coding.NewEncoder(w)
	e.WriteUint8(encodingVersion)
	for _, x := range lanes {
		e.WriteUvarint(x)
	}
	return e.Err()
}

func decodeULongs(r io.Reader, n int) ([]uint64, error) {
	d := coding.NewDecoder(r)
	if err := checkVersion(d); err != nil {
		return nil, err
	}
	lanes := make([]uint64, n)
	for i := range lanes {
		lanes[i] = d.ReadUvarint()
	}
	return lanes, d.Err()
}

func isSigned[S Scalar]() bool {
	var zero S
	return ^zero < 0
}

// Encode writes the column set to w. Each lane is stored as a packed column
// at the smallest byte width that holds its largest value; signed lanes are
// zigzag encoded first so small negative values stay narrow.
func (c *Columns[S]) Encode(w io.Writer) error {
	e := coding.NewEncoder(w)
	e.WriteUint8(encodingVersion)
	e.WriteUvarint(uint64(c.Width()))

	packed := make([]uint64, c.Len())
	for _, lane := range c.lanes {
		if isSigned[S]() {
			signed := make([]int64, len(lane))
			for i, x := range lane {
				signed[i] = int64(x)
			}
			ZigZagEncodeBatch(signed, packed)
		} else {
			for i, x := range lane {
				packed[i] = uint64(x)
			}
		}
		coding.EncodeUintColumn(packed, e)
	}
	return e.Err()
}

// DecodeColumns reads a column set written by Columns.Encode. r should
// implement io.ByteReader when more data follows the columns in the stream.
func DecodeColumns[S Scalar](r io.Reader) (*Columns[S], error) {
	d := coding.NewDecoder(r)
	if err := checkVersion(d); err != nil {
		return nil, err
	}
	width := d.ReadUvarint()
	if err := d.Err(); err != nil {
		return nil, err
	}
	if width < 2 || width > 4 {
		return nil, fmt.Errorf("veci: invalid encoded column width %d", width)
	}

	c := &Columns[S]{lanes: make([][]S, width)}
	for l := range c.lanes {
		packed, err := coding.DecodeUintColumn(d)
		if err != nil {
			return nil, err
		}
		if l > 0 && len(packed) != len(c.lanes[0]) {
			return nil, fmt.Errorf("veci: lane %d has %d rows, want %d", l, len(packed), len(c.lanes[0]))
		}
		lane := make([]S, len(packed))
		if isSigned[S]() {
			signed := make([]int64, len(packed))
			ZigZagDecodeBatch(packed, signed)
			for i, x := range signed {
				lane[i] = S(x)
			}
		} else {
			for i, x := range packed {
				lane[i] = S(x)
			}
		}
		c.lanes[l] = lane
	}
	return c, nil
}
