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
	"fmt"
	"io"

	"github.com/akhenakh/vecmath/internal/coding"
	"github.com/akhenakh/vecmath/r4"
)

const encodingVersion = 1

// Encode writes q to w as a version byte followed by the x, y, z and w
// components as little-endian IEEE-754 doubles.
func (q Quaternion) Encode(w io.Writer) error {
	e := coding.NewEncoder(w)
	e.WriteUint8(encodingVersion)
	e.WriteFloat64(q.Value.X)
	e.WriteFloat64(q.Value.Y)
	e.WriteFloat64(q.Value.Z)
	e.WriteFloat64(q.Value.W)
	return e.Err()
}

// Decode reads a quaternion written by Encode. q is unchanged on error. To
// decode several values from one stream, r should implement io.ByteReader;
// other readers are buffered and may consume bytes past the value.
func (q *Quaternion) Decode(r io.Reader) error {
	d := coding.NewDecoder(r)
	version := d.ReadUint8()
	if err := d.Err(); err != nil {
		return err
	}
	if version != encodingVersion {
		return fmt.Errorf("quat: unsupported encoding version %d", version)
	}
	v := r4.Vector{
		X: d.ReadFloat64(),
		Y: d.ReadFloat64(),
		Z: d.ReadFloat64(),
		W: d.ReadFloat64(),
	}
	if err := d.Err(); err != nil {
		return err
	}
	q.Value = v
	return nil
}
