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

// Package coding implements the binary encoder and decoder shared by the
// vector and quaternion types. Both carry a sticky error: once a write or
// read fails every later call is a no-op and Err reports the first failure.
package coding

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Encoder writes values to an io.Writer.
type Encoder struct {
	w   io.Writer
	buf [binary.MaxVarintLen64]byte
	err error
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Err returns the first error encountered while writing.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

// WriteUint8 writes a single byte.
func (e *Encoder) WriteUint8(x uint8) {
	e.buf[0] = x
	e.write(e.buf[:1])
}

// WriteUvarint writes x as an unsigned varint.
func (e *Encoder) WriteUvarint(x uint64) {
	n := binary.PutUvarint(e.buf[:], x)
	e.write(e.buf[:n])
}

// WriteVarint writes x as a zigzag varint.
func (e *Encoder) WriteVarint(x int64) {
	n := binary.PutVarint(e.buf[:], x)
	e.write(e.buf[:n])
}

// WriteUint64 writes x as 8 little-endian bytes.
func (e *Encoder) WriteUint64(x uint64) {
	binary.LittleEndian.PutUint64(e.buf[:8], x)
	e.write(e.buf[:8])
}

// WriteFloat64 writes the IEEE-754 bits of x as 8 little-endian bytes.
func (e *Encoder) WriteFloat64(x float64) {
	e.WriteUint64(math.Float64bits(x))
}

// WriteBytes writes b verbatim.
func (e *Encoder) WriteBytes(b []byte) {
	e.write(b)
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Decoder reads values written by an Encoder.
type Decoder struct {
	r   byteReader
	buf [8]byte
	err error
}

// NewDecoder returns a Decoder reading from r. Readers that do not implement
// io.ByteReader are buffered, so decoding several values from one stream
// requires passing the same byte reader (a *bytes.Reader or *bufio.Reader).
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// Err returns the first error encountered while reading.
func (d *Decoder) Err() error {
	return d.err
}

// Fail records err as the decoder error unless one is already set.
func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Decoder) setErr(err error) {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	d.Fail(err)
}

// ReadUint8 reads a single byte.
func (d *Decoder) ReadUint8() uint8 {
	if d.err != nil {
		return 0
	}
	x, err := d.r.ReadByte()
	if err != nil {
		d.setErr(err)
		return 0
	}
	return x
}

// ReadUvarint reads an unsigned varint.
func (d *Decoder) ReadUvarint() uint64 {
	if d.err != nil {
		return 0
	}
	x, err := binary.ReadUvarint(d.r)
	if err != nil {
		d.setErr(err)
		return 0
	}
	return x
}

// ReadVarint reads a zigzag varint.
func (d *Decoder) ReadVarint() int64 {
	if d.err != nil {
		return 0
	}
	x, err := binary.ReadVarint(d.r)
	if err != nil {
		d.setErr(err)
		return 0
	}
	return x
}

// ReadUint64 reads 8 little-endian bytes.
func (d *Decoder) ReadUint64() uint64 {
	if d.err != nil {
		return 0
	}
	if _, err := io.ReadFull(d.r, d.buf[:8]); err != nil {
		d.setErr(err)
		return 0
	}
	return binary.LittleEndian.Uint64(d.buf[:8])
}

// ReadFloat64 reads a float64 written by WriteFloat64.
func (d *Decoder) ReadFloat64() float64 {
	return math.Float64frombits(d.ReadUint64())
}
