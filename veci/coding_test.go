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
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestVectorEncodeDecode(t *testing.T) {
	l2 := NewLong2(-1, math.MaxInt64)
	l3 := NewLong3(math.MinInt64, 0, 42)
	l4 := NewLong4(1, -2, 3, -4)
	u2 := NewULong2(math.MaxUint64, 0)
	u3 := NewULong3(1, 1<<40, 3)
	u4 := NewULong4(0, 1, 127, 128)

	// Several values share one stream.
	var buf bytes.Buffer
	for _, v := range []interface{ Encode(io.Writer) error }{l2, l3, l4, u2, u3, u4} {
		if err := v.Encode(&buf); err != nil {
			t.Fatalf("%v.Encode: %v", v, err)
		}
	}

	r := bytes.NewReader(buf.Bytes())
	var (
		gl2 Long2
		gl3 Long3
		gl4 Long4
		gu2 ULong2
		gu3 ULong3
		gu4 ULong4
	)
	for _, v := range []interface{ Decode(io.Reader) error }{&gl2, &gl3, &gl4, &gu2, &gu3, &gu4} {
		if err := v.Decode(r); err != nil {
			t.Fatalf("Decode: %v", err)
		}
	}
	if gl2 != l2 || gl3 != l3 || gl4 != l4 {
		t.Errorf("signed round trip = %v %v %v, want %v %v %v", gl2, gl3, gl4, l2, l3, l4)
	}
	if gu2 != u2 || gu3 != u3 || gu4 != u4 {
		t.Errorf("unsigned round trip = %v %v %v, want %v %v %v", gu2, gu3, gu4, u2, u3, u4)
	}
	if r.Len() != 0 {
		t.Errorf("%d bytes left after decoding, want 0", r.Len())
	}
}

func TestVectorDecodeErrors(t *testing.T) {
	var v Long3
	if err := v.Decode(bytes.NewReader([]byte{encodingVersion, 2})); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Decode of truncated input error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if err := v.Decode(bytes.NewReader([]byte{encodingVersion + 1, 0, 0, 0})); err == nil {
		t.Error("Decode of unknown version succeeded, want error")
	}
	want := NewLong3(1, 2, 3)
	v = want
	if err := v.Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode of empty input succeeded, want error")
	}
	if v != want {
		t.Errorf("failed Decode modified the vector: %v, want %v", v, want)
	}
}
