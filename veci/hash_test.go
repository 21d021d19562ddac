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
	"math"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	a := NewLong3(1, 2, 3)
	b := NewLong3(1, 2, 3)
	if a.Hash() != b.Hash() {
		t.Errorf("%v.Hash() = %#x, %v.Hash() = %#x, want equal", a, a.Hash(), b, b.Hash())
	}
	if a.HashWide() != b.HashWide() {
		t.Errorf("%v.HashWide() = %v, %v.HashWide() = %v, want equal", a, a.HashWide(), b, b.HashWide())
	}
}

func TestHashSensitiveToEveryLane(t *testing.T) {
	base := NewULong4(10, 20, 30, 40)
	h := base.Hash()
	for i := 0; i < 4; i++ {
		v := base
		x, _ := v.Index(i)
		if err := v.SetIndex(i, x+1); err != nil {
			t.Fatal(err)
		}
		if v.Hash() == h {
			t.Errorf("changing lane %d of %v did not change Hash()", i, base)
		}
		if v.HashWide() == base.HashWide() {
			t.Errorf("changing lane %d of %v did not change HashWide()", i, base)
		}
	}
	// Lane order matters.
	if got := base.Swizzle4(Y, X, Z, W).Hash(); got == h {
		t.Errorf("swapping lanes of %v did not change Hash()", base)
	}
}

func TestHashUsesHighBits(t *testing.T) {
	a := NewLong2(1<<40, 0)
	b := NewLong2(1<<41, 0)
	if a.Hash() == b.Hash() {
		t.Errorf("Hash() of %v and %v collide", a, b)
	}
}

func TestHashSignedMatchesBitPattern(t *testing.T) {
	// Hash depends on the bit pattern of each lane, so a signed vector and
	// its unsigned reinterpretation differ only through the type constants.
	v := NewLong2(-1, math.MinInt64)
	u := v.ULong2()
	if mix(uint64(v.X), 3) != mix(u.X, 3) {
		t.Errorf("mix differs between %v and %v", v, u)
	}
	if v.Hash() == u.Hash() {
		t.Errorf("%v.Hash() == %v.Hash(), want per-type constants", v, u)
	}
}

func TestHashWideCombine(t *testing.T) {
	vs := []Long3{
		NewLong3(1, 2, 3),
		NewLong3(-4, 5, -6),
		NewLong3(7, -8, 9),
	}
	var acc ULong3
	for _, v := range vs {
		acc = acc.Add(v.HashWide())
	}
	// Summing is order independent.
	var rev ULong3
	for i := len(vs) - 1; i >= 0; i-- {
		rev = rev.Add(vs[i].HashWide())
	}
	if acc.Hash() != rev.Hash() {
		t.Errorf("combined wide hash depends on order: %#x vs %#x", acc.Hash(), rev.Hash())
	}

	other := []Long3{vs[0], vs[1], NewLong3(7, -8, 10)}
	var acc2 ULong3
	for _, v := range other {
		acc2 = acc2.Add(v.HashWide())
	}
	if acc.Hash() == acc2.Hash() {
		t.Errorf("combined wide hashes of different sets collide: %#x", acc.Hash())
	}
}

func TestHashWideColumns(t *testing.T) {
	vs := []Long4{
		NewLong4(1, 2, 3, 4),
		NewLong4(math.MinInt64, -1, 0, math.MaxInt64),
		NewLong4(1<<33, -(1 << 35), 17, -17),
		NewLong4(5, 6, 7, 8),
		NewLong4(9, 10, 11, 12),
		NewLong4(-9, -10, -11, -12),
	}
	got, err := HashWideLong4Columns(ColumnsOf[int64](vs))
	if err != nil {
		t.Fatalf("HashWideLong4Columns: %v", err)
	}
	if got.Len() != len(vs) {
		t.Fatalf("HashWideLong4Columns returned %d rows, want %d", got.Len(), len(vs))
	}
	for i, v := range vs {
		want := v.HashWide()
		row := got.Row(i)
		if r := NewULong4(row[0], row[1], row[2], row[3]); r != want {
			t.Errorf("row %d = %v, want %v", i, r, want)
		}
	}

	if _, err := HashWideLong3Columns(ColumnsOf[int64](vs)); err == nil {
		t.Error("HashWideLong3Columns of a 4-wide column set succeeded, want error")
	}
}
