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
	"errors"
	"math"
	"testing"
)

func TestLong4Index(t *testing.T) {
	v := NewLong4(1, -2, 3, -4)
	for i, want := range []int64{1, -2, 3, -4} {
		got, err := v.Index(i)
		if err != nil {
			t.Errorf("%v.Index(%d) returned error %v", v, i, err)
		}
		if got != want {
			t.Errorf("%v.Index(%d) = %d, want %d", v, i, got, want)
		}
	}
	for _, i := range []int{-1, 4, 100} {
		if _, err := v.Index(i); !errors.Is(err, ErrLaneOutOfRange) {
			t.Errorf("%v.Index(%d) error = %v, want %v", v, i, err, ErrLaneOutOfRange)
		}
	}
}

func TestSetIndex(t *testing.T) {
	var v ULong3
	for i := 0; i < 3; i++ {
		if err := v.SetIndex(i, uint64(10*(i+1))); err != nil {
			t.Fatalf("SetIndex(%d) = %v", i, err)
		}
	}
	if want := NewULong3(10, 20, 30); v != want {
		t.Errorf("after SetIndex v = %v, want %v", v, want)
	}
	if err := v.SetIndex(3, 1); !errors.Is(err, ErrLaneOutOfRange) {
		t.Errorf("SetIndex(3) error = %v, want %v", err, ErrLaneOutOfRange)
	}
	var l2 Long2
	if err := l2.SetIndex(2, 1); !errors.Is(err, ErrLaneOutOfRange) {
		t.Errorf("Long2.SetIndex(2) error = %v, want %v", err, ErrLaneOutOfRange)
	}
}

func TestLong3Arithmetic(t *testing.T) {
	a := NewLong3(7, -9, 100)
	b := NewLong3(2, 4, -3)
	tests := []struct {
		name      string
		got, want Long3
	}{
		{"Add", a.Add(b), NewLong3(9, -5, 97)},
		{"Sub", a.Sub(b), NewLong3(5, -13, 103)},
		{"Mul", a.Mul(b), NewLong3(14, -36, -300)},
		// Go integer division truncates toward zero.
		{"Div", a.Div(b), NewLong3(3, -2, -33)},
		{"Mod", a.Mod(b), NewLong3(1, -1, 1)},
		{"AddScalar", a.AddScalar(1), NewLong3(8, -8, 101)},
		{"SubScalar", a.SubScalar(1), NewLong3(6, -10, 99)},
		{"MulScalar", a.MulScalar(-2), NewLong3(-14, 18, -200)},
		{"DivScalar", a.DivScalar(2), NewLong3(3, -4, 50)},
		{"ModScalar", a.ModScalar(2), NewLong3(1, -1, 0)},
		{"Neg", a.Neg(), NewLong3(-7, 9, -100)},
		{"Inc", a.Inc(), NewLong3(8, -8, 101)},
		{"Dec", a.Dec(), NewLong3(6, -10, 99)},
		{"Min", a.Min(b), NewLong3(2, -9, -3)},
		{"Max", a.Max(b), NewLong3(7, 4, 100)},
		{"Abs", a.Abs(), NewLong3(7, 9, 100)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}
	if got, want := a.Sum(), int64(98); got != want {
		t.Errorf("%v.Sum() = %d, want %d", a, got, want)
	}
	if got, want := a.Dot(b), int64(14-36-300); got != want {
		t.Errorf("%v.Dot(%v) = %d, want %d", a, b, got, want)
	}
}

func TestWraparound(t *testing.T) {
	max4 := Long4Splat(math.MaxInt64)
	if got, want := max4.Inc(), Long4Splat(math.MinInt64); got != want {
		t.Errorf("%v.Inc() = %v, want %v", max4, got, want)
	}
	if got, want := max4.Add(Long4Splat(2)), Long4Splat(math.MinInt64+1); got != want {
		t.Errorf("%v.Add(2) = %v, want %v", max4, got, want)
	}
	if got, want := ULong2Splat(0).Dec(), ULong2Splat(math.MaxUint64); got != want {
		t.Errorf("ULong2(0).Dec() = %v, want %v", got, want)
	}
	if got, want := ULong2Splat(1).Neg(), ULong2Splat(math.MaxUint64); got != want {
		t.Errorf("ULong2(1).Neg() = %v, want %v", got, want)
	}
	min2 := Long2Splat(math.MinInt64)
	if got := min2.Abs(); got != min2 {
		t.Errorf("%v.Abs() = %v, want %v", min2, got, min2)
	}
	if got := min2.Div(Long2Splat(-1)); got != min2 {
		t.Errorf("%v.Div(-1) = %v, want %v", min2, got, min2)
	}
}

func TestArithmeticProperties(t *testing.T) {
	a := NewULong4(math.MaxUint64, 3, 1<<63, 12345)
	b := NewULong4(2, math.MaxUint64-1, 1<<63, 99)
	c := NewULong4(77, 5, 1, math.MaxUint64)
	if a.Add(b) != b.Add(a) {
		t.Errorf("Add is not commutative for %v, %v", a, b)
	}
	if a.Mul(b) != b.Mul(a) {
		t.Errorf("Mul is not commutative for %v, %v", a, b)
	}
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Errorf("Add is not associative for %v, %v, %v", a, b, c)
	}
	if a.Mul(b).Mul(c) != a.Mul(b.Mul(c)) {
		t.Errorf("Mul is not associative for %v, %v, %v", a, b, c)
	}
	if a.Sub(b).Add(b) != a {
		t.Errorf("(a - b) + b != a for %v, %v", a, b)
	}
}

func TestDivideByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by a zero lane did not panic")
		}
	}()
	NewLong2(1, 2).Div(NewLong2(1, 0))
}

func TestBitwise(t *testing.T) {
	a := NewULong2(0b1100, 0xff00)
	b := NewULong2(0b1010, 0x0ff0)
	tests := []struct {
		name      string
		got, want ULong2
	}{
		{"And", a.And(b), NewULong2(0b1000, 0x0f00)},
		{"Or", a.Or(b), NewULong2(0b1110, 0xfff0)},
		{"Xor", a.Xor(b), NewULong2(0b0110, 0xf0f0)},
		{"AndNot", a.AndNot(b), NewULong2(0b0100, 0xf000)},
		{"Not", a.Not(), NewULong2(^uint64(0b1100), ^uint64(0xff00))},
		{"Shl", a.Shl(4), NewULong2(0b11000000, 0xff000)},
		{"Shr", a.Shr(4), NewULong2(0b0000, 0x0ff0)},
		{"ShlV", a.ShlV(NewULong2(1, 8)), NewULong2(0b11000, 0xff0000)},
		{"ShrV", a.ShrV(NewULong2(2, 64)), NewULong2(0b11, 0)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}

	// Signed right shifts are arithmetic.
	s := NewLong2(-16, 16)
	if got, want := s.Shr(2), NewLong2(-4, 4); got != want {
		t.Errorf("%v.Shr(2) = %v, want %v", s, got, want)
	}
	if got, want := s.ULong2().Shr(60), NewULong2(0xf, 0); got != want {
		t.Errorf("%v.ULong2().Shr(60) = %v, want %v", s, got, want)
	}
}

func TestComparisons(t *testing.T) {
	a := NewLong4(1, 2, 3, 4)
	b := NewLong4(4, 2, 1, 5)
	tests := []struct {
		name      string
		got, want Bool4
	}{
		{"Equal", a.Equal(b), Bool4{false, true, false, false}},
		{"NotEqual", a.NotEqual(b), Bool4{true, false, true, true}},
		{"Less", a.Less(b), Bool4{true, false, false, true}},
		{"LessEqual", a.LessEqual(b), Bool4{true, true, false, true}},
		{"Greater", a.Greater(b), Bool4{false, false, true, false}},
		{"GreaterEqual", a.GreaterEqual(b), Bool4{false, true, true, false}},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}

	// Signed and unsigned orderings differ for values with the top bit set.
	neg := NewLong2(-1, 0)
	if !neg.Less(Long2Splat(0)).X {
		t.Errorf("%v.Less(0).X = false, want true", neg)
	}
	if neg.ULong2().Less(ULong2Splat(0)).X {
		t.Errorf("%v.Less(0).X = true, want false", neg.ULong2())
	}
}

func TestMasks(t *testing.T) {
	m := Bool3{true, false, true}
	if m.All() {
		t.Errorf("%v.All() = true, want false", m)
	}
	if !m.Any() {
		t.Errorf("%v.Any() = false, want true", m)
	}
	if got, want := m.Not(), (Bool3{false, true, false}); got != want {
		t.Errorf("%v.Not() = %v, want %v", m, got, want)
	}
	if got, want := m.And(Bool3{true, true, false}), (Bool3{true, false, false}); got != want {
		t.Errorf("And = %v, want %v", got, want)
	}
	if got, want := m.Or(Bool3{false, true, false}), (Bool3{true, true, true}); got != want {
		t.Errorf("Or = %v, want %v", got, want)
	}
	if got, want := m.String(), "Bool3(true, false, true)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if (Bool2{}).Any() {
		t.Error("Bool2{}.Any() = true, want false")
	}
	if !(Bool4{true, true, true, true}).All() {
		t.Error("Bool4{all}.All() = false, want true")
	}
}

func TestSelect(t *testing.T) {
	a := NewLong4(1, 2, 3, 4)
	b := NewLong4(-1, -2, -3, -4)
	if got, want := SelectLong4(a.Greater(NewLong4(0, 5, 0, 5)), a, b), NewLong4(1, -2, 3, -4); got != want {
		t.Errorf("SelectLong4 = %v, want %v", got, want)
	}
	// Lanewise max through compare and select.
	x := NewULong3(5, 1, 9)
	y := NewULong3(2, 8, 9)
	if got := SelectULong3(x.Greater(y), x, y); got != x.Max(y) {
		t.Errorf("SelectULong3(x > y, x, y) = %v, want %v", got, x.Max(y))
	}
}

func TestSwizzle(t *testing.T) {
	v := NewLong4(1, 2, 3, 4)
	tests := []struct {
		name      string
		got, want any
	}{
		{"zwxy", v.Swizzle4(Z, W, X, Y), NewLong4(3, 4, 1, 2)},
		{"wzyx", v.Swizzle4(W, Z, Y, X), NewLong4(4, 3, 2, 1)},
		{"xxxx", v.Swizzle4(X, X, X, X), Long4Splat(1)},
		{"xyz", v.Swizzle3(X, Y, Z), NewLong3(1, 2, 3)},
		{"wx", v.Swizzle2(W, X), NewLong2(4, 1)},
		{"yxyx", NewULong2(5, 6).Swizzle4(Y, X, Y, X), NewULong4(6, 5, 6, 5)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLaneOutOfRange) {
			t.Errorf("Long2.Swizzle2(X, Z) panicked with %v, want %v", r, ErrLaneOutOfRange)
		}
	}()
	NewLong2(1, 2).Swizzle2(X, Z)
}

func TestConversions(t *testing.T) {
	v := NewLong3(-1, 0, 5)
	u := v.ULong3()
	if want := NewULong3(math.MaxUint64, 0, 5); u != want {
		t.Errorf("%v.ULong3() = %v, want %v", v, u, want)
	}
	if got := u.Long3(); got != v {
		t.Errorf("%v.Long3() = %v, want %v", u, got, v)
	}
	if got, want := NewLong2(1, 2).Extend(3), NewLong3(1, 2, 3); got != want {
		t.Errorf("Extend = %v, want %v", got, want)
	}
	if got, want := NewULong3(1, 2, 3).Extend(4), NewULong4(1, 2, 3, 4); got != want {
		t.Errorf("Extend = %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{NewLong2(-1, 2), "Long2(-1, 2)"},
		{NewLong3(0, 0, 0), "Long3(0, 0, 0)"},
		{NewLong4(1, 2, 3, 4), "Long4(1, 2, 3, 4)"},
		{NewULong4(math.MaxUint64, 0, 1, 2), "ULong4(18446744073709551615, 0, 1, 2)"},
		{W, "W"},
		{Lane(7), "Lane(7)"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
