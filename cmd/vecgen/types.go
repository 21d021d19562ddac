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

package main

import (
	"fmt"
	"strings"
)

// laneNames are the field names of the lanes, in index order.
var laneNames = []string{"X", "Y", "Z", "W"}

// VecType describes one generated integer vector type.
type VecType struct {
	Name   string // Go type name, e.g. "Long4"
	Scalar string // lane type, "int64" or "uint64"
	Signed bool
	Lanes  int

	// Hash constants. They are data: changing them changes every hash
	// produced by the generated code.
	HashMul []uint64
	HashAdd uint64
	WideMul []uint64
	WideAdd []uint64
}

// Family returns the type name without its lane count ("Long" or "ULong").
func (t VecType) Family() string {
	return strings.TrimRight(t.Name, "0123456789")
}

// WithLanes returns the name of the type of the same family with n lanes.
func (t VecType) WithLanes(n int) string {
	return fmt.Sprintf("%s%d", t.Family(), n)
}

// Counterpart returns the type with the same lane count and the other
// signedness.
func (t VecType) Counterpart() string {
	if t.Signed {
		return fmt.Sprintf("ULong%d", t.Lanes)
	}
	return fmt.Sprintf("Long%d", t.Lanes)
}

// WideType returns the type HashWide produces.
func (t VecType) WideType() string {
	return fmt.Sprintf("ULong%d", t.Lanes)
}

// Mask returns the name of the boolean mask type of the same width.
func (t VecType) Mask() string {
	return fmt.Sprintf("Bool%d", t.Lanes)
}

// HashVar returns the name of the generated hash constant table.
func (t VecType) HashVar() string {
	return strings.ToLower(t.Name) + "Hash"
}

// FileName returns the name of the file generated for t.
func (t VecType) FileName() string {
	return strings.ToLower(t.Name) + "_gen.go"
}

// LaneNames returns the field names of the lanes of t.
func (t VecType) LaneNames() []string {
	return laneNames[:t.Lanes]
}

// AllTypes is the table of every type vecgen knows how to emit.
var AllTypes = []VecType{
	{
		Name: "Long2", Scalar: "int64", Signed: true, Lanes: 2,
		HashMul: []uint64{0xd3fdd29dd78439c5, 0x6158e32f7fd26cef},
		HashAdd: 0x5dd861dc9985bda7,
		WideMul: []uint64{0x4032a384791d3ca7, 0x1f7cfbd14d5c480b},
		WideAdd: []uint64{0x71bd61c42bb8a3cd, 0x4c47fecf47c7ae53},
	},
	{
		Name: "Long3", Scalar: "int64", Signed: true, Lanes: 3,
		HashMul: []uint64{0xc9605cc2e8345169, 0x2707ca59e656a129, 0x859202d896c2dba1},
		HashAdd: 0x9f86a66efe6ffff1,
		WideMul: []uint64{0x48d321de60e0b96d, 0x7ee832a6d4fab0f9, 0xa072195b8ecaf23f},
		WideAdd: []uint64{0xaf74d8b37631301d, 0xb5510a61de0891d1, 0xf5d8e6b8c1b71227},
	},
	{
		Name: "Long4", Scalar: "int64", Signed: true, Lanes: 4,
		HashMul: []uint64{0xc491b780c622ed51, 0x99373a9406f1fb61, 0xc3d80dee4873472b, 0xcb61958bbc8a70e9},
		HashAdd: 0x3a0a53bba2076439,
		WideMul: []uint64{0x3be288e496e45871, 0x43bc0888695fae5f, 0xa51d20a5462a1e6d, 0x387c5a3b47c4ffa1},
		WideAdd: []uint64{0x93df8fbf5d1a42f9, 0x1d6cb893882edeab, 0x2930c39ede3b3ee7, 0xbc844d000a038b3d},
	},
	{
		Name: "ULong2", Scalar: "uint64", Signed: false, Lanes: 2,
		HashMul: []uint64{0x7e521bfb40d56535, 0x38d956c84a388121},
		HashAdd: 0x7cb96b95fcc0b93f,
		WideMul: []uint64{0xe788191287b1b68b, 0x60c24bf2a5f08d03},
		WideAdd: []uint64{0x40b095e32e69a46f, 0xaa664042e6f5b375},
	},
	{
		Name: "ULong3", Scalar: "uint64", Signed: false, Lanes: 3,
		HashMul: []uint64{0xd5c3376ccefc9023, 0x57e3e022e5c7663d, 0x5fed3059be859253},
		HashAdd: 0x637e8fc2493d684b,
		WideMul: []uint64{0x8e8f5f2f3753e9e5, 0xbe1bc3ba14c6457f, 0x7f7ff58fd93b8ec9},
		WideAdd: []uint64{0x2980ac9db9aff917, 0xa6578b5d0e39a0b5, 0x133218025888f3e9},
	},
	{
		Name: "ULong4", Scalar: "uint64", Signed: false, Lanes: 4,
		HashMul: []uint64{0x7a62d8d86059f48b, 0x4f33759354461961, 0xfda7bf81bed45b75, 0x6291f2208b2dbea1},
		HashAdd: 0xa6da08ce487ce4d5,
		WideMul: []uint64{0xd642008909647c41, 0xf930b05a782c6743, 0x2f589cb9c48ec1cb, 0x2f763c08b0fa9315},
		WideAdd: []uint64{0x44e4e1575bd32799, 0xc3204fd08af40999, 0xba5f3738bb223577, 0x3c272104df60cf47},
	},
}

// LookupType returns the table entry for name.
func LookupType(name string) (VecType, error) {
	for _, t := range AllTypes {
		if t.Name == name {
			return t, nil
		}
	}
	return VecType{}, fmt.Errorf("unknown vector type %q", name)
}
