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

// Lane selects one lane of a vector for the swizzle methods.
type Lane int

// The lanes, in index order.
const (
	X Lane = iota
	Y
	Z
	W
)

func (l Lane) String() string {
	switch l {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	case W:
		return "W"
	}
	return fmt.Sprintf("Lane(%d)", int(l))
}
