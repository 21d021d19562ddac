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

// Scalar is the constraint satisfied by the lane types.
type Scalar interface {
	~int64 | ~uint64
}

// abs64 returns |x| without branching; math.MinInt64 wraps to itself.
func abs64(x int64) int64 {
	m := x >> 63
	return (x ^ m) - m
}

func pick[S Scalar](c bool, a, b S) S {
	if c {
		return a
	}
	return b
}
