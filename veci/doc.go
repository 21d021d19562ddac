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

/*
Package veci implements fixed-width integer vectors with 2, 3 and 4 lanes
over signed (Long2, Long3, Long4) and unsigned (ULong2, ULong3, ULong4)
64-bit integers, and the boolean masks (Bool2, Bool3, Bool4) their lanewise
comparisons produce.

Every operator is applied lane by lane with Go's integer semantics: sums and
products wrap on overflow, signed right shifts are arithmetic, and dividing by
a zero lane panics like any other integer division.

The per-type operator families live in the *_gen.go files, produced by
cmd/vecgen. Batch kernels over structure-of-arrays Columns use the portable
SIMD operations of go-highway.
*/
package veci

//go:generate go run ../cmd/vecgen -output . -types all
