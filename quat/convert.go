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
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/akhenakh/vecmath/r3"
)

// minChunk is the smallest number of matrices handed to one goroutine.
const minChunk = 256

// Converter converts rotation matrices to quaternions on several
// goroutines. The zero value is not usable; use NewConverter.
type Converter struct {
	workers int
}

// NewConverter returns a Converter running at most workers conversions at a
// time. workers <= 0 selects runtime.GOMAXPROCS(0).
func NewConverter(workers int) *Converter {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Converter{workers: workers}
}

// Workers returns the concurrency limit of c.
func (c *Converter) Workers() int { return c.workers }

// FromMatrices sets dst[i] = FromMatrix(src[i]). It returns an error if the
// slices differ in length or ctx is done before every chunk has started, in
// which case dst is partially written.
func (c *Converter) FromMatrices(ctx context.Context, dst []Quaternion, src []r3.Matrix) error {
	if len(dst) != len(src) {
		return fmt.Errorf("quat: %d destinations for %d matrices", len(dst), len(src))
	}

	chunk := max(minChunk, (len(src)+c.workers-1)/c.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	var stopped error
	for start := 0; start < len(src); start += chunk {
		if stopped = gctx.Err(); stopped != nil {
			break
		}
		end := min(start+chunk, len(src))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				dst[i] = FromMatrix(src[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return stopped
}
