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
	"fmt"
)

// ErrLaneOutOfRange is returned (wrapped) when a lane index is outside 0..N-1
// for an N-lane vector.
var ErrLaneOutOfRange = errors.New("veci: lane index out of range")

func laneError(typ string, i int) error {
	return fmt.Errorf("%w: %s has no lane %d", ErrLaneOutOfRange, typ, i)
}
