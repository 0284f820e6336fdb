// Copyright 2025 The tinylex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import "errors"

// ErrOutOfRange is returned (wrapped) whenever an offset, span, or position
// falls outside the bounds of a File's contents. It is a programming error:
// callers are expected to validate offsets they did not derive from the
// File itself.
var ErrOutOfRange = errors.New("source: offset out of range")
