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

import "testing"

func TestStringSpan(t *testing.T) {
	t.Parallel()

	sp := NewStringSpan(4, 2, 1, "foo\nbar")

	if got, want := sp.Offset(), 4; got != want {
		t.Errorf("Offset() = %d, want %d", got, want)
	}
	if got, want := sp.Length(), 7; got != want {
		t.Errorf("Length() = %d, want %d", got, want)
	}
	if !sp.IsMultiLine() {
		t.Error("IsMultiLine() = false, want true")
	}

	lines := sp.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d entries, want 2", len(lines))
	}
	if lines[0].Line != 2 || lines[0].Text != "foo" {
		t.Errorf("Lines()[0] = %+v, want {2 foo}", lines[0])
	}
	if lines[1].Line != 3 || lines[1].Text != "bar" {
		t.Errorf("Lines()[1] = %+v, want {3 bar}", lines[1])
	}
}

func TestStringSpan_SingleLine(t *testing.T) {
	t.Parallel()

	sp := NewStringSpan(0, 0, 0, "hello")
	if sp.IsMultiLine() {
		t.Error("IsMultiLine() = true, want false")
	}
	lines := sp.Lines()
	if len(lines) != 1 || lines[0].Text != "hello" {
		t.Errorf("Lines() = %+v, want a single {0 hello}", lines)
	}
}
