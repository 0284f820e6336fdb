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

import (
	"errors"
	"testing"
)

func TestFile_ComputeLineAndColumn(t *testing.T) {
	t.Parallel()

	f := NewFile("test.tl", "ab\ncd\r\nef\rgh")
	// Offsets:      0123 456 78 9 10 11
	// line starts recorded at: 3 ('\n' at 2), 7 ('\r\n' at 5-6), 10 ('\r' at 9)

	tests := []struct {
		offset     int
		wantLine   int
		wantColumn int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{7, 2, 0},
		{9, 2, 2},
		{10, 3, 0},
		{12, 3, 2},
	}

	for _, tt := range tests {
		line, err := f.ComputeLine(tt.offset)
		if err != nil {
			t.Fatalf("ComputeLine(%d): unexpected error: %v", tt.offset, err)
		}
		if line != tt.wantLine {
			t.Errorf("ComputeLine(%d) = %d, want %d", tt.offset, line, tt.wantLine)
		}

		col, err := f.ComputeColumn(tt.offset)
		if err != nil {
			t.Fatalf("ComputeColumn(%d): unexpected error: %v", tt.offset, err)
		}
		if col != tt.wantColumn {
			t.Errorf("ComputeColumn(%d) = %d, want %d", tt.offset, col, tt.wantColumn)
		}
	}
}

func TestFile_ComputeLineOutOfRange(t *testing.T) {
	t.Parallel()

	f := NewFile("", "abc")
	if _, err := f.ComputeLine(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ComputeLine(-1): got %v, want ErrOutOfRange", err)
	}
	if _, err := f.ComputeLine(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ComputeLine(4): got %v, want ErrOutOfRange", err)
	}
	// Length itself is a valid, one-past-the-end offset.
	if _, err := f.ComputeLine(3); err != nil {
		t.Errorf("ComputeLine(3): unexpected error: %v", err)
	}
}

func TestFile_ComputeDisplayColumn(t *testing.T) {
	t.Parallel()

	// "\tab\tc": tab stops at width 4 land on 0, 4, 5, 6, 8.
	f := NewFile("", "\tab\tc")

	tests := []struct {
		offset    int
		tabWidth  int
		wantWidth int
	}{
		{0, 4, 0},
		{1, 4, 4},
		{2, 4, 5},
		{3, 4, 6},
		{4, 4, 8},
		// tabWidth <= 1 behaves like raw ComputeColumn (no expansion).
		{4, 1, 4},
		{4, 0, 4},
	}

	for _, tt := range tests {
		col, err := f.ComputeDisplayColumn(tt.offset, tt.tabWidth)
		if err != nil {
			t.Fatalf("ComputeDisplayColumn(%d, %d): unexpected error: %v", tt.offset, tt.tabWidth, err)
		}
		if col != tt.wantWidth {
			t.Errorf("ComputeDisplayColumn(%d, %d) = %d, want %d", tt.offset, tt.tabWidth, col, tt.wantWidth)
		}
	}
}

func TestFile_Span(t *testing.T) {
	t.Parallel()

	f := NewFile("", "hello\nworld")

	sp, err := f.Span(6, 11)
	if err != nil {
		t.Fatalf("Span: unexpected error: %v", err)
	}
	if got, want := sp.Text(), "world"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got, want := sp.Offset(), 6; got != want {
		t.Errorf("Offset() = %d, want %d", got, want)
	}
	if got, want := sp.Line(), 1; got != want {
		t.Errorf("Line() = %d, want %d", got, want)
	}
	if got, want := sp.Column(), 0; got != want {
		t.Errorf("Column() = %d, want %d", got, want)
	}
	if sp.IsMultiLine() {
		t.Error("IsMultiLine() = true, want false")
	}

	for _, tt := range []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 3},
		{"end past length", 0, 100},
		{"end before start", 5, 2},
	} {
		if _, err := f.Span(tt.start, tt.end); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: got %v, want ErrOutOfRange", tt.name, err)
		}
	}
}

func TestFile_SpanMultiLine(t *testing.T) {
	t.Parallel()

	f := NewFile("", "hello\nworld\n!")
	sp, err := f.Span(0, 13)
	if err != nil {
		t.Fatalf("Span: unexpected error: %v", err)
	}
	if !sp.IsMultiLine() {
		t.Error("IsMultiLine() = false, want true")
	}

	lines := sp.Lines()
	want := []string{"hello", "world", "!"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() returned %d entries, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.Text != want[i] {
			t.Errorf("Lines()[%d].Text = %q, want %q", i, l.Text, want[i])
		}
		if l.Line != i {
			t.Errorf("Lines()[%d].Line = %d, want %d", i, l.Line, i)
		}
	}
}

func TestFile_IDUnique(t *testing.T) {
	t.Parallel()

	a := NewFile("", "x")
	b := NewFile("", "x")
	if a.ID == b.ID {
		t.Error("two Files unexpectedly share an ID")
	}
}

func TestFile_LineStartTableComputedOnce(t *testing.T) {
	t.Parallel()

	f := NewFile("", "a\nb\nc")
	first := f.lineStartTable()
	second := f.lineStartTable()
	if len(first) != len(second) {
		t.Fatalf("line start table changed between calls: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line start table changed between calls: %v vs %v", first, second)
		}
	}
}
