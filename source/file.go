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

// Package source models an immutable input document and the offset/(line,
// column) bookkeeping needed to report diagnostics against it.
package source

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// File is an immutable chunk of source text plus an optional origin (a
// filename or URL, used only for diagnostics). A File is created once per
// input and lives for the duration of a compilation; its line-start table
// is built lazily, at most once, on first query.
type File struct {
	// ID uniquely identifies this File for the lifetime of the process. It
	// plays no role in lexing semantics; it exists so a driver can
	// correlate log lines and diagnostics across a batch of files.
	ID uuid.UUID

	origin   string
	contents string

	once       sync.Once
	lineStarts []int
}

// NewFile creates a File over contents. origin is an optional filename or
// URL used only when rendering diagnostics; it may be empty.
func NewFile(origin, contents string) *File {
	return &File{
		ID:       uuid.New(),
		origin:   origin,
		contents: contents,
	}
}

// Origin returns the file's origin, or the empty string if none was given.
func (f *File) Origin() string {
	return f.origin
}

// Contents returns the file's full text.
func (f *File) Contents() string {
	return f.contents
}

// Length returns the number of code units (bytes, since the language is
// ASCII-only per the module's non-goals) in the file's contents.
func (f *File) Length() int {
	return len(f.contents)
}

// Span returns the Span covering contents[start:end]. It fails with
// ErrOutOfRange if either endpoint is negative, exceeds Length, or if
// end < start.
func (f *File) Span(start, end int) (Span, error) {
	if start < 0 || end < 0 || start > f.Length() || end > f.Length() {
		return nil, fmt.Errorf("%w: span [%d, %d) outside [0, %d]", ErrOutOfRange, start, end, f.Length())
	}
	if end < start {
		return nil, fmt.Errorf("%w: span end %d before start %d", ErrOutOfRange, end, start)
	}
	return &FileSpan{
		file:   f,
		offset: start,
		text:   f.contents[start:end],
	}, nil
}

// ComputeLine returns the number of line terminators that end before
// offset (its 0-based line number): 0 if offset precedes the first line start, otherwise
// the number of preceding line starts, capped at the total number of line
// starts when offset is at or after the last one.
func (f *File) ComputeLine(offset int) (int, error) {
	if offset < 0 || offset > f.Length() {
		return 0, fmt.Errorf("%w: offset %d outside [0, %d]", ErrOutOfRange, offset, f.Length())
	}

	starts := f.lineStartTable()
	idx := sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
	return idx, nil
}

// ComputeColumn returns the number of code units between offset and the
// start of its line. For the first line, the column equals the offset.
func (f *File) ComputeColumn(offset int) (int, error) {
	line, err := f.ComputeLine(offset)
	if err != nil {
		return 0, err
	}
	if line == 0 {
		return offset, nil
	}
	starts := f.lineStartTable()
	return offset - starts[line-1], nil
}

// ComputeDisplayColumn is like ComputeColumn but expands each tab
// preceding offset on its line out to the next tabWidth-wide stop instead
// of counting it as a single code unit, matching how a terminal or editor
// with that tab width would render the column. tabWidth <= 0 is treated
// as 1 (no expansion).
func (f *File) ComputeDisplayColumn(offset, tabWidth int) (int, error) {
	line, err := f.ComputeLine(offset)
	if err != nil {
		return 0, err
	}
	if tabWidth <= 0 {
		tabWidth = 1
	}

	lineStart := 0
	if line > 0 {
		lineStart = f.lineStartTable()[line-1]
	}

	col := 0
	for i := lineStart; i < offset; i++ {
		if f.contents[i] == '\t' {
			col += tabWidth - (col % tabWidth)
		} else {
			col++
		}
	}
	return col, nil
}

// lineStartTable builds (once) and returns the ordered offsets of the
// first character of each line after the first. LF terminates a line; a
// bare CR (not followed by LF) also terminates a line; CR+LF counts as a
// single terminator recorded at the LF.
func (f *File) lineStartTable() []int {
	f.once.Do(func() {
		var starts []int
		c := f.contents
		for i := 0; i < len(c); i++ {
			switch c[i] {
			case '\n':
				starts = append(starts, i+1)
			case '\r':
				if i+1 >= len(c) || c[i+1] != '\n' {
					starts = append(starts, i+1)
				}
			}
		}
		f.lineStarts = starts
	})
	return f.lineStarts
}
