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

import "strings"

// LineText is one line of a multi-line span's text, paired with its
// absolute line number.
type LineText struct {
	Line int
	Text string
}

// Span is a contiguous slice of a source document with derived (line,
// column) coordinates. Two implementations share the contract:
// StringSpan owns its text literally and precomputes everything at
// construction; FileSpan borrows a File and computes (line, column)
// lazily through it.
type Span interface {
	// Offset is the starting byte index of the span within its document.
	Offset() int

	// Text is the literal slice of source text the span covers.
	Text() string

	// Length is len(Text()).
	Length() int

	// Line is the 0-based line number of Offset (0 for the first line),
	// as returned by File.ComputeLine.
	Line() int

	// Column is the 0-based column of Offset within its line.
	Column() int

	// IsMultiLine reports whether Text contains a line feed or carriage
	// return.
	IsMultiLine() bool

	// Lines returns one LineText per line the span's text touches.
	// Callers should check IsMultiLine before relying on more than the
	// first entry, though implementations behave correctly regardless.
	Lines() []LineText
}

// StringSpan is a Span that owns its text directly, independent of any
// File. Its (line, column) are supplied by the caller at construction
// time rather than derived.
type StringSpan struct {
	offset int
	line   int
	column int
	text   string
}

// NewStringSpan creates a StringSpan with precomputed coordinates.
func NewStringSpan(offset, line, column int, text string) *StringSpan {
	return &StringSpan{offset: offset, line: line, column: column, text: text}
}

func (s *StringSpan) Offset() int  { return s.offset }
func (s *StringSpan) Text() string { return s.text }
func (s *StringSpan) Length() int  { return len(s.text) }
func (s *StringSpan) Line() int    { return s.line }
func (s *StringSpan) Column() int  { return s.column }

func (s *StringSpan) IsMultiLine() bool {
	return strings.ContainsAny(s.text, "\n\r")
}

func (s *StringSpan) Lines() []LineText {
	return linesFrom(s.line, s.text)
}

// FileSpan is a Span backed by a reference to a File plus an offset; its
// (line, column) are computed on demand through the File's line-start
// table rather than stored.
type FileSpan struct {
	file   *File
	offset int
	text   string
}

// NewFileSpan constructs a FileSpan directly. Most callers should instead
// use File.Span, which validates bounds.
func NewFileSpan(file *File, offset int, text string) *FileSpan {
	return &FileSpan{file: file, offset: offset, text: text}
}

func (fs *FileSpan) Offset() int  { return fs.offset }
func (fs *FileSpan) Text() string { return fs.text }
func (fs *FileSpan) Length() int  { return len(fs.text) }

func (fs *FileSpan) Line() int {
	line, _ := fs.file.ComputeLine(fs.offset)
	return line
}

func (fs *FileSpan) Column() int {
	col, _ := fs.file.ComputeColumn(fs.offset)
	return col
}

func (fs *FileSpan) IsMultiLine() bool {
	return strings.ContainsAny(fs.text, "\n\r")
}

func (fs *FileSpan) Lines() []LineText {
	return linesFrom(fs.Line(), fs.text)
}

// linesFrom splits text on any newline convention (LF, CR, CR+LF) into
// per-line records numbered starting at startLine.
func linesFrom(startLine int, text string) []LineText {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	lines = append(lines, text[start:])

	out := make([]LineText, len(lines))
	for i, t := range lines {
		out[i] = LineText{Line: startLine + i, Text: t}
	}
	return out
}
