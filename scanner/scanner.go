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

// Package scanner implements a forward cursor over a source.File with
// peek/advance/match primitives. It is the layer the lexer builds
// tokenization on top of; it has no notion of tokens itself.
package scanner

import (
	"fmt"
	"strings"

	"github.com/ianlewis/runeio"

	"github.com/tinylex/tinylex/source"
)

// EOF is the sentinel rune value returned by Peek and Advance once the
// cursor has run past the end of input. Every classification predicate in
// package charclass returns false for it.
const EOF rune = -1

// Scanner is a forward cursor over a source.File's contents. It holds
// (source, position) as described by the specification: position always
// names the scanner's own cursor, distinct from any anchor a caller (the
// lexer) maintains to mark the start of the token under construction.
//
// The cursor is backed by a github.com/ianlewis/runeio.RuneReader for
// buffered, zero-copy-friendly peeking; since Scanner also supports
// arbitrary seeks (SetPosition, Reset) that a pure stream reader cannot
// satisfy, the reader is rebuilt, anchored at the new offset, whenever the
// position is set directly rather than advanced.
type Scanner struct {
	file     *source.File
	contents string
	position int
	rr       *runeio.RuneReader
}

// New creates a Scanner positioned at the start of file.
func New(file *source.File) *Scanner {
	s := &Scanner{
		file:     file,
		contents: file.Contents(),
	}
	s.rebuild()
	return s
}

func (s *Scanner) rebuild() {
	s.rr = runeio.NewReader(strings.NewReader(s.contents[s.position:]))
}

// HasNext reports whether the cursor has not yet reached the end of input.
func (s *Scanner) HasNext() bool {
	return s.position < len(s.contents)
}

// Position returns the scanner's current cursor offset.
func (s *Scanner) Position() int {
	return s.position
}

// SetPosition moves the cursor to pos. It fails with source.ErrOutOfRange
// if pos falls outside [0, length].
func (s *Scanner) SetPosition(pos int) error {
	if pos < 0 || pos > len(s.contents) {
		return fmt.Errorf("%w: position %d outside [0, %d]", source.ErrOutOfRange, pos, len(s.contents))
	}
	s.position = pos
	s.rebuild()
	return nil
}

// Reset moves the cursor back to the start of input.
func (s *Scanner) Reset() {
	s.position = 0
	s.rebuild()
}

// Peek returns the code unit at position+k without advancing the cursor.
// It returns EOF if position+k is out of range.
func (s *Scanner) Peek(k int) rune {
	if k < 0 {
		return EOF
	}
	rns, _ := s.rr.Peek(k + 1)
	if len(rns) < k+1 {
		return EOF
	}
	return rns[k]
}

// Advance consumes and returns the code unit at the cursor, advancing the
// cursor past it. It returns EOF if the cursor is already at the end of
// input.
func (s *Scanner) Advance() rune {
	rn, size, err := s.rr.ReadRune()
	if err != nil {
		return EOF
	}
	s.position += size
	return rn
}

// MatchChar advances past and returns true if the code unit at the cursor
// equals c; otherwise it leaves the cursor untouched and returns false.
func (s *Scanner) MatchChar(c rune) bool {
	if s.Peek(0) != c {
		return false
	}
	s.Advance()
	return true
}

// MatchStr advances past and returns true if the contents starting at the
// cursor begin with lit; otherwise it leaves the cursor untouched and
// returns false.
func (s *Scanner) MatchStr(lit string) bool {
	if lit == "" {
		return false
	}
	rns, _ := s.rr.Peek(len(lit))
	if string(rns) != lit {
		return false
	}
	n, err := s.rr.Discard(len(rns))
	s.position += n
	return err == nil
}

// MatchPred advances past and returns true if pred holds for the code unit
// at the cursor; otherwise it leaves the cursor untouched and returns
// false.
func (s *Scanner) MatchPred(pred func(rune) bool) bool {
	if !pred(s.Peek(0)) {
		return false
	}
	s.Advance()
	return true
}

// Substring returns contents[start:end]. Omitted bounds default to the
// current position (start) and the length of the contents (end).
func (s *Scanner) Substring(startEnd ...int) string {
	start, end := s.position, len(s.contents)
	if len(startEnd) > 0 {
		start = startEnd[0]
	}
	if len(startEnd) > 1 {
		end = startEnd[1]
	}
	return s.contents[start:end]
}

// File returns the source.File the scanner is reading.
func (s *Scanner) File() *source.File {
	return s.file
}
