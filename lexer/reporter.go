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

package lexer

import (
	"fmt"

	"github.com/tinylex/tinylex/source"
)

// ErrorReporter is called synchronously at the point a lexical error is
// detected. Returning a non-nil error tells the lexer to stop; Tokenize
// then returns that error alongside whatever tokens were already
// produced. Returning nil lets the lexer continue with its best-effort
// token.
type ErrorReporter func(span source.Span, msg string) error

// DefaultReporter formats a message in the form:
//
//	<msg> "<span-text>" at <line>:<column>
//
// and returns it as an error, which causes Tokenize to stop at the first
// lexical error.
func DefaultReporter(span source.Span, msg string) error {
	return fmt.Errorf("%s %q at %d:%d", msg, span.Text(), span.Line(), span.Column())
}

// NewTabAwareReporter is like DefaultReporter but reports the column with
// each tab preceding it on its line expanded to a tabWidth-wide stop
// rather than counted as a single code unit, for configurations where
// diagnostics should line up under a wider terminal or editor tab.
func NewTabAwareReporter(file *source.File, tabWidth int) ErrorReporter {
	return func(span source.Span, msg string) error {
		col, err := file.ComputeDisplayColumn(span.Offset(), tabWidth)
		if err != nil {
			return DefaultReporter(span, msg)
		}
		return fmt.Errorf("%s %q at %d:%d", msg, span.Text(), span.Line(), col)
	}
}

// CollectingReporter accumulates every lexical error it is given instead
// of raising, letting a single Tokenize call surface all of them. It never
// returns an error itself, so the lexer always runs to completion.
type CollectingReporter struct {
	Errors []error

	// Format builds the error recorded for each report. A nil Format
	// defaults to DefaultReporter.
	Format ErrorReporter
}

// Report implements ErrorReporter's signature as a method value; pass
// r.Report to Tokenize.
func (r *CollectingReporter) Report(span source.Span, msg string) error {
	format := r.Format
	if format == nil {
		format = DefaultReporter
	}
	r.Errors = append(r.Errors, format(span, msg))
	return nil
}
