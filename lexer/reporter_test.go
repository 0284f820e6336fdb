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
	"strings"
	"testing"

	"github.com/tinylex/tinylex/source"
)

func TestNewTabAwareReporter_ExpandsColumn(t *testing.T) {
	t.Parallel()

	f := source.NewFile("", "\tx")
	span, err := f.Span(1, 2)
	if err != nil {
		t.Fatalf("Span: unexpected error: %v", err)
	}

	reporter := NewTabAwareReporter(f, 4)
	err = reporter(span, "boom")
	if err == nil {
		t.Fatal("reporter: expected a non-nil error")
	}
	if got, want := err.Error(), "at 0:4"; !strings.Contains(got, want) {
		t.Errorf("error %q does not contain expanded column %q", got, want)
	}
}

func TestCollectingReporter_DefaultFormat(t *testing.T) {
	t.Parallel()

	f := source.NewFile("", "x")
	span, err := f.Span(0, 1)
	if err != nil {
		t.Fatalf("Span: unexpected error: %v", err)
	}

	var c CollectingReporter
	if err := c.Report(span, "bad"); err != nil {
		t.Fatalf("Report: unexpected error: %v", err)
	}
	if len(c.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(c.Errors))
	}
	if got, want := c.Errors[0].Error(), DefaultReporter(span, "bad").Error(); got != want {
		t.Errorf("Errors[0] = %q, want %q", got, want)
	}
}

func TestCollectingReporter_CustomFormat(t *testing.T) {
	t.Parallel()

	f := source.NewFile("", "\tx")
	span, err := f.Span(1, 2)
	if err != nil {
		t.Fatalf("Span: unexpected error: %v", err)
	}

	c := CollectingReporter{Format: NewTabAwareReporter(f, 4)}
	if err := c.Report(span, "bad"); err != nil {
		t.Fatalf("Report: unexpected error: %v", err)
	}
	if got, want := c.Errors[0].Error(), "at 0:4"; !strings.Contains(got, want) {
		t.Errorf("Errors[0] = %q, does not contain %q", got, want)
	}
}
