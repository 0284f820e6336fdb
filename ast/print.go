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

package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// PrintTreeVisitor renders an AST as an indented text tree. Calling it
// twice on the same tree always produces byte-identical output, since
// traversal order is fixed by the node kinds' child order.
type PrintTreeVisitor struct {
	w      io.Writer
	indent string
	depth  int

	// V is the underlying Visitor. Pass V to Node.Accept, or call Walk
	// with it, to drive printing.
	V *Visitor
}

// NewPrintTreeVisitor creates a PrintTreeVisitor writing to w. An empty
// indent defaults to two spaces.
func NewPrintTreeVisitor(w io.Writer, indent string) *PrintTreeVisitor {
	if indent == "" {
		indent = "  "
	}
	p := &PrintTreeVisitor{w: w, indent: indent}
	p.V = NewBaseVisitor()

	p.V.VisitCompilationUnit = func(n *CompilationUnit) {
		p.line("CompilationUnit")
		p.nested(func() {
			lo.ForEach(n.Functions, func(fn *FunctionDeclaration, _ int) { Walk(fn, p.V) })
		})
	}
	p.V.VisitFunctionDeclaration = func(n *FunctionDeclaration) {
		p.line("FunctionDeclaration", attr("name", n.Name))
		p.nested(func() { walkAll(n.Body, p.V) })
	}
	p.V.VisitVariableDeclaration = func(n *VariableDeclaration) {
		p.line("VariableDeclaration", attr("name", n.Name))
		p.nested(func() { Walk(n.Value, p.V) })
	}
	p.V.VisitLiteralBoolean = func(n *LiteralBoolean) {
		p.line("LiteralBoolean", attr("value", strconv.FormatBool(n.Value)))
	}
	p.V.VisitLiteralNumber = func(n *LiteralNumber) {
		p.line("LiteralNumber", attr("value", n.Value))
	}
	p.V.VisitLiteralString = func(n *LiteralString) {
		p.line("LiteralString", attr("value", n.Value))
	}
	p.V.VisitIdentifier = func(n *Identifier) {
		p.line("Identifier", attr("name", n.Name))
	}
	p.V.VisitParenthesizedExpression = func(n *ParenthesizedExpression) {
		p.line("ParenthesizedExpression")
		p.nested(func() { walkAll(n.Body, p.V) })
	}
	p.V.VisitIfExpression = func(n *IfExpression) {
		p.line("IfExpression")
		p.nested(func() {
			p.line("If")
			p.nested(func() { Walk(n.Condition, p.V) })

			p.line("Then")
			p.nested(func() { walkAll(n.Then, p.V) })

			if len(n.Else) > 0 {
				p.line("Else")
				p.nested(func() { walkAll(n.Else, p.V) })
			}
		})
	}
	p.V.VisitInvocationExpression = func(n *InvocationExpression) {
		p.line("InvocationExpression")
		p.nested(func() {
			p.line("Target:")
			p.nested(func() { Walk(n.Target, p.V) })

			p.line("Args:")
			p.nested(func() { walkAll(n.Args, p.V) })
		})
	}
	p.V.VisitReturnStatement = func(n *ReturnStatement) {
		p.line("ReturnStatement")
		p.nested(func() { Walk(n.Value, p.V) })
	}

	return p
}

func attr(name, value string) string {
	return fmt.Sprintf("%s=%s", name, strconv.Quote(value))
}

func (p *PrintTreeVisitor) line(label string, attrs ...string) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat(p.indent, p.depth), label)
	for _, a := range attrs {
		fmt.Fprintf(p.w, " %s", a)
	}
	fmt.Fprintln(p.w)
}

func (p *PrintTreeVisitor) nested(f func()) {
	p.depth++
	f()
	p.depth--
}
