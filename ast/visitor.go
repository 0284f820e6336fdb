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

import "github.com/samber/lo"

// Visitor is a set of per-node-kind hooks, one function field per Node
// kind. Node.Accept calls the field matching its own kind, giving double
// dispatch without a Go type switch.
//
// A Visitor's hooks close over the Visitor itself (see NewBaseVisitor),
// so overriding a single field still recurses correctly through the
// others: replace VisitIfExpression and the replacement can call
// Walk(child, v) exactly as the default would.
type Visitor struct {
	VisitCompilationUnit         func(n *CompilationUnit)
	VisitFunctionDeclaration     func(n *FunctionDeclaration)
	VisitVariableDeclaration     func(n *VariableDeclaration)
	VisitLiteralBoolean          func(n *LiteralBoolean)
	VisitLiteralNumber           func(n *LiteralNumber)
	VisitLiteralString           func(n *LiteralString)
	VisitIdentifier              func(n *Identifier)
	VisitParenthesizedExpression func(n *ParenthesizedExpression)
	VisitIfExpression            func(n *IfExpression)
	VisitInvocationExpression    func(n *InvocationExpression)
	VisitReturnStatement         func(n *ReturnStatement)
}

// Walk dispatches n to the hook on v matching its kind. It is the same
// call every default hook below makes for each child it visits.
func Walk(n Node, v *Visitor) {
	if n == nil {
		return
	}
	n.Accept(v)
}

// walkAll visits each non-nil element of ns, in order.
func walkAll(ns []Node, v *Visitor) {
	lo.ForEach(ns, func(n Node, _ int) { Walk(n, v) })
}

// NewBaseVisitor returns a Visitor implementing the default recursive
// walk described by the module's traversal contract: each hook visits
// exactly the children named for its node kind, in order. LiteralBoolean,
// LiteralNumber, LiteralString, and Identifier are leaves with no
// children; their default hooks are no-ops, and a pass that cares about
// their values must override them.
//
// Every hook closes over the returned *Visitor itself, so a caller that
// overrides one field (e.g. to build a pretty-printer) keeps the default
// recursion for every other field without needing to re-derive it.
func NewBaseVisitor() *Visitor {
	v := &Visitor{}

	v.VisitCompilationUnit = func(n *CompilationUnit) {
		for _, fn := range n.Functions {
			Walk(fn, v)
		}
	}
	v.VisitFunctionDeclaration = func(n *FunctionDeclaration) {
		walkAll(n.Body, v)
	}
	v.VisitVariableDeclaration = func(n *VariableDeclaration) {
		Walk(n.Value, v)
	}
	v.VisitLiteralBoolean = func(*LiteralBoolean) {}
	v.VisitLiteralNumber = func(*LiteralNumber) {}
	v.VisitLiteralString = func(*LiteralString) {}
	v.VisitIdentifier = func(*Identifier) {}
	v.VisitParenthesizedExpression = func(n *ParenthesizedExpression) {
		walkAll(n.Body, v)
	}
	v.VisitIfExpression = func(n *IfExpression) {
		Walk(n.Condition, v)
		walkAll(n.Then, v)
		walkAll(n.Else, v)
	}
	v.VisitInvocationExpression = func(n *InvocationExpression) {
		// The base walk deliberately does not visit Target; see
		// InvocationExpression's doc comment.
		walkAll(n.Args, v)
	}
	v.VisitReturnStatement = func(n *ReturnStatement) {
		Walk(n.Value, v)
	}

	return v
}
