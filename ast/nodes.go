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

// Package ast defines the minimal node set the visitor contract requires
// and a default-recursive base visitor consumed by downstream passes. The
// grammar itself (reducing tokens into these nodes) is out of scope; the
// parser is an external collaborator that only needs to produce values
// satisfying Node.
package ast

// Node is anything the visitor framework can traverse. Accept performs
// double dispatch: it calls the hook on v that corresponds to the node's
// concrete kind.
type Node interface {
	Accept(v *Visitor)
}

// CompilationUnit is the root of a parsed file: an ordered list of
// top-level function declarations.
type CompilationUnit struct {
	Functions []*FunctionDeclaration
}

func (n *CompilationUnit) Accept(v *Visitor) {
	if v.VisitCompilationUnit != nil {
		v.VisitCompilationUnit(n)
	}
}

// FunctionDeclaration is a named function with an ordered parameter list
// and a body of statements/expressions.
type FunctionDeclaration struct {
	Name   string
	Params []string
	Body   []Node
}

func (n *FunctionDeclaration) Accept(v *Visitor) {
	if v.VisitFunctionDeclaration != nil {
		v.VisitFunctionDeclaration(n)
	}
}

// VariableDeclaration binds Name to the result of evaluating Value.
type VariableDeclaration struct {
	Name  string
	Value Node
}

func (n *VariableDeclaration) Accept(v *Visitor) {
	if v.VisitVariableDeclaration != nil {
		v.VisitVariableDeclaration(n)
	}
}

// LiteralBoolean is a `true`/`false` literal. It has no children.
type LiteralBoolean struct {
	Value bool
}

func (n *LiteralBoolean) Accept(v *Visitor) {
	if v.VisitLiteralBoolean != nil {
		v.VisitLiteralBoolean(n)
	}
}

// LiteralNumber is a NUMBER literal, stored as its original source text
// per the module's non-goal of not normalizing numeric literals. It has
// no children.
type LiteralNumber struct {
	Value string
}

func (n *LiteralNumber) Accept(v *Visitor) {
	if v.VisitLiteralNumber != nil {
		v.VisitLiteralNumber(n)
	}
}

// LiteralString is a STRING literal with its quotes already stripped by
// the lexer. It has no children.
type LiteralString struct {
	Value string
}

func (n *LiteralString) Accept(v *Visitor) {
	if v.VisitLiteralString != nil {
		v.VisitLiteralString(n)
	}
}

// Identifier is a bare name reference. It has no children.
type Identifier struct {
	Name string
}

func (n *Identifier) Accept(v *Visitor) {
	if v.VisitIdentifier != nil {
		v.VisitIdentifier(n)
	}
}

// ParenthesizedExpression groups a sequence of body elements, the last of
// which is conventionally its value.
type ParenthesizedExpression struct {
	Body []Node
}

func (n *ParenthesizedExpression) Accept(v *Visitor) {
	if v.VisitParenthesizedExpression != nil {
		v.VisitParenthesizedExpression(n)
	}
}

// IfExpression evaluates Condition, then either the If-body or the
// Else-body. Else may be empty.
type IfExpression struct {
	Condition Node
	Then      []Node
	Else      []Node
}

func (n *IfExpression) Accept(v *Visitor) {
	if v.VisitIfExpression != nil {
		v.VisitIfExpression(n)
	}
}

// InvocationExpression calls Target with Args. The default visitor walk
// visits each argument but deliberately does not visit Target; a pass
// that needs to see the callee must do so itself (see PrintTreeVisitor).
type InvocationExpression struct {
	Target Node
	Args   []Node
}

func (n *InvocationExpression) Accept(v *Visitor) {
	if v.VisitInvocationExpression != nil {
		v.VisitInvocationExpression(n)
	}
}

// ReturnStatement returns the result of evaluating Value, which may be
// nil for a bare `return`.
type ReturnStatement struct {
	Value Node
}

func (n *ReturnStatement) Accept(v *Visitor) {
	if v.VisitReturnStatement != nil {
		v.VisitReturnStatement(n)
	}
}
