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

// Command tinylex is the ambient command-line driver for the tinylex
// front-end. It is not part of the language specification: the parser,
// module/type system, and code generator it would otherwise feed remain
// out of scope. It exists so the lexer and the AST visitor framework have
// somewhere to run from a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinylex/tinylex/ast"
	"github.com/tinylex/tinylex/lexer"
	"github.com/tinylex/tinylex/source"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tinylex", flag.ContinueOnError)
	file := fs.String("file", "", "source file to tokenize")
	configPath := fs.String("config", "", "optional TOML config file")
	tree := fs.Bool("tree", false, "print a demo AST via PrintTreeVisitor instead of tokenizing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLogger()

	if *tree {
		ast.NewPrintTreeVisitor(os.Stdout, "  ").V.VisitCompilationUnit(demoUnit())
		return nil
	}

	if *file == "" {
		return fmt.Errorf("tinylex: -file is required unless -tree is given")
	}

	contents, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *file, err)
	}

	src := source.NewFile(*file, string(contents))
	logger.Info("tokenizing", "file", *file, "id", src.ID.String(), "bytes", src.Length())

	extraKeywords, err := resolveExtraKeywords(cfg.ExtraKeywords)
	if err != nil {
		return err
	}

	reporter := lexer.ErrorReporter(lexer.DefaultReporter)
	if cfg.TabWidth > 1 {
		reporter = lexer.NewTabAwareReporter(src, cfg.TabWidth)
	}
	collector := &lexer.CollectingReporter{Format: reporter}
	if cfg.ContinueOnError {
		reporter = collector.Report
	}

	tokens, err := lexer.TokenizeWithKeywords(src, reporter, extraKeywords)
	if err != nil {
		logger.Error("lexing failed", "file", *file, "error", err)
		return err
	}
	for _, e := range collector.Errors {
		logger.Warn("lexical error", "file", *file, "error", e)
	}

	for _, tok := range tokens {
		fmt.Printf("%-24s %-20q offset=%d comments=%d\n", tok.Kind, tok.Lexeme, tok.Offset, len(tok.Comments))
	}

	return nil
}

// demoUnit is a hand-built AST, since the grammar/parser producing one
// from tinylex source is out of this module's scope. It exercises most
// node kinds PrintTreeVisitor renders; LiteralBoolean and
// ParenthesizedExpression do not appear in it.
func demoUnit() *ast.CompilationUnit {
	return &ast.CompilationUnit{
		Functions: []*ast.FunctionDeclaration{
			{
				Name:   "main",
				Params: nil,
				Body: []ast.Node{
					&ast.VariableDeclaration{
						Name:  "greeting",
						Value: &ast.LiteralString{Value: "Hello"},
					},
					&ast.IfExpression{
						Condition: &ast.Identifier{Name: "greeting"},
						Then: []ast.Node{
							&ast.InvocationExpression{
								Target: &ast.Identifier{Name: "print"},
								Args:   []ast.Node{&ast.Identifier{Name: "greeting"}},
							},
						},
						Else: nil,
					},
					&ast.ReturnStatement{Value: &ast.LiteralNumber{Value: "0"}},
				},
			},
		},
	}
}
