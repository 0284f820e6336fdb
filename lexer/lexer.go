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

// Package lexer converts a source.File's character stream into a
// token.Token stream via maximal-munch tokenization, attaching leading
// line comments to the next significant token it emits.
package lexer

import (
	"strings"

	"github.com/tinylex/tinylex/charclass"
	"github.com/tinylex/tinylex/scanner"
	"github.com/tinylex/tinylex/source"
	"github.com/tinylex/tinylex/token"
)

// Lexer holds the state needed to tokenize a single source.File. Tokenize
// and TokenizeWithKeywords drive it over the whole file; Lexer has no
// exported method for pulling tokens one at a time.
type Lexer struct {
	file     *source.File
	program  *scanner.Scanner
	reporter ErrorReporter

	// extraKeywords supplements token.Keywords with additional reserved
	// lexemes, each mapping to a Kind that already exists in the closed
	// set. It is checked before token.Keywords, so a config-supplied entry
	// can also rebind a lexeme that would otherwise be a plain
	// IDENTIFIER.
	extraKeywords map[string]token.Kind

	// anchor is the scanner position at the start of the token currently
	// being built. It is distinct from program.Position(), which is the
	// scanner's own cursor.
	anchor int

	// lastComments buffers line comments awaiting attachment to the next
	// emitted token.
	lastComments []token.Comment
}

// New creates a Lexer over file. A nil reporter defaults to
// DefaultReporter.
func New(file *source.File, reporter ErrorReporter) *Lexer {
	return NewWithKeywords(file, reporter, nil)
}

// NewWithKeywords is like New but recognizes extraKeywords as additional
// reserved lexemes alongside token.Keywords, without widening the closed
// Kind set: every value in extraKeywords must be a Kind that already
// exists (see cmd/tinylex's Configuration, which lets a TOML config file
// register dialect aliases this way).
func NewWithKeywords(file *source.File, reporter ErrorReporter, extraKeywords map[string]token.Kind) *Lexer {
	if reporter == nil {
		reporter = DefaultReporter
	}
	return &Lexer{
		file:          file,
		program:       scanner.New(file),
		reporter:      reporter,
		extraKeywords: extraKeywords,
	}
}

// Tokenize lexes the full contents of file and returns the resulting
// token stream, always terminated by a synthetic EOF token. If reporter
// is nil, DefaultReporter is used. Tokenize stops and returns an error as
// soon as the reporter returns a non-nil error for some lexical error;
// the tokens produced up to that point are still returned.
func Tokenize(file *source.File, reporter ErrorReporter) ([]token.Token, error) {
	return TokenizeWithKeywords(file, reporter, nil)
}

// TokenizeWithKeywords is like Tokenize but recognizes extraKeywords as
// additional reserved lexemes; see NewWithKeywords.
func TokenizeWithKeywords(file *source.File, reporter ErrorReporter, extraKeywords map[string]token.Kind) ([]token.Token, error) {
	l := NewWithKeywords(file, reporter, extraKeywords)

	var tokens []token.Token
	for l.program.HasNext() {
		tok, err := l.scanToken()
		if tok != nil {
			tokens = append(tokens, *tok)
		}
		if err != nil {
			tokens = append(tokens, l.eofToken())
			return tokens, err
		}
	}

	tokens = append(tokens, l.eofToken())
	return tokens, nil
}

func (l *Lexer) eofToken() token.Token {
	return token.Token{
		Kind:   token.EOF,
		Lexeme: "",
		Offset: l.program.Position(),
	}
}

// scanToken reads one code unit and dispatches on it, returning the token
// produced (nil for whitespace, comments, or a skipped unknown
// character) and a non-nil error only when the configured reporter has
// asked the lexer to stop.
func (l *Lexer) scanToken() (*token.Token, error) {
	l.anchor = l.program.Position()
	c := l.program.Advance()

	switch {
	case c == '(':
		return l.emit(token.LEFT_PAREN), nil
	case c == ')':
		return l.emit(token.RIGHT_PAREN), nil
	case c == '{':
		return l.emit(token.LEFT_CURLY), nil
	case c == '}':
		return l.emit(token.RIGHT_CURLY), nil
	case c == '.':
		return l.emit(token.PERIOD), nil

	case c == '+':
		if l.program.MatchChar('=') {
			return l.emit(token.PLUS_BY), nil
		}
		if l.program.MatchChar('+') {
			return l.emit(token.INCREMENT), nil
		}
		return l.emit(token.PLUS), nil

	case c == '-':
		if l.program.MatchChar('>') {
			return l.emit(token.ARROW), nil
		}
		if l.program.MatchChar('=') {
			return l.emit(token.MINUS_BY), nil
		}
		if l.program.MatchChar('-') {
			return l.emit(token.DECREMENT), nil
		}
		return l.emit(token.MINUS), nil

	case c == '*':
		if l.program.MatchChar('=') {
			return l.emit(token.STAR_BY), nil
		}
		return l.emit(token.STAR), nil

	case c == '%':
		if l.program.MatchChar('=') {
			return l.emit(token.MODULUS_BY), nil
		}
		return l.emit(token.MODULUS), nil

	case c == '=':
		if l.program.MatchChar('=') {
			if l.program.MatchChar('=') {
				return l.emit(token.IDENTICAL), nil
			}
			return l.emit(token.EQUALS), nil
		}
		return l.emit(token.ASSIGN), nil

	case c == '<':
		if l.program.MatchChar('=') {
			return l.emit(token.LESS_THAN_OR_EQUAL), nil
		}
		if l.program.MatchChar('<') {
			return l.emit(token.LEFT_SHIFT), nil
		}
		return l.emit(token.LESS_THAN), nil

	case c == '>':
		if l.program.MatchChar('=') {
			return l.emit(token.GREATER_THAN_OR_EQUAL), nil
		}
		if l.program.MatchChar('>') {
			return l.emit(token.RIGHT_SHIFT), nil
		}
		return l.emit(token.GREATER_THAN), nil

	case c == '!':
		if l.program.MatchChar('=') {
			if l.program.MatchChar('=') {
				return l.emit(token.NOT_IDENTICAL), nil
			}
			return l.emit(token.NOT_EQUALS), nil
		}
		return l.emit(token.LOGICAL_NOT), nil

	case c == '/':
		return l.scanSlash()

	case c == '|':
		if l.program.MatchChar('|') {
			return l.emit(token.LOGICAL_OR), nil
		}
		return l.emit(token.OR), nil

	case c == '&':
		if l.program.MatchChar('&') {
			return l.emit(token.LOGICAL_AND), nil
		}
		return l.emit(token.AND), nil

	case c == '~':
		return l.emit(token.NEGATE), nil
	case c == '^':
		return l.emit(token.LOGICAL_XOR), nil

	case c == '\'':
		return l.scanString()

	case charclass.IsWhiteSpace(c):
		l.ignore()
		return nil, nil

	case charclass.IsDigit(c):
		return l.scanNumber(), nil

	case charclass.IsIdentifierStart(c):
		return l.scanIdentifier(), nil

	default:
		return nil, l.reportError("unexpected character", l.anchor)
	}
}

// scanSlash handles both division operators and line comments, since both
// begin with '/'.
func (l *Lexer) scanSlash() (*token.Token, error) {
	if l.program.MatchChar('/') {
		l.scanLineComment()
		return nil, nil
	}
	if l.program.MatchChar('=') {
		return l.emit(token.SLASH_BY), nil
	}
	return l.emit(token.SLASH), nil
}

// scanLineComment consumes a "//" comment up to (but not including) its
// line terminator, treating CR+LF as a single terminator, and buffers it
// for attachment to the next significant token.
func (l *Lexer) scanLineComment() {
	for l.program.HasNext() {
		if l.program.Peek(0) == '\n' || l.program.Peek(0) == '\r' {
			break
		}
		l.program.Advance()
	}

	lexeme := strings.TrimRight(l.program.Substring(l.anchor, l.program.Position()), "\r\n")
	l.lastComments = append(l.lastComments, token.Comment{
		Lexeme: lexeme,
		Offset: l.anchor,
	})
	l.anchor = l.program.Position()
}

// scanString consumes a string literal opened by the quote already
// advanced past. The emitted lexeme excludes the surrounding quotes. An
// unterminated string is reported but a (possibly truncated) STRING token
// is still emitted to aid downstream recovery.
func (l *Lexer) scanString() (*token.Token, error) {
	contentStart := l.program.Position()

	for l.program.HasNext() && l.program.Peek(0) != '\'' {
		l.program.Advance()
	}

	content := l.program.Substring(contentStart, l.program.Position())

	if !l.program.HasNext() {
		start := l.anchor
		tok := l.emitWithLexeme(token.STRING, content)
		return tok, l.reportError("unterminated string", start)
	}

	l.program.Advance() // closing quote
	return l.emitWithLexeme(token.STRING, content), nil
}

// scanNumber consumes a number literal. The lexer's first digit has
// already been advanced past by scanToken.
//
// This preserves two documented quirks rather than silently fixing them
// (see the module's Open Questions): the exponent branch does not first
// consume the leading mantissa digits, so "12e3" tokenizes as NUMBER("12")
// followed by IDENTIFIER("e3"); and the fractional branch consumes the
// '.' into the current token but does not continue consuming digits after
// it, so "1.5" tokenizes as NUMBER("1.") followed by NUMBER("5").
func (l *Lexer) scanNumber() *token.Token {
	first := l.program.Substring(l.anchor, l.program.Position())

	if first == "0" && (l.program.Peek(0) == 'x' || l.program.Peek(0) == 'X') {
		l.program.Advance()
		for l.program.MatchPred(charclass.IsHexDigit) {
		}
		return l.emit(token.NUMBER)
	}

	if l.program.Peek(0) == 'e' || l.program.Peek(0) == 'E' {
		l.program.Advance()
		for l.program.MatchPred(charclass.IsDigit) {
		}
		return l.emit(token.NUMBER)
	}

	for l.program.MatchPred(charclass.IsDigit) {
	}
	l.program.MatchChar('.')

	return l.emit(token.NUMBER)
}

// scanIdentifier consumes an identifier or keyword. The lexer's
// identifier-start character has already been advanced past by scanToken.
func (l *Lexer) scanIdentifier() *token.Token {
	for l.program.MatchPred(charclass.IsIdentifier) {
	}

	lexeme := l.program.Substring(l.anchor, l.program.Position())
	if kind, ok := l.extraKeywords[lexeme]; ok {
		return l.emit(kind)
	}
	if kind, ok := token.Keywords[lexeme]; ok {
		return l.emit(kind)
	}
	return l.emit(token.IDENTIFIER)
}

// ignore advances the anchor to the scanner's current position, discarding
// whatever was scanned since the last emitted token without producing one.
func (l *Lexer) ignore() {
	l.anchor = l.program.Position()
}

// emit builds a Token from the lexeme between the anchor and the
// scanner's current position, drains any buffered comments onto it, and
// advances the anchor past it.
func (l *Lexer) emit(kind token.Kind) *token.Token {
	return l.emitWithLexeme(kind, l.program.Substring(l.anchor, l.program.Position()))
}

// emitWithLexeme is like emit but uses lexeme in place of the raw
// scanner substring, needed for STRING tokens whose lexeme excludes the
// surrounding quotes.
func (l *Lexer) emitWithLexeme(kind token.Kind, lexeme string) *token.Token {
	tok := &token.Token{
		Kind:     kind,
		Lexeme:   lexeme,
		Comments: l.drainComments(),
		Offset:   l.anchor,
	}
	l.anchor = l.program.Position()
	return tok
}

func (l *Lexer) drainComments() []token.Comment {
	if len(l.lastComments) == 0 {
		return nil
	}
	comments := l.lastComments
	l.lastComments = nil
	return comments
}

// reportError invokes the configured ErrorReporter with the one-character
// span [offset, offset+1) and msg.
func (l *Lexer) reportError(msg string, offset int) error {
	end := offset + 1
	if end > l.file.Length() {
		end = l.file.Length()
	}
	span, spanErr := l.file.Span(offset, end)
	if spanErr != nil {
		return spanErr
	}
	return l.reporter(span, msg)
}
