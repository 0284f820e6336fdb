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

// Package charclass defines pure ASCII character classification predicates
// shared by the scanner and lexer. There is no locale support and no
// Unicode-aware classification; identifiers are restricted to ASCII
// letters, digits, and underscore.
package charclass

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is an ASCII hexadecimal digit.
func IsHexDigit(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdentifierStart reports whether c can begin an identifier.
func IsIdentifierStart(c rune) bool {
	return IsLetter(c) || c == '_'
}

// IsIdentifier reports whether c can continue an identifier begun by
// IsIdentifierStart.
func IsIdentifier(c rune) bool {
	return IsIdentifierStart(c) || IsDigit(c)
}

// IsWhiteSpace reports whether c is a space, tab, line feed, or carriage
// return.
func IsWhiteSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
