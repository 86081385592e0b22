/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package syntax wraps a hand-written lexer and recursive-descent scanner
// that extracts the item-level surface a crate indexer needs: struct,
// enum, const, type-alias, module, extern-crate, and use declarations,
// plus the `path`/`cfg_attr(.., path=..)` attributes that steer module
// discovery. It is not a full-language parser: expression and statement
// bodies are skipped as balanced brace/paren/bracket spans, never walked.
package syntax

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokPunct // single-char punctuation: { } ( ) [ ] < > , ; : = * & # ! '
	tokColonColon
)

type token struct {
	kind tokenKind
	text string
}

// lexer turns source bytes into a flat token stream, stripping whitespace
// and comments. Strings are recognized well enough to avoid mistaking
// braces or semicolons embedded in them for structural tokens; nothing
// inside a string or comment is otherwise interpreted.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.pos++
		case b == '/' && l.peekByteAt(1) == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case b == '/' && l.peekByteAt(1) == '*':
			l.pos += 2
			depth := 1
			for l.pos < len(l.src) && depth > 0 {
				if l.src[l.pos] == '/' && l.peekByteAt(1) == '*' {
					depth++
					l.pos += 2
					continue
				}
				if l.src[l.pos] == '*' && l.peekByteAt(1) == '/' {
					depth--
					l.pos += 2
					continue
				}
				l.pos++
			}
		default:
			return
		}
	}
}

// next returns the next token in the stream, or a tokEOF token once
// exhausted.
func (l *lexer) next() token {
	l.skipWhitespaceAndComments()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF}
	}

	b := l.src[l.pos]

	if b == ':' && l.peekByteAt(1) == ':' {
		l.pos += 2
		return token{kind: tokColonColon, text: "::"}
	}

	if b == '"' {
		start := l.pos
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != '"' {
			if l.src[l.pos] == '\\' {
				l.pos++
			}
			l.pos++
		}
		if l.pos < len(l.src) {
			l.pos++ // closing quote
		}
		raw := string(l.src[start+1 : min(l.pos-1, len(l.src))])
		return token{kind: tokString, text: raw}
	}

	// raw identifier escape `r#ident` — surfaced as a distinct ident text
	// prefixed with "r#" so callers can recognize and skip it per the
	// discoverer's documented raw-identifier limitation.
	if b == 'r' && l.peekByteAt(1) == '#' && isIdentStart(l.peekByteAt(2)) {
		start := l.pos
		l.pos += 2
		for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos])}
	}

	if isIdentStart(b) {
		start := l.pos
		for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: string(l.src[start:l.pos])}
	}

	l.pos++
	return token{kind: tokPunct, text: string(b)}
}

// tokenize lexes the full source into a slice of tokens terminated by a
// tokEOF sentinel.
func tokenize(src []byte) []token {
	l := newLexer(src)
	var toks []token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.kind == tokEOF {
			return toks
		}
	}
}
