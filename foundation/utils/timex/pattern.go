// File: pattern.go
// Title: Pattern Tokenizer
// Description: Splits a Unicode date pattern into fields and literals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"strings"
)

// token is either a pattern field (letter repeated width times) or literal text
type token struct {
	letter  byte
	width   int
	literal string
}

func (t token) isField() bool {
	return t.letter != 0
}

func (t token) isNumeric() bool {
	switch t.letter {
	case 'y', 'Y', 'u', 'd', 'D', 'h', 'H', 'k', 'K', 'm', 's', 'S':
		return true
	case 'M', 'L', 'Q', 'q':
		return t.width <= 2
	case 'e', 'c':
		return t.width <= 2
	}
	return false
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenize splits pattern into tokens. Adjacent literals are merged; an
// unterminated quote runs to the end of the pattern.
func tokenize(pattern string) []token {
	var (
		tokens []token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			i++
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						lit.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				lit.WriteByte(pattern[i])
				i++
			}
		case isPatternLetter(c):
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			flush()
			tokens = append(tokens, token{letter: c, width: j - i})
			i = j
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return tokens
}

// render writes tokens back into pattern syntax, quoting literal letters
func render(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.isField() {
			b.WriteString(strings.Repeat(string(t.letter), t.width))
			continue
		}
		b.WriteString(quoteLiteral(t.literal))
	}
	return b.String()
}

// quoteLiteral quotes the span from the first to the last letter of s so
// that surrounding spaces and punctuation stay bare
func quoteLiteral(s string) string {
	first, last := -1, -1
	for i := 0; i < len(s); i++ {
		if isPatternLetter(s[i]) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	escape := func(v string) string {
		return strings.ReplaceAll(v, "'", "''")
	}
	if first < 0 {
		return escape(s)
	}
	return escape(s[:first]) + "'" + escape(s[first:last+1]) + "'" + escape(s[last+1:])
}
