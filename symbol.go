package zzre

import (
	"fmt"
	"strings"
)

// Symbol is one element of a normalised expression. Literal characters are
// stored as their lowercased code point; shorthand classes and escaped
// meta-characters use tags above 0xFF so they never collide with a literal.
type Symbol rune

// Shorthand and escaped symbols.
const (
	Whitespace        Symbol = 0x100 + iota // \s
	Digit                                   // \d
	Alpha                                   // \a
	Epsilon                                 // \e
	LiteralDot                              // \.
	LiteralStar                             // \*
	LiteralBar                              // \|
	LiteralLeftParen                        // \(
	LiteralRightParen                       // \)
	LiteralQuestion                         // \?
)

// Operator symbols. These share their value with the character that
// produces them.
const (
	Concat      Symbol = '.'
	Backslash   Symbol = '\\'
	Alternation Symbol = '|'
	Repetition  Symbol = '*'
	LeftGroup   Symbol = '('
	RightGroup  Symbol = ')'
	Wildcard    Symbol = '?'
)

// escapes maps the (lowercased) character following a backslash to the
// symbol it produces.
var escapes = map[rune]Symbol{
	'\\': Backslash,
	's':  Whitespace,
	'd':  Digit,
	'a':  Alpha,
	'e':  Epsilon,
	'.':  LiteralDot,
	'*':  LiteralStar,
	'|':  LiteralBar,
	'(':  LiteralLeftParen,
	')':  LiteralRightParen,
	'?':  LiteralQuestion,
}

// IsOperator reports whether s is one of the meta-characters with structural
// meaning: | * ( ) or ?.
func (s Symbol) IsOperator() bool { return isMeta(rune(s)) }

// Matches reports whether the input character c can be consumed by a state
// guarded by s.
func (s Symbol) Matches(c rune) bool {
	switch s {
	case Wildcard:
		return true
	case Whitespace:
		return isSpace(c)
	case Digit:
		return isDigit(c)
	case Alpha:
		return isAlpha(c)
	case LiteralDot:
		return c == '.'
	case LiteralStar:
		return c == '*'
	case LiteralBar:
		return c == '|'
	case LiteralLeftParen:
		return c == '('
	case LiteralRightParen:
		return c == ')'
	case LiteralQuestion:
		return c == '?'
	case Epsilon:
		return false
	}
	return s == Symbol(toLower(c)) && !isMeta(c)
}

// valid reports whether s could have been produced by normalisation.
func (s Symbol) valid() bool {
	if Whitespace <= s && s <= LiteralQuestion {
		return true
	}
	return isPrintable(rune(s)) && !('A' <= s && s <= 'Z')
}

func (s Symbol) String() string {
	switch s {
	case Whitespace:
		return `\s`
	case Digit:
		return `\d`
	case Alpha:
		return `\a`
	case Epsilon:
		return `\e`
	case LiteralDot:
		return `\.`
	case LiteralStar:
		return `\*`
	case LiteralBar:
		return `\|`
	case LiteralLeftParen:
		return `\(`
	case LiteralRightParen:
		return `\)`
	case LiteralQuestion:
		return `\?`
	case Backslash:
		return `\\`
	}
	if s < 0x21 || s > 0x7e {
		return fmt.Sprintf("%U", rune(s))
	}
	return string(rune(s))
}

// Expression is a normalised expression. Index i of the expression is the
// symbol guarding state i of the automaton built from it.
type Expression []Symbol

func (e Expression) String() string {
	var sb strings.Builder
	for _, s := range e {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func isMeta(c rune) bool {
	switch c {
	case '|', '*', '(', ')', '?':
		return true
	}
	return false
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	}
	return false
}

func isAlpha(c rune) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }
func isDigit(c rune) bool { return '0' <= c && c <= '9' }

// isPrintable reports whether c is in the printable ASCII range 33-126.
func isPrintable(c rune) bool { return 33 <= c && c <= 126 }

func toLower(c rune) rune {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
