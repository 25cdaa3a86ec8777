// Package zzre implements a small regular expression matcher. Expressions are
// compiled into a non-deterministic finite automaton using Thompson's
// construction, and matched by simulating every active state at once.
//
// The syntax is:
//
//	c        any printable ASCII character other than ( ) | * ? . \ matches
//	         itself, ignoring case
//	?        matches any single character
//	\s \d \a match a whitespace character, a digit or a letter
//	\e       matches the empty string
//	\\ \. \* \| \( \) \?
//	         match the escaped character
//	(e)      groups e
//	(e|f|g)  matches any one of the branches; | must be inside a group
//	e*       matches zero or more of e, where e is a symbol or a group
//	.        explicitly concatenates (unless TreatDotAsLiteral is enabled)
//
// Whitespace in an expression is ignored, and an expression must match the
// whole line. Search applies an automaton to every line of a tree of files.
package zzre
