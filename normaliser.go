package zzre

import "fmt"

// Normalise converts a raw expression into a sequence of symbols. Escape
// sequences become shorthand symbols, literals are lowercased, and the
// concatenation marker and whitespace are dropped.
func Normalise(raw string, opts ...ParseOption) (Expression, error) {
	cfg := defaultParseConfig
	for _, o := range opts {
		o(&cfg)
	}
	return normalise(raw, &cfg)
}

func normalise(raw string, cfg *parseConfig) (Expression, error) {
	// Most characters produce one symbol, so preallocate len(raw).
	expr := make(Expression, 0, len(raw))
	marker := cfg.concatMarker()

	escape := false // the previous char was \
	offset := 0     // offset of the escaping backslash
	for i, c := range raw {
		if escape {
			escape = false
			sym, ok := escapes[toLower(c)]
			if !ok {
				return nil, fmt.Errorf("%w: escape sequence \\%c at offset %d", ErrUnsupportedSymbol, c, offset)
			}
			expr = append(expr, sym)
			continue
		}

		switch {
		case c == '\\':
			escape = true
			offset = i

		case c == marker:
			// Concatenation is implicit.

		case isSpace(c):
			// Insignificant.

		case isPrintable(c):
			expr = append(expr, Symbol(toLower(c)))

		default:
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrUnsupportedSymbol, c, i)
		}
	}

	if escape {
		return nil, fmt.Errorf("%w: trailing backslash at offset %d", ErrUnsupportedSymbol, offset)
	}
	return expr, nil
}
