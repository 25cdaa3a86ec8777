package zzre

var defaultParseConfig = parseConfig{
	treatDotAsLiteral: false,
}

type parseConfig struct {
	treatDotAsLiteral bool
}

// concatMarker returns the character that explicitly marks concatenation.
// It is dropped during normalisation.
func (c *parseConfig) concatMarker() rune {
	if c.treatDotAsLiteral {
		// Space is already insignificant, so in effect there is no marker.
		return ' '
	}
	return rune(Concat)
}

// ParseOption functions optionally alter how expressions are normalised.
type ParseOption = func(*parseConfig)

// TreatDotAsLiteral changes how . is parsed. By default . is an explicit
// concatenation marker and is discarded, since concatenation is implicit.
// If enabled, . is a literal that matches itself, and \. is still
// available. Disabled by default.
func TreatDotAsLiteral(enable bool) ParseOption {
	return func(o *parseConfig) {
		o.treatDotAsLiteral = enable
	}
}
