package domain

import (
	"regexp"
	"strings"
)

// numericLiteral matches hex, binary and decimal literals with an optional
// alphabetic suffix (captured separately).
var numericLiteral = regexp.MustCompile(
	`\b(0[xX][0-9a-fA-F](?:[0-9a-fA-F_']*[0-9a-fA-F])?|0[bB][01](?:[01_']*[01])?|\d(?:[\d_']*\d)?(?:\.(?:\d(?:[\d_']*\d)?)?)?(?:[eE][+-]?\d+)?)([a-zA-Z]*)`,
)

// typeSuffixes are literal suffixes that only select a numeric type.
var typeSuffixes = map[string]struct{}{
	"m": {}, "f": {}, "d": {}, "l": {}, "u": {},
	"ul": {}, "lu": {}, "ll": {}, "ull": {}, "llu": {},
}

// NormalizeNumericLiterals rewrites every numeric literal in code to a canonical
// form: digit separators removed, type suffixes dropped, redundant fractional
// zeros collapsed and hex digits lowercased.
func NormalizeNumericLiterals(code string) string {
	return numericLiteral.ReplaceAllStringFunc(code, func(lit string) string {
		parts := numericLiteral.FindStringSubmatch(lit)
		number, suffix := parts[1], parts[2]

		if _, ok := typeSuffixes[strings.ToLower(suffix)]; ok {
			suffix = ""
		}

		number = strings.NewReplacer("_", "", "'", "").Replace(number)

		lower := strings.ToLower(number)
		if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") {
			return lower + suffix
		}

		return collapseFraction(number) + suffix
	})
}

// collapseFraction turns "1.50" into "1.5", "2.0" and "2." into "2", keeping any exponent.
func collapseFraction(number string) string {
	mantissa, exponent := number, ""
	if i := strings.IndexAny(number, "eE"); i >= 0 {
		mantissa, exponent = number[:i], strings.ToLower(number[i:])
	}

	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}

	return mantissa + exponent
}

// NumericallyEquivalent reports whether a and b differ only in the spelling of
// numeric literals.
func NumericallyEquivalent(a, b string) bool {
	return NormalizeNumericLiterals(a) == NormalizeNumericLiterals(b)
}
