package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseConst parses a literal in the given radix (2, 8, 10, or 16) into
// a Const. A leading '-' or '+' both produce a Signed value (negated
// for '-', left positive for '+'); no sign produces an Unsigned value
// (spec §3: "if the string starts with '+' or '-', parse as signed;
// else as unsigned"). The magnitude is parsed exactly via math/big and
// then saturated into the target variant's range, so an out-of-range
// literal does not error but clamps, the same way runtime arithmetic
// does.
func ParseConst(s string, radix int) (Const, error) {
	if s == "" {
		return Const{}, fmt.Errorf("numeric: empty constant literal")
	}

	variant := Unsigned
	rest := s
	negate := false
	switch {
	case strings.HasPrefix(s, "-"):
		variant = Signed
		negate = true
		rest = s[1:]
	case strings.HasPrefix(s, "+"):
		variant = Signed
		rest = s[1:]
	}
	if rest == "" {
		return Const{}, fmt.Errorf("numeric: malformed constant literal %q", s)
	}

	mag, ok := new(big.Int).SetString(rest, radix)
	if !ok {
		return Const{}, fmt.Errorf("numeric: invalid base-%d digits in %q", radix, s)
	}
	if negate {
		mag.Neg(mag)
	}
	return saturate(mag, variant), nil
}
