package interp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// regKey is the register a variable token refers to: its first character.
// "apple" and "avocado" are the same register.
func regKey(tok string) rune {
	r, _ := utf8.DecodeRuneInString(tok)
	return r
}

func isQuoted(tok string) bool {
	return strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`)
}

// parseInt reads a decimal int32.
func parseInt(tok string) (int32, error) {
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("integer literal %q out of range", tok)
		}
		return 0, fmt.Errorf("bad integer literal %q", tok)
	}
	return int32(n), nil
}

// parseFloat reads a decimal float. Go-only syntax (hex mantissas, digit
// separators) is rejected; overflowing literals become infinities.
func parseFloat(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.Contains(tok, "_") || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("bad float literal %q", tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("bad float literal %q", tok)
	}
	return f, nil
}

// truncate drops the fractional part, saturating at the int32 bounds.
func truncate(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
