package scicalc

import (
	"math"
	"strconv"
)

// Format renders a result for display as the shortest decimal that parses
// back to v. Magnitudes from 1e-4 up to but excluding 1e16 are written
// without an exponent; others use the form 1e+16. Non-finite values are
// inf, -inf, and nan.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a == 0 || 1e-4 <= a && a < 1e16 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'e', -1, 64)
}
