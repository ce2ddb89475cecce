package scicalc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("-2**2")
	f.Add("sin(cos(1e3))")
	f.Add("((1)")
	f.Add("2×3")
	f.Fuzz(func(t *testing.T, s string) {
		ex, err := scicalc.Parse(strings.NewReader(s))
		if err != nil {
			var ie scicalc.InputError
			if !errors.As(err, &ie) {
				t.Errorf("parse error %#v for %q is not an InputError", err, s)
			}
			return
		}
		p := ex.String()
		re, err := scicalc.ParseString(p)
		if err != nil {
			t.Fatalf("%q parsed to %q, which failed to reparse: %v", s, p, err)
		}
		if q := re.String(); q != p {
			t.Errorf("%q parsed to %q, which reparsed to %q", s, p, q)
		}
	})
}

func FuzzNormalize(f *testing.F) {
	f.Add("ln(2)")
	f.Add("√√16))")
	f.Add("2^3÷4×5")
	f.Add("lnln ln")
	f.Fuzz(func(t *testing.T, s string) {
		once := scicalc.Normalize(s)
		if twice := scicalc.Normalize(once); twice != once {
			t.Errorf("normalizing %q gave %q, then %q", s, once, twice)
		}
	})
}
