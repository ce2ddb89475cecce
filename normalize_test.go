package scicalc_test

import (
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1+2", "1+2"},
		{"log(2)", "log(2)"},
		{"ln(2)", "log(2)"},
		{"ln(ln(2))", "log(log(2))"},
		{"ln", "log"},
		{"2^3", "2**3"},
		{"2^^3", "2****3"},
		{"6÷3", "6/3"},
		{"2×3", "2*3"},
		{"√4)", "sqrt(4)"},
		{"√√16))", "sqrt(sqrt(16))"},
		{"√(ln(e)^2)×3÷4", "sqrt((log(e)**2)*3/4"},
		// Aliases replace whole identifiers only.
		{"lnx", "lnx"},
		{"xln", "xln"},
		{"ln2", "ln2"},
		{"_ln", "_ln"},
		{"ln ln", "log log"},
		{"2ln(2)", "2ln(2)"},
		// Everything else passes through, valid or not.
		{"foo(1)", "foo(1)"},
		{"$ # @", "$ # @"},
		{"\xff\xfe", "\xff\xfe"},
		{"2 × π", "2 * π"},
	}
	for _, c := range cases {
		got := scicalc.Normalize(c.raw)
		if got != c.want {
			t.Errorf("wrong normalization of %q: want %q, got %q", c.raw, c.want, got)
		}
		if again := scicalc.Normalize(got); again != got {
			t.Errorf("normalizing %q twice gave %q then %q", c.raw, got, again)
		}
	}
}
