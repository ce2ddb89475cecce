package scicalc

import (
	"math"
	"testing"
)

func TestSymbols(t *testing.T) {
	want := []string{"cos", "degrees", "e", "factorial", "log", "log10", "pi", "radians", "sin", "sqrt", "tan"}
	got := Symbols()
	if len(got) != len(want) {
		t.Fatalf("wrong symbols: want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong symbols: want %q, got %q", want, got)
			break
		}
	}
	// Both tables have exactly the same keys.
	for _, tab := range []symtab{degreeTable, radianTable} {
		if len(tab) != len(want) {
			t.Errorf("table has %d symbols, want %d", len(tab), len(want))
		}
		for _, name := range want {
			if tab[name] == nil {
				t.Errorf("table is missing %s", name)
			}
		}
	}
}

func TestArity(t *testing.T) {
	cases := []struct {
		name string
		n    int
		ok   bool
	}{
		{"pi", 0, true},
		{"e", 0, true},
		{"sin", 1, true},
		{"factorial", 1, true},
		{"log10", 1, true},
		{"ln", 0, false},
		{"exp", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		n, ok := Arity(c.name)
		if n != c.n || ok != c.ok {
			t.Errorf("wrong arity for %q: want %d, %t; got %d, %t", c.name, c.n, c.ok, n, ok)
		}
	}
}

func TestConstants(t *testing.T) {
	if piConst != math.Pi {
		t.Errorf("pi is %v, want %v", piConst, math.Pi)
	}
	if eConst != math.E {
		t.Errorf("e is %v, want %v", eConst, math.E)
	}
}

func TestTrigModes(t *testing.T) {
	cases := []struct {
		name string
		deg  float64
		rad  float64
	}{
		{"sin", 30, math.Pi / 6},
		{"sin", -90, -math.Pi / 2},
		{"cos", 60, math.Pi / 3},
		{"cos", 180, math.Pi},
		{"tan", 45, math.Pi / 4},
		{"tan", 0, 0},
	}
	for _, c := range cases {
		d, err := degreeTable[c.name].call([]float64{c.deg})
		if err != nil {
			t.Errorf("%s(%v) in degrees: %v", c.name, c.deg, err)
			continue
		}
		r, err := radianTable[c.name].call([]float64{c.rad})
		if err != nil {
			t.Errorf("%s(%v) in radians: %v", c.name, c.rad, err)
			continue
		}
		if math.Abs(d-r) > 1e-12 {
			t.Errorf("%s differs: %v in degrees, %v in radians", c.name, d, r)
		}
	}
}

func TestFactorial(t *testing.T) {
	want := 1.0
	for n := 0; n <= 22; n++ {
		if n > 0 {
			want *= float64(n)
		}
		got, err := factorial{}.call([]float64{float64(n)})
		if err != nil {
			t.Errorf("factorial(%d): %v", n, err)
			continue
		}
		// Products up to 22! are exact in float64.
		if got != want {
			t.Errorf("factorial(%d): want %v, got %v", n, want, got)
		}
	}
	g := math.Gamma(171)
	got, err := factorial{}.call([]float64{170})
	if err != nil {
		t.Fatalf("factorial(170): %v", err)
	}
	if math.Abs(got-g) > 1e-12*g {
		t.Errorf("factorial(170): want about %v, got %v", g, got)
	}
}

func TestFunctionDomains(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		ok   bool
	}{
		{"sqrt", 0, true},
		{"sqrt", math.Copysign(0, -1), true},
		{"sqrt", -1e-300, false},
		{"log", 1e-300, true},
		{"log", 0, false},
		{"log", math.Inf(-1), false},
		{"log10", 0, false},
		{"log10", 1, true},
		{"factorial", 3, true},
		{"factorial", -3, false},
		{"factorial", 0.5, false},
		{"sin", math.Inf(1), false},
		{"cos", math.Inf(-1), false},
		// NaN in, NaN out.
		{"sqrt", math.NaN(), true},
		{"sin", math.NaN(), true},
	}
	for _, c := range cases {
		_, err := radianTable[c.name].call([]float64{c.x})
		if c.ok {
			if err != nil {
				t.Errorf("%s(%v): unexpected error %v", c.name, c.x, err)
			}
			continue
		}
		if _, isDomain := err.(*DomainError); !isDomain {
			t.Errorf("%s(%v): want *DomainError, got %#v", c.name, c.x, err)
		}
	}
}
