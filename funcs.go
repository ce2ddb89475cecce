package scicalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// symbol is an entry in a symbol table: a constant, which takes no
// arguments, or a function of one real variable.
type symbol interface {
	// call evaluates the symbol. args has a length for which canCall
	// returned true.
	call(args []float64) (float64, error)
	// canCall returns whether the symbol can be used with n arguments.
	canCall(n int) bool
}

// symtab maps names to symbols. The two tables are built once at
// initialization and never modified.
type symtab map[string]symbol

var (
	degreeTable = newTable(Degrees)
	radianTable = newTable(Radians)
)

// constPrec is the precision at which table constants are computed before
// rounding to float64.
const constPrec = 64

var (
	piConst = bigConst(bigfloat.Pi)
	eConst  = bigConst(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	})
)

// bigConst computes a constant with f and rounds it to the nearest float64.
func bigConst(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constPrec)
	f(r)
	v, _ := r.Float64()
	return v
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func radians(x float64) float64 { return x * degToRad }
func degrees(x float64) float64 { return x * radToDeg }

func newTable(mode AngleMode) symtab {
	t := symtab{
		"pi": niladic(piConst),
		"e":  niladic(eConst),

		"radians": monadic{name: "radians", f: radians},
		"degrees": monadic{name: "degrees", f: degrees},

		"sqrt":      monadic{name: "sqrt", f: math.Sqrt, domain: nonnegative},
		"log":       monadic{name: "log", f: math.Log, domain: positive},
		"log10":     monadic{name: "log10", f: math.Log10, domain: positive},
		"factorial": factorial{},
	}
	switch mode {
	case Degrees:
		t["sin"] = monadic{name: "sin", f: func(x float64) float64 { return math.Sin(radians(x)) }}
		t["cos"] = monadic{name: "cos", f: func(x float64) float64 { return math.Cos(radians(x)) }}
		t["tan"] = monadic{name: "tan", f: func(x float64) float64 { return math.Tan(radians(x)) }}
	case Radians:
		t["sin"] = monadic{name: "sin", f: math.Sin}
		t["cos"] = monadic{name: "cos", f: math.Cos}
		t["tan"] = monadic{name: "tan", f: math.Tan}
	default:
		panic("scicalc: no table for " + mode.String())
	}
	return t
}

func nonnegative(x float64) bool { return !(x < 0) }
func positive(x float64) bool    { return !(x <= 0) }

// Symbols returns the names of every constant and function an expression can
// use, sorted. The set is the same in both angle modes.
func Symbols() []string {
	r := make([]string, 0, len(radianTable))
	for k := range radianTable {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Arity returns the number of arguments a symbol takes: 0 for a constant and
// 1 for a function. ok is false if there is no such symbol.
func Arity(name string) (n int, ok bool) {
	s := radianTable[name]
	switch {
	case s == nil:
		return 0, false
	case s.canCall(0):
		return 0, true
	default:
		return 1, true
	}
}

type monadic struct {
	name string
	f    func(float64) float64
	// domain reports whether an argument is valid. If nil, only the generic
	// NaN check applies.
	domain func(float64) bool
}

func (m monadic) call(args []float64) (float64, error) {
	x := args[0]
	if m.domain != nil && !m.domain(x) {
		return 0, &DomainError{X: x, Func: m.name}
	}
	r := m.f(x)
	switch {
	case math.IsNaN(r) && !math.IsNaN(x):
		// e.g. sin(inf)
		return 0, &DomainError{X: x, Func: m.name}
	case math.IsInf(r, 0) && !math.IsInf(x, 0):
		return 0, &OverflowError{X: x, Func: m.name}
	}
	return r, nil
}

func (m monadic) canCall(n int) bool {
	return n == 1
}

// niladic is a constant.
type niladic float64

func (c niladic) call(args []float64) (float64, error) {
	return float64(c), nil
}

func (c niladic) canCall(n int) bool {
	return n == 0
}

// maxFactorial is the largest n for which n! is a finite float64.
const maxFactorial = 170

// factorial computes n! exactly and rounds it, so that results up to 22!
// are exact and larger ones are correctly rounded.
type factorial struct{}

func (factorial) call(args []float64) (float64, error) {
	x := args[0]
	switch {
	case math.IsInf(x, 1):
		return 0, &OverflowError{X: x, Func: "factorial"}
	case x < 0, x != math.Trunc(x):
		// NaN fails the second test.
		return 0, &DomainError{X: x, Func: "factorial"}
	case x > maxFactorial:
		return 0, &OverflowError{X: x, Func: "factorial"}
	}
	n := new(big.Int).MulRange(1, int64(x))
	r, _ := new(big.Float).SetInt(n).Float64()
	return r, nil
}

func (factorial) canCall(n int) bool {
	return n == 1
}
