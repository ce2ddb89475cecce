package scicalc_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/scicalc"
)

func ExampleCalculate() {
	for _, raw := range []string{"3+4*2", "2^10", "√16)", "-2^2", "(1+2)÷4", "ln(1)", "1÷0", "foo(1)"} {
		r, err := scicalc.Calculate(raw, scicalc.Degrees)
		if err != nil {
			fmt.Println(raw, "=>", err)
			continue
		}
		fmt.Println(raw, "=>", r)
	}

	// Output:
	// 3+4*2 => 11
	// 2^10 => 1024
	// √16) => 4
	// -2^2 => -4
	// (1+2)÷4 => 0.75
	// ln(1) => 0
	// 1÷0 => DivisionByZero: division by zero
	// foo(1) => UnknownSymbol: unknown symbol: "foo"
}

func ExampleKindOf() {
	_, err := scicalc.Evaluate("sqrt(-4)", scicalc.Radians)
	fmt.Println(scicalc.KindOf(err))
	var de *scicalc.DomainError
	if errors.As(err, &de) {
		fmt.Println(de.Func, de.X)
	}

	// Output:
	// DomainError
	// sqrt -4
}

func ExampleParse() {
	ex, err := scicalc.ParseString("-2**2 + sin(x)")
	if err != nil {
		panic(err)
	}
	fmt.Println(ex)
	fmt.Println(ex.Names())

	// Output:
	// ((-((2) ** (2))) + (sin(x)))
	// [sin x]
}
