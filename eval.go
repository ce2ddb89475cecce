package scicalc

import (
	"fmt"
	"math"
	"strings"
)

// Eval evaluates the expression with the symbol table for mode. A non-nil
// error is always an *Error.
func (e *Expr) Eval(mode AngleMode) (float64, error) {
	tab, err := mode.table()
	if err != nil {
		return 0, &Error{Kind: KindEval, Err: err}
	}
	r, err := e.n.eval(tab)
	if err != nil {
		return 0, classify(err)
	}
	return r, nil
}

// eval computes the node's value, evaluating left operands first.
func (n *node) eval(tab symtab) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeName:
		s := tab[n.name]
		if s == nil {
			return 0, &NameError{Name: n.name}
		}
		if !s.canCall(0) {
			return 0, &CallError{Col: n.pos, Func: n.name, Len: 0}
		}
		return s.call(nil)
	case nodeCall:
		s := tab[n.name]
		if s == nil {
			return 0, &NameError{Name: n.name}
		}
		if !s.canCall(1) {
			return 0, &CallError{Col: n.pos, Func: n.name, Len: 1}
		}
		x, err := n.left.eval(tab)
		if err != nil {
			return 0, err
		}
		return s.call([]float64{x})
	case nodeNeg:
		x, err := n.left.eval(tab)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeNop:
		return n.left.eval(tab)
	}

	l, err := n.left.eval(tab)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(tab)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		// Either sign of zero.
		if r == 0 {
			return 0, &DivisionError{X: l, Op: "/"}
		}
		return l / r, nil
	case nodePow:
		return pow(l, r)
	default:
		panic("scicalc: invalid AST node " + n.kind.String())
	}
}

// pow raises x to the y, failing where a calculator user would expect an
// error rather than a special value.
func pow(x, y float64) (float64, error) {
	switch {
	case y == 0:
		return 1, nil
	case math.IsNaN(x), math.IsNaN(y), math.IsInf(x, 0), math.IsInf(y, 0):
		return math.Pow(x, y), nil
	case x == 0 && y < 0:
		return 0, &DivisionError{X: y, Op: "**"}
	case x < 0 && y != math.Trunc(y):
		// The result is complex.
		return 0, &DomainError{X: x, Func: "**"}
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) {
		return 0, &OverflowError{X: x, Func: "**"}
	}
	return r, nil
}

// Evaluate parses and evaluates canonical expression text. Every failure,
// including a malformed expression, is returned as an *Error.
func Evaluate(text string, mode AngleMode) (r float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = 0, &Error{Kind: KindEval, Err: fmt.Errorf("internal error: %v", p)}
		}
	}()
	a, err := Parse(strings.NewReader(text))
	if err != nil {
		return 0, classify(err)
	}
	return a.Eval(mode)
}

// Calculate normalizes raw calculator input, evaluates it, and formats the
// result for display.
func Calculate(raw string, mode AngleMode) (string, error) {
	r, err := Evaluate(Normalize(raw), mode)
	if err != nil {
		return "", err
	}
	return Format(r), nil
}
