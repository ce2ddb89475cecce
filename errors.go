package scicalc

import (
	"errors"
	"strconv"
)

// Kind classifies an evaluation failure.
type Kind uint8

const (
	// KindEval is the catch-all for failures that fit no other kind.
	KindEval Kind = iota
	// KindSyntax is a malformed expression.
	KindSyntax
	// KindUnknownSymbol is an identifier missing from the symbol table.
	KindUnknownSymbol
	// KindDivisionByZero is a division by exactly zero.
	KindDivisionByZero
	// KindDomain is a function argument outside the function's domain.
	KindDomain
	// KindOverflow is a result too large to represent.
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindEval:
		return "EvaluationError"
	case KindSyntax:
		return "SyntaxError"
	case KindUnknownSymbol:
		return "UnknownSymbol"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindDomain:
		return "DomainError"
	case KindOverflow:
		return "OverflowError"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a classified evaluation failure. Every error returned from
// Evaluate, Calculate, and Expr.Eval is an *Error.
type Error struct {
	// Kind is the class of the failure.
	Kind Kind
	// Err is the detailed error.
	Err error
}

func (err *Error) Error() string {
	return err.Kind.String() + ": " + err.Err.Error()
}

// Message returns the detailed message without the kind.
func (err *Error) Message() string {
	return err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

// KindOf classifies any error. Errors that are not from this package are
// KindEval.
func KindOf(err error) Kind {
	var (
		e  *Error
		ie InputError
		ne *NameError
		de *DivisionError
		me *DomainError
		oe *OverflowError
	)
	switch {
	case errors.As(err, &e):
		return e.Kind
	case errors.As(err, &ie):
		return KindSyntax
	case errors.As(err, &ne):
		return KindUnknownSymbol
	case errors.As(err, &de):
		return KindDivisionByZero
	case errors.As(err, &me):
		return KindDomain
	case errors.As(err, &oe):
		return KindOverflow
	default:
		return KindEval
	}
}

// classify wraps err in an *Error unless it is nil or already one.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: KindOf(err), Err: err}
}

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket, or of the end of input for an
	// unclosed one.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TermError is an error indicating two terms with no operator between them,
// as in "2 3" or "2(3)". It implements InputError.
type TermError struct {
	// Col is the position of the second term.
	Col int
	// Text is the token that began the second term.
	Text string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *TermError) Pos() int {
	return err.Col
}

// CallError is an error indicating a symbol used with the wrong number of
// arguments: a function without an argument list, or a constant with one.
// It implements InputError.
type CallError struct {
	// Col is the position of the symbol.
	Col int
	// Func is the symbol name.
	Func string
	// Len is the number of arguments the use tried to imply.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// malformed input implements InputError, and KindOf classifies all of them as
// KindSyntax.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)

// NameError is an error from a lookup for a symbol that is missing from the
// symbol table.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "unknown symbol: " + strconv.Quote(err.Name)
}

// DivisionError is an error from dividing by zero, including raising zero to
// a negative power.
type DivisionError struct {
	// X is the dividend, or the exponent for **.
	X float64
	// Op is the operator, "/" or "**".
	Op string
}

func (err *DivisionError) Error() string {
	if err.Op == "**" {
		return "0 cannot be raised to the negative power " + fmtfloat(err.X)
	}
	return "division by zero"
}

// DomainError is an error returned when a function or operator is applied to
// an argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	return fmtfloat(err.X) + " outside domain of " + err.Func
}

// OverflowError is an error returned when a function or operator produces a
// result too large for a float64 from finite arguments.
type OverflowError struct {
	// X is the argument, or the base for **.
	X float64
	// Func is a name identifying the function.
	Func string
}

func (err *OverflowError) Error() string {
	return "result of " + err.Func + " at " + fmtfloat(err.X) + " out of range"
}

func fmtfloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
