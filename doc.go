// Package scicalc implements the evaluation engine of a scientific calculator.
//
// Input text is first rewritten by Normalize, which turns the calculator's
// display glyphs (×, ÷, √, ^) and the ln alias into canonical text. Evaluate
// then lexes and parses the canonical text and computes its value in
// double-precision floating point. "-2**2" is "-(2**2)", and "2**3**2" is
// "2**(3**2)".
//
// The evaluator is closed: an identifier resolves only to one of a fixed set
// of constants and one-argument functions, selected by the AngleMode of the
// call. Nothing else is reachable from an expression. Symbols lists the set.
//
// Failures are returned as *Error values classified by Kind, so that a
// caller can show the kind and message and leave its input alone.
package scicalc
