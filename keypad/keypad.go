// Package keypad is a headless calculator front panel. A Pad owns the text
// the user is composing and the angle mode, maps button presses and
// keystrokes onto edits of that text, and hands the text to the evaluator
// when the user asks for a result.
//
// A Pad is not safe for concurrent use.
package keypad

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/scicalc"
)

// Layout is the button grid of the calculator, row by row.
var Layout = [][]string{
	{"C", "⌫", "(", ")", "÷"},
	{"7", "8", "9", "×", "√"},
	{"4", "5", "6", "-", "x²"},
	{"1", "2", "3", "+", "±"},
	{"0", ".", "π", "e", "="},
	{"sin", "cos", "tan", "log", "ln"},
}

// Keys which are not single characters.
const (
	KeyReturn    = "Return"
	KeyKPEnter   = "KP_Enter"
	KeyBackSpace = "BackSpace"
	KeyEscape    = "Escape"
)

// textKeys are the characters a keystroke may append.
const textKeys = "0123456789.+-*/()^"

// Evaluator computes the display text for a buffer. scicalc.Calculate is the
// default.
type Evaluator func(text string, mode scicalc.AngleMode) (string, error)

// Pad is the calculator's input state.
type Pad struct {
	buf  string
	mode scicalc.AngleMode
	eval Evaluator
	log  *slog.Logger
}

// Option configures a Pad.
type Option func(*Pad)

// WithMode sets the initial angle mode. The default is degrees.
func WithMode(mode scicalc.AngleMode) Option {
	return func(p *Pad) { p.mode = mode }
}

// WithEvaluator replaces the evaluator.
func WithEvaluator(eval Evaluator) Option {
	return func(p *Pad) { p.eval = eval }
}

// WithLogger sets the logger for evaluation outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pad) { p.log = log }
}

// WithText sets the initial buffer contents.
func WithText(text string) Option {
	return func(p *Pad) { p.buf = text }
}

// New creates a Pad with an empty buffer in degree mode.
func New(opts ...Option) *Pad {
	p := &Pad{
		mode: scicalc.Degrees,
		eval: scicalc.Calculate,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Text returns the current buffer contents.
func (p *Pad) Text() string {
	return p.buf
}

// Mode returns the current angle mode.
func (p *Pad) Mode() scicalc.AngleMode {
	return p.mode
}

// SetMode sets the angle mode.
func (p *Pad) SetMode(mode scicalc.AngleMode) {
	p.mode = mode
}

// ToggleMode switches between degrees and radians and returns the new mode.
func (p *Pad) ToggleMode() scicalc.AngleMode {
	if p.mode == scicalc.Degrees {
		p.mode = scicalc.Radians
	} else {
		p.mode = scicalc.Degrees
	}
	return p.mode
}

// Press handles a button from Layout. Labels not in Layout are appended to
// the buffer as they are. The only error is from evaluation, for "=".
func (p *Pad) Press(label string) error {
	switch label {
	case "C":
		p.Clear()
	case "⌫":
		p.Backspace()
	case "=":
		return p.Evaluate()
	case "√":
		p.insert("sqrt(")
	case "x²":
		p.insert("**2")
	case "±":
		p.Negate()
	case "÷":
		p.insert("/")
	case "×":
		p.insert("*")
	case "π":
		p.insert("pi")
	case "e":
		p.insert("e")
	case "sin", "cos", "tan", "log":
		p.insert(label + "(")
	case "ln":
		p.insert("log(")
	default:
		p.insert(label)
	}
	return nil
}

// Key handles a keystroke. key is either one of the Key constants or the
// character the key produces. Characters outside 0-9 . + - * / ( ) ^ are
// ignored. The only error is from evaluation, for Return and KP_Enter.
func (p *Pad) Key(key string) error {
	switch key {
	case KeyReturn, KeyKPEnter:
		return p.Evaluate()
	case KeyBackSpace:
		p.Backspace()
	case KeyEscape:
		p.Clear()
	default:
		if utf8.RuneCountInString(key) == 1 && strings.Contains(textKeys, key) {
			p.insert(key)
		}
	}
	return nil
}

// Clear empties the buffer.
func (p *Pad) Clear() {
	p.buf = ""
}

// Backspace removes the last character of the buffer, if any.
func (p *Pad) Backspace() {
	_, sz := utf8.DecodeLastRuneInString(p.buf)
	p.buf = p.buf[:len(p.buf)-sz]
}

// Negate wraps the whole buffer as (-1)*(buffer). An empty buffer is left
// alone.
func (p *Pad) Negate() {
	if p.buf == "" {
		return
	}
	p.buf = "(-1)*(" + p.buf + ")"
}

// Evaluate replaces the buffer with the value of its expression. A blank
// buffer is left alone without calling the evaluator. On failure the buffer
// is unchanged and the error is returned; errors from the default evaluator
// are *scicalc.Error.
func (p *Pad) Evaluate() error {
	if strings.TrimSpace(p.buf) == "" {
		return nil
	}
	r, err := p.eval(p.buf, p.mode)
	if err != nil {
		p.log.Debug("evaluation failed", "expr", p.buf, "mode", p.mode, "kind", scicalc.KindOf(err), "error", err)
		return err
	}
	p.log.Debug("evaluated", "expr", p.buf, "mode", p.mode, "result", r)
	p.buf = r
	return nil
}

func (p *Pad) insert(s string) {
	p.buf += s
}
