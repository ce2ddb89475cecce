package scicalc

import (
	"fmt"
	"strings"
)

// AngleMode selects how sin, cos, and tan interpret their arguments.
type AngleMode uint8

const (
	// Degrees converts trigonometric arguments from degrees to radians.
	Degrees AngleMode = iota
	// Radians passes trigonometric arguments through unchanged.
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("AngleMode(%d)", uint8(m))
	}
}

// ParseAngleMode parses the name of an angle mode. It accepts "degrees",
// "deg", "radians", and "rad", ignoring case and surrounding space.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	default:
		return 0, fmt.Errorf("unknown angle mode %q", s)
	}
}

// table selects the symbol table for the mode.
func (m AngleMode) table() (symtab, error) {
	switch m {
	case Degrees:
		return degreeTable, nil
	case Radians:
		return radianTable, nil
	default:
		return nil, fmt.Errorf("invalid angle mode %v", m)
	}
}
