package drag

import (
	"fmt"
	"strconv"
	"strings"
)

type coordKind uint8

const (
	coordUnset coordKind = iota
	coordOffset
	coordCenter
)

// Coord is an initial placement for one axis: an explicit offset or Center.
// The zero value is Unset, which means "use the configured default".
type Coord struct {
	kind  coordKind
	value float64
}

var (
	// Unset defers to the configured initial value.
	Unset = Coord{}
	// Center places the element in the middle of the viewport on that axis.
	Center = Coord{kind: coordCenter}
)

// Offset returns an explicit coordinate.
func Offset(v float64) Coord {
	return Coord{kind: coordOffset, value: v}
}

// IsSet reports whether c carries a value.
func (c Coord) IsSet() bool { return c.kind != coordUnset }

// IsCenter reports whether c is Center.
func (c Coord) IsCenter() bool { return c.kind == coordCenter }

// Value returns the explicit offset; zero for Center or Unset.
func (c Coord) Value() float64 {
	if c.kind != coordOffset {
		return 0
	}
	return c.value
}

func (c Coord) String() string {
	switch c.kind {
	case coordCenter:
		return "center"
	case coordOffset:
		return strconv.FormatFloat(c.value, 'f', -1, 64)
	default:
		return ""
	}
}

// resolve turns c into an absolute offset along an axis of the given
// viewport and element extents.
func (c Coord) resolve(viewport, element float64) float64 {
	if c.kind == coordCenter {
		return (viewport - element) / 2
	}
	return c.value
}

// ParseCoord parses "center" or a decimal number. Blank input yields Unset.
func ParseCoord(s string) (Coord, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Unset, nil
	}
	if strings.EqualFold(trimmed, "center") {
		return Center, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Unset, fmt.Errorf("invalid coordinate %q: want a number or \"center\"", s)
	}
	return Offset(v), nil
}
