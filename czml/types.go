package czml

import "fmt"

// Rectangular is a two-component value, used for pixel offsets.
type Rectangular struct {
	X, Y float64
}

// NewRectangular returns the value (x, y).
func NewRectangular(x, y float64) Rectangular { return Rectangular{X: x, Y: y} }

// Cartesian is a three-component value, used for positions.
type Cartesian struct {
	X, Y, Z float64
}

// NewCartesian returns the value (x, y, z).
func NewCartesian(x, y, z float64) Cartesian { return Cartesian{X: x, Y: y, Z: z} }

// LabelStyle is how label text is drawn.
type LabelStyle int

const (
	LabelStyleFill LabelStyle = iota
	LabelStyleOutline
	LabelStyleFillAndOutline
)

func (s LabelStyle) String() string {
	switch s {
	case LabelStyleFill:
		return "FILL"
	case LabelStyleOutline:
		return "OUTLINE"
	case LabelStyleFillAndOutline:
		return "FILL_AND_OUTLINE"
	default:
		panic(fmt.Sprintf("czml: unknown label style %d", int(s)))
	}
}

// InterpolationAlgorithm selects how a client interpolates between samples.
type InterpolationAlgorithm int

const (
	InterpolationLinear InterpolationAlgorithm = iota
	InterpolationLagrange
	InterpolationHermite
)

func (a InterpolationAlgorithm) String() string {
	switch a {
	case InterpolationLinear:
		return "LINEAR"
	case InterpolationLagrange:
		return "LAGRANGE"
	case InterpolationHermite:
		return "HERMITE"
	default:
		panic(fmt.Sprintf("czml: unknown interpolation algorithm %d", int(a)))
	}
}

// ExtrapolationType selects what a client does outside the sampled range.
type ExtrapolationType int

const (
	ExtrapolationNone ExtrapolationType = iota
	ExtrapolationHold
	ExtrapolationExtrapolate
)

func (t ExtrapolationType) String() string {
	switch t {
	case ExtrapolationNone:
		return "NONE"
	case ExtrapolationHold:
		return "HOLD"
	case ExtrapolationExtrapolate:
		return "EXTRAPOLATE"
	default:
		panic(fmt.Sprintf("czml: unknown extrapolation type %d", int(t)))
	}
}
