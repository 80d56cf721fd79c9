package domain

// Color is either an RGB or an HSL value.
type Color interface {
	isColor()
}

type RGB struct {
	R, G, B float64
}

type HSL struct {
	H, S, L float64
}

func (RGB) isColor() {}
func (HSL) isColor() {}

// Palette holds a mixture of RGB and HSL colors.
type Palette []Color

// Score is a high score that is either numeric or a plain flag.
type Score interface {
	isScore()
}

type NumericScore float64

type FlagScore bool

func (NumericScore) isScore() {}
func (FlagScore) isScore()    {}

// Stuff is a list of strings or a list of numbers, never both.
type Stuff interface {
	Len() int
	isStuff()
}

type Strings []string

type Numbers []float64

func (s Strings) Len() int { return len(s) }
func (n Numbers) Len() int { return len(n) }

func (Strings) isStuff() {}
func (Numbers) isStuff() {}
