package game

import "fmt"

// Color identifies one of the four diseases. It is also the home color of a city.
type Color int

const (
	Blue Color = iota
	Yellow
	Black
	Red
)

// NumColors is the number of diseases in play.
const NumColors = 4

var colorNames = [NumColors]string{"blue", "yellow", "black", "red"}

// AllColors lists the colors in their canonical order.
var AllColors = []Color{Blue, Yellow, Black, Red}

func (c Color) String() string {
	if c.Valid() {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) Valid() bool {
	return c >= 0 && c < NumColors
}

// ParseColor converts a color name ("blue", "yellow", "black", "red") to a Color.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
