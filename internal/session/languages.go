package session

import "slices"

// DefaultLanguages is the picker order of the supported language codes.
var DefaultLanguages = Languages{"de", "uk", "ar", "tr", "en", "vi", "es", "bg"}

// Languages is an ordered set of supported language codes.
type Languages []string

func (l Languages) Contains(code string) bool {
	return slices.Contains(l, code)
}

// FirstOtherThan returns the first supported code that differs from code.
func (l Languages) FirstOtherThan(code string) (string, bool) {
	for _, candidate := range l {
		if candidate != code {
			return candidate, true
		}
	}
	return "", false
}

// Direction is the selected (source, target) language pair.
type Direction struct {
	Source string
	Target string
}

func (d Direction) Swapped() Direction {
	return Direction{Source: d.Target, Target: d.Source}
}

func (d Direction) String() string {
	return d.Source + "->" + d.Target
}
