package calendargrid

import "hash/fnv"

// palette cycles booking capsule colors; blocked ranges always use the same
// muted tone so they read as unavailable rather than occupied.
var palette = []string{
	"#4F8EF7",
	"#34C98E",
	"#F7B84F",
	"#E06C9F",
	"#7E6CF7",
	"#4FC3F7",
	"#F76C5E",
}

const blockedColor = "#9AA3AF"

// ColorMode selects how booking capsules are colored.
type ColorMode int

const (
	// ColorStableHash derives the color from the source id, so a booking
	// keeps its color across re-fetches and reorderings.
	ColorStableHash ColorMode = iota
	// ColorRoundRobin cycles the palette in encounter order. Kept as a
	// display option; it is not stable when the input ordering changes.
	ColorRoundRobin
)

type colorPicker struct {
	mode ColorMode
	next int
}

func newColorPicker(mode ColorMode) *colorPicker {
	return &colorPicker{mode: mode}
}

func (p *colorPicker) pick(sourceID string) string {
	if p.mode == ColorRoundRobin {
		c := palette[p.next%len(palette)]
		p.next++
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(sourceID))
	return palette[int(h.Sum32())%len(palette)]
}
