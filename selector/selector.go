package selector

import "math"

// direction selects which boundary of a zone to compute.
type direction int

const (
	lowerEdge direction = iota
	upperEdge
)

// Filter maps raw integer samples onto a discrete position index with
// hysteresis deadzones between adjacent zones.
//
// The widths of the zones and deadzones are derived from the
// configuration and buffered; they are recomputed lazily on the next
// evaluation after any setter runs. The bounds of the currently
// selected zone are buffered as well, so in the common case of a
// slowly-varying input an evaluation is two comparisons.
//
// A Filter is not safe for concurrent use; callers that share one
// across goroutines must serialize access externally.
type Filter struct {
	rangeMin     int
	rangeMax     int
	numPositions int
	deadzone     float64

	// derived from the configuration, rebuilt when dirty is set
	segmentWidth  int
	deadzoneWidth int
	dirty         bool

	// current selection and its buffered bounds
	current  int
	boundLow int
	boundTop int
}

// New creates a Filter with the given number of positions. The default
// configuration covers the range 0-1023 with a deadzone fraction of
// 0.2. The initial selection is the bottom of the range, position 0.
func New(numPositions int, opts ...Option) *Filter {
	cfg := applyOptions(opts...)

	flt := &Filter{}
	flt.SetRange(cfg.rangeMin, cfg.rangeMax)
	flt.SetNumPositions(numPositions)
	flt.SetDeadzone(cfg.deadzone)

	// Seed the selection so relative evaluation has a starting point.
	flt.Position(flt.rangeMin)

	return flt
}

// Position runs the filter on one raw sample and returns the selected
// zone, indexed from 0. Samples outside the configured range are
// clamped, never rejected.
func (f *Filter) Position(raw int) int {
	relative := !f.dirty
	if f.dirty {
		f.recalcWidths()
	}

	return f.selectZone(raw, relative)
}

// Reset discards the current selection and re-seeds it at the bottom of
// the range, as if the filter had just been constructed.
func (f *Filter) Reset() {
	f.dirty = true
	f.Position(f.rangeMin)
}

// recalcWidths rebuilds the buffered zone and deadzone widths from the
// configuration and clears the dirty flag.
func (f *Filter) recalcWidths() {
	total := f.rangeMax - f.rangeMin

	// One unit of active width per zone stays reserved so the deadzones
	// can never swallow the entire range.
	budget := total - f.numPositions
	if budget < 0 {
		budget = 0
	}

	// Deadzones sit between zones only, none at the ends.
	gaps := f.numPositions - 1

	maxWidth := 0
	if gaps > 0 {
		maxWidth = budget / gaps
	}

	// Round half away from zero at the float boundary.
	f.deadzoneWidth = int(math.Round(float64(maxWidth) * f.deadzone))
	f.segmentWidth = (total - f.deadzoneWidth*gaps) / f.numPositions

	f.dirty = false
}

// edge returns the requested boundary of zone i in input units. Zone
// 0's lower edge is exactly rangeMin and the topmost zone's upper edge
// is exactly rangeMax, so every in-range input falls at or inside some
// zone's bounds. Interior edges are clamped into the range to guard
// against rounding overshoot.
func (f *Filter) edge(i int, dir direction) int {
	if i < 0 {
		i = 0
	}

	var bound int

	if dir == upperEdge {
		if i >= f.numPositions-1 {
			return f.rangeMax
		}

		bound = f.rangeMin + f.segmentWidth*(i+1) + f.deadzoneWidth*(i+1)
	} else {
		if i == 0 {
			return f.rangeMin
		}

		bound = f.rangeMin + f.segmentWidth*i + f.deadzoneWidth*(i-1)
	}

	if bound < f.rangeMin {
		bound = f.rangeMin
	}

	if bound > f.rangeMax {
		bound = f.rangeMax
	}

	return bound
}

// selectZone finds the zone for the clamped sample. In relative mode
// the search is seeded from the current selection and moves up or down;
// otherwise it scans from the bottom. Relative evaluation is cheaper
// but requires a known, still-valid starting position.
func (f *Filter) selectZone(raw int, relative bool) int {
	if raw < f.rangeMin {
		raw = f.rangeMin
	} else if raw > f.rangeMax {
		raw = f.rangeMax
	}

	switch {
	case !relative || raw > f.boundTop:
		start := 0
		if relative {
			start = f.current
		}

		for i := start; i < f.numPositions; i++ {
			top := f.edge(i, upperEdge)
			if raw > top {
				continue
			}

			f.current = i
			f.boundLow = f.edge(i, lowerEdge)
			f.boundTop = top

			break
		}

	case raw < f.boundLow:
		for i := f.current; i >= 0; i-- {
			low := f.edge(i, lowerEdge)
			if raw < low {
				continue
			}

			f.current = i
			f.boundLow = low
			f.boundTop = f.edge(i, upperEdge)

			break
		}

	default:
		// Inside the buffered bounds: the selection is unchanged.
	}

	return f.current
}

// peekWidths makes the derived widths valid for inspection without
// consuming the dirty flag, so the next evaluation after a
// configuration change still rescans from the bottom.
func (f *Filter) peekWidths() {
	if !f.dirty {
		return
	}

	f.recalcWidths()
	f.dirty = true
}

// Getters.

// RangeMin returns the lower bound of the input range.
func (f *Filter) RangeMin() int { return f.rangeMin }

// RangeMax returns the upper bound of the input range.
func (f *Filter) RangeMax() int { return f.rangeMax }

// NumPositions returns the number of output positions.
func (f *Filter) NumPositions() int { return f.numPositions }

// Deadzone returns the configured deadzone fraction.
func (f *Filter) Deadzone() float64 { return f.deadzone }

// Current returns the most recently selected position without
// evaluating new input.
func (f *Filter) Current() int { return f.current }

// Bounds returns the buffered lower and upper edge of the currently
// selected zone. Input inside these bounds leaves the selection
// unchanged.
func (f *Filter) Bounds() (low, high int) { return f.boundLow, f.boundTop }

// Edge returns the lower and upper boundary of zone i under the current
// configuration, recomputing the derived widths if necessary. The index
// is clamped into the valid position range.
func (f *Filter) Edge(i int) (low, high int) {
	f.peekWidths()

	if i < 0 {
		i = 0
	}

	if i > f.numPositions-1 {
		i = f.numPositions - 1
	}

	return f.edge(i, lowerEdge), f.edge(i, upperEdge)
}

// Widths returns the derived zone and deadzone widths in input units,
// recomputing them if the configuration changed.
func (f *Filter) Widths() (segment, deadzone int) {
	f.peekWidths()

	return f.segmentWidth, f.deadzoneWidth
}

// Setters.

// SetRange sets the inclusive input range. Reversed bounds are swapped.
// Samples outside the range are clamped to it during evaluation.
func (f *Filter) SetRange(low, high int) {
	if high < low {
		low, high = high, low
	}

	f.rangeMin = low
	f.rangeMax = high
	f.dirty = true
}

// SetNumPositions sets the number of output positions. Zero is coerced
// to one.
func (f *Filter) SetNumPositions(numPositions int) {
	if numPositions < 1 {
		numPositions = 1
	}

	f.numPositions = numPositions
	f.dirty = true
}

// SetDeadzone sets the deadzone fraction, clamped to [0, 1]. NaN is
// treated as zero.
func (f *Filter) SetDeadzone(fraction float64) {
	switch {
	case fraction < 0 || math.IsNaN(fraction):
		fraction = 0
	case fraction > 1:
		fraction = 1
	}

	f.deadzone = fraction
	f.dirty = true
}
