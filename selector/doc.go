// Package selector converts a noisy analog reading into a stable
// discrete position index.
//
// In place of simple division or rescaling, the filter places a
// deadzone between each pair of adjacent zones. The deadzones provide
// hysteresis that guards the selection against input noise: with plain
// division an input sitting on the fence between two zones flips the
// result back and forth as noise nudges it across the threshold. Here
// the threshold for entering a zone from below sits above the threshold
// for leaving it downward, so once a zone is selected the input must
// cross the whole deadzone before the selection changes back.
//
// For example, two positions over the range 0-100 with a roughly 10%
// deadzone produce the following input zones:
//
//	Position 0:  0 - 44
//	Deadzone:   45 - 55
//	Position 1: 56 - 100
//
// While position 0 is selected the input has to rise above 55 to switch
// to position 1. Once it has, the input must fall below 45 to switch
// back. The input can therefore sit (noisily, if it must) between the
// two zones without the output changing.
//
// # Usage
//
// Create a filter and feed it raw samples:
//
//	f := selector.New(4,
//	    selector.WithRange(0, 1023),
//	    selector.WithDeadzone(0.2),
//	)
//	pos := f.Position(reading) // 0..3
//
// Or couple a filter to an input source and poll it:
//
//	sel := selector.NewSelector(adc, 4)
//	pos, err := sel.Position()
//
// Filters sanitize their configuration instead of returning errors:
// reversed ranges are swapped, a zero position count is coerced to one
// and the deadzone fraction is clamped to [0, 1]. Every evaluation
// yields a valid position.
package selector
