// Command selinfo prints the zone layout of a hysteresis position
// filter and optionally simulates it against a noisy input sweep.
//
// Usage:
//
//	selinfo [flags]
//
// Without flags it prints the zone and deadzone table for the default
// configuration (range 0-1023, 4 positions, deadzone 0.2).
//
// Examples:
//
//	selinfo -positions 8
//	selinfo -min 0 -max 100 -positions 2 -deadzone 0.1
//	selinfo -sweep -noise 24 -samples 5000
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-dsp/dsp/signal"

	"github.com/cwbudde/algo-selector/selector"
)

func main() {
	rangeMin := flag.Int("min", 0, "minimum input value")
	rangeMax := flag.Int("max", 1023, "maximum input value")
	positions := flag.Int("positions", 4, "number of selector positions")
	deadzone := flag.Float64("deadzone", 0.2, "deadzone fraction of the inter-zone space (0 - 1)")
	sweep := flag.Bool("sweep", false, "simulate a noisy input sweep and report selection changes")
	samples := flag.Int("samples", 2000, "number of samples in the sweep simulation")
	noise := flag.Float64("noise", 16, "noise amplitude in input units for the sweep simulation")
	seed := flag.Int64("seed", 1, "noise seed for the sweep simulation")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: selinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the zone layout of a hysteresis position filter.\n")
		fmt.Fprintf(os.Stderr, "With -sweep, runs a noisy sweep through the filter and compares\n")
		fmt.Fprintf(os.Stderr, "the number of selection changes against a zero-deadzone filter.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	flt := selector.New(*positions,
		selector.WithRange(*rangeMin, *rangeMax),
		selector.WithDeadzone(*deadzone),
	)

	printLayout(flt)

	if *sweep {
		fmt.Println()
		runSweep(flt, *samples, *noise, *seed)
	}
}

func printLayout(flt *selector.Filter) {
	segment, deadzone := flt.Widths()

	fmt.Printf("Range:          %d - %d\n", flt.RangeMin(), flt.RangeMax())
	fmt.Printf("Positions:      %d\n", flt.NumPositions())
	fmt.Printf("Deadzone:       %.2f (width %d)\n", flt.Deadzone(), deadzone)
	fmt.Printf("Zone width:     %d\n", segment)
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Zone\tLower\tUpper\n")
	fmt.Fprintf(tw, "----\t-----\t-----\n")

	for i := range flt.NumPositions() {
		low, high := flt.Edge(i)
		fmt.Fprintf(tw, "%d\t%d\t%d\n", i, low, high)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

// runSweep drives the filter and a zero-deadzone twin with the same
// noisy triangle sweep across the range and reports how often each
// selection changed.
func runSweep(flt *selector.Filter, samples int, amplitude float64, seed int64) {
	gen := signal.NewGeneratorWithOptions(nil, signal.WithSeed(seed))

	noise, err := gen.WhiteNoise(amplitude, samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	plain := selector.New(flt.NumPositions(),
		selector.WithRange(flt.RangeMin(), flt.RangeMax()),
		selector.WithDeadzone(0),
	)

	span := float64(flt.RangeMax() - flt.RangeMin())
	steps := float64(max(samples-1, 1))

	changes, plainChanges := 0, 0
	last, plainLast := flt.Current(), plain.Current()

	for i := range samples {
		// Triangle sweep: up across the range, then back down.
		phase := 2 * float64(i) / steps
		if phase > 1 {
			phase = 2 - phase
		}

		raw := flt.RangeMin() + int(math.Round(span*phase+noise[i]))

		if pos := flt.Position(raw); pos != last {
			changes++
			last = pos
		}

		if pos := plain.Position(raw); pos != plainLast {
			plainChanges++
			plainLast = pos
		}
	}

	fmt.Printf("Sweep:          %d samples, noise ±%.0f, seed %d\n", samples, amplitude, seed)
	fmt.Printf("Changes:        %d with deadzone, %d without\n", changes, plainChanges)
}
