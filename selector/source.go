package selector

// Source supplies raw samples to a Selector. Implementations wrap
// whatever produces the reading: an ADC channel, an I2C device, a
// simulation. The value is expected to fall inside the configured
// range; values outside it are clamped during evaluation.
type Source interface {
	ReadRaw() (int, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (int, error)

// ReadRaw calls fn.
func (fn SourceFunc) ReadRaw() (int, error) { return fn() }

// Selector couples a Filter with the input source it polls. It owns the
// filter outright; any channel or pin setup the source needs must
// happen before the first Position call.
type Selector struct {
	filter Filter
	src    Source
}

// NewSelector creates a Selector reading from src. Configuration
// options are the same as for New.
func NewSelector(src Source, numPositions int, opts ...Option) *Selector {
	return &Selector{
		filter: *New(numPositions, opts...),
		src:    src,
	}
}

// Position reads one sample from the source and returns the selected
// position. On a read error the previous selection is returned along
// with the error.
func (s *Selector) Position() (int, error) {
	raw, err := s.src.ReadRaw()
	if err != nil {
		return s.filter.Current(), err
	}

	return s.filter.Position(raw), nil
}

// Current returns the most recent selection without reading the source.
func (s *Selector) Current() int { return s.filter.Current() }

// SetRange sets the input range of the underlying filter.
func (s *Selector) SetRange(low, high int) { s.filter.SetRange(low, high) }

// SetNumPositions sets the position count of the underlying filter.
func (s *Selector) SetNumPositions(numPositions int) { s.filter.SetNumPositions(numPositions) }

// SetDeadzone sets the deadzone fraction of the underlying filter.
func (s *Selector) SetDeadzone(fraction float64) { s.filter.SetDeadzone(fraction) }
