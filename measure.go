package walstat

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Measure is a single metric for an area, e.g. population density. It has a
// codename identifying it across datasets, a human-readable label, and one
// value per year.
type Measure struct {
	code   string
	label  string
	values map[int]float64
}

// NewMeasure creates a measure with the given codename and label. The
// codename is lowercased once here and never changes afterwards.
func NewMeasure(code, label string) *Measure {
	return &Measure{
		code:   strings.ToLower(code),
		label:  label,
		values: make(map[int]float64),
	}
}

// Code returns the lowercased codename of the measure.
func (m *Measure) Code() string { return m.code }

// Label returns the human-readable label of the measure.
func (m *Measure) Label() string { return m.label }

// SetLabel changes the label of the measure.
func (m *Measure) SetLabel(label string) { m.label = label }

// SetValue records a value for a year, overwriting any previous value.
func (m *Measure) SetValue(year int, value float64) { m.values[year] = value }

// Value returns the value recorded for a year.
func (m *Measure) Value(year int) (float64, error) {
	v, ok := m.values[year]
	if !ok {
		return 0, fmt.Errorf("no value found for year %d: %w", year, ErrNotFound)
	}
	return v, nil
}

// Len returns the number of years with a recorded value.
func (m *Measure) Len() int { return len(m.values) }

// Years returns the recorded years in ascending order.
func (m *Measure) Years() []int { return slices.Sorted(maps.Keys(m.values)) }

// Values returns an iterator over year/value pairs in ascending year order.
func (m *Measure) Values() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for _, y := range m.Years() {
			if !yield(y, m.values[y]) {
				return
			}
		}
	}
}

// Average returns the mean of all recorded values, or 0 for an empty
// measure.
func (m *Measure) Average() float64 {
	if len(m.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.values {
		sum += v
	}
	return sum / float64(len(m.values))
}

// Difference returns the change from the first to the last recorded year,
// in ascending year order, or 0 for an empty measure.
func (m *Measure) Difference() float64 {
	years := m.Years()
	if len(years) == 0 {
		return 0
	}
	return m.values[years[len(years)-1]] - m.values[years[0]]
}

// DifferenceAsPercentage returns Difference as a percentage of the first
// recorded year's value. It returns 0 for an empty measure, and 0 when the
// first value is exactly 0, consistent with the other statistics that
// return 0 whenever they cannot be calculated.
func (m *Measure) DifferenceAsPercentage() float64 {
	years := m.Years()
	if len(years) == 0 {
		return 0
	}
	first := m.values[years[0]]
	if first == 0 {
		return 0
	}
	return m.Difference() / first * 100
}

// Merge copies every year value of other into m, overwriting on year
// collision. Years present only in m are preserved. The label is left
// untouched, so repeated imports cannot flap it between sources.
func (m *Measure) Merge(other *Measure) {
	for y, v := range other.values {
		m.values[y] = v
	}
}

// Equal reports whether both measures have the same codename, label and
// year values.
func (m *Measure) Equal(other *Measure) bool {
	return m.code == other.code &&
		m.label == other.label &&
		maps.Equal(m.values, other.values)
}
