package walstat

import (
	"fmt"
	"strconv"
	"strings"
)

// This file renders the model as aligned plain-text tables. Every numeric
// cell is printed with 6 fixed decimal digits; a column is as wide as the
// value printed in it, so the year row, heading row and value row line up
// per column rather than sharing one global width.

// valueCell formats a value the way every numeric cell is printed.
func valueCell(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// String renders the measure as a label line followed by a right-aligned
// row of years and a row of values, with three trailing statistics columns:
// Average, Diff. and % Diff. computed over all stored years. An empty
// measure renders the label line only.
func (m *Measure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) \n", m.label, m.code)

	years := m.Years()
	if len(years) == 0 {
		return b.String()
	}

	cells := make([]string, 0, len(years)+3)
	headings := make([]string, 0, len(years)+3)
	for _, y := range years {
		cells = append(cells, valueCell(m.values[y]))
		headings = append(headings, strconv.Itoa(y))
	}
	for _, stat := range []float64{m.Average(), m.Difference(), m.DifferenceAsPercentage()} {
		cells = append(cells, valueCell(stat))
	}
	headings = append(headings, "Average", "Diff.", "% Diff.")

	for i, h := range headings {
		fmt.Fprintf(&b, "%*s ", len(cells[i]), h)
	}
	b.WriteByte('\n')
	for _, c := range cells {
		fmt.Fprintf(&b, "%*s ", len(c), c)
	}
	b.WriteByte('\n')
	return b.String()
}

// String renders the area: its English and Welsh names joined by " / " when
// both exist, otherwise whichever single name exists, otherwise "Unnamed",
// followed by the authority code, then every measure in alphabetical
// codename order.
func (a *Area) String() string {
	eng, hasEng := a.names["eng"]
	cym, hasCym := a.names["cym"]

	var display string
	switch {
	case hasEng && hasCym:
		display = eng + " / " + cym
	case hasEng:
		display = eng
	case hasCym:
		display = cym
	default:
		display = "Unnamed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", display, a.code)
	for _, code := range a.MeasureCodes() {
		b.WriteString(a.measures[code].String())
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders every area in ascending authority-code order, separated by
// a line break.
func (as *Areas) String() string {
	var b strings.Builder
	for _, code := range as.Codes() {
		b.WriteString(as.areas[code].String())
		b.WriteByte('\n')
	}
	return b.String()
}
