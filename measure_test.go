package walstat

import (
	"errors"
	"testing"
)

func TestMeasureSetValueAndValue(t *testing.T) {
	m := NewMeasure("POP", "Population")

	if m.Code() != "pop" {
		t.Errorf("Code() = %q want %q", m.Code(), "pop")
	}

	m.SetValue(2010, 69123)
	v, err := m.Value(2010)
	if err != nil {
		t.Fatalf("Value(2010) returned error: %v", err)
	}
	if v != 69123 {
		t.Errorf("Value(2010) = %v want %v", v, 69123.0)
	}

	// Overwrite the same year.
	m.SetValue(2010, 70000)
	v, _ = m.Value(2010)
	if v != 70000 {
		t.Errorf("Value(2010) after overwrite = %v want %v", v, 70000.0)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %v want 1", m.Len())
	}

	_, err = m.Value(1999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Value(1999) error = %v want ErrNotFound", err)
	}
}

func TestMeasureStatistics(t *testing.T) {
	m := NewMeasure("pop", "Population")
	// Inserted out of order: statistics follow ascending year order, not
	// insertion order.
	m.SetValue(2015, 20)
	m.SetValue(2010, 10)

	if got := m.Difference(); got != 10 {
		t.Errorf("Difference() = %v want 10", got)
	}
	if got := m.DifferenceAsPercentage(); got != 100 {
		t.Errorf("DifferenceAsPercentage() = %v want 100", got)
	}
	if got := m.Average(); got != 15 {
		t.Errorf("Average() = %v want 15", got)
	}
}

func TestMeasureStatisticsEmpty(t *testing.T) {
	m := NewMeasure("pop", "Population")

	if got := m.Average(); got != 0 {
		t.Errorf("Average() on empty measure = %v want 0", got)
	}
	if got := m.Difference(); got != 0 {
		t.Errorf("Difference() on empty measure = %v want 0", got)
	}
	if got := m.DifferenceAsPercentage(); got != 0 {
		t.Errorf("DifferenceAsPercentage() on empty measure = %v want 0", got)
	}
}

func TestMeasureDifferenceAsPercentageZeroFirstValue(t *testing.T) {
	m := NewMeasure("pop", "Population")
	m.SetValue(2010, 0)
	m.SetValue(2015, 5)

	// Division by zero is defined away: the statistic is 0 when it cannot
	// be calculated.
	if got := m.DifferenceAsPercentage(); got != 0 {
		t.Errorf("DifferenceAsPercentage() with first value 0 = %v want 0", got)
	}
}

func TestMeasureMergeDisjoint(t *testing.T) {
	a := NewMeasure("pop", "Population")
	a.SetValue(2010, 1)
	a.SetValue(2011, 2)

	b := NewMeasure("pop", "Population")
	b.SetValue(2012, 3)

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len() after disjoint merge = %v want 3", a.Len())
	}
	if v, _ := a.Value(2010); v != 1 {
		t.Errorf("Value(2010) after merge = %v want 1", v)
	}
	if v, _ := a.Value(2012); v != 3 {
		t.Errorf("Value(2012) after merge = %v want 3", v)
	}
}

func TestMeasureMergeOverlap(t *testing.T) {
	a := NewMeasure("pop", "Population")
	a.SetValue(2010, 1)
	a.SetValue(2011, 2)

	b := NewMeasure("pop", "Population")
	b.SetValue(2010, 10)
	b.SetValue(2011, 20)

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("Len() after overlapping merge = %v want 2", a.Len())
	}
	for year, want := range map[int]float64{2010: 10, 2011: 20} {
		if v, _ := a.Value(year); v != want {
			t.Errorf("Value(%d) after merge = %v want %v", year, v, want)
		}
	}
}

func TestMeasureEqual(t *testing.T) {
	a := NewMeasure("pop", "Population")
	a.SetValue(2010, 1)
	b := NewMeasure("pop", "Population")
	b.SetValue(2010, 1)

	if !a.Equal(b) {
		t.Error("Equal() = false for identical measures")
	}

	b.SetLabel("Different")
	if a.Equal(b) {
		t.Error("Equal() = true for measures with different labels")
	}

	b.SetLabel("Population")
	b.SetValue(2011, 2)
	if a.Equal(b) {
		t.Error("Equal() = true for measures with different values")
	}
}

func TestMeasureString(t *testing.T) {
	m := NewMeasure("pop", "Population")
	m.SetValue(2010, 10)
	m.SetValue(2015, 20)

	want := "Population (pop) \n" +
		"     2010      2015   Average     Diff.    % Diff. \n" +
		"10.000000 20.000000 15.000000 10.000000 100.000000 \n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q want %q", got, want)
	}
}

func TestMeasureStringEmpty(t *testing.T) {
	m := NewMeasure("rail", "Rail passenger journeys")
	want := "Rail passenger journeys (rail) \n"
	if got := m.String(); got != want {
		t.Errorf("String() on empty measure = %q want %q", got, want)
	}
}

func TestMeasureValuesOrder(t *testing.T) {
	m := NewMeasure("pop", "Population")
	m.SetValue(2012, 3)
	m.SetValue(2010, 1)
	m.SetValue(2011, 2)

	var years []int
	for y := range m.Values() {
		years = append(years, y)
	}
	want := []int{2010, 2011, 2012}
	for i, y := range want {
		if years[i] != y {
			t.Fatalf("Values() order = %v want %v", years, want)
		}
	}
}
