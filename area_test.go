package walstat

import (
	"errors"
	"strings"
	"testing"
)

func TestAreaSetName(t *testing.T) {
	a := NewArea("W06000001")

	if err := a.SetName("ENG", "Isle of Anglesey"); err != nil {
		t.Fatalf("SetName(ENG) returned error: %v", err)
	}
	// Stored lowercased, and lookups lowercase too.
	name, err := a.Name("eng")
	if err != nil {
		t.Fatalf("Name(eng) returned error: %v", err)
	}
	if name != "Isle of Anglesey" {
		t.Errorf("Name(eng) = %q want %q", name, "Isle of Anglesey")
	}

	for _, bad := range []string{"", "en", "engl", "e1g", "e g"} {
		if err := a.SetName(bad, "x"); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetName(%q) error = %v want ErrInvalidArgument", bad, err)
		}
	}

	if _, err := a.Name("cym"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Name(cym) error = %v want ErrNotFound", err)
	}
}

func TestAreaSetMeasureMerges(t *testing.T) {
	a := NewArea("W06000001")

	m1 := NewMeasure("pop", "Population")
	m1.SetValue(2010, 1)
	a.SetMeasure("POP", m1)

	// A later SetMeasure with the same codename must merge, never replace.
	m2 := NewMeasure("pop", "Population")
	m2.SetValue(2011, 2)
	a.SetMeasure("pop", m2)

	if a.Len() != 1 {
		t.Fatalf("Len() = %v want 1", a.Len())
	}
	m, err := a.Measure("pop")
	if err != nil {
		t.Fatalf("Measure(pop) returned error: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("merged measure Len() = %v want 2", m.Len())
	}

	// The lookup miss carries the missing codename in its message.
	_, err = a.Measure("dens")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Measure(dens) error = %v want ErrNotFound", err)
	}
	if err == nil || !strings.Contains(err.Error(), "dens") {
		t.Errorf("Measure(dens) error = %v, want message naming the code", err)
	}
}

func TestAreaMerge(t *testing.T) {
	a := NewArea("W06000001")
	a.SetName("eng", "Old name")
	pop := NewMeasure("pop", "Population")
	pop.SetValue(2010, 1)
	a.SetMeasure("pop", pop)

	b := NewArea("W06000001")
	b.SetName("eng", "Isle of Anglesey")
	b.SetName("cym", "Ynys Môn")
	pop2 := NewMeasure("pop", "Population")
	pop2.SetValue(2011, 2)
	b.SetMeasure("pop", pop2)
	dens := NewMeasure("dens", "Population density")
	dens.SetValue(2010, 97)
	b.SetMeasure("dens", dens)

	a.Merge(b)

	if name, _ := a.Name("eng"); name != "Isle of Anglesey" {
		t.Errorf("Name(eng) after merge = %q want the newer name", name)
	}
	if name, _ := a.Name("cym"); name != "Ynys Môn" {
		t.Errorf("Name(cym) after merge = %q want %q", name, "Ynys Môn")
	}
	if a.Len() != 2 {
		t.Errorf("Len() after merge = %v want 2", a.Len())
	}
	m, _ := a.Measure("pop")
	if m.Len() != 2 {
		t.Errorf("pop measure Len() after merge = %v want 2", m.Len())
	}
}

func TestAreaMeasureCodesOrder(t *testing.T) {
	a := NewArea("W06000001")
	a.SetMeasure("pop", NewMeasure("pop", "Population"))
	a.SetMeasure("area", NewMeasure("area", "Land area"))
	a.SetMeasure("dens", NewMeasure("dens", "Population density"))

	got := a.MeasureCodes()
	want := []string{"area", "dens", "pop"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MeasureCodes() = %v want %v", got, want)
		}
	}
}

func TestAreaString(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Area)
		want  string
	}{
		{
			name: "both names",
			setup: func(a *Area) {
				a.SetName("eng", "Isle of Anglesey")
				a.SetName("cym", "Ynys Môn")
			},
			want: "Isle of Anglesey / Ynys Môn (W06000001)\n",
		},
		{
			name:  "english only",
			setup: func(a *Area) { a.SetName("eng", "Isle of Anglesey") },
			want:  "Isle of Anglesey (W06000001)\n",
		},
		{
			name:  "welsh only",
			setup: func(a *Area) { a.SetName("cym", "Ynys Môn") },
			want:  "Ynys Môn (W06000001)\n",
		},
		{
			name:  "no names",
			setup: func(a *Area) {},
			want:  "Unnamed (W06000001)\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewArea("W06000001")
			tc.setup(a)
			if got := a.String(); got != tc.want {
				t.Errorf("String() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestAreaEqual(t *testing.T) {
	a := NewArea("W06000001")
	a.SetName("eng", "Isle of Anglesey")
	b := NewArea("W06000001")
	b.SetName("eng", "Isle of Anglesey")

	if !a.Equal(b) {
		t.Error("Equal() = false for identical areas")
	}

	m := NewMeasure("pop", "Population")
	m.SetValue(2010, 1)
	b.SetMeasure("pop", m)
	if a.Equal(b) {
		t.Error("Equal() = true for areas with different measures")
	}
}
