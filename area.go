package walstat

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Area is one local authority: a unique authority code, names in any number
// of languages, and the measures recorded for it.
type Area struct {
	code     string
	names    map[string]string
	measures map[string]*Measure
}

// NewArea creates an area for the given local authority code.
func NewArea(authorityCode string) *Area {
	return &Area{
		code:     authorityCode,
		names:    make(map[string]string),
		measures: make(map[string]*Measure),
	}
}

// Code returns the local authority code of the area.
func (a *Area) Code() string { return a.code }

// SetName records the area name for a language. lang must be a three-letter
// alphabetic code in ISO 639-3 format (e.g. "eng" or "cym"); it is stored
// lowercased.
func (a *Area) SetName(lang, name string) error {
	if !isLangCode(lang) {
		return fmt.Errorf("language code %q must be three alphabetic characters: %w", lang, ErrInvalidArgument)
	}
	a.names[strings.ToLower(lang)] = name
	return nil
}

func isLangCode(lang string) bool {
	if len(lang) != 3 {
		return false
	}
	for _, r := range lang {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Name returns the area name for a language code. Codes are stored
// lowercased, so the lookup lowercases lang once here.
func (a *Area) Name(lang string) (string, error) {
	name, ok := a.names[strings.ToLower(lang)]
	if !ok {
		return "", fmt.Errorf("no name found for language %q: %w", lang, ErrNotFound)
	}
	return name, nil
}

// Names returns a copy of the language-code to name mapping.
func (a *Area) Names() map[string]string { return maps.Clone(a.names) }

// Measure returns the measure stored under code. The lookup is
// case-sensitive on the lowercased codename as stored.
func (a *Area) Measure(code string) (*Measure, error) {
	m, ok := a.measures[code]
	if !ok {
		return nil, fmt.Errorf("no measure found matching %s: %w", code, ErrNotFound)
	}
	return m, nil
}

// SetMeasure stores a measure under its lowercased codename. If the area
// already holds a measure with that codename, the new values are merged
// into the existing measure, so no earlier data is silently dropped.
func (a *Area) SetMeasure(code string, m *Measure) {
	code = strings.ToLower(code)
	if existing, ok := a.measures[code]; ok {
		existing.Merge(m)
		return
	}
	a.measures[code] = m
}

// Len returns the number of measures recorded for the area.
func (a *Area) Len() int { return len(a.measures) }

// MeasureCodes returns the measure codenames in alphabetical order.
func (a *Area) MeasureCodes() []string { return slices.Sorted(maps.Keys(a.measures)) }

// Measures returns an iterator over the measures in alphabetical codename
// order.
func (a *Area) Measures() iter.Seq2[string, *Measure] {
	return func(yield func(string, *Measure) bool) {
		for _, code := range a.MeasureCodes() {
			if !yield(code, a.measures[code]) {
				return
			}
		}
	}
}

// Merge copies every name and measure of other into a. Names are inserted
// or overwritten; measures are merged per-measure, the same accumulation
// rule repeated parser passes rely on.
func (a *Area) Merge(other *Area) {
	for lang, name := range other.names {
		a.names[lang] = name
	}
	for code, m := range other.measures {
		if existing, ok := a.measures[code]; ok {
			existing.Merge(m)
		} else {
			a.measures[code] = m
		}
	}
}

// Equal reports whether both areas have the same authority code, names and
// measures.
func (a *Area) Equal(other *Area) bool {
	if a.code != other.code || !maps.Equal(a.names, other.names) {
		return false
	}
	if len(a.measures) != len(other.measures) {
		return false
	}
	for code, m := range a.measures {
		o, ok := other.measures[code]
		if !ok || !m.Equal(o) {
			return false
		}
	}
	return true
}
