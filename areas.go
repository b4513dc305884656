package walstat

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// SourceType identifies the on-disk structure of a dataset file.
type SourceType int

const (
	// AuthorityCodeCSV is the three-column CSV of authority codes and their
	// English and Welsh names.
	AuthorityCodeCSV SourceType = iota
	// AuthorityByYearCSV is a wide CSV holding a single measure, with one
	// column per year.
	AuthorityByYearCSV
	// WelshStatsJSON is the StatsWales REST export: a flat array of
	// records, one per area, measure and year.
	WelshStatsJSON
)

// SourceColumn names a logical role a source file column or field can play.
type SourceColumn int

const (
	// AuthCode is the local authority code.
	AuthCode SourceColumn = iota
	// AuthNameEng is the English name of the authority.
	AuthNameEng
	// AuthNameCym is the Welsh name of the authority.
	AuthNameCym
	// MeasureCode is the measure codename field of a record.
	MeasureCode
	// MeasureName is the measure label field of a record.
	MeasureName
	// SingleMeasureCode is the literal codename of a single-measure source.
	SingleMeasureCode
	// SingleMeasureName is the literal label of a single-measure source.
	SingleMeasureName
	// Year is the year field of a record.
	Year
	// Value is the numeric value field of a record.
	Value
)

// ColumnMapping binds logical column roles to the literal header or field
// names used by one specific source file.
type ColumnMapping map[SourceColumn]string

// Source describes how one dataset file is structured: the overall layout,
// the column mapping, and per-format quirks. The quirks are explicit
// configuration; parsers never infer them by comparing mappings.
type Source struct {
	Type SourceType
	Cols ColumnMapping

	// LiteralMeasure means the measure codename and label are literals in
	// Cols (SingleMeasureCode, SingleMeasureName) rather than fields read
	// from each record.
	LiteralMeasure bool

	// StringValues means the numeric value field is encoded as a JSON
	// string rather than a number.
	StringValues bool
}

// Areas is the store of every imported area, keyed by authority code.
type Areas struct {
	areas map[string]*Area
}

// NewAreas creates an empty store.
func NewAreas() *Areas {
	return &Areas{areas: make(map[string]*Area)}
}

// SetArea inserts an area, or merges it into the existing area with the
// same authority code. This is how several datasets contribute different
// measures to the same area.
func (as *Areas) SetArea(code string, area *Area) {
	if existing, ok := as.areas[code]; ok {
		existing.Merge(area)
		return
	}
	as.areas[code] = area
}

// Area returns the area stored under the given local authority code.
func (as *Areas) Area(code string) (*Area, error) {
	a, ok := as.areas[code]
	if !ok {
		return nil, fmt.Errorf("no area found matching %s: %w", code, ErrNotFound)
	}
	return a, nil
}

// Len returns the number of areas in the store.
func (as *Areas) Len() int { return len(as.areas) }

// Codes returns every authority code in ascending order.
func (as *Areas) Codes() []string { return slices.Sorted(maps.Keys(as.areas)) }

// All returns an iterator over the areas in ascending authority-code order.
func (as *Areas) All() iter.Seq2[string, *Area] {
	return func(yield func(string, *Area) bool) {
		for _, code := range as.Codes() {
			if !yield(code, as.areas[code]) {
				return
			}
		}
	}
}

// Populate reads one source from r and merges every record that passes the
// filter into the store. The zero Filter keeps everything.
//
// The stream is rejected with ErrInvalidInput before any parsing when it is
// nil or holds no content. A malformed row aborts the whole parse of this
// source; everything merged from prior, successful imports stays intact.
func (as *Areas) Populate(r io.Reader, src Source, filter Filter) error {
	if r == nil {
		return fmt.Errorf("populate: no stream to read from: %w", ErrInvalidInput)
	}
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		return fmt.Errorf("populate: stream is empty or unreadable: %w", ErrInvalidInput)
	}

	switch src.Type {
	case AuthorityCodeCSV:
		return as.populateFromAuthorityCodeCSV(br, src.Cols, filter)
	case AuthorityByYearCSV:
		return as.populateFromAuthorityByYearCSV(br, src.Cols, filter)
	case WelshStatsJSON:
		return as.populateFromWelshStatsJSON(br, src, filter)
	default:
		return fmt.Errorf("populate: unexpected source type %d: %w", src.Type, ErrInvalidInput)
	}
}
