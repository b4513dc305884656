package walstat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// populateFromAuthorityCodeCSV parses the compiled file of local authority
// codes and their names in English and Welsh. The first row names the
// columns and is skipped; every following row is
// `code,englishName,welshName`. The area filter is matched exactly,
// case-sensitively.
func (as *Areas) populateFromAuthorityCodeCSV(r io.Reader, cols ColumnMapping, filter Filter) error {
	if len(cols) != 3 {
		return fmt.Errorf("authority code CSV expects exactly 3 column mappings, got %d: %w", len(cols), ErrInvalidArgument)
	}

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if header {
			header = false
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 3 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
			return fmt.Errorf("line %q does not have three comma separated values: %w", line, ErrMalformedInput)
		}
		code, eng, cym := fields[0], fields[1], fields[2]

		if !filter.Areas.Match(code) {
			continue
		}
		area := NewArea(code)
		if err := area.SetName("eng", eng); err != nil {
			return err
		}
		if err := area.SetName("cym", cym); err != nil {
			return err
		}
		as.SetArea(code, area)
	}
	return scanner.Err()
}

// populateFromAuthorityByYearCSV parses a wide CSV holding a single
// measure. The measure codename and label are literals taken from the
// column mapping, never from the data. The first row lists 4-digit years as
// column headers after the authority-code column; each following row holds
// an authority code and one value per year column.
//
// A row shorter than the header is malformed. A cell that does not parse as
// a number is silently skipped: the sources contain blank placeholder cells
// for years with no data. A bad year header, on the other hand, would
// mis-assign every value below it, so it fails the whole file.
func (as *Areas) populateFromAuthorityByYearCSV(r io.Reader, cols ColumnMapping, filter Filter) error {
	if len(cols) != 3 {
		return fmt.Errorf("authority by year CSV expects exactly 3 column mappings, got %d: %w", len(cols), ErrInvalidArgument)
	}
	code, label := cols[SingleMeasureCode], cols[SingleMeasureName]

	// The whole file carries this one measure: nothing to read when it is
	// filtered out.
	if !filter.Measures.MatchFold(code) {
		return nil
	}

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return fmt.Errorf("missing header row: %w", ErrMalformedInput)
	}
	header := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), ",")

	// Year columns to read: every header must be a valid year even when
	// the year filter excludes it.
	type yearColumn struct{ index, year int }
	var wanted []yearColumn
	for i, h := range header[1:] {
		y, err := fourDigitYear(h)
		if err != nil {
			return fmt.Errorf("year header %q: %v: %w", h, err, ErrMalformedInput)
		}
		if filter.Years.Contains(y) {
			wanted = append(wanted, yearColumn{index: i + 1, year: y})
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		fields := strings.Split(line, ",")
		if len(fields) < len(header) {
			return fmt.Errorf("row %q has %d values, expected %d: %w", line, len(fields), len(header), ErrMalformedInput)
		}
		authority := fields[0]
		if !filter.Areas.MatchFold(authority) {
			continue
		}

		measure := NewMeasure(code, label)
		for _, c := range wanted {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[c.index]), 64)
			if err != nil {
				// Sparse or placeholder cell, not an error.
				continue
			}
			measure.SetValue(c.year, v)
		}

		area := NewArea(authority)
		area.SetMeasure(code, measure)
		as.SetArea(authority, area)
	}
	return scanner.Err()
}
