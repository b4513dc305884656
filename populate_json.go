package walstat

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// valueArrayPath locates the record array of a StatsWales export. The
// documents carry odata metadata next to it; only "value" matters here.
const valueArrayPath = "$.value"

// populateFromWelshStatsJSON parses a StatsWales JSON export: a flat array
// of records, one per area, measure and year, under the top-level "value"
// key. Field names are given by the column mapping.
//
// Sources flagged LiteralMeasure take the measure codename and label from
// the mapping instead of each record; sources flagged StringValues carry
// the numeric value as a JSON string. Area codes are matched
// case-insensitively, as are measure codes; the zero year range admits
// every year.
//
// Every accepted record becomes a fresh single-value area merged through
// SetArea. Holding a live reference into the store across insertions is
// deliberately avoided; the merge semantics do all the accumulation.
func (as *Areas) populateFromWelshStatsJSON(r io.Reader, src Source, filter Filter) error {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("cannot parse JSON document: %v: %w", err, ErrMalformedInput)
	}

	jval, err := jsonpath.Get(valueArrayPath, doc)
	if err != nil {
		return fmt.Errorf("document has no top-level %q array: %w", "value", ErrMalformedInput)
	}
	records, ok := jval.([]any)
	if !ok {
		return fmt.Errorf("top-level %q is not an array: %w", "value", ErrMalformedInput)
	}

	cols := src.Cols
	for _, rec := range records {
		data, ok := rec.(map[string]any)
		if !ok {
			return fmt.Errorf("record is not a JSON object: %w", ErrMalformedInput)
		}

		authority, err := stringField(data, cols[AuthCode])
		if err != nil {
			return err
		}
		if !filter.Areas.MatchFold(authority) {
			continue
		}

		measureCode, measureLabel := cols[SingleMeasureCode], cols[SingleMeasureName]
		if !src.LiteralMeasure {
			if measureCode, err = stringField(data, cols[MeasureCode]); err != nil {
				return err
			}
			if measureLabel, err = stringField(data, cols[MeasureName]); err != nil {
				return err
			}
		}
		if !filter.Measures.MatchFold(measureCode) {
			continue
		}

		year, err := yearField(data, cols[Year])
		if err != nil {
			return err
		}
		if !filter.Years.Contains(year) {
			continue
		}

		name, err := stringField(data, cols[AuthNameEng])
		if err != nil {
			return err
		}
		value, err := valueField(data, cols[Value], src.StringValues)
		if err != nil {
			return err
		}

		measure := NewMeasure(measureCode, measureLabel)
		measure.SetValue(year, value)
		area := NewArea(authority)
		if err := area.SetName("eng", name); err != nil {
			return err
		}
		area.SetMeasure(measureCode, measure)
		as.SetArea(authority, area)
	}
	return nil
}

// field returns the raw field stored under key, or ErrMalformedInput naming
// the missing field.
func field(data map[string]any, key string) (any, error) {
	v, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("record is missing field %q: %w", key, ErrMalformedInput)
	}
	return v, nil
}

func stringField(data map[string]any, key string) (string, error) {
	v, err := field(data, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string: %w", key, ErrMalformedInput)
	}
	return s, nil
}

// yearField reads a year that StatsWales encodes as a string of digits.
func yearField(data map[string]any, key string) (int, error) {
	v, err := field(data, key)
	if err != nil {
		return 0, err
	}
	switch y := v.(type) {
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(y), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("year %q is not numeric: %w", y, ErrMalformedInput)
		}
		return int(n), nil
	case float64:
		return int(y), nil
	default:
		return 0, fmt.Errorf("field %q is not a year: %w", key, ErrMalformedInput)
	}
}

// valueField reads the numeric value of a record. String-encoded values are
// parsed exactly with decimal before converting to float64.
func valueField(data map[string]any, key string, stringEncoded bool) (float64, error) {
	v, err := field(data, key)
	if err != nil {
		return 0, err
	}
	if stringEncoded {
		s, ok := v.(string)
		if !ok {
			return 0, fmt.Errorf("field %q should be a string-encoded number: %w", key, ErrMalformedInput)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("field %q holds %q which is not a number: %w", key, s, ErrMalformedInput)
		}
		return d.InexactFloat64(), nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number: %w", key, ErrMalformedInput)
	}
	return f, nil
}
