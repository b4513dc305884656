package walstat

import (
	"fmt"
	"strconv"
	"strings"
)

// StringSet is a filter over codes. The empty set admits every value.
type StringSet map[string]struct{}

// NewStringSet creates a set holding the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Empty reports whether the set holds no values.
func (s StringSet) Empty() bool { return len(s) == 0 }

// Contains reports whether v is a member of the set.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Match reports whether v passes the filter: an empty filter admits every
// value, otherwise membership is exact and case-sensitive.
func (s StringSet) Match(v string) bool { return len(s) == 0 || s.Contains(v) }

// MatchFold is Match with case-insensitive comparison.
func (s StringSet) MatchFold(v string) bool {
	if len(s) == 0 {
		return true
	}
	for member := range s {
		if strings.EqualFold(member, v) {
			return true
		}
	}
	return false
}

// YearRange is an inclusive range of years. The zero value is the "all
// years" sentinel.
type YearRange struct{ First, Last int }

// NewYearRange creates a year range. If first is after last, they are
// swapped.
func NewYearRange(first, last int) YearRange {
	if first > last {
		first, last = last, first
	}
	return YearRange{First: first, Last: last}
}

// All reports whether the range is the "all years" sentinel.
func (r YearRange) All() bool { return r == YearRange{} }

// Contains reports whether year falls within the range, boundaries
// included. The sentinel range contains every year.
func (r YearRange) Contains(year int) bool {
	return r.All() || (year >= r.First && year <= r.Last)
}

// Filter selects which records an import keeps. The zero value keeps
// everything.
type Filter struct {
	Areas    StringSet
	Measures StringSet
	Years    YearRange
}

// ParseStringSet converts a comma-separated argument into a filter set. An
// empty argument, or any entry equal to "all" (case-insensitive), means no
// filtering and yields the empty set.
func ParseStringSet(arg string) StringSet {
	if strings.TrimSpace(arg) == "" {
		return StringSet{}
	}
	s := StringSet{}
	for _, v := range strings.Split(arg, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.EqualFold(v, "all") {
			return StringSet{}
		}
		s[v] = struct{}{}
	}
	return s
}

// ParseYearRange parses the years argument: "" or "0" for all years,
// "YYYY" for a single year, and "YYYY-ZZZZ" for an inclusive range.
func ParseYearRange(arg string) (YearRange, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || arg == "0" {
		return YearRange{}, nil
	}
	first, rest, found := strings.Cut(arg, "-")
	y, err := fourDigitYear(first)
	if err != nil {
		return YearRange{}, fmt.Errorf("invalid years argument %q: %w", arg, ErrInvalidArgument)
	}
	if !found {
		return YearRange{First: y, Last: y}, nil
	}
	z, err := fourDigitYear(rest)
	if err != nil {
		return YearRange{}, fmt.Errorf("invalid years argument %q: %w", arg, ErrInvalidArgument)
	}
	return NewYearRange(y, z), nil
}

// fourDigitYear parses str as a year with exactly four digits (1000-9999).
func fourDigitYear(str string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer year", str)
	}
	if y < 1000 || y > 9999 {
		return 0, fmt.Errorf("year %d is not a 4-digit year", y)
	}
	return y, nil
}
