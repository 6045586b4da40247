package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isDateSeparator reports whether r may separate the segments of a date token.
func isDateSeparator(r rune) bool {
	return r == '-' || r == '/' || r == '.'
}

// ResolveBoundary parses a single date token into a calendar date.
//
// Imprecise tokens name a period, and endOfPeriod picks which end of it is
// returned: a bare year resolves to Jan 1 or Dec 31, a year+month to the
// first or the last day of that month. A fully specified date is returned
// exactly as given regardless of endOfPeriod.
//
// Accepted notations, all equivalent:
//
//	20250527  2025-05-27  2025/05/27  2025.05.27
//	202505    2025-05     2025/05     2025.05
//	2025
func ResolveBoundary(token string, endOfPeriod bool) (Date, error) {
	// Empty segments are discarded, so "2025--05" and "2025/05/" still parse.
	segments := strings.FieldsFunc(token, isDateSeparator)
	for _, seg := range segments {
		if !isDigits(seg) {
			return Date{}, parseError(token, fmt.Errorf("%w: %q is not numeric", ErrMalformedToken, seg))
		}
	}

	var yearSeg, monthSeg, daySeg string
	switch len(segments) {
	case 1:
		compact := segments[0]
		switch len(compact) {
		case 8:
			yearSeg, monthSeg, daySeg = compact[0:4], compact[4:6], compact[6:8]
		case 6:
			yearSeg, monthSeg = compact[0:4], compact[4:6]
		case 4:
			yearSeg = compact
		default:
			if len(compact) < 4 {
				return Date{}, parseError(token, fmt.Errorf("%w: got %d", ErrInvalidYearLength, len(compact)))
			}
			return Date{}, parseError(token, fmt.Errorf("%w: compact form must have 4, 6 or 8 digits, got %d", ErrMalformedToken, len(compact)))
		}
	case 2:
		yearSeg, monthSeg = segments[0], segments[1]
	case 3:
		yearSeg, monthSeg, daySeg = segments[0], segments[1], segments[2]
	default:
		return Date{}, parseError(token, fmt.Errorf("%w: expected 1 to 3 segments, got %d", ErrMalformedToken, len(segments)))
	}

	if len(yearSeg) != 4 {
		return Date{}, parseError(token, fmt.Errorf("%w: got %d", ErrInvalidYearLength, len(yearSeg)))
	}
	year, err := strconv.Atoi(yearSeg)
	if err != nil {
		return Date{}, parseError(token, fmt.Errorf("%w: %v", ErrMalformedToken, err))
	}

	if monthSeg == "" {
		if endOfPeriod {
			return Date{Year: year, Month: time.December, Day: 31}, nil
		}
		return Date{Year: year, Month: time.January, Day: 1}, nil
	}

	monthNum, err := strconv.Atoi(monthSeg)
	if err != nil {
		return Date{}, parseError(token, fmt.Errorf("%w: %v", ErrMalformedToken, err))
	}
	if monthNum < 1 || monthNum > 12 {
		return Date{}, parseError(token, fmt.Errorf("%w: got %d", ErrInvalidMonth, monthNum))
	}
	month := time.Month(monthNum)

	if daySeg == "" {
		if endOfPeriod {
			return Date{Year: year, Month: month, Day: DaysIn(year, month)}, nil
		}
		return Date{Year: year, Month: month, Day: 1}, nil
	}

	day, err := strconv.Atoi(daySeg)
	if err != nil {
		return Date{}, parseError(token, fmt.Errorf("%w: %v", ErrMalformedToken, err))
	}
	date, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, parseError(token, err)
	}
	return date, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
// strconv.Atoi alone would also accept a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
