package dates

import (
	"fmt"
	"strings"
)

// RangeSeparator joins the start and end tokens of an explicit range.
const RangeSeparator = ".."

// Range is an inclusive interval of calendar dates.
//
// Start <= End is not enforced by construction: ResolveRange keeps the
// endpoints in the order the user wrote them. Use Normalized when the
// direction does not matter.
type Range struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// ResolveRange parses a range token.
//
// A single date token expands to the whole period it names: "2025"
// becomes 2025-01-01..2025-12-31, "2025-05" becomes 2025-05-01..2025-05-31
// and a full date becomes a one-day range. Two tokens joined by ".." are
// resolved as the start and end boundary respectively, so
// "2025-03..2025-05" covers March 1 through May 31.
//
// Endpoints are never reordered; a reversed range is returned reversed.
func ResolveRange(token string) (Range, error) {
	token = strings.TrimSpace(token)
	parts := strings.Split(token, RangeSeparator)

	var startTok, endTok string
	switch len(parts) {
	case 1:
		startTok, endTok = parts[0], parts[0]
	case 2:
		startTok, endTok = parts[0], parts[1]
	default:
		return Range{}, parseError(token, fmt.Errorf("%w: got %d parts", ErrInvalidRangeShape, len(parts)))
	}

	start, err := ResolveBoundary(startTok, false)
	if err != nil {
		return Range{}, err
	}
	end, err := ResolveBoundary(endTok, true)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// IsReversed reports whether End lies before Start.
func (r Range) IsReversed() bool {
	return r.End.Before(r.Start)
}

// Normalized returns the range with its endpoints in ascending order.
func (r Range) Normalized() Range {
	if r.IsReversed() {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Days enumerates every date from Start to End inclusive. A reversed range
// has no days; normalize it first to enumerate it.
func (r Range) Days() []Date {
	if r.IsReversed() {
		return nil
	}
	var days []Date
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
