package dates

import (
	"slices"

	"go.uber.org/multierr"
)

// ExpandOptions controls the ordering of Expand's result.
type ExpandOptions struct {
	// Reverse returns the newest date first.
	Reverse bool
}

// Expand resolves every range token and returns the set of days they
// cover, ascending by date (descending with opts.Reverse). Days covered by
// more than one token appear once.
//
// Reversed ranges such as "2025-05-31..2025-05-01" cover the same days as
// their ascending form; the requested order comes from opts alone.
//
// Every token is validated before anything is returned. When some tokens
// fail, the result is nil and the error combines one *ParseError per bad
// token (see multierr.Errors).
func Expand(tokens []string, opts ExpandOptions) ([]Date, error) {
	var errs error
	seen := make(map[Date]struct{})

	for _, token := range tokens {
		r, err := ResolveRange(token)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, d := range r.Normalized().Days() {
			seen[d] = struct{}{}
		}
	}
	if errs != nil {
		return nil, errs
	}

	days := make([]Date, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	slices.SortFunc(days, Date.Compare)
	if opts.Reverse {
		slices.Reverse(days)
	}
	return days, nil
}
