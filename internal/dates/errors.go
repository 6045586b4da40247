package dates

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying why a token was rejected. Resolvers wrap
// them in a *ParseError, so match with errors.Is.
var (
	// ErrMalformedToken is returned for a wrong segment count, a compact
	// token of unsupported length, or a non-numeric segment.
	ErrMalformedToken = errors.New("malformed date token")

	// ErrInvalidYearLength is returned when the year segment is not
	// exactly 4 digits.
	ErrInvalidYearLength = errors.New("year must be exactly 4 digits")

	// ErrInvalidMonth is returned for months outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidDay is returned when the day does not exist for the given
	// year and month.
	ErrInvalidDay = errors.New("day does not exist in month")

	// ErrInvalidRangeShape is returned when a range token has more than
	// two parts.
	ErrInvalidRangeShape = errors.New("range must be DATE or DATE..DATE")
)

// ParseError reports the token that failed to resolve together with the
// classified reason.
type ParseError struct {
	// Token is the input exactly as the caller passed it.
	Token string

	// Err is one of the sentinel errors above, possibly wrapped with detail.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(token string, err error) *ParseError {
	return &ParseError{Token: token, Err: err}
}
