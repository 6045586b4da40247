// Package dates resolves loosely formatted date tokens into concrete
// calendar boundaries and inclusive date ranges.
//
// A date token is a run of digits, optionally split by '-', '/' or '.',
// whose length decides its precision:
//
//	2025        year        → Jan 1 / Dec 31
//	202505      year+month  → first / last day of the month
//	2025-05-27  full date   → that exact day
//
// Whether an imprecise token resolves to the start or the end of the
// period it names is chosen by the caller (ResolveBoundary). A range token
// is either a single date token, which expands to the whole period it
// names, or two date tokens joined by "..", resolved as start and end
// boundaries respectively (ResolveRange). Expand turns a list of range
// tokens into the sorted, de-duplicated list of days they cover.
//
// Everything here is pure: no I/O, no clock, no shared state.
package dates
