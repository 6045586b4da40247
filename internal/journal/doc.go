// Package journal fetches the journal entries of many days.
//
// Days are fetched concurrently with a bounded number of workers and
// returned in the order they were requested. Entries already fetched in
// this process are served from an in-memory DayCache.
package journal
