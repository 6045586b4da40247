// Package model defines the domain types and value objects for the
// wxlog CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (DayLog, ExerciseBlock, ExerciseSet, Exercise) are immutable
// value objects decoded from a single API response and consumed once to
// produce rendered text. Nothing outlives a single command invocation.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
