package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SetKindRegular is the set-kind discriminator of an ordinary weighted
// resistance set. Only sets of this kind are eligible for compression.
const SetKindRegular = 0

// ID is an entity identifier as returned by the API. GraphQL IDs are
// normally serialized as strings, but numeric IDs are accepted too so a
// schema change on the server side does not break decoding.
type ID string

// UnmarshalJSON accepts both `"42"` and `42`.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// ExerciseSet is one logged set. Every field is optional on the wire, so
// all of them are pointers; the accessor methods apply the defaults the
// formatter relies on (zero for numbers, one for the set multiplier).
//
// Weights are always stored in kilograms. The LB flag only says the user
// entered (and wants to see) the weight in pounds.
type ExerciseSet struct {
	// W is the weight in kilograms.
	W *float64 `json:"w"`

	// R is the repetition count.
	R *int `json:"r"`

	// S is the set multiplier: how many identical sets this record stands for.
	S *int `json:"s"`

	// LB is 1 when the weight should be displayed in pounds.
	LB *int `json:"lb"`

	// RPE is the rate of perceived exertion (effort rating).
	RPE *float64 `json:"rpe"`

	// Type is the set-kind discriminator. 0 is a regular weighted set; any
	// other value is a special kind (timed, distance, ...) that is never
	// compressed.
	Type *int `json:"type"`

	// T is the duration of the set in milliseconds, for timed sets.
	T *float64 `json:"t"`

	// D is the distance covered, for distance sets.
	D *float64 `json:"d"`

	// DUnit is the unit of D (e.g. "m", "km", "mi").
	DUnit *string `json:"dunit"`

	// PR marks a personal record.
	PR *int `json:"pr"`

	// Est1RM is the server's estimated one-rep max for this set.
	Est1RM *float64 `json:"est1rm"`
}

// Weight returns the weight in kilograms, or 0 when absent.
func (s ExerciseSet) Weight() float64 {
	if s.W == nil {
		return 0
	}
	return *s.W
}

// Reps returns the repetition count, or 0 when absent.
func (s ExerciseSet) Reps() int {
	if s.R == nil {
		return 0
	}
	return *s.R
}

// Multiplier returns the set multiplier. A missing or non-positive
// multiplier means a single set.
func (s ExerciseSet) Multiplier() int {
	if s.S == nil || *s.S < 1 {
		return 1
	}
	return *s.S
}

// InPounds reports whether the set should be displayed in pounds.
func (s ExerciseSet) InPounds() bool {
	return s.LB != nil && *s.LB != 0
}

// Effort returns the RPE, or 0 when absent.
func (s ExerciseSet) Effort() float64 {
	if s.RPE == nil {
		return 0
	}
	return *s.RPE
}

// Kind returns the set-kind discriminator, defaulting to SetKindRegular.
func (s ExerciseSet) Kind() int {
	if s.Type == nil {
		return SetKindRegular
	}
	return *s.Type
}

// Duration returns the set duration in milliseconds, or 0 when absent.
func (s ExerciseSet) Duration() float64 {
	if s.T == nil {
		return 0
	}
	return *s.T
}

// Distance returns the distance and its unit. The unit is empty when absent.
func (s ExerciseSet) Distance() (float64, string) {
	var d float64
	var unit string
	if s.D != nil {
		d = *s.D
	}
	if s.DUnit != nil {
		unit = *s.DUnit
	}
	return d, unit
}

// ExerciseBlock is an exercise identifier plus the ordered sets logged for
// it on a single day.
type ExerciseBlock struct {
	// ExerciseID references an entry of DayLog.Exercises.
	ExerciseID ID `json:"eid"`

	// Sets are kept in the order they were logged.
	Sets []ExerciseSet `json:"sets"`
}

// Exercise is the display information for an exercise id.
type Exercise struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`

	// Type is a free-form exercise category as returned by the API.
	Type *string `json:"type"`
}

// ExerciseRef wraps an Exercise the way the API nests it.
type ExerciseRef struct {
	Exercise Exercise `json:"exercise"`
}

// DayLog is everything logged on one day: the raw log text, an optional
// bodyweight (kilograms), the exercise blocks in logged order and the
// exercises those blocks reference.
type DayLog struct {
	Log        string          `json:"log"`
	Bodyweight *float64        `json:"bw"`
	Blocks     []ExerciseBlock `json:"eblocks"`
	Exercises  []ExerciseRef   `json:"exercises"`
}

// ExerciseNames builds the exercise id → display name lookup for the day.
// When the same id appears more than once, the first entry wins.
func (d *DayLog) ExerciseNames() map[ID]string {
	names := make(map[ID]string, len(d.Exercises))
	for _, ref := range d.Exercises {
		if _, exists := names[ref.Exercise.ID]; exists {
			continue
		}
		names[ref.Exercise.ID] = ref.Exercise.Name
	}
	return names
}

// IsEmpty reports whether nothing was logged on the day.
func (d *DayLog) IsEmpty() bool {
	return d == nil || (d.Log == "" && d.Bodyweight == nil && len(d.Blocks) == 0)
}

// ExitCode defines the CLI exit codes. These codes allow scripts to
// programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidDate indicates a date or range argument could not be parsed.
	ExitInvalidDate ExitCode = 2

	// ExitAuthFailed indicates login failed or no credentials were available.
	ExitAuthFailed ExitCode = 3

	// ExitAPIError indicates the remote API could not be reached or
	// returned an error.
	ExitAPIError ExitCode = 4

	// ExitConfigError indicates the configuration could not be loaded.
	ExitConfigError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
