package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestID_UnmarshalJSON verifies that exercise ids decode from both the
// string and the numeric JSON forms.
func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected ID
		hasError bool
	}{
		{`"42"`, "42", false},
		{`42`, "42", false},
		{`null`, "", false},
		{`"abc"`, "abc", false},
		{`true`, "", true},
		{`{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

// TestExerciseSet_Defaults checks that a set with every field missing
// yields the zero values the formatter expects, and a multiplier of one.
func TestExerciseSet_Defaults(t *testing.T) {
	var set ExerciseSet
	require.NoError(t, json.Unmarshal([]byte(`{}`), &set))

	assert.Equal(t, 0.0, set.Weight())
	assert.Equal(t, 0, set.Reps())
	assert.Equal(t, 1, set.Multiplier())
	assert.False(t, set.InPounds())
	assert.Equal(t, 0.0, set.Effort())
	assert.Equal(t, SetKindRegular, set.Kind())
	assert.Equal(t, 0.0, set.Duration())
	assert.Nil(t, set.PR)

	d, unit := set.Distance()
	assert.Equal(t, 0.0, d)
	assert.Empty(t, unit)
}

// TestExerciseSet_Decode verifies the wire field names of a fully populated set.
func TestExerciseSet_Decode(t *testing.T) {
	raw := `{"w":100.5,"r":5,"s":3,"lb":1,"rpe":8.5,"type":2,"t":90000,"d":400,"dunit":"m","pr":1,"est1rm":117.2}`

	var set ExerciseSet
	require.NoError(t, json.Unmarshal([]byte(raw), &set))

	assert.Equal(t, 100.5, set.Weight())
	assert.Equal(t, 5, set.Reps())
	assert.Equal(t, 3, set.Multiplier())
	assert.True(t, set.InPounds())
	assert.Equal(t, 8.5, set.Effort())
	assert.Equal(t, 2, set.Kind())
	assert.Equal(t, 90000.0, set.Duration())
	require.NotNil(t, set.PR)
	assert.Equal(t, 1, *set.PR)

	d, unit := set.Distance()
	assert.Equal(t, 400.0, d)
	assert.Equal(t, "m", unit)
}

// TestExerciseSet_NonPositiveMultiplier ensures zero or negative
// multipliers are treated as a single set.
func TestExerciseSet_NonPositiveMultiplier(t *testing.T) {
	zero, negative := 0, -2
	assert.Equal(t, 1, ExerciseSet{S: &zero}.Multiplier())
	assert.Equal(t, 1, ExerciseSet{S: &negative}.Multiplier())
}

// TestDayLog_Decode decodes the shape returned by the day query.
func TestDayLog_Decode(t *testing.T) {
	raw := `{
		"log": "Felt good\nEBLOCK:\nDone",
		"bw": 80,
		"eblocks": [{"eid": "7", "sets": [{"w": 100, "r": 5}]}],
		"exercises": [{"exercise": {"id": 7, "name": "Squat", "type": null}}]
	}`

	var day DayLog
	require.NoError(t, json.Unmarshal([]byte(raw), &day))

	assert.Equal(t, "Felt good\nEBLOCK:\nDone", day.Log)
	require.NotNil(t, day.Bodyweight)
	assert.Equal(t, 80.0, *day.Bodyweight)
	require.Len(t, day.Blocks, 1)
	assert.Equal(t, ID("7"), day.Blocks[0].ExerciseID)
	assert.Equal(t, map[ID]string{"7": "Squat"}, day.ExerciseNames())
	assert.False(t, day.IsEmpty())
}

// TestDayLog_ExerciseNames_FirstWins verifies duplicate exercise entries
// keep the first name seen.
func TestDayLog_ExerciseNames_FirstWins(t *testing.T) {
	day := DayLog{Exercises: []ExerciseRef{
		{Exercise: Exercise{ID: "1", Name: "Bench"}},
		{Exercise: Exercise{ID: "1", Name: "Bench Press"}},
		{Exercise: Exercise{ID: "2", Name: "Row"}},
	}}

	assert.Equal(t, map[ID]string{"1": "Bench", "2": "Row"}, day.ExerciseNames())
}

// TestDayLog_IsEmpty covers nil and blank days.
func TestDayLog_IsEmpty(t *testing.T) {
	var nilDay *DayLog
	assert.True(t, nilDay.IsEmpty())
	assert.True(t, (&DayLog{}).IsEmpty())
	assert.False(t, (&DayLog{Log: "rest day"}).IsEmpty())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitAuthFailed, "no credentials configured")
		assert.Equal(t, ExitAuthFailed, err.Code)
		assert.Equal(t, "no credentials configured", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := WrapCLIError(ExitAPIError, "request failed", inner)
		assert.Equal(t, ExitAPIError, err.Code)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, inner, err.Unwrap())
	})

	// Verify errors.Is works with unwrapped errors (Go 1.13+ error chain).
	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := WrapCLIError(ExitAPIError, "request failed", inner)
		assert.True(t, errors.Is(err, inner))
	})
}
