package format

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/wxlog/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

// set builds a regular set with weight and reps; rpe, lb and multiplier
// are left unset so they take their defaults.
func set(w float64, r int) model.ExerciseSet {
	return model.ExerciseSet{W: ptr(w), R: ptr(r)}
}

// special builds a set of a non-regular kind.
func special(kind int, w float64, r int) model.ExerciseSet {
	s := set(w, r)
	s.Type = ptr(kind)
	return s
}

// TestFormatWeight covers kilogram rounding and pound conversion.
func TestFormatWeight(t *testing.T) {
	tests := []struct {
		name     string
		kg       float64
		inPounds bool
		want     string
	}{
		{"whole kilos", 100, false, "100"},
		{"rounds down", 100.4, false, "100"},
		{"rounds up", 100.6, false, "101"},
		{"zero", 0, false, "0"},
		{"pounds", 100, true, "220"},
		{"pounds entered as 225", 102.0582, true, "225"},
		{"pounds round trip of 100", 45.359237, true, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWeight(tt.kg, tt.inPounds))
		})
	}
}

// TestFormatSet checks the optional parts of a single-set line.
func TestFormatSet(t *testing.T) {
	tests := []struct {
		name string
		set  model.ExerciseSet
		want string
	}{
		{"weight only", model.ExerciseSet{W: ptr(60.0)}, "60"},
		{"weight and reps", set(100, 5), "100 x 5"},
		{"zero reps hidden", set(100, 0), "100"},
		{"multiplier", model.ExerciseSet{W: ptr(100.0), R: ptr(5), S: ptr(3)}, "100 x 5 x 3"},
		{"multiplier of one hidden", model.ExerciseSet{W: ptr(100.0), R: ptr(5), S: ptr(1)}, "100 x 5"},
		{"rpe", model.ExerciseSet{W: ptr(100.0), R: ptr(5), RPE: ptr(8.0)}, "100 x 5 @8"},
		{"fractional rpe", model.ExerciseSet{W: ptr(100.0), R: ptr(5), RPE: ptr(8.5)}, "100 x 5 @8.5"},
		{"everything", model.ExerciseSet{W: ptr(100.0), R: ptr(5), S: ptr(2), RPE: ptr(9.0), LB: ptr(1)}, "220 x 5 x 2 @9"},
		{"all fields missing", model.ExerciseSet{}, "0"},
		{
			name: "distance kind",
			set:  model.ExerciseSet{Type: ptr(2), D: ptr(400.0), DUnit: ptr("m"), T: ptr(90000.0)},
			want: "0 400 m 1:30",
		},
		{
			name: "timed kind past an hour",
			set:  model.ExerciseSet{Type: ptr(1), W: ptr(20.0), T: ptr(3723000.0)},
			want: "20 1:02:03",
		},
		{
			name: "distance ignored on regular sets",
			set:  model.ExerciseSet{W: ptr(100.0), R: ptr(5), D: ptr(400.0)},
			want: "100 x 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSet(tt.set))
		})
	}
}

// TestCompressSets covers both groupings, their precedence and the
// boundaries that stop a run.
func TestCompressSets(t *testing.T) {
	tests := []struct {
		name string
		sets []model.ExerciseSet
		want []string
	}{
		{
			name: "empty",
			sets: nil,
			want: []string{},
		},
		{
			name: "single set",
			sets: []model.ExerciseSet{set(100, 5)},
			want: []string{"100 x 5"},
		},
		{
			name: "same weight varying reps",
			sets: []model.ExerciseSet{set(100, 5), set(100, 5), set(100, 3)},
			want: []string{"100 x 5, 5, 3"},
		},
		{
			name: "same reps varying weight",
			sets: []model.ExerciseSet{set(80, 5), set(90, 5), set(100, 5)},
			want: []string{"80, 90, 100 x 5"},
		},
		{
			name: "identical sets group by weight",
			sets: []model.ExerciseSet{set(100, 5), set(100, 5)},
			want: []string{"100 x 5, 5"},
		},
		{
			name: "weight grouping wins over reps grouping",
			sets: []model.ExerciseSet{set(100, 5), set(100, 5), set(110, 5)},
			want: []string{"100 x 5, 5", "110 x 5"},
		},
		{
			name: "ramp then back-off",
			sets: []model.ExerciseSet{set(60, 5), set(80, 5), set(100, 5), set(100, 3), set(100, 3)},
			want: []string{"60, 80, 100 x 5", "100 x 3, 3"},
		},
		{
			name: "nothing in common",
			sets: []model.ExerciseSet{set(60, 10), set(80, 8), set(100, 6)},
			want: []string{"60 x 10", "80 x 8", "100 x 6"},
		},
		{
			name: "effort suffix on runs",
			sets: []model.ExerciseSet{
				{W: ptr(100.0), R: ptr(5), RPE: ptr(8.0)},
				{W: ptr(100.0), R: ptr(4), RPE: ptr(8.0)},
				{W: ptr(90.0), R: ptr(4), RPE: ptr(8.5)},
				{W: ptr(95.0), R: ptr(4), RPE: ptr(8.5)},
			},
			want: []string{"100 x 5, 4 @8", "90, 95 x 4 @8.5"},
		},
		{
			name: "different rpe breaks the run",
			sets: []model.ExerciseSet{
				{W: ptr(100.0), R: ptr(5), RPE: ptr(8.0)},
				{W: ptr(100.0), R: ptr(5), RPE: ptr(9.0)},
			},
			want: []string{"100 x 5 @8", "100 x 5 @9"},
		},
		{
			name: "different unit breaks the run",
			sets: []model.ExerciseSet{
				{W: ptr(100.0), R: ptr(5)},
				{W: ptr(100.0), R: ptr(5), LB: ptr(1)},
			},
			want: []string{"100 x 5", "220 x 5"},
		},
		{
			name: "different multiplier breaks the run",
			sets: []model.ExerciseSet{
				{W: ptr(100.0), R: ptr(5), S: ptr(3)},
				{W: ptr(100.0), R: ptr(5)},
			},
			want: []string{"100 x 5 x 3", "100 x 5"},
		},
		{
			name: "shared multiplier is not shown on runs",
			sets: []model.ExerciseSet{
				{W: ptr(100.0), R: ptr(5), S: ptr(2)},
				{W: ptr(100.0), R: ptr(3), S: ptr(2)},
			},
			want: []string{"100 x 5, 3"},
		},
		{
			name: "pounds in a reps run",
			sets: []model.ExerciseSet{
				{W: ptr(61.235), R: ptr(5), LB: ptr(1)},
				{W: ptr(65.77), R: ptr(5), LB: ptr(1)},
			},
			want: []string{"135, 145 x 5"},
		},
		{
			name: "special kind splits a run",
			sets: []model.ExerciseSet{set(100, 5), special(1, 100, 5), set(100, 5)},
			want: []string{"100 x 5", "100 x 5", "100 x 5"},
		},
		{
			name: "special kinds never merge with each other",
			sets: []model.ExerciseSet{special(1, 100, 5), special(1, 100, 5)},
			want: []string{"100 x 5", "100 x 5"},
		},
		{
			name: "run ends before a special set",
			sets: []model.ExerciseSet{set(100, 5), set(100, 3), special(3, 0, 0), set(80, 8), set(90, 8)},
			want: []string{"100 x 5, 3", "0", "80, 90 x 8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressSets(tt.sets))
		})
	}
}

// randomSet draws a set from a deliberately small value space so that
// runs occur often.
func randomSet(f *gofakeit.Faker) model.ExerciseSet {
	s := model.ExerciseSet{
		W: ptr(float64(f.Number(4, 6) * 20)),
		R: ptr(f.Number(3, 5)),
	}
	if f.Number(0, 4) == 0 {
		s.Type = ptr(f.Number(1, 3))
	}
	if f.Number(0, 5) == 0 {
		s.RPE = ptr(8.0)
	}
	return s
}

// TestCompressSets_SpecialKindsStandalone alternates regular and special
// sets so no two regular sets are adjacent; every set must come out as
// its own FormatSet line.
func TestCompressSets_SpecialKindsStandalone(t *testing.T) {
	f := gofakeit.New(42)

	for round := 0; round < 50; round++ {
		var sets []model.ExerciseSet
		n := f.Number(1, 12)
		for i := 0; i < n; i++ {
			s := randomSet(f)
			if i%2 == 1 {
				s.Type = ptr(f.Number(1, 3))
			} else {
				s.Type = nil
			}
			sets = append(sets, s)
		}

		got := CompressSets(sets)
		require.Len(t, got, len(sets))
		for i, s := range sets {
			assert.Equal(t, FormatSet(s), got[i])
		}
	}
}

// TestCompressSets_Bounds checks on random input that compression never
// produces more lines than sets, never fewer lines than special sets,
// and is deterministic.
func TestCompressSets_Bounds(t *testing.T) {
	f := gofakeit.New(7)

	for round := 0; round < 200; round++ {
		n := f.Number(0, 15)
		sets := make([]model.ExerciseSet, 0, n)
		specials := 0
		for i := 0; i < n; i++ {
			s := randomSet(f)
			if s.Kind() != model.SetKindRegular {
				specials++
			}
			sets = append(sets, s)
		}

		got := CompressSets(sets)
		assert.LessOrEqual(t, len(got), len(sets))
		assert.GreaterOrEqual(t, len(got), specials)
		assert.Equal(t, got, CompressSets(sets))
	}
}
