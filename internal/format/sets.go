package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shinji-kodama/wxlog/internal/model"
)

// PoundsPerKilogram converts stored kilogram weights for pound display.
const PoundsPerKilogram = 2.20462

// FormatWeight renders a kilogram weight rounded to whole units, converted
// to pounds first when inPounds is set.
func FormatWeight(kg float64, inPounds bool) string {
	if inPounds {
		kg *= PoundsPerKilogram
	}
	return strconv.FormatFloat(kg, 'f', 0, 64)
}

// formatEffort renders an RPE without trailing zeros ("8", "8.5").
func formatEffort(rpe float64) string {
	return strconv.FormatFloat(rpe, 'f', -1, 64)
}

// effortSuffix is " @{rpe}" for a positive RPE and empty otherwise.
func effortSuffix(rpe float64) string {
	if rpe > 0 {
		return " @" + formatEffort(rpe)
	}
	return ""
}

// formatDuration renders milliseconds as m:ss, or h:mm:ss past an hour.
func formatDuration(ms float64) string {
	d := time.Duration(ms * float64(time.Millisecond)).Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSet renders a single set:
//
//	{weight}[ x {reps}][ x {sets}][ @{rpe}]
//
// where reps appear only when positive, the multiplier only when above one
// and the RPE only when positive. Special kinds additionally show their
// distance and duration when present.
func FormatSet(set model.ExerciseSet) string {
	var b strings.Builder
	b.WriteString(FormatWeight(set.Weight(), set.InPounds()))
	if reps := set.Reps(); reps > 0 {
		b.WriteString(" x ")
		b.WriteString(strconv.Itoa(reps))
	}
	if mult := set.Multiplier(); mult > 1 {
		b.WriteString(" x ")
		b.WriteString(strconv.Itoa(mult))
	}
	b.WriteString(effortSuffix(set.Effort()))

	if set.Kind() != model.SetKindRegular {
		if d, unit := set.Distance(); d > 0 {
			b.WriteString(" ")
			b.WriteString(strconv.FormatFloat(d, 'f', -1, 64))
			if unit != "" {
				b.WriteString(" ")
				b.WriteString(unit)
			}
		}
		if t := set.Duration(); t > 0 {
			b.WriteString(" ")
			b.WriteString(formatDuration(t))
		}
	}
	return b.String()
}

// sameWeight reports whether next can join a run started by first in which
// only the repetitions vary.
func sameWeight(first, next model.ExerciseSet) bool {
	return next.Kind() == model.SetKindRegular &&
		next.Weight() == first.Weight() &&
		next.Effort() == first.Effort() &&
		next.InPounds() == first.InPounds() &&
		next.Multiplier() == first.Multiplier()
}

// sameReps reports whether next can join a run started by first in which
// only the weight varies.
func sameReps(first, next model.ExerciseSet) bool {
	return next.Kind() == model.SetKindRegular &&
		next.Reps() == first.Reps() &&
		next.Effort() == first.Effort() &&
		next.InPounds() == first.InPounds() &&
		next.Multiplier() == first.Multiplier()
}

// runEnd returns the index one past the last set, starting at i, that
// matches sets[i] according to match.
func runEnd(sets []model.ExerciseSet, i int, match func(first, next model.ExerciseSet) bool) int {
	j := i + 1
	for j < len(sets) && match(sets[i], sets[j]) {
		j++
	}
	return j
}

// CompressSets turns the ordered sets of one exercise block into display
// lines, in a single left-to-right pass:
//
//  1. A set of a special kind is printed alone.
//  2. Otherwise, a run of two or more regular sets sharing weight, RPE,
//     unit and multiplier becomes "{weight} x {reps, ...}[ @{rpe}]".
//  3. Otherwise, a run of two or more regular sets sharing reps, RPE,
//     unit and multiplier becomes "{weights, ...} x {reps}[ @{rpe}]".
//  4. Otherwise the set is printed alone.
//
// A run that qualifies for both groupings is grouped by weight.
func CompressSets(sets []model.ExerciseSet) []string {
	lines := make([]string, 0, len(sets))

	for i := 0; i < len(sets); {
		first := sets[i]
		if first.Kind() != model.SetKindRegular {
			lines = append(lines, FormatSet(first))
			i++
			continue
		}

		if j := runEnd(sets, i, sameWeight); j-i >= 2 {
			reps := make([]string, 0, j-i)
			for _, s := range sets[i:j] {
				reps = append(reps, strconv.Itoa(s.Reps()))
			}
			lines = append(lines, FormatWeight(first.Weight(), first.InPounds())+
				" x "+strings.Join(reps, ", ")+effortSuffix(first.Effort()))
			i = j
			continue
		}

		if j := runEnd(sets, i, sameReps); j-i >= 2 {
			weights := make([]string, 0, j-i)
			for _, s := range sets[i:j] {
				weights = append(weights, FormatWeight(s.Weight(), s.InPounds()))
			}
			lines = append(lines, strings.Join(weights, ", ")+
				" x "+strconv.Itoa(first.Reps())+effortSuffix(first.Effort()))
			i = j
			continue
		}

		lines = append(lines, FormatSet(first))
		i++
	}

	return lines
}
