package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/wxlog/internal/dates"
	"github.com/shinji-kodama/wxlog/internal/model"
)

// TestDayCache covers hits, misses and cached empty days.
func TestDayCache(t *testing.T) {
	cache := NewDayCache(1, quietLogger())
	monday := dates.Date{Year: 2025, Month: 5, Day: 26}
	tuesday := monday.AddDays(1)

	_, found := cache.Get(monday)
	assert.False(t, found)

	entry := &model.DayLog{
		Log:        "heavy day",
		Bodyweight: ptr(80.5),
		Blocks: []model.ExerciseBlock{
			{ExerciseID: "3", Sets: []model.ExerciseSet{{W: ptr(140.0), R: ptr(3)}}},
		},
		Exercises: []model.ExerciseRef{{Exercise: model.Exercise{ID: "3", Name: "Deadlift"}}},
	}
	cache.Set(monday, entry)
	cache.Set(tuesday, nil)

	got, found := cache.Get(monday)
	require.True(t, found)
	assert.Equal(t, entry, got)

	got, found = cache.Get(tuesday)
	assert.True(t, found)
	assert.Nil(t, got)

	assert.Equal(t, int64(2), cache.Len())
}

// TestDayCache_CorruptEntry drops entries that no longer decode.
func TestDayCache_CorruptEntry(t *testing.T) {
	cache := NewDayCache(1, quietLogger())
	date := dates.Date{Year: 2025, Month: 1, Day: 1}
	require.NoError(t, cache.cache.Set(cacheKey(date), []byte("{not json"), 0))

	_, found := cache.Get(date)
	assert.False(t, found)
	assert.Equal(t, int64(0), cache.Len())
}
