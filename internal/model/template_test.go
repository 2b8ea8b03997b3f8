package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeeklyTemplateCoversEveryWeekday(t *testing.T) {
	weekdays := []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}

	validCategory := map[TaskCategory]bool{}
	for _, category := range TaskCategories {
		validCategory[category] = true
	}
	validPriority := map[Priority]bool{PriorityHigh: true, PriorityMedium: true, PriorityLow: true}

	for _, weekday := range weekdays {
		entries, ok := WeeklyTemplate[weekday]
		require.True(t, ok, "missing template for %s", weekday)
		require.NotEmpty(t, entries, "empty template for %s", weekday)

		seen := map[string]bool{}
		for _, entry := range entries {
			require.NotEmpty(t, entry.Title)
			require.True(t, validCategory[entry.Category], "%s: unknown category %q", weekday, entry.Category)
			require.True(t, validPriority[entry.Priority], "%s: unknown priority %q", weekday, entry.Priority)
			require.False(t, seen[entry.Title], "%s: duplicate template title %q", weekday, entry.Title)
			seen[entry.Title] = true
		}
	}
}

func TestLearningPathIsOrderedAndUnique(t *testing.T) {
	require.NotEmpty(t, LearningPath)

	seen := map[string]bool{}
	for i, video := range LearningPath {
		require.Equal(t, i+1, video.Order, "path must be stored in sequence order")
		require.Positive(t, video.Duration)
		require.False(t, seen[video.ID], "duplicate video id %q", video.ID)
		seen[video.ID] = true
	}
}
