package bot

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"chainboard/internal/model"
	"chainboard/internal/service"
)

func TestTodayKeyboardLabelsStayValidUTF8(t *testing.T) {
	var tasks []model.Task
	for i, tpl := range model.WeeklyTemplate[time.Monday] {
		tasks = append(tasks, model.Task{ID: fmt.Sprintf("t%d", i), Title: tpl.Title})
	}

	keyboard := todayKeyboard(tasks)
	require.Len(t, keyboard.InlineKeyboard, len(tasks))
	for _, row := range keyboard.InlineKeyboard {
		for _, button := range row {
			require.True(t, utf8.ValidString(button.Text), "label %q", button.Text)
		}
	}
}

func TestTruncateLabelCutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("→", 60)
	short := truncateLabel(long, 48)
	require.True(t, utf8.ValidString(short))
	require.Equal(t, 48, utf8.RuneCountInString(short))
	require.True(t, strings.HasSuffix(short, "..."))

	require.Equal(t, "short", truncateLabel("short", 48))
}

func TestFormatTodayShowsNoteCounts(t *testing.T) {
	tasks := []model.Task{
		{ID: "scan", Title: "AI news scan", Category: model.CategoryNewsScan},
		{ID: "video", Title: "Watch video", Category: model.CategoryLearning, Completed: true},
	}

	out := formatToday(tasks, map[string]int{"scan": 2}, service.DayProgress{Completed: 1, Total: 2, Percentage: 50})
	require.Contains(t, out, "📝2")
	require.Equal(t, 1, strings.Count(out, "📝"), "tasks without notes carry no marker")
}
