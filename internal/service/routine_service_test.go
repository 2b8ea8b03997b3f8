package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chainboard/internal/logger"
	"chainboard/internal/model"
)

// monday is a fixed reference day (2026-01-05 is a Monday).
var monday = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

type memoryTaskStore struct {
	mu         sync.Mutex
	tasks      []model.Task
	failTitles map[string]bool
	creates    int
}

func (s *memoryTaskStore) Create(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.failTitles[task.Title] {
		return fmt.Errorf("store offline")
	}
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *memoryTaskStore) ListAll(context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Task(nil), s.tasks...), nil
}

func (s *memoryTaskStore) ListByDate(_ context.Context, date string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Task
	for _, task := range s.tasks {
		if task.Date == date {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *memoryTaskStore) FindByID(_ context.Context, id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task %s not found", id)
}

func (s *memoryTaskStore) SetCompleted(_ context.Context, id string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = completed
			return nil
		}
	}
	return fmt.Errorf("task %s not found", id)
}

func (s *memoryTaskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestRoutine(store *memoryTaskStore, day time.Time) *RoutineService {
	svc := NewRoutineService(store, logger.NewNop())
	svc.now = func() time.Time { return day }
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	return svc
}

// swapTemplate replaces the weekly template for the duration of a test.
func swapTemplate(t *testing.T, tpl map[time.Weekday][]model.TaskTemplate) {
	t.Helper()
	old := model.WeeklyTemplate
	model.WeeklyTemplate = tpl
	t.Cleanup(func() { model.WeeklyTemplate = old })
}

func TestEnsureTodayGeneratesFromTemplate(t *testing.T) {
	swapTemplate(t, map[time.Weekday][]model.TaskTemplate{
		time.Monday: {
			{Title: "Scan news", Category: model.CategoryNewsScan, Priority: model.PriorityHigh},
		},
	})

	store := &memoryTaskStore{}
	svc := newTestRoutine(store, monday)

	created, report, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Empty(t, report.FailedIDs)

	task := created[0]
	require.Equal(t, "Scan news", task.Title)
	require.Equal(t, model.CategoryNewsScan, task.Category)
	require.Equal(t, "2026-01-05", task.Date)
	require.False(t, task.Completed)
	require.False(t, task.IsSubTask)
	require.Len(t, store.tasks, 1)
}

func TestEnsureTodayIsIdempotent(t *testing.T) {
	store := &memoryTaskStore{}
	svc := newTestRoutine(store, monday)

	first, _, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)
	writes := store.creates

	second, report, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.Empty(t, report.Created)
	require.Equal(t, writes, store.creates, "second call must not write")

	firstTitles := taskTitles(first)
	require.ElementsMatch(t, firstTitles, taskTitles(second))
}

func TestCarryOverClonesUnfinishedTasks(t *testing.T) {
	swapTemplate(t, map[time.Weekday][]model.TaskTemplate{
		time.Monday: {
			{Title: "Scan news", Category: model.CategoryNewsScan, Priority: model.PriorityHigh},
		},
	})

	store := &memoryTaskStore{tasks: []model.Task{
		{ID: "y1", Title: "Fix DNS outage", Category: model.CategoryProject, Priority: model.PriorityHigh, Date: "2026-01-04"},
		{ID: "y2", Title: "Ship invoice", Category: model.CategoryIncomeWork, Date: "2026-01-04", Completed: true},
		{ID: "y3", Title: "Expand lab notes", Category: model.CategoryLearning, Date: "2026-01-04", IsSubTask: true},
	}}
	svc := newTestRoutine(store, monday)

	created, _, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Scan news", "Fix DNS outage"}, taskTitles(created))

	carried := created[1]
	require.NotEqual(t, "y1", carried.ID, "carry-over must mint a new id")
	require.Equal(t, "2026-01-05", carried.Date)
	require.Equal(t, model.CategoryProject, carried.Category)
	require.False(t, carried.Completed)
}

func TestCarryOverSkipsTitlesCoveredByTemplate(t *testing.T) {
	swapTemplate(t, map[time.Weekday][]model.TaskTemplate{
		time.Monday: {
			{Title: "Scan news", Category: model.CategoryNewsScan, Priority: model.PriorityHigh},
		},
	})

	store := &memoryTaskStore{tasks: []model.Task{
		{ID: "y1", Title: "Scan news", Category: model.CategoryNewsScan, Date: "2026-01-04"},
	}}
	svc := newTestRoutine(store, monday)

	created, _, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Scan news"}, taskTitles(created), "yesterday's duplicate must not carry over")
}

func TestEnsureTodayEmptyTemplateDay(t *testing.T) {
	swapTemplate(t, map[time.Weekday][]model.TaskTemplate{})

	store := &memoryTaskStore{}
	svc := newTestRoutine(store, monday)

	created, report, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.Empty(t, created, "a day with no template and no carry-over has zero tasks")
	require.Empty(t, report.FailedIDs)
}

func TestEnsureTodayReportsPersistFailures(t *testing.T) {
	swapTemplate(t, map[time.Weekday][]model.TaskTemplate{
		time.Monday: {
			{Title: "Scan news", Category: model.CategoryNewsScan, Priority: model.PriorityHigh},
			{Title: "Publish post", Category: model.CategoryPublicPresence, Priority: model.PriorityMedium},
		},
	})

	store := &memoryTaskStore{failTitles: map[string]bool{"Publish post": true}}
	svc := newTestRoutine(store, monday)

	created, report, err := svc.EnsureToday(context.Background())
	require.NoError(t, err, "a per-task failure must not fail the batch")
	require.Len(t, created, 2, "the combined list is returned for display regardless")
	require.Len(t, report.FailedIDs, 1)
	require.Len(t, store.tasks, 1, "only the surviving task is persisted")
}

func TestEnsureTodayIgnoresSubTasksWhenChecking(t *testing.T) {
	store := &memoryTaskStore{tasks: []model.Task{
		{ID: "s1", Title: "Expand: read docs", Date: "2026-01-05", IsSubTask: true},
	}}
	svc := newTestRoutine(store, monday)

	created, _, err := svc.EnsureToday(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, created, "sub-tasks alone do not count as an existing routine")
}

func taskTitles(tasks []model.Task) []string {
	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	return titles
}
