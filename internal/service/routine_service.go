package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"chainboard/internal/logger"
	"chainboard/internal/model"
	"chainboard/internal/observability"
)

// GenerationReport describes the outcome of one routine generation run.
// FailedIDs lists synthesized tasks that could not be persisted, so callers
// can retry just that subset instead of regenerating the whole day.
type GenerationReport struct {
	Created   []model.Task
	FailedIDs []string
}

// RoutineService guarantees a deterministic task list exists for the current
// calendar day: template tasks for the weekday plus yesterday's unfinished
// items that the template does not already cover.
type RoutineService struct {
	tasks TaskStore
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

func NewRoutineService(tasks TaskStore, log *logger.Logger) *RoutineService {
	return &RoutineService{
		tasks: tasks,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// EnsureToday returns today's main tasks, generating them first if none
// exist. The check counts only non-sub-task records, so a day that already
// has its routine is returned unchanged with an empty report.
func (s *RoutineService) EnsureToday(ctx context.Context) ([]model.Task, GenerationReport, error) {
	now := s.now()
	today := model.DateString(now)

	existing, err := s.tasks.ListByDate(ctx, today)
	if err != nil {
		return nil, GenerationReport{}, err
	}

	var main []model.Task
	for _, task := range existing {
		if !task.IsSubTask {
			main = append(main, task)
		}
	}
	if len(main) > 0 {
		return main, GenerationReport{}, nil
	}

	template := model.WeeklyTemplate[now.Weekday()]
	created := make([]model.Task, 0, len(template))
	for _, tpl := range template {
		created = append(created, model.Task{
			ID:          s.newID(),
			Title:       tpl.Title,
			Description: tpl.Description,
			Category:    tpl.Category,
			Priority:    tpl.Priority,
			Completed:   false,
			Date:        today,
			IsSubTask:   false,
		})
	}

	carried, err := s.carryOver(ctx, now, created)
	if err != nil {
		return nil, GenerationReport{}, err
	}
	created = append(created, carried...)

	report := GenerationReport{Created: created}
	report.FailedIDs = s.persistAll(ctx, created)

	observability.RecordRoutineGenerated(len(created))
	observability.RecordRoutineFailures(len(report.FailedIDs))

	s.log.Info("daily routine generated",
		"date", today,
		"weekday", now.Weekday().String(),
		"template_tasks", len(template),
		"carried_over", len(carried),
		"failed", len(report.FailedIDs),
	)

	return created, report, nil
}

// carryOver clones yesterday's incomplete main tasks whose titles are not
// already covered by today's synthesized list.
func (s *RoutineService) carryOver(ctx context.Context, now time.Time, created []model.Task) ([]model.Task, error) {
	yesterday := model.DateString(now.AddDate(0, 0, -1))
	previous, err := s.tasks.ListByDate(ctx, yesterday)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]bool, len(created))
	for _, task := range created {
		titles[task.Title] = true
	}

	var carried []model.Task
	for _, task := range previous {
		if task.Completed || task.IsSubTask || titles[task.Title] {
			continue
		}
		clone := task
		clone.ID = s.newID()
		clone.Date = model.DateString(now)
		clone.Completed = false
		carried = append(carried, clone)
	}
	return carried, nil
}

// persistAll writes the synthesized tasks concurrently, best effort. A failed
// write is logged and reported but never blocks the rest of the batch.
func (s *RoutineService) persistAll(ctx context.Context, created []model.Task) []string {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed []string
	)
	for i := range created {
		task := created[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.tasks.Create(ctx, &task); err != nil {
				s.log.Error("persist routine task", "task_id", task.ID, "title", task.Title, "error", err)
				mu.Lock()
				failed = append(failed, task.ID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failed
}
