package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"chainboard/internal/logger"
	"chainboard/internal/model"
)

// ErrStaleSnapshot reports that a write succeeded but the in-memory view
// could not be refreshed afterwards. The accompanying record is still valid;
// derived views stay stale until the next Reload.
var ErrStaleSnapshot = errors.New("snapshot is stale")

// Snapshot is an in-memory view of every record collection, loaded at once.
type Snapshot struct {
	Tasks    []model.Task
	Notes    []model.Note
	Progress []model.VideoProgress
}

// DayProgress is the completed/total signal for today's tasks.
type DayProgress struct {
	Completed  int
	Total      int
	Percentage int
}

// Workspace is the single state container over the record store. All derived
// views (routine, chains, learning stats) are computed from its snapshot;
// Reload is the one entry point that refreshes everything. Mutations write
// through the store and refresh the snapshot; on write failure the previous
// snapshot stays visible and the error is surfaced to the caller.
type Workspace struct {
	tasks    TaskStore
	notes    NoteStore
	progress ProgressStore
	routine  *RoutineService
	learning *ProgressService
	log      *logger.Logger
	now      func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

func NewWorkspace(tasks TaskStore, notes NoteStore, progress ProgressStore, routine *RoutineService, learning *ProgressService, log *logger.Logger) *Workspace {
	return &Workspace{
		tasks:    tasks,
		notes:    notes,
		progress: progress,
		routine:  routine,
		learning: learning,
		log:      log,
		now:      time.Now,
	}
}

// Reload fetches all records, ensuring today's routine exists first. A
// partial routine-generation failure is logged by the generator and does not
// abort the load.
func (w *Workspace) Reload(ctx context.Context) error {
	if _, report, err := w.routine.EnsureToday(ctx); err != nil {
		return fmt.Errorf("ensure routine: %w", err)
	} else if len(report.FailedIDs) > 0 {
		w.log.Warn("routine generated with failures", "failed_ids", report.FailedIDs)
	}

	tasks, err := w.tasks.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	notes, err := w.notes.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	progress, err := w.progress.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	w.mu.Lock()
	w.snap = Snapshot{Tasks: tasks, Notes: notes, Progress: progress}
	w.mu.Unlock()
	return nil
}

// Snapshot returns the current in-memory view.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snap
}

// TodayTasks returns today's tasks, main routine items first.
func (w *Workspace) TodayTasks() []model.Task {
	today := model.DateString(w.now())
	var main, subs []model.Task
	for _, task := range w.Snapshot().Tasks {
		if task.Date != today {
			continue
		}
		if task.IsSubTask {
			subs = append(subs, task)
		} else {
			main = append(main, task)
		}
	}
	return append(main, subs...)
}

// TodayProgress reports completion over today's tasks.
func (w *Workspace) TodayProgress() DayProgress {
	tasks := w.TodayTasks()
	progress := DayProgress{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			progress.Completed++
		}
	}
	if progress.Total > 0 {
		progress.Percentage = roundPercent(progress.Completed, progress.Total)
	}
	return progress
}

// DailyChains evaluates today's chain analytics from the snapshot.
func (w *Workspace) DailyChains() DailyChains {
	snap := w.Snapshot()
	return EvaluateChains(snap.Tasks, snap.Notes, model.DateString(w.now()))
}

// Weekly evaluates the trailing 7-day chain rollup from the snapshot.
func (w *Workspace) Weekly() []DayActivity {
	snap := w.Snapshot()
	return WeeklyActivity(snap.Tasks, snap.Notes, w.now())
}

// VideoStats aggregates learning-path progress from the snapshot.
func (w *Workspace) VideoStats() VideoStats {
	return ComputeVideoStats(w.learning.path, w.Snapshot().Progress)
}

// NextVideo returns the first incomplete learning-path item, or nil.
func (w *Workspace) NextVideo() *model.Video {
	return NextVideo(w.learning.path, w.Snapshot().Progress)
}

// LearningPath exposes the fixed curriculum for display surfaces.
func (w *Workspace) LearningPath() []model.Video {
	return w.learning.path
}

// CompleteTask marks a task done and refreshes the snapshot. The completed
// record is returned so callers can echo its title.
func (w *Workspace) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	task, err := w.tasks.FindByID(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("find task: %w", err)
	}
	if err := w.tasks.SetCompleted(ctx, id, true); err != nil {
		return model.Task{}, err
	}
	task.Completed = true
	return *task, w.refreshTasks(ctx)
}

// TodayNoteCounts returns the number of linked notes per task id for today's
// tasks. Tasks without notes are omitted.
func (w *Workspace) TodayNoteCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, task := range w.TodayTasks() {
		notes, err := w.notes.ListByTask(ctx, task.ID)
		if err != nil {
			return nil, fmt.Errorf("list task notes: %w", err)
		}
		if len(notes) > 0 {
			counts[task.ID] = len(notes)
		}
	}
	return counts, nil
}

// AddTask persists a user-created task dated today and refreshes the snapshot.
func (w *Workspace) AddTask(ctx context.Context, title string, category model.TaskCategory, priority model.Priority, isSubTask bool) (model.Task, error) {
	task := model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Priority:  priority,
		Date:      model.DateString(w.now()),
		IsSubTask: isSubTask,
	}
	if err := w.tasks.Create(ctx, &task); err != nil {
		return model.Task{}, err
	}
	return task, w.refreshTasks(ctx)
}

// AddNote persists a note and refreshes the snapshot. Notes are immutable
// once written.
func (w *Workspace) AddNote(ctx context.Context, noteType model.NoteType, content, taskID, timestamp, sourceName string) (model.Note, error) {
	note := model.Note{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		Type:       noteType,
		Content:    content,
		Timestamp:  timestamp,
		SourceName: sourceName,
		CreatedAt:  w.now(),
	}
	if err := w.notes.Create(ctx, &note); err != nil {
		return model.Note{}, err
	}
	return note, w.refreshNotes(ctx)
}

// DeleteNote removes a note and refreshes the snapshot.
func (w *Workspace) DeleteNote(ctx context.Context, id string) error {
	if err := w.notes.Delete(ctx, id); err != nil {
		return err
	}
	return w.refreshNotes(ctx)
}

// LogMinutes records a watch session and refreshes the snapshot. When the
// write succeeds but the refresh fails, the record is returned together with
// an error wrapping ErrStaleSnapshot.
func (w *Workspace) LogMinutes(ctx context.Context, videoID string, minutes int) (model.VideoProgress, error) {
	record, err := w.learning.LogMinutes(ctx, videoID, minutes)
	if err != nil {
		return model.VideoProgress{}, err
	}
	progress, listErr := w.progress.ListAll(ctx)
	if listErr != nil {
		w.log.Warn("refresh progress after log", "error", listErr)
		return record, fmt.Errorf("%w: %v", ErrStaleSnapshot, listErr)
	}
	w.mu.Lock()
	w.snap.Progress = progress
	w.mu.Unlock()
	return record, nil
}

func (w *Workspace) refreshTasks(ctx context.Context) error {
	tasks, err := w.tasks.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh tasks: %w", err)
	}
	w.mu.Lock()
	w.snap.Tasks = tasks
	w.mu.Unlock()
	return nil
}

func (w *Workspace) refreshNotes(ctx context.Context) error {
	notes, err := w.notes.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh notes: %w", err)
	}
	w.mu.Lock()
	w.snap.Notes = notes
	w.mu.Unlock()
	return nil
}
