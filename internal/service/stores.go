package service

import (
	"context"

	"chainboard/internal/model"
)

// TaskStore is the task persistence collaborator. Satisfied by
// repository.TaskRepository.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListAll(ctx context.Context) ([]model.Task, error)
	ListByDate(ctx context.Context, date string) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

// NoteStore is the note persistence collaborator. Satisfied by
// repository.NoteRepository.
type NoteStore interface {
	Create(ctx context.Context, note *model.Note) error
	ListAll(ctx context.Context) ([]model.Note, error)
	ListByTask(ctx context.Context, taskID string) ([]model.Note, error)
	Delete(ctx context.Context, id string) error
}

// ProgressStore is the watch-progress persistence collaborator. Satisfied by
// repository.ProgressRepository.
type ProgressStore interface {
	ListAll(ctx context.Context) ([]model.VideoProgress, error)
	Find(ctx context.Context, videoID string) (*model.VideoProgress, error)
	Save(ctx context.Context, progress *model.VideoProgress) error
}
