package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chainboard/internal/model"
)

// NoteRepository handles create/read/delete for notes. Notes are never
// updated in place.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) ListAll(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) ListByTask(ctx context.Context, taskID string) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&model.Note{}).Error; err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
