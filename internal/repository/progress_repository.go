package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chainboard/internal/model"
)

// ProgressRepository handles upsert/read of per-video watch progress.
// Records are keyed by video id and never deleted.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) ListAll(ctx context.Context) ([]model.VideoProgress, error) {
	var progress []model.VideoProgress
	if err := r.db.WithContext(ctx).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *ProgressRepository) Find(ctx context.Context, videoID string) (*model.VideoProgress, error) {
	var progress model.VideoProgress
	err := r.db.WithContext(ctx).Where("video_id = ?", videoID).First(&progress).Error
	switch {
	case err == nil:
		return &progress, nil
	case err == gorm.ErrRecordNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("find progress: %w", err)
	}
}

// Save upserts the progress record keyed by video id.
func (r *ProgressRepository) Save(ctx context.Context, progress *model.VideoProgress) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}},
		UpdateAll: true,
	}).Create(progress).Error; err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
