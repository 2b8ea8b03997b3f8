package service

import (
	"context"
	"errors"
	"math"
	"time"

	"chainboard/internal/logger"
	"chainboard/internal/model"
	"chainboard/internal/observability"
)

var (
	// ErrUnknownVideo is returned when the video id is not in the learning path.
	ErrUnknownVideo = errors.New("video not in learning path")
	// ErrInvalidMinutes is returned when the logged delta is not positive.
	ErrInvalidMinutes = errors.New("minutes must be positive")
)

// ProgressService maintains cumulative watch time against the fixed learning
// path. Minutes only accumulate; values are clamped at each video's duration
// and the completed flag is always derived from the clamped value.
type ProgressService struct {
	progress ProgressStore
	path     []model.Video
	log      *logger.Logger
	now      func() time.Time
}

func NewProgressService(progress ProgressStore, log *logger.Logger) *ProgressService {
	return &ProgressService{
		progress: progress,
		path:     model.LearningPath,
		log:      log,
		now:      time.Now,
	}
}

// LogMinutes adds a watch session to a video's cumulative progress. Invalid
// inputs are rejected before any store call. The operation is not idempotent:
// replaying it accumulates minutes again, up to the clamp ceiling.
func (s *ProgressService) LogMinutes(ctx context.Context, videoID string, minutes int) (model.VideoProgress, error) {
	if minutes <= 0 {
		return model.VideoProgress{}, ErrInvalidMinutes
	}
	video := findVideo(s.path, videoID)
	if video == nil {
		return model.VideoProgress{}, ErrUnknownVideo
	}

	existing, err := s.progress.Find(ctx, videoID)
	if err != nil {
		return model.VideoProgress{}, err
	}
	record := model.VideoProgress{VideoID: videoID}
	if existing != nil {
		record = *existing
	}

	record.MinutesWatched += minutes
	if record.MinutesWatched >= video.Duration {
		record.MinutesWatched = video.Duration
	}
	record.Completed = record.MinutesWatched == video.Duration
	record.LastWatched = s.now()

	if err := s.progress.Save(ctx, &record); err != nil {
		return model.VideoProgress{}, err
	}

	observability.RecordMinutesLogged(minutes)
	s.log.Info("watch session logged",
		"video_id", videoID,
		"minutes", minutes,
		"watched", record.MinutesWatched,
		"completed", record.Completed,
	)
	return record, nil
}

// NextVideo returns the first video in path order without a completed
// progress record, or nil when the whole path is done.
func NextVideo(path []model.Video, progress []model.VideoProgress) *model.Video {
	for i := range path {
		record := findProgress(progress, path[i].ID)
		if record == nil || !record.Completed {
			return &path[i]
		}
	}
	return nil
}

// VideoStats aggregates learning-path progress.
type VideoStats struct {
	TotalMinutes    int
	MinutesWatched  int
	TotalVideos     int
	VideosCompleted int
	Percentage      int
}

// ComputeVideoStats sums clamped per-video progress across the path.
// Percentage is 0 when the path has no minutes at all.
func ComputeVideoStats(path []model.Video, progress []model.VideoProgress) VideoStats {
	stats := VideoStats{TotalVideos: len(path)}
	for _, video := range path {
		stats.TotalMinutes += video.Duration
		record := findProgress(progress, video.ID)
		if record == nil {
			continue
		}
		watched := record.MinutesWatched
		if watched > video.Duration {
			watched = video.Duration
		}
		stats.MinutesWatched += watched
		if record.Completed {
			stats.VideosCompleted++
		}
	}
	if stats.TotalMinutes > 0 {
		stats.Percentage = roundPercent(stats.MinutesWatched, stats.TotalMinutes)
	}
	return stats
}

func findVideo(path []model.Video, id string) *model.Video {
	for i := range path {
		if path[i].ID == id {
			return &path[i]
		}
	}
	return nil
}

func findProgress(progress []model.VideoProgress, videoID string) *model.VideoProgress {
	for i := range progress {
		if progress[i].VideoID == videoID {
			return &progress[i]
		}
	}
	return nil
}

// roundPercent rounds half away from zero.
func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
