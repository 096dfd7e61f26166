package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vidgate/vidgate-go/internal/core/domain"
)

// DashboardLimit caps the number of videos on the dashboard.
const DashboardLimit = 10

// VideoRepository is the storage interface for the catalog.
type VideoRepository interface {
	// Put stores or replaces a video by ID.
	Put(ctx context.Context, video *domain.Video) error

	// Get retrieves a video by ID.
	// Returns domain.ErrVideoNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Video, error)

	// GetByYouTubeID retrieves a video by its YouTube source ID.
	// Returns domain.ErrVideoNotFound when absent.
	GetByYouTubeID(ctx context.Context, youtubeID string) (*domain.Video, error)

	// ListActive returns up to limit active videos, newest first.
	ListActive(ctx context.Context, limit int) ([]*domain.Video, error)
}

// VideoService owns the catalog and playback resolution.
type VideoService struct {
	videos VideoRepository
	logger *slog.Logger
}

// NewVideoService creates a VideoService.
func NewVideoService(videos VideoRepository, logger *slog.Logger) *VideoService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VideoService{videos: videos, logger: logger}
}

// Dashboard returns the active catalog, newest first.
func (s *VideoService) Dashboard(ctx context.Context) ([]*domain.Video, error) {
	videos, err := s.videos.ListActive(ctx, DashboardLimit)
	if err != nil {
		return nil, domain.ErrStorage.WithCause(err)
	}
	return videos, nil
}

// Play resolves a video ID to its embeddable playback URL.
func (s *VideoService) Play(ctx context.Context, id string) (string, error) {
	if !domain.ValidVideoID(id) {
		return "", domain.ErrInvalidVideoID
	}

	video, err := s.videos.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return "", domain.ErrVideoNotFound
		}
		return "", domain.ErrStorage.WithCause(err)
	}
	if !video.IsActive {
		return "", domain.ErrVideoNotFound
	}
	return video.EmbedURL(), nil
}
