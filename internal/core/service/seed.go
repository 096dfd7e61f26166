package service

import (
	"context"
	"errors"
	"time"

	"github.com/vidgate/vidgate-go/internal/core/domain"
)

type seedEntry struct {
	title       string
	description string
	youtubeID   string
}

// Starter catalog: well-known public talks.
var seedCatalog = []seedEntry{
	{
		title:       "How to Start a Startup (Sam Altman)",
		description: "Y Combinator's Sam Altman shares practical startup lessons.",
		youtubeID:   "CBYhVcO4WgI",
	},
	{
		title:       "Inside the Mind of a Master Procrastinator",
		description: "A humorous TED talk that explains procrastination behavior.",
		youtubeID:   "arj7oStGLkU",
	},
	{
		title:       "The Future of Programming",
		description: "Discussion on how software development is evolving.",
		youtubeID:   "8pTEmbeENF4",
	},
	{
		title:       "How Great Leaders Inspire Action",
		description: "Simon Sinek on starting with why and building belief.",
		youtubeID:   "qp0HIF3SfI4",
	},
	{
		title:       "The Surprising Habits of Original Thinkers",
		description: "Adam Grant explores patterns among original thinkers.",
		youtubeID:   "fxbCHn6gE3U",
	},
	{
		title:       "Your Body Language May Shape Who You Are",
		description: "Amy Cuddy on how power posing affects confidence.",
		youtubeID:   "Ks-_Mh1QhMc",
	},
	{
		title:       "The Power of Vulnerability",
		description: "Brene Brown studies human connection and empathy.",
		youtubeID:   "iCvmsMzlF7o",
	},
}

// SeedCatalog inserts the starter catalog. Entries already present
// (by YouTube ID) keep their identity; only the thumbnail is refreshed
// so re-seeding stays idempotent across restarts.
func (s *VideoService) SeedCatalog(ctx context.Context) error {
	for _, entry := range seedCatalog {
		thumb := "https://img.youtube.com/vi/" + entry.youtubeID + "/hqdefault.jpg"

		existing, err := s.videos.GetByYouTubeID(ctx, entry.youtubeID)
		if err == nil {
			if existing.ThumbnailURL != thumb {
				existing.ThumbnailURL = thumb
				if err := s.videos.Put(ctx, existing); err != nil {
					return err
				}
			}
			continue
		}
		if !errors.Is(err, domain.ErrVideoNotFound) {
			return err
		}

		if err := s.videos.Put(ctx, &domain.Video{
			ID:           domain.NewVideoID(),
			Title:        entry.title,
			Description:  entry.description,
			YouTubeID:    entry.youtubeID,
			ThumbnailURL: thumb,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		}); err != nil {
			return err
		}
	}

	s.logger.Info("video catalog seeded", "entries", len(seedCatalog))
	return nil
}
