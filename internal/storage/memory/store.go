// Package memory provides the in-memory storage engine.
//
// It backs the default server configuration and every handler test.
// Data lives in concurrent sharded maps and is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vidgate/vidgate-go/internal/core/domain"
	"github.com/vidgate/vidgate-go/internal/core/service"
	"github.com/vidgate/vidgate-go/pkg/cmap"
)

// Store is the in-memory storage engine.
type Store struct {
	users  *userStore
	videos *videoStore
	revs   *revocationStore

	closeOnce sync.Once
}

// New creates an empty in-memory engine.
func New() *Store {
	return &Store{
		users:  newUserStore(),
		videos: newVideoStore(),
		revs:   newRevocationStore(),
	}
}

// Users returns the account repository.
func (s *Store) Users() service.UserRepository { return s.users }

// Videos returns the catalog repository.
func (s *Store) Videos() service.VideoRepository { return s.videos }

// Revocations returns the revoked-token repository.
func (s *Store) Revocations() service.RevocationRepository { return s.revs }

// Close stops the revocation janitor.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.revs.stop()
	})
	return nil
}

// userStore keeps users indexed by ID and by email.
type userStore struct {
	// Global lock keeps the two indexes consistent on writes.
	mu      sync.Mutex
	byID    *cmap.Map[*domain.User]
	byEmail *cmap.Map[string] // email -> user ID
}

func newUserStore() *userStore {
	return &userStore{
		byID:    cmap.New[*domain.User](),
		byEmail: cmap.New[string](),
	}
}

func (s *userStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byEmail.Has(user.Email) {
		return domain.ErrEmailExists
	}
	s.byID.Set(user.ID, user.Clone())
	s.byEmail.Set(user.Email, user.ID)
	return nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, ok := s.byEmail.Get(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *userStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.byID.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user.Clone(), nil
}

// videoStore keeps videos indexed by ID and by YouTube source ID.
type videoStore struct {
	mu        sync.Mutex
	byID      *cmap.Map[*domain.Video]
	byYouTube *cmap.Map[string] // youtube ID -> video ID
}

func newVideoStore() *videoStore {
	return &videoStore{
		byID:      cmap.New[*domain.Video](),
		byYouTube: cmap.New[string](),
	}
}

func (s *videoStore) Put(_ context.Context, video *domain.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID.Set(video.ID, video.Clone())
	s.byYouTube.Set(video.YouTubeID, video.ID)
	return nil
}

func (s *videoStore) Get(_ context.Context, id string) (*domain.Video, error) {
	video, ok := s.byID.Get(id)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	return video.Clone(), nil
}

func (s *videoStore) GetByYouTubeID(ctx context.Context, youtubeID string) (*domain.Video, error) {
	id, ok := s.byYouTube.Get(youtubeID)
	if !ok {
		return nil, domain.ErrVideoNotFound
	}
	return s.Get(ctx, id)
}

func (s *videoStore) ListActive(_ context.Context, limit int) ([]*domain.Video, error) {
	var active []*domain.Video
	s.byID.Range(func(_ string, v *domain.Video) bool {
		if v.IsActive {
			active = append(active, v.Clone())
		}
		return true
	})

	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

// janitorInterval is how often expired revocations are swept.
const janitorInterval = time.Minute

// revocationStore keeps revoked token IDs until their tokens expire.
type revocationStore struct {
	entries *cmap.Map[time.Time] // jti -> token expiry
	stopCh  chan struct{}
	once    sync.Once
}

func newRevocationStore() *revocationStore {
	s := &revocationStore{
		entries: cmap.New[time.Time](),
		stopCh:  make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *revocationStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	s.entries.Set(jti, expiresAt)
	return nil
}

func (s *revocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	expiresAt, ok := s.entries.Get(jti)
	if !ok {
		return false, nil
	}
	if time.Now().After(expiresAt) {
		s.entries.Delete(jti)
		return false, nil
	}
	return true, nil
}

func (s *revocationStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case now := <-ticker.C:
			var expired []string
			s.entries.Range(func(jti string, expiresAt time.Time) bool {
				if now.After(expiresAt) {
					expired = append(expired, jti)
				}
				return true
			})
			for _, jti := range expired {
				s.entries.Delete(jti)
			}
		}
	}
}

func (s *revocationStore) stop() {
	s.once.Do(func() { close(s.stopCh) })
}
