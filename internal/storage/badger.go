package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/vidgate/vidgate-go/internal/core/domain"
	"github.com/vidgate/vidgate-go/internal/core/service"
)

// Key prefixes. Index entries hold the primary key as their value.
const (
	prefixUserByID    = "user:id:"
	prefixUserByEmail = "user:email:"
	prefixVideoByID   = "video:id:"
	prefixVideoByYT   = "video:yt:"
	prefixRevoked     = "revoked:"
)

// DefaultGCInterval is how often the value log garbage collector runs.
const DefaultGCInterval = 10 * time.Minute

// BadgerConfig configures the durable engine.
type BadgerConfig struct {
	// Dir is the data directory. Required.
	Dir string

	// SyncWrites forces fsync on every write.
	SyncWrites bool

	// GCInterval overrides DefaultGCInterval when positive.
	GCInterval time.Duration
}

// BadgerEngine is the durable storage engine.
//
// Users and videos are stored as JSON values under prefixed keys with
// secondary index entries for email and YouTube ID lookups. Revoked
// token IDs use Badger's native TTL so they vanish with the tokens
// they block.
type BadgerEngine struct {
	db     *badger.DB
	logger *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewBadgerEngine opens the database at cfg.Dir and starts the GC loop.
func NewBadgerEngine(cfg BadgerConfig, logger *slog.Logger) (*BadgerEngine, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(cfg.Dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.SyncWrites = cfg.SyncWrites

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	gcInterval := cfg.GCInterval
	if gcInterval <= 0 {
		gcInterval = DefaultGCInterval
	}

	e := &BadgerEngine{
		db:     db,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go e.gcLoop(gcInterval)

	logger.Info("badger engine started", "dir", cfg.Dir, "sync_writes", cfg.SyncWrites)
	return e, nil
}

// Users returns the account repository.
func (e *BadgerEngine) Users() service.UserRepository { return (*badgerUsers)(e) }

// Videos returns the catalog repository.
func (e *BadgerEngine) Videos() service.VideoRepository { return (*badgerVideos)(e) }

// Revocations returns the revoked-token repository.
func (e *BadgerEngine) Revocations() service.RevocationRepository { return (*badgerRevocations)(e) }

// Close stops the GC loop and closes the database.
func (e *BadgerEngine) Close() error {
	close(e.stopCh)
	<-e.doneCh
	return e.db.Close()
}

func (e *BadgerEngine) gcLoop(interval time.Duration) {
	defer close(e.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopCh:
			return
		case <-ticker.C:
			// RunValueLogGC returns ErrNoRewrite when there was
			// nothing to reclaim; that is not a failure.
			if err := e.db.RunValueLogGC(0.5); err != nil && err != badger.ErrNoRewrite {
				e.logger.Warn("badger value log GC failed", "error", err)
			}
		}
	}
}

type badgerUsers BadgerEngine

func (b *badgerUsers) Create(_ context.Context, user *domain.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(prefixUserByEmail + user.Email)
		if _, err := txn.Get(emailKey); err == nil {
			return domain.ErrEmailExists
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set([]byte(prefixUserByID+user.ID), value); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(user.ID))
	})
}

func (b *badgerUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, err := (*BadgerEngine)(b).getIndexed(prefixUserByEmail + email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return b.GetByID(ctx, id)
}

func (b *badgerUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := (*BadgerEngine)(b).getJSON(prefixUserByID+id, &user); err != nil {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

type badgerVideos BadgerEngine

func (b *badgerVideos) Put(_ context.Context, video *domain.Video) error {
	value, err := json.Marshal(video)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(prefixVideoByID+video.ID), value); err != nil {
			return err
		}
		return txn.Set([]byte(prefixVideoByYT+video.YouTubeID), []byte(video.ID))
	})
}

func (b *badgerVideos) Get(_ context.Context, id string) (*domain.Video, error) {
	var video domain.Video
	if err := (*BadgerEngine)(b).getJSON(prefixVideoByID+id, &video); err != nil {
		return nil, domain.ErrVideoNotFound
	}
	return &video, nil
}

func (b *badgerVideos) GetByYouTubeID(ctx context.Context, youtubeID string) (*domain.Video, error) {
	id, err := (*BadgerEngine)(b).getIndexed(prefixVideoByYT + youtubeID)
	if err != nil {
		return nil, domain.ErrVideoNotFound
	}
	return b.Get(ctx, id)
}

func (b *badgerVideos) ListActive(_ context.Context, limit int) ([]*domain.Video, error) {
	var active []*domain.Video

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixVideoByID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var video domain.Video
				if err := json.Unmarshal(value, &video); err != nil {
					return err
				}
				if video.IsActive {
					active = append(active, &video)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

type badgerRevocations BadgerEngine

func (b *badgerRevocations) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(prefixRevoked+jti), nil).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

func (b *badgerRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	err := b.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(prefixRevoked + jti))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// getJSON reads and unmarshals the value stored under key.
func (e *BadgerEngine) getJSON(key string, target any) error {
	return e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, target)
		})
	})
}

// getIndexed reads an index entry whose value is a primary key.
func (e *BadgerEngine) getIndexed(key string) (string, error) {
	var id string
	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			id = string(value)
			return nil
		})
	})
	return id, err
}

// badgerLogger adapts slog to Badger's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
