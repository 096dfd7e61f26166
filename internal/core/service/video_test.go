package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vidgate/vidgate-go/internal/core/domain"
	"github.com/vidgate/vidgate-go/internal/core/service"
	"github.com/vidgate/vidgate-go/internal/storage/memory"
)

func newVideoService(t *testing.T) (*service.VideoService, *memory.Store) {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { store.Close() })
	return service.NewVideoService(store.Videos(), nil), store
}

func TestDashboardNewestFirstCapped(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < service.DashboardLimit+3; i++ {
		v := &domain.Video{
			ID:        domain.NewVideoID(),
			Title:     fmt.Sprintf("video %d", i),
			YouTubeID: fmt.Sprintf("yt-%d", i),
			IsActive:  true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Videos().Put(ctx, v); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	got, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(got) != service.DashboardLimit {
		t.Fatalf("len = %d, want %d", len(got), service.DashboardLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("dashboard not newest first at index %d", i)
		}
	}
	if got[0].Title != fmt.Sprintf("video %d", service.DashboardLimit+2) {
		t.Errorf("newest video = %q", got[0].Title)
	}
}

func TestDashboardSkipsInactive(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()

	active := &domain.Video{ID: domain.NewVideoID(), YouTubeID: "a", IsActive: true, CreatedAt: time.Now()}
	hidden := &domain.Video{ID: domain.NewVideoID(), YouTubeID: "b", IsActive: false, CreatedAt: time.Now()}
	for _, v := range []*domain.Video{active, hidden} {
		if err := store.Videos().Put(ctx, v); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	got, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if len(got) != 1 || got[0].ID != active.ID {
		t.Errorf("got %d videos, want only the active one", len(got))
	}
}

func TestPlay(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()

	v := &domain.Video{
		ID:        domain.NewVideoID(),
		YouTubeID: "dQw4w9WgXcQ",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := store.Videos().Put(ctx, v); err != nil {
		t.Fatalf("Put: %v", err)
	}

	url, err := svc.Play(ctx, v.ID)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	want := "https://www.youtube.com/embed/dQw4w9WgXcQ?enablejsapi=1"
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}

	if _, err := svc.Play(ctx, "not-a-ulid"); !errors.Is(err, domain.ErrInvalidVideoID) {
		t.Errorf("malformed id = %v, want ErrInvalidVideoID", err)
	}
	if _, err := svc.Play(ctx, domain.NewVideoID()); !errors.Is(err, domain.ErrVideoNotFound) {
		t.Errorf("unknown id = %v, want ErrVideoNotFound", err)
	}

	v.IsActive = false
	if err := store.Videos().Put(ctx, v); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := svc.Play(ctx, v.ID); !errors.Is(err, domain.ErrVideoNotFound) {
		t.Errorf("inactive video = %v, want ErrVideoNotFound", err)
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	svc, store := newVideoService(t)
	ctx := context.Background()

	if err := svc.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	first, err := store.Videos().ListActive(ctx, 100)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(first) != 7 {
		t.Fatalf("seeded %d videos, want 7", len(first))
	}

	if err := svc.SeedCatalog(ctx); err != nil {
		t.Fatalf("second SeedCatalog: %v", err)
	}
	second, err := store.Videos().ListActive(ctx, 100)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(second) != len(first) {
		t.Errorf("re-seed grew catalog to %d", len(second))
	}
}
