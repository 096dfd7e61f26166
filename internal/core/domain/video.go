package domain

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Video is a catalog entry backed by an embeddable YouTube source.
type Video struct {
	ID           string
	Title        string
	Description  string
	YouTubeID    string
	ThumbnailURL string
	IsActive     bool
	CreatedAt    time.Time
}

// NewVideoID returns a new time-ordered video ID.
// ULIDs sort lexicographically by creation time, which keeps the
// newest-first dashboard listing a plain reverse sort.
func NewVideoID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ValidVideoID reports whether id parses as a ULID.
func ValidVideoID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}

// EmbedURL returns the playback URL for the video.
func (v *Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?enablejsapi=1", v.YouTubeID)
}

// Clone returns a copy so stores can hand out values safely.
func (v *Video) Clone() *Video {
	c := *v
	return &c
}
