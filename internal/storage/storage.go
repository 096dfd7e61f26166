// Package storage defines the storage engine contract and provides
// the Badger-backed durable implementation.
//
// The in-memory engine lives in the memory subpackage.
package storage

import (
	"github.com/vidgate/vidgate-go/internal/core/service"
)

// Engine aggregates the repositories a running server needs.
type Engine interface {
	Users() service.UserRepository
	Videos() service.VideoRepository
	Revocations() service.RevocationRepository

	// Close releases the engine's resources. Safe to call once.
	Close() error
}
