// Package service provides the domain services for vidgate.
//
// AuthService owns account lifecycle and token verification.
// VideoService owns the catalog and playback resolution. Services
// depend on repository interfaces only; storage implementations live
// in internal/storage.
package service
