// Package main provides the entry point for vidgate-server.
//
// The server is the VidGate API backend that provides:
//
//   - Account signup, login, and logout with bearer tokens
//   - The authenticated video dashboard
//   - Playback URL resolution for catalog entries
//   - Prometheus metrics and a health endpoint
//
// Usage:
//
//	vidgate-server [flags]
//	vidgate-server --config /path/to/config.yaml
//
// The server loads configuration, initializes the storage engine, and
// serves HTTP until interrupted.
package main
