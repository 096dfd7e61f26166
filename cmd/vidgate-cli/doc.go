// Package main provides the entry point for vidgate-cli.
//
// The CLI tool provides command-line access to a VidGate server for:
//
//   - Account signup, login, and logout
//   - Inspecting the signed-in profile
//   - Browsing the video dashboard
//   - Resolving playback URLs
//   - Configuration management
//
// Usage:
//
//	vidgate-cli [command] [flags]
//	vidgate-cli auth login --email you@example.com --password secret
//	vidgate-cli videos list --output json
//
// The login token is stored under ~/.vidgate and reused until logout.
package main
