package config

import "strings"

// Sanitize returns a copy of the config with secrets masked, safe to
// log at startup.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg
	if sanitized.Auth.TokenSecret != "" {
		sanitized.Auth.TokenSecret = maskSecret(sanitized.Auth.TokenSecret)
	}
	return &sanitized
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
