package logger

import (
	"log/slog"
	"strings"
)

// JWT access tokens are the main credential that could leak into logs.
const jwtPrefix = "eyJ"

// Key patterns whose string values are always redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"credential",
	"authorization",
	"bearer",
}

const redactedValue = "***REDACTED***"

// redactSensitive rewrites attributes that carry credential material.
// Installed as the handler's ReplaceAttr hook.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		val := a.Value.String()
		if strings.HasPrefix(val, jwtPrefix) && strings.Count(val, ".") == 2 {
			return slog.String(a.Key, maskToken(val))
		}
		if val != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	}

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskToken keeps just enough of a token to correlate log lines.
func maskToken(value string) string {
	if len(value) <= 12 {
		return redactedValue
	}
	return value[:6] + "..." + value[len(value)-4:]
}

// IsSensitiveKey reports whether a key name suggests credential content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
