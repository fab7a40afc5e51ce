package models

import (
	"net/http"
	"strconv"
	"time"
)

// ParseRateLimitResetTime parses a non-200 response's headers and if it contains
// fields which would suggest a caller is being rate-limited, it'll return how
// long until they can try again.
func ParseRateLimitResetTime(h http.Header) (time.Duration, bool) {
	return parseRateLimitResetTime(h, time.Now().UTC())
}

func parseRateLimitResetTime(h http.Header, now time.Time) (time.Duration, bool) {
	if h.Get("X-Ratelimit-Remaining") != "0" {
		return 0, false
	}

	rateLimitResetRaw := h.Get("X-Ratelimit-Reset")
	if rateLimitResetRaw == "" {
		return 0, false
	}

	rateLimitReset, err := strconv.ParseInt(rateLimitResetRaw, 10, 64)
	if err != nil {
		return 0, false
	}

	return time.Unix(rateLimitReset, 0).Sub(now), true
}
