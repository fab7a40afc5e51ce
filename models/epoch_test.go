package models

import (
	"net/http"
	"testing"
	"time"
)

func TestParseRateLimitResetTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		header http.Header
		exp    time.Duration
		expOK  bool
	}{
		{
			name:   "no headers",
			header: http.Header{},
		},
		{
			name: "remaining requests",
			header: http.Header{
				"X-Ratelimit-Remaining": []string{"12"},
				"X-Ratelimit-Reset":     []string{"1704110460"},
			},
		},
		{
			name: "exhausted",
			header: http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
				"X-Ratelimit-Reset":     []string{"1704110460"},
			},
			exp:   time.Minute,
			expOK: true,
		},
		{
			name: "exhausted without reset",
			header: http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
			},
		},
		{
			name: "garbage reset",
			header: http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
				"X-Ratelimit-Reset":     []string{"soon"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			act, ok := parseRateLimitResetTime(c.header, now)
			if ok != c.expOK {
				t.Fatalf("exp ok %t but got %t", c.expOK, ok)
			}
			if act != c.exp {
				t.Fatalf("exp %s but got %s", c.exp, act)
			}
		})
	}
}
