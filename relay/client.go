package relay

import (
	"context"
	"fmt"
	"net/http"
)

// Doer performs outbound requests. *http.Client satisfies it and is safe for
// concurrent use, which the handler relies on.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// get issues a GET to url with the given headers.
func get(ctx context.Context, c Doer, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}
	return resp, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
