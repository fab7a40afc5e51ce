package relay

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/codingconcepts/animerelay/models"
)

const defaultImageContentType = "image/jpeg"

// Images fetches images from the allow-listed CDN prefix.
type Images struct {
	client Doer
	prefix string
	log    *zap.Logger
}

// NewImages returns an image relay that only fetches URLs starting with
// config.ImagePrefix.
func NewImages(log *zap.Logger, c Doer, config Config) *Images {
	return &Images{
		client: c,
		prefix: config.ImagePrefix,
		log:    log,
	}
}

// Relay fetches rawURL and wraps its bytes and content type in a Response.
// ok is false when the url parameter was not supplied at all.
func (i *Images) Relay(ctx context.Context, rawURL string, ok bool) Response {
	contentType, body, err := i.Fetch(ctx, rawURL, ok)
	if err != nil {
		return ErrorResponse(err)
	}
	return Binary(http.StatusOK, contentType, body)
}

// Fetch validates rawURL against the prefix and returns the upstream content
// type and body unmodified.
func (i *Images) Fetch(ctx context.Context, rawURL string, ok bool) (string, []byte, error) {
	if !ok {
		return "", nil, models.NewErrInvalid("Missing 'url' query parameter")
	}

	// Literal prefix match, the URL is never parsed.
	if !strings.HasPrefix(rawURL, i.prefix) {
		return "", nil, models.NewErrInvalid("Invalid URL")
	}

	resp, err := get(ctx, i.client, rawURL, nil)
	if err != nil {
		return "", nil, models.NewErrUpstream(err, "Failed to fetch image")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		i.log.Warn("upstream returned non-success status",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode))
	}

	contentType, found := headerText(resp.Header, "Content-Type")
	if !found {
		contentType = defaultImageContentType
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, models.NewErrUpstream(err, "Failed to read image data")
	}

	return contentType, body, nil
}

// headerText returns the first value of key if present and made only of
// visible ASCII characters or tabs.
func headerText(h http.Header, key string) (string, bool) {
	values := h.Values(key)
	if len(values) == 0 {
		return "", false
	}

	v := values[0]
	for j := 0; j < len(v); j++ {
		if c := v[j]; c != '\t' && (c < 0x20 || c > 0x7e) {
			return "", false
		}
	}
	return v, true
}
