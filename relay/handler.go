package relay

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	apiPrefix     = "/api"
	latestPath    = apiPrefix + "/latest"
	imagePath     = apiPrefix + "/image"
	imageURLParam = "url"
)

type handler struct {
	resolver *Resolver
	images   *Images
	log      *zap.Logger
}

// NewHandler returns the relay's HTTP handler. Every path outside the API
// routes gets the plain "Error <code>" catch-all, without CORS headers.
func NewHandler(log *zap.Logger, resolver *Resolver, images *Images) http.Handler {
	h := &handler{
		resolver: resolver,
		images:   images,
		log:      log,
	}
	return accessLog(log, h)
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		catchAll(w, http.StatusNotFound)
		return
	}

	switch path := r.URL.Path; {
	case path == latestPath:
		h.respond(w, r, h.resolver.Latest(r.Context(), ""))

	case strings.HasPrefix(path, latestPath+"/"):
		channel := strings.TrimPrefix(path, latestPath+"/")
		if strings.Contains(channel, "/") {
			catchAll(w, http.StatusNotFound)
			return
		}
		h.respond(w, r, h.resolver.Latest(r.Context(), channel))

	case path == imagePath:
		values, ok := r.URL.Query()[imageURLParam]
		var rawURL string
		if ok {
			rawURL = values[0]
		}
		h.respond(w, r, h.images.Relay(r.Context(), rawURL, ok))

	default:
		catchAll(w, http.StatusNotFound)
	}
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, resp Response) {
	switch {
	case resp.Status >= http.StatusInternalServerError:
		h.log.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Int("status", resp.Status),
			zap.ByteString("message", resp.Body))
	case resp.Status >= http.StatusBadRequest:
		h.log.Debug("request rejected",
			zap.String("path", r.URL.Path),
			zap.Int("status", resp.Status),
			zap.ByteString("message", resp.Body))
	}

	if err := resp.Write(w); err != nil && !errors.Is(err, http.ErrBodyNotAllowed) {
		h.log.Debug("writing response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// catchAll writes the default error page.
func catchAll(w http.ResponseWriter, status int) {
	body := fmt.Sprintf("Error %d", status)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", fmt.Sprint(len(body)))
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// statusRecorder captures the status and size of a response for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func accessLog(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", time.Since(start)))
	})
}
