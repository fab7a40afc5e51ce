package relay

import (
	"context"
	"io"
	"net/http"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/codingconcepts/animerelay/models"
)

// PreChannel is the only channel that keeps pre-releases in the selection.
const PreChannel = "pre"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Resolver finds the newest release for a channel and returns the contents of
// its latest.json asset.
type Resolver struct {
	client Doer
	config Config
	log    *zap.Logger
}

// NewResolver returns a Resolver using c for both upstream calls.
func NewResolver(log *zap.Logger, c Doer, config Config) *Resolver {
	return &Resolver{
		client: c,
		config: config,
		log:    log,
	}
}

// Latest resolves the latest release document for channel and wraps the
// result, or the first failure, in a Response.
func (r *Resolver) Latest(ctx context.Context, channel string) Response {
	body, err := r.Resolve(ctx, channel)
	if err != nil {
		return ErrorResponse(err)
	}
	return JSON(http.StatusOK, body)
}

// Resolve runs the release pipeline for channel and returns the raw text of
// the selected release's asset. Each stage stops the pipeline on error.
func (r *Resolver) Resolve(ctx context.Context, channel string) (string, error) {
	releases, err := r.fetchReleases(ctx)
	if err != nil {
		return "", err
	}

	release, err := SelectRelease(releases, channel)
	if err != nil {
		return "", err
	}

	asset, ok := release.Asset(r.config.AssetName)
	if !ok {
		return "", models.NewErrNotFound("%s not found", r.config.AssetName)
	}

	selected := models.Release{
		Owner:   r.config.Owner,
		Repo:    r.config.Repo,
		Channel: channel,
		Version: release.TagName,
		URL:     asset.BrowserDownloadURL,
	}
	r.log.Debug("selected release",
		zap.String("owner", selected.Owner),
		zap.String("repo", selected.Repo),
		zap.String("channel", selected.Channel),
		zap.String("version", selected.Version),
		zap.String("url", selected.URL))

	return r.fetchDocument(ctx, selected)
}

func (r *Resolver) fetchReleases(ctx context.Context) ([]models.GitRelease, error) {
	resp, err := get(ctx, r.client, r.config.ReleasesURL(), map[string]string{
		"User-Agent": r.config.UserAgent,
		"Accept":     "application/vnd.github+json",
	})
	if err != nil {
		return nil, models.NewErrUpstream(err, "Error fetching releases")
	}
	defer resp.Body.Close()

	r.warnStatus(resp, r.config.ReleasesURL())

	// Read failures surface as parse failures.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewErrUpstream(err, "Error parsing releases %v", err)
	}

	var releases []models.GitRelease
	if err = json.Unmarshal(body, &releases); err != nil {
		return nil, models.NewErrUpstream(err, "Error parsing releases %v", err)
	}

	return releases, nil
}

func (r *Resolver) fetchDocument(ctx context.Context, release models.Release) (string, error) {
	resp, err := get(ctx, r.client, release.URL, map[string]string{
		"User-Agent": r.config.UserAgent,
	})
	if err != nil {
		return "", models.NewErrUpstream(err, "Error fetching %s", r.config.AssetName)
	}
	defer resp.Body.Close()

	r.warnStatus(resp, release.URL)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.NewErrUpstream(err, "Error reading %s", r.config.AssetName)
	}

	return string(body), nil
}

// warnStatus logs non-2xx upstream responses. They are not failures in
// themselves: the body is still decoded or forwarded.
func (r *Resolver) warnStatus(resp *http.Response, url string) {
	if isSuccess(resp.StatusCode) {
		return
	}

	fields := []zap.Field{
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
	}
	if until, ok := models.ParseRateLimitResetTime(resp.Header); ok {
		fields = append(fields, zap.Duration("rate_limit_reset", until))
	}
	r.log.Warn("upstream returned non-success status", fields...)
}

// SelectRelease drops drafts, and pre-releases unless channel is PreChannel,
// then returns the most recently published release that remains.
func SelectRelease(releases []models.GitRelease, channel string) (models.GitRelease, error) {
	candidates := make([]models.GitRelease, 0, len(releases))
	for _, release := range releases {
		if release.Draft {
			continue
		}
		if release.Prerelease && channel != PreChannel {
			continue
		}
		candidates = append(candidates, release)
	}

	if len(candidates) == 0 {
		return models.GitRelease{}, models.NewErrNotFound("No releases found")
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PublishedAt.After(candidates[j].PublishedAt)
	})

	return candidates[0], nil
}
