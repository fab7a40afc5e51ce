package relay

import (
	"fmt"
	"strings"
)

// Config contains the upstream parameters the resolver and image relay need.
type Config struct {
	APIBaseURL  string
	Owner       string
	Repo        string
	UserAgent   string
	AssetName   string
	ImagePrefix string
}

// DefaultConfig returns the configuration for the a.ni.me releases and the
// MyAnimeList image CDN.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:  "https://api.github.com",
		Owner:       "Waradu",
		Repo:        "a.ni.me",
		UserAgent:   "a.ni.me-api",
		AssetName:   "latest.json",
		ImagePrefix: "https://cdn.myanimelist.net/images/anime/",
	}
}

// ReleasesURL returns the releases list endpoint for the configured repo.
func (c Config) ReleasesURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/releases", strings.TrimSuffix(c.APIBaseURL, "/"), c.Owner, c.Repo)
}

func (c Config) String() string {
	return fmt.Sprintf("api-url: %q, owner: %q, repo: %q, user-agent: %q, asset: %q, image-prefix: %q",
		c.APIBaseURL, c.Owner, c.Repo, c.UserAgent, c.AssetName, c.ImagePrefix)
}
