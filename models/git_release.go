package models

import "time"

// GitRelease describes a particular version of a release, as returned by the
// releases API. Only the fields we select on are decoded.
type GitRelease struct {
	TagName     string     `json:"tag_name"`
	Name        string     `json:"name"`
	Draft       bool       `json:"draft"`
	Prerelease  bool       `json:"prerelease"`
	PublishedAt time.Time  `json:"published_at"`
	Assets      []GitAsset `json:"assets"`
}

// GitAsset describes a file attached to a release.
type GitAsset struct {
	Name               string `json:"name"`
	ContentType        string `json:"content_type"`
	State              string `json:"state"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Asset returns the asset whose name exactly matches name.
func (r GitRelease) Asset(name string) (GitAsset, bool) {
	for _, asset := range r.Assets {
		if asset.Name == name {
			return asset, true
		}
	}
	return GitAsset{}, false
}
