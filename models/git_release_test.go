package models

import "testing"

func TestGitReleaseAsset(t *testing.T) {
	release := GitRelease{
		Assets: []GitAsset{
			{Name: "app_linux", BrowserDownloadURL: "https://example.com/app_linux"},
			{Name: "Latest.json", BrowserDownloadURL: "https://example.com/Latest.json"},
			{Name: "latest.json", BrowserDownloadURL: "https://example.com/latest.json"},
		},
	}

	asset, ok := release.Asset("latest.json")
	if !ok {
		t.Fatal("expected asset to be found")
	}
	if asset.BrowserDownloadURL != "https://example.com/latest.json" {
		t.Fatalf("unexpected asset url %q", asset.BrowserDownloadURL)
	}

	if _, ok = release.Asset("latest.JSON"); ok {
		t.Fatal("expected case-sensitive match")
	}

	if _, ok = (GitRelease{}).Asset("latest.json"); ok {
		t.Fatal("expected no asset on an empty release")
	}
}
