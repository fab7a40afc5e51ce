package models

// Release is our internal representation of the release selected for a
// channel, containing just the fields we're interested in.
type Release struct {
	Owner   string
	Repo    string
	Channel string
	Version string
	URL     string
}
