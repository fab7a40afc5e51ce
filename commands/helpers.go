package commands

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/codingconcepts/animerelay/relay"
)

const defaultPort = 8000

// Options holds the values bound to the command line flags.
type Options struct {
	Address   string
	Port      int
	Timeout   time.Duration
	LogLevel  string
	APIURL    string
	Owner     string
	Repo      string
	UserAgent string
}

// BindUpstreamFlags registers the flags that configure the upstream calls.
func BindUpstreamFlags(cmd *cobra.Command, opts *Options) {
	defaults := relay.DefaultConfig()

	cmd.Flags().StringVar(&opts.APIURL, "api-url", getStringEnv("RELAY_API_URL", defaults.APIBaseURL), "Base URL of the releases API")
	cmd.Flags().StringVar(&opts.Owner, "owner", getStringEnv("RELAY_OWNER", defaults.Owner), "Owner of the repository to resolve releases for")
	cmd.Flags().StringVar(&opts.Repo, "repo", getStringEnv("RELAY_REPO", defaults.Repo), "Repository to resolve releases for")
	cmd.Flags().StringVar(&opts.UserAgent, "user-agent", getStringEnv("RELAY_USER_AGENT", defaults.UserAgent), "User-Agent sent to the releases API")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", getDurationEnv("RELAY_TIMEOUT", 0), "Timeout for each upstream call, 0 for none")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", getStringEnv("RELAY_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
}

// BindServeFlags registers the listener flags.
func BindServeFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.Address, "address", getStringEnv("RELAY_ADDRESS", "0.0.0.0"), "Address to listen on")
	cmd.Flags().IntVar(&opts.Port, "port", getPortEnv("PORT", defaultPort), "Port to listen on")
}

// Config returns the relay configuration described by the options.
func (o Options) Config() relay.Config {
	config := relay.DefaultConfig()
	config.APIBaseURL = o.APIURL
	config.Owner = o.Owner
	config.Repo = o.Repo
	config.UserAgent = o.UserAgent
	return config
}

// Client returns the HTTP client shared by every upstream call.
func (o Options) Client() *http.Client {
	return &http.Client{
		Timeout: o.Timeout,
	}
}

func getStringEnv(envName string, defaultValue string) string {
	env, ok := os.LookupEnv(envName)
	if !ok {
		return defaultValue
	}
	return env
}

// getPortEnv reads a TCP port, falling back to defaultValue when the
// variable is unset or isn't a valid 16 bit number.
func getPortEnv(envName string, defaultValue int) int {
	env, ok := os.LookupEnv(envName)
	if !ok {
		return defaultValue
	}

	port, err := strconv.ParseUint(env, 10, 16)
	if err != nil {
		return defaultValue
	}
	return int(port)
}

func getDurationEnv(envName string, defaultValue time.Duration) time.Duration {
	env, ok := os.LookupEnv(envName)
	if !ok {
		return defaultValue
	}

	d, err := time.ParseDuration(env)
	if err != nil {
		return defaultValue
	}
	return d
}
