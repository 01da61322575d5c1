package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Channel holds the channel-level metadata emitted at the top of the
// rendered feed.
type Channel struct {
	Title       string
	Description string
}

// Config is the immutable configuration for one run of the pipeline. It is
// built from defaults, optionally overridden by a YAML file, and passed into
// the collector rather than read from package-level state so tests can
// substitute endpoints.
type Config struct {
	// SourceURL is the listing page enumerating recent articles.
	SourceURL string
	// ArticlePathPrefix selects which hrefs on the listing page count as
	// article candidates (e.g. "/news/").
	ArticlePathPrefix string
	// OutputPath is where the rendered feed document is written.
	OutputPath string
	// FeedURL is the public URL the feed is served from, used for the
	// self-referential atom:link.
	FeedURL string
	// MaxItems caps the number of items in the rendered feed.
	MaxItems int
	// CandidateCap bounds how many listing links are fetched. It should be
	// several times MaxItems so that candidates without a usable title or
	// date don't starve the feed.
	CandidateCap int
	// Timeout applies to each HTTP request.
	Timeout time.Duration
	// FailOnEmpty makes a zero-item run exit non-zero. The feed file is
	// written either way, so the published resource never disappears.
	FailOnEmpty bool

	Channel Channel
}

// Default returns the configuration for the NAPO Washington Report feed.
func Default() Config {
	return Config{
		SourceURL:         "https://www.napo.org/washington-report",
		ArticlePathPrefix: "/news/",
		OutputPath:        "feed.xml",
		FeedURL:           "https://tempest790.github.io/napo-washington-report-feed/feed.xml",
		MaxItems:          3,
		CandidateCap:      15,
		Timeout:           30 * time.Second,
		FailOnEmpty:       false,
		Channel: Channel{
			Title:       "NAPO Washington Report (Latest)",
			Description: "Latest Washington Report entries from NAPO (title + date + link).",
		},
	}
}

// fileConfig mirrors Config for YAML decoding. Fields are pointers so that
// only keys present in the file override the defaults, and the timeout is a
// duration string ("30s", "1m") parsed with time.ParseDuration.
type fileConfig struct {
	SourceURL         *string `yaml:"source_url"`
	ArticlePathPrefix *string `yaml:"article_path_prefix"`
	OutputPath        *string `yaml:"output_path"`
	FeedURL           *string `yaml:"feed_url"`
	MaxItems          *int    `yaml:"max_items"`
	CandidateCap      *int    `yaml:"candidate_cap"`
	Timeout           *string `yaml:"timeout"`
	FailOnEmpty       *bool   `yaml:"fail_on_empty"`
	Channel           struct {
		Title       *string `yaml:"title"`
		Description *string `yaml:"description"`
	} `yaml:"channel"`
}

// Load reads configuration from the YAML file at path, applied on top of
// Default(). A missing file is not an error; the defaults are returned
// unchanged. A file that exists but cannot be parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.SourceURL != nil {
		cfg.SourceURL = *fc.SourceURL
	}
	if fc.ArticlePathPrefix != nil {
		cfg.ArticlePathPrefix = *fc.ArticlePathPrefix
	}
	if fc.OutputPath != nil {
		cfg.OutputPath = *fc.OutputPath
	}
	if fc.FeedURL != nil {
		cfg.FeedURL = *fc.FeedURL
	}
	if fc.MaxItems != nil {
		cfg.MaxItems = *fc.MaxItems
	}
	if fc.CandidateCap != nil {
		cfg.CandidateCap = *fc.CandidateCap
	}
	if fc.Timeout != nil {
		timeout, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse timeout %q: %w", *fc.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if fc.FailOnEmpty != nil {
		cfg.FailOnEmpty = *fc.FailOnEmpty
	}
	if fc.Channel.Title != nil {
		cfg.Channel.Title = *fc.Channel.Title
	}
	if fc.Channel.Description != nil {
		cfg.Channel.Description = *fc.Channel.Description
	}

	return cfg, nil
}

// Validate checks that the configuration is usable for a run.
func (c *Config) Validate() error {
	src, err := url.Parse(c.SourceURL)
	if err != nil {
		return fmt.Errorf("invalid source URL: %w", err)
	}
	if src.Scheme != "http" && src.Scheme != "https" {
		return fmt.Errorf("source URL must use http or https scheme")
	}
	if src.Host == "" {
		return fmt.Errorf("source URL must have a host")
	}

	if c.ArticlePathPrefix == "" {
		return fmt.Errorf("article path prefix must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.MaxItems < 1 {
		return fmt.Errorf("max items must be at least 1 (got %d)", c.MaxItems)
	}
	if c.CandidateCap < c.MaxItems {
		return fmt.Errorf("candidate cap (%d) must be at least max items (%d)", c.CandidateCap, c.MaxItems)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive (got %v)", c.Timeout)
	}

	return nil
}

// BaseOrigin returns the scheme://host origin of the source URL, used to
// resolve relative article links.
func (c *Config) BaseOrigin() (*url.URL, error) {
	src, err := url.Parse(c.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}
	return &url.URL{Scheme: src.Scheme, Host: src.Host}, nil
}
