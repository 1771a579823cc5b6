package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultContentType scopes the remote request to the blog post model.
	// An explicitly empty content_type in the config file fetches untyped
	// and leaves mixed content models to the normalizer.
	DefaultContentType = "blogPost"

	// DefaultLimit bounds one fetch batch.
	DefaultLimit = 100

	maxLimit = 1000
)

// Config holds everything read once at startup. Credentials come from the
// environment (a .env file is honored); non-secret options may come from an
// optional yaml file.
type Config struct {
	SpaceID     string
	AccessToken string
	Environment string
	ContentType string
	Limit       int
	SiteURL     string
}

// fileConfig is the yaml shape. content_type is a pointer so "unset" and
// "explicitly empty" stay distinguishable.
type fileConfig struct {
	Environment string  `yaml:"environment,omitempty"`
	ContentType *string `yaml:"content_type,omitempty"`
	Limit       int     `yaml:"limit,omitempty"`
	SiteURL     string  `yaml:"site_url,omitempty"`
}

// Configured reports whether both required credentials are present. A missing
// credential is not a load error: the caller shows a permanent not-configured
// state instead, because no retry can succeed.
func (c *Config) Configured() bool {
	return c.SpaceID != "" && c.AccessToken != ""
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "postdeck", "config.yaml")
}

// Load reads credentials from the environment and options from the yaml file
// at path (DefaultConfigPath when empty). A missing file is fine; a malformed
// one is an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		SpaceID:     os.Getenv("CONTENTFUL_SPACE_ID"),
		AccessToken: os.Getenv("CONTENTFUL_ACCESS_TOKEN"),
		Environment: os.Getenv("CONTENTFUL_ENVIRONMENT"),
		ContentType: DefaultContentType,
		Limit:       DefaultLimit,
	}

	if path == "" {
		path = DefaultConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Environment == "" {
		cfg.Environment = fc.Environment
	}
	if fc.ContentType != nil {
		cfg.ContentType = *fc.ContentType
	}
	if fc.Limit != 0 {
		cfg.Limit = fc.Limit
	}
	cfg.SiteURL = fc.SiteURL

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Environment == "" {
		cfg.Environment = "master"
	}
	if cfg.Limit < 1 || cfg.Limit > maxLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", maxLimit, cfg.Limit)
	}
	if cfg.SiteURL != "" {
		u, err := url.Parse(cfg.SiteURL)
		if err != nil {
			return fmt.Errorf("invalid site_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("site_url scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}

// PostURL builds the public URL for a post slug, or "" when no site URL is
// configured.
func (c *Config) PostURL(slug string) string {
	if c.SiteURL == "" || slug == "" {
		return ""
	}
	return c.SiteURL + "/blog/" + slug
}
