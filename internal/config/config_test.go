package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONTENTFUL_SPACE_ID", "")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "")
	t.Setenv("CONTENTFUL_ENVIRONMENT", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Environment != "master" {
		t.Errorf("Environment = %q, want master", cfg.Environment)
	}
	if cfg.ContentType != "blogPost" {
		t.Errorf("ContentType = %q, want blogPost", cfg.ContentType)
	}
	if cfg.Limit != 100 {
		t.Errorf("Limit = %d, want 100", cfg.Limit)
	}
	if cfg.Configured() {
		t.Error("no credentials should mean not configured")
	}
}

func TestLoadEnvCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTENTFUL_SPACE_ID", "space1")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "tok")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Configured() {
		t.Error("expected configured")
	}
	if cfg.SpaceID != "space1" || cfg.AccessToken != "tok" {
		t.Errorf("credentials = %q/%q", cfg.SpaceID, cfg.AccessToken)
	}
}

func TestLoadPartialCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTENTFUL_SPACE_ID", "space1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Configured() {
		t.Error("token missing, must not be configured")
	}
}

func TestLoadFileOptions(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
environment: staging
content_type: post
limit: 50
site_url: https://blog.example.com
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
	if cfg.ContentType != "post" {
		t.Errorf("ContentType = %q", cfg.ContentType)
	}
	if cfg.Limit != 50 {
		t.Errorf("Limit = %d", cfg.Limit)
	}
	if got := cfg.PostURL("hello"); got != "https://blog.example.com/blog/hello" {
		t.Errorf("PostURL = %q", got)
	}
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTENTFUL_ENVIRONMENT", "prod")
	path := writeConfig(t, "environment: staging\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != "prod" {
		t.Errorf("Environment = %q, want prod (env var wins)", cfg.Environment)
	}
}

func TestLoadExplicitEmptyContentType(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `content_type: ""`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ContentType != "" {
		t.Errorf("explicit empty content_type should stay empty, got %q", cfg.ContentType)
	}
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", ":\n  - ["},
		{"limit too high", "limit: 5000"},
		{"negative limit", "limit: -1"},
		{"bad site_url scheme", "site_url: ftp://example.com"},
	}
	for _, tt := range tests {
		path := writeConfig(t, tt.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestPostURLUnconfigured(t *testing.T) {
	cfg := &Config{}
	if got := cfg.PostURL("slug"); got != "" {
		t.Errorf("PostURL without site_url = %q, want empty", got)
	}
}
