package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadHeaderTimeout != 10*time.Second {
		t.Errorf("unexpected read header timeout: %s", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Site.BaseURL != "https://www.endpointmedia.co.za" {
		t.Errorf("unexpected base url %s", cfg.Site.BaseURL)
	}
	if cfg.Site.Environment != EnvDevelopment {
		t.Errorf("expected development environment, got %s", cfg.Site.Environment)
	}
	if cfg.Analytics.GoogleAdsID != "AW-17744075656" {
		t.Errorf("unexpected ads id %s", cfg.Analytics.GoogleAdsID)
	}
	if cfg.IndexNow.Host != "www.endpointmedia.co.za" {
		t.Errorf("expected indexnow host to follow base url, got %s", cfg.IndexNow.Host)
	}
	if cfg.Leads.PubSubEnabled() {
		t.Errorf("pubsub should be disabled without project and topic")
	}
	want := time.Date(2025, 12, 15, 23, 59, 59, 0, SAST)
	if !cfg.Special.EndsAt.Equal(want) {
		t.Errorf("expected special to end at %s, got %s", want, cfg.Special.EndsAt)
	}
	if cfg.Special.Spots != 5 {
		t.Errorf("expected 5 spots, got %d", cfg.Special.Spots)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                          "9000",
		"EPM_WEB_ENV":                   "prod",
		"EPM_WEB_BASE_URL":              "https://example.co.za/",
		"EPM_WEB_SESSION_SIGNING_KEY":   "k",
		"EPM_WEB_PUBSUB_PROJECT_ID":     "epm-prod",
		"EPM_WEB_PUBSUB_LEADS_TOPIC":    "leads",
		"EPM_WEB_LEADS_RATE_PER_MINUTE": "3",
		"EPM_WEB_CMS_CACHE_TTL":         "30s",
		"EPM_WEB_SPECIAL_ENDS_AT":       "2026-01-31T12:00:00",
		"GOOGLE_CLOUD_PROJECT":          "epm-run",
	}

	cfg, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}
	if !cfg.Site.IsProduction() {
		t.Errorf("expected prod alias to resolve to production")
	}
	if cfg.Site.BaseURL != "https://example.co.za" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if !cfg.Session.Secure {
		t.Errorf("expected secure cookies in production")
	}
	if !cfg.Leads.PubSubEnabled() || cfg.Leads.RatePerMinute != 3 {
		t.Errorf("unexpected leads config %+v", cfg.Leads)
	}
	if cfg.CMS.CacheTTL != 30*time.Second {
		t.Errorf("unexpected cache ttl %s", cfg.CMS.CacheTTL)
	}
	if cfg.Special.EndsAt.Month() != time.January {
		t.Errorf("unexpected special end %s", cfg.Special.EndsAt)
	}
	if cfg.Observability.ProjectID != "epm-run" {
		t.Errorf("expected GOOGLE_CLOUD_PROJECT fallback, got %q", cfg.Observability.ProjectID)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	env := map[string]string{
		"EPM_WEB_PORT":                  "eighty",
		"EPM_WEB_ENV":                   "production",
		"EPM_WEB_BASE_URL":              "endpointmedia.co.za",
		"EPM_WEB_LEADS_RATE_PER_MINUTE": "0",
	}
	_, err := Load(context.Background(), WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := vErr.Fields()
	want := []string{"Leads.RatePerMinute", "Server.Port", "Session.SigningKey", "Site.BaseURL"}
	if len(fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("expected fields %v, got %v", want, fields)
		}
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "EPM_WEB_GA_MEASUREMENT_ID=G-TEST123\nexport EPM_WEB_INDEXNOW_KEY=\"abc123\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(path), WithEnvMap(map[string]string{
		"EPM_WEB_INDEXNOW_KEY": "override",
	}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Analytics.GA4MeasurementID != "G-TEST123" {
		t.Errorf("expected GA4 id from .env, got %q", cfg.Analytics.GA4MeasurementID)
	}
	if cfg.IndexNow.Key != "override" {
		t.Errorf("expected env map to win over .env, got %q", cfg.IndexNow.Key)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	if err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}
