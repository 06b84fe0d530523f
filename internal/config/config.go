package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile           = ".env"
	defaultPort              = "8080"
	defaultBaseURL           = "https://www.endpointmedia.co.za"
	defaultEnvironment       = EnvDevelopment
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultGoogleAdsID       = "AW-17744075656"
	defaultLeadRatePerMinute = 10
	defaultLeadRateBurst     = 5
	defaultIndexNowEndpoint  = "https://api.indexnow.org/indexnow"
	defaultIndexNowTimeout   = 10 * time.Second
	defaultCMSCacheTTL       = 5 * time.Minute
	defaultSpecialEndsAt     = "2025-12-15T23:59:59"
	defaultSpecialSpots      = 5
)

// Environments understood by the site.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// SAST is South African Standard Time. A fixed zone keeps the binary free of tzdata.
var SAST = time.FixedZone("SAST", 2*60*60)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server        ServerConfig
	Site          SiteConfig
	Observability ObservabilityConfig
	Analytics     AnalyticsConfig
	Session       SessionConfig
	Leads         LeadsConfig
	IndexNow      IndexNowConfig
	CMS           CMSConfig
	Special       SpecialConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	RequestTimeout    time.Duration
}

// SiteConfig describes the public site.
type SiteConfig struct {
	Environment string
	BaseURL     string
	Dev         bool
}

// IsProduction reports whether the site is served to search engines.
func (s SiteConfig) IsProduction() bool {
	return s.Environment == EnvProduction
}

// Host returns the host portion of BaseURL.
func (s SiteConfig) Host() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// ObservabilityConfig ties log lines to Cloud Trace.
type ObservabilityConfig struct {
	// ProjectID prefixes logging.googleapis.com/trace; empty disables the field.
	ProjectID string
}

// AnalyticsConfig holds client instrumentation identifiers.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GoogleAdsID      string
	LabelForm        string
	LabelAudit       string
	LabelPhone       string
	LabelWhatsApp    string
	Debug            bool
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	SigningKey string
	Secure     bool
}

// LeadsConfig controls lead intake and fan-out.
type LeadsConfig struct {
	PubSubProjectID string
	PubSubTopic     string
	RatePerMinute   int
	RateBurst       int
}

// PubSubEnabled reports whether leads should be published to Pub/Sub.
func (l LeadsConfig) PubSubEnabled() bool {
	return l.PubSubProjectID != "" && l.PubSubTopic != ""
}

// IndexNowConfig configures search engine URL submission.
type IndexNowConfig struct {
	Key      string
	Secret   string
	Endpoint string
	Host     string
	Timeout  time.Duration
}

// CMSConfig configures the optional remote content source.
type CMSConfig struct {
	BaseURL  string
	CacheTTL time.Duration
}

// SpecialConfig configures the limited-time offer.
type SpecialConfig struct {
	EndsAt time.Time
	Spots  int
}

// ValidationError reports invalid configuration values.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	fields := e.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Problems[f])
	}
	return "config: invalid configuration: " + strings.Join(parts, "; ")
}

// Fields returns the sorted list of invalid field names.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Problems))
	for k := range e.Problems {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and explicit overrides, in increasing order of precedence.
func Load(_ context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	problems := map[string]string{}

	port := stringWithDefault(lookup, "EPM_WEB_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	env := strings.ToLower(stringWithDefault(lookup, "EPM_WEB_ENV", defaultEnvironment))
	switch env {
	case "prod":
		env = EnvProduction
	case "dev", "local":
		env = EnvDevelopment
	}

	projectID := stringWithDefault(lookup, "EPM_WEB_GCP_PROJECT_ID", "")
	if projectID == "" {
		projectID = stringWithDefault(lookup, "GOOGLE_CLOUD_PROJECT", "")
	}

	endsAt, err := time.ParseInLocation("2006-01-02T15:04:05", stringWithDefault(lookup, "EPM_WEB_SPECIAL_ENDS_AT", defaultSpecialEndsAt), SAST)
	if err != nil {
		problems["Special.EndsAt"] = "must use the layout 2006-01-02T15:04:05"
	}

	cfg := Config{
		Server: ServerConfig{
			Port:              port,
			ReadHeaderTimeout: durationWithDefault(lookup, "EPM_WEB_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
			ReadTimeout:       durationWithDefault(lookup, "EPM_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "EPM_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "EPM_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout:   durationWithDefault(lookup, "EPM_WEB_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
			RequestTimeout:    durationWithDefault(lookup, "EPM_WEB_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Site: SiteConfig{
			Environment: env,
			BaseURL:     strings.TrimRight(stringWithDefault(lookup, "EPM_WEB_BASE_URL", defaultBaseURL), "/"),
			Dev:         boolWithDefault(lookup, "EPM_WEB_DEV", false),
		},
		Observability: ObservabilityConfig{
			ProjectID: projectID,
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "EPM_WEB_GA_MEASUREMENT_ID", ""),
			GoogleAdsID:      stringWithDefault(lookup, "EPM_WEB_GOOGLE_ADS_ID", defaultGoogleAdsID),
			LabelForm:        stringWithDefault(lookup, "EPM_WEB_CONVERSION_LABEL_FORM", ""),
			LabelAudit:       stringWithDefault(lookup, "EPM_WEB_CONVERSION_LABEL_AUDIT", ""),
			LabelPhone:       stringWithDefault(lookup, "EPM_WEB_CONVERSION_LABEL_PHONE", ""),
			LabelWhatsApp:    stringWithDefault(lookup, "EPM_WEB_CONVERSION_LABEL_WHATSAPP", ""),
			Debug:            boolWithDefault(lookup, "EPM_WEB_ANALYTICS_DEBUG", false),
		},
		Session: SessionConfig{
			SigningKey: stringWithDefault(lookup, "EPM_WEB_SESSION_SIGNING_KEY", ""),
			Secure:     boolWithDefault(lookup, "EPM_WEB_SESSION_SECURE", env == EnvProduction),
		},
		Leads: LeadsConfig{
			PubSubProjectID: stringWithDefault(lookup, "EPM_WEB_PUBSUB_PROJECT_ID", ""),
			PubSubTopic:     stringWithDefault(lookup, "EPM_WEB_PUBSUB_LEADS_TOPIC", ""),
			RatePerMinute:   intWithDefault(lookup, "EPM_WEB_LEADS_RATE_PER_MINUTE", defaultLeadRatePerMinute),
			RateBurst:       intWithDefault(lookup, "EPM_WEB_LEADS_RATE_BURST", defaultLeadRateBurst),
		},
		IndexNow: IndexNowConfig{
			Key:      stringWithDefault(lookup, "EPM_WEB_INDEXNOW_KEY", ""),
			Secret:   stringWithDefault(lookup, "EPM_WEB_INDEXNOW_SECRET", ""),
			Endpoint: stringWithDefault(lookup, "EPM_WEB_INDEXNOW_ENDPOINT", defaultIndexNowEndpoint),
			Host:     stringWithDefault(lookup, "EPM_WEB_INDEXNOW_HOST", ""),
			Timeout:  durationWithDefault(lookup, "EPM_WEB_INDEXNOW_TIMEOUT", defaultIndexNowTimeout),
		},
		CMS: CMSConfig{
			BaseURL:  strings.TrimRight(stringWithDefault(lookup, "EPM_WEB_CMS_BASE_URL", ""), "/"),
			CacheTTL: durationWithDefault(lookup, "EPM_WEB_CMS_CACHE_TTL", defaultCMSCacheTTL),
		},
		Special: SpecialConfig{
			EndsAt: endsAt,
			Spots:  intWithDefault(lookup, "EPM_WEB_SPECIAL_SPOTS", defaultSpecialSpots),
		},
	}
	if cfg.IndexNow.Host == "" {
		cfg.IndexNow.Host = cfg.Site.Host()
	}

	validateConfig(cfg, problems)
	if len(problems) > 0 {
		return Config{}, &ValidationError{Problems: problems}
	}
	return cfg, nil
}

func validateConfig(cfg Config, problems map[string]string) {
	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		problems["Server.Port"] = "must be numeric"
	}
	switch cfg.Site.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		problems["Site.Environment"] = "must be development, staging or production"
	}
	u, err := url.Parse(cfg.Site.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems["Site.BaseURL"] = "must be an absolute http(s) URL"
	}
	if cfg.Leads.RatePerMinute <= 0 {
		problems["Leads.RatePerMinute"] = "must be positive"
	}
	if cfg.Leads.RateBurst <= 0 {
		problems["Leads.RateBurst"] = "must be positive"
	}
	if cfg.Special.Spots < 0 {
		problems["Special.Spots"] = "must not be negative"
	}
	if cfg.Site.IsProduction() && strings.TrimSpace(cfg.Session.SigningKey) == "" {
		problems["Session.SigningKey"] = "is required in production"
	}
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
