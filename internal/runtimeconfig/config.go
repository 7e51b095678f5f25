package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sonascale/go-content/internal/content"
)

var (
	// ErrCMSBaseURLRequired indicates a missing upstream CMS address.
	ErrCMSBaseURLRequired = errors.New("scale config: cms base url is required")
	// ErrFrontendBaseURLRequired indicates a missing frontend address for
	// canonical URL resolution.
	ErrFrontendBaseURLRequired = errors.New("scale config: frontend base url is required")
	// ErrCacheTTLInvalid rejects non-positive cache TTLs.
	ErrCacheTTLInvalid = errors.New("scale config: cache ttl must be positive")
)

// Config aggregates every runtime knob of the content gateway. Values load
// from the environment; fields use simple types so hosts can construct the
// struct directly in tests.
type Config struct {
	CMSBaseURL     string        `env:"SCALE_CMS_URL" envDefault:"http://localhost:1337"`
	CMSToken       string        `env:"SCALE_CMS_TOKEN"`
	RequestTimeout time.Duration `env:"SCALE_CMS_TIMEOUT" envDefault:"10s"`

	CacheTTL      time.Duration `env:"SCALE_CACHE_TTL" envDefault:"60s"`
	CacheCapacity int           `env:"SCALE_CACHE_CAPACITY" envDefault:"10000"`

	ListenAddr      string   `env:"SCALE_LISTEN_ADDR" envDefault:":8080"`
	FrontendBaseURL string   `env:"SCALE_FRONTEND_URL" envDefault:"https://scale.sona.edu"`
	AllowedOrigins  []string `env:"SCALE_ALLOWED_ORIGINS" envSeparator:","`

	BlogAuthorName  string `env:"SCALE_BLOG_AUTHOR" envDefault:"Sona Author"`
	EventAuthorName string `env:"SCALE_EVENT_AUTHOR" envDefault:"SCALE Author"`

	LogLevel  string `env:"SCALE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SCALE_LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("scale config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the invariants Load relies on. Exposed so hand-built
// test configurations go through the same checks.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CMSBaseURL) == "" {
		return ErrCMSBaseURLRequired
	}
	if strings.TrimSpace(c.FrontendBaseURL) == "" {
		return ErrFrontendBaseURLRequired
	}
	if c.CacheTTL <= 0 {
		return ErrCacheTTLInvalid
	}
	return nil
}

// BlogNormalizer returns the blog normalizer configured with this
// environment's fallback author literal.
func (c Config) BlogNormalizer() content.BlogNormalizer {
	normalizer := content.NewBlogNormalizer()
	if name := strings.TrimSpace(c.BlogAuthorName); name != "" {
		normalizer.Config.DefaultAuthorName = name
	}
	return normalizer
}

// EventNormalizer returns the event normalizer configured with this
// environment's fallback author literal.
func (c Config) EventNormalizer() content.EventNormalizer {
	normalizer := content.NewEventNormalizer()
	if name := strings.TrimSpace(c.EventAuthorName); name != "" {
		normalizer.Config.DefaultAuthorName = name
	}
	return normalizer
}

// CaseStudyNormalizer returns the case-study normalizer configured with
// this environment's fallback author literal.
func (c Config) CaseStudyNormalizer() content.CaseStudyNormalizer {
	normalizer := content.NewCaseStudyNormalizer()
	if name := strings.TrimSpace(c.BlogAuthorName); name != "" {
		normalizer.Config.DefaultAuthorName = name
	}
	return normalizer
}
