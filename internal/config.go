package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/DukeRupert/pageroute/internal/i18n"
	"github.com/DukeRupert/pageroute/internal/pagination"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Base URL page links are resolved against. Empty means root-relative links.
	BaseURL string

	// Locale selects the translated page keyword (e.g. "nl" -> /pagina/2)
	Locale string
	// PageKeyword overrides the translated keyword when set
	PageKeyword string

	// Pagination defaults
	OnEachSide    int
	PerPage       int
	FullFirstPage bool // Link page 1 as /page/1 instead of the bare route

	// Page list styling
	Style pagination.StyleOptions

	// Metrics
	MetricsEnabled  bool
	MetricsUsername string
	MetricsPassword string

	// Demo content
	DemoItems int
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		BaseURL: getEnv("BASE_URL", ""),

		Locale:      getEnv("LOCALE", "en"),
		PageKeyword: getEnv("PAGE_KEYWORD", ""),

		OnEachSide:    getEnvInt("PAGINATION_ON_EACH_SIDE", 3),
		PerPage:       getEnvInt("PAGINATION_PER_PAGE", 15),
		FullFirstPage: getEnvBool("PAGINATION_FULL_FIRST_PAGE", false),

		Style: pagination.StyleOptions{
			UL:            getEnv("PAGINATION_STYLE_UL", ""),
			LI:            getEnv("PAGINATION_STYLE_LI", ""),
			A:             getEnv("PAGINATION_STYLE_A", ""),
			PreviousA:     getEnv("PAGINATION_STYLE_PREVIOUS_A", ""),
			NextA:         getEnv("PAGINATION_STYLE_NEXT_A", ""),
			ActiveA:       getEnv("PAGINATION_STYLE_ACTIVE_A", ""),
			PreviousLabel: getEnv("PAGINATION_STYLE_PREVIOUS_LABEL", ""),
			NextLabel:     getEnv("PAGINATION_STYLE_NEXT_LABEL", ""),
		},

		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		DemoItems: getEnvInt("DEMO_ITEMS", 250),
	}

	if cfg.OnEachSide < 0 {
		return nil, fmt.Errorf("PAGINATION_ON_EACH_SIDE must not be negative, got: %d", cfg.OnEachSide)
	}
	if cfg.PerPage < 1 {
		return nil, fmt.Errorf("PAGINATION_PER_PAGE must be at least 1, got: %d", cfg.PerPage)
	}
	if cfg.DemoItems < 0 {
		return nil, fmt.Errorf("DEMO_ITEMS must not be negative, got: %d", cfg.DemoItems)
	}

	cfg.PageKeyword = strings.ToLower(strings.TrimSpace(cfg.PageKeyword))
	if cfg.PageKeyword != "" && !i18n.ValidSegment(cfg.PageKeyword) {
		return nil, fmt.Errorf("PAGE_KEYWORD must be a single lowercase path segment, got: %q", cfg.PageKeyword)
	}

	// Validate the base URL early so a typo fails at boot, not on first render
	if _, err := pagination.NewBaseURLGenerator(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("BASE_URL is invalid: %w", err)
	}

	if _, err := pagination.NewStyle(cfg.Style); err != nil {
		return nil, fmt.Errorf("pagination style is invalid: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
