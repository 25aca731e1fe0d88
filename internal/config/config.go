// Package config loads runtime configuration from the environment.
//
// A .env file is honored when present, then every key is read through viper
// so defaults and environment overrides live in one place. The store
// credential is deliberately optional: its absence switches the sink to a
// dry-run preview instead of writing.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for the tunable pipeline constants.
const (
	DefaultStaleAfterDays   = 180
	DefaultClosedAfterDays  = 14
	DefaultDedupPrefixLen   = 40
	DefaultFetchTimeoutSecs = 15
)

// Config carries everything the run needs. It is constructed once at the
// entry point and passed down; the extraction pipeline itself holds no
// ambient state.
type Config struct {
	// Store endpoint and credential. Empty SupabaseKey means dry run.
	SupabaseURL string
	SupabaseKey string

	// Optional direct-Postgres sink. When set it takes precedence over the
	// REST sink.
	PostgresDSN string

	// Optional Prometheus listen address, e.g. ":9090". Empty disables the
	// embedded metrics endpoint.
	MetricsAddr string

	// Optional local archive directory. When set, every run's final record
	// set is also written there as timestamped JSON.
	ArchiveDir string

	// Pipeline tunables.
	StaleAfter   time.Duration
	ClosedAfter  time.Duration
	DedupPrefix  int
	FetchTimeout time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_KEY", "")
	v.SetDefault("PG_DSN", "")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("ARCHIVE_DIR", "")
	v.SetDefault("STALE_AFTER_DAYS", DefaultStaleAfterDays)
	v.SetDefault("STATUS_CLOSED_AFTER_DAYS", DefaultClosedAfterDays)
	v.SetDefault("DEDUP_PREFIX_LEN", DefaultDedupPrefixLen)
	v.SetDefault("FETCH_TIMEOUT_SECONDS", DefaultFetchTimeoutSecs)

	cfg := &Config{
		SupabaseURL:  v.GetString("SUPABASE_URL"),
		SupabaseKey:  v.GetString("SUPABASE_KEY"),
		PostgresDSN:  v.GetString("PG_DSN"),
		MetricsAddr:  v.GetString("METRICS_ADDR"),
		ArchiveDir:   v.GetString("ARCHIVE_DIR"),
		StaleAfter:   time.Duration(v.GetInt("STALE_AFTER_DAYS")) * 24 * time.Hour,
		ClosedAfter:  time.Duration(v.GetInt("STATUS_CLOSED_AFTER_DAYS")) * 24 * time.Hour,
		DedupPrefix:  v.GetInt("DEDUP_PREFIX_LEN"),
		FetchTimeout: time.Duration(v.GetInt("FETCH_TIMEOUT_SECONDS")) * time.Second,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.StaleAfter <= 0 {
		return fmt.Errorf("STALE_AFTER_DAYS must be positive")
	}
	if c.ClosedAfter <= 0 {
		return fmt.Errorf("STATUS_CLOSED_AFTER_DAYS must be positive")
	}
	if c.DedupPrefix <= 0 {
		return fmt.Errorf("DEDUP_PREFIX_LEN must be positive")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive")
	}
	if c.SupabaseKey != "" && c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required when SUPABASE_KEY is set")
	}
	return nil
}

// DryRun reports whether the run should preview instead of writing: no
// Postgres DSN and no store credential.
func (c *Config) DryRun() bool {
	return c.PostgresDSN == "" && c.SupabaseKey == ""
}
