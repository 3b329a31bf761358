package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Scheduler SchedulerConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type DatabaseConfig struct {
	URL          string
	QueryTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type HTTPConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// SchedulerConfig controls the background jobs. An empty AlertCheckSchedule
// disables the low-stock alert check.
type SchedulerConfig struct {
	Enabled            bool
	WarmCacheSchedule  string
	AlertCheckSchedule string
}

// AnalyticsConfig holds the tunables of the usage and restock analytics.
type AnalyticsConfig struct {
	TimeZone                  string
	Location                  *time.Location
	FastMovingThreshold       float64 // units per day
	UsageWindowDays           int
	FastMovingWindowDays      int
	SlowMovingWindowDays      int
	SlowMovingIdleDays        int
	DefaultLeadTimeDays       int
	DefaultSafetyStockPercent int
	DefaultListLimit          int
	MaxListLimit              int
	MonthlyChangesMonths      int
	MaxWindowDays             int
	MaxWindowMonths           int
	RankingCacheTTL           time.Duration
}

// Load reads configuration from an optional .env file, an optional config.yaml and
// the environment. Environment variables use the INVENTORY_ prefix with dots
// replaced by underscores (INVENTORY_ANALYTICS_FAST_MOVING_THRESHOLD).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// DATABASE_URL is what the compose files have always exported.
	_ = v.BindEnv("database.url", "INVENTORY_DATABASE_URL", "DATABASE_URL")

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration with no file or environment overrides.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)
	_ = cfg.Validate()
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("database.url", "")
	v.SetDefault("database.query_timeout", 3*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "inventory-redis:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.rate_limit_rps", 10.0)
	v.SetDefault("http.rate_limit_burst", 20)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)

	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.warm_cache_schedule", "@hourly")
	v.SetDefault("scheduler.alert_check_schedule", "@every 15m")

	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("analytics.fast_moving_threshold", 5.0)
	v.SetDefault("analytics.usage_window_days", 30)
	v.SetDefault("analytics.fast_moving_window_days", 30)
	v.SetDefault("analytics.slow_moving_window_days", 90)
	v.SetDefault("analytics.slow_moving_idle_days", 30)
	v.SetDefault("analytics.default_lead_time_days", 7)
	v.SetDefault("analytics.default_safety_stock_percent", 20)
	v.SetDefault("analytics.default_list_limit", 10)
	v.SetDefault("analytics.max_list_limit", 100)
	v.SetDefault("analytics.monthly_changes_months", 6)
	v.SetDefault("analytics.max_window_days", 365)
	v.SetDefault("analytics.max_window_months", 24)
	v.SetDefault("analytics.ranking_cache_ttl", 10*time.Minute)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			URL:          v.GetString("database.url"),
			QueryTimeout: v.GetDuration("database.query_timeout"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			RateLimitRPS:   v.GetFloat64("http.rate_limit_rps"),
			RateLimitBurst: v.GetInt("http.rate_limit_burst"),
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
		},
		Scheduler: SchedulerConfig{
			Enabled:            v.GetBool("scheduler.enabled"),
			WarmCacheSchedule:  v.GetString("scheduler.warm_cache_schedule"),
			AlertCheckSchedule: v.GetString("scheduler.alert_check_schedule"),
		},
		Analytics: AnalyticsConfig{
			TimeZone:                  v.GetString("analytics.timezone"),
			FastMovingThreshold:       v.GetFloat64("analytics.fast_moving_threshold"),
			UsageWindowDays:           v.GetInt("analytics.usage_window_days"),
			FastMovingWindowDays:      v.GetInt("analytics.fast_moving_window_days"),
			SlowMovingWindowDays:      v.GetInt("analytics.slow_moving_window_days"),
			SlowMovingIdleDays:        v.GetInt("analytics.slow_moving_idle_days"),
			DefaultLeadTimeDays:       v.GetInt("analytics.default_lead_time_days"),
			DefaultSafetyStockPercent: v.GetInt("analytics.default_safety_stock_percent"),
			DefaultListLimit:          v.GetInt("analytics.default_list_limit"),
			MaxListLimit:              v.GetInt("analytics.max_list_limit"),
			MonthlyChangesMonths:      v.GetInt("analytics.monthly_changes_months"),
			MaxWindowDays:             v.GetInt("analytics.max_window_days"),
			MaxWindowMonths:           v.GetInt("analytics.max_window_months"),
			RankingCacheTTL:           v.GetDuration("analytics.ranking_cache_ttl"),
		},
	}
}

// Validate checks the configuration and resolves the analytics time zone.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.QueryTimeout <= 0 {
		errs = append(errs, errors.New("database.query_timeout must be positive"))
	}
	if c.HTTP.RateLimitRPS <= 0 || c.HTTP.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("http rate limit must be positive"))
	}
	if c.Scheduler.Enabled && c.Scheduler.WarmCacheSchedule == "" {
		errs = append(errs, errors.New("scheduler.warm_cache_schedule is required when the scheduler is enabled"))
	}
	if err := c.Analytics.validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (a *AnalyticsConfig) validate() error {
	var errs []error
	positive := map[string]int{
		"analytics.usage_window_days":       a.UsageWindowDays,
		"analytics.fast_moving_window_days": a.FastMovingWindowDays,
		"analytics.slow_moving_window_days": a.SlowMovingWindowDays,
		"analytics.default_list_limit":      a.DefaultListLimit,
		"analytics.max_list_limit":          a.MaxListLimit,
		"analytics.monthly_changes_months":  a.MonthlyChangesMonths,
		"analytics.max_window_days":         a.MaxWindowDays,
		"analytics.max_window_months":       a.MaxWindowMonths,
	}
	for key, val := range positive {
		if val < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", key, val))
		}
	}
	if a.SlowMovingIdleDays < 0 || a.DefaultLeadTimeDays < 0 || a.DefaultSafetyStockPercent < 0 {
		errs = append(errs, errors.New("analytics idle days, lead time and safety stock must not be negative"))
	}
	if a.FastMovingThreshold < 0 {
		errs = append(errs, errors.New("analytics.fast_moving_threshold must not be negative"))
	}
	if a.DefaultListLimit > a.MaxListLimit {
		errs = append(errs, errors.New("analytics.default_list_limit exceeds analytics.max_list_limit"))
	}
	if max(a.UsageWindowDays, a.FastMovingWindowDays, a.SlowMovingWindowDays) > a.MaxWindowDays {
		errs = append(errs, errors.New("analytics windows must not exceed analytics.max_window_days"))
	}
	if a.MonthlyChangesMonths > a.MaxWindowMonths {
		errs = append(errs, errors.New("analytics.monthly_changes_months exceeds analytics.max_window_months"))
	}
	if a.RankingCacheTTL < 0 {
		errs = append(errs, errors.New("analytics.ranking_cache_ttl must not be negative"))
	}

	if a.TimeZone == "" || strings.EqualFold(a.TimeZone, "local") {
		errs = append(errs, fmt.Errorf("analytics.timezone must be an IANA zone name, got %q", a.TimeZone))
	} else if loc, err := time.LoadLocation(a.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("analytics.timezone: %w", err))
	} else {
		a.Location = loc
	}
	return errors.Join(errs...)
}

// ClampLimit applies the list-limit default and cap.
func (a AnalyticsConfig) ClampLimit(limit int) int {
	if limit <= 0 {
		return a.DefaultListLimit
	}
	return min(limit, a.MaxListLimit)
}
