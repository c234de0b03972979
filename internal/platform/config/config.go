// Package config loads application settings from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
//
// Keys map to environment variables by upper-casing and replacing "." with
// "_", e.g. db.host → DB_HOST, auth.persist_refresh_token → AUTH_PERSIST_REFRESH_TOKEN.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// EnvKeyConfigFile points to an optional YAML file.
	EnvKeyConfigFile = "CONFIG_FILE"
)

type App struct {
	Env       string
	Port      string
	LogLevel  string
	LogFormat string
}

type DB struct {
	Driver         string // postgres | sqlite
	Host           string
	Port           string
	User           string
	Password       string
	Name           string // database name, or file path for sqlite
	SSLMode        string
	RunMigrations  bool
	ConnectTimeout time.Duration
}

type Redis struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int

	// KeyPrefix namespaces refresh-token keys.
	KeyPrefix      string
	MemberCacheTTL time.Duration
}

// Addr returns host:port.
func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

type JWT struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Kakao struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	TokenURI     string
	UserInfoURI  string
	Timeout      time.Duration
	// MaxCallsPerMinute caps outbound Kakao API calls; 0 disables the cap.
	MaxCallsPerMinute int
}

type Auth struct {
	PersistRefreshToken bool
}

type CORS struct {
	AllowedOrigins []string
}

type RateLimit struct {
	LoginRPS   float64
	LoginBurst int
}

// Config is the full application configuration.
type Config struct {
	App       App
	DB        DB
	Redis     Redis
	JWT       JWT
	Kakao     Kakao
	Auth      Auth
	CORS      CORS
	RateLimit RateLimit
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", EnvDevelopment)
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "hackathon")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.run_migrations", true)
	v.SetDefault("db.connect_timeout", 30*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "refresh_token")
	v.SetDefault("redis.member_cache_ttl", 10*time.Minute)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_ttl", 30*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 14*24*time.Hour)

	v.SetDefault("kakao.client_id", "")
	v.SetDefault("kakao.client_secret", "")
	v.SetDefault("kakao.redirect_uri", "")
	v.SetDefault("kakao.token_uri", "https://kauth.kakao.com/oauth/token")
	v.SetDefault("kakao.user_info_uri", "https://kapi.kakao.com/v2/user/me")
	v.SetDefault("kakao.timeout", 10*time.Second)
	v.SetDefault("kakao.max_calls_per_minute", 0)

	v.SetDefault("auth.persist_refresh_token", false)

	v.SetDefault("cors.allowed_origins", "http://localhost:3000")

	v.SetDefault("ratelimit.login_rps", 5.0)
	v.SetDefault("ratelimit.login_burst", 10)
}

// Load reads the configuration. A missing CONFIG_FILE is an error; an unset
// one is not.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvKeyConfigFile); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		App: App{
			Env:       v.GetString("app.env"),
			Port:      v.GetString("app.port"),
			LogLevel:  v.GetString("app.log_level"),
			LogFormat: v.GetString("app.log_format"),
		},
		DB: DB{
			Driver:         v.GetString("db.driver"),
			Host:           v.GetString("db.host"),
			Port:           v.GetString("db.port"),
			User:           v.GetString("db.user"),
			Password:       v.GetString("db.password"),
			Name:           v.GetString("db.name"),
			SSLMode:        v.GetString("db.sslmode"),
			RunMigrations:  v.GetBool("db.run_migrations"),
			ConnectTimeout: v.GetDuration("db.connect_timeout"),
		},
		Redis: Redis{
			Enabled:        v.GetBool("redis.enabled"),
			Host:           v.GetString("redis.host"),
			Port:           v.GetString("redis.port"),
			Password:       v.GetString("redis.password"),
			DB:             v.GetInt("redis.db"),
			KeyPrefix:      v.GetString("redis.key_prefix"),
			MemberCacheTTL: v.GetDuration("redis.member_cache_ttl"),
		},
		JWT: JWT{
			Secret:     v.GetString("jwt.secret"),
			AccessTTL:  v.GetDuration("jwt.access_ttl"),
			RefreshTTL: v.GetDuration("jwt.refresh_ttl"),
		},
		Kakao: Kakao{
			ClientID:     v.GetString("kakao.client_id"),
			ClientSecret: v.GetString("kakao.client_secret"),
			RedirectURI:  v.GetString("kakao.redirect_uri"),
			TokenURI:     v.GetString("kakao.token_uri"),
			UserInfoURI:  v.GetString("kakao.user_info_uri"),
			Timeout:      v.GetDuration("kakao.timeout"),

			MaxCallsPerMinute: v.GetInt("kakao.max_calls_per_minute"),
		},
		Auth: Auth{
			PersistRefreshToken: v.GetBool("auth.persist_refresh_token"),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.Get("cors.allowed_origins")),
		},
		RateLimit: RateLimit{
			LoginRPS:   v.GetFloat64("ratelimit.login_rps"),
			LoginBurst: v.GetInt("ratelimit.login_burst"),
		},
	}
	return cfg, nil
}

// splitList accepts a YAML list or a comma-separated string (env form).
func splitList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case []any:
		for _, it := range val {
			items = append(items, fmt.Sprint(it))
		}
	case []string:
		items = val
	case string:
		items = strings.Split(val, ",")
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate rejects configurations the server cannot run with.
// EnsureDevelopmentSecret fills an empty JWT secret with a random one in
// development and reports whether it did. Tokens signed with it do not
// survive a restart.
func (c *Config) EnsureDevelopmentSecret() bool {
	if c.JWT.Secret != "" || !c.IsDevelopment() {
		return false
	}
	c.JWT.Secret = uuid.NewString() + uuid.NewString()
	return true
}

func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		errs = append(errs, errors.New("jwt ttl values must be positive"))
	}
	if c.Kakao.ClientID == "" && !c.IsDevelopment() {
		errs = append(errs, errors.New("kakao.client_id is required outside development"))
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unsupported db.driver %q", c.DB.Driver))
	}
	if c.RateLimit.LoginRPS <= 0 || c.RateLimit.LoginBurst <= 0 {
		errs = append(errs, errors.New("ratelimit values must be positive"))
	}
	return errors.Join(errs...)
}
