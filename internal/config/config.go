package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`
	FrontendURL string        `env:"FRONTEND_URL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL    string        `env:"-"`
	TokenStore   string        `env:"TOKEN_STORE"` // file | sqlite | keyring | memory
	TokenDir     string        `env:"TOKEN_DIR"`
	ClientDBPath string        `env:"CLIENT_DB_PATH"`
	Locale       string        `env:"LOCALE"`
	TimeZone     string        `env:"TZ_NAME"`
	LoginPath    string        `env:"LOGIN_PATH"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT"`
	Debug        bool          `env:"DEBUG"`
	Version      bool          `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres://... или путь к sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the API server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenStore, "token-store", cfg.TokenStore, "token storage backend: file, sqlite, keyring, memory")
	flag.StringVar(&cfg.TokenDir, "token-dir", cfg.TokenDir, "directory for the file token store")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB (sqlite token store)")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for date output (es-ES, en-US)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose client logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = cfg.ServerURL
	}

	// Fill client defaults if empty
	if cfg.TokenStore == "" {
		cfg.TokenStore = "file"
	}
	if cfg.TokenDir == "" || cfg.ClientDBPath == "" {
		base := ""
		if dir, err := os.UserConfigDir(); err == nil {
			base = filepath.Join(dir, "TokenKeeper")
		} else {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".tokenkeeper")
		}
		if cfg.TokenDir == "" {
			cfg.TokenDir = base
		}
		if cfg.ClientDBPath == "" {
			cfg.ClientDBPath = filepath.Join(base, "client.sqlite")
		}
	}
	if cfg.Locale == "" {
		cfg.Locale = "es-ES"
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login.html"
	}
}

// Location returns the configured time zone, or time.Local when unset or unknown.
func (cfg *Config) Location() *time.Location {
	if cfg.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
