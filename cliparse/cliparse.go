package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	Port        int
	SinkURL     string
	JournalURL  string
	JournalType string
	LogLevel    string
}

const (
	defaultPort        = 3318
	defaultJournalType = "sqlite"
	defaultLogLevel    = "info"
	defaultEnvFile     = ".env"
)

// ParseFlags reads flags, then a .env file, then environment variables.
// A missing sink URL is not an error here; the relay reports it per request.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	flags := pflag.NewFlagSet("meikai-waitlist", pflag.ContinueOnError)

	// Network config (can be CLI args or env)
	flags.IntVarP(&cfg.Port, "port", "p", 0, "Server port")

	// Sink (prefer env, it is a private URL)
	flags.StringVar(&cfg.SinkURL, "sink-url", "", "Sink URL (prefer GOOGLE_SHEETS_URL env)")

	// Journal
	flags.StringVarP(&cfg.JournalURL, "journal-url", "d", "", "Attempt journal database URL (optional)")
	flags.StringVarP(&cfg.JournalType, "journal-type", "t", "", "Attempt journal type (sqlite or postgres)")

	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&envFile, "env-file", defaultEnvFile, "Dotenv file loaded before reading the environment")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d: must be between 1 and 65535", cfg.Port)
	}

	if cfg.SinkURL == "" {
		cfg.SinkURL = os.Getenv("GOOGLE_SHEETS_URL")
	}
	cfg.SinkURL = strings.TrimSpace(cfg.SinkURL)

	if cfg.JournalURL == "" {
		cfg.JournalURL = os.Getenv("JOURNAL_URL")
	}

	if cfg.JournalType == "" {
		cfg.JournalType = os.Getenv("JOURNAL_TYPE")
		if cfg.JournalType == "" {
			cfg.JournalType = defaultJournalType
		}
	}
	if cfg.JournalType != "sqlite" && cfg.JournalType != "postgres" {
		return Config{}, fmt.Errorf("invalid journal type %q (use sqlite or postgres)", cfg.JournalType)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = defaultLogLevel
		}
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SinkConfigured reports whether a sink URL was supplied.
func (c Config) SinkConfigured() bool {
	return c.SinkURL != ""
}

// JournalEnabled reports whether a journal URL was supplied.
func (c Config) JournalEnabled() bool {
	return c.JournalURL != ""
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// loadEnvFile loads path without overriding variables already set. A
// missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
