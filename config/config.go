package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values. It is loaded once
// at boot and passed down by value; nothing mutates it afterwards. Sensitive
// data never has defaults inside code and must come from the environment.
type AppConfig struct {
	AppPort     string
	GinMode     string
	JWTSecret   string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	AllowedOrigins     []string
	RateLimitPerMinute int

	// Request handling timeouts, seconds.
	RequestTimeoutSeconds     int
	ServerReadTimeoutSeconds  int
	ServerWriteTimeoutSeconds int

	// Logging configuration
	LogLevel      string
	LogPath       string
	AccessLogPath string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load reads configuration from the environment (a .env file is honored when
// present). It should be called once during boot and exits the process when
// the JWT secret is missing.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = godotenv.Load()

	cfg = AppConfig{
		AppPort:     getString("APP_PORT", "3000"),
		GinMode:     getString("GIN_MODE", "release"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		DatabaseURI: os.Getenv("DATABASE_URI"),
		DBHost:      getString("DB_HOST", "127.0.0.1"),
		DBPort:      getString("DB_PORT", "5432"),
		DBUser:      getString("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getString("DB_NAME", "realme"),

		AllowedOrigins:     getCSV("ALLOWED_ORIGINS", []string{"*"}),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 60),

		RequestTimeoutSeconds:     getInt("REQUEST_TIMEOUT_SECONDS", 15),
		ServerReadTimeoutSeconds:  getInt("SERVER_READ_TIMEOUT_SECONDS", 60),
		ServerWriteTimeoutSeconds: getInt("SERVER_WRITE_TIMEOUT_SECONDS", 60),

		LogLevel:      getString("LOG_LEVEL", "info"),
		LogPath:       getString("LOG_PATH", "logs/app.log"),
		AccessLogPath: getString("ACCESS_LOG_PATH", "logs/access.log"),
		LogMaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: getInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 7),
		LogCompress:   getBool("LOG_COMPRESS", false),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getCSV(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
