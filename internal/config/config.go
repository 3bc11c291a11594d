package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	Lookup LookupConfig `yaml:"lookup"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimitPerMinute caps API requests per caller; 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"0"`
}

// Cache backend selectors.
const (
	CacheBackendMemory   = "memory"
	CacheBackendSQLite   = "sqlite"
	CacheBackendPostgres = "postgres"
)

// CacheConfig selects and configures the cache store that holds projected
// entries and sentence translations.
type CacheConfig struct {
	Backend    string `yaml:"backend"     env:"CACHE_BACKEND"     env-default:"memory"`
	SQLitePath string `yaml:"sqlite_path" env:"CACHE_SQLITE_PATH" env-default:"wordpeek-cache.db"`

	// RetentionDays is the age past which cmd/purge removes entries.
	RetentionDays int `yaml:"retention_days" env:"CACHE_RETENTION_DAYS" env-default:"30"`

	// Postgres settings, used only when backend is "postgres".
	DSN             string        `yaml:"dsn"                env:"CACHE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"CACHE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"CACHE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"CACHE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"CACHE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LookupConfig holds the user-facing lookup settings. Every field here maps
// to a settings key a client may also override per request; the defaults
// apply when a request carries no override.
type LookupConfig struct {
	PreferredSource string `yaml:"preferred_source" env:"LOOKUP_PREFERRED_SOURCE" env-default:"cambridge"`
	MWAPIKey        string `yaml:"mw_api_key"       env:"LOOKUP_MW_API_KEY"`
	GeminiAPIKey    string `yaml:"gemini_api_key"   env:"LOOKUP_GEMINI_API_KEY"`
	GeminiModel     string `yaml:"gemini_model"     env:"LOOKUP_GEMINI_MODEL"     env-default:"gemini-2.0-flash"`
	TargetLanguage  string `yaml:"target_language"  env:"LOOKUP_TARGET_LANGUAGE"  env-default:"none"`
	DefinitionScope string `yaml:"definition_scope" env:"LOOKUP_DEFINITION_SCOPE" env-default:"relevant"`
	ExampleCount    int    `yaml:"example_count"    env:"LOOKUP_EXAMPLE_COUNT"    env-default:"1"`
	TTSEnabled      bool   `yaml:"tts_enabled"      env:"LOOKUP_TTS_ENABLED"      env-default:"true"`

	MerriamBaseURL      string `yaml:"merriam_base_url"       env:"LOOKUP_MERRIAM_BASE_URL"       env-default:"https://www.dictionaryapi.com/api/v3/references/collegiate/json"`
	MerriamAudioBaseURL string `yaml:"merriam_audio_base_url" env:"LOOKUP_MERRIAM_AUDIO_BASE_URL" env-default:"https://media.merriam-webster.com/audio/prons/en"`
	CambridgeBaseURL    string `yaml:"cambridge_base_url"     env:"LOOKUP_CAMBRIDGE_BASE_URL"     env-default:"http://localhost:8090/api/dictionary/en"`
}

// AuthConfig holds API token settings. An empty JWTSecret disables the auth
// middleware entirely (open server).
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wordpeek"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
