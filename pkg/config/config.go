package config

import "time"

// Config is the full application configuration, read from the environment.
type Config struct {
	ServiceName string `env:"MAILTO_SERVICE_NAME" envDefault:"mailto-go"`
	LogLevel    string `env:"MAILTO_LOG_LEVEL" envDefault:"info"`
	LogPretty   bool   `env:"MAILTO_LOG_PRETTY" envDefault:"true"`
	Tracing     bool   `env:"MAILTO_TRACING" envDefault:"false"`
	// Obfuscate is the default binding mode for rendered anchors.
	Obfuscate bool `env:"MAILTO_OBFUSCATE" envDefault:"false"`

	HTTP     HTTPConfig
	Cache    CacheConfig
	Mail     MailConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

// HTTPConfig holds configuration for the HTTP API
type HTTPConfig struct {
	Addr    string        `env:"MAILTO_HTTP_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"MAILTO_HTTP_TIMEOUT" envDefault:"30s"`
}

// CacheConfig selects where rendered links are cached
type CacheConfig struct {
	Store  string        `env:"MAILTO_CACHE_STORE" envDefault:"none"` // none, redis, database
	TTL    time.Duration `env:"MAILTO_CACHE_TTL" envDefault:"10m"`
	Prefix string        `env:"MAILTO_CACHE_PREFIX" envDefault:"mailto:"`
}

// MailConfig holds configuration for delivering composed drafts
type MailConfig struct {
	Mailer      string `env:"MAIL_MAILER" envDefault:"log"` // log, smtp
	Host        string `env:"MAIL_HOST"`
	Port        string `env:"MAIL_PORT" envDefault:"587"`
	Username    string `env:"MAIL_USERNAME"`
	Password    string `env:"MAIL_PASSWORD"`
	Encryption  string `env:"MAIL_ENCRYPTION"` // ssl for implicit TLS
	FromAddress string `env:"MAIL_FROM_ADDRESS"`
	FromName    string `env:"MAIL_FROM_NAME"`
}

// RedisConfig holds configuration for Redis connection
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DatabaseConfig holds configuration for SQL database connection
type DatabaseConfig struct {
	Connection string `env:"DB_CONNECTION" envDefault:"sqlite"` // sqlite, pgsql
	Host       string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	Database   string `env:"DB_DATABASE" envDefault:"mailto.db"` // file path for sqlite
	Username   string `env:"DB_USERNAME"`
	Password   string `env:"DB_PASSWORD"`
	Table      string `env:"DB_CACHE_TABLE" envDefault:"mailto_links"`
}
