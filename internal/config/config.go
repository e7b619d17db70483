package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `json:"addr"`
	ReadHeaderTimeout Duration `json:"read_header_timeout"`
	IdleTimeout       Duration `json:"idle_timeout"`
	ShutdownTimeout   Duration `json:"shutdown_timeout"`
	MaxRequestBytes   int64    `json:"max_request_bytes"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite". SQLite keeps local development and
	// tests dependency-free; Postgres is the deployment target.
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

type AuthConfig struct {
	JWTSecretKey    string   `json:"jwt_secret_key"`
	SessionTokenTTL Duration `json:"session_token_ttl"`
}

type CacheConfig struct {
	// RedisAddr empty disables the result cache entirely.
	RedisAddr string   `json:"redis_addr"`
	ResultTTL Duration `json:"result_ttl"`
}

type Config struct {
	Env      string         `json:"env"`
	HTTP     HTTPConfig     `json:"http"`
	Database DatabaseConfig `json:"database"`
	Auth     AuthConfig     `json:"auth"`
	Cache    CacheConfig    `json:"cache"`
}
