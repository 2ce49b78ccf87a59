package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Supported customer stores
const (
	StorePostgres = "postgres"
	StoreMysql    = "mysql"
	StoreMongo    = "mongo"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type MongoCfg struct {
	Host        string `env:"MONGO_HOST" envDefault:"mongo-customers"`
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"customers"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-customers"`
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type MysqlCfg struct {
	Host        string `env:"MYSQL_HOST" envDefault:"mysql-customers"`
	User        string `env:"MYSQL_USER"`
	Password    string `env:"MYSQL_PASSWORD"`
	Database    string `env:"MYSQL_DB"`
	Port        int    `env:"MYSQL_PORT" envDefault:"3306"`
	MaxOpenConn int    `env:"MYSQL_MAX_OPEN_CONN" envDefault:"100"`
}

// RedisCfg configures customer cache, empty Addr disables caching
type RedisCfg struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:""`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"10m"`
}

type Config struct {
	HTTPCfg                HTTPCfg
	PostgresCfg            PostgresCfg
	MysqlCfg               MysqlCfg
	MongoCfg               MongoCfg
	RedisCfg               RedisCfg
	Store                  string        `env:"CUSTOMERS_STORE" envDefault:"postgres"`
	DeleteReportsMissing   bool          `env:"CUSTOMERS_DELETE_REPORTS_MISSING" envDefault:"true"`
	TracingStdout          bool          `env:"TRACING_STDOUT" envDefault:"false"`
	LogLevel               string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" envDefault:"5s"`
}

func Build() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.Store {
	case StorePostgres, StoreMysql, StoreMongo:
	default:
		return cfg, fmt.Errorf("unsupported customers store %q, must be one of %s, %s, %s", cfg.Store, StorePostgres, StoreMysql, StoreMongo)
	}

	return cfg, nil
}

// CacheEnabled reports whether redis cache is configured
func (c Config) CacheEnabled() bool {
	return c.RedisCfg.Addr != ""
}
