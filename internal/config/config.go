package config

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempotencyTTL time.Duration
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("MYSQL_HOST", "127.0.0.1")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "pawnledger")
	v.SetDefault("MYSQL_USER", "root")
	v.SetDefault("MYSQL_PASS", "")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)

	return Config{
		AppPort:        v.GetString("APP_PORT"),
		MySQLHost:      v.GetString("MYSQL_HOST"),
		MySQLPort:      v.GetString("MYSQL_PORT"),
		MySQLDB:        v.GetString("MYSQL_DB"),
		MySQLUser:      v.GetString("MYSQL_USER"),
		MySQLPass:      v.GetString("MYSQL_PASS"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisDB:        v.GetInt("REDIS_DB"),
		IdempotencyTTL: time.Duration(v.GetInt("IDEMPOTENCY_TTL_SECONDS")) * time.Second,
	}
}

func (c Config) Validate() error {
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if c.MySQLDB == "" {
		return fmt.Errorf("MYSQL_DB must not be empty")
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR must not be empty")
	}
	if c.IdempotencyTTL <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	return nil
}

func (c Config) MySQLDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
		c.MySQLUser, c.MySQLPass, c.MySQLHost, c.MySQLPort, c.MySQLDB,
	)
}
