package config

import (
	"fmt"
	"time"
)

const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN builds a go-sql-driver/mysql data source name.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

type RedisConfig struct {
	Addr            string
	PoolSize        int
	ProductCacheTTL time.Duration
	WarmupIDs       []uint64
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type Config struct {
	Port            string
	APIBasePath     string
	LogLevel        string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	StoreDriver     string

	MySQL    MySQLConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

var defaultOrigins = []string{"http://localhost:5173", "http://localhost:5174"}

func Load() (Config, error) {
	cfg := Config{
		Port:           GetString("PORT", "8080"),
		APIBasePath:    GetString("API_BASE_PATH", "/api"),
		LogLevel:       GetString("LOG_LEVEL", "info"),
		AllowedOrigins: GetStrings("CORS_ALLOWED_ORIGINS", defaultOrigins),
		StoreDriver:    GetString("STORE_DRIVER", StoreMySQL),
		MySQL: MySQLConfig{
			User:     GetString("MYSQL_USER", "root"),
			Password: GetString("MYSQL_PASSWORD", ""),
			Host:     GetString("MYSQL_HOST", "localhost"),
			Port:     GetString("MYSQL_PORT", "3306"),
			Database: GetString("MYSQL_DATABASE", "storefront"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      GetString("RABBITMQ_URL", ""),
			Exchange: GetString("RABBITMQ_EXCHANGE", "storefront.exchange"),
		},
	}

	if cfg.StoreDriver != StoreMySQL && cfg.StoreDriver != StoreMemory {
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if host := GetString("REDIS_HOST", ""); host != "" {
		cfg.Redis.Addr = GetString("REDIS_ADDR", host+":6379")
	} else {
		cfg.Redis.Addr = GetString("REDIS_ADDR", "")
	}

	var err error
	if cfg.ShutdownTimeout, err = GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.MySQL.MaxOpenConns, err = GetInt("MYSQL_MAX_OPEN_CONNS", 100); err != nil {
		return Config{}, err
	}
	if cfg.MySQL.MaxIdleConns, err = GetInt("MYSQL_MAX_IDLE_CONNS", 20); err != nil {
		return Config{}, err
	}
	if cfg.MySQL.ConnMaxLifetime, err = GetDuration("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.MySQL.ConnMaxIdleTime, err = GetDuration("MYSQL_CONN_MAX_IDLE_TIME", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Redis.PoolSize, err = GetInt("REDIS_POOL_SIZE", 50); err != nil {
		return Config{}, err
	}
	if cfg.Redis.ProductCacheTTL, err = GetDuration("PRODUCT_CACHE_TTL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Redis.WarmupIDs, err = GetUint64s("CACHE_WARMUP_PRODUCT_IDS"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
