package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Fulfillment FulfillmentConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	InternalAPIKey string
}

type FulfillmentConfig struct {
	CollectionOtpTTL time.Duration
	DeliveryOtpTTL   time.Duration
	MaxRetries       int
	RetryBackoff     time.Duration
	SweepInterval    time.Duration
	SweepBatchSize   int
	HubCacheTTL      time.Duration
	RestockPriority  constant.RestockPriority
}

var defaults = map[string]interface{}{
	"APP_ENV":   "development",
	"LOG_LEVEL": "",

	"SERVER_PORT":          "8080",
	"SERVER_READ_TIMEOUT":  "10s",
	"SERVER_WRITE_TIMEOUT": "10s",
	"SERVER_IDLE_TIMEOUT":  "60s",

	"DB_HOST":              "localhost",
	"DB_PORT":              3306,
	"DB_USER":              "root",
	"DB_PASSWORD":          "",
	"DB_NAME":              "hub_fulfillment",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "5m",

	"REDIS_HOST":     "localhost",
	"REDIS_PORT":     6379,
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"RABBITMQ_HOST":     "localhost",
	"RABBITMQ_PORT":     5672,
	"RABBITMQ_USER":     "guest",
	"RABBITMQ_PASSWORD": "guest",

	"JWT_SECRET":       "change-me",
	"JWT_EXPIRATION":   "24h",
	"SESSION_EXP_TIME": "24h",
	"INTERNAL_API_KEY": "change-me-internal",

	"FULFILLMENT_COLLECTION_OTP_TTL": "24h",
	"FULFILLMENT_DELIVERY_OTP_TTL":   "24h",
	"FULFILLMENT_MAX_RETRIES":        3,
	"FULFILLMENT_RETRY_BACKOFF":      "50ms",
	"FULFILLMENT_SWEEP_INTERVAL":     "1m",
	"FULFILLMENT_SWEEP_BATCH_SIZE":   100,
	"FULFILLMENT_HUB_CACHE_TTL":      "10m",
	"FULFILLMENT_RESTOCK_PRIORITY":   string(constant.RestockPriorityHigh),
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	return &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     v.GetString("RABBITMQ_HOST"),
			Port:     v.GetInt("RABBITMQ_PORT"),
			User:     v.GetString("RABBITMQ_USER"),
			Password: v.GetString("RABBITMQ_PASSWORD"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("JWT_SECRET"),
			JWTExpiration:  v.GetDuration("JWT_EXPIRATION"),
			SessionExpTime: v.GetDuration("SESSION_EXP_TIME"),
			InternalAPIKey: v.GetString("INTERNAL_API_KEY"),
		},
		Fulfillment: FulfillmentConfig{
			CollectionOtpTTL: v.GetDuration("FULFILLMENT_COLLECTION_OTP_TTL"),
			DeliveryOtpTTL:   v.GetDuration("FULFILLMENT_DELIVERY_OTP_TTL"),
			MaxRetries:       v.GetInt("FULFILLMENT_MAX_RETRIES"),
			RetryBackoff:     v.GetDuration("FULFILLMENT_RETRY_BACKOFF"),
			SweepInterval:    v.GetDuration("FULFILLMENT_SWEEP_INTERVAL"),
			SweepBatchSize:   v.GetInt("FULFILLMENT_SWEEP_BATCH_SIZE"),
			HubCacheTTL:      v.GetDuration("FULFILLMENT_HUB_CACHE_TTL"),
			RestockPriority:  constant.RestockPriority(strings.ToUpper(v.GetString("FULFILLMENT_RESTOCK_PRIORITY"))),
		},
	}
}

// GetDSN builds the go-sql-driver/mysql DSN. parseTime is required for DATETIME scanning;
// clientFoundRows makes RowsAffected count matched rows, so idempotent updates are not "not found".
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&multiStatements=false&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
