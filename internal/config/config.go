package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port     string
	AppEnv   string
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Payment  PaymentConfig
	Remote   RemoteConfig
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the gorm/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig holds the session store connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds the event bus settings.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// PaymentConfig holds the dwell times of the staged payment run. Tests and
// demos can zero them.
type PaymentConfig struct {
	ValidatingDwell time.Duration
	ProcessingDwell time.Duration
	ConfirmingDwell time.Duration
	SettleDwell     time.Duration
}

// RemoteConfig holds the stub remote service settings.
type RemoteConfig struct {
	SubmissionDelay time.Duration
}

// Load reads configuration from BOOKING_-prefixed environment variables,
// falling back to development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service_port", ":8080")
	v.SetDefault("app_env", "development")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "booking")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("kafka_group_prefix", "verick-air.")

	v.SetDefault("payment_validating_dwell", "1.5s")
	v.SetDefault("payment_processing_dwell", "2s")
	v.SetDefault("payment_confirming_dwell", "2.5s")
	v.SetDefault("payment_settle_dwell", "1s")

	v.SetDefault("remote_submission_delay", "1.5s")

	port := v.GetString("service_port")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:   port,
		AppEnv: v.GetString("app_env"),
		Database: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Kafka: KafkaConfig{
			Brokers:     strings.Split(v.GetString("kafka_brokers"), ","),
			GroupPrefix: v.GetString("kafka_group_prefix"),
		},
		Payment: PaymentConfig{
			ValidatingDwell: v.GetDuration("payment_validating_dwell"),
			ProcessingDwell: v.GetDuration("payment_processing_dwell"),
			ConfirmingDwell: v.GetDuration("payment_confirming_dwell"),
			SettleDwell:     v.GetDuration("payment_settle_dwell"),
		},
		Remote: RemoteConfig{
			SubmissionDelay: v.GetDuration("remote_submission_delay"),
		},
	}, nil
}
