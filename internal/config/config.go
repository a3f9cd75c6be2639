package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Services ServicesConfig
	Breaker  BreakerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
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

type KafkaConfig struct {
	Brokers          []string
	PaymentRequests  string
	PaymentResponses string
	ResponseGroupID  string
}

type ServicesConfig struct {
	ProductsURL string
	UsersURL    string
	OrdersURL   string
	HTTPTimeout time.Duration
}

// BreakerConfig holds the circuit breaker tuning shared by both downstream
// gateways. Mode selects the gateway variant: "circuit_breaker" or "none".
type BreakerConfig struct {
	Mode              string
	FailureThreshold  int
	RecoveryTimeout   time.Duration
	HalfOpenSuccesses int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8003)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "ordersvc")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "orders")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_PAYMENT_REQUESTS_TOPIC", "payment_requests")
	viper.SetDefault("KAFKA_PAYMENT_RESPONSES_TOPIC", "payment_responses")
	viper.SetDefault("KAFKA_PAYMENT_RESPONSES_GROUP", "ordersvc-payment-responses")
	viper.SetDefault("SERVICE_PRODUCTS_URL", "http://localhost:8002")
	viper.SetDefault("SERVICE_USERS_URL", "http://localhost:8000")
	viper.SetDefault("SERVICE_ORDERS_URL", "http://localhost:8003")
	viper.SetDefault("SERVICE_HTTP_TIMEOUT", "5s")
	viper.SetDefault("GATEWAY_RESILIENCE", "circuit_breaker")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 3)
	viper.SetDefault("CIRCUIT_BREAKER_TIMEOUT", "15s")
	viper.SetDefault("CIRCUIT_BREAKER_HALF_OPEN", 1)
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	httpTimeout, err := time.ParseDuration(viper.GetString("SERVICE_HTTP_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	recoveryTimeout, err := time.ParseDuration(viper.GetString("CIRCUIT_BREAKER_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Kafka: KafkaConfig{
			Brokers:          viper.GetStringSlice("KAFKA_BROKERS"),
			PaymentRequests:  viper.GetString("KAFKA_PAYMENT_REQUESTS_TOPIC"),
			PaymentResponses: viper.GetString("KAFKA_PAYMENT_RESPONSES_TOPIC"),
			ResponseGroupID:  viper.GetString("KAFKA_PAYMENT_RESPONSES_GROUP"),
		},
		Services: ServicesConfig{
			ProductsURL: viper.GetString("SERVICE_PRODUCTS_URL"),
			UsersURL:    viper.GetString("SERVICE_USERS_URL"),
			OrdersURL:   viper.GetString("SERVICE_ORDERS_URL"),
			HTTPTimeout: httpTimeout,
		},
		Breaker: BreakerConfig{
			Mode:              viper.GetString("GATEWAY_RESILIENCE"),
			FailureThreshold:  viper.GetInt("CIRCUIT_BREAKER_THRESHOLD"),
			RecoveryTimeout:   recoveryTimeout,
			HalfOpenSuccesses: viper.GetInt("CIRCUIT_BREAKER_HALF_OPEN"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
