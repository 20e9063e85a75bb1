package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the settings of both binaries (api and mail relay).
// Values come from the environment, optionally from a .env / config.env file.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Store    StoreConfig
	AWS      AWSConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Storage  StorageConfig
	MailRel  MailRelayConfig
	Payments PaymentsConfig
	SMTP     SMTPConfig
}

type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Host string
	Port int
	// RelayPort is the listening port of the mail relay (PORT).
	RelayPort int
}

// Addr returns host:port for the api.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RelayAddr returns host:port for the mail relay.
func (c HTTPConfig) RelayAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.RelayPort)
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver      string // dynamodb | memory
	TablePrefix string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

// RedisConfig is optional; without an address locks are process-local.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// StorageConfig is optional; without a bucket generated PDFs are not archived.
type StorageConfig struct {
	Bucket string
	Region string
}

type MailRelayConfig struct {
	URL string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Load reads the configuration. Environment variables take precedence over files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gestao-comercial"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:      getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:      getInt(v, "HTTP_PORT", 8080),
			RelayPort: getInt(v, "PORT", 3001),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(getString(v, "DOCUMENT_STORE", "dynamodb")),
			TablePrefix: getString(v, "TABLE_PREFIX", ""),
		},
		AWS: AWSConfig{
			Region:           getString(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:      getString(v, "AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getString(v, "AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getString(v, "DYNAMODB_ENDPOINT", ""),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "gestao-comercial"),
		},
		Redis: RedisConfig{
			Address:  getString(v, "REDIS_ADDRESS", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Bucket: getString(v, "S3_BUCKET_NAME", ""),
			Region: getString(v, "AWS_S3_REGION", getString(v, "AWS_REGION", "us-east-1")),
		},
		MailRel: MailRelayConfig{
			URL: getString(v, "MAIL_RELAY_URL", "http://localhost:3001"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: getString(v, "MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:                   getBool(v, "PAYMENT_GATEWAY_MOCK", false),
		},
		SMTP: SMTPConfig{
			Host: getString(v, "SMTP_HOST", ""),
			Port: getInt(v, "SMTP_PORT", 587),
			User: getString(v, "SMTP_USER", ""),
			Pass: getString(v, "SMTP_PASS", ""),
			From: getString(v, "SMTP_FROM", ""),
		},
	}

	if cfg.Store.Driver != "dynamodb" && cfg.Store.Driver != "memory" {
		return nil, fmt.Errorf("config: unsupported DOCUMENT_STORE %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "":
		return def
	default:
		return false
	}
}
