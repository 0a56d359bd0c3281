package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Identity IdentityConfig
	Metrics  MetricsConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// StorageConfig points at the S3-compatible bucket holding avatars
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type IdentityConfig struct {
	TempPasswordLength int
}

type MetricsConfig struct {
	Enabled bool
}

// AdminConfig seeds the first staff account. Seeding is skipped when Email is empty.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Africa/Algiers")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("STORAGE_BUCKET", "avatars")
	viper.SetDefault("IDENTITY_TEMP_PASSWORD_LENGTH", 12)
	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("ADMIN_NAME", "Administrator")

	// a missing .env is fine when everything comes from the environment
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSLMODE"),
			TimeZone:    viper.GetString("DB_TIMEZONE"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
			AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
			Bucket:    viper.GetString("STORAGE_BUCKET"),
			UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			PublicURL: viper.GetString("STORAGE_PUBLIC_URL"),
		},
		Identity: IdentityConfig{
			TempPasswordLength: viper.GetInt("IDENTITY_TEMP_PASSWORD_LENGTH"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
	}

	return config, nil
}

// ParseLogLevel falls back to info on unknown values.
func ParseLogLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// WatchLogLevel re-applies LOG_LEVEL to log whenever .env changes.
// It does nothing when no config file was read.
func WatchLogLevel(log *logrus.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		level := ParseLogLevel(viper.GetString("LOG_LEVEL"))
		if level != log.GetLevel() {
			log.SetLevel(level)
			log.Infof("Log level changed to %s", level)
		}
	})
	viper.WatchConfig()
}
