package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Storage StorageConfig
	Auth    AuthConfig
	App     AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type DBConfig struct {
	DSN string
}

type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	// Folder is the key prefix for uploaded assets.
	Folder string
	// PublicBaseURL is prepended to object keys to form the image_link
	// stored on entities.
	PublicBaseURL string
}

type AuthConfig struct {
	// JWTSecret is the HS256 secret shared with the identity provider
	// that issues admin tokens.
	JWTSecret string
}

type AppConfig struct {
	LogLevel      string
	MaxUploadSize int64
	AllowedTypes  []string
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_DSN", "host=localhost user=postgres password=postgres dbname=admin port=5432 sslmode=disable")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_ACCESS_KEY_ID", "")
	viper.SetDefault("STORAGE_SECRET_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_BUCKET_NAME", "uploads")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_FOLDER", "uploads")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "")
	viper.SetDefault("AUTH_JWT_SECRET", "")
	viper.SetDefault("APP_LOG_LEVEL", "info")
	viper.SetDefault("APP_MAX_UPLOAD_SIZE", 5*1024*1024) // 5 MiB
	viper.SetDefault("APP_ALLOWED_TYPES", []string{"image/jpeg", "image/jpg", "image/png"})

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		DB: DBConfig{
			DSN: viper.GetString("DB_DSN"),
		},
		Storage: StorageConfig{
			Endpoint:        viper.GetString("STORAGE_ENDPOINT"),
			AccessKeyID:     viper.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      viper.GetString("STORAGE_BUCKET_NAME"),
			Region:          viper.GetString("STORAGE_REGION"),
			Folder:          viper.GetString("STORAGE_FOLDER"),
			PublicBaseURL:   viper.GetString("STORAGE_PUBLIC_BASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("AUTH_JWT_SECRET"),
		},
		App: AppConfig{
			LogLevel:      viper.GetString("APP_LOG_LEVEL"),
			MaxUploadSize: viper.GetInt64("APP_MAX_UPLOAD_SIZE"),
			AllowedTypes:  viper.GetStringSlice("APP_ALLOWED_TYPES"),
		},
	}

	return cfg, nil
}
