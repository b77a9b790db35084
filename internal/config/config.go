package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	TodosTable      string
	TodosUserIndex  string
	StreamPollEvery time.Duration

	SearchEndpoint string
	SearchIndex    string
	SearchUsername string
	SearchPassword string

	S3BucketName    string
	UploadURLExpiry time.Duration

	JWTPublicKeyPath  string
	JWTPrivateKeyPath string // optional; only needed when this process mints tokens

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		TodosTable:      getEnv("DYNAMO_TABLE_TODOS", "todos"),
		TodosUserIndex:  getEnv("DYNAMO_TODOS_USER_INDEX", "userId-index"),
		StreamPollEvery: getEnvDuration("STREAM_POLL_INTERVAL", 3*time.Second),

		SearchEndpoint: getEnv("SEARCH_ENDPOINT", "http://localhost:9200"),
		SearchIndex:    getEnv("SEARCH_INDEX", "todos"),
		SearchUsername: getEnv("SEARCH_USERNAME", ""),
		SearchPassword: getEnv("SEARCH_PASSWORD", ""),

		S3BucketName:    getEnv("S3_BUCKET_NAME", "todo-attachments"),
		UploadURLExpiry: getEnvDuration("UPLOAD_URL_EXPIRY", 5*time.Minute),

		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}
