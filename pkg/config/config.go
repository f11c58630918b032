package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

type Config struct {
	ServerPort  string
	Environment string
	SiteBaseURL string

	DBDriver        string
	MongoURI        string
	MongoDatabase   string
	FirebaseProject string

	MailProvider string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
	SESFrom      string
	NotifyAsync  bool

	MediaProvider      string
	StorageBucket      string
	S3Bucket           string
	AWSRegion          string
	MediaFolder        string
	MediaPublicBaseURL string
	UploadTmpDir       string
	MaxUploadBytes     int64

	CORSOrigins        []string
	RateLimitPerMinute int
	RateLimitBurst     int

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", getEnv("PORT", "8080")),
		Environment: getEnv("ENVIRONMENT", "development"),
		SiteBaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:3000"), "/"),

		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		MongoURI:        getEnv("MONGODB_URI", ""),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "gamecatalog"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),

		MailProvider: strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SESFrom:      getEnv("SES_FROM", ""),
		NotifyAsync:  getEnvAsBool("NOTIFY_ASYNC", true),

		MediaProvider:      strings.ToLower(getEnv("MEDIA_PROVIDER", "gcs")),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		AWSRegion:          getEnv("AWS_REGION", ""),
		MediaFolder:        getEnv("MEDIA_FOLDER", "games"),
		MediaPublicBaseURL: strings.TrimRight(getEnv("MEDIA_PUBLIC_BASE_URL", ""), "/"),
		UploadTmpDir:       getEnv("UPLOAD_TMP_DIR", os.TempDir()),
		MaxUploadBytes:     int64(getEnvAsInt("MAX_UPLOAD_BYTES", 5*1024*1024)),

		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "*")),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),

		LogFile:       getEnv("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when DB_DRIVER=%s", DriverMongo)
		}
	case DriverFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when DB_DRIVER=%s", DriverFirestore)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
