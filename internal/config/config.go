package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	JWTSecret    string
	MongoURI     string
	DBName       string
	SkipAuth     bool
	Environment  string
	AppId        string
	ProductName  string // Used in report headers and export filenames
	DebugReports bool   // Attach consistency cross-check to report JSON

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	WhatsAppAPIURL string
	WhatsAppToken  string

	LeadSyncDSN   string // External Postgres source for lead imports
	LeadSyncQuery string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "edu-crm"),
		SkipAuth:     getEnv("SKIP_AUTH", "false") == "true",
		Environment:  getEnv("ENVIRONMENT", "development"),
		AppId:        getEnv("APP_ID", "edu-crm"),
		ProductName:  getEnv("PRODUCT_NAME", "EduLead"),
		DebugReports: getEnv("DEBUG_REPORTS", "false") == "true",

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@edulead.local"),

		WhatsAppAPIURL: getEnv("WHATSAPP_API_URL", ""),
		WhatsAppToken:  getEnv("WHATSAPP_TOKEN", ""),

		LeadSyncDSN:   getEnv("LEADSYNC_DSN", ""),
		LeadSyncQuery: getEnv("LEADSYNC_QUERY", "SELECT name, phone, email, source FROM leads"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
