package utils

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port        string `yaml:"PORT"`
	FrontendURL string `yaml:"FRONTEND_URL"`
	CORSOrigins string `yaml:"CORS_ORIGINS"`
	LogPath     string `yaml:"LOG_PATH"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    bool   `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Admin bootstrap account
	AdminName     string `yaml:"ADMIN_NAME"`
	AdminEmail    string `yaml:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
}

var config Config

// LoadConfig reads config.yaml, then lets .env and the process environment
// override individual keys.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Warnf("Error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Warnf("Error parsing YAML file: %s", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %s", err)
	}
	applyEnv()
}

func applyEnv() {
	overrides := map[string]*string{
		"PORT":               &config.Port,
		"FRONTEND_URL":       &config.FrontendURL,
		"CORS_ORIGINS":       &config.CORSOrigins,
		"LOG_PATH":           &config.LogPath,
		"DB_USER":            &config.DBUser,
		"DB_NAME":            &config.DBName,
		"DB_PASSWORD":        &config.DBPassword,
		"DB_PORT":            &config.DBPort,
		"DB_HOST":            &config.DBHost,
		"DB_TIMEZONE":        &config.DBTimeZone,
		"JWT_SECRET":         &config.JWTSecret,
		"SMTP_HOST":          &config.SMTPHost,
		"SMTP_PORT":          &config.SMTPPort,
		"SMTP_SENDER_NAME":   &config.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &config.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &config.SMTPAuthPassword,
		"CLIENT_KEY":         &config.ClientKey,
		"SERVER_KEY":         &config.ServerKey,
		"AWS_S3_BUCKET":      &config.AWSS3Bucket,
		"AWS_S3_REGION":      &config.AWSS3Region,
		"AWS_ACCESS_KEY":     &config.AWSAccessKey,
		"AWS_SECRET_KEY":     &config.AWSSecretKey,
		"ADMIN_NAME":         &config.AdminName,
		"ADMIN_EMAIL":        &config.AdminEmail,
		"ADMIN_PASSWORD":     &config.AdminPassword,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}
	if v, ok := os.LookupEnv("IS_PROD"); ok {
		config.IsProd = v == "true"
	}
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		return withDefault(config.Port, "8001")
	case "FRONTEND_URL":
		return withDefault(config.FrontendURL, "http://localhost:5173")
	case "CORS_ORIGINS":
		return withDefault(config.CORSOrigins, "http://localhost:5173,http://localhost:5174")
	case "LOG_PATH":
		return withDefault(config.LogPath, "./logs/app.log")
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return withDefault(config.DBPort, "5432")
	case "DB_HOST":
		return withDefault(config.DBHost, "localhost")
	case "DB_TIMEZONE":
		return withDefault(config.DBTimeZone, "UTC")
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return withDefault(config.SMTPPort, "587")
	case "SMTP_SENDER_NAME":
		return withDefault(config.SMTPSenderName, "FoodHub")
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "CLIENT_KEY":
		return config.ClientKey
	case "SERVER_KEY":
		return config.ServerKey
	case "IsProd":
		return getBoolString(config.IsProd)
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "ADMIN_NAME":
		return withDefault(config.AdminName, "Admin")
	case "ADMIN_EMAIL":
		return config.AdminEmail
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	default:
		return ""
	}
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
