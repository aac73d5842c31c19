package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Surya-k-bot/food-management-system/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// App holds everything read from the environment. It is loaded once at
// startup and passed explicitly into handlers and services.
type App struct {
	HTTPPort string

	// Either a full DSN, or the discrete fields below. When neither is
	// set the server falls back to an embedded sqlite file.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SQLitePath  string

	JWTSecret string

	LowStockThreshold int
	NotifyEmailTo     []string
	EmailFrom         string
	WebhookURL        string

	MediaRoot     string
	PublicBaseURL string

	S3Bucket  string
	S3Region  string
	AWSRegion string
}

var DB *gorm.DB

func Load() *App {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &App{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "cfms"),
		SQLitePath:        getEnv("SQLITE_PATH", "cfms.db"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 5),
		NotifyEmailTo:     splitList(os.Getenv("NOTIFY_EMAIL_TO")),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@cfms.local"),
		WebhookURL:        strings.TrimSpace(os.Getenv("WHATSAPP_WEBHOOK_URL")),
		MediaRoot:         getEnv("MEDIA_ROOT", "./media"),
		PublicBaseURL:     strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          os.Getenv("S3_REGION"),
		AWSRegion:         os.Getenv("AWS_REGION"),
	}

	if cfg.S3Region == "" {
		cfg.S3Region = cfg.AWSRegion
	}
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET not set, using an insecure development default")
		cfg.JWTSecret = "cfms-dev-secret-do-not-use-in-production"
	}

	return cfg
}

func InitDB(cfg *App) {
	var (
		db  *gorm.DB
		err error
	)

	switch {
	case cfg.DatabaseURL != "":
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	case cfg.DBHost != "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		log.Printf("No database configured, using embedded sqlite at %s", cfg.SQLitePath)
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Feedback{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
