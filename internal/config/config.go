package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	R2 R2Config

	ImageHost struct {
		APIKey  string
		BaseURL string
	}

	Stripe struct {
		SecretKey  string
		SuccessURL string
		CancelURL  string
	}

	StoryUploadDir string
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")

	cfg.ImageHost.APIKey = os.Getenv("IMAGE_HOST_API_KEY")
	cfg.ImageHost.BaseURL = os.Getenv("IMAGE_HOST_BASE_URL")

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.SuccessURL = getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/booking/success?session_id={CHECKOUT_SESSION_ID}")
	cfg.Stripe.CancelURL = getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/booking/cancel")

	cfg.StoryUploadDir = getEnv("STORY_UPLOAD_DIR", "uploads/stories")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
