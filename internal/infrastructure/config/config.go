package config

import "os"

// Config gathers every externally supplied setting in one place. It is built
// once at startup and handed to the components that need it; nothing outside
// this package and the persistence table names reads the environment directly.
//
// The storefront historically read the server URL from two different keys;
// SERVER_BASE_URL is the single consolidated source.

type Config struct {
	Port          string
	ServerBaseURL string

	AdminPassword string
	AdminAPIKey   string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	// Fixed storefront price, in currency subunits (400 = INR 4.00).
	OrderAmount   int64
	OrderCurrency string

	ImageBucket string
	MailSender  string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		ServerBaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),

		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		OrderAmount:   400,
		OrderCurrency: getEnv("ORDER_CURRENCY", "INR"),

		ImageBucket: getEnv("IMAGE_BUCKET", "retroart-uploads"),
		MailSender:  getEnv("MAIL_SENDER", "orders@retroart.local"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
