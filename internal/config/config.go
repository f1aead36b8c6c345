package config

import (
	"os"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Token settings
	JWTSecret             string
	RefreshJWTSecret      string
	AccessTokenTTLMinutes string // minutes
	RefreshTokenTTLDays   string // days
	// Initial admin account
	AdminEmail       string
	AdminPassword    string
	AdminFirstname   string
	AdminLastname    string
	AdminReferenceID string
	// Attendance rules
	Timezone       string // IANA zone used for window math
	LoginQuota     string // max Logins per business day
	SiteVisitQuota string // max Site Visit events per business day
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "acculog_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret:             getenv("JWT_SECRET", "supersecret_change_me"),
		RefreshJWTSecret:      getenv("REFRESH_JWT_SECRET", getenv("JWT_SECRET", "supersecret_change_me")),
		AccessTokenTTLMinutes: getenv("ACCESS_TOKEN_TTL_MINUTES", "60"),
		RefreshTokenTTLDays:   getenv("REFRESH_TOKEN_TTL_DAYS", "30"),

		AdminEmail:       getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:    getenv("ADMIN_PASSWORD", "admin123"),
		AdminFirstname:   getenv("ADMIN_FIRSTNAME", "System"),
		AdminLastname:    getenv("ADMIN_LASTNAME", "Administrator"),
		AdminReferenceID: getenv("ADMIN_REFERENCE_ID", "ADMIN-0001"),

		Timezone:       getenv("TIMEZONE", "Asia/Manila"),
		LoginQuota:     getenv("LOGIN_QUOTA", "10"),
		SiteVisitQuota: getenv("SITE_VISIT_QUOTA", "10"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
