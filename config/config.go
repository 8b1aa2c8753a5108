package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	TokenSecret    string
	TokenIssuer    string
	TokenAudience  string
	TokenExpiryMin int

	LockoutMaxFailedAttempts int
	LockoutWindowMin         int

	TotpIssuer       string
	TotpSecretLength int
	TotpStepSeconds  int
	TotpDigits       int

	BackupCodeCount      int
	ResetTokenValidHours int
	BlacklistSweepMin    int
}

func Load() *Config {
	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", "8080"),
		DBURL: mustGetEnv("DB_URL"),

		TokenSecret:    mustGetEnv("TOKEN_SECRET"),
		TokenIssuer:    getEnv("TOKEN_ISSUER", "comavi-auth"),
		TokenAudience:  getEnv("TOKEN_AUDIENCE", "comavi"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY_MINUTES", 60),

		LockoutMaxFailedAttempts: getEnvAsInt("LOCKOUT_MAX_FAILED_ATTEMPTS", 5),
		LockoutWindowMin:         getEnvAsInt("LOCKOUT_WINDOW_MINUTES", 15),

		TotpIssuer:       getEnv("TOTP_ISSUER", "COMAVI"),
		TotpSecretLength: getEnvAsInt("TOTP_SECRET_LENGTH", 20),
		TotpStepSeconds:  getEnvAsInt("TOTP_STEP_SECONDS", 30),
		TotpDigits:       getEnvAsInt("TOTP_DIGITS", 6),

		BackupCodeCount:      getEnvAsInt("BACKUP_CODE_COUNT", 8),
		ResetTokenValidHours: getEnvAsInt("RESET_TOKEN_VALID_HOURS", 2),
		BlacklistSweepMin:    getEnvAsInt("BLACKLIST_SWEEP_MINUTES", 5),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
