package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	PresenceDB DatabaseConfig
	StaffDB    DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	LDAP       LDAPConfig
	HR         HRConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// LDAPConfig points at the Active Directory the PIs authenticate against.
type LDAPConfig struct {
	Server string
	Port   int
	Domain string
}

// HRConfig carries the single HR reporting account. The password is stored
// as a bcrypt hash, never in the clear.
type HRConfig struct {
	Username     string
	PasswordHash string
}

func Load() (*Config, error) {
	// A missing .env is fine in production; env vars may come from the host
	_ = godotenv.Load()

	config := &Config{}

	presenceDB, err := loadDatabase("PRESENCE_DB", "presence")
	if err != nil {
		return nil, err
	}
	config.PresenceDB = presenceDB

	staffDB, err := loadDatabase("STAFF_DB", "rndautomation")
	if err != nil {
		return nil, err
	}
	config.StaffDB = staffDB

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Identity provider configuration
	ldapPort, err := strconv.Atoi(getEnv("AD_PORT", "636"))
	if err != nil {
		return nil, fmt.Errorf("invalid AD_PORT: %w", err)
	}
	config.LDAP = LDAPConfig{
		Server: getEnv("AD_SERVER", ""),
		Port:   ldapPort,
		Domain: getEnv("AD_DOMAIN", ""),
	}

	config.HR = HRConfig{
		Username:     getEnv("HR_USERNAME", "HRUser"),
		PasswordHash: getEnv("HR_PASSWORD_HASH", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadDatabase(prefix, defaultName string) (DatabaseConfig, error) {
	port, err := strconv.Atoi(getEnv(prefix+"_PORT", "5432"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid %s_PORT: %w", prefix, err)
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"_HOST", "localhost"),
		Port:     port,
		User:     getEnv(prefix+"_USER", "postgres"),
		Password: getEnv(prefix+"_PASSWORD", ""),
		Name:     getEnv(prefix+"_NAME", defaultName),
		SSLMode:  getEnv(prefix+"_SSL_MODE", "disable"),
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PresenceDB.Password == "" {
		return fmt.Errorf("PRESENCE_DB_PASSWORD is required")
	}
	if c.StaffDB.Password == "" {
		return fmt.Errorf("STAFF_DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.LDAP.Server == "" {
		return fmt.Errorf("AD_SERVER is required")
	}
	if c.LDAP.Domain == "" {
		return fmt.Errorf("AD_DOMAIN is required")
	}
	if c.HR.PasswordHash == "" {
		return fmt.Errorf("HR_PASSWORD_HASH is required")
	}
	return nil
}

// URL returns the PostgreSQL connection string for one database.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
