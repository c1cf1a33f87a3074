package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Locale      string `mapstructure:"LOCALE"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	AutoMigrate      bool   `mapstructure:"DB_AUTO_MIGRATE"`

	// University registry (secondary database)
	RegistryDriver      string `mapstructure:"REGISTRY_DRIVER"`
	RegistryDSN         string `mapstructure:"REGISTRY_DSN"`
	RegistryTable       string `mapstructure:"REGISTRY_TABLE"`
	RegistrySyncOnStart bool   `mapstructure:"REGISTRY_SYNC_ON_START"`

	// Blob storage for voice samples and candidate images
	BlobDriver      string `mapstructure:"BLOB_DRIVER"`
	BlobFSRoot      string `mapstructure:"BLOB_FS_ROOT"`
	BlobS3Bucket    string `mapstructure:"BLOB_S3_BUCKET"`
	BlobS3Region    string `mapstructure:"BLOB_S3_REGION"`
	BlobS3Endpoint  string `mapstructure:"BLOB_S3_ENDPOINT"`
	BlobS3PathStyle bool   `mapstructure:"BLOB_S3_PATH_STYLE"`
	BlobS3AccessKey string `mapstructure:"BLOB_S3_ACCESS_KEY_ID"`
	BlobS3SecretKey string `mapstructure:"BLOB_S3_SECRET_ACCESS_KEY"`

	// Voice verification
	VoiceVerifierURL     string        `mapstructure:"VOICE_VERIFIER_URL"`
	VoiceVerifierTimeout time.Duration `mapstructure:"VOICE_VERIFIER_TIMEOUT"`
	VoiceMaxAttempts     int           `mapstructure:"VOICE_MAX_ATTEMPTS"`
	VoiceAttemptWindow   time.Duration `mapstructure:"VOICE_ATTEMPT_WINDOW"`
	VoiceMaxUploadBytes  int64         `mapstructure:"VOICE_MAX_UPLOAD_BYTES"`
	VoicePassphrase      string        `mapstructure:"VOICE_PASSPHRASE"`
	VoiceRecordingSecs   int           `mapstructure:"VOICE_RECORDING_SECONDS"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPUserAttribute      string `mapstructure:"LDAP_USER_ATTRIBUTE"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

var configFile string

// SetConfigFile makes Load read path instead of searching for config.yaml
func SetConfigFile(path string) {
	configFile = path
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOCALE", "en")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "voteverse")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_AUTO_MIGRATE", true)

	// Registry defaults
	viper.SetDefault("REGISTRY_DRIVER", "mysql")
	viper.SetDefault("REGISTRY_DSN", "")
	viper.SetDefault("REGISTRY_TABLE", "voters")
	viper.SetDefault("REGISTRY_SYNC_ON_START", false)

	// Blob defaults
	viper.SetDefault("BLOB_DRIVER", "fs")
	viper.SetDefault("BLOB_FS_ROOT", "./blobdata")
	viper.SetDefault("BLOB_S3_BUCKET", "")
	viper.SetDefault("BLOB_S3_REGION", "us-east-1")
	viper.SetDefault("BLOB_S3_ENDPOINT", "")
	viper.SetDefault("BLOB_S3_PATH_STYLE", false)
	viper.SetDefault("BLOB_S3_ACCESS_KEY_ID", "")
	viper.SetDefault("BLOB_S3_SECRET_ACCESS_KEY", "")

	// Voice defaults
	viper.SetDefault("VOICE_VERIFIER_URL", "")
	viper.SetDefault("VOICE_VERIFIER_TIMEOUT", 30*time.Second)
	viper.SetDefault("VOICE_MAX_ATTEMPTS", 3)
	viper.SetDefault("VOICE_ATTEMPT_WINDOW", 24*time.Hour)
	viper.SetDefault("VOICE_MAX_UPLOAD_BYTES", int64(10*1024*1024))
	viper.SetDefault("VOICE_PASSPHRASE", "i love my university")
	viper.SetDefault("VOICE_RECORDING_SECONDS", 5)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL", time.Hour)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// LDAP defaults
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_USER_ATTRIBUTE", "uid")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.RegistryDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported REGISTRY_DRIVER %q", config.RegistryDriver)
	}

	switch config.BlobDriver {
	case "fs", "s3", "memory":
	default:
		return fmt.Errorf("unsupported BLOB_DRIVER %q", config.BlobDriver)
	}
	if config.BlobDriver == "s3" && config.BlobS3Bucket == "" {
		return fmt.Errorf("BLOB_S3_BUCKET is required for the s3 blob driver")
	}

	if config.VoiceMaxAttempts < 1 {
		return fmt.Errorf("VOICE_MAX_ATTEMPTS must be at least 1")
	}
	if config.VoiceMaxUploadBytes <= 0 {
		return fmt.Errorf("VOICE_MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RegistryEnabled reports whether a registry database is configured
func (c *Config) RegistryEnabled() bool {
	return c.RegistryDSN != ""
}

// LDAPEnabled reports whether directory login is configured
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != "" && c.LDAPBaseDN != ""
}
