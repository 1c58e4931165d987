package config

import "os"

// parseEnv overlays configuration from environment variables. ENCRYPTION_KEY
// is the one variable a deployment must set; the rest mirror the flags for
// container-friendly setups.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("ENCRYPTION_KEY"); ok {
		config.EncryptionKey = v
	}
	if v, ok := os.LookupEnv("SESSION_SECRET"); ok {
		config.SessionSecret = v
	}
}
