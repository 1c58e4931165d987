package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
)

// JsonConfig is the DTO used for reading JSON configuration files. Durations
// are given in minutes so the file stays plain. After unmarshalling, set
// fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr                   string `json:"endpoint_addr"`
	DatabaseDSN                    string `json:"database_dsn"`
	EncryptionKey                  string `json:"encryption_key"`
	SessionSecret                  string `json:"session_secret"`
	SessionValidityDurationMinutes int    `json:"session_validity_duration_minutes"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Absent flags mean no file is
// loaded; an unreadable or invalid file panics, since the operator asked for
// a file the server cannot honor.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.EncryptionKey != "" {
		config.EncryptionKey = c.EncryptionKey
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.SessionValidityDurationMinutes > 0 {
		config.SessionValidityDuration = time.Duration(c.SessionValidityDurationMinutes) * time.Minute
	}
}
