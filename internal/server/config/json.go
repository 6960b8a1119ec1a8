package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/contactdesk/internal/flagx"
	"github.com/dmitrijs2005/contactdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields leave
// the corresponding setting untouched.
type JsonConfig struct {
	ListenAddr      string         `json:"listen_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	MaxOpenConns    int            `json:"max_open_conns"`
	MaxIdleConns    *int           `json:"max_idle_conns"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time"`
	TimeZone        string         `json:"time_zone"`
	LogLevel        string         `json:"log_level"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file given with -c or -config.
// Without either flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.MaxOpenConns != 0 {
		config.MaxOpenConns = c.MaxOpenConns
	}
	if c.MaxIdleConns != nil {
		config.MaxIdleConns = *c.MaxIdleConns
	}
	if c.ConnMaxLifetime.Duration != 0 {
		config.ConnMaxLifetime = c.ConnMaxLifetime.Duration
	}
	if c.ConnMaxIdleTime.Duration != 0 {
		config.ConnMaxIdleTime = c.ConnMaxIdleTime.Duration
	}
	if c.TimeZone != "" {
		config.TimeZone = c.TimeZone
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}
