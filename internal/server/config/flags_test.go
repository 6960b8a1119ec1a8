package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "db", "-l", "debug", "-z", "UTC",
				"-m", "4", "-i", "2", "-t", "5s",
			},
			expected: &Config{
				ListenAddr:      "127.0.0.1:9090",
				DatabaseDSN:     "db",
				LogLevel:        "debug",
				TimeZone:        "UTC",
				MaxOpenConns:    4,
				MaxIdleConns:    2,
				ShutdownTimeout: 5 * time.Second,
			},
		},
		{
			name:     "foreign flags and subcommands ignored",
			args:     []string{"passwd", "-u", "ana", "-d", "db"},
			expected: &Config{DatabaseDSN: "db"},
		},
		{
			name:    "bad duration",
			args:    []string{"-t", "later"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
