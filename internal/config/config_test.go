package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid sqlite",
			config: Config{Port: "5003", Env: "development", DBDriver: "sqlite", DBPath: "posts.db"},
		},
		{
			name:   "valid postgres",
			config: Config{Port: "5003", Env: "development", DBDriver: "postgres", DBHost: "localhost", DBName: "blog"},
		},
		{
			name:    "missing port",
			config:  Config{DBDriver: "sqlite", DBPath: "posts.db"},
			wantErr: true,
		},
		{
			name:    "sqlite without path",
			config:  Config{Port: "5003", DBDriver: "sqlite"},
			wantErr: true,
		},
		{
			name:    "postgres without host",
			config:  Config{Port: "5003", DBDriver: "postgres", DBName: "blog"},
			wantErr: true,
		},
		{
			name:    "unsupported driver",
			config:  Config{Port: "5003", DBDriver: "mysql"},
			wantErr: true,
		},
		{
			name:    "production postgres with default password",
			config:  Config{Port: "5003", Env: "production", DBDriver: "postgres", DBHost: "db", DBName: "blog", DBPassword: "password"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
