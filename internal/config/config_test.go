package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "@hourly", cfg.Jobs.OverdueSchedule)
	assert.Equal(t, "postgres://postgres:@localhost:5432/estate?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "apartments")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.ConnectionString(), "@db:5432/apartments")
}

func TestValidateAPI(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
		wantErr bool
	}{
		{name: "Missing", wantErr: true},
		{name: "Same", access: "s", refresh: "s", wantErr: true},
		{name: "Valid", access: "a", refresh: "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config.Config
			cfg.Auth.AccessSecret = tt.access
			cfg.Auth.RefreshSecret = tt.refresh

			err := cfg.ValidateAPI()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
