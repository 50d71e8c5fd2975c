package config_test

import (
	"testing"
	"time"

	"partsstore/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EMAIL_USER", "shop@example.com")
	t.Setenv("EMAIL_PASS", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, config.StoreMemory, cfg.StoreDriver)
	assert.True(t, cfg.OrderPersistence)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "shop@example.com", cfg.Mail.User)
	assert.Equal(t, "secret", cfg.Mail.Password)
	assert.Equal(t, "shop@example.com", cfg.Mail.AdminEmail)
	assert.Equal(t, 30*time.Second, cfg.Mail.Timeout)
	assert.True(t, cfg.Mail.FailFast)
	assert.Equal(t, "OMR", cfg.Currency)
	assert.Equal(t, []string{"https://farideducat.github.io"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EMAIL_USER", "shop@example.com")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	t.Setenv("PORT", ":9090")
	t.Setenv("STORE_DRIVER", "SQLITE")
	t.Setenv("ORDER_PERSISTENCE", "false")
	t.Setenv("NOTIFY_FAIL_FAST", "false")
	t.Setenv("MAIL_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, http://localhost:5173/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, config.StoreSQLite, cfg.StoreDriver)
	assert.False(t, cfg.OrderPersistence)
	assert.False(t, cfg.Mail.FailFast)
	assert.Equal(t, 5*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "owner@example.com", cfg.Mail.AdminEmail)
	assert.Equal(t, []string{"https://a.example", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]interface{}
		wantErr string
	}{
		{
			name:    "missing email user",
			values:  map[string]interface{}{},
			wantErr: "EMAIL_USER is required",
		},
		{
			name:    "mongo without uri",
			values:  map[string]interface{}{"EMAIL_USER": "a@b.c", "STORE_DRIVER": "mongo"},
			wantErr: "MONGO_URI is required",
		},
		{
			name:    "unknown store",
			values:  map[string]interface{}{"EMAIL_USER": "a@b.c", "STORE_DRIVER": "redis"},
			wantErr: "invalid STORE_DRIVER",
		},
		{
			name:    "no usable origins",
			values:  map[string]interface{}{"EMAIL_USER": "a@b.c", "ALLOWED_ORIGINS": "https://a.example/path"},
			wantErr: "ALLOWED_ORIGINS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.SetDefault("PORT", "5000")
			v.SetDefault("STORE_DRIVER", config.StoreMemory)
			v.SetDefault("SMTP_HOST", "smtp.example.com")
			v.SetDefault("ALLOWED_ORIGINS", "https://a.example")
			for k, val := range tt.values {
				v.Set(k, val)
			}

			_, err := config.FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	got := config.ParseOrigins(" https://farideducat.github.io , https://farideducat.github.io/partsStore,,http://localhost:3000/ ")
	assert.Equal(t, []string{"https://farideducat.github.io", "http://localhost:3000"}, got)
}
