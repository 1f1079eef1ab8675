package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoad(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/portfolio")
	t.Setenv("PUBLIC_API_KEY", "pk")
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("TOKEN_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.EqualValues(t, 10<<20, cfg.UploadMaxBytes)
}

func TestLoad_MissingRequired(t *testing.T) {
	for _, missing := range []string{"DB_URL", "PUBLIC_API_KEY", "JWT_SECRET"} {
		t.Run(missing, func(t *testing.T) {
			vals := map[string]string{"DB_URL": "postgres://x", "PUBLIC_API_KEY": "pk", "JWT_SECRET": secret}
			for k, v := range vals {
				if k == missing {
					v = ""
				}
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, missing)
		})
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("DB_URL", "postgres://x")
	t.Setenv("PUBLIC_API_KEY", "pk")
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DBURL:          "postgres://x",
			PublicAPIKey:   "pk",
			JWTSecret:      secret,
			TokenTTL:       time.Hour,
			UploadMaxBytes: 1 << 20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"blank db url", func(c *Config) { c.DBURL = "  " }, "DB_URL"},
		{"empty api key", func(c *Config) { c.PublicAPIKey = "" }, "PUBLIC_API_KEY"},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"zero upload cap", func(c *Config) { c.UploadMaxBytes = 0 }, "UPLOAD_MAX_BYTES"},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }, "TOKEN_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
