package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl":      "",
			"maxUploadBytes": 0,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_MAXUPLOADBYTES", want: "storage.maxUploadBytes"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 6, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, "/uploads", cfg.Storage.PublicBasePath)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_NormalizesPublicBasePath(t *testing.T) {
	cfg := &Config{Storage: &StorageConfig{PublicBasePath: "static/images/"}}

	applyDefaults(cfg)

	assert.Equal(t, "/static/images", cfg.Storage.PublicBasePath)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	t.Setenv("STORAGE_MAXUPLOADBYTES", "1024")
	t.Setenv("AUTH_TOKENTTL", "1h")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	assert.Equal(t, "catalog", cfg.Env.ServiceName)
	assert.Equal(t, int64(1024), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "/uploads", cfg.Storage.PublicBasePath)
}
