package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":                "mongodb://localhost:27017",
			"slowQueryThreshold": "200ms",
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
			"cors": map[string]any{
				"allowOrigins": []any{"*"},
			},
		},
		"children": map[string]any{
			"defaultAvailableLimit": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_SLOWQUERYTHRESHOLD", want: "mongo.slowQueryThreshold"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_CORS_ALLOWORIGINS", want: "http.cors.allowOrigins"},
		{envKey: "CHILDREN_DEFAULTAVAILABLELIMIT", want: "children.defaultAvailableLimit"},
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

const testConfigYAML = `
env:
  env: test
  serviceName: charity
  log:
    level: debug
http:
  port: 8000
mongo:
  uri: mongodb://localhost:27017
  database: charity
  slowQueryThreshold: 500ms
qrcode:
  size: 256
  errorCorrectionLevel: medium
  baseUrl: http://localhost:3000
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("MONGO_DATABASE", "charity_test")
	t.Setenv("HTTP_CORS_ALLOWORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, "charity", cfg.Env.ServiceName)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "charity_test", cfg.Mongo.Database)
	assert.Equal(t, 500*time.Millisecond, cfg.Mongo.SlowQueryThreshold)
	assert.Equal(t, defaultMongoConnectTimeout, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Children)
	assert.Equal(t, defaultAvailableChildLimit, cfg.Children.DefaultAvailableLimit)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, "http://localhost:3000", cfg.QRCode.BaseURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestLoadWithEnv_ShippedConfigUsesSeedDatabase(t *testing.T) {
	if os.Getenv("MONGO_DATABASE") != "" {
		t.Skip("MONGO_DATABASE overrides the shipped value")
	}

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "charity_db", cfg.Mongo.Database)
}
