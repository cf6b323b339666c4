package config

import (
	"os"
	"path/filepath"
	"testing"

	confv1 "usecase-sync/internal/conf/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  http:
    addr: ":8080"
backend:
  base_url: "http://localhost:9090"
  timeout_seconds: 3
data:
  redis:
    host: "127.0.0.1"
    port: 6379
  cache:
    driver: "redis"
    ttl_seconds: 120
    key_prefix: "uc"
  events:
    driver: "memory"
registry:
  consul:
    address: "127.0.0.1:8500"
    tags: ["usecase", "v1"]
log:
  level: "debug"
  format: "json"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit(t *testing.T) {
	conf, err := Init(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8080", conf.Server.Http.Addr)
	assert.Equal(t, "http://localhost:9090", conf.Backend.BaseUrl)
	assert.Equal(t, int64(3), conf.Backend.TimeoutSeconds)
	assert.Equal(t, int32(6379), conf.Data.Redis.Port)
	assert.Equal(t, confv1.DriverRedis, conf.Data.Cache.Driver)
	assert.Equal(t, int64(120), conf.Data.Cache.TtlSeconds)
	assert.Equal(t, "uc", conf.Data.Cache.KeyPrefix)
	assert.Equal(t, []string{"usecase", "v1"}, conf.Registry.Consul.Tags)
	assert.Equal(t, "json", conf.Log.Format)
	assert.Nil(t, conf.Trace)

	require.NoError(t, ValidateConfig(conf))
}

func TestInit_EnvOverride(t *testing.T) {
	t.Setenv("USECASE_BACKEND_BASE_URL", "http://backend:9090")

	conf, err := Init(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9090", conf.Backend.BaseUrl)
}

func TestInit_MissingFile(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetConfigPath_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/etc/usecase/config.yaml")
	assert.Equal(t, "/etc/usecase/config.yaml", getConfigPath())
}

func TestValidateConfig(t *testing.T) {
	valid := func() *confv1.Bootstrap {
		return &confv1.Bootstrap{
			Server:  &confv1.Server{Http: &confv1.Server_HTTP{Addr: ":8080"}},
			Backend: &confv1.Backend{BaseUrl: "http://localhost:9090"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*confv1.Bootstrap)
		wantErr bool
	}{
		{name: "minimal", mutate: func(*confv1.Bootstrap) {}},
		{name: "missing server", mutate: func(c *confv1.Bootstrap) { c.Server = nil }, wantErr: true},
		{name: "missing backend url", mutate: func(c *confv1.Bootstrap) { c.Backend.BaseUrl = "" }, wantErr: true},
		{
			name:    "unknown cache driver",
			mutate:  func(c *confv1.Bootstrap) { c.Data = &confv1.Data{Cache: &confv1.Data_Cache{Driver: "etcd"}} },
			wantErr: true,
		},
		{
			name:    "negative ttl",
			mutate:  func(c *confv1.Bootstrap) { c.Data = &confv1.Data{Cache: &confv1.Data_Cache{TtlSeconds: -1}} },
			wantErr: true,
		},
		{
			name:    "postgres cache without database",
			mutate:  func(c *confv1.Bootstrap) { c.Data = &confv1.Data{Cache: &confv1.Data_Cache{Driver: confv1.DriverPostgres}} },
			wantErr: true,
		},
		{
			name: "postgres cache with database",
			mutate: func(c *confv1.Bootstrap) {
				c.Data = &confv1.Data{
					Database: &confv1.Data_Database{Host: "localhost"},
					Cache:    &confv1.Data_Cache{Driver: confv1.DriverPostgres},
				}
			},
		},
		{
			name:    "redis events without redis",
			mutate:  func(c *confv1.Bootstrap) { c.Data = &confv1.Data{Events: &confv1.Data_Events{Driver: confv1.DriverRedis}} },
			wantErr: true,
		},
		{
			name:    "postgres events unsupported",
			mutate:  func(c *confv1.Bootstrap) { c.Data = &confv1.Data{Events: &confv1.Data_Events{Driver: confv1.DriverPostgres}} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := valid()
			tt.mutate(conf)
			err := ValidateConfig(conf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.Error(t, ValidateConfig(nil))
}

func TestValidateBackendConfig(t *testing.T) {
	assert.Error(t, ValidateBackendConfig(nil))
	assert.Error(t, ValidateBackendConfig(&confv1.Bootstrap{}))
	assert.NoError(t, ValidateBackendConfig(&confv1.Bootstrap{
		Server: &confv1.Server{Http: &confv1.Server_HTTP{Addr: ":9090"}},
	}))
	assert.Error(t, ValidateBackendConfig(&confv1.Bootstrap{
		Server:  &confv1.Server{Http: &confv1.Server_HTTP{Addr: ":9090"}},
		Backend: &confv1.Backend{JwtExpireHours: -1},
	}))
}
