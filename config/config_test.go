package config

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TAX_RATE", "SESSION_TTL", "POLL_INTERVAL", "STORAGE_DRIVER", "API_BASE_URL", "DEVICE_IDLE_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 0.08, cfg.TaxRate)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, 30*time.Minute, cfg.DeviceIdleTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("POLL_INTERVAL", "10")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 0.1, cfg.TaxRate)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.True(t, cfg.SecureCookies)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("TAX_RATE", "-0.5")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("DEVICE_IDLE_TTL", "-1m")
	_, err = Load()
	assert.Error(t, err)
}

func TestNewStorage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	configs := map[string]*Config{
		"memory": {StorageDriver: DriverMemory},
		"sqlite": {StorageDriver: DriverSQLite, DBDSN: "file:config_test?mode=memory&cache=shared"},
		"redis":  {StorageDriver: DriverRedis, RedisAddr: mr.Addr()},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			kv, err := NewStorage(cfg)
			require.NoError(t, err)
			require.NoError(t, kv.Set(ctx, "k", "v"))
			v, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v", v)
		})
	}
}

func TestInitRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := InitRedis(&Config{RedisAddr: addr})
	assert.Error(t, err)
}
