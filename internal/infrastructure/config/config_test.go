package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "inventaris-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "inventaris", cfg.Database.DBName)
	assert.Equal(t, time.Hour, cfg.JWT.TokenExpiration)
	assert.Equal(t, "/", cfg.Cookie.Path)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.NotEmpty(t, cfg.HTTP.CORSAllowMethods)
}

func TestValidate_ConnectionPool(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestValidate_Production(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.JWT.Secret = "a-sufficiently-long-production-secret-value"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.Cookie.Secure = true
		return cfg
	}

	t.Run("accepts a complete production config", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("rejects short jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects disabled ssl", func(t *testing.T) {
		cfg := base()
		cfg.Database.SSLMode = "disable"
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects insecure cookies", func(t *testing.T) {
		cfg := base()
		cfg.Cookie.Secure = false
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects wildcard cors origin", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})

	t.Run("development skips production checks", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		assert.NoError(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "inventaris",
		Password: "p@ss/word",
		DBName:   "inventaris",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in credentials are escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}

func TestServerAddress(t *testing.T) {
	a := AppConfig{Port: "9090"}
	assert.Equal(t, ":9090", a.ServerAddress())
	assert.False(t, a.IsProduction())
}
