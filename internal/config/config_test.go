package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "barberbook", cfg.App.Name)
	assert.Equal(t, 5000, cfg.App.Port)
	assert.Equal(t, "barberbook", cfg.MySQL.DB)
	assert.Equal(t, 60, cfg.Redis.UsuarioTTLSeconds)
	assert.Equal(t, "booking.audit.persist", cfg.RabbitMQ.AuditQueue)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("RABBITMQ_AUDIT_QUEUE", "booking.audit.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.MySQL.Host)
	assert.Equal(t, "booking.audit.test", cfg.RabbitMQ.AuditQueue)
}

func TestLoadEnvOverrideBadInt(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.App.Port)
}

func TestHTTPAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 9000

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr())
}

func TestMySQLDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.MySQL.User = "booking"
	cfg.MySQL.Password = "secret"
	cfg.MySQL.Host = "db.internal"
	cfg.MySQL.Port = 3307
	cfg.MySQL.DB = "barberbook"
	cfg.MySQL.Params = "parseTime=true"

	assert.Equal(t, "booking:secret@tcp(db.internal:3307)/barberbook?parseTime=true", cfg.MySQLDSN())
}
