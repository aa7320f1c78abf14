package config_test

import (
	"testing"

	"github.com/6639835/vor-fix-calculator/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoad(t *testing.T) {
	t.Setenv("VORFIX_ENV", "local")
	t.Setenv("VORFIX_PORT", "9090")
	t.Setenv("VORFIX_NAV_FILE", "/data/earth_nav.dat")
	t.Setenv("VORFIX_FIX_FILE", "/data/earth_fix.dat")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/data/earth_nav.dat", cfg.NavFile)
	assert.Equal(t, "/data/earth_fix.dat", cfg.FixFile)
}

func Test_MustLoadDefaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.NavFile)
	assert.Empty(t, cfg.FixFile)
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("VORFIX_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for the HTTP server from configuration", func() {
		config.MustLoad()
	})
}
