package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig_EnvOverridesAndDefaults(t *testing.T) {
	config = Config{DBHost: "yaml-host"}
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("IS_PROD", "true")

	applyEnv()

	assert.Equal(t, "env-host", GetConfig("DB_HOST"))
	assert.Equal(t, "true", GetConfig("IsProd"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "./logs/app.log", GetConfig("LOG_PATH"))
	assert.Equal(t, "", GetConfig("UNKNOWN"))
}

func TestInitValidator_Idempotent(t *testing.T) {
	InitValidator()
	first := Validate
	InitValidator()
	assert.Same(t, first, Validate)
}
