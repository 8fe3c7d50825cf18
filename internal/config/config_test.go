package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsUnknownDealSource(t *testing.T) {
	cfg := Default()
	cfg.DealSource = "carrier-pigeon"
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresOCRPaths(t *testing.T) {
	cfg := Default()
	cfg.DealSource = DealSourceOCR
	assert.Error(t, cfg.Validate())

	cfg.ScenePath = "scene.png"
	cfg.TemplateDir = "templates/"
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnvOverridesSeed(t *testing.T) {
	os.Setenv("FREECELL_SEED", "99")
	defer os.Unsetenv("FREECELL_SEED")

	cfg := Default().ApplyEnv()
	assert.Equal(t, int64(99), cfg.Seed)
}
