package fptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, defaultConfig().validate())
}

func TestConfig_Validate_RejectsOutOfRangeSupport(t *testing.T) {
	cfg := defaultConfig()
	cfg.Support = 0
	assert.Error(t, cfg.validate())

	cfg.Support = 1.5
	assert.Error(t, cfg.validate())
}

func TestConfig_Validate_RejectsOutOfRangeConfidence(t *testing.T) {
	cfg := defaultConfig()
	cfg.Confidence = -0.1
	assert.Error(t, cfg.validate())
}

func TestConfig_Validate_RejectsNegativeCacheCost(t *testing.T) {
	cfg := defaultConfig()
	cfg.CacheCost = -1
	assert.Error(t, cfg.validate())
}

func TestOptions_ApplyOverDefaults(t *testing.T) {
	cfg := defaultConfig()
	WithSupport(0.5)(&cfg)
	WithConfidence(0.8)(&cfg)
	WithCache(0)(&cfg)

	assert.Equal(t, 0.5, cfg.Support)
	assert.Equal(t, 0.8, cfg.Confidence)
	assert.Equal(t, int64(0), cfg.CacheCost)
	require.NoError(t, cfg.validate())
}
