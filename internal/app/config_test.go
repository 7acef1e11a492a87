package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults", func(t *testing.T) {
		cfg, err := NewConfig(Config{Place: "Lausanne"})
		require.NoError(t, err)
		assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
		assert.Equal(t, DefaultCacheDir, cfg.CacheDir)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg, err := NewConfig(Config{Place: "Lausanne", OutputPath: "maps/out.png", CacheDir: "tmpcache"})
		require.NoError(t, err)
		assert.Equal(t, "maps/out.png", cfg.OutputPath)
		assert.Equal(t, "tmpcache", cfg.CacheDir)
	})

	t.Run("rejects empty place", func(t *testing.T) {
		_, err := NewConfig(Config{})
		assert.Error(t, err)
	})
}
