package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/client"
)

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := &GlobalConfig{ServerURL: "http://siags.test"}

	ctx := InjectConfig(context.Background(), cfg)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, MustFromContext(ctx))
}

func TestFromContextAbsent(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { MustFromContext(context.Background()) })
}

func TestLoadFileFrom(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := loadFileFrom(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: https://siags.hopital.fr\n"), 0600))

		cfg, err := loadFileFrom(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "https://siags.hopital.fr", cfg.Server)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0600))

		_, err := loadFileFrom(path)
		assert.Error(t, err)
	})
}

func TestRequireAccessNotLoggedIn(t *testing.T) {
	// Point the provider's file store at an empty home.
	t.Setenv("HOME", t.TempDir())

	cfg := &GlobalConfig{
		ServerURL: "http://siags.test",
		Provider:  client.NewProvider("http://siags.test"),
	}
	err := cfg.RequireAccess([]string{"ROLE_ADMIN"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestRequireAccessBearerTokenBypass(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	provider := client.NewProvider("http://siags.test")
	provider.SetBearerToken("ephemeral")
	cfg := &GlobalConfig{ServerURL: "http://siags.test", Provider: provider}

	assert.NoError(t, cfg.RequireAccess([]string{"ROLE_ADMIN"}, nil))
}
