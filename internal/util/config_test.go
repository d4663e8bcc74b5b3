package util

import (
	"astrocore/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"defaultOrb": 7,
			"orbs": {"trine": 4},
			"includeMinor": true,
			"workers": 8,
			"rankExpression": "total - warnings"
		}`), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 8, config.Workers)
		require.Equal(t, 1.0, config.MidpointOrb)
		require.Equal(t, "total - warnings", config.RankExpression)

		opts, err := config.AspectOptions()
		require.NoError(t, err)
		def := 7.0
		require.Equal(t, "", cmp.Diff(domain.AspectOptions{
			IncludeMinor: true,
			Orbs: domain.OrbOverrides{
				Default: &def,
				ByType:  map[domain.AspectType]float64{domain.AspectType_Trine: 4},
			},
		}, opts))
	})

	t.Run("missing env file falls back to defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { os.Chdir(wd) })
		t.Setenv("ASTRO_ENV", "test")
		config, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(DefaultConfig(), *config))
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"workers": "many"}`), 0o644))
		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("unknown aspect in orbs", func(t *testing.T) {
		config := DefaultConfig()
		config.Orbs = map[string]float64{"quintile": 2}
		_, err := config.AspectOptions()
		require.ErrorContains(t, err, "quintile")
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("ASTRO_ENV", "dev")
	require.Equal(t, "config-dev.json", ConfigFile())
	t.Setenv("ASTRO_ENV", "")
	require.Equal(t, "config.json", ConfigFile())
}

func TestConfig_Location(t *testing.T) {
	loc, err := Config{}.Location()
	require.NoError(t, err)
	require.Nil(t, loc)

	loc, err = Config{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())

	_, err = Config{Timezone: "Mars/Olympus_Mons"}.Location()
	require.ErrorContains(t, err, "Mars/Olympus_Mons")
}
