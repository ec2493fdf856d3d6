package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weatherin/cli/internal/config"
)

func TestCountryRepositoryNameByCode(t *testing.T) {
	repo := newCountryRepository(filepath.Join("testdata", "country_codes.json"))
	ctx := context.Background()

	for _, code := range []string{"GB", "gb", "gB"} {
		name, ok, err := repo.NameByCode(ctx, code)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "United Kingdom", name)
	}

	_, ok, err := repo.NameByCode(ctx, "xx")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountryRepositoryCodeByName(t *testing.T) {
	repo := newCountryRepository(filepath.Join("testdata", "country_codes.json"))
	ctx := context.Background()

	for _, name := range []string{"United Kingdom", "united kingdom", "uNiTeD kInGdOm"} {
		code, ok, err := repo.CodeByName(ctx, name)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "gb", code)
	}

	_, ok, err := repo.CodeByName(ctx, "Atlantis")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountryRepositoryMissingFile(t *testing.T) {
	repo := newCountryRepository(filepath.Join("testdata", "no-such-file.json"))
	_, _, err := repo.NameByCode(context.Background(), "gb")
	require.Error(t, err)
}

func TestNewRepositories(t *testing.T) {
	repos, err := NewRepositories(config.Data{
		CitiesFile:       filepath.Join("testdata", "cities.json"),
		CountryCodesFile: filepath.Join("testdata", "country_codes.json"),
	})
	require.NoError(t, err)
	require.NotNil(t, repos.Cities)
	require.NotNil(t, repos.Countries)
}

func brokenDataConfig(t *testing.T) config.Data {
	t.Helper()
	return config.Data{
		CitiesFile:       filepath.Join("testdata", "no-such-file.json"),
		CountryCodesFile: filepath.Join("testdata", "country_codes.json"),
	}
}
