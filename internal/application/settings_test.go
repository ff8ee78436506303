package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/punch/internal/adapters/repo/toml"
	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsServiceInitWritesDefaultsOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "punch", "config.toml")
	repo, err := tomlrepo.NewRepository(viper.New(), path)
	require.NoError(t, err)
	service := NewSettingsService(repo)

	written, err := service.Init(context.Background(), InitSettingsCommand{})
	require.NoError(t, err)
	assert.Equal(t, path, written)

	settings, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	_, err = service.Init(context.Background(), InitSettingsCommand{})
	require.ErrorIs(t, err, ErrSettingsExist)

	_, err = service.Init(context.Background(), InitSettingsCommand{Force: true})
	require.NoError(t, err)
}

func TestSettingsServiceLoadValidates(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	service := NewSettingsService(repo)

	invalid := domain.DefaultSettings()
	invalid.Rounding = -time.Minute
	repo.EXPECT().Load(mockAnyContext()).Return(invalid, nil)
	repo.EXPECT().Path().Return("/tmp/punch/config.toml")

	_, err := service.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.ErrorContains(t, err, "/tmp/punch/config.toml")
}

func TestSettingsServiceLoadRejectsGapBelowTwiceRounding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("gap = \"1m\"\nrounding = \"15m\"\n"), 0o600))
	repo, err := tomlrepo.NewRepository(viper.New(), path)
	require.NoError(t, err)

	_, err = NewSettingsService(repo).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
	assert.ErrorContains(t, err, "twice the rounding")
}

func TestSettingsServiceLoadWrapsRepositoryError(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	service := NewSettingsService(repo)

	loadErr := errors.New("read settings file: boom")
	repo.EXPECT().Load(mockAnyContext()).Return(domain.Settings{}, loadErr)

	_, err := service.Load(context.Background())
	require.ErrorIs(t, err, loadErr)
}

func TestSettingsServiceInitSaveError(t *testing.T) {
	repo := mocks.NewMockSettingsRepository(t)
	service := NewSettingsService(repo)

	saveErr := errors.New("disk full")
	repo.EXPECT().Path().Return("/tmp/punch/config.toml")
	repo.EXPECT().Exists(mockAnyContext()).Return(false, nil)
	repo.EXPECT().Save(mockAnyContext(), domain.DefaultSettings()).Return(saveErr)

	_, err := service.Init(context.Background(), InitSettingsCommand{})
	require.ErrorIs(t, err, saveErr)
}
