package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports"
)

var ErrSettingsExist = errors.New("settings file already exists")

type SettingsService struct {
	repo ports.SettingsRepository
}

func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Load returns validated settings.
func (s *SettingsService) Load(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("%s: %w", s.repo.Path(), err)
	}

	return settings, nil
}

// Init writes the default settings file and returns its path. An existing
// file is only replaced when cmd.Force is set.
func (s *SettingsService) Init(ctx context.Context, cmd InitSettingsCommand) (string, error) {
	path := s.repo.Path()

	if !cmd.Force {
		exists, err := s.repo.Exists(ctx)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrSettingsExist, path)
		}
	}

	if err := s.repo.Save(ctx, domain.DefaultSettings()); err != nil {
		return "", fmt.Errorf("save settings: %w", err)
	}

	return path, nil
}
