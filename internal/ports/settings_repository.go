package ports

import (
	"context"

	"github.com/bnema/punch/internal/domain"
)

type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
	Exists(ctx context.Context) (bool, error)
	Path() string
}
