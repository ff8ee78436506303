package ports

import (
	"context"

	"github.com/bnema/punch/internal/domain"
)

type EntrySource interface {
	ListClientProjects(ctx context.Context, clientID domain.ClientID) ([]domain.Project, error)
	ListTimeEntries(ctx context.Context, window domain.Window) ([]domain.TimeEntry, error)
}
