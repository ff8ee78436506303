package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports"
)

const CredentialKey = "toggl/api_token"

var ErrEmptyToken = errors.New("api token is empty")

type CredentialService struct {
	store ports.SecretStore
}

func NewCredentialService(store ports.SecretStore) *CredentialService {
	return &CredentialService{store: store}
}

// Resolve returns the Toggl API token. Any lookup failure is reported as
// domain.ErrMissingCredential.
func (s *CredentialService) Resolve(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, CredentialKey)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: set TOGGL_API_TOKEN or run \"punch auth set\": %w", domain.ErrMissingCredential, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: stored api token is empty", domain.ErrMissingCredential)
	}

	return token, nil
}

func (s *CredentialService) Set(ctx context.Context, cmd SetCredentialCommand) error {
	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.store.Put(ctx, CredentialKey, token); err != nil {
		return fmt.Errorf("store api token: %w", err)
	}

	return nil
}

func (s *CredentialService) Remove(ctx context.Context) error {
	if err := s.store.Delete(ctx, CredentialKey); err != nil {
		return fmt.Errorf("delete api token: %w", err)
	}

	return nil
}
