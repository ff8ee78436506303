package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports"
)

var ErrReadOnly = errors.New("environment secret store is read-only")

type lookupFunc func(key string) (string, bool)

// Store resolves secrets from environment variables. The key
// "toggl/api_token" is read from TOGGL_API_TOKEN.
type Store struct {
	lookup lookupFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{lookup: os.LookupEnv}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := VariableName(key)
	if err != nil {
		return "", err
	}

	value, ok := s.lookup(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("environment variable %s: %w", name, domain.ErrSecretNotFound)
	}

	return strings.TrimSpace(value), nil
}

func (s *Store) Put(ctx context.Context, key string, _ string) error {
	return s.readOnly(ctx, key)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.readOnly(ctx, key)
}

func (s *Store) readOnly(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := VariableName(key)
	if err != nil {
		return err
	}

	return fmt.Errorf("environment variable %s: %w", name, ErrReadOnly)
}

// VariableName maps a secret key to its environment variable name.
func VariableName(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(trimmed) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String(), nil
}
