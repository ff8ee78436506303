package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/punch/internal/domain"
	"github.com/bnema/punch/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialServiceResolveTrimsToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	store.EXPECT().Get(mockAnyContext(), CredentialKey).Return("  token-123\n", nil)

	token, err := service.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
}

func TestCredentialServiceResolveMapsLookupFailureToMissingCredential(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	store.EXPECT().Get(mockAnyContext(), CredentialKey).Return("", domain.ErrSecretNotFound)

	_, err := service.Resolve(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingCredential)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "TOGGL_API_TOKEN")
}

func TestCredentialServiceResolveEmptyValueIsMissing(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	store.EXPECT().Get(mockAnyContext(), CredentialKey).Return("   ", nil)

	_, err := service.Resolve(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestCredentialServiceResolveKeepsCancellation(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	store.EXPECT().Get(mockAnyContext(), CredentialKey).Return("", context.Canceled)

	_, err := service.Resolve(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrMissingCredential)
}

func TestCredentialServiceSet(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	store.EXPECT().Put(mockAnyContext(), CredentialKey, "token-123").Return(nil)

	require.NoError(t, service.Set(context.Background(), SetCredentialCommand{Token: " token-123 "}))
}

func TestCredentialServiceSetRejectsEmptyToken(t *testing.T) {
	service := NewCredentialService(mocks.NewMockSecretStore(t))

	err := service.Set(context.Background(), SetCredentialCommand{Token: "\t"})
	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestCredentialServiceSetWrapsStoreError(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	putErr := errors.New("pass insert failed")
	store.EXPECT().Put(mockAnyContext(), CredentialKey, "token-123").Return(putErr)

	err := service.Set(context.Background(), SetCredentialCommand{Token: "token-123"})
	require.ErrorIs(t, err, putErr)
	assert.ErrorContains(t, err, "store api token")
}

func TestCredentialServiceRemove(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewCredentialService(store)

	deleteErr := errors.New("delete failed")
	store.EXPECT().Delete(mockAnyContext(), CredentialKey).Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), CredentialKey).Return(deleteErr).Once()

	require.NoError(t, service.Remove(context.Background()))
	require.ErrorIs(t, service.Remove(context.Background()), deleteErr)
}
