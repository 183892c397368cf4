package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sportbet/sportbet-api/models"
	"github.com/sportbet/sportbet-api/repositories"
)

var (
	ErrInvalidAPIKey       = errors.New("invalid api key")
	ErrKeyGenerationFailed = errors.New("failed to generate api key")
)

// AuthService checks caller-supplied opaque API keys against the stored
// bcrypt digests. One non-admin key protects the resource surface, one
// admin key the management operations.
type AuthService interface {
	ValidateKey(ctx context.Context, rawKey string, admin bool) error
	GenerateKey(ctx context.Context, admin bool, eventID *int) (string, error)
}

type authService struct {
	keyRepo repositories.APIKeyRepository
}

func NewAuthService(keyRepo repositories.APIKeyRepository) AuthService {
	return &authService{keyRepo: keyRepo}
}

func (s *authService) ValidateKey(ctx context.Context, rawKey string, admin bool) error {
	if rawKey == "" {
		return ErrInvalidAPIKey
	}

	stored, err := s.keyRepo.GetByAdmin(ctx, admin)
	if err != nil {
		if errors.Is(err, repositories.ErrAPIKeyNotFound) {
			return ErrInvalidAPIKey
		}
		return fmt.Errorf("failed to load api key: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(stored.Key), []byte(rawKey))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidAPIKey
		}
		return fmt.Errorf("failed to compare api key digest: %w", err)
	}
	return nil
}

// GenerateKey mints a fresh random key, stores its digest and returns the
// plaintext once. The previous key of the same class stops working.
func (s *authService) GenerateKey(ctx context.Context, admin bool, eventID *int) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	digest, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}

	err = s.keyRepo.Save(ctx, &models.APIKey{
		Key:     string(digest),
		EventID: eventID,
		Admin:   admin,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyGenerationFailed, err)
	}
	return token, nil
}
