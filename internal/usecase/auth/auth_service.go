package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/csiedev/meeting-records/internal/domain/entities"
	"github.com/csiedev/meeting-records/internal/domain/repositories"
	usecaseErrors "github.com/csiedev/meeting-records/internal/usecase/errors"
	"github.com/csiedev/meeting-records/pkg/jwt"
)

// RecoveryNotifier emails a freshly generated password to its owner
type RecoveryNotifier interface {
	NotifyPasswordRecovery(email, name, password string) error
}

// AuthService handles password authentication and recovery
type AuthService struct {
	personRepo repositories.PersonRepository
	jwtManager *jwt.Manager
	notifier   RecoveryNotifier
}

// NewAuthService creates a new auth service
func NewAuthService(personRepo repositories.PersonRepository, jwtManager *jwt.Manager, notifier RecoveryNotifier) *AuthService {
	return &AuthService{
		personRepo: personRepo,
		jwtManager: jwtManager,
		notifier:   notifier,
	}
}

// LoginResult carries the authenticated person and the issued tokens
type LoginResult struct {
	Person       *entities.Person
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Login verifies the credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	person, err := s.personRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load person: %w", err)
	}

	if person.PasswordHash == nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*person.PasswordHash), []byte(password)); err != nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(person.ID, person.Email, person.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(person.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &LoginResult{
		Person:       person,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	personID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load person: %w", err)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(person.ID, person.Email, person.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &LoginResult{
		Person:      person,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// ChangePassword replaces the caller's password after verifying the old one
func (s *AuthService) ChangePassword(ctx context.Context, personID uuid.UUID, oldPassword, newPassword string) error {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to load person: %w", err)
	}

	if person.PasswordHash != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*person.PasswordHash), []byte(oldPassword)); err != nil {
			return usecaseErrors.ErrInvalidCredentials
		}
	}

	return s.setPassword(ctx, person.ID, newPassword)
}

// RecoverPassword generates a fresh password, stores it and emails it to
// the account owner. The mail is delivered in the background.
func (s *AuthService) RecoverPassword(ctx context.Context, email string) error {
	person, err := s.personRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrPersonNotFound
		}
		return fmt.Errorf("failed to load person: %w", err)
	}

	password, err := generatePassword(12)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}
	if err := s.setPassword(ctx, person.ID, password); err != nil {
		return err
	}

	return s.notifier.NotifyPasswordRecovery(person.Email, person.Name, password)
}

func (s *AuthService) setPassword(ctx context.Context, personID uuid.UUID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.personRepo.UpdatePassword(ctx, personID, string(hash)); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	return nil
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generatePassword(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
