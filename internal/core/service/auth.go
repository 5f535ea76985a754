package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

const minPasswordLength = 6

type AuthService struct {
	repo   port.UserRepository
	tokens port.TokenIssuer
}

func NewAuthService(repo port.UserRepository, tokens port.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a user and returns a fresh access token. Preconditions
// are checked in order: duplicate email first, then password strength.
func (as *AuthService) Register(ctx context.Context, req *request.RegisterRequest) (string, error) {
	_, err := as.repo.GetByEmail(ctx, req.Email)

	if err == nil {
		return "", fmt.Errorf("register %q: %w", req.Email, domain.ErrDuplicateEmail)
	}

	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	if len(req.Password) < minPasswordLength {
		return "", domain.ErrWeakPassword
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return "", fmt.Errorf("encrypting password: %w", err)
	}

	now := time.Now()

	user := domain.User{
		UUID:              uuid.New(),
		Name:              req.Name,
		Email:             req.Email,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := as.repo.Create(ctx, user)

	if err != nil {
		slog.Error("Auth#Register", "create_user", err)
		return "", err
	}

	return as.tokens.Issue(saved.ID, saved.Email)
}

// Login authenticates by email and password and returns a fresh access token.
func (as *AuthService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", fmt.Errorf("login %q: %w", req.Email, domain.ErrUserNotFound)
		}

		return "", err
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		return "", domain.ErrInvalidCredential
	}

	return as.tokens.Issue(user.ID, user.Email)
}
