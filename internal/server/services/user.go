// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login with bcrypt-hashed
// passwords and JWT session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted account password length.
const MinPasswordLength = 6

// bcryptCost matches the work factor the original deployment used.
const bcryptCost = 12

// UserService provides authentication-related operations:
// - Register: create accounts with one-way hashed passwords
// - Login: verify credentials and mint a session token
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	sessionSecret           []byte
	sessionValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		sessionSecret:           []byte(cfg.SessionSecret),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Register creates a new account. Empty fields or a too-short password yield
// common.ErrValidation; a taken email yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, common.ErrValidation
	}
	if len(password) < MinPasswordLength {
		return nil, common.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash), Name: name}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the email/password pair and, on success, returns a signed
// session token. An unknown email and a wrong password are both reported as
// common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.sessionSecret, s.sessionValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}
	return token, nil
}
