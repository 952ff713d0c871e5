package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filedrop/file-api/internal/apperr"
	"filedrop/file-api/internal/model"
	"filedrop/file-api/pkg/security"

	"gorm.io/gorm"
)

// Identity handles registration and login. It shares the token signing
// secret with the JWT middleware and nothing else.
type Identity struct {
	db     *gorm.DB
	hasher *security.PasswordHasher
	secret []byte
}

func NewIdentity(db *gorm.DB, hasher *security.PasswordHasher, secret []byte) *Identity {
	return &Identity{
		db:     db,
		hasher: hasher,
		secret: secret,
	}
}

// Subject is the non-sensitive user summary returned on login.
type Subject struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Identity) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email and password are required", apperr.ErrValidation)
	}

	var exists bool

	err := s.db.WithContext(ctx).
		Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&exists).
		Error
	if err != nil {
		return fmt.Errorf("failed to check for existing email, %w", err)
	}

	if exists {
		return fmt.Errorf("%w: email is already registered", apperr.ErrConflict)
	}

	hash, err := s.hasher.GenerateFromPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password, %w", err)
	}

	id, err := newID()
	if err != nil {
		return fmt.Errorf("failed to generate user ID, %w", err)
	}

	user := &model.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().Unix(),
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user, %w", err)
	}

	return nil
}

// Login verifies the credentials and issues a signed identity token. An
// unknown email and a wrong password produce the same error so callers
// can't probe which emails are registered.
func (s *Identity) Login(ctx context.Context, email, password string) (string, *Subject, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", apperr.ErrValidation)
	}

	var user model.User

	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.ErrAuthentication
		}

		return "", nil, fmt.Errorf("failed to look up user, %w", err)
	}

	ok, err := s.hasher.VerifyPasswd(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password, %w", err)
	}

	if !ok {
		return "", nil, apperr.ErrAuthentication
	}

	token, err := security.MakeToken(user.ID, s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token, %w", err)
	}

	return token, &Subject{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
