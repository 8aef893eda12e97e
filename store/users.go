package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sonerk/kelimeweb/auth"
	"github.com/sonerk/kelimeweb/models"
)

var (
	// ErrUserExists signals a registration for a taken username.
	ErrUserExists = errors.New("username already taken")
	// ErrUserNotFound signals a lookup or delete for an unknown username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown user and wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStore is the account directory. Usernames are case-normalized to
// lowercase before any lookup or write.
type UserStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserStore(db *gorm.DB, log *zap.Logger) *UserStore {
	return &UserStore{db: db, log: log}
}

// NormalizeUsername applies the canonical form used for all lookups.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a regular account with a freshly hashed password.
func (s *UserStore) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     NormalizeUsername(username),
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	err = s.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("registered user", zap.String("username", user.Username))
	return &user, nil
}

// Authenticate resolves a login attempt. The error does not distinguish an
// unknown username from a wrong password.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.ByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ByUsername fetches one account by its canonical username.
func (s *UserStore) ByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ?", NormalizeUsername(username)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// List returns every account ordered by username.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("username asc").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes one account. The caller is responsible for deleting the
// account's word store alongside.
func (s *UserStore) Delete(ctx context.Context, username string) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("username = ?", NormalizeUsername(username)).
		Delete(&models.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	s.log.Info("deleted user", zap.String("username", NormalizeUsername(username)))
	return nil
}

// EnsureAdmin forces an admin account into existence from configuration.
// An existing account gets its password reset and its role raised.
func (s *UserStore) EnsureAdmin(ctx context.Context, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := NormalizeUsername(username)
	user, err := s.ByUsername(ctx, name)
	if errors.Is(err, ErrUserNotFound) {
		admin := models.User{
			Username:     name,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
		}
		if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		s.log.Info("created admin user", zap.String("username", name))
		return nil
	}
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"password_hash": hash,
		"role":          models.RoleAdmin,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	s.log.Info("refreshed admin user", zap.String("username", name))
	return nil
}
