package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/logging"
	"github.com/joseotaviopc/api-ari/internal/server/auth"
	"github.com/joseotaviopc/api-ari/internal/server/models"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/repomanager"
	"github.com/joseotaviopc/api-ari/internal/server/repositories/users"
	"gorm.io/gorm"
)

// UserService is CRUD over credential records.
type UserService struct {
	db            *gorm.DB
	repomanager   repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	defaultBaseID int64
	log           logging.Logger
}

func NewUserService(db *gorm.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, defaultBaseID int64, log logging.Logger) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		hasher:        hasher,
		defaultBaseID: defaultBaseID,
		log:           log.With("module", "users"),
	}
}

// Create adds an active user in the default base, rejecting a taken email.
func (s *UserService) Create(ctx context.Context, email, password, name string) (*models.User, error) {
	user, err := createUser(ctx, s.repomanager.Users(s.db), s.hasher, email, password, name, s.defaultBaseID)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user created", "user_id", user.ID)
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Update applies patch to the user. A new password replaces the stored hash
// with a fresh hash; nothing else touches it.
func (s *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	var newHash string
	if patch.Password != nil {
		h, err := s.hasher.Hash(ctx, *patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		newHash = h
	}

	var updated *models.User
	err := s.repomanager.InTx(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		repo := s.repomanager.Users(tx)
		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			user.Name = *patch.Name
		}
		if patch.IsActive != nil {
			user.IsActive = *patch.IsActive
		}
		if newHash != "" {
			user.PasswordHash = newHash
		}
		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user updated", "user_id", id, "password_changed", newHash != "")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Users(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "user_id", id)
	return nil
}

// createUser runs the duplicate check, hashes the password and inserts the
// record. A registration racing past the check is rejected by the store's
// unique index and reaches the caller as a driver error.
func createUser(ctx context.Context, repo users.Repository, hasher auth.PasswordHasher, email, password, name string, baseID int64) (*models.User, error) {
	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: user with email %s", common.ErrorConflict, email)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := hasher.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return repo.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		IsActive:     true,
		BaseID:       baseID,
	})
}
