package usecase_music

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/soundhaven/soundhaven/domain"
	"github.com/soundhaven/soundhaven/domain/domain_music"
)

// UserUsecase covers account records. Token issuance lives elsewhere;
// this layer only stores and serves users.
type UserUsecase struct {
	userRepo domain_music.UserRepository
	timeout  time.Duration
}

func NewUserUsecase(userRepo domain_music.UserRepository, timeout time.Duration) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		timeout:  timeout,
	}
}

// Register creates an account. The repository hashes the password and
// turns a duplicate email into ErrConflict.
func (uc *UserUsecase) Register(ctx context.Context, user *domain_music.User, password string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if !strings.Contains(user.Email, "@") {
		return fmt.Errorf("%w: invalid email %q", domain.ErrValidation, user.Email)
	}
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	// Privilege flags are never caller-supplied.
	user.IsSuperuser = false
	user.IsActive = true
	return uc.userRepo.Create(ctx, user, password)
}

func (uc *UserUsecase) Get(ctx context.Context, id primitive.ObjectID) (*domain_music.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.userRepo.GetByID(ctx, id)
}

// Update lets a user edit their own profile; superusers may edit
// anyone. Privilege flags are preserved from the stored record for
// non-superuser callers.
func (uc *UserUsecase) Update(ctx context.Context, actor domain.Actor, user *domain_music.User) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if user.ID != actor.ID && !actor.IsSuperuser {
		return fmt.Errorf("%w: user %s may not edit user %s", domain.ErrPermissionDenied, actor.ID.Hex(), user.ID.Hex())
	}
	current, err := uc.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if !actor.IsSuperuser {
		user.IsSuperuser = current.IsSuperuser
		user.IsActive = current.IsActive
		user.IsPremium = current.IsPremium
	}
	user.HashedPassword = current.HashedPassword
	return uc.userRepo.Update(ctx, user)
}

func (uc *UserUsecase) Delete(ctx context.Context, actor domain.Actor, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id != actor.ID && !actor.IsSuperuser {
		return fmt.Errorf("%w: user %s may not delete user %s", domain.ErrPermissionDenied, actor.ID.Hex(), id.Hex())
	}
	return uc.userRepo.Delete(ctx, id)
}
