package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "homeserve/database/repository/user"
	"homeserve/models"
	"homeserve/utils"
)

// Registration and sign-in failures surfaced to the client.
var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrUnderage           = errors.New("you must be 18 or older to register")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const sessionTTL = 24 * time.Hour

// UserService manages accounts and bearer-token sessions.
type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error)
	RevokeToken(token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	Logger    *zap.Logger
}

// Register creates an account and opens a session for it.
func (svc *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error) {
	if reg.Age < 18 {
		return nil, ErrUnderage
	}

	existing, err := svc.Repo.GetByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		Name:              reg.Name,
		Email:             reg.Email,
		Phone:             reg.Phone,
		PasswordHash:      string(hash),
		Age:               reg.Age,
		Citizenship:       reg.Citizenship,
		PreferredLanguage: reg.PreferredLanguage,
		CovidVaccinated:   reg.CovidVaccinated,
		Address:           reg.Address,
	}
	if err := svc.Repo.Create(ctx, account); err != nil {
		return nil, err
	}

	svc.Logger.Info("User registered", zap.String("user", account.ID))
	return svc.openSession(account)
}

// Authenticate verifies credentials and opens a session.
func (svc *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	account, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return svc.openSession(account)
}

// GetByID retrieves a user by its unique ID.
func (svc *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return svc.Repo.GetByID(ctx, id)
}

// UpdateProfile applies the non-nil fields of a profile update to the
// account and persists it.
func (svc *DefaultUserService) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	account, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, userRepo.ErrNotFound
	}

	if upd.Name != nil {
		account.Name = *upd.Name
	}
	if upd.Phone != nil {
		account.Phone = *upd.Phone
	}
	if upd.PreferredLanguage != nil {
		account.PreferredLanguage = *upd.PreferredLanguage
	}
	if upd.CovidVaccinated != nil {
		account.CovidVaccinated = *upd.CovidVaccinated
	}
	if upd.Address != nil {
		account.Address = *upd.Address
	}

	if err := svc.Repo.Update(ctx, account); err != nil {
		return nil, err
	}
	svc.Logger.Info("User profile updated", zap.String("user", account.ID))
	return account, nil
}

// RevokeToken invalidates a bearer token before its natural expiry.
func (svc *DefaultUserService) RevokeToken(token string) error {
	return utils.RevokeAuthToken(svc.AuthCache, token)
}

// openSession issues a JWT and records its hash so the middleware can check
// liveness and revocation.
func (svc *DefaultUserService) openSession(account *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.StoreAuthToken(svc.AuthCache, token, account.ID, sessionTTL); err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *account}, nil
}
