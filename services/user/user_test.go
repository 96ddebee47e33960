package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "homeserve/database/repository/user"
	"homeserve/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, account := range r.byEmail {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Create(_ context.Context, account *models.User) error {
	if r.byEmail == nil {
		r.byEmail = make(map[string]*models.User)
	}
	r.byEmail[account.Email] = account
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, account *models.User) error {
	r.byEmail[account.Email] = account
	return nil
}

func TestRegisterRejectsUnderage(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{}, Logger: zap.NewNop()}

	_, err := svc.Register(context.Background(), models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "secret-password", Age: 17,
	})
	assert.ErrorIs(t, err, ErrUnderage)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*models.User{
		"sam@example.com": {ID: "user-1", Email: "sam@example.com"},
	}}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.Register(context.Background(), models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "secret-password", Age: 30,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*models.User{
		"sam@example.com": {
			ID:                "user-1",
			Name:              "Sam",
			Email:             "sam@example.com",
			Phone:             "0400000000",
			PreferredLanguage: "English",
		},
	}}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	phone := "0411111111"
	account, err := svc.UpdateProfile(context.Background(), "user-1", models.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "0411111111", account.Phone)
	assert.Equal(t, "Sam", account.Name, "omitted fields stay unchanged")
	assert.Equal(t, "English", account.PreferredLanguage)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: &fakeUserRepo{}, Logger: zap.NewNop()}

	phone := "0411111111"
	_, err := svc.UpdateProfile(context.Background(), "missing", models.ProfileUpdate{Phone: &phone})
	assert.ErrorIs(t, err, userRepo.ErrNotFound)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	repo := &fakeUserRepo{byEmail: map[string]*models.User{
		"sam@example.com": {ID: "user-1", Email: "sam@example.com", PasswordHash: string(hash)},
	}}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.Authenticate(context.Background(), "sam@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
