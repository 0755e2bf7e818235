package service

import (
	"context"
	"io"
	usererrors "railbook/internal/users/errors"
	"railbook/pkg/config"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/logger"
	"railbook/pkg/model"
	"testing"
)

type mockUserRepository struct {
	users map[string]*model.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*model.User)}
}

func (m *mockUserRepository) Insert(ctx context.Context, user *model.User) error {
	if _, exists := m.users[user.Username]; exists {
		return usererrors.ErrAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, usererrors.ErrNotFound
	}
	return user, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewUserService(testConfig(), newMockUserRepository())

	user, err := svc.Register(context.Background(), &model.Credentials{
		Username: "alice",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Error("Register() stored the plaintext password")
	}

	if _, err := svc.Login(context.Background(), &model.Credentials{
		Username: "alice",
		Password: "s3cret-pass",
	}); err != nil {
		t.Errorf("Login() unexpected error: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(testConfig(), newMockUserRepository())

	creds := &model.Credentials{Username: "alice", Password: "s3cret-pass"}
	if _, err := svc.Register(context.Background(), creds); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), creds)
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Errorf("Register() error = %v, want %s", err, apperrors.CodeConflict)
	}
}

func TestRegisterRejectsWeakCredentials(t *testing.T) {
	svc := NewUserService(testConfig(), newMockUserRepository())

	tests := []struct {
		name  string
		creds *model.Credentials
	}{
		{"short username", &model.Credentials{Username: "al", Password: "s3cret-pass"}},
		{"short password", &model.Credentials{Username: "alice", Password: "pw"}},
		{"empty", &model.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.creds)
			if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
				t.Errorf("Register() error = %v, want %s", err, apperrors.CodeInvalidInput)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	svc := NewUserService(testConfig(), newMockUserRepository())

	if _, err := svc.Register(context.Background(), &model.Credentials{
		Username: "alice",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		creds *model.Credentials
	}{
		{"wrong password", &model.Credentials{Username: "alice", Password: "wrong-pass"}},
		{"unknown user", &model.Credentials{Username: "nobody", Password: "s3cret-pass"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.creds)
			if !apperrors.HasCode(err, apperrors.CodeUnauthorized) {
				t.Errorf("Login() error = %v, want %s", err, apperrors.CodeUnauthorized)
			}
		})
	}
}
