package service

import (
	"context"
	"errors"
	usererrors "railbook/internal/users/errors"
	"railbook/internal/users/repository"
	"railbook/pkg/config"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/model"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, creds *model.Credentials) (*model.User, error)
	Login(ctx context.Context, creds *model.Credentials) (*model.User, error)
}

type userService struct {
	cfg      *config.Config
	repo     repository.UserRepository
	validate *validator.Validate
}

func NewUserService(cfg *config.Config, repo repository.UserRepository) UserService {
	return &userService{
		cfg:      cfg,
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *userService) Register(ctx context.Context, creds *model.Credentials) (*model.User, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, apperrors.InvalidInput("username must be 3-30 characters and password 6-72 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	user := &model.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, usererrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict("username already taken")
		}
		return nil, apperrors.Internal("Failed to create user", err)
	}

	s.cfg.Log.Info("User registered", "username", user.Username)
	return user, nil
}

func (s *userService) Login(ctx context.Context, creds *model.Credentials) (*model.User, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, apperrors.Unauthorized("invalid username or password")
	}

	user, err := s.repo.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, usererrors.ErrNotFound) {
			// Same answer as a wrong password, so usernames cannot be probed.
			return nil, apperrors.Unauthorized("invalid username or password")
		}
		return nil, apperrors.Internal("Failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, apperrors.Unauthorized("invalid username or password")
	}

	return user, nil
}
