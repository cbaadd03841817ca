package service

import (
	"context"
	"errors"
	"time"

	"hangout_backend/internal/auth/password"
	"hangout_backend/internal/auth/repository"
	"hangout_backend/platform/apperr"
	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const accessTokenType = "access"

// UserStore is the subset of the repository the service depends on.
type UserStore interface {
	CreateUser(ctx context.Context, username, name, email, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (repository.User, error)
}

type Service struct {
	store UserStore
	cfg   config.AuthServiceConfig
	log   *logger.Logger
}

func New(store UserStore, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{store: store, cfg: cfg, log: log}
}

func (s *Service) SignUp(ctx context.Context, username, name, email, plainPassword string) (repository.User, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return repository.User{}, err
	}

	user, err := s.store.CreateUser(ctx, username, name, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return repository.User{}, apperr.Conflict(err.Error())
		}
		return repository.User{}, err
	}

	s.log.AuthEvent("sign_up", username, true, "")
	return user, nil
}

func (s *Service) SignIn(ctx context.Context, username, plainPassword string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		s.log.AuthEvent("sign_in", username, false, "unknown user")
		return "", ErrInvalidCredentials
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("sign_in", username, false, "bad password")
		return "", ErrInvalidCredentials
	}

	token, err := s.issueAccessToken(user)
	if err != nil {
		return "", err
	}

	s.log.AuthEvent("sign_in", username, true, "")
	return token, nil
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (repository.User, error) {
	return s.store.GetUserByID(ctx, userID)
}

func (s *Service) issueAccessToken(user repository.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"type":     accessTokenType,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.GetJWTSecret()))
}
