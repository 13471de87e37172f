package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopchat/internal/model"
	"shopchat/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// AuthService handles registration and login
type AuthService struct {
	users  UserStore
	tokens *TokenService
	cost   int
	log    zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// Register creates an account. It returns repository.ErrDuplicateUsername
// when the name is taken.
func (s *AuthService) Register(ctx context.Context, req model.CredentialsRequest) (*model.RegisterResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, ErrInvalidInput
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, req.Username, string(hash))
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", id).Str("username", req.Username).Msg("user registered")
	return &model.RegisterResponse{UserID: id, Username: req.Username}, nil
}

// Login checks credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, req model.CredentialsRequest) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, UserID: user.ID, Username: user.Username}, nil
}
