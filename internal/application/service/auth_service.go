package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
	"github.com/papeleria-gasparin/pos-api/internal/domain/entity"
	"github.com/papeleria-gasparin/pos-api/internal/domain/repository"
	"github.com/papeleria-gasparin/pos-api/pkg/apperror"
	"github.com/papeleria-gasparin/pos-api/pkg/oauth"
	"github.com/papeleria-gasparin/pos-api/pkg/utils"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	googleAuth *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, googleAuth *oauth.GoogleOAuthService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		googleAuth: googleAuth,
	}
}

// TokenPair carries the issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// Register creates a new user with the cashier role.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	if input.Username != "" {
		existing, err = s.userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Username already taken")
		}
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		Provider:  "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	role, err := s.userRepo.FindRoleByName(ctx, "cashier")
	if err != nil {
		return nil, err
	}
	if role != nil {
		if err := s.userRepo.AssignRole(ctx, user, role); err != nil {
			return nil, err
		}
	}

	return s.userRepo.FindByID(ctx, user.ID)
}

// Login authenticates by email or username and issues a token pair.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*entity.User, *TokenPair, error) {
	var user *entity.User
	var err error

	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile returns the authenticated user's profile.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// GoogleAuthURL returns the consent URL and the state token to verify on
// callback.
func (s *AuthService) GoogleAuthURL() (url, state string, err error) {
	if !s.googleAuth.IsConfigured() {
		return "", "", apperror.NewBadRequestError("Google login is not configured")
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	state = base64.URLEncoding.EncodeToString(raw)
	return s.googleAuth.GetAuthURL(state), state, nil
}

// GoogleCallback exchanges the OAuth code, provisioning the user on first
// login, and issues a token pair.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*entity.User, *TokenPair, error) {
	token, err := s.googleAuth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, nil, apperror.ErrUnauthorized
	}

	info, err := s.googleAuth.GetUserInfo(ctx, token)
	if err != nil {
		return nil, nil, apperror.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		providerID := info.ID
		user = &entity.User{
			FirstName:  info.GivenName,
			LastName:   info.FamilyName,
			Email:      info.Email,
			Provider:   "google",
			ProviderID: &providerID,
		}
		if info.Picture != "" {
			picture := info.Picture
			user.Photo = &picture
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, nil, err
		}

		role, err := s.userRepo.FindRoleByName(ctx, "cashier")
		if err != nil {
			return nil, nil, err
		}
		if role != nil {
			if err := s.userRepo.AssignRole(ctx, user, role); err != nil {
				return nil, nil, err
			}
		}

		user, err = s.userRepo.FindByID(ctx, user.ID)
		if err != nil {
			return nil, nil, err
		}
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.FullName(), roles, user.GetPermissions())
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
