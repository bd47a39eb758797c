package service

import (
	"errors"
	"time"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidRefresh = errors.New("invalid or expired refresh token")
	ErrSessionRevoked = errors.New("session has been revoked")
)

type AuthService interface {
	Login(username, password, clientIP string) (*LoginResponse, error)
	Refresh(refreshToken string) (*RefreshResponse, error)
	Logout(refreshToken string) error
	Profile(userID uuid.UUID) (*model.UserProfile, error)
}

type LoginResponse struct {
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	User         model.UserProfile `json:"user"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(username, password, clientIP string) (*LoginResponse, error) {
	// 1. Find user by username
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Check if user is active
	if !user.IsActive || user.Status != model.UserStatusActive {
		return nil, ErrAccountDisabled
	}

	// 3. Verify password
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 4. Record login side effects
	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now, clientIP); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	user.LastLoginIP = clientIP

	// 5. Ensure a token version exists; first login mints one
	if user.TokenVersion == "" {
		user.TokenVersion = uuid.New().String()
		if err := s.userRepo.UpdateTokenVersion(user.ID, user.TokenVersion); err != nil {
			return nil, err
		}
	}

	// 6. Issue the token pair
	access, refresh, err := jwt.GenerateTokenPair(user.ID, user.Username, user.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate tokens")
	}

	return &LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user.ToProfile(),
	}, nil
}

func (s *authService) Refresh(refreshToken string) (*RefreshResponse, error) {
	// 1. Validate the refresh token
	claims, err := jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	// 2. Check the session is still live
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive || user.Status != model.UserStatusActive {
		return nil, ErrAccountDisabled
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionRevoked
	}

	// 3. Mint a new access token
	access, err := jwt.GenerateAccessToken(user.ID, user.Username, user.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &RefreshResponse{Access: access}, nil
}

// Logout invalidates the session behind a refresh token by bumping the
// user's token version. Best-effort: a bad token is a reported error, never
// a crash.
func (s *authService) Logout(refreshToken string) error {
	claims, err := jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return ErrInvalidRefresh
	}

	return s.userRepo.UpdateTokenVersion(claims.UserID, uuid.New().String())
}

func (s *authService) Profile(userID uuid.UUID) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	profile := user.ToProfile()
	return &profile, nil
}
