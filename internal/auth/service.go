package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides email/password authentication with invitation-gated
// registration. Refresh tokens live in memory; restarting the server signs
// everyone out of their refresh sessions but leaves access tokens valid
// until they expire.
type AuthService struct {
	userRepo       repository.UserRepositoryInterface
	invitationRepo repository.InvitationRepositoryInterface
	jwtSecret      string
	refreshTokens  map[string]*RefreshTokenData
	tokenMutex     sync.RWMutex
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"7b8e1c8e-4f7a-4e0e-9f4b-2a6d8c1e5f3a"`
	Email                string `json:"email" example:"jane.doe@example.com"`
	IsAdmin              bool   `json:"is_admin" example:"false"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserProfile is the authenticated identity returned alongside tokens
type UserProfile struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

// LoginRequest represents the credentials for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the payload for invitation-gated registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthTokenResponse represents the response from login, register and refresh
type AuthTokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64       `json:"expiresIn" example:"3600"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// InvitedResponse reports whether an email has a pending invitation
type InvitedResponse struct {
	Email   string `json:"email"`
	Invited bool   `json:"invited"`
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, invitationRepo repository.InvitationRepositoryInterface, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		jwtSecret:      jwtSecret,
		refreshTokens:  make(map[string]*RefreshTokenData),
	}
}

// Login verifies credentials and issues an access/refresh token pair
func (s *AuthService) Login(email, password string) (*AuthTokenResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return s.issueTokens(user)
}

// Register creates an account for an invited email and consumes the
// invitation. Uninvited emails are rejected.
func (s *AuthService) Register(email, password string) (*AuthTokenResponse, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	}

	invitation, err := s.invitationRepo.GetByEmail(email)
	if err != nil || invitation == nil {
		return nil, apperrors.ErrEmailNotInvited
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	invitedAt := invitation.CreatedAt
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsInvited:    true,
		InvitedAt:    &invitedAt,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.invitationRepo.DeleteByEmail(email); err != nil {
		return nil, fmt.Errorf("failed to consume invitation: %w", err)
	}

	return s.issueTokens(user)
}

// SendInvitation records a pending invitation for an email
func (s *AuthService) SendInvitation(email string) (*models.Invitation, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	}
	if existing, err := s.invitationRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperrors.ErrInvitationExists
	}

	invitation := &models.Invitation{Email: email}
	if err := s.invitationRepo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	return invitation, nil
}

// ListInvitations returns all pending invitations
func (s *AuthService) ListInvitations() ([]models.Invitation, error) {
	return s.invitationRepo.GetAll()
}

// RevokeInvitation withdraws a pending invitation
func (s *AuthService) RevokeInvitation(email string) error {
	if _, err := s.invitationRepo.GetByEmail(email); err != nil {
		return apperrors.ErrInvitationNotFound
	}
	return s.invitationRepo.DeleteByEmail(email)
}

// IsEmailInvited reports whether the email has a pending invitation
func (s *AuthService) IsEmailInvited(email string) bool {
	invitation, err := s.invitationRepo.GetByEmail(email)
	return err == nil && invitation != nil
}

// RefreshToken rotates a refresh token and issues a new access token
func (s *AuthService) RefreshToken(refreshToken string) (*AuthTokenResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Re-read the user so admin changes take effect on refresh.
	user, err := s.userRepo.GetByID(tokenData.UserID)
	if err != nil {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrInvalidRefreshToken
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	return s.issueTokens(user)
}

// Logout invalidates a refresh token. Access tokens stay valid until expiry.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:  user.ID.String(),
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "resource-planner-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// issueTokens builds the token pair response and stores the refresh token
func (s *AuthService) issueTokens(user *models.User) (*AuthTokenResponse, error) {
	jwtToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthTokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: refreshToken,
		Profile: UserProfile{
			ID:      user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	}, nil
}

// generateRefreshToken generates a random refresh token
func (s *AuthService) generateRefreshToken() (string, error) {
	bytes := make([]byte, 64)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
