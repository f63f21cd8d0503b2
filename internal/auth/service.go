// Package auth issues and validates the API tokens the HTTP layer runs on.
// Identity verification happens upstream at the identity provider; the login
// endpoint only exchanges an already-verified subject email for a signed JWT
// scoped to this service.
package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tokenIssuer = "vacation-manager-backend"

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email" example:"jane.doe@example.com"`
	jwt.RegisteredClaims
}

// LoginRequest represents the request to exchange a verified email for a token
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresIn   int64     `json:"expires_in" example:"28800"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
}

// Service provides token issuance and validation
type Service struct {
	secret   []byte
	expiry   time.Duration
	userRepo repository.UserRepositoryInterface
}

// NewService creates a new auth service
func NewService(secret string, expiry time.Duration, userRepo repository.UserRepositoryInterface) *Service {
	return &Service{
		secret:   []byte(secret),
		expiry:   expiry,
		userRepo: userRepo,
	}
}

// Login exchanges a verified email for a signed token. Emails that do not
// belong to a registered employee are rejected.
func (s *Service) Login(email string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAuthenticationError("unknown user email")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.expiry.Seconds()),
		UserID:      user.ID,
		Email:       user.Email,
	}, nil
}

// GenerateJWT creates a signed token for the user
func (s *Service) GenerateJWT(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a token
func (s *Service) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
