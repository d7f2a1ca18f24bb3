package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/secureaware/phishsim-backend/internal/database/repository"
	"github.com/secureaware/phishsim-backend/internal/models"
)

type AuthService struct {
	operatorRepo   *repository.OperatorRepository
	jwtSecret      []byte
	accessTokenTTL time.Duration
}

func NewAuthService(operatorRepo *repository.OperatorRepository) *AuthService {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("default-secret-key-change-in-production")
	}

	accessTokenTTL := 12 * time.Hour
	if ttl := os.Getenv("ACCESS_TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			accessTokenTTL = parsed
		}
	}

	return &AuthService{
		operatorRepo:   operatorRepo,
		jwtSecret:      jwtSecret,
		accessTokenTTL: accessTokenTTL,
	}
}

// Login authenticates an operator
func (s *AuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	operator, err := s.operatorRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !operator.IsActive {
		return nil, errors.New("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := s.operatorRepo.UpdateLastLogin(operator.ID); err != nil {
		logrus.Warnf("Failed to update last login: %v", err)
	}

	accessToken, err := s.generateAccessToken(operator)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
		Operator:    *operator,
	}, nil
}

// ValidateToken validates and parses a JWT access token
func (s *AuthService) ValidateToken(tokenString string) (*models.TokenInfo, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	operator, err := s.operatorRepo.GetByID(claims.OperatorID)
	if err != nil {
		return nil, errors.New("operator not found")
	}
	if !operator.IsActive {
		return nil, errors.New("account is deactivated")
	}

	return &models.TokenInfo{
		OperatorID: claims.OperatorID,
		Username:   claims.Username,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// EnsureAdminOperator creates the bootstrap admin account if it is missing
func (s *AuthService) EnsureAdminOperator() error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	if existing, err := s.operatorRepo.GetByUsername(username); err == nil && existing != nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe@123"
		logrus.Warn("ADMIN_PASSWORD not set, using the default bootstrap password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	operator := &models.Operator{
		Username:     username,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}
	if err := s.operatorRepo.Create(operator); err != nil {
		return fmt.Errorf("failed to create admin operator: %w", err)
	}

	return nil
}

func (s *AuthService) generateAccessToken(operator *models.Operator) (string, error) {
	claims := &models.JWTClaims{
		OperatorID: operator.ID,
		Username:   operator.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "phishsim-backend",
			Subject:   operator.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
