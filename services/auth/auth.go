// File: services/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"swatbarber/config"
	"swatbarber/models"
	"swatbarber/services/admin"
	"swatbarber/utils"
)

const (
	tokenTTL        = 24 * time.Hour
	authTokenPrefix = "authToken:"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked or expired")
	ErrDeveloperDisabled  = errors.New("developer access is not configured")
)

// Session describes an authenticated principal.
type Session struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
	Token   string `json:"token,omitempty"`
}

// AuthService issues, validates and revokes access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	DeveloperLogin(ctx context.Context, password string) (*Session, error)
	Validate(ctx context.Context, tokenString string) (*Session, error)
	Logout(ctx context.Context, tokenString string) error
}

type credential struct {
	hash []byte
	role string
}

// DefaultAuthService implements AuthService against a static credential
// table hashed at construction time.
type DefaultAuthService struct {
	creds         map[string]credential
	developerHash []byte
	tokens        *redis.Client
}

// NewDefaultAuthService hashes the configured passwords and returns a ready
// service. Barbers share the barber password; "admin" has its own.
func NewDefaultAuthService(tokens *redis.Client) (*DefaultAuthService, error) {
	svc := &DefaultAuthService{
		creds:  make(map[string]credential),
		tokens: tokens,
	}

	barberHash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.BarberPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash barber password: %w", err)
	}
	for _, b := range models.Barbers {
		svc.creds[strings.ToLower(b.Name)] = credential{hash: barberHash, role: admin.RoleBarber}
	}

	if config.AppConfig.AdminPassword != "" {
		adminHash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		svc.creds["admin"] = credential{hash: adminHash, role: admin.RoleAdmin}
	}

	if config.AppConfig.DeveloperPassword != "" {
		devHash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.DeveloperPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash developer password: %w", err)
		}
		svc.developerHash = devHash
	}

	return svc, nil
}

// Login authenticates a barber or admin by name and issues a 24h token.
func (s *DefaultAuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	cred, ok := s.creds[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(cred.hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	subject := canonicalSubject(username)
	return s.issue(ctx, subject, cred.role)
}

// DeveloperLogin authenticates the gallery management credential.
func (s *DefaultAuthService) DeveloperLogin(ctx context.Context, password string) (*Session, error) {
	if s.developerHash == nil {
		return nil, ErrDeveloperDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.developerHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, "developer", admin.RoleDeveloper)
}

// Validate checks the token signature, expiry and revocation state.
func (s *DefaultAuthService) Validate(ctx context.Context, tokenString string) (*Session, error) {
	subject, role, err := utils.ExtractClaims(tokenString)
	if err != nil {
		return nil, err
	}

	exists, err := s.tokens.Exists(ctx, authTokenPrefix+utils.HashToken(tokenString)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check token state: %w", err)
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	return &Session{Subject: subject, Role: role}, nil
}

// Logout revokes the token by dropping its hash from the store.
func (s *DefaultAuthService) Logout(ctx context.Context, tokenString string) error {
	if err := s.tokens.Del(ctx, authTokenPrefix+utils.HashToken(tokenString)).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *DefaultAuthService) issue(ctx context.Context, subject, role string) (*Session, error) {
	token, err := utils.GenerateToken(subject, role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.tokens.Set(ctx, authTokenPrefix+utils.HashToken(token), subject, tokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	utils.GetLogger().Info("login succeeded",
		zap.String("subject", subject),
		zap.String("role", role))
	return &Session{Subject: subject, Role: role, Token: token}, nil
}

// canonicalSubject maps a username onto the catalogue casing so issued
// tokens match stored appointment barber names.
func canonicalSubject(username string) string {
	username = strings.TrimSpace(username)
	if b, ok := models.GetBarberByName(username); ok {
		return b.Name
	}
	return strings.ToLower(username)
}
