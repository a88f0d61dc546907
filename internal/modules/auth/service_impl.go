package auth

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	username     string
	passwordHash []byte
	jwtKey       []byte
}

// NewService creates the admin auth service. The plaintext demo password
// is hashed once at startup so login always goes through bcrypt.
func NewService(username, password, jwtSecret string) (Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &service{
		username:     username,
		passwordHash: hash,
		jwtKey:       []byte(jwtSecret),
	}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &jwt.StandardClaims{
		Id:        uuid.NewString(),
		Subject:   username,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
