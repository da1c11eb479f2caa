package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/starburger/foodcart-backend/internal/modules/user"
)

const tokenLifetime = 24 * time.Hour

type claims struct {
	IsStaff bool `json:"is_staff"`
	jwt.StandardClaims
}

type service struct {
	userRepo user.Repository
	jwtKey   []byte
}

// NewService creates a new auth service signing tokens with the given key.
func NewService(userRepo user.Repository, jwtKey []byte) Service {
	return &service{userRepo: userRepo, jwtKey: jwtKey}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	expirationTime := time.Now().Add(tokenLifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		IsStaff: account.IsStaff,
		StandardClaims: jwt.StandardClaims{
			Subject:   account.ID.String(),
			ExpiresAt: expirationTime.Unix(),
		},
	})
	return token.SignedString(s.jwtKey)
}

func (s *service) Verify(tokenString string) (*Identity, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &Identity{UserID: parsed.Subject, IsStaff: parsed.IsStaff}, nil
}
