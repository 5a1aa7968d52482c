package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"

	tokenTTL = 30 * time.Minute
)

type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type TokenServiceInterface interface {
	Issue(subject, role string) (string, error)
	Validate(tokenString string) bool
	ExtractSubject(tokenString string) string
	ExtractRole(tokenString string) string
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) TokenServiceInterface {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(subject, role string) (string, error) {
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// Validate reports whether the token parses, is signed with our secret and
// has not expired. It never returns an error to the caller.
func (s *TokenService) Validate(tokenString string) bool {
	_, err := s.parse(tokenString)
	return err == nil
}

func (s *TokenService) ExtractSubject(tokenString string) string {
	claims, err := s.parse(tokenString)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// ExtractRole returns the role claim, or "" when the token carries none.
// Callers treat an absent role on a locally issued token as RoleAdmin.
func (s *TokenService) ExtractRole(tokenString string) string {
	claims, err := s.parse(tokenString)
	if err != nil {
		return ""
	}
	return claims.Role
}
