package services

import (
	"context"

	"darkshield/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthService authenticates the single admin account. There is no user
// table; the credential pair lives in configuration.
type AuthService struct {
	tokens        TokenServiceInterface
	adminUsername string
	adminPassword string
}

func NewAuthService(tokens TokenServiceInterface, adminUsername, adminPassword string) AuthServiceInterface {
	return &AuthService{
		tokens:        tokens,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func (a *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username != a.adminUsername || password != a.adminPassword {
		return "", utils.ErrInvalidCredentials
	}
	return a.tokens.Issue(username, RoleAdmin)
}
