package services

import (
	"context"
	"strings"

	"google.golang.org/api/idtoken"

	"darkshield/pkg/utils"
)

// IdentityVerifierInterface resolves a third-party identity token to a
// verified email address. Any failure collapses to an error; callers never
// learn why a token was rejected.
type IdentityVerifierInterface interface {
	VerifyEmail(ctx context.Context, idTokenString string) (string, error)
}

// GoogleIdentityVerifier validates Google ID tokens against the web
// application's OAuth client id.
type GoogleIdentityVerifier struct {
	clientID string
}

func NewGoogleIdentityVerifier(clientID string) IdentityVerifierInterface {
	return &GoogleIdentityVerifier{clientID: clientID}
}

func (g *GoogleIdentityVerifier) VerifyEmail(ctx context.Context, idTokenString string) (string, error) {
	if strings.TrimSpace(idTokenString) == "" {
		return "", utils.ErrInvalidIdentityToken
	}

	payload, err := idtoken.Validate(ctx, idTokenString, g.clientID)
	if err != nil {
		return "", utils.ErrInvalidIdentityToken
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return "", utils.ErrInvalidIdentityToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", utils.ErrInvalidIdentityToken
	}
	return email, nil
}
