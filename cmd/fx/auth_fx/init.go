package auth_fx

import (
	"go.uber.org/fx"

	"darkshield/internal/api/controllers"
	"darkshield/internal/config"
	"darkshield/internal/services"
)

var Module = fx.Provide(
	provideTokenService, provideIdentityVerifier, provideAuthService, provideAuthController,
)

func provideTokenService(cfg *config.Config) services.TokenServiceInterface {
	return services.NewTokenService(cfg.JWTSecret)
}

func provideIdentityVerifier(cfg *config.Config) services.IdentityVerifierInterface {
	return services.NewGoogleIdentityVerifier(cfg.GoogleClientID)
}

func provideAuthService(tokens services.TokenServiceInterface, cfg *config.Config) services.AuthServiceInterface {
	return services.NewAuthService(tokens, cfg.AdminUsername, cfg.AdminPassword)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
