package config

import (
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config carries every process-wide setting. The credential and secret
// defaults mirror the values the service has always shipped with; override
// them through the environment.
type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	PostgresURL    string `env:"POSTGRES_URL"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"supersecretkeysupersecretkey1234"`
	AdminUsername  string `env:"ADMIN_USERNAME" envDefault:"ABC"`
	AdminPassword  string `env:"ADMIN_PASSWORD" envDefault:"1234"`
	GoogleClientID string `env:"GOOGLE_CLIENT_ID" envDefault:"824307065796-gqvk08dm58i01pmmrbrens2ke0v927fj.apps.googleusercontent.com"`
	CORSOrigin     string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("Failed to parse environment config: %v", err)
	}
	return cfg
}
