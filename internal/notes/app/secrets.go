package app

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/notes/pkg/cryptox"
)

const jwtSecretSize = 32

var errShortSecret = errors.New("NOTES_JWT_SECRET must be at least 32 bytes")

// loadJWTSecret resolves the token signing secret. An explicit value wins,
// then a secret file (created on first start). With neither, a random secret
// is generated and tokens do not survive a restart.
func loadJWTSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	switch {
	case cfg.JWTSecret != "":
		if len(cfg.JWTSecret) < jwtSecretSize {
			return nil, errShortSecret
		}
		return []byte(cfg.JWTSecret), nil

	case cfg.JWTSecretFile != "":
		secret, err := cryptox.LoadOrCreateSecret(cfg.JWTSecretFile, jwtSecretSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load JWT secret file: %w", err)
		}
		logger.Info("jwt secret loaded", slog.String("path", cfg.JWTSecretFile))
		return []byte(secret), nil

	default:
		secret := make([]byte, jwtSecretSize)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		logger.Warn("NOTES_JWT_SECRET not set, using a random per-process secret; tokens will not survive a restart")
		return secret, nil
	}
}
