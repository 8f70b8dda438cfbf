package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
)

// Verifier checks an access token and returns its subject. Every
// implementation verifies the token; none trusts an unverified payload.
type Verifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

var (
	errMissingToken = httperr.Unauthenticated("missing_token", "Token no proporcionado.")
	errInvalidToken = httperr.Unauthenticated("invalid_token", "Token inválido o expirado.")
)

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}
