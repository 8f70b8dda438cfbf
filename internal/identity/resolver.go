package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type UserFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Resolver turns an Authorization header into the internal user.
type Resolver struct {
	verifier Verifier
	users    UserFinder
}

func NewResolver(verifier Verifier, users UserFinder) *Resolver {
	return &Resolver{verifier: verifier, users: users}
}

// Resolve fails with Unauthenticated for a missing or rejected token and
// with Forbidden when the identity has no internal user row.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (*models.User, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return nil, err
	}

	sub, err := r.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	u, err := r.users.GetByID(ctx, sub)
	if err != nil {
		if httperr.Is(err, httperr.KindNotFound) {
			return nil, httperr.Forbidden("user_not_registered", "Usuario no registrado en el sistema.")
		}
		return nil, err
	}
	return u, nil
}
