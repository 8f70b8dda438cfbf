package person

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/person"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	DNI       string
	Phone     *string
	Email     *string
	Address   *string
}

// RegisterPerson is idempotent on DNI: a known DNI returns the stored
// person untouched.
type RegisterPerson struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewRegisterPerson(repo domain.Repository, audit audit.Recorder) *RegisterPerson {
	return &RegisterPerson{repo: repo, audit: audit}
}

// Execute reports created=false when the DNI already existed.
func (uc *RegisterPerson) Execute(
	ctx context.Context,
	actor *uuid.UUID,
	in RegisterInput,
) (p *models.Person, created bool, err error) {

	if missing := validators.Missing(
		[2]string{"nombres", in.FirstName},
		[2]string{"apellidos", in.LastName},
		[2]string{"dni", in.DNI},
	); len(missing) > 0 {
		return nil, false, httperr.InvalidInput("invalid_input", "Datos obligatorios incompletos.", missing...)
	}

	dni := strings.TrimSpace(in.DNI)

	existing, err := uc.repo.FindByDNI(ctx, dni)
	if err == nil {
		return existing, false, nil
	}
	if !httperr.Is(err, httperr.KindNotFound) {
		return nil, false, err
	}

	p = &models.Person{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		DNI:       dni,
		Phone:     validators.Optional(in.Phone),
		Email:     validators.Optional(in.Email),
		Address:   validators.Optional(in.Address),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		// lost a race against another insert of the same DNI
		if httperr.Is(err, httperr.KindConflict) {
			winner, ferr := uc.repo.FindByDNI(ctx, dni)
			if ferr != nil {
				return nil, false, ferr
			}
			return winner, false, nil
		}
		return nil, false, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   actor,
		Action:   "person_created",
		Entity:   "persona",
		EntityID: &p.ID,
	})

	return p, true, nil
}
