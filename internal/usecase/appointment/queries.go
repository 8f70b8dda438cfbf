package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

// SearchLimit caps name search results.
const SearchLimit = 10

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.Filter,
	opts query.Options,
) (query.Result[models.Appointment], error) {
	return uc.repo.List(ctx, f, opts)
}

func (uc *ListAppointments) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetByID(ctx, id)
}

// Search returns up to SearchLimit appointments whose client name contains
// term. A blank term yields an empty list.
func (uc *ListAppointments) Search(ctx context.Context, term string) ([]models.Appointment, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Appointment{}, nil
	}
	return uc.repo.SearchByClientName(ctx, term, SearchLimit)
}
