package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-api/internal/models"
)

// Reader runs the aggregate queries. Dates are calendar days (UTC midnight)
// and ranges are half-open [from, to).
type Reader interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountRequestedBetween(ctx context.Context, from, to time.Time) (int64, error)
	// CountPerRequestedDay keys results by YYYY-MM-DD. Days without rows are absent.
	CountPerRequestedDay(ctx context.Context, from, to time.Time) (map[string]int64, error)
	Upcoming(ctx context.Context, from time.Time, statuses []string, limit int) ([]models.Appointment, error)
}
