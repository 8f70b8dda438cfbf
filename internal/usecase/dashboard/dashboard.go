package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/dashboard"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

const (
	SeriesDays    = 7
	UpcomingLimit = 5
)

type Stats struct {
	Today     int64 `json:"citas_hoy"`
	Pending   int64 `json:"pendientes"`
	Confirmed int64 `json:"confirmadas"`
	Attended  int64 `json:"atendidas"`
	Cancelled int64 `json:"canceladas"`
}

type StatusCount struct {
	Status string `json:"estado"`
	Total  int64  `json:"total"`
}

type DayCount struct {
	Date  string `json:"fecha"`
	Total int64  `json:"total"`
}

// Dashboard computes the panel aggregates against the clinic's calendar.
type Dashboard struct {
	reader domain.Reader
	clock  *timezone.Clock
}

func New(reader domain.Reader, clock *timezone.Clock) *Dashboard {
	return &Dashboard{reader: reader, clock: clock}
}

func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	counts, err := d.reader.CountByStatus(ctx)
	if err != nil {
		return Stats{}, err
	}

	today := d.clock.Today()
	n, err := d.reader.CountRequestedBetween(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Today:     n,
		Pending:   counts[string(appointment.StatusPending)],
		Confirmed: counts[string(appointment.StatusConfirmed)],
		Attended:  counts[string(appointment.StatusAttended)],
		Cancelled: counts[string(appointment.StatusCancelled)],
	}, nil
}

// ByStatus always lists every status, zero-filled, in lifecycle order.
func (d *Dashboard) ByStatus(ctx context.Context) ([]StatusCount, error) {
	counts, err := d.reader.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]StatusCount, 0, len(appointment.AllStatuses))
	for _, st := range appointment.AllStatuses {
		out = append(out, StatusCount{Status: string(st), Total: counts[string(st)]})
	}
	return out, nil
}

// LastSevenDays counts appointments per requested day over the window
// ending today.
func (d *Dashboard) LastSevenDays(ctx context.Context) ([]DayCount, error) {
	today := d.clock.Today()
	from := today.AddDate(0, 0, -(SeriesDays - 1))

	counts, err := d.reader.CountPerRequestedDay(ctx, from, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return DenseSeries(from, SeriesDays, counts), nil
}

func (d *Dashboard) Upcoming(ctx context.Context) ([]models.Appointment, error) {
	statuses := make([]string, 0, len(appointment.OpenStatuses))
	for _, st := range appointment.OpenStatuses {
		statuses = append(statuses, string(st))
	}

	items, err := d.reader.Upcoming(ctx, d.clock.Today(), statuses, UpcomingLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Appointment{}
	}
	return items, nil
}

// DenseSeries emits exactly days entries starting at from, filling gaps with 0.
func DenseSeries(from time.Time, days int, counts map[string]int64) []DayCount {
	out := make([]DayCount, 0, days)
	for i := 0; i < days; i++ {
		key := from.AddDate(0, 0, i).Format(timezone.DateLayout)
		out = append(out, DayCount{Date: key, Total: counts[key]})
	}
	return out
}
