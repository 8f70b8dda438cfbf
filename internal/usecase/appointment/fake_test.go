package appointment

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/domain/query"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type memRepo struct {
	mu      sync.Mutex
	seq     uint
	rows    map[uint]models.Appointment
	clients map[uint]models.Client
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[uint]models.Appointment{}, clients: map[uint]models.Client{}}
}

func (m *memRepo) Create(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ap.ClientID != nil {
		if _, ok := m.clients[*ap.ClientID]; !ok {
			return httperr.InvalidReference("invalid_reference", "missing client")
		}
	}
	m.seq++
	ap.ID = m.seq
	ap.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.rows[ap.ID] = *ap
	return nil
}

func (m *memRepo) CreateWithClient(ctx context.Context, c *models.Client, ap *models.Appointment) error {
	m.mu.Lock()
	m.seq++
	c.ID = m.seq
	m.clients[c.ID] = *c
	m.mu.Unlock()

	ap.ClientID = &c.ID
	if err := m.Create(ctx, ap); err != nil {
		return err
	}
	ap.Client = c
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ap, ok := m.rows[id]
	if !ok {
		return nil, httperr.NotFound("appointment_not_found", "no")
	}
	return &ap, nil
}

func (m *memRepo) List(_ context.Context, f domain.Filter, opts query.Options) (query.Result[models.Appointment], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, ap := range m.rows {
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return query.Result[models.Appointment]{Items: out, Total: int64(len(out))}, nil
}

func (m *memRepo) SearchByClientName(_ context.Context, term string, limit int) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	term = strings.ToLower(term)
	var out []models.Appointment
	for _, ap := range m.rows {
		if ap.ClientID == nil {
			continue
		}
		c := m.clients[*ap.ClientID]
		last := ""
		if c.LastName != nil {
			last = *c.LastName
		}
		if strings.Contains(strings.ToLower(c.FirstName), term) || strings.Contains(strings.ToLower(last), term) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Mutate applies fn to a copy and keeps it only on success.
func (m *memRepo) Mutate(_ context.Context, id uint, fn domain.MutateFunc, _ ...string) (*models.Appointment, error) {
	m.mu.Lock()
	ap, ok := m.rows[id]
	m.mu.Unlock()
	if !ok {
		return nil, httperr.NotFound("appointment_not_found", "no")
	}
	if err := fn(&ap); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.rows[id] = ap
	m.mu.Unlock()
	return &ap, nil
}

func (m *memRepo) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return httperr.NotFound("appointment_not_found", "no")
	}
	delete(m.rows, id)
	return nil
}

type memDoctors map[uint]models.Doctor

func (d memDoctors) GetByID(_ context.Context, id uint) (*models.Doctor, error) {
	doc, ok := d[id]
	if !ok {
		return nil, httperr.NotFound("doctor_not_found", "no")
	}
	return &doc, nil
}

type recorder struct {
	events []audit.Event
}

func (r *recorder) Dispatch(_ context.Context, ev audit.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Action)
	}
	return out
}

type counter map[string]int

func (c counter) Transition(estado string) { c[estado]++ }
