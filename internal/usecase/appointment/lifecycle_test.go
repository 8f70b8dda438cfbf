package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
)

type fixture struct {
	repo    *memRepo
	rec     *recorder
	counter counter
	clock   *timezone.Clock
	actor   *uuid.UUID

	create     *CreatePublicAppointment
	internal   *CreateInternalAppointment
	confirm    *ConfirmAppointment
	attend     *AttendAppointment
	cancel     *CancelAppointment
	reschedule *RescheduleAppointment
	remove     *DeleteAppointment
	list       *ListAppointments
}

func newFixture() *fixture {
	repo := newMemRepo()
	rec := &recorder{}
	c := counter{}
	clock := timezone.FixedClock("America/Lima", time.Date(2025, 1, 8, 21, 30, 0, 0, time.UTC))
	doctors := memDoctors{
		3: {ID: 3, Active: true},
		4: {ID: 4, Active: false},
	}
	actor := uuid.New()

	return &fixture{
		repo:       repo,
		rec:        rec,
		counter:    c,
		clock:      clock,
		actor:      &actor,
		create:     NewCreatePublicAppointment(repo, rec, c),
		internal:   NewCreateInternalAppointment(repo, rec, c),
		confirm:    NewConfirmAppointment(repo, doctors, clock, rec, c),
		attend:     NewAttendAppointment(repo, rec, c),
		cancel:     NewCancelAppointment(repo, rec, c),
		reschedule: NewRescheduleAppointment(repo, rec),
		remove:     NewDeleteAppointment(repo, rec),
		list:       NewListAppointments(repo),
	}
}

func (f *fixture) book(t *testing.T) *models.Appointment {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), CreatePublicInput{
		FirstName: " Ana ",
		Phone:     "999",
		Date:      "2025-01-10",
		Time:      "09:00",
	})
	require.NoError(t, err)
	return ap
}

func strPtr(s string) *string { return &s }

func TestCreatePublic_PendingWithClient(t *testing.T) {
	f := newFixture()

	ap := f.book(t)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	require.NotNil(t, ap.ClientID)
	require.NotNil(t, ap.Client)
	assert.Equal(t, "Ana", ap.Client.FirstName)
	assert.Nil(t, ap.Client.LastName)
	assert.Nil(t, ap.Symptoms)
	assert.Nil(t, ap.DoctorID)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), ap.RequestedDate)
	assert.Equal(t, "09:00", ap.RequestedTime)
	assert.Equal(t, []string{"appointment_requested"}, f.rec.actions())
	assert.Equal(t, 1, f.counter["pendiente"])
}

func TestCreatePublic_MissingFields(t *testing.T) {
	f := newFixture()

	_, err := f.create.Execute(context.Background(), CreatePublicInput{FirstName: "Ana"})

	var be httperr.BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, httperr.KindInvalidInput, be.Kind)
	assert.Equal(t, []string{"telefono", "fecha_solicitada", "hora_solicitada"}, be.Fields)
	assert.Empty(t, f.repo.rows)
}

func TestCreatePublic_BadDateOrTime(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreatePublicInput{FirstName: "A", Phone: "1", Date: "10/01/2025", Time: "09:00"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = f.create.Execute(ctx, CreatePublicInput{FirstName: "A", Phone: "1", Date: "2025-01-10", Time: "9am"})
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestCreateInternal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	booked := f.book(t)

	ap, err := f.internal.Execute(ctx, f.actor, CreateInternalInput{
		ClientID: *booked.ClientID,
		Date:     "2025-01-12",
		Time:     "10:15",
		Symptoms: "fiebre",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "fiebre", *ap.Symptoms)

	_, err = f.internal.Execute(ctx, f.actor, CreateInternalInput{ClientID: 999, Date: "2025-01-12", Time: "10:15"})
	assert.Equal(t, httperr.KindInvalidReference, httperr.KindOf(err))

	_, err = f.internal.Execute(ctx, f.actor, CreateInternalInput{})
	var be httperr.BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, []string{"cliente_id", "fecha_solicitada", "hora_solicitada"}, be.Fields)
}

func TestConfirm_AssignsDoctorAndStamps(t *testing.T) {
	f := newFixture()
	ap := f.book(t)

	got, err := f.confirm.Execute(context.Background(), f.actor, ap.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	assert.Equal(t, uint(3), *got.DoctorID)
	// 21:30 UTC is 16:30 in Lima on the same day
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), *got.ConfirmedDate)
	assert.Equal(t, "16:30", *got.ConfirmedTime)
	assert.Equal(t, f.actor, f.rec.events[len(f.rec.events)-1].UserID)
}

func TestConfirm_DoctorChecks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	_, err := f.confirm.Execute(ctx, f.actor, ap.ID, 0)
	assert.Equal(t, httperr.KindInvalidInput, httperr.KindOf(err))

	_, err = f.confirm.Execute(ctx, f.actor, ap.ID, 99)
	assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
	assert.Equal(t, httperr.KindInvalidReference, httperr.KindOf(err))

	_, err = f.confirm.Execute(ctx, f.actor, ap.ID, 4)
	assert.True(t, httperr.IsBusiness(err, "doctor_inactive"))

	stored, _ := f.repo.GetByID(ctx, ap.ID)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
	assert.Nil(t, stored.DoctorID)
}

func TestConfirm_OnlyFromPending(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	_, err := f.confirm.Execute(ctx, f.actor, ap.ID, 3)
	require.NoError(t, err)

	_, err = f.confirm.Execute(ctx, f.actor, ap.ID, 3)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	_, err = f.confirm.Execute(ctx, f.actor, 404, 3)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestAttend_RejectsPendingAndKeepsStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	_, err := f.attend.Execute(ctx, f.actor, ap.ID)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	stored, _ := f.repo.GetByID(ctx, ap.ID)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestAttend_FromConfirmed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	_, err := f.confirm.Execute(ctx, f.actor, ap.ID, 3)
	require.NoError(t, err)

	got, err := f.attend.Execute(ctx, f.actor, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAttended), got.Status)
	assert.Equal(t, 1, f.counter["atendida"])

	_, err = f.cancel.Execute(ctx, f.actor, ap.ID)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestCancel_ClearsDoctor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	_, err := f.confirm.Execute(ctx, f.actor, ap.ID, 3)
	require.NoError(t, err)

	got, err := f.cancel.Execute(ctx, f.actor, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.Nil(t, got.DoctorID)

	last := f.rec.events[len(f.rec.events)-1]
	assert.Equal(t, "appointment_cancelled", last.Action)

	_, err = f.confirm.Execute(ctx, f.actor, ap.ID, 3)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestReschedule(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	got, err := f.reschedule.Execute(ctx, f.actor, ap.ID, RescheduleInput{
		Date:     strPtr("2025-02-01"),
		Time:     strPtr("15:45"),
		Symptoms: strPtr("  tos "),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got.RequestedDate)
	assert.Equal(t, "15:45", got.RequestedTime)
	assert.Equal(t, "tos", *got.Symptoms)
	assert.Equal(t, string(domain.StatusPending), got.Status)

	got, err = f.reschedule.Execute(ctx, f.actor, ap.ID, RescheduleInput{Symptoms: strPtr(" ")})
	require.NoError(t, err)
	assert.Nil(t, got.Symptoms)
}

func TestReschedule_RefusesStatusAndDoctor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)
	doctor := uint(3)

	_, err := f.reschedule.Execute(ctx, f.actor, ap.ID, RescheduleInput{Status: strPtr("atendida")})
	assert.True(t, httperr.IsBusiness(err, "status_change_not_allowed"))

	_, err = f.reschedule.Execute(ctx, f.actor, ap.ID, RescheduleInput{DoctorID: &doctor})
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	_, err = f.reschedule.Execute(ctx, f.actor, ap.ID, RescheduleInput{})
	assert.True(t, httperr.IsBusiness(err, "nothing_to_update"))

	stored, _ := f.repo.GetByID(ctx, ap.ID)
	assert.Equal(t, string(domain.StatusPending), stored.Status)
	assert.Nil(t, stored.DoctorID)
}

func TestDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ap := f.book(t)

	require.NoError(t, f.remove.Execute(ctx, f.actor, ap.ID))

	_, err := f.list.Get(ctx, ap.ID)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(f.remove.Execute(ctx, f.actor, ap.ID)))
}

func TestSearch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := f.create.Execute(ctx, CreatePublicInput{
			FirstName: "María",
			LastName:  "Quispe",
			Phone:     "999",
			Date:      "2025-01-10",
			Time:      "09:00",
		})
		require.NoError(t, err)
	}
	f.book(t)

	got, err := f.list.Search(ctx, "QUISPE")
	require.NoError(t, err)
	assert.Len(t, got, SearchLimit)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	got, err = f.list.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
