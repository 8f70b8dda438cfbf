package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
	"github.com/BruksfildServices01/clinic-api/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestGuards(t *testing.T) {
	cases := []struct {
		status     Status
		confirm    bool
		attend     bool
		cancel     bool
		reschedule bool
	}{
		{StatusPending, true, false, true, true},
		{StatusConfirmed, false, true, true, true},
		{StatusAttended, false, false, false, false},
		{StatusCancelled, false, false, false, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.confirm, CanConfirm(tc.status) == nil, "confirm %s", tc.status)
		assert.Equal(t, tc.attend, CanAttend(tc.status) == nil, "attend %s", tc.status)
		assert.Equal(t, tc.cancel, CanCancel(tc.status) == nil, "cancel %s", tc.status)
		assert.Equal(t, tc.reschedule, CanReschedule(tc.status) == nil, "reschedule %s", tc.status)
	}
}

func TestGuards_ReturnInvalidTransition(t *testing.T) {
	err := CanAttend(StatusPending)
	require.Error(t, err)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
}

func TestConfirm(t *testing.T) {
	ap := New(uintPtr(1), time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "09:00", nil)
	lima, _ := time.LoadLocation("America/Lima")
	now := time.Date(2025, 1, 8, 16, 45, 0, 0, lima)

	require.NoError(t, Confirm(ap, 3, now))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.DoctorID)
	assert.Equal(t, uint(3), *ap.DoctorID)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), *ap.ConfirmedDate)
	assert.Equal(t, "16:45", *ap.ConfirmedTime)
}

func TestAttend_OnlyFromConfirmed(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	err := Attend(ap)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(StatusPending), ap.Status)

	ap.Status = string(StatusConfirmed)
	require.NoError(t, Attend(ap))
	assert.Equal(t, string(StatusAttended), ap.Status)
}

func TestCancel_ClearsDoctor(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed), DoctorID: uintPtr(3)}

	require.NoError(t, Cancel(ap))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Nil(t, ap.DoctorID)

	assert.Error(t, Cancel(ap))
}

func TestReschedule(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending), RequestedTime: "09:00"}
	hour := "11:30"
	day := time.Date(2025, 2, 1, 15, 0, 0, 0, time.UTC)

	require.NoError(t, Reschedule(ap, Changes{Date: &day, Hour: &hour}))
	assert.Equal(t, "11:30", ap.RequestedTime)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), ap.RequestedDate)

	ap.Status = string(StatusAttended)
	assert.Error(t, Reschedule(ap, Changes{Hour: &hour}))
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("cancelada")
	assert.True(t, ok)
	assert.Equal(t, StatusCancelled, st)

	_, ok = ParseStatus("CANCELADA")
	assert.False(t, ok)
}
