package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
)

func TestTranslate(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_especialidades_nombre"}
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}

	cases := []struct {
		name string
		err  error
		op   operation
		kind httperr.Kind
		code string
	}{
		{"not found", gorm.ErrRecordNotFound, opRead, httperr.KindNotFound, "specialty_not_found"},
		{"unique on create", unique, opWrite, httperr.KindConflict, "duplicate_specialty"},
		{"wrapped unique", fmt.Errorf("insert: %w", unique), opWrite, httperr.KindConflict, "duplicate_specialty"},
		{"fk on write", fk, opWrite, httperr.KindInvalidReference, "invalid_reference"},
		{"fk on delete", fk, opDelete, httperr.KindConflict, "specialty_in_use"},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, opWrite, httperr.KindConflict, "duplicate_specialty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translate(tc.err, tc.op, entSpecialty)
			assert.Equal(t, tc.kind, httperr.KindOf(got))
			assert.True(t, httperr.IsBusiness(got, tc.code), got.Error())
		})
	}
}

func TestTranslate_PassThrough(t *testing.T) {
	assert.NoError(t, translate(nil, opRead, entPerson))

	be := httperr.InvalidTransition("invalid_state", "x")
	assert.Equal(t, be, translate(be, opWrite, entAppointment))

	raw := errors.New("connection reset")
	got := translate(raw, opRead, entPerson)
	assert.ErrorIs(t, got, raw)
	assert.Equal(t, httperr.KindInternal, httperr.KindOf(got))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%ana%", likePattern(" ana "))
	assert.Equal(t, `%50\%\_x%`, likePattern("50%_x"))
}
