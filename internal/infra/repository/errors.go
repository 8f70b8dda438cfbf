package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
)

// Postgres SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type operation int

const (
	opRead operation = iota
	opWrite
	opDelete
)

// entity names a table for error codes (English) and messages (Spanish).
type entity struct {
	Code  string
	Label string
}

var (
	entPerson      = entity{"person", "Persona"}
	entUser        = entity{"user", "Usuario"}
	entSpecialty   = entity{"specialty", "Especialidad"}
	entDoctor      = entity{"doctor", "Médico"}
	entClient      = entity{"client", "Cliente"}
	entAppointment = entity{"appointment", "Cita"}
	entHistory     = entity{"history_note", "Historial"}
	entContact     = entity{"contact_message", "Mensaje de contacto"}
)

func notFound(e entity) error {
	return httperr.NotFound(e.Code+"_not_found", e.Label+" no encontrado(a).")
}

// translate maps driver errors onto the business taxonomy. Business errors
// pass through untouched; anything unrecognised is wrapped as internal.
func translate(err error, op operation, e entity) error {
	if err == nil {
		return nil
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(e)
	}

	code := ""
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code = pgErr.Code
	} else if errors.Is(err, gorm.ErrDuplicatedKey) {
		code = pgUniqueViolation
	} else if errors.Is(err, gorm.ErrForeignKeyViolated) {
		code = pgForeignKeyViolation
	}

	switch code {
	case pgUniqueViolation:
		return httperr.Conflict("duplicate_"+e.Code, e.Label+" ya existe.")
	case pgForeignKeyViolation:
		if op == opDelete {
			return httperr.Conflict(e.Code+"_in_use", e.Label+" tiene registros asociados y no puede eliminarse.")
		}
		return httperr.InvalidReference("invalid_reference", "Uno de los identificadores referenciados no existe.")
	}

	return fmt.Errorf("%s: %w", e.Code, err)
}
