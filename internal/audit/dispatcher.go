package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-api/internal/models"
)

type Event struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder is what use cases and handlers depend on.
type Recorder interface {
	Dispatch(ctx context.Context, ev Event)
}

type Store interface {
	Write(ctx context.Context, entry *models.AuditLog) error
}

// Dispatcher writes each event inline. A failed write is logged and counted
// but never reaches the caller.
type Dispatcher struct {
	store    Store
	log      *zap.Logger
	onFailed func()
}

func NewDispatcher(store Store, log *zap.Logger, onFailed func()) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{store: store, log: log, onFailed: onFailed}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	entry := &models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
	}
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			entry.Metadata = string(b)
		}
	}

	if err := d.store.Write(context.WithoutCancel(ctx), entry); err != nil {
		d.log.Warn("audit write failed",
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
			zap.Error(err),
		)
		if d.onFailed != nil {
			d.onFailed()
		}
	}
}

type nop struct{}

func (nop) Dispatch(context.Context, Event) {}

// Nop discards every event.
func Nop() Recorder { return nop{} }
