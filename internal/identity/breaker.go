package identity

import (
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/BruksfildServices01/clinic-api/internal/httperr"
)

// newBreaker trips after consecutive transport or 5xx failures. Rejected
// credentials are a normal answer and do not count against the provider.
func newBreaker[T any](name string) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || httperr.KindOf(err) != httperr.KindInternal
		},
	})
}
