package circuitbreaker

import (
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var (
	// MaxNumOfFailingRequests ...
	MaxNumOfFailingRequests = 10
	// FailingRatio ...
	FailingRatio = 0.6
)

// NewCircuitBreaker is a factory function returning a *gobreaker.CircuitBreaker
// with a default state-changing function that activates if the overall number
// of failing requests have reached a tweakable MaxNumOfFailingRequests cap and
// the failing ratio has met the FailingRatio.
// Errors for which isSuccessful returns true are returned to the caller
// without being counted as failures. A nil isSuccessful counts every error.
func NewCircuitBreaker(
	name string, isSuccessful func(err error) bool,
) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         name,
		ReadyToTrip:  ReadyToTrip,
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("circuit breaker %s changed state from %s to %s", name, from, to)
		},
	})
}

// ReadyToTrip tells whether the counts of a breaker are enough to open it.
func ReadyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests <= 0 {
		return false
	}
	ratio := float64(counts.TotalFailures) / float64(counts.Requests)
	return int(counts.Requests) > MaxNumOfFailingRequests && ratio >= FailingRatio
}
