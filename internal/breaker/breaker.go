package breaker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type State string

const (
	StateClosed   State = "CLOSED"
	StateOpen     State = "OPEN"
	StateHalfOpen State = "HALF_OPEN"
)

// ErrCircuitOpen is returned by Execute when the circuit rejects a call
// without attempting it.
type ErrCircuitOpen struct{}

func (ErrCircuitOpen) Error() string {
	return "circuit breaker is open"
}

func IsCircuitOpen(err error) bool {
	_, ok := err.(ErrCircuitOpen)
	return ok
}

// CircuitBreaker guards a single logical dependency. One instance must be
// shared by every call site for that dependency; per-call-site instances
// would defeat failure aggregation.
//
// The consecutive-failure counter in CLOSED is only cleared by a full reset
// from HALF_OPEN, not by an isolated success between failures.
type CircuitBreaker struct {
	name              string
	failureThreshold  int
	recoveryTimeout   time.Duration
	halfOpenSuccesses int
	logger            *zap.Logger
	now               func() time.Time

	mu               sync.Mutex
	state            State
	failureCount     int
	lastFailureTime  time.Time
	halfOpenProgress int
}

func New(name string, failureThreshold int, recoveryTimeout time.Duration, halfOpenSuccesses int, logger *zap.Logger) *CircuitBreaker {
	return &CircuitBreaker{
		name:              name,
		failureThreshold:  failureThreshold,
		recoveryTimeout:   recoveryTimeout,
		halfOpenSuccesses: halfOpenSuccesses,
		logger:            logger,
		now:               time.Now,
		state:             StateClosed,
	}
}

// Execute runs op under the breaker. It returns ErrCircuitOpen without
// calling op when the circuit is open and inside the recovery window;
// otherwise it runs op, records its outcome and propagates its error.
func (cb *CircuitBreaker) Execute(ctx context.Context, op func(ctx context.Context) error) error {
	if err := cb.allow(); err != nil {
		return err
	}

	if err := op(ctx); err != nil {
		cb.recordFailure()
		return err
	}

	cb.recordSuccess()
	return nil
}

func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return nil
	}

	elapsed := cb.now().Sub(cb.lastFailureTime)
	if elapsed <= cb.recoveryTimeout {
		cb.logger.Debug("circuit open, rejecting call",
			zap.String("dependency", cb.name),
			zap.Duration("elapsed", elapsed))
		return ErrCircuitOpen{}
	}

	cb.state = StateHalfOpen
	cb.halfOpenProgress = 0
	cb.logger.Info("circuit half-open, allowing trial call", zap.String("dependency", cb.name))
	return nil
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateHalfOpen {
		return
	}

	cb.halfOpenProgress++
	if cb.halfOpenProgress >= cb.halfOpenSuccesses {
		cb.state = StateClosed
		cb.failureCount = 0
		cb.halfOpenProgress = 0
		cb.logger.Info("circuit closed after recovery", zap.String("dependency", cb.name))
	}
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.logger.Warn("trial call failed, circuit open again", zap.String("dependency", cb.name))
	case StateClosed:
		cb.failureCount++
		cb.logger.Warn("dependency call failed",
			zap.String("dependency", cb.name),
			zap.Int("failures", cb.failureCount),
			zap.Int("threshold", cb.failureThreshold))
		if cb.failureCount >= cb.failureThreshold {
			cb.state = StateOpen
			cb.logger.Warn("failure threshold reached, circuit open", zap.String("dependency", cb.name))
		}
	}
}

// State returns the current state. Mostly useful for tests and diagnostics.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
