package circuit_breaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/friendly-eats/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	var (
		errService = errors.New("service error")
		ok         = func() error { return nil }
		fail       = func() error { return errService }
	)

	tests := []struct {
		name string
		run  func(t *testing.T, cb circuit_breaker.CircuitBreaker)
	}{
		{
			name: "stays closed on success",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 20; i++ {
					require.NoError(t, cb.Call(ok))
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "opens after failure ratio",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					require.ErrorIs(t, cb.Call(fail), errService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())
				require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
			},
		},
		{
			name: "half-open recovers",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(fail)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())
				time.Sleep(60 * time.Millisecond)

				require.NoError(t, cb.Call(ok))
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.NoError(t, cb.Call(ok))
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name: "half-open failure reopens",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(fail)
				}
				time.Sleep(60 * time.Millisecond)
				require.ErrorIs(t, cb.Call(fail), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())
			},
		},
		{
			name: "skipped errors are not recorded",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 10; i++ {
					err := cb.Call(func() error { return circuit_breaker.Skip(context.Canceled) })
					require.ErrorIs(t, err, context.Canceled)
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
				require.NoError(t, circuit_breaker.Skip(nil))
				require.NoError(t, cb.Call(ok))
			},
		},
		{
			name: "skipped errors do not close half-open",
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					_ = cb.Call(fail)
				}
				time.Sleep(60 * time.Millisecond)
				_ = cb.Call(func() error { return circuit_breaker.Skip(context.Canceled) })
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.Equal(t, "half-open", cb.State().String())
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 2)
			tt.run(t, cb)
		})
	}
}
