package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

func TestApplyRating(t *testing.T) {
	t.Parallel()
	agg := model.Aggregate{}

	agg = applyRating(agg, 4)
	require.Equal(t, model.Aggregate{NumRatings: 1, SumRating: 4, AvgRating: 4}, agg)

	agg = applyRating(agg, 2)
	require.Equal(t, model.Aggregate{NumRatings: 2, SumRating: 6, AvgRating: 3}, agg)

	for i := 0; i < 8; i++ {
		agg = applyRating(agg, 5)
	}
	require.Equal(t, 10, agg.NumRatings)
	require.InDelta(t, 46.0, agg.SumRating, 1e-9)
	require.InDelta(t, 4.6, agg.AvgRating, 1e-9)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	require.True(t, isRetryable(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	require.True(t, isRetryable(fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected})))
	require.False(t, isRetryable(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	require.False(t, isRetryable(errors.New("boom")))
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	require.NoError(t, mapErr(nil))
	require.ErrorIs(t, mapErr(pgx.ErrNoRows), errs.ErrNotFound)
	require.ErrorIs(t, mapErr(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}), errs.ErrNotFound)
	require.ErrorIs(t, mapErr(context.Canceled), context.Canceled)
	require.ErrorIs(t, mapErr(errors.New("dial tcp: connection refused")), errs.ErrBackendUnavailable)

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	require.Equal(t, unique, mapErr(unique))
}
