package sample_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/sample"
)

func TestGenerate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	samples := sample.Generate(rand.New(rand.NewSource(42)), 20, now)
	require.Len(t, samples, 20)

	for _, s := range samples {
		r := s.Restaurant
		require.NotEmpty(t, r.Name)
		require.NotEmpty(t, r.City)
		require.NotEmpty(t, r.Category)
		require.GreaterOrEqual(t, r.Price, 1)
		require.LessOrEqual(t, r.Price, 4)
		require.False(t, r.Timestamp.After(now))

		require.Equal(t, len(s.Ratings), r.NumRatings)
		var sum float64
		for _, rt := range s.Ratings {
			require.GreaterOrEqual(t, rt.Rating, 1.0)
			require.LessOrEqual(t, rt.Rating, 5.0)
			sum += rt.Rating
		}
		require.InDelta(t, sum, r.SumRating, 1e-9)
		if r.NumRatings == 0 {
			require.Zero(t, r.AvgRating)
			continue
		}
		require.InDelta(t, sum/float64(r.NumRatings), r.AvgRating, 1e-9)
	}

	again := sample.Generate(rand.New(rand.NewSource(42)), 20, now)
	require.Equal(t, samples, again)
}
