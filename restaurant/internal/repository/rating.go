package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

const maxTxAttempts = 5

// applyRating folds one rating into the aggregate.
func applyRating(agg model.Aggregate, rating float64) model.Aggregate {
	num := agg.NumRatings + 1
	sum := agg.SumRating + rating
	return model.Aggregate{
		NumRatings: num,
		SumRating:  sum,
		AvgRating:  sum / float64(num),
	}
}

// AddRating stores the rating and updates the restaurant aggregate in one
// transaction. The restaurant row is locked for the read-modify-write;
// serialization failures and deadlocks are retried.
func (r *repository) AddRating(ctx context.Context, restaurantID string, review model.Review) (model.Rating, model.Aggregate, error) {
	var (
		rating model.Rating
		agg    model.Aggregate
		err    error
	)
	backoff := 20 * time.Millisecond
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
			var txErr error
			rating, agg, txErr = r.addRatingTx(ctx, tx, restaurantID, review)
			return txErr
		})
		if err == nil || !isRetryable(err) {
			break
		}
		r.log.Warn("AddRating retry", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return model.Rating{}, model.Aggregate{}, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	if err != nil {
		return model.Rating{}, model.Aggregate{}, mapErr(err)
	}
	return rating, agg, nil
}

func (r *repository) addRatingTx(ctx context.Context, tx pgx.Tx, restaurantID string, review model.Review) (model.Rating, model.Aggregate, error) {
	var cur model.Aggregate
	err := tx.QueryRow(ctx,
		`select num_ratings, sum_rating, avg_rating from restaurants where id = @id for update`,
		pgx.NamedArgs{"id": restaurantID},
	).Scan(&cur.NumRatings, &cur.SumRating, &cur.AvgRating)
	if err != nil {
		return model.Rating{}, model.Aggregate{}, err
	}

	next := applyRating(cur, review.Rating)
	if _, err = tx.Exec(ctx,
		`update restaurants
		set num_ratings = @num, sum_rating = @sum, avg_rating = @avg
		where id = @id`,
		pgx.NamedArgs{
			"id":  restaurantID,
			"num": next.NumRatings,
			"sum": next.SumRating,
			"avg": next.AvgRating,
		}); err != nil {
		return model.Rating{}, model.Aggregate{}, errors.Wrap(err, "update aggregate")
	}

	rows, err := tx.Query(ctx,
		`insert into ratings (restaurant_id, rating, text, user_id, created_at)
		values (@restaurant_id, @rating, @text, @user_id, now())
		returning id, restaurant_id, rating, text, user_id, created_at`,
		pgx.NamedArgs{
			"restaurant_id": restaurantID,
			"rating":        review.Rating,
			"text":          review.Text,
			"user_id":       review.UserID,
		})
	if err != nil {
		return model.Rating{}, model.Aggregate{}, errors.Wrap(err, "insert rating")
	}
	defer rows.Close()

	stored, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Rating])
	if err != nil {
		return model.Rating{}, model.Aggregate{}, errors.Wrap(err, "insert rating")
	}
	return stored, next, nil
}
