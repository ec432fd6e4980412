package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

// InsertSamples writes every sample restaurant and its ratings in one transaction.
func (r *repository) InsertSamples(ctx context.Context, samples []model.Sample) error {
	return pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, s := range samples {
			var id string
			err := tx.QueryRow(ctx,
				`insert into restaurants (name, category, city, price, avg_rating, num_ratings, sum_rating, photo, created_at)
				values (@name, @category, @city, @price, @avg_rating, @num_ratings, @sum_rating, @photo, @created_at)
				returning id`,
				pgx.NamedArgs{
					"name":        s.Restaurant.Name,
					"category":    s.Restaurant.Category,
					"city":        s.Restaurant.City,
					"price":       s.Restaurant.Price,
					"avg_rating":  s.Restaurant.AvgRating,
					"num_ratings": s.Restaurant.NumRatings,
					"sum_rating":  s.Restaurant.SumRating,
					"photo":       s.Restaurant.Photo,
					"created_at":  s.Restaurant.Timestamp,
				}).Scan(&id)
			if err != nil {
				return errors.Wrap(err, "insert restaurant")
			}
			if len(s.Ratings) == 0 {
				continue
			}

			ins := qb.Insert(ratingsTableName).Columns("restaurant_id", "rating", "text", "user_id", "created_at")
			for _, rt := range s.Ratings {
				ins = ins.Values(id, rt.Rating, rt.Text, rt.UserID, rt.Timestamp)
			}
			q, args, err := ins.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, q, args...); err != nil {
				return errors.Wrap(err, "insert ratings")
			}
		}
		r.log.Info("samples inserted", zap.Int("restaurants", len(samples)))
		return nil
	})
}
