package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListRestaurants(ctx context.Context, filters model.Filters) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (model.Restaurant, error)
	ListRatings(ctx context.Context, restaurantID string) ([]model.Rating, error)
	AddRating(ctx context.Context, restaurantID string, review model.Review) (model.Rating, model.Aggregate, error)
	UpdatePhoto(ctx context.Context, restaurantID, photoURL string) error
	InsertSamples(ctx context.Context, samples []model.Sample) error
}

var _ Repository = (*repository)(nil)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	restaurantsTableName = `restaurants`
	ratingsTableName     = `ratings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var restaurantColumns = []string{
	"id", "name", "category", "city", "price",
	"avg_rating", "num_ratings", "sum_rating", "photo", "created_at",
}

var ratingColumns = []string{
	"id", "restaurant_id", "rating", "text", "user_id", "created_at",
}

func (r *repository) ListRestaurants(ctx context.Context, filters model.Filters) ([]model.Restaurant, error) {
	query, args, err := ApplyQueryFilters(
		qb.Select(restaurantColumns...).From(restaurantsTableName), filters,
	).ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListRestaurants", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list restaurants")
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Restaurant])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) GetRestaurant(ctx context.Context, id string) (model.Restaurant, error) {
	query, args, err := qb.Select(restaurantColumns...).
		From(restaurantsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Restaurant{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Restaurant{}, mapErr(err)
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Restaurant])
	if err != nil {
		return model.Restaurant{}, mapErr(err)
	}
	return item, nil
}

// ListRatings returns the restaurant's ratings, newest first.
func (r *repository) ListRatings(ctx context.Context, restaurantID string) ([]model.Rating, error) {
	query, args, err := qb.Select(ratingColumns...).
		From(ratingsTableName).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Rating])
	if err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *repository) UpdatePhoto(ctx context.Context, restaurantID, photoURL string) error {
	const q = `update restaurants set photo = @photo where id = @id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":    restaurantID,
		"photo": photoURL,
	})
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
