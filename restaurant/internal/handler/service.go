package handler

import (
	"context"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RestaurantService interface {
	ListRestaurants(ctx context.Context, filters model.Filters) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (model.Restaurant, error)
	GetRestaurantDetail(ctx context.Context, id string) (model.RestaurantDetail, error)
	ListReviews(ctx context.Context, id string) ([]model.Rating, error)
	AddReview(ctx context.Context, id string, review *model.Review) (model.Rating, error)
	UpdateRestaurantImage(ctx context.Context, id string, image *model.Image) (string, error)
	SummarizeReviews(ctx context.Context, id string) model.Summary
	AddSampleRestaurants(ctx context.Context) (int, error)
	StreamRestaurants(ctx context.Context, filters model.Filters) <-chan []model.Restaurant
	StreamRestaurant(ctx context.Context, id string) <-chan model.RestaurantDetail
}

var _ RestaurantService = (*service.Service)(nil)
