package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/friendly-eats/restaurant/internal/live"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

func (s *Service) restaurantsFetcher(filters model.Filters) live.Fetcher[[]model.Restaurant] {
	return func(ctx context.Context) ([]model.Restaurant, error) {
		return s.repo.ListRestaurants(ctx, filters)
	}
}

func (s *Service) restaurantFetcher(id string) live.Fetcher[model.Restaurant] {
	return func(ctx context.Context) (model.Restaurant, error) {
		return s.repo.GetRestaurant(ctx, id)
	}
}

func (s *Service) reviewsFetcher(id string) live.Fetcher[[]model.Rating] {
	return func(ctx context.Context) ([]model.Rating, error) {
		return s.repo.ListRatings(ctx, id)
	}
}

// GetRestaurantDetail loads a restaurant and its reviews concurrently.
func (s *Service) GetRestaurantDetail(ctx context.Context, id string) (model.RestaurantDetail, error) {
	var detail model.RestaurantDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.GetRestaurant(gctx, id)
		detail.Restaurant = r
		return err
	})
	g.Go(func() error {
		reviews, err := s.ListReviews(gctx, id)
		detail.Reviews = reviews
		return err
	})
	if err := g.Wait(); err != nil {
		return model.RestaurantDetail{}, err
	}
	return detail, nil
}

func (s *Service) GetRestaurantsSnapshot(filters model.Filters, cb func([]model.Restaurant)) live.Unsubscribe {
	return live.Watch(s.hub, live.RestaurantsTopic, s.restaurantsFetcher(filters), cb)
}

func (s *Service) GetRestaurantSnapshotByID(id string, cb func(model.Restaurant)) live.Unsubscribe {
	if id == "" {
		s.log.Error("Error: Invalid ID received", zap.String("op", "GetRestaurantSnapshotByID"))
		return func() {}
	}
	return live.Watch(s.hub, live.RestaurantTopic(id), s.restaurantFetcher(id), cb)
}

func (s *Service) GetReviewsSnapshotByRestaurantID(id string, cb func([]model.Rating)) live.Unsubscribe {
	if id == "" {
		s.log.Error("Error: Invalid ID received", zap.String("op", "GetReviewsSnapshotByRestaurantID"))
		return func() {}
	}
	return live.Watch(s.hub, live.RestaurantTopic(id), s.reviewsFetcher(id), cb)
}

// StreamRestaurants emits the filtered listing now and after every change
// until ctx is done.
func (s *Service) StreamRestaurants(ctx context.Context, filters model.Filters) <-chan []model.Restaurant {
	return live.Stream(ctx, s.hub, live.RestaurantsTopic, s.restaurantsFetcher(filters))
}

// StreamRestaurant emits the restaurant with its reviews. An empty id yields
// a closed channel.
func (s *Service) StreamRestaurant(ctx context.Context, id string) <-chan model.RestaurantDetail {
	if id == "" {
		s.log.Error("Error: Invalid ID received", zap.String("op", "StreamRestaurant"))
		ch := make(chan model.RestaurantDetail)
		close(ch)
		return ch
	}
	fetch := func(ctx context.Context) (model.RestaurantDetail, error) {
		return s.GetRestaurantDetail(ctx, id)
	}
	return live.Stream(ctx, s.hub, live.RestaurantTopic(id), fetch)
}
