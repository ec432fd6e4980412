package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/kafka"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/events"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/live"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
	restaurantRepo "github.com/Astemirdum/friendly-eats/restaurant/internal/repository"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/sample"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/storage"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/summary"
)

const sampleRestaurants = 20

type Service struct {
	log        *zap.Logger
	repo       restaurantRepo.Repository
	hub        *live.Hub
	uploader   storage.Uploader
	summarizer *summary.Summarizer
	publisher  events.Publisher
	now        func() time.Time
}

func NewService(
	repo restaurantRepo.Repository,
	hub *live.Hub,
	uploader storage.Uploader,
	summarizer *summary.Summarizer,
	publisher events.Publisher,
	log *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = events.NewPublisher(nil, "")
	}
	return &Service{
		log:        log.Named("service"),
		repo:       repo,
		hub:        hub,
		uploader:   uploader,
		summarizer: summarizer,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (s *Service) ListRestaurants(ctx context.Context, filters model.Filters) ([]model.Restaurant, error) {
	return s.repo.ListRestaurants(ctx, filters)
}

func (s *Service) GetRestaurant(ctx context.Context, id string) (model.Restaurant, error) {
	if id == "" {
		return model.Restaurant{}, errs.ErrNoRestaurantID
	}
	return s.repo.GetRestaurant(ctx, id)
}

// ListReviews returns the ratings of a restaurant, newest first.
func (s *Service) ListReviews(ctx context.Context, id string) ([]model.Rating, error) {
	if id == "" {
		return nil, errs.ErrNoRestaurantID
	}
	return s.repo.ListRatings(ctx, id)
}

// AddReview stores the review and folds it into the restaurant's aggregate
// in one transaction.
func (s *Service) AddReview(ctx context.Context, id string, review *model.Review) (model.Rating, error) {
	if id == "" {
		return model.Rating{}, errs.ErrNoRestaurantID
	}
	if review == nil {
		return model.Rating{}, errs.ErrNoReview
	}

	rating, agg, err := s.repo.AddRating(ctx, id, *review)
	if err != nil {
		s.log.Error("There was an error adding the rating to the restaurant",
			zap.String("restaurantId", id), zap.Error(err))
		return model.Rating{}, err
	}
	reviewsAdded.Inc()

	ev := kafka.ReviewEvent{
		RestaurantID: id,
		RatingID:     rating.ID,
		UserID:       rating.UserID,
		Rating:       rating.Rating,
		NumRatings:   agg.NumRatings,
		AvgRating:    agg.AvgRating,
		Timestamp:    rating.Timestamp,
	}
	if err := s.publisher.PublishReviewAdded(ev); err != nil {
		s.log.Warn("publish review event", zap.String("restaurantId", id), zap.Error(err))
	}
	return rating, nil
}

// UpdateRestaurantImage uploads the image and points the restaurant's photo
// at it. A completed upload is not rolled back when the update fails.
func (s *Service) UpdateRestaurantImage(ctx context.Context, id string, image *model.Image) (string, error) {
	if id == "" {
		return "", errs.ErrNoRestaurantID
	}
	if image == nil || image.Name == "" || image.Body == nil {
		return "", errs.ErrNoImage
	}

	url, err := s.uploader.Upload(ctx, storage.ObjectPath(id, image.Name), image.ContentType, image.Body)
	if err != nil {
		s.log.Error("Error processing request", zap.String("restaurantId", id), zap.Error(err))
		return "", errors.Wrap(err, "upload image")
	}
	if err := s.repo.UpdatePhoto(ctx, id, url); err != nil {
		s.log.Error("Error processing request", zap.String("restaurantId", id), zap.Error(err))
		return "", err
	}
	imagesUploaded.Inc()
	return url, nil
}

// SummarizeReviews never fails: any problem yields the fallback text.
func (s *Service) SummarizeReviews(ctx context.Context, id string) model.Summary {
	reviews, err := s.ListReviews(ctx, id)
	if err != nil {
		s.log.Error("summary reviews", zap.String("restaurantId", id), zap.Error(err))
		summaries.WithLabelValues("fallback").Inc()
		return model.Summary{Text: summary.FallbackText}
	}
	text, err := s.summarizer.Summarize(ctx, id, reviews)
	if err != nil {
		s.log.Error("summarize", zap.String("restaurantId", id), zap.Error(err))
		summaries.WithLabelValues("fallback").Inc()
		return model.Summary{Text: summary.FallbackText}
	}
	summaries.WithLabelValues("generated").Inc()
	return model.Summary{Text: text, Generated: true}
}

// WarmSummary precomputes the summary after a review lands so the next page
// view hits the cache.
func (s *Service) WarmSummary(ctx context.Context, ev kafka.ReviewEvent) error {
	reviews, err := s.ListReviews(ctx, ev.RestaurantID)
	if err != nil {
		return err
	}
	if _, err := s.summarizer.Summarize(ctx, ev.RestaurantID, reviews); err != nil {
		if errors.Is(err, errs.ErrConfigurationMissing) {
			return nil
		}
		return err
	}
	return nil
}

// AddSampleRestaurants seeds random restaurants with consistent aggregates.
func (s *Service) AddSampleRestaurants(ctx context.Context) (int, error) {
	return s.AddSampleRestaurantsN(ctx, sampleRestaurants)
}

func (s *Service) AddSampleRestaurantsN(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, errors.Wrap(errs.ErrInvalidArgument, "sample count must be positive")
	}
	now := s.now()
	samples := sample.Generate(rand.New(rand.NewSource(now.UnixNano())), n, now)
	if err := s.repo.InsertSamples(ctx, samples); err != nil {
		s.log.Error("There was an error adding the document", zap.Error(err))
		return 0, err
	}
	return len(samples), nil
}
