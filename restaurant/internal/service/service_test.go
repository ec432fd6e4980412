package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/kafka"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/live"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
	repo_mocks "github.com/Astemirdum/friendly-eats/restaurant/internal/repository/mocks"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/service"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/summary"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type publisher struct {
	mu     sync.Mutex
	events []kafka.ReviewEvent
}

func (p *publisher) PublishReviewAdded(ev kafka.ReviewEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

type uploader struct {
	object string
	body   []byte
	err    error
}

func (u *uploader) Upload(_ context.Context, object, _ string, body io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	u.object, u.body = object, b
	return "https://storage.googleapis.com/bucket/" + object, nil
}

type generator struct {
	text string
	err  error
}

func (g generator) Generate(context.Context, string) (string, error) {
	return g.text, g.err
}

type deps struct {
	repo *repo_mocks.MockRepository
	pub  *publisher
	up   *uploader
	hub  *live.Hub
}

func newService(t *testing.T, gen summary.Generator) (*service.Service, deps) {
	c := gomock.NewController(t)
	log := zap.NewExample().Named("test")
	d := deps{
		repo: repo_mocks.NewMockRepository(c),
		pub:  &publisher{},
		up:   &uploader{},
		hub:  live.NewHub(nil, log),
	}
	sum := summary.NewSummarizer(gen, nil, time.Second, time.Hour, log)
	return service.NewService(d.repo, d.hub, d.up, sum, d.pub, log), d
}

func TestService_AddReview(t *testing.T) {
	type mockBehavior func(d deps)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	review := &model.Review{Rating: 4, Text: "good", UserID: "u1"}

	tests := []struct {
		name         string
		restaurantID string
		review       *model.Review
		mockBehavior mockBehavior
		wantErr      error
		wantEvents   int
	}{
		{
			name:         "ok",
			restaurantID: "r1",
			review:       review,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().AddRating(gomock.Any(), "r1", *review).Return(
					model.Rating{ID: "x1", RestaurantID: "r1", Rating: 4, Text: "good", UserID: "u1", Timestamp: now},
					model.Aggregate{NumRatings: 2, SumRating: 6, AvgRating: 3},
					nil,
				)
			},
			wantEvents: 1,
		},
		{
			name:         "no restaurant id",
			review:       review,
			mockBehavior: func(d deps) {},
			wantErr:      errs.ErrInvalidArgument,
		},
		{
			name:         "no review",
			restaurantID: "r1",
			mockBehavior: func(d deps) {},
			wantErr:      errs.ErrInvalidArgument,
		},
		{
			name:         "unknown restaurant",
			restaurantID: "nope",
			review:       review,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().AddRating(gomock.Any(), "nope", *review).
					Return(model.Rating{}, model.Aggregate{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, d := newService(t, nil)
			test.mockBehavior(d)

			rating, err := svc.AddReview(context.Background(), test.restaurantID, test.review)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				require.Empty(t, d.pub.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "x1", rating.ID)
			require.Len(t, d.pub.events, test.wantEvents)
			require.Equal(t, kafka.ReviewEvent{
				RestaurantID: "r1", RatingID: "x1", UserID: "u1", Rating: 4,
				NumRatings: 2, AvgRating: 3, Timestamp: now,
			}, d.pub.events[0])
		})
	}
}

func TestService_UpdateRestaurantImage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, d := newService(t, nil)
		want := "https://storage.googleapis.com/bucket/images/r1/pic.png"
		d.repo.EXPECT().UpdatePhoto(gomock.Any(), "r1", want).Return(nil)

		url, err := svc.UpdateRestaurantImage(context.Background(), "r1", &model.Image{
			Name: "C:\\photos\\pic.png", ContentType: "image/png", Body: strings.NewReader("png"),
		})
		require.NoError(t, err)
		require.Equal(t, want, url)
		require.Equal(t, "images/r1/pic.png", d.up.object)
		require.Equal(t, []byte("png"), d.up.body)
	})

	t.Run("invalid", func(t *testing.T) {
		svc, _ := newService(t, nil)
		_, err := svc.UpdateRestaurantImage(context.Background(), "", &model.Image{Name: "a.png", Body: bytes.NewReader(nil)})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = svc.UpdateRestaurantImage(context.Background(), "r1", nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		_, err = svc.UpdateRestaurantImage(context.Background(), "r1", &model.Image{Body: bytes.NewReader(nil)})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("upload fails", func(t *testing.T) {
		svc, d := newService(t, nil)
		d.up.err = errs.ErrBackendUnavailable
		_, err := svc.UpdateRestaurantImage(context.Background(), "r1", &model.Image{Name: "a.png", Body: strings.NewReader("x")})
		require.ErrorIs(t, err, errs.ErrBackendUnavailable)
	})

	t.Run("restaurant missing", func(t *testing.T) {
		svc, d := newService(t, nil)
		d.repo.EXPECT().UpdatePhoto(gomock.Any(), "r1", gomock.Any()).Return(errs.ErrNotFound)
		_, err := svc.UpdateRestaurantImage(context.Background(), "r1", &model.Image{Name: "a.png", Body: strings.NewReader("x")})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_SummarizeReviews(t *testing.T) {
	reviews := []model.Rating{{ID: "b", Text: "tasty"}, {ID: "a", Text: "slow service"}}

	tests := []struct {
		name    string
		gen     summary.Generator
		reviews []model.Rating
		listErr error
		want    model.Summary
	}{
		{
			name:    "generated",
			gen:     generator{text: " Tasty food, slow service. \n"},
			reviews: reviews,
			want:    model.Summary{Text: "Tasty food, slow service.", Generated: true},
		},
		{
			name: "zero reviews still asks the model",
			gen:  generator{text: "No reviews yet."},
			want: model.Summary{Text: "No reviews yet.", Generated: true},
		},
		{
			name:    "no api key",
			reviews: reviews,
			want:    model.Summary{Text: summary.FallbackText},
		},
		{
			name:    "model error",
			gen:     generator{err: errors.New("quota")},
			reviews: reviews,
			want:    model.Summary{Text: summary.FallbackText},
		},
		{
			name:    "reviews unavailable",
			gen:     generator{text: "unused"},
			listErr: errs.ErrBackendUnavailable,
			want:    model.Summary{Text: summary.FallbackText},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, d := newService(t, test.gen)
			d.repo.EXPECT().ListRatings(gomock.Any(), "r1").Return(test.reviews, test.listErr)

			require.Equal(t, test.want, svc.SummarizeReviews(context.Background(), "r1"))
		})
	}
}

func TestService_WarmSummary(t *testing.T) {
	svc, d := newService(t, nil)
	d.repo.EXPECT().ListRatings(gomock.Any(), "r1").Return(nil, nil)
	require.NoError(t, svc.WarmSummary(context.Background(), kafka.ReviewEvent{RestaurantID: "r1"}))
}

func TestService_AddSampleRestaurants(t *testing.T) {
	svc, d := newService(t, nil)
	d.repo.EXPECT().InsertSamples(gomock.Any(), gomock.Len(3)).Return(nil)

	n, err := svc.AddSampleRestaurantsN(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = svc.AddSampleRestaurantsN(context.Background(), 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestService_Snapshots(t *testing.T) {
	t.Run("invalid id is a no-op", func(t *testing.T) {
		svc, d := newService(t, nil)
		unsub := svc.GetRestaurantSnapshotByID("", func(model.Restaurant) { t.Error("unexpected callback") })
		unsub()
		unsub = svc.GetReviewsSnapshotByRestaurantID("", func([]model.Rating) { t.Error("unexpected callback") })
		unsub()
		require.Zero(t, d.hub.Subscribers())
	})

	t.Run("initial listing", func(t *testing.T) {
		svc, d := newService(t, nil)
		filters := model.Filters{City: "Paris"}
		d.repo.EXPECT().ListRestaurants(gomock.Any(), filters).Return([]model.Restaurant{{ID: "r1"}}, nil)

		got := make(chan []model.Restaurant, 1)
		unsub := svc.GetRestaurantsSnapshot(filters, func(rs []model.Restaurant) { got <- rs })
		defer unsub()

		select {
		case rs := <-got:
			require.Equal(t, "r1", rs[0].ID)
		case <-time.After(time.Second):
			t.Fatal("no snapshot")
		}
	})

	t.Run("restaurant stream", func(t *testing.T) {
		svc, d := newService(t, nil)
		d.repo.EXPECT().GetRestaurant(gomock.Any(), "r1").Return(model.Restaurant{ID: "r1", NumRatings: 1}, nil)
		d.repo.EXPECT().ListRatings(gomock.Any(), "r1").Return([]model.Rating{{ID: "x"}}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		ch := svc.StreamRestaurant(ctx, "r1")
		select {
		case detail := <-ch:
			require.Equal(t, "r1", detail.Restaurant.ID)
			require.Len(t, detail.Reviews, 1)
		case <-time.After(time.Second):
			t.Fatal("no snapshot")
		}
		cancel()
		for range ch {
		}
	})

	t.Run("empty id stream is closed", func(t *testing.T) {
		svc, _ := newService(t, nil)
		_, ok := <-svc.StreamRestaurant(context.Background(), "")
		require.False(t, ok)
	})
}
