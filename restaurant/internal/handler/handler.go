package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/friendly-eats/pkg/middleware"
	"github.com/Astemirdum/friendly-eats/pkg/validate"
	_ "github.com/Astemirdum/friendly-eats/restaurant/docs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/session"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/view"
)

type Handler struct {
	svc       RestaurantService
	provider  session.Provider
	validator session.TokenValidator
	store     sessions.Store
	secure    bool
	renderer  echo.Renderer
	uploads   string
	uploadURL string
	log       *zap.Logger
}

type Option func(h *Handler)

// WithAuth enables sign-in. provider may be nil, which leaves existing
// sessions readable but disables new sign-ins.
func WithAuth(provider session.Provider, validator session.TokenValidator, store sessions.Store, secure bool) Option {
	return func(h *Handler) {
		h.provider = provider
		h.validator = validator
		h.store = store
		h.secure = secure
	}
}

// WithUploads serves locally stored images from dir under urlPrefix.
func WithUploads(dir, urlPrefix string) Option {
	return func(h *Handler) {
		h.uploads = dir
		h.uploadURL = urlPrefix
	}
}

func WithRenderer(r echo.Renderer) Option {
	return func(h *Handler) {
		h.renderer = r
	}
}

func New(svc RestaurantService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		pageRPS = 50
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))
	e.Use(md.Metrics)

	e.Validator = validate.NewCustomValidator()
	if h.renderer != nil {
		e.Renderer = h.renderer
	}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.StaticFS("/static", view.Static())
	if h.uploads != "" {
		e.Static(h.uploadURL, h.uploads)
	}

	pages := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(pageRPS),
		h.Session,
	)
	pages.GET("/", h.IndexPage)
	pages.GET("/restaurant/:id", h.RestaurantPage)
	pages.GET("/restaurant/:id/summary", h.SummaryFragment)
	pages.POST("/restaurant/:id/reviews", h.SubmitReview, requireUser)

	pages.GET("/auth/login", h.Login)
	pages.GET("/auth/callback", h.Callback)
	pages.POST("/auth/logout", h.Logout)

	pages.GET("/ws/restaurants", h.LiveRestaurants)
	pages.GET("/ws/restaurant/:id", h.LiveRestaurant)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		h.Session,
	)
	api.GET("/restaurants", h.ListRestaurants)
	api.GET("/restaurants/:id", h.GetRestaurant)
	api.GET("/restaurants/:id/ratings", h.ListRatings)
	api.GET("/restaurants/:id/summary", h.GetSummary)

	api = api.Group("", requireUser)
	api.POST("/restaurants/:id/ratings", h.AddRating)
	api.POST("/restaurants/:id/image", h.UploadImage)
	api.POST("/samples", h.AddSamples)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
