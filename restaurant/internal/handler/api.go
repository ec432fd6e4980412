package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
)

const maxImageSize = 10 << 20 // 10 MB

// ListRestaurants godoc
// @Summary      List restaurants
// @Tags         restaurants
// @Produce      json
// @Param        category query string false "category"
// @Param        city     query string false "city"
// @Param        price    query string false "price tier as dollar signs" example($$)
// @Param        sort     query string false "Rating or Review"
// @Success      200 {array} model.Restaurant
// @Failure      500 {object} echo.HTTPError
// @Router       /restaurants [get]
func (h *Handler) ListRestaurants(c echo.Context) error {
	var filters model.Filters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.svc.ListRestaurants(c.Request().Context(), filters)
	if err != nil {
		return h.httpError(err)
	}
	if list == nil {
		list = []model.Restaurant{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetRestaurant godoc
// @Summary      Get a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        id path string true "restaurant id"
// @Success      200 {object} model.Restaurant
// @Failure      404 {object} echo.HTTPError
// @Router       /restaurants/{id} [get]
func (h *Handler) GetRestaurant(c echo.Context) error {
	r, err := h.svc.GetRestaurant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// ListRatings godoc
// @Summary      List the ratings of a restaurant, newest first
// @Tags         ratings
// @Produce      json
// @Param        id path string true "restaurant id"
// @Success      200 {array} model.Rating
// @Router       /restaurants/{id}/ratings [get]
func (h *Handler) ListRatings(c echo.Context) error {
	ratings, err := h.svc.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	if ratings == nil {
		ratings = []model.Rating{}
	}
	return c.JSON(http.StatusOK, ratings)
}

// AddRating godoc
// @Summary      Add a rating and update the restaurant's aggregate
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        id     path string       true "restaurant id"
// @Param        review body model.Review true "review"
// @Success      201 {object} model.Rating
// @Failure      400 {object} echo.HTTPError
// @Failure      401 {object} echo.HTTPError
// @Failure      404 {object} echo.HTTPError
// @Router       /restaurants/{id}/ratings [post]
func (h *Handler) AddRating(c echo.Context) error {
	ctx := c.Request().Context()
	uid, err := auth.GetUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var review model.Review
	if err := c.Bind(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	review.UserID = uid

	rating, err := h.svc.AddReview(ctx, c.Param("id"), &review)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rating)
}

// UploadImage godoc
// @Summary      Upload a restaurant photo
// @Tags         restaurants
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path     string true "restaurant id"
// @Param        file formData file   true "image"
// @Success      200 {object} model.ImageResponse
// @Failure      400 {object} echo.HTTPError
// @Failure      401 {object} echo.HTTPError
// @Router       /restaurants/{id}/image [post]
func (h *Handler) UploadImage(c echo.Context) error {
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxImageSize)
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Wrap(errs.ErrNoImage, err.Error()).Error())
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	url, err := h.svc.UpdateRestaurantImage(c.Request().Context(), c.Param("id"), &model.Image{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.ImageResponse{Photo: url})
}

// GetSummary godoc
// @Summary      One-sentence AI summary of a restaurant's reviews
// @Tags         ratings
// @Produce      json
// @Param        id path string true "restaurant id"
// @Success      200 {object} model.Summary
// @Router       /restaurants/{id}/summary [get]
func (h *Handler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SummarizeReviews(c.Request().Context(), c.Param("id")))
}

// AddSamples godoc
// @Summary      Add random restaurants with reviews
// @Tags         restaurants
// @Produce      json
// @Success      201 {object} model.SamplesResponse
// @Failure      401 {object} echo.HTTPError
// @Router       /samples [post]
func (h *Handler) AddSamples(c echo.Context) error {
	n, err := h.svc.AddSampleRestaurants(c.Request().Context())
	if err != nil {
		h.log.Error("add samples", zap.Error(err))
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, model.SamplesResponse{Restaurants: n})
}
