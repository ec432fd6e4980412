package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/view"
)

func (h *Handler) header(c echo.Context) view.Header {
	u, _ := auth.GetUser(c.Request().Context())
	return view.Header{User: u, SignInEnabled: clientFrom(c).Enabled()}
}

// IndexPage renders the filtered listing. A failed read renders an empty list.
func (h *Handler) IndexPage(c echo.Context) error {
	var filters model.Filters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.svc.ListRestaurants(c.Request().Context(), filters)
	if err != nil {
		h.log.Error("list restaurants", zap.Error(err))
		list = nil
	}
	return c.Render(http.StatusOK, view.PageIndex, view.IndexPage{
		Header:      h.header(c),
		Restaurants: list,
		Filters:     filters,
	})
}

func (h *Handler) RestaurantPage(c echo.Context) error {
	detail, err := h.svc.GetRestaurantDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Render(http.StatusNotFound, view.PageNotFound, view.NotFoundPage{Header: h.header(c)})
		}
		return h.httpError(err)
	}
	return c.Render(http.StatusOK, view.PageRestaurant, view.RestaurantPage{
		Header:     h.header(c),
		Restaurant: detail.Restaurant,
		Reviews:    detail.Reviews,
	})
}

func (h *Handler) SummaryFragment(c echo.Context) error {
	return c.Render(http.StatusOK, view.FragmentSummary, h.svc.SummarizeReviews(c.Request().Context(), c.Param("id")))
}

// SubmitReview handles the review dialog form.
func (h *Handler) SubmitReview(c echo.Context) error {
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
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrNoReview.Error())
	}
	review.UserID = uid

	id := c.Param("id")
	if _, err := h.svc.AddReview(ctx, id, &review); err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, "/restaurant/"+id)
}
