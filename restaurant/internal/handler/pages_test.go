package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/friendly-eats/pkg/openid"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/handler"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/model"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/session"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/view"

	service_mocks "github.com/Astemirdum/friendly-eats/restaurant/internal/handler/mocks"
)

type provider struct{}

func (provider) AuthURL(state string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + url.QueryEscape(state)
}

func (provider) Exchange(_ context.Context, code string) (openid.Identity, error) {
	if code != "ok-code" {
		return openid.Identity{}, errs.ErrUnauthorized
	}
	return openid.Identity{
		IDToken: goodToken,
		Claims:  jwt.MapClaims{"sub": "u1", "name": "Ada"},
	}, nil
}

func pagesRouter(t *testing.T, withProvider bool) (*echo.Echo, *service_mocks.MockRestaurantService) {
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	var p session.Provider
	if withProvider {
		p = provider{}
	}
	store := sessions.NewCookieStore([]byte("test-secret-test-secret-test-sec"))
	return newRouter(t,
		handler.WithAuth(p, tokenValidator{}, store, false),
		handler.WithRenderer(renderer),
	)
}

func serve(e *echo.Echo, r *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPages_Index(t *testing.T) {
	t.Parallel()
	e, svc := pagesRouter(t, true)
	svc.EXPECT().
		ListRestaurants(gomock.Any(), model.Filters{Category: "Italian"}).
		Return([]model.Restaurant{{ID: "r1", Name: "Best Pizza", Category: "Italian", City: "Boston", Price: 1}}, nil)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/?category=Italian", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Best Pizza")
	require.Contains(t, w.Body.String(), "Sign In with Google")
}

func TestPages_IndexDegradesToEmpty(t *testing.T) {
	t.Parallel()
	e, svc := pagesRouter(t, false)
	svc.EXPECT().ListRestaurants(gomock.Any(), model.Filters{}).Return(nil, errs.ErrBackendUnavailable)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/", http.NoBody),
		&http.Cookie{Name: session.CookieName, Value: goodToken})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "No restaurants yet.")
	require.Contains(t, w.Body.String(), "Sign Out")
	require.NotContains(t, w.Body.String(), "Sign In with Google")
}

func TestPages_Restaurant(t *testing.T) {
	t.Parallel()
	e, svc := pagesRouter(t, true)
	svc.EXPECT().GetRestaurantDetail(gomock.Any(), "r1").Return(model.RestaurantDetail{
		Restaurant: model.Restaurant{ID: "r1", Name: "Best Pizza"},
	}, nil)
	svc.EXPECT().GetRestaurantDetail(gomock.Any(), "nope").Return(model.RestaurantDetail{}, errs.ErrNotFound)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/restaurant/r1", http.NoBody),
		&http.Cookie{Name: session.CookieName, Value: goodToken})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `<dialog id="review-dialog">`)

	w = serve(e, httptest.NewRequest(http.MethodGet, "/restaurant/nope", http.NoBody))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Restaurant not found")
}

func TestPages_SummaryFragment(t *testing.T) {
	t.Parallel()
	e, svc := pagesRouter(t, true)
	svc.EXPECT().SummarizeReviews(gomock.Any(), "r1").Return(model.Summary{Text: "Great crust.", Generated: true})

	w := serve(e, httptest.NewRequest(http.MethodGet, "/restaurant/r1/summary", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Great crust.")
	require.Contains(t, w.Body.String(), "✨ Summarized with Gemini")
}

func TestPages_SubmitReview(t *testing.T) {
	t.Parallel()
	e, svc := pagesRouter(t, true)
	svc.EXPECT().
		AddReview(gomock.Any(), "r1", &model.Review{Rating: 5, Text: "superb", UserID: "u1"}).
		Return(model.Rating{ID: "x1"}, nil)

	form := url.Values{"rating": {"5"}, "text": {"superb"}}
	r := httptest.NewRequest(http.MethodPost, "/restaurant/r1/reviews", strings.NewReader(form.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := serve(e, r, &http.Cookie{Name: session.CookieName, Value: goodToken})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/restaurant/r1", w.Header().Get(echo.HeaderLocation))

	r = httptest.NewRequest(http.MethodPost, "/restaurant/r1/reviews", strings.NewReader(form.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w = serve(e, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_SignInFlow(t *testing.T) {
	t.Parallel()
	e, _ := pagesRouter(t, true)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/auth/login", http.NoBody))
	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)
	stateCookie := cookie(w, "friendlyeats_oauth")
	require.NotNil(t, stateCookie)

	w = serve(e, httptest.NewRequest(http.MethodGet, "/auth/callback?code=ok-code&state=wrong", http.NoBody), stateCookie)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(e, httptest.NewRequest(http.MethodGet, "/auth/callback?code=ok-code&state="+url.QueryEscape(state), http.NoBody), stateCookie)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get(echo.HeaderLocation))
	sess := cookie(w, session.CookieName)
	require.NotNil(t, sess)
	require.Equal(t, goodToken, sess.Value)
}

func TestAuth_CallbackRejectedCode(t *testing.T) {
	t.Parallel()
	e, _ := pagesRouter(t, true)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/auth/login", http.NoBody))
	loc, err := url.Parse(w.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	stateCookie := cookie(w, "friendlyeats_oauth")

	w = serve(e, httptest.NewRequest(http.MethodGet,
		"/auth/callback?code=bad&state="+url.QueryEscape(loc.Query().Get("state")), http.NoBody), stateCookie)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Nil(t, cookie(w, session.CookieName))
}

func TestAuth_LoginWithoutProvider(t *testing.T) {
	t.Parallel()
	e, _ := pagesRouter(t, false)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/auth/login", http.NoBody))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()
	e, _ := pagesRouter(t, true)

	w := serve(e, httptest.NewRequest(http.MethodPost, "/auth/logout", http.NoBody),
		&http.Cookie{Name: session.CookieName, Value: goodToken})
	require.Equal(t, http.StatusSeeOther, w.Code)
	c := cookie(w, session.CookieName)
	require.NotNil(t, c)
	require.Empty(t, c.Value)
	require.Less(t, c.MaxAge, 0)

	w = serve(e, httptest.NewRequest(http.MethodPost, "/auth/logout", http.NoBody))
	require.Equal(t, http.StatusNoContent, w.Code)
}
