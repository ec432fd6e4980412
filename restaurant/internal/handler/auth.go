package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/session"
)

const (
	clientKey    = "session.client"
	stateSession = "friendlyeats_oauth"
	stateKey     = "state"
)

// Session restores the signed-in user from the session cookie. A token that
// fails verification signs the browser out.
func (h *Handler) Session(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		client := session.NewClient(h.provider, h.validator)
		c.Set(clientKey, client)

		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}
		ctx := c.Request().Context()
		user, err := client.Authenticate(ctx, cookie.Value)
		if err != nil {
			h.log.Debug("session token rejected", zap.Error(err))
			session.DeleteCookie(c, h.secure)
			return next(c)
		}
		c.SetRequest(c.Request().WithContext(auth.SetUser(ctx, user)))
		return next(c)
	}
}

func requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.GetUserID(c.Request().Context()); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return next(c)
	}
}

func clientFrom(c echo.Context) *session.Client {
	if client, ok := c.Get(clientKey).(*session.Client); ok {
		return client
	}
	return session.NewClient(nil, nil)
}

func currentUID(c echo.Context) string {
	if u, ok := auth.GetUser(c.Request().Context()); ok {
		return u.UID
	}
	return ""
}

func (h *Handler) stateStore(c echo.Context) (*sessions.Session, error) {
	if h.store == nil {
		return nil, errors.Wrap(errs.ErrConfigurationMissing, "session store")
	}
	sess, err := h.store.Get(c.Request(), stateSession)
	if sess == nil {
		return nil, err
	}
	// an undecodable cookie still yields a fresh session
	return sess, nil
}

// Login redirects to the identity provider's account chooser.
func (h *Handler) Login(c echo.Context) error {
	client := clientFrom(c)
	state := uuid.NewString()
	url, err := client.SignInURL(state)
	if err != nil {
		h.log.Error("Error signing in with Google", zap.Error(err))
		return h.httpError(err)
	}

	sess, err := h.stateStore(c)
	if err != nil {
		return h.httpError(err)
	}
	sess.Values[stateKey] = state
	sess.Options = &sessions.Options{Path: "/auth", MaxAge: 300, HttpOnly: true, Secure: h.secure, SameSite: http.SameSiteLaxMode}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, url)
}

func (h *Handler) Callback(c echo.Context) error {
	sess, err := h.stateStore(c)
	if err != nil {
		return h.httpError(err)
	}
	want, _ := sess.Values[stateKey].(string)
	if want == "" || c.QueryParam("state") != want {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid oauth state")
	}
	delete(sess.Values, stateKey)
	sess.Options = &sessions.Options{Path: "/auth", MaxAge: -1}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return h.httpError(err)
	}

	client := clientFrom(c)
	events, stop := client.OnIDTokenChanged()
	_, err = client.CompleteSignIn(c.Request().Context(), c.QueryParam("code"))
	stop()
	session.Mirror(events, c, currentUID(c), h.secure)
	if err != nil {
		h.log.Error("Error signing in with Google", zap.Error(err))
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie. Browsers that were signed in are sent
// back to the listing so server-rendered state is rebuilt.
func (h *Handler) Logout(c echo.Context) error {
	client := clientFrom(c)
	events, stop := client.OnIDTokenChanged()
	client.SignOut()
	stop()
	if session.Mirror(events, c, currentUID(c), h.secure) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.NoContent(http.StatusNoContent)
}
