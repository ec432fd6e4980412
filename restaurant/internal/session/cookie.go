package session

import (
	"net/http"
	"time"
)

// CookieName carries the signed-in user's ID token to the server.
const CookieName = "__session"

// CookieJar is satisfied by echo.Context.
type CookieJar interface {
	SetCookie(cookie *http.Cookie)
}

func SetCookie(jar CookieJar, idToken string, secure bool) {
	jar.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    idToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func DeleteCookie(jar CookieJar, secure bool) {
	jar.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
