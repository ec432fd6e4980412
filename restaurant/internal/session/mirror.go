package session

// Mirror copies token changes into the session cookie until events is
// closed. It reports whether the signed-in user now differs from initialUID,
// in which case server-rendered state is stale.
func Mirror(events <-chan TokenChange, jar CookieJar, initialUID string, secure bool) (refresh bool) {
	uid := initialUID
	for ev := range events {
		if ev.User != nil && ev.IDToken != "" {
			SetCookie(jar, ev.IDToken, secure)
			uid = ev.User.UID
			continue
		}
		DeleteCookie(jar, secure)
		uid = ""
	}
	return uid != initialUID
}
