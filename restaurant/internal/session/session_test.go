package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/pkg/auth0"
	"github.com/Astemirdum/friendly-eats/pkg/openid"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
)

type fakeProvider struct {
	identity openid.Identity
	err      error
}

func (p *fakeProvider) AuthURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (p *fakeProvider) Exchange(context.Context, string) (openid.Identity, error) {
	return p.identity, p.err
}

type fakeValidator struct{}

func (fakeValidator) ValidateToken(_ context.Context, token string) (interface{}, error) {
	if token != "id-token" {
		return nil, errors.New("token is expired")
	}
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{Subject: "u1"},
		CustomClaims:     &auth0.IdentityClaims{Name: "Ada", Picture: "https://example.com/ada.png"},
	}, nil
}

type jar struct {
	cookies []*http.Cookie
}

func (j *jar) SetCookie(c *http.Cookie) {
	j.cookies = append(j.cookies, c)
}

func (j *jar) last() *http.Cookie {
	return j.cookies[len(j.cookies)-1]
}

func userWith(uid string) *auth.User {
	return &auth.User{UID: uid}
}

func TestClient_Authenticate(t *testing.T) {
	c := NewClient(nil, fakeValidator{})

	u, err := c.Authenticate(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, u)

	_, err = c.Authenticate(context.Background(), "stale")
	require.ErrorIs(t, err, auth0.ErrInvalidToken)
	require.Nil(t, c.CurrentUser())

	u, err = c.Authenticate(context.Background(), "id-token")
	require.NoError(t, err)
	require.Equal(t, "u1", u.UID)
	require.Equal(t, "Ada", u.DisplayName)
	require.Equal(t, u, c.CurrentUser())

	_, err = NewClient(nil, nil).Authenticate(context.Background(), "id-token")
	require.ErrorIs(t, err, auth0.ErrInvalidToken)
}

func TestClient_SignIn(t *testing.T) {
	p := &fakeProvider{identity: openid.Identity{
		IDToken: "id-token",
		Claims:  jwt.MapClaims{"sub": "u1", "name": "Ada", "email": "ada@example.com", "email_verified": true},
	}}
	c := NewClient(p, fakeValidator{})
	require.True(t, c.Enabled())

	url, err := c.SignInURL("xyz")
	require.NoError(t, err)
	require.Equal(t, "https://accounts.example.com/auth?state=xyz", url)

	events, stop := c.OnIDTokenChanged()
	u, err := c.CompleteSignIn(context.Background(), "code")
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", u.Email)
	require.True(t, u.EmailVerified)

	ev := <-events
	require.Equal(t, "id-token", ev.IDToken)
	require.Equal(t, "u1", ev.User.UID)
	stop()
	stop()
	_, ok := <-events
	require.False(t, ok)
}

func TestClient_SignInErrors(t *testing.T) {
	_, err := NewClient(nil, nil).SignInURL("s")
	require.ErrorIs(t, err, errs.ErrConfigurationMissing)

	_, err = NewClient(nil, nil).CompleteSignIn(context.Background(), "code")
	require.ErrorIs(t, err, errs.ErrConfigurationMissing)

	c := NewClient(&fakeProvider{err: errors.New("invalid_grant")}, nil)
	_, err = c.CompleteSignIn(context.Background(), "")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = c.CompleteSignIn(context.Background(), "code")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	c = NewClient(&fakeProvider{identity: openid.Identity{IDToken: "t", Claims: jwt.MapClaims{}}}, nil)
	_, err = c.CompleteSignIn(context.Background(), "code")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestClient_OnIDTokenChangedKeepsLatest(t *testing.T) {
	c := NewClient(&fakeProvider{identity: openid.Identity{
		IDToken: "id-token",
		Claims:  jwt.MapClaims{"sub": "u1"},
	}}, nil)
	events, stop := c.OnIDTokenChanged()
	defer stop()

	_, err := c.CompleteSignIn(context.Background(), "code")
	require.NoError(t, err)
	c.SignOut()

	ev := <-events
	require.Nil(t, ev.User)
	require.Empty(t, ev.IDToken)
	require.Nil(t, c.CurrentUser())
}

func TestMirror(t *testing.T) {
	tests := []struct {
		name        string
		events      []TokenChange
		initialUID  string
		wantRefresh bool
		wantValue   string
		wantDeleted bool
	}{
		{
			name:        "sign in",
			events:      []TokenChange{{User: userWith("u1"), IDToken: "tok"}},
			wantRefresh: true,
			wantValue:   "tok",
		},
		{
			name:        "token refresh for the same user",
			events:      []TokenChange{{User: userWith("u1"), IDToken: "tok2"}},
			initialUID:  "u1",
			wantRefresh: false,
			wantValue:   "tok2",
		},
		{
			name:        "sign out",
			events:      []TokenChange{{}},
			initialUID:  "u1",
			wantRefresh: true,
			wantDeleted: true,
		},
		{
			name:        "sign out while signed out",
			events:      []TokenChange{{}},
			wantRefresh: false,
			wantDeleted: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan TokenChange, len(tt.events))
			for _, ev := range tt.events {
				ch <- ev
			}
			close(ch)

			j := &jar{}
			require.Equal(t, tt.wantRefresh, Mirror(ch, j, tt.initialUID, true))
			c := j.last()
			require.Equal(t, CookieName, c.Name)
			require.Equal(t, tt.wantValue, c.Value)
			require.True(t, c.Secure)
			if tt.wantDeleted {
				require.Less(t, c.MaxAge, 0)
			}
		})
	}
}
