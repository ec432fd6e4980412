package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/pkg/auth0"
	"github.com/Astemirdum/friendly-eats/pkg/openid"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
)

// Provider runs the federated sign-in.
type Provider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (openid.Identity, error)
}

// TokenValidator verifies ID tokens presented in the session cookie.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (interface{}, error)
}

// TokenChange is emitted on sign-in and sign-out. User is nil after sign-out.
type TokenChange struct {
	User    *auth.User
	IDToken string
}

// Client is the identity state of one browser request.
type Client struct {
	provider  Provider
	validator TokenValidator

	mu        sync.Mutex
	user      *auth.User
	idToken   string
	listeners map[int]chan TokenChange
	nextID    int
}

// NewClient accepts a nil provider when sign-in is not configured.
func NewClient(provider Provider, validator TokenValidator) *Client {
	return &Client{
		provider:  provider,
		validator: validator,
		listeners: make(map[int]chan TokenChange),
	}
}

// Authenticate restores the user from the session cookie value. An empty
// value is a signed-out request and is not an error.
func (c *Client) Authenticate(ctx context.Context, idToken string) (*auth.User, error) {
	if idToken == "" {
		return nil, nil
	}
	if c.validator == nil {
		return nil, errors.Wrap(auth0.ErrInvalidToken, "no token validator")
	}
	claims, err := c.validator.ValidateToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(auth0.ErrInvalidToken, err.Error())
	}
	user, err := auth0.UserFromClaims(claims)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.user, c.idToken = user, idToken
	c.mu.Unlock()
	return user, nil
}

func (c *Client) CurrentUser() *auth.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Client) Enabled() bool {
	return c.provider != nil
}

func (c *Client) SignInURL(state string) (string, error) {
	if c.provider == nil {
		return "", errors.Wrap(errs.ErrConfigurationMissing, "sign-in provider")
	}
	return c.provider.AuthURL(state), nil
}

// CompleteSignIn finishes the code flow and emits the new token.
func (c *Client) CompleteSignIn(ctx context.Context, code string) (*auth.User, error) {
	if c.provider == nil {
		return nil, errors.Wrap(errs.ErrConfigurationMissing, "sign-in provider")
	}
	if code == "" {
		return nil, errors.Wrap(errs.ErrInvalidArgument, "authorization code is empty")
	}
	id, err := c.provider.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(errs.ErrUnauthorized, err.Error())
	}

	h := openid.NewJwtHelper(id.Claims)
	sub, name, email := h.GetUser()
	user := &auth.User{
		UID:           sub,
		DisplayName:   name,
		Email:         email,
		EmailVerified: h.EmailVerified(),
		PhotoURL:      h.GetPicture(),
	}
	if user.UID == "" {
		return nil, errors.Wrap(errs.ErrUnauthorized, "id token has no subject")
	}
	c.set(user, id.IDToken)
	return user, nil
}

func (c *Client) SignOut() {
	c.set(nil, "")
}

// OnIDTokenChanged subscribes to token changes. Only the latest unread
// change is kept. stop closes the channel.
func (c *Client) OnIDTokenChanged() (<-chan TokenChange, func()) {
	ch := make(chan TokenChange, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
			close(ch)
		})
	}
}

func (c *Client) set(user *auth.User, idToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user, c.idToken = user, idToken

	ev := TokenChange{User: user, IDToken: idToken}
	for _, ch := range c.listeners {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}
