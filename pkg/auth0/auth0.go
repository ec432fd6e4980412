package auth0

import (
	"context"
	"net/url"
	"time"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type (
	Config struct {
		Issuer   string `yaml:"issuer" envconfig:"TOKEN_ISSUER" default:"https://accounts.google.com"`
		Audience string `yaml:"audience" envconfig:"TOKEN_AUDIENCE"`
		Enable   bool   `yaml:"enable" envconfig:"TOKEN_VERIFY" default:"true"`
	}
)

var ErrInvalidToken = errors.New("invalid id token")

type Validator interface {
	ValidateToken(ctx context.Context, tokenString string) (interface{}, error)
}

// NewValidator verifies ID tokens against the issuer's JWKS. With Enable off
// tokens are only decoded, which is meant for local development.
func NewValidator(cfg Config) (Validator, error) {
	if !cfg.Enable {
		return new(unverifiedValidator), nil
	}
	if cfg.Audience == "" {
		return nil, errors.New("token audience is required")
	}
	issuerURL, err := url.Parse(cfg.Issuer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse the issuer url")
	}
	provider := jwks.NewCachingProvider(issuerURL, time.Minute*5)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims { return &IdentityClaims{} }),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up the jwt validator")
	}
	return jwtValidator, nil
}

// IdentityClaims are the profile claims carried by an OpenID Connect ID token.
type IdentityClaims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Picture       string `json:"picture"`
	EmailVerified bool   `json:"email_verified"`
}

func (c *IdentityClaims) Validate(context.Context) error {
	return nil
}

// UserFromClaims turns validated claims into the request user.
func UserFromClaims(v interface{}) (*auth.User, error) {
	claims, ok := v.(*validator.ValidatedClaims)
	if !ok || claims == nil || claims.RegisteredClaims.Subject == "" {
		return nil, ErrInvalidToken
	}
	u := &auth.User{UID: claims.RegisteredClaims.Subject}
	if ic, ok := claims.CustomClaims.(*IdentityClaims); ok {
		u.DisplayName = ic.Name
		u.Email = ic.Email
		u.EmailVerified = ic.EmailVerified
		u.PhotoURL = ic.Picture
	}
	return u, nil
}

type unverifiedValidator struct{}

func (v *unverifiedValidator) ValidateToken(_ context.Context, tokenString string) (interface{}, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, mc); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !mc.VerifyExpiresAt(time.Now().Unix(), false) {
		return nil, errors.Wrap(ErrInvalidToken, "token is expired")
	}

	str := func(k string) string {
		s, _ := mc[k].(string)
		return s
	}
	verified, _ := mc["email_verified"].(bool)
	var exp int64
	if f, ok := mc["exp"].(float64); ok {
		exp = int64(f)
	}
	return &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Issuer:  str("iss"),
			Subject: str("sub"),
			Expiry:  exp,
		},
		CustomClaims: &IdentityClaims{
			Name:          str("name"),
			Email:         str("email"),
			Picture:       str("picture"),
			EmailVerified: verified,
		},
	}, nil
}
