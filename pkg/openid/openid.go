package openid

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const GoogleIssuer = "https://accounts.google.com"

type Config struct {
	ClientID     string `yaml:"clientId" envconfig:"OIDC_CLIENT_ID"`
	ClientSecret string `yaml:"clientSecret" envconfig:"OIDC_CLIENT_SECRET"`
	RedirectURL  string `yaml:"redirectUrl" envconfig:"OIDC_REDIRECT_URL" default:"http://localhost:8080/auth/callback"`
	Issuer       string `yaml:"issuer" envconfig:"OIDC_ISSUER" default:"https://accounts.google.com"`
}

func (c Config) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Identity is the outcome of a completed code exchange.
type Identity struct {
	IDToken string
	Claims  jwt.MapClaims
}

type Provider struct {
	verifier     *oidc.IDTokenVerifier
	oauth2Config oauth2.Config
}

func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, errors.Wrap(err, "oidc.NewProvider")
	}
	return &Provider{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauth2Config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func (p *Provider) AuthURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades an authorization code for a verified ID token.
func (p *Provider) Exchange(ctx context.Context, code string) (Identity, error) {
	oauth2Token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, errors.Wrap(err, "failed to exchange token")
	}
	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return Identity{}, errors.New("no id_token field in oauth2 token")
	}
	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return Identity{}, errors.Wrap(err, "failed to verify ID Token")
	}

	claims := jwt.MapClaims{}
	if err := idToken.Claims(&claims); err != nil {
		return Identity{}, err
	}
	return Identity{IDToken: rawIDToken, Claims: claims}, nil
}
