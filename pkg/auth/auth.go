package auth

import (
	"context"

	"github.com/pkg/errors"
)

type ctxKey struct{}

var ErrUnauthenticated = errors.New("user is not signed in")

// User is the identity reconstructed from a verified ID token.
type User struct {
	UID           string `json:"uid"`
	DisplayName   string `json:"displayName"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	PhotoURL      string `json:"photoURL"`
}

func SetUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

func GetUser(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*User)
	return u, ok && u != nil
}

func GetUserID(ctx context.Context) (string, error) {
	u, ok := GetUser(ctx)
	if !ok || u.UID == "" {
		return "", ErrUnauthenticated
	}
	return u.UID, nil
}
