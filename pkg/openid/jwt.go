package openid

import (
	jwt "github.com/golang-jwt/jwt/v4"
)

type JwtHelper struct {
	claims jwt.MapClaims
}

func NewJwtHelper(claims jwt.MapClaims) *JwtHelper {
	return &JwtHelper{claims: claims}
}

func (j *JwtHelper) GetUserID() string {
	return j.str("sub")
}

func (j *JwtHelper) GetName() string {
	return j.str("name")
}

func (j *JwtHelper) GetEmail() string {
	return j.str("email")
}

func (j *JwtHelper) GetPicture() string {
	return j.str("picture")
}

func (j *JwtHelper) GetUser() (sub, name, email string) {
	return j.GetUserID(), j.GetName(), j.GetEmail()
}

func (j *JwtHelper) EmailVerified() bool {
	v, _ := j.claims["email_verified"].(bool)
	return v
}

func (j *JwtHelper) str(key string) string {
	if v, ok := j.claims[key].(string); ok {
		return v
	}
	return ""
}
