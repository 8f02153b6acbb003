package mockapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rajputritesh1907/attendanceFrontend/internal/model"
)

// authClaims are the JWT claims issued to signed-in accounts. The dashboard
// client never inspects these; the token is consumed opaquely.
type authClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// tokenIssuer signs HS256 bearer tokens.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newTokenIssuer(secret string, ttl time.Duration) *tokenIssuer {
	return &tokenIssuer{secret: []byte(secret), ttl: ttl}
}

// issue creates a token for the given account.
func (i *tokenIssuer) issue(userID string, role model.Role) (string, error) {
	claims := &authClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
