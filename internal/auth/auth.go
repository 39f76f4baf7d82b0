// Package auth verifies the bearer tokens issued by the identity provider
// and identifies the owner of a request.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const ownerKey = "owner"

var (
	ErrTokenMissing = errors.New("the Authorization header must contain a bearer token")
	ErrTokenInvalid = errors.New("the bearer token is invalid or expired")
	ErrNoOwner      = errors.New("the bearer token does not identify a user")
)

type httpError struct {
	Error string `json:"error" example:"the bearer token is invalid or expired"`
}

// Verifier checks HS256 signed tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier returns a Verifier for tokens signed with secret.
func NewVerifier(secret []byte) Verifier {
	return Verifier{secret: secret}
}

// Owner verifies the token and returns its subject.
func (v Verifier) Owner(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	owner := strings.TrimSpace(claims.Subject)
	if owner == "" {
		return "", ErrNoOwner
	}

	return owner, nil
}

// IssueToken returns a token for the owner that expires after ttl.
func (v Verifier) IssueToken(owner string, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   owner,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString(v.secret)
}

// Middleware aborts requests without a valid token and stores
// the owner in the gin context.
func (v Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenMissing.Error()})
			return
		}

		owner, err := v.Owner(token)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")

			e := ErrTokenInvalid
			if errors.Is(err, ErrNoOwner) {
				e = ErrNoOwner
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: e.Error()})
			return
		}

		c.Set(ownerKey, owner)
		c.Next()
	}
}

// Owner returns the owner of the request. It is empty if the
// Middleware did not run.
func Owner(c *gin.Context) string {
	return c.GetString(ownerKey)
}
