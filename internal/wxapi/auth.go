package wxapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const loginMutation = `mutation login($u: String!, $p: String!) { login(u: $u, p: $p) }`

// ErrMissingCredentials is returned when a login is needed but no
// username or password is configured.
var ErrMissingCredentials = errors.New("missing username or password")

// ErrLoginFailed wraps every failure of the login mutation.
var ErrLoginFailed = errors.New("login failed")

// ErrInvalidToken wraps token decoding failures.
var ErrInvalidToken = errors.New("invalid session token")

// Login exchanges credentials for a session token.
func Login(ctx context.Context, q Querier, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	resp, err := Query[struct {
		Login string `json:"login"`
	}](ctx, q, Request{
		Query:     loginMutation,
		Variables: map[string]any{"u": username, "p": password},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if resp.Login == "" {
		return "", fmt.Errorf("%w: %w", ErrLoginFailed, ErrEmptyResponse)
	}
	return resp.Login, nil
}

// TokenClaims is the part of the session token payload the client needs.
type TokenClaims struct {
	// UserID is the "id" claim, normalized to its decimal string form.
	UserID string
	// ExpiresAt is zero when the token carries no "exp" claim.
	ExpiresAt time.Time
}

// Expired reports whether the token is expired at now. Tokens without an
// expiry never expire on the client side.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// DecodeToken reads the claims of a session token without verifying its
// signature.
func DecodeToken(token string) (TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenClaims{}, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	var userID string
	switch id := claims["id"].(type) {
	case float64:
		userID = strconv.FormatFloat(id, 'f', -1, 64)
	case string:
		userID = strings.TrimSpace(id)
	}
	if userID == "" {
		return TokenClaims{}, fmt.Errorf("%w: no user id", ErrInvalidToken)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	out := TokenClaims{UserID: userID}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
