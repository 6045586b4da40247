package wxapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=wxapi

// ErrUnauthorized is matched (via errors.Is) by API errors caused by a
// missing, invalid or expired token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmptyResponse is returned when the server answers without a data
// object and without errors.
var ErrEmptyResponse = errors.New("empty graphql response")

// Request is a single GraphQL operation.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`

	// Token is sent as a Bearer token when set. It is not part of the body.
	Token string `json:"-"`
}

// Querier executes GraphQL operations. Do decodes the response's data
// object into out, which must be a pointer (or nil to discard it).
type Querier interface {
	Do(ctx context.Context, req Request, out any) error
}

// Query runs req and decodes its data object into a new T.
func Query[T any](ctx context.Context, q Querier, req Request) (T, error) {
	var out T
	if err := q.Do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// GraphQLError is one entry of a response's errors array.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// APIError reports a failed operation: a non-2xx status, a non-empty
// errors array, or both.
type APIError struct {
	StatusCode int
	Errors     []GraphQLError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("graphql request failed with status %d", e.StatusCode)
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return "graphql error: " + strings.Join(msgs, "; ")
}

// Is matches ErrUnauthorized for 401/403 responses and for error messages
// the server uses for bad sessions.
func (e *APIError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return true
	}
	for _, ge := range e.Errors {
		msg := strings.ToLower(ge.Message)
		for _, phrase := range sessionErrorPhrases {
			if strings.Contains(msg, phrase) {
				return true
			}
		}
	}
	return false
}

// sessionErrorPhrases are the message fragments of GraphQL errors caused by
// a missing or stale session. Plain "token" is not enough: parser errors
// such as "Unexpected token" mention it too.
var sessionErrorPhrases = []string{
	"unauthorized",
	"not logged in",
	"invalid token",
	"token expired",
	"expired token",
	"jwt expired",
}

// response is the GraphQL envelope.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}
