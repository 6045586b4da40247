package wxapi

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shinji-kodama/wxlog/internal/dates"
	"github.com/shinji-kodama/wxlog/internal/model"
)

// Credentials are used to log in when no usable cached token exists.
type Credentials struct {
	Username string
	Password string
}

// Session owns an authenticated identity: it reuses a cached token while
// it is valid, logs in otherwise, and retries a request once with a fresh
// login when the server rejects the cached token.
//
// Session is safe for concurrent use; concurrent callers share one login.
type Session struct {
	q      Querier
	creds  Credentials
	cache  TokenCache
	logger logrus.FieldLogger
	now    func() time.Time

	mu     sync.Mutex
	token  string
	claims TokenClaims
}

// NewSession creates a session over q.
func NewSession(q Querier, creds Credentials, cache TokenCache, logger logrus.FieldLogger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		q:      q,
		creds:  creds,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Authenticate returns a usable token and its claims, logging in when the
// cached token is missing, unreadable or expired.
func (s *Session) Authenticate(ctx context.Context) (string, TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token, s.claims, nil
	}

	cached, err := s.cache.Load()
	if err != nil {
		s.logger.WithError(err).Warn("ignoring unreadable token cache")
	}
	if cached != "" {
		claims, err := DecodeToken(cached)
		switch {
		case err != nil:
			s.logger.WithError(err).Debug("cached token is not usable")
		case claims.Expired(s.now()):
			s.logger.Debug("cached token expired")
		default:
			s.token, s.claims = cached, claims
			return s.token, s.claims, nil
		}
	}

	return s.loginLocked(ctx)
}

// Relogin discards the current token and logs in again.
func (s *Session) Relogin(ctx context.Context) (string, TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reloginLocked(ctx)
}

// replaceRejected logs in again after the server rejected token. When
// another caller already replaced it, the newer token is returned instead,
// so concurrent rejections of one token cost a single login.
func (s *Session) replaceRejected(ctx context.Context, rejected string) (string, TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.token != rejected {
		return s.token, s.claims, nil
	}
	return s.reloginLocked(ctx)
}

func (s *Session) reloginLocked(ctx context.Context) (string, TokenClaims, error) {
	s.token, s.claims = "", TokenClaims{}
	if err := s.cache.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to clear token cache")
	}
	return s.loginLocked(ctx)
}

func (s *Session) loginLocked(ctx context.Context) (string, TokenClaims, error) {
	token, err := Login(ctx, s.q, s.creds.Username, s.creds.Password)
	if err != nil {
		return "", TokenClaims{}, err
	}
	claims, err := DecodeToken(token)
	if err != nil {
		return "", TokenClaims{}, err
	}

	if err := s.cache.Save(token); err != nil {
		s.logger.WithError(err).Warn("failed to cache token")
	}
	s.logger.WithField("user_id", claims.UserID).Debug("logged in")

	s.token, s.claims = token, claims
	return token, claims, nil
}

// FetchDay fetches one day's log for the session's user. A rejected token
// triggers a single re-login and retry.
func (s *Session) FetchDay(ctx context.Context, date dates.Date) (*model.DayLog, error) {
	token, claims, err := s.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return s.fetchWithToken(ctx, token, claims, date)
}

func (s *Session) fetchWithToken(ctx context.Context, token string, claims TokenClaims, date dates.Date) (*model.DayLog, error) {
	day, err := FetchDay(ctx, s.q, token, claims.UserID, date)
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return day, err
	}

	s.logger.WithField("date", date.String()).Debug("token rejected, logging in again")
	token, claims, err = s.replaceRejected(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("re-login failed: %w", err)
	}
	return FetchDay(ctx, s.q, token, claims.UserID, date)
}
