package wxapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// RequestIDHeader carries a per-request UUID so that a failing call can be
// matched with server logs.
const RequestIDHeader = "X-Request-ID"

// Client is a Querier posting operations to a GraphQL endpoint.
type Client struct {
	endpoint string
	rc       *resty.Client
	logger   logrus.FieldLogger
}

// NewClient creates a client for endpoint. Every request is bounded by
// timeout in addition to the caller's context.
func NewClient(endpoint string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(logger)

	return &Client{
		endpoint: endpoint,
		rc:       rc,
		logger:   logger,
	}
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() error {
	return c.rc.Close()
}

// Do implements Querier.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	requestID := uuid.NewString()

	var (
		ok     response
		failed response
	)
	r := c.rc.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetBody(req).
		SetResult(&ok).
		SetError(&failed)
	if req.Token != "" {
		r.SetAuthToken(req.Token)
	}

	start := time.Now()
	res, err := r.Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}

	log := c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"status":     res.StatusCode(),
		"elapsed":    time.Since(start).Round(time.Millisecond),
	})

	if res.IsError() {
		log.Debug("graphql request rejected")
		return &APIError{StatusCode: res.StatusCode(), Errors: failed.Errors}
	}
	if len(ok.Errors) > 0 {
		log.WithField("errors", len(ok.Errors)).Debug("graphql errors")
		return &APIError{StatusCode: res.StatusCode(), Errors: ok.Errors}
	}
	log.Debug("graphql request done")

	if out == nil {
		return nil
	}
	if len(ok.Data) == 0 || string(ok.Data) == "null" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(ok.Data, out); err != nil {
		return fmt.Errorf("failed to decode graphql data: %w", err)
	}
	return nil
}
