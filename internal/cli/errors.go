package cli

import (
	"context"
	"errors"

	"github.com/shinji-kodama/wxlog/internal/model"
	"github.com/shinji-kodama/wxlog/internal/wxapi"
)

// apiFailure translates a transport or authentication error into a
// CLIError carrying the matching exit code.
func apiFailure(message string, err error) error {
	switch {
	case errors.Is(err, wxapi.ErrMissingCredentials):
		return model.WrapCLIError(model.ExitAuthFailed,
			"no credentials configured (set username and password in the config file, "+
				"WXLOG_USERNAME/WXLOG_PASSWORD, or use --credentials)", err)
	case errors.Is(err, wxapi.ErrLoginFailed),
		errors.Is(err, wxapi.ErrUnauthorized),
		errors.Is(err, wxapi.ErrInvalidToken):
		return model.WrapCLIError(model.ExitAuthFailed, "authentication failed", err)
	case errors.Is(err, context.Canceled):
		return model.WrapCLIError(model.ExitGeneralError, "interrupted", err)
	default:
		return model.WrapCLIError(model.ExitAPIError, message, err)
	}
}
