// Package cli, login.go implements the "wxlog login" and "wxlog logout"
// commands, which manage the cached session token.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/wxlog/internal/model"
	"github.com/shinji-kodama/wxlog/internal/wxapi"
)

// NewLoginCommand creates the "login" cobra command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and cache the session token",
		Long: `Log in with the configured credentials and cache the session token so
later commands do not need to log in again. Any cached token is replaced.

Examples:
  wxlog login --credentials ~/.config/wxlog/credentials.txt
  WXLOG_USERNAME=me@example.com WXLOG_PASSWORD=secret wxlog login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runLogin(ctx context.Context, out io.Writer) error {
	// Without credentials a login cannot succeed; keep the cached token.
	if !appConfig.HasCredentials() {
		return apiFailure("login failed", wxapi.ErrMissingCredentials)
	}

	session, client := newSession(appConfig)
	defer func() { _ = client.Close() }()

	_, claims, err := session.Relogin(ctx)
	if err != nil {
		return apiFailure("login failed", err)
	}

	if IsJSONOutput() {
		return writeJSON(out, loginResultJSON(claims))
	}
	fmt.Fprintf(out, "Logged in as user %s.\n", claims.UserID)
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(out, "Session expires %s.\n", claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

func loginResultJSON(claims wxapi.TokenClaims) map[string]interface{} {
	result := map[string]interface{}{
		"userId": claims.UserID,
	}
	if !claims.ExpiresAt.IsZero() {
		result["expiresAt"] = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return result
}

// NewLogoutCommand creates the "logout" cobra command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the cached session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(cmd.OutOrStdout())
		},
	}
}

func runLogout(out io.Writer) error {
	cache := wxapi.TokenCache{Path: appConfig.TokenCache}
	if err := cache.Clear(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to delete the cached token", err)
	}

	if IsJSONOutput() {
		return writeJSON(out, map[string]interface{}{"loggedOut": true})
	}
	fmt.Fprintln(out, "Logged out.")
	return nil
}
