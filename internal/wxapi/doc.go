// Package wxapi talks to the workout log service over GraphQL.
//
// The transport is abstracted by the Querier interface so that callers
// (the day fetcher, the login command) can be tested without a network.
// Client is the resty-based implementation used in production.
//
// Authentication is a login mutation returning a JWT. The token's payload
// carries the numeric user id needed by the day query; it is decoded
// without signature verification because only the server can verify it.
// Tokens are cached on disk by TokenCache and reused until they expire.
package wxapi
