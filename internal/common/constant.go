// Package common contains shared constants, sentinel errors and small helpers
// used by both the REST server and the CLI client.
package common

// AuthorizationHeaderName carries the bearer token on every authenticated request.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "
