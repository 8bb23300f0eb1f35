// Package api is the typed HTTP client for the archiver backend. Every call
// unwraps the backend's response envelope, attaches the stored token, and
// maps HTTP 401 to ErrUnauthorized after discarding the local credential.
package api
