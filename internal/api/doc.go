// Package api implements the low-level HTTP transport for the AccuLynx API.
//
// It owns the base URL, bearer authentication, request construction, retry
// with exponential backoff, and the mapping of HTTP error responses to the
// shared error types in internal/apierrors. The public SDK in the root
// package composes this transport with the resource models.
package api
