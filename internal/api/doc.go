// Package api implements the HTTP handlers for the task board. Handlers
// translate requests into store and service calls and map the resulting
// errors to HTTP responses; no HTTP concepts leak below this layer.
package api
