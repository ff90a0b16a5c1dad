// Package store defines the persistence interfaces for the application's
// entities along with the shared store error taxonomy. Implementations
// live under internal/platform.
package store
