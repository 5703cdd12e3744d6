// Package mds provides a client for Mobility Data Specification (MDS)
// Provider APIs: the standardized read-only HTTP interface mobility
// operators expose for trip, status-change, and event data.
package mds

import (
	"context"
	"time"

	"github.com/jusunglee/mds-go/internal/models"
)

// Record is an opaque MDS record (trip, status change, or event)
type Record = models.Record

// MDS Provider resource names, used as both URL paths and "data" keys
const (
	ResourceTrips         = "trips"
	ResourceStatusChanges = "status_changes"
	ResourceEvents        = "events"
)

// Client defines the interface for querying MDS Provider resources
// Each call walks pagination to completion and returns every record
type Client interface {
	GetTrips(ctx context.Context, q Query) ([]Record, error)
	GetStatusChanges(ctx context.Context, q Query) ([]Record, error)
	GetEvents(ctx context.Context, q Query) ([]Record, error)
}

// Config holds configuration for an MDS provider client
// Immutable once passed to New
type Config struct {
	// BaseURL is the provider's MDS endpoint root, e.g. "https://mds.provider.com".
	// Required; must be an absolute URL.
	BaseURL string

	// Token is sent as "Authorization: Bearer <token>" on every request.
	Token string

	// Headers are additional request headers, e.g. an MDS version Accept
	// header. They can never override the Authorization header.
	Headers map[string]string

	// Timeout applies to each page request independently, not to a whole
	// paginated query.
	Timeout time.Duration

	// MaxPages bounds how many pages a single query may walk, so a provider
	// emitting cyclic next links cannot hang the client.
	MaxPages int
}

const (
	DefaultTimeout  = 10 * time.Second
	DefaultMaxPages = 100
)

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultTimeout,
		MaxPages: DefaultMaxPages,
	}
}
