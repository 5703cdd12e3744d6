package mds

import (
	"github.com/jusunglee/mds-go/internal/models"
	"github.com/jusunglee/mds-go/internal/paging"
)

// Error types returned by the client, aliased here so callers can match
// them with errors.As / errors.Is.
type (
	// ConfigurationError reports an invalid Config passed to New.
	ConfigurationError = models.ConfigurationError

	// RequestError reports a non-2xx provider response; it carries the
	// status code and raw body. Requests are never retried internally.
	RequestError = models.RequestError

	// MalformedResponseError reports a body that is not valid JSON or lacks
	// the expected data/links shape.
	MalformedResponseError = models.MalformedResponseError
)

// ErrTooManyPages is returned when a query walks more pages than
// Config.MaxPages allows.
var ErrTooManyPages = paging.ErrTooManyPages
