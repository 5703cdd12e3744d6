package models

import (
	"fmt"
)

// ConfigurationError reports invalid client construction parameters
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid client configuration: " + e.Reason
}

// RequestError reports a non-2xx response from a provider.
// The raw body is kept so callers can inspect provider error payloads.
type RequestError struct {
	StatusCode int
	Body       []byte
	URL        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// MalformedResponseError reports a response body that is not valid JSON or
// does not have the expected data/links pagination shape.
type MalformedResponseError struct {
	Resource string
	Reason   string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	msg := fmt.Sprintf("malformed %s response: %s", e.Resource, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
