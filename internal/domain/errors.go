package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSearchNotFound    = errors.New("search not found")
	ErrRecommendNotFound = errors.New("recommend not found")
	ErrMissingAPIKey     = errors.New("catalog api key is not configured")
)

// TransportError reports a failed round trip: either the request never
// completed (Err is set) or the server answered with a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("get %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("get %s: unexpected status %s", e.URL, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body or field that could not be decoded.
type ParseError struct {
	What  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("parse %s %q: %v", e.What, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is one of the "no results" signals.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSearchNotFound) || errors.Is(err, ErrRecommendNotFound)
}
