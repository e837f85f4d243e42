package main

import (
	"errors"
	"fmt"
)

// ErrMissingSession indicates the session credential is not set.
var ErrMissingSession = errors.New("session credential not set")

// HTTPError is a non-2xx response from the puzzle site.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// NetworkError is a transport failure talking to the puzzle site.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FSError is a filesystem failure on a scaffold or workspace path.
type FSError struct {
	Op   string
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error { return e.Err }

// errorKind names the failure class of err for the final CLI message.
func errorKind(err error) string {
	var (
		httpErr *HTTPError
		netErr  *NetworkError
		fsErr   *FSError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingSession):
		return "missing credential"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("http error %d", httpErr.StatusCode)
	case errors.As(err, &netErr):
		return "network error"
	case errors.As(err, &fsErr):
		return "filesystem error"
	default:
		return "error"
	}
}
