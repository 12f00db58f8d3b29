package analytics

import (
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

var (
	ErrUnauthorized = errors.New("google analytics: unauthorised (invalid credentials)")
	ErrForbidden    = errors.New("google analytics: forbidden (insufficient permissions)")
	ErrNotFound     = errors.New("google analytics: resource not found")
	ErrRateLimited  = errors.New("google analytics: rate limit exceeded")
)

func IsUnauthorized(err error) bool {
	return is(err, ErrUnauthorized, http.StatusUnauthorized)
}

func IsForbidden(err error) bool {
	return is(err, ErrForbidden, http.StatusForbidden)
}

func IsNotFound(err error) bool {
	return is(err, ErrNotFound, http.StatusNotFound)
}

func IsRateLimited(err error) bool {
	return is(err, ErrRateLimited, http.StatusTooManyRequests)
}

func is(err error, sentinel error, code int) bool {
	if errors.Is(err, sentinel) {
		return true
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}

	return false
}

// wrap converts a Google API error to the matching sentinel error, keeping the API
// message, and adds the operation context.
func wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized:
			err = errors.Wrap(ErrUnauthorized, gerr.Message)

		case http.StatusForbidden:
			err = errors.Wrap(ErrForbidden, gerr.Message)

		case http.StatusNotFound:
			err = errors.Wrap(ErrNotFound, gerr.Message)

		case http.StatusTooManyRequests:
			err = errors.Wrap(ErrRateLimited, gerr.Message)
		}
	}

	return errors.Wrapf(err, format, args...)
}
