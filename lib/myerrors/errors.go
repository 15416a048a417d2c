package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// httpError decorates a regular error with the HTTP status it should map onto.
type httpError struct {
	httpStatus int
	err        error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpStatus, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPStatus() int {
	return e.httpStatus
}

func newError(httpStatus int, err error) *httpError {
	return &httpError{
		httpStatus: httpStatus,
		err:        err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func GetHTTPStatus(err error) int {
	var myError *httpError
	if errors.As(err, &myError) {
		return myError.GetHTTPStatus()
	}

	return http.StatusInternalServerError
}
