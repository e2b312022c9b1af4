// Package failure carries errors that map onto HTTP status codes.
//
// A Failure with a 400 code is a validation error and a 404 code marks a missing entity.
// Any other error reaching the transport is treated as a store failure and answered with 500.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var EmptyUpdateRequest = &Failure{Code: http.StatusBadRequest, Message: "update request cannot be empty"}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest converts err into a validation failure. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func BadRequestf(format string, args ...any) error {
	return BadRequestFromString(fmt.Sprintf(format, args...))
}

func NotFound(message string) error {
	return &Failure{Code: http.StatusNotFound, Message: message}
}

// GetCode returns the code of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}

func IsBadRequest(err error) bool {
	return err != nil && GetCode(err) == http.StatusBadRequest
}
