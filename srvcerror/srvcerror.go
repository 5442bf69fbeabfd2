// Package srvcerror defines the error type returned by every service
// in this repository. An Error carries a stable machine-readable code,
// a message safe to show to contestants, and a private debug error
// that only ever reaches the logs.
package srvcerror

import "net/http"

type Error struct {
	errorCode  string
	msgToUser  string
	dbgInfoErr error // never serialized, logs only

	httpStatus int // 0 means not set
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

// Error returns the contestant-facing message.
func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

// HttpStatusCode returns the status set on the error, or 500 when
// none was set.
func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
