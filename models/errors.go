package models

// Domain error types. The HTTP helper maps them to status codes:
// ErrorBadRequest -> 400, ErrorForbidden -> 403, ErrorNotFound -> 404.

type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}
