package service

// notFoundError marks failures the HTTP layer should answer with 404.
// Controllers detect it through the NotFound marker method.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }
func (e *notFoundError) NotFound()     {}

// unprocessableError marks requests that parsed fine but are semantically
// invalid, answered with 422.
type unprocessableError struct {
	msg string
}

func (e *unprocessableError) Error() string  { return e.msg }
func (e *unprocessableError) Unprocessable() {}
