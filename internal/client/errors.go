package client

import "fmt"

// ServerError means the API answered with a status of 400 or above.
type ServerError struct {
	Code int
	Body []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.Code, e.Body)
}

// NoResponseError means the request was sent but no response came back.
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("no response from server: %v", e.Err)
}

func (e *NoResponseError) Unwrap() error {
	return e.Err
}

// RequestSetupError means the request could not be built.
type RequestSetupError struct {
	Message string
	Err     error
}

func (e *RequestSetupError) Error() string {
	return "request error: " + e.Message
}

func (e *RequestSetupError) Unwrap() error {
	return e.Err
}
