package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/types"
)

// ErrorKind identifies which stage of a backend call failed
type ErrorKind int

const (
	KindInternal   ErrorKind = iota // the request could not be built
	KindConnection                  // network failure, no response received
	KindAPI                         // the backend responded with a non-2xx status
	KindDecode                      // the response body was not the expected JSON
)

var errorKindNames = []string{"internal", "connection", "api", "decode"}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorKindNames[k]
}

// ClientError represents an error encountered when communicating with the backend API
// StatusCode 0 = no HTTP response was received, >0 = HTTP response received
type ClientError struct {
	Kind        ErrorKind `json:"kind"`
	StatusCode  int       `json:"status_code"`
	UserMessage string    `json:"user_message"`
	LogMessage  string    `json:"log_message"`
}

func (e *ClientError) Error() string {
	return e.LogMessage
}

// UserError returns the user-friendly message
func (e *ClientError) UserError() string {
	return e.UserMessage
}

// NewClientConnectionError creates a ClientError for network/connection issues
func NewClientConnectionError(err error) *ClientError {
	return &ClientError{
		Kind:        KindConnection,
		StatusCode:  0,
		UserMessage: "Unable to reach the server. Please check your connection and try again.",
		LogMessage:  fmt.Sprintf("network error: %v", err),
	}
}

// NewClientInternalError creates a ClientError for internal errors, supply the error and an explanation of what was being done when the error occurred
func NewClientInternalError(err error, while string) *ClientError {
	return &ClientError{
		Kind:        KindInternal,
		StatusCode:  0,
		UserMessage: "An error occurred. Please try again later.",
		LogMessage:  fmt.Sprintf("internal error: %v while %v", err, while),
	}
}

// NewClientDecodeError creates a ClientError for a 2xx response whose body could not be decoded
func NewClientDecodeError(err error, while string) *ClientError {
	return &ClientError{
		Kind:        KindDecode,
		StatusCode:  0,
		UserMessage: "The server sent an unexpected response. Please try again later.",
		LogMessage:  fmt.Sprintf("decode error: %v while %v", err, while),
	}
}

// NewClientApiError creates a ClientError from a non-2xx HTTP response sent by the backend
func NewClientApiError(res *http.Response) *ClientError {
	var serverErr types.ErrorResponse

	if res.Body != nil {
		// the body is optional - a failed decode leaves the message empty
		_ = json.NewDecoder(res.Body).Decode(&serverErr)
	}

	var userMsg string
	switch res.StatusCode {
	case http.StatusUnauthorized:
		userMsg = "Login failed. Please check your username and password and try again."
	case http.StatusForbidden:
		userMsg = "You don't have permission to access this resource."
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		// the backend explains validation and lookup failures
		if serverErr.Message != "" {
			userMsg = serverErr.Message
		} else if res.StatusCode == http.StatusNotFound {
			userMsg = "The requested item was not found."
		} else {
			userMsg = "Invalid request. Please check your input and try again."
		}
	case http.StatusTooManyRequests:
		userMsg = "Too many requests. Please try again in a few moments."
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		userMsg = "The service is temporarily unavailable. Please try again later."
	default:
		userMsg = "An error occurred. Please try again."
	}

	logMsg := fmt.Sprintf("backend status %d", res.StatusCode)
	if serverErr.Message != "" {
		logMsg += fmt.Sprintf(" - %s", serverErr.Message)
	}

	return &ClientError{
		Kind:        KindAPI,
		StatusCode:  res.StatusCode,
		UserMessage: userMsg,
		LogMessage:  logMsg,
	}
}
