package apperrors

type ErrorCode string

const (
	ErrCodeInternalError       ErrorCode = "internal_error"
	ErrCodeInvalidURLParam     ErrorCode = "invalid_url_param"
	ErrCodeMalformedBody       ErrorCode = "malformed_body"
	ErrCodeRateLimitExceeded   ErrorCode = "rate_limit_exceeded"
	ErrCodeRequestTooLarge     ErrorCode = "request_too_large"
	ErrCodeResourceNotFound    ErrorCode = "resource_not_found"
	ErrCodeUpstreamError       ErrorCode = "upstream_error"       // the backend rejected the request
	ErrCodeUpstreamUnavailable ErrorCode = "upstream_unavailable" // the backend could not be reached or sent an unreadable response
	ErrCodeMethodNotAllowed    ErrorCode = "method_not_allowed"
)
