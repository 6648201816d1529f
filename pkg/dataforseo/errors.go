package dataforseo

import "fmt"

// InputError reports caller arguments that violate an operation precondition.
// It is always returned before any network request is issued.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "dataforseo: invalid input: " + e.Reason
}

// TransportError reports a request that could not complete at the network
// level (connection refused, timeout, DNS failure). It wraps the underlying
// cause so errors.Is/As against net and context errors keep working.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dataforseo: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a response that completed at the transport level but
// signals failure: a non-2xx HTTP status, or a body whose tasks_error count
// is positive. Body carries the decoded response verbatim when it decoded.
type APIError struct {
	HTTPStatus int
	Message    string
	Body       Response
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("dataforseo: api error (http %d): %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("dataforseo: api error (http %d)", e.HTTPStatus)
}
