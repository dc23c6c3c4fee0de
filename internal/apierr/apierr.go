// Package apierr classifies failures coming back from the flash-buy API.
//
// Every error that crosses the transport boundary is turned into an *Error
// carrying a Kind, so callers can branch on the failure class they have a
// specific response for and let everything else fall through to the generic
// handling path.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Kind is the failure class of an API error.
type Kind string

const (
	// KindValidation covers client-side schema failures caught before any
	// request is issued.
	KindValidation Kind = "validation"
	// KindConflict is a server-reported uniqueness or referential-integrity
	// violation (HTTP 409).
	KindConflict Kind = "conflict"
	// KindNotFound is an entity lookup miss (HTTP 404).
	KindNotFound Kind = "not_found"
	// KindUnauthorized means the session is no longer valid (HTTP 401).
	KindUnauthorized Kind = "unauthorized"
	// KindNetwork covers transport-level failures and 5xx responses, the
	// only kinds considered retryable.
	KindNetwork Kind = "network"
	// KindInternal is everything else.
	KindInternal Kind = "internal"
)

// Error is a classified API failure.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for transport-level failures
	Message string // server-provided message, when present
	Field   string // conflicting field reported by the server, when present
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s (%d)", e.Kind, e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether retrying the same request could succeed.
// Only network-class failures qualify; 4xx responses are definitive.
func (e *Error) Retryable() bool { return e.Kind == KindNetwork }

// FromStatus builds an Error from an HTTP response status and body.
// The body is probed for the `message` and `field` keys the API uses in
// its error envelope; anything unparseable is simply left empty.
func FromStatus(status int, body []byte) *Error {
	e := &Error{Status: status}

	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindUnauthorized
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusConflict:
		e.Kind = KindConflict
	case status >= http.StatusInternalServerError:
		e.Kind = KindNetwork
	default:
		e.Kind = KindInternal
	}

	if len(body) > 0 && gjson.ValidBytes(body) {
		e.Message = gjson.GetBytes(body, "message").String()
		e.Field = gjson.GetBytes(body, "field").String()
	}

	return e
}

// Network wraps a transport-level failure (DNS, refused connection,
// timeout) that never produced an HTTP response.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// As unwraps err into an *Error, when it carries one.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return KindInternal
}

// IsUnauthorized reports whether err is a session-expiry failure.
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// IsNotFound reports whether err is an entity lookup miss.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is a uniqueness or referential conflict.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsRetryable reports whether err could succeed on a retry.
func IsRetryable(err error) bool {
	if ae, ok := As(err); ok {
		return ae.Retryable()
	}
	// Unclassified errors are assumed transport-level.
	return err != nil
}
