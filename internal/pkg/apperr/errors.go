// Package apperr holds the failure taxonomy shared by the client engine and its transports.
package apperr

import "errors"

var (
	// ErrTransport: the request never produced a response (network error, timeout, limiter wait).
	ErrTransport = errors.New("transport failure")
	// ErrProtocol: a response arrived but was malformed, non-2xx, or carried success:false.
	ErrProtocol = errors.New("protocol failure")
	// ErrCache: the local cache tier could not be read or written. Always absorbed by callers.
	ErrCache = errors.New("cache failure")
)
