package client

import "fmt"

// Kind classifies why a backend call failed.
type Kind int

const (
	// KindUnauthenticated: no credential was available; nothing was sent.
	KindUnauthenticated Kind = iota + 1
	// KindNetwork: transport failure, timeout or unreadable response body.
	KindNetwork
	// KindHTTP: the backend answered with a non-2xx status.
	KindHTTP
	// KindBusiness: the backend answered 2xx with success=false.
	KindBusiness
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindBusiness:
		return "business"
	default:
		return "unknown"
	}
}

// Error is the failure half of a Result.
type Error struct {
	Kind Kind
	// Status is set for KindHTTP.
	Status int
	// Message is the server-provided message, if any.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTP && e.Message != "":
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	case e.Kind == KindHTTP:
		return fmt.Sprintf("http %d", e.Status)
	case e.Message != "":
		return e.Kind.String() + ": " + e.Message
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Result is the outcome of one backend call: either Value or Err.
type Result[T any] struct {
	Value T
	Err   *Error
}

func (r Result[T]) OK() bool { return r.Err == nil }
