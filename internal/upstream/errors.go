// Package upstream holds the pieces shared by every API client: the failure
// taxonomy, the retrying HTTP transport, and pagination bounds checking.
package upstream

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without string matching.
type Kind int

const (
	// KindInvalidArgument marks a malformed query, identifier, or
	// pagination parameter. The request never reached the upstream API.
	KindInvalidArgument Kind = iota + 1
	// KindNotFound marks a well-formed request for which the upstream API
	// holds no matching record.
	KindNotFound
	// KindDataFormat marks an upstream payload that did not match the
	// expected shape.
	KindDataFormat
	// KindUpstream marks a network or HTTP failure from the remote API.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindDataFormat:
		return "data format"
	case KindUpstream:
		return "upstream"
	}
	return "unknown"
}

// Failure is the error type returned by every client in this module. The
// wrapped error, when set, preserves the transport-level cause.
type Failure struct {
	Kind Kind
	msg  string
	err  error
}

func (f *Failure) Error() string {
	if f.err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.msg, f.err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.msg)
}

func (f *Failure) Unwrap() error { return f.err }

func InvalidArgumentf(format string, args ...any) error {
	return &Failure{Kind: KindInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Failure{Kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func DataFormatf(format string, args ...any) error {
	return &Failure{Kind: KindDataFormat, msg: fmt.Sprintf(format, args...)}
}

func Upstreamf(err error, format string, args ...any) error {
	return &Failure{Kind: KindUpstream, msg: fmt.Sprintf(format, args...), err: err}
}

// HasKind reports whether err or anything it wraps is a Failure of kind k.
func HasKind(err error, k Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == k
}

func IsInvalidArgument(err error) bool { return HasKind(err, KindInvalidArgument) }
func IsNotFound(err error) bool        { return HasKind(err, KindNotFound) }
func IsDataFormat(err error) bool      { return HasKind(err, KindDataFormat) }
func IsUpstream(err error) bool        { return HasKind(err, KindUpstream) }
