// Package simerr defines the structured error type surfaced at the
// library boundary (bridge) and by internal assertions. Three kinds,
// per the error-handling design: contract violations (caller bug),
// numeric invariants (programmer bug, should never fire in release
// builds), and internal errors (everything else unexpected).
package simerr

import "fmt"

// Kind classifies why an Error was raised.
type Kind int

const (
	// ContractViolation marks a caller-side bug: missing map key,
	// length mismatch, out-of-range config, unknown enum tag. Detected
	// at the entry points, fails fast, never retried.
	ContractViolation Kind = iota
	// NumericInvariant marks an assertion failing inside the numeric
	// core, e.g. a post-composition probability sum exceeding 1 beyond
	// floating-point slack. Should not occur given correct inputs.
	NumericInvariant
	// Internal marks anything else unexpected (buffer-pool misuse,
	// impossible switch branch).
	Internal
)

func (k Kind) String() string {
	switch k {
	case ContractViolation:
		return "contract_violation"
	case NumericInvariant:
		return "numeric_invariant"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the structured error returned across the library boundary.
// Key identifies the offending map key, column, or field when known;
// it is empty for errors with no single named cause.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s (key=%q)", e.Kind, e.Message, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Contract builds a ContractViolation error for the named key.
func Contract(key, message string) *Error {
	return &Error{Kind: ContractViolation, Key: key, Message: message}
}

// Contractf builds a ContractViolation error with a formatted message.
func Contractf(key, format string, args ...any) *Error {
	return &Error{Kind: ContractViolation, Key: key, Message: fmt.Sprintf(format, args...)}
}

// Invariant builds a NumericInvariant error.
func Invariant(message string) *Error {
	return &Error{Kind: NumericInvariant, Message: message}
}

// Invariantf builds a NumericInvariant error with a formatted message.
func Invariantf(format string, args ...any) *Error {
	return &Error{Kind: NumericInvariant, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Internal error wrapping a lower-level cause.
func Wrap(err error, message string) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, k Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == k
}
