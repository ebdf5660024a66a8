// Package ggerr defines the typed error taxonomy shared by every layer of
// the configuration store, from the Tree Store up through the Request
// Handlers that surface errors to remote callers.
package ggerr

// Kind classifies an error so callers can branch on intent rather than on
// message text.
type Kind int

const (
	// KindInvalidArgument covers shape errors: missing required fields,
	// wrong container type, malformed path elements.
	KindInvalidArgument Kind = iota
	// KindOutOfRange covers range errors: path too deep, segment too long,
	// value blob too large.
	KindOutOfRange
	// KindNotFound covers lookup errors: an absent path on read, delete or
	// subscribe.
	KindNotFound
	// KindTypeMismatch covers an attempted leaf<->internal transition.
	KindTypeMismatch
	// KindInternalFailure covers persistence layer failures.
	KindInternalFailure
)

// String renders the kind the way it is surfaced to remote callers.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindOutOfRange:
		return "OutOfRange"
	case KindNotFound:
		return "NotFound"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindInternalFailure:
		return "InternalFailure"
	default:
		return "Unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, ggerr.ErrNotFound) matches any NotFound error regardless
// of message, the same way the teacher's pkg/types sentinels compare.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error of the given kind wrapping cause (which may be nil).
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels mirroring the taxonomy of spec section 7. Compare with
// errors.Is, not ==, since call sites attach call-specific messages.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Msg: "invalid argument"}
	ErrOutOfRange      = &Error{Kind: KindOutOfRange, Msg: "value out of range"}
	ErrNotFound        = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrTypeMismatch    = &Error{Kind: KindTypeMismatch, Msg: "type mismatch"}
	ErrInternalFailure = &Error{Kind: KindInternalFailure, Msg: "internal failure"}
)

// KindOf extracts the Kind of err if it is (or wraps) a *Error, and false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if asError(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// asError is a tiny errors.As shim kept local to avoid importing errors
// just for this one call site at the top of the package.
func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
