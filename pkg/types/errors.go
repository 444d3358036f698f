package types

import (
	"errors"
	"io/fs"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound  ErrKind = iota // missing file, bundle or required document
	ErrKindParse                    // content is not a well-formed property list
	ErrKindStructure                // key path segment collides with a non-dictionary value
	ErrKindIO                       // read/write/rename/permission failure at the fs boundary
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not found"
	case ErrKindParse:
		return "parse error"
	case ErrKindStructure:
		return "invalid structure"
	case ErrKindIO:
		return "i/o failure"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
//
// Path names the file the operation was working on and KeyPath the
// dictionary location inside it, when known.
type Error struct {
	Kind    ErrKind
	Msg     string
	Path    string
	KeyPath []string
	Err     error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.Msg)
	if e.Path != "" {
		b.WriteString(" (")
		b.WriteString(e.Path)
		if len(e.KeyPath) > 0 {
			b.WriteString(" at ")
			b.WriteString(JoinKeyPath(e.KeyPath))
		}
		b.WriteString(")")
	} else if len(e.KeyPath) > 0 {
		b.WriteString(" (at ")
		b.WriteString(JoinKeyPath(e.KeyPath))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind, so that
// errors.Is(err, ErrNotFound) holds for every not-found error regardless
// of the context it carries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t != sentinel(t.Kind) {
		return false
	}
	return e.Kind == t.Kind
}

func sentinel(k ErrKind) *Error {
	switch k {
	case ErrKindNotFound:
		return ErrNotFound
	case ErrKindParse:
		return ErrParse
	case ErrKindStructure:
		return ErrInvalidStructure
	case ErrKindIO:
		return ErrIO
	}
	return nil
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates a missing file or bundle.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrParse indicates the file is not a well-formed property list.
	ErrParse = &Error{Kind: ErrKindParse, Msg: "malformed property list"}
	// ErrInvalidStructure indicates a key path runs through a non-dictionary value.
	ErrInvalidStructure = &Error{Kind: ErrKindStructure, Msg: "key path is not a dictionary"}
	// ErrIO indicates a filesystem failure.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
)

// IOError wraps a filesystem error for path. Missing files are
// classified as ErrKindNotFound, everything else as ErrKindIO.
func IOError(msg, path string, err error) *Error {
	kind := ErrKindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = ErrKindNotFound
	}
	return &Error{Kind: kind, Msg: msg, Path: path, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// JoinKeyPath renders a key path for messages. The root is "/".
func JoinKeyPath(keyPath []string) string {
	if len(keyPath) == 0 {
		return "/"
	}
	return "/" + strings.Join(keyPath, "/")
}
