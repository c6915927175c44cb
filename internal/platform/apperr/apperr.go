// Package apperr defines the closed set of failure sources the service
// distinguishes. Every failure carries exactly one Kind and wraps its cause.
package apperr

import (
	crerr "github.com/cockroachdb/errors"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindIO
	KindStorage
	KindConfigRead
	KindConfigParse
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindStorage:
		return "storage"
	case KindConfigRead:
		return "config_read"
	case KindConfigParse:
		return "config_parse"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with kind. A nil err stays nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind: kind,
		Op:   op,
		Err:  crerr.WithStackDepth(err, 1),
	}
}

// New builds a tagged failure without an underlying cause.
func New(kind Kind, op, msg string) error {
	return &Error{
		Kind: kind,
		Op:   op,
		Err:  crerr.NewWithDepth(1, msg),
	}
}

// KindOf reports the outermost Kind found in err's chain.
func KindOf(err error) Kind {
	var target *Error
	if crerr.As(err, &target) {
		return target.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
