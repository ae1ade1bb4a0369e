package errors

import (
	"errors"
	"syscall"
)

// Category groups errors by who can act on them.
type Category int

const (
	CategoryUnknown Category = iota
	// CategoryUser is fixable by changing input: flags, palette, canvas.
	CategoryUser
	// CategorySystem is a failure of the machine or the commit server.
	CategorySystem
	// CategoryRecoverable may clear up on its own; the user pushes again.
	CategoryRecoverable
	// CategoryInternal is a bug.
	CategoryInternal
)

func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryRecoverable:
		return "recoverable"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// userSentinels are the painter's input errors.
var userSentinels = []error{
	ErrNoDarkestBracket,
	ErrNotVerified,
	ErrPushInFlight,
	ErrNothingToPush,
	ErrBracketOutOfRange,
	ErrInvalidBrush,
	ErrInvalidPalette,
	ErrInvalidServerURL,
	ErrInvalidDate,
	ErrNotATerminal,
}

// Classify determines the category of an error. Typed errors win over
// sentinels, sentinels over errno values.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	switch {
	case IsUserError(err):
		return CategoryUser
	case IsSystemError(err):
		return CategorySystem
	case IsRecoverableError(err):
		return CategoryRecoverable
	}

	for _, sentinel := range userSentinels {
		if errors.Is(err, sentinel) {
			return CategoryUser
		}
	}
	if errors.Is(err, ErrNetworkUnavailable) || errors.Is(err, ErrTimeout) {
		return CategoryRecoverable
	}
	if errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrPushFailed) {
		return CategorySystem
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EAGAIN, syscall.EINTR, syscall.ETIMEDOUT, syscall.ECONNREFUSED, syscall.ECONNRESET:
			return CategoryRecoverable
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.ENOENT, syscall.EIO, syscall.EROFS:
			return CategorySystem
		}
	}

	return CategoryUnknown
}

// ClassifiedError pins an error to an explicit category.
type ClassifiedError struct {
	Err      error
	Category Category
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// WithCategory wraps an error with an explicit category.
func WithCategory(err error, category Category) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{Err: err, Category: category}
}

// GetCategory returns the category set by WithCategory, or Classify's answer.
func GetCategory(err error) Category {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category
	}
	return Classify(err)
}

// FormatByCategory renders err for a status line or terminal: user errors
// with their suggestion, system errors prefixed, recoverable ones with the
// way to retry.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	switch GetCategory(err) {
	case CategoryUser:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return msg + "\n\nTry: " + suggestion
		}
		return msg
	case CategorySystem:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return "System error: " + msg + "\n\n" + suggestion
		}
		return "System error: " + msg
	case CategoryRecoverable:
		return msg + " (verify and push again)"
	default:
		return msg
	}
}
