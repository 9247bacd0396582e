package configfile

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeDirUnavailable indicates the preferred directory is missing and could not be created
	ErrTypeDirUnavailable ErrorType = iota
	// ErrTypeWrite indicates the config file could not be written
	ErrTypeWrite
	// ErrTypeRead indicates the config file could not be read after it was opened
	ErrTypeRead
	// ErrTypeUnknownOption indicates a name that is not in the registry
	ErrTypeUnknownOption
	// ErrTypeInvalidValue indicates text that does not decode for the option's kind
	ErrTypeInvalidValue
	// ErrTypeDuplicateOption indicates a registry declared the same name twice
	ErrTypeDuplicateOption
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeDirUnavailable:
		return "Directory Unavailable"
	case ErrTypeWrite:
		return "Write Error"
	case ErrTypeRead:
		return "Read Error"
	case ErrTypeUnknownOption:
		return "Unknown Option"
	case ErrTypeInvalidValue:
		return "Invalid Value"
	case ErrTypeDuplicateOption:
		return "Duplicate Option"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by registry, load and save operations
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Path    string    // File or directory involved (if any)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewDirUnavailableError creates an error for a config directory that cannot be created
func NewDirUnavailableError(dir string, err error) *Error {
	return &Error{
		Type:    ErrTypeDirUnavailable,
		Message: "couldn't get config path",
		Path:    dir,
		Err:     err,
	}
}

// NewWriteError creates an error for a failed save
func NewWriteError(message, path string, err error) *Error {
	return &Error{
		Type:    ErrTypeWrite,
		Message: message,
		Path:    path,
		Err:     err,
	}
}

// NewReadError creates an error for a failed read of an opened file
func NewReadError(path string, err error) *Error {
	return &Error{
		Type:    ErrTypeRead,
		Message: "failed to read config file",
		Path:    path,
		Err:     err,
	}
}

// NewUnknownOptionError creates an error for a name missing from the registry
func NewUnknownOptionError(name string) *Error {
	return &Error{
		Type:    ErrTypeUnknownOption,
		Message: fmt.Sprintf("unknown option '%s'", name),
	}
}

// NewInvalidValueError creates an error for text that does not decode
func NewInvalidValueError(name, value string, kind Kind, err error) *Error {
	return &Error{
		Type:    ErrTypeInvalidValue,
		Message: fmt.Sprintf("invalid %s value '%s' for option '%s'", kind, value, name),
		Err:     err,
	}
}

func isType(err error, t ErrorType) bool {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Type == t
	}
	return false
}

// IsDirUnavailable checks if an error means the config directory could not be created
func IsDirUnavailable(err error) bool {
	return isType(err, ErrTypeDirUnavailable)
}

// IsWriteError checks if an error is a save failure
func IsWriteError(err error) bool {
	return isType(err, ErrTypeWrite)
}

// IsUnknownOption checks if an error is an unknown option error
func IsUnknownOption(err error) bool {
	return isType(err, ErrTypeUnknownOption)
}

// IsInvalidValue checks if an error is a value decoding error
func IsInvalidValue(err error) bool {
	return isType(err, ErrTypeInvalidValue)
}
