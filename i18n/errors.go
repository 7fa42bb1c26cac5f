package i18n

import (
	"errors"
	"fmt"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Where() string
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	At(where string) TranslatableError
	Is(target error) bool
	Format(provider MessageProvider) string
	SetProvider(provider MessageProvider)
}

// TrError represents a translatable error with optional formatting arguments,
// an optional source location and error wrapping support.
//
// Example usage:
//
//	err := NewError("optbook.error.unrecognized_option")
//	err = err.WithArgs("-x")
//	err = err.Wrap(originalError)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
	// Optional location prefix, not part of the error's identity
	where           string
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return NewErrorWithProvider(key, getDefaultProvider())
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	sentinel := errors.New(key)
	return &TrError{
		sentinel:        sentinel,
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args and prefixed with the location if provided
func (e *TrError) Error() string {
	return e.Format(e.messageProvider)
}

// Format renders the error with the messages of provider
func (e *TrError) Format(provider MessageProvider) string {
	msg := e.key
	if provider != nil {
		msg = provider.GetMessage(e.key)
	}
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		msg = fmt.Sprintf("%s: %s", msg, formatWrapped(e.wrapped, provider))
	}
	if e.where != "" {
		return e.where + ": " + msg
	}

	return msg
}

func formatWrapped(err error, provider MessageProvider) string {
	if te, ok := err.(TranslatableError); ok {
		return te.Format(provider)
	}

	return err.Error()
}

func (e *TrError) clone() *TrError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         e.wrapped,
		where:           e.where,
		messageProvider: e.messageProvider,
	}
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := e.clone()
	c.args = args

	return c
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	c := e.clone()
	c.wrapped = err

	return c
}

// At returns a copy of the error whose message is prefixed with where
func (e *TrError) At(where string) TranslatableError {
	c := e.clone()
	c.where = where

	return c
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Where returns the source location, empty when none was attached
func (e *TrError) Where() string {
	return e.where
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) SetProvider(provider MessageProvider) {
	e.messageProvider = provider
}
