package errs

import (
	"errors"

	"github.com/napalu/optbook/i18n"
)

// ErrWithProvider renders a TranslatableError with a specific MessageProvider
// without touching the shared sentinel
type ErrWithProvider struct {
	te       i18n.TranslatableError
	provider i18n.MessageProvider
}

// WithProvider creates a new ErrWithProvider that wraps a TranslatableError with a specific MessageProvider
func WithProvider(te i18n.TranslatableError, provider i18n.MessageProvider) error {
	return &ErrWithProvider{
		te:       te,
		provider: provider,
	}
}

// Localize renders err with provider when err carries a TranslatableError and
// returns it unchanged otherwise
func Localize(err error, provider i18n.MessageProvider) error {
	var te i18n.TranslatableError
	if err == nil || provider == nil || !errors.As(err, &te) {
		return err
	}

	return WithProvider(te, provider)
}

func (e *ErrWithProvider) Error() string {
	return e.te.Format(e.provider)
}

func (e *ErrWithProvider) Unwrap() error {
	return e.te
}

func (e *ErrWithProvider) Is(target error) bool {
	return errors.Is(e.te, target)
}

func (e *ErrWithProvider) As(target interface{}) bool {
	return errors.As(e.te, target)
}
