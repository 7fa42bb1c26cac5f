package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type mapProvider map[string]string

func (m mapProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}

	return key
}

func TestTrError(t *testing.T) {
	provider := mapProvider{
		"test.not_found": "%s not found",
		"test.hint":      "try %s",
	}
	sentinel := NewErrorWithProvider("test.not_found", provider)
	hint := NewErrorWithProvider("test.hint", provider)

	t.Run("args", func(t *testing.T) {
		err := sentinel.WithArgs("-x")
		assert.Equal(t, "-x not found", err.Error())
		assert.Equal(t, []interface{}{"-x"}, err.Args())
		assert.Equal(t, "test.not_found", err.Key())
		assert.True(t, errors.Is(err, sentinel))
		assert.False(t, errors.Is(err, hint))
		assert.Nil(t, sentinel.Args(), "WithArgs leaves the sentinel untouched")
	})

	t.Run("wrap translatable", func(t *testing.T) {
		err := sentinel.WithArgs("-x").Wrap(hint.WithArgs("-y"))
		assert.Equal(t, "-x not found: try -y", err.Error())
		assert.True(t, errors.Is(err, sentinel))
		assert.True(t, errors.Is(err, hint))
	})

	t.Run("wrap plain", func(t *testing.T) {
		cause := errors.New("boom")
		err := sentinel.WithArgs("-x").Wrap(cause)
		assert.Equal(t, "-x not found: boom", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("location", func(t *testing.T) {
		err := sentinel.WithArgs("-x").At("parser.go:optbook.Parse:42")
		assert.Equal(t, "parser.go:optbook.Parse:42: -x not found", err.Error())
		assert.Equal(t, "parser.go:optbook.Parse:42", err.Where())
		assert.True(t, errors.Is(err, sentinel), "location is not part of the identity")
	})

	t.Run("fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("context: %w", sentinel.WithArgs("-x"))
		assert.True(t, errors.Is(err, sentinel))

		var te TranslatableError
		assert.True(t, errors.As(err, &te))
		assert.Equal(t, "test.not_found", te.Key())
	})

	t.Run("missing key", func(t *testing.T) {
		err := NewErrorWithProvider("test.unknown", provider)
		assert.Equal(t, "test.unknown", err.Error())
		assert.Equal(t, "test.unknown", NewErrorWithProvider("test.unknown", nil).Error())
	})
}

func TestTrError_Format(t *testing.T) {
	b, err := NewBundle()
	if err != nil {
		t.Fatal(err)
	}

	e := NewErrorWithProvider(unrecognizedKey, NewBundleMessageProvider(b)).WithArgs("-x")
	assert.Equal(t, "unrecognized option -x", e.Error())
	assert.Equal(t, "unbekannte Option -x", e.Format(NewLanguageMessageProvider(b, language.German)))

	e.SetProvider(NewLanguageMessageProvider(b, language.German))
	assert.Equal(t, "unbekannte Option -x", e.Error())
}
