package i18n

import (
	"sync"

	"golang.org/x/text/language"
)

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider using a bundle. It always reads the
// bundle's current default language, so switching the language of the bundle
// re-localizes every error created against it.
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
	}
}

// GetMessage returns the message for the given key from the bundle, or the key itself
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	if msg, ok := p.bundle.Lookup(p.bundle.GetDefaultLanguage(), key); ok {
		return msg
	}

	return key
}

// LanguageMessageProvider pins a bundle to one language regardless of its default
type LanguageMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewLanguageMessageProvider creates a provider answering in lang
func NewLanguageMessageProvider(bundle *Bundle, lang language.Tag) *LanguageMessageProvider {
	return &LanguageMessageProvider{bundle: bundle, lang: lang}
}

func (p *LanguageMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	if msg, ok := p.bundle.Lookup(p.lang, key); ok {
		return msg
	}

	return key
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider for errors created afterwards
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
