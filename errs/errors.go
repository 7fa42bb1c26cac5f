package errs

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/napalu/optbook/i18n"
)

// Declaration errors
var (
	ErrOptionMustHaveAtLeastShortOrLongName = i18n.NewError(ErrOptionMustHaveAtLeastShortOrLongNameKey)
	ErrInvalidFormatForShortOptionName      = i18n.NewError(ErrInvalidFormatForShortOptionNameKey)
	ErrInvalidFormatForLongOptionName       = i18n.NewError(ErrInvalidFormatForLongOptionNameKey)
	ErrOutOfRange                           = i18n.NewError(ErrOutOfRangeKey)
)

// Command-line errors
var (
	ErrUnrecognizedOption          = i18n.NewError(ErrUnrecognizedOptionKey)
	ErrOptionAlreadyAddedAs        = i18n.NewError(ErrOptionAlreadyAddedAsKey)
	ErrOptionExpectsArgument       = i18n.NewError(ErrOptionExpectsArgumentKey)
	ErrOptionDoesNotTakeArguments  = i18n.NewError(ErrOptionDoesNotTakeArgumentsKey)
	ErrOptionIsRequiredButNotAdded = i18n.NewError(ErrOptionIsRequiredButNotAddedKey)
	ErrArgumentWithoutOption       = i18n.NewError(ErrArgumentWithoutOptionKey)
	ErrSplitCommandLine            = i18n.NewError(ErrSplitCommandLineKey)
	ErrDidYouMean                  = i18n.NewError(ErrDidYouMeanKey)
)

// Lookup errors
var (
	ErrAccessingOptionNotYetAdded      = i18n.NewError(ErrAccessingOptionNotYetAddedKey)
	ErrAccessingOptionWithoutArguments = i18n.NewError(ErrAccessingOptionWithoutArgumentsKey)
	ErrOptionHasNoValue                = i18n.NewError(ErrOptionHasNoValueKey)
)

// Value conversion errors
var (
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrOptionMustHaveAtLeastShortOrLongName,
		ErrInvalidFormatForShortOptionName,
		ErrInvalidFormatForLongOptionName,
		ErrOutOfRange,
		ErrUnrecognizedOption,
		ErrOptionAlreadyAddedAs,
		ErrOptionExpectsArgument,
		ErrOptionDoesNotTakeArguments,
		ErrOptionIsRequiredButNotAdded,
		ErrArgumentWithoutOption,
		ErrSplitCommandLine,
		ErrDidYouMean,
		ErrAccessingOptionNotYetAdded,
		ErrAccessingOptionWithoutArguments,
		ErrOptionHasNoValue,
		ErrParseBool,
		ErrParseInt,
		ErrParseFloat,
		ErrParseDuration,
		ErrParseTime,
	},
}

// UpdateMessageProvider updates the message provider for all built-in errors.
//
// Example:
//
//	provider := i18n.NewLanguageMessageProvider(i18n.Default(), language.German)
//	errs.UpdateMessageProvider(provider)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}

// Locate describes the caller skip frames above Locate as file:function:line.
// Locate(0) describes the function calling Locate.
func Locate(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}

	function := "?"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '/'); i >= 0 {
			function = function[i+1:]
		}
	}

	return fmt.Sprintf("%s:%s:%d", filepath.Base(file), function, line)
}
