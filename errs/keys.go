// Package errs defines the error taxonomy of the optbook library.
// This file contains constants for all translation keys used throughout the library.
package errs

// Prefix for all optbook translation keys
const (
	prefixKey = "optbook"
)

// Error prefixes
const (
	ErrorPrefixKey = prefixKey + ".error"
	ParsePrefixKey = ErrorPrefixKey + ".parse"
)

// Declaration errors
const (
	ErrOptionMustHaveAtLeastShortOrLongNameKey = ErrorPrefixKey + ".option_must_have_at_least_short_or_long_name"
	ErrInvalidFormatForShortOptionNameKey      = ErrorPrefixKey + ".invalid_format_for_short_option_name"
	ErrInvalidFormatForLongOptionNameKey       = ErrorPrefixKey + ".invalid_format_for_long_option_name"
	ErrOutOfRangeKey                           = ErrorPrefixKey + ".out_of_range"
)

// Command-line errors
const (
	ErrUnrecognizedOptionKey          = ErrorPrefixKey + ".unrecognized_option"
	ErrOptionAlreadyAddedAsKey        = ErrorPrefixKey + ".option_already_added_as"
	ErrOptionExpectsArgumentKey       = ErrorPrefixKey + ".option_expects_argument"
	ErrOptionDoesNotTakeArgumentsKey  = ErrorPrefixKey + ".option_does_not_take_arguments"
	ErrOptionIsRequiredButNotAddedKey = ErrorPrefixKey + ".option_is_required_but_not_added"
	ErrArgumentWithoutOptionKey       = ErrorPrefixKey + ".argument_without_option"
	ErrSplitCommandLineKey            = ErrorPrefixKey + ".split_command_line"
	ErrDidYouMeanKey                  = ErrorPrefixKey + ".did_you_mean"
)

// Lookup errors
const (
	ErrAccessingOptionNotYetAddedKey      = ErrorPrefixKey + ".accessing_option_not_yet_added"
	ErrAccessingOptionWithoutArgumentsKey = ErrorPrefixKey + ".accessing_option_without_arguments"
	ErrOptionHasNoValueKey                = ErrorPrefixKey + ".option_has_no_value"
)

// Value conversion errors
const (
	ErrParseBoolKey     = ParsePrefixKey + ".bool"
	ErrParseIntKey      = ParsePrefixKey + ".int"
	ErrParseFloatKey    = ParsePrefixKey + ".float"
	ErrParseDurationKey = ParsePrefixKey + ".duration"
	ErrParseTimeKey     = ParsePrefixKey + ".time"
)
