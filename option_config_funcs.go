package optbook

import "github.com/napalu/optbook/errs"

// WithRepresentation overrides the derived display form, e.g. "-v, --[no-]verbose"
func WithRepresentation(representation string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.representation = representation
	}
}

// WithDescription the description is free-form text for usage output
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.description = description
	}
}

// WithRequired makes parsing fail when the option is absent from the command line
func WithRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.required = required
	}
}

// WithArguments declares that the option consumes a value, either the next token
// (-f a.txt, --file a.txt) or an inline list (--file=a.txt,b.txt)
func WithArguments(hasArguments bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.hasArguments = hasArguments
	}
}

// WithEqualityValidator replaces exact name matching with validator. The validator sees every
// candidate name and must also accept the option's own names if they should keep working.
func WithEqualityValidator(validator EqualityValidator) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.equalityValidator = validator
	}
}

// WithNegation accepts --no-<name> as a name of the option. It requires a long name.
func WithNegation() ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.longName == "" {
			*err = errs.ErrInvalidFormatForLongOptionName.WithArgs(negatedOptionPrefix)
			return
		}
		option.negatable = true
	}
}
