package optbook

import (
	"log/slog"

	"github.com/napalu/optbook/errs"
)

// WithGroup is a wrapper for AddGroup. Registering a group equal to one already present is a no-op.
func WithGroup(group Group) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if group == nil {
			*err = errs.ErrOutOfRange.WithArgs("group")
			return
		}
		parser.AddGroup(group)
	}
}

// WithOptions registers a new Book holding options
func WithOptions(options ...Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.AddGroup(NewBook(options...))
	}
}

// WithLogger sets the logger receiving debug records about token classification. A nil logger
// silences the parser.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}

// WithSuggestionThreshold sets the maximum edit distance for "did you mean" hints on
// unrecognized options. Zero disables suggestions.
func WithSuggestionThreshold(threshold int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if threshold < 0 {
			*err = errs.ErrOutOfRange.WithArgs(threshold)
			return
		}
		parser.suggestionThreshold = threshold
	}
}

// WithSourceLocation prefixes parse errors with the file, function and line where they were detected
func WithSourceLocation(enabled bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.sourceLocation = enabled
	}
}
