package optbook

// EqualityValidator decides whether a command-line name refers to an Option. When set on an
// Option it replaces the default exact short/long name comparison, which makes aliases and
// negated forms such as --no-verbose first-class names of the Option.
type EqualityValidator func(name string) bool

// ConfigureOptionFunc is used when defining an Option
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureParserFunc is used when defining a Parser
type ConfigureParserFunc func(parser *Parser, err *error)

// Group is a registration unit of Options. Members are unique by identity (short and long
// name); adding a duplicate is a no-op. Name lookups go through Option.Matches so custom
// validators take part.
type Group interface {
	// Add inserts options not yet present by identity
	Add(options ...Option)
	// Contains reports whether a member matches name
	Contains(name string) bool
	// ContainsOption reports whether a member has the identity of option
	ContainsOption(option Option) bool
	// Get returns the first member matching name or errs.ErrOutOfRange
	Get(name string) (Option, error)
	// GetOption returns the member with the identity of option or errs.ErrOutOfRange
	GetOption(option Option) (Option, error)
	// Options returns a copy of the members in registration order
	Options() []Option
	Len() int
	Empty() bool
	// Equal reports set equality: same size and every member present by identity in other
	Equal(other Group) bool
}

const (
	shortOptionPrefix   = "-"
	longOptionPrefix    = "--"
	negatedOptionPrefix = "--no-"
	argumentSeparator   = '='
	valueListSeparator  = ','
	defaultMetaVar      = "ARG"
)

// DefaultSuggestionThreshold is the maximum edit distance between an unrecognized name and a
// registered one for the latter to be suggested
const DefaultSuggestionThreshold = 2

// identity is the comparable form of an Option's (short, long) name pair
type identity struct {
	short string
	long  string
}
