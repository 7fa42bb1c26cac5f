package optbook

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/optbook/errs"
)

// Option declares a command-line option with a short name (-f), a long name (--file) or both.
// Its identity is the pair of names. An Option is a value: groups, parsers and option maps
// keep their own copies.
type Option struct {
	shortName         string
	longName          string
	representation    string
	description       string
	required          bool
	hasArguments      bool
	negatable         bool
	equalityValidator EqualityValidator
}

// NewOption creates an Option from its names and configuration. Either name may be empty but
// not both. Example:
//
//	file, err := NewOption("-f", "--file",
//		WithDescription("input file"),
//		WithArguments(true),
//		WithRequired(true))
func NewOption(shortName, longName string, configs ...ConfigureOptionFunc) (Option, error) {
	if shortName != "" && !IsShortOptionName(shortName) {
		return Option{}, errs.ErrInvalidFormatForShortOptionName.WithArgs(shortName)
	}
	if longName != "" && !IsLongOptionName(longName) {
		return Option{}, errs.ErrInvalidFormatForLongOptionName.WithArgs(longName)
	}
	if shortName == "" && longName == "" {
		return Option{}, errs.ErrOptionMustHaveAtLeastShortOrLongName
	}

	option := Option{
		shortName: shortName,
		longName:  longName,
	}

	var err error
	for _, config := range configs {
		config(&option, &err)
		if err != nil {
			return Option{}, err
		}
	}

	return option, nil
}

// MustOption is like NewOption but panics on error. It simplifies declaring option tables
// in package-level variables.
func MustOption(shortName, longName string, configs ...ConfigureOptionFunc) Option {
	option, err := NewOption(shortName, longName, configs...)
	if err != nil {
		panic(err)
	}

	return option
}

// IsShortOptionName reports whether name has the short form: exactly two characters, the first being '-'
func IsShortOptionName(name string) bool {
	return len(name) == 2 && name[0] == '-'
}

// IsLongOptionName reports whether name has the long form: longer than two characters and starting with "--"
func IsLongOptionName(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, longOptionPrefix)
}

// IsLongOptionNameWithArgument reports whether name is a long option carrying an inline value (--name=value)
func IsLongOptionNameWithArgument(name string) bool {
	return IsLongOptionName(name) && strings.IndexByte(name, argumentSeparator) >= 0
}

// IsOptionName reports whether name has any of the option forms
func IsOptionName(name string) bool {
	return IsShortOptionName(name) || IsLongOptionName(name) || IsLongOptionNameWithArgument(name)
}

// SplitOptionName separates an option token into its key and inline value. For tokens without
// an inline value the key is the token itself and hasValue is false.
func SplitOptionName(token string) (key, value string, hasValue bool) {
	if !IsLongOptionNameWithArgument(token) {
		return token, "", false
	}

	pos := strings.IndexByte(token, argumentSeparator)

	return token[:pos], token[pos+1:], true
}

func (o Option) ShortName() string {
	return o.shortName
}

// SetShortName replaces the short name. An empty name is accepted only while a long name exists.
// On error the Option is left unchanged.
func (o *Option) SetShortName(name string) error {
	if name == "" && o.longName == "" {
		return errs.ErrOptionMustHaveAtLeastShortOrLongName
	}
	if name != "" && !IsShortOptionName(name) {
		return errs.ErrInvalidFormatForShortOptionName.WithArgs(name)
	}
	o.shortName = name

	return nil
}

func (o Option) LongName() string {
	return o.longName
}

// SetLongName replaces the long name. An empty name is accepted only while a short name exists.
// On error the Option is left unchanged.
func (o *Option) SetLongName(name string) error {
	if name == "" && o.shortName == "" {
		return errs.ErrOptionMustHaveAtLeastShortOrLongName
	}
	if name != "" && !IsLongOptionName(name) {
		return errs.ErrInvalidFormatForLongOptionName.WithArgs(name)
	}
	o.longName = name

	return nil
}

// Name returns the short name when set, the long name otherwise
func (o Option) Name() string {
	if o.shortName != "" {
		return o.shortName
	}

	return o.longName
}

// Names returns the non-empty names of the Option, short name first
func (o Option) Names() []string {
	names := make([]string, 0, 2)
	if o.shortName != "" {
		names = append(names, o.shortName)
	}
	if o.longName != "" {
		names = append(names, o.longName)
	}

	return names
}

// Representation returns the display form of the Option. Unless set explicitly it is derived
// from the names, e.g. "-f, --file <FILE>" or "-v, --[no-]verbose".
func (o Option) Representation() string {
	if o.representation != "" {
		return o.representation
	}

	var sb strings.Builder
	if o.shortName != "" {
		sb.WriteString(o.shortName)
	}
	if o.longName != "" {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		if o.negatable {
			sb.WriteString("--[no-]")
			sb.WriteString(strings.TrimPrefix(o.longName, longOptionPrefix))
		} else {
			sb.WriteString(o.longName)
		}
	}
	if o.hasArguments {
		sb.WriteString(" <")
		sb.WriteString(o.metaVar())
		sb.WriteString(">")
	}

	return sb.String()
}

func (o Option) metaVar() string {
	name := strings.TrimPrefix(o.longName, longOptionPrefix)
	if name == "" {
		return defaultMetaVar
	}

	if metaVar := strcase.ToScreamingSnake(name); metaVar != "" {
		return metaVar
	}

	return defaultMetaVar
}

func (o *Option) SetRepresentation(representation string) {
	o.representation = representation
}

func (o Option) Description() string {
	return o.description
}

func (o *Option) SetDescription(description string) {
	o.description = description
}

// IsRequired reports whether a successful parse must contain the Option
func (o Option) IsRequired() bool {
	return o.required
}

func (o *Option) SetRequired(required bool) {
	o.required = required
}

// HasArguments reports whether the Option consumes a value: the following token for -f value
// and --file value, the inline part for --file=value
func (o Option) HasArguments() bool {
	return o.hasArguments
}

func (o *Option) SetHasArguments(hasArguments bool) {
	o.hasArguments = hasArguments
}

// IsNegatable reports whether --no-<name> is accepted as a name of the Option
func (o Option) IsNegatable() bool {
	return o.negatable
}

func (o *Option) SetNegatable(negatable bool) {
	o.negatable = negatable
}

func (o Option) HasEqualityValidator() bool {
	return o.equalityValidator != nil
}

func (o Option) EqualityValidator() EqualityValidator {
	return o.equalityValidator
}

// SetEqualityValidator installs a validator; nil restores exact name matching
func (o *Option) SetEqualityValidator(validator EqualityValidator) {
	o.equalityValidator = validator
}

// Matches reports whether name refers to the Option. An equality validator, when present,
// decides alone. Otherwise name must equal the short or long name, or the negated long name
// of a negatable Option.
func (o Option) Matches(name string) bool {
	if o.equalityValidator != nil {
		return o.equalityValidator(name)
	}

	if name == "" {
		return false
	}
	if name == o.shortName || name == o.longName {
		return true
	}

	return o.negatable && o.longName != "" && name == o.NegatedName()
}

// NegatedName returns --no-<name> for an Option with a long name, an empty string otherwise
func (o Option) NegatedName() string {
	if o.longName == "" {
		return ""
	}

	return negatedOptionPrefix + strings.TrimPrefix(o.longName, longOptionPrefix)
}

// IsNegated reports whether name is the negated form of the Option
func (o Option) IsNegated(name string) bool {
	return o.negatable && o.longName != "" && name == o.NegatedName()
}

// Equal compares identities: both short and long names must be equal. Validators are not consulted.
func (o Option) Equal(other Option) bool {
	return o.shortName == other.shortName && o.longName == other.longName
}

func (o Option) String() string {
	return o.Representation()
}

func (o Option) identity() identity {
	return identity{short: o.shortName, long: o.longName}
}
