package optbook

// ParseResult is the outcome of one successful parse. It is immutable: accessors return copies.
type ParseResult struct {
	options     []string
	positionals []string
	recorded    []recordedOption
	groups      []Group
}

// recordedOption is an option occurrence: the key form as written on the command line
// (without inline value) and the Option it resolved to
type recordedOption struct {
	key    string
	option Option
}

func newParseResult(groups []Group) *ParseResult {
	return &ParseResult{
		options:     []string{},
		positionals: []string{},
		recorded:    []recordedOption{},
		groups:      groups,
	}
}

// Options returns option tokens and their consumed arguments in command-line order, e.g.
// [-f a.txt --verbose --file=b.txt]
func (r *ParseResult) Options() []string {
	options := make([]string, len(r.options))
	copy(options, r.options)

	return options
}

// PositionalOptions returns the tokens which are neither option names nor consumed arguments
func (r *ParseResult) PositionalOptions() []string {
	positionals := make([]string, len(r.positionals))
	copy(positionals, r.positionals)

	return positionals
}

// Contains returns the key form under which the option named name occurred first, e.g.
// Contains("-f") yields "--file" for a command line containing --file=a.txt.
func (r *ParseResult) Contains(name string) (string, bool) {
	option, found := r.lookup(name)
	if !found {
		return "", false
	}

	return r.occurrence(option)
}

// ContainsOption returns the key form under which option occurred first. The registered
// instance of option is used so that its equality validator takes part.
func (r *ParseResult) ContainsOption(option Option) (string, bool) {
	for _, g := range r.groups {
		if registered, err := g.GetOption(option); err == nil {
			return r.occurrence(registered)
		}
	}

	return r.occurrence(option)
}

func (r *ParseResult) lookup(name string) (Option, bool) {
	for _, g := range r.groups {
		if option, err := g.Get(name); err == nil {
			return option, true
		}
	}

	return Option{}, false
}

func (r *ParseResult) occurrence(option Option) (string, bool) {
	for _, rec := range r.recorded {
		if rec.option.Equal(option) || option.Matches(rec.key) {
			return rec.key, true
		}
	}

	return "", false
}

func (r *ParseResult) record(key string, option Option) {
	r.recorded = append(r.recorded, recordedOption{key: key, option: option})
}
