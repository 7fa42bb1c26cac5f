package optbook

import (
	"io"
	"log/slog"

	"github.com/napalu/optbook/errs"
	"github.com/napalu/optbook/parse"
)

// Parser matches an argument vector against registered option Groups. Each parse produces a
// new ParseResult; the Parser additionally remembers the last successful one.
//
// A Parser is not safe for concurrent use. Groups are held by reference, so options added to
// a registered Group after registration take part in subsequent parses.
type Parser struct {
	groups              []Group
	logger              *slog.Logger
	suggestionThreshold int
	sourceLocation      bool
	last                *ParseResult
}

// NewParser returns a Parser without groups
func NewParser() *Parser {
	return &Parser{
		groups:              []Group{},
		logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		suggestionThreshold: DefaultSuggestionThreshold,
	}
}

// NewParserWith allows initialization of Parser using option functions. The caller should always test
// for error on return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithGroup(NewBook(
//			MustOption("-f", "--file", WithArguments(true), WithRequired(true)),
//			MustOption("-v", "--verbose", WithNegation()))),
//		WithSuggestionThreshold(1))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// NewParserWithGroups returns a Parser with groups registered in order
func NewParserWithGroups(groups ...Group) *Parser {
	parser := NewParser()
	for _, g := range groups {
		parser.AddGroup(g)
	}

	return parser
}

// AddGroup registers g unless it is nil or an equal group is already registered. It reports
// whether g was added.
func (p *Parser) AddGroup(g Group) bool {
	if g == nil || p.HasGroup(g) {
		return false
	}
	p.groups = append(p.groups, g)

	return true
}

// RemoveGroup unregisters every group equal to g and reports whether any was removed
func (p *Parser) RemoveGroup(g Group) bool {
	kept := p.groups[:0]
	removed := false
	for _, registered := range p.groups {
		if registered.Equal(g) {
			removed = true
			continue
		}
		kept = append(kept, registered)
	}
	p.groups = kept

	return removed
}

// HasGroup reports whether a group equal to g is registered
func (p *Parser) HasGroup(g Group) bool {
	if g == nil {
		return false
	}
	for _, registered := range p.groups {
		if registered.Equal(g) {
			return true
		}
	}

	return false
}

// Groups returns the registered groups in registration order
func (p *Parser) Groups() []Group {
	groups := make([]Group, len(p.groups))
	copy(groups, p.groups)

	return groups
}

// ClearGroups unregisters all groups
func (p *Parser) ClearGroups() {
	p.groups = []Group{}
}

// Empty reports whether no group is registered
func (p *Parser) Empty() bool {
	return len(p.groups) == 0
}

// SetSuggestionThreshold sets the maximum edit distance for "did you mean" hints. Values below
// one disable them.
func (p *Parser) SetSuggestionThreshold(threshold int) {
	p.suggestionThreshold = max(threshold, 0)
}

// SetLogger replaces the logger; nil silences the parser
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = logger
}

// Parse parses args following the os.Args convention: args[0] is the program name and is skipped.
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	return p.ParseArgv(len(args), args)
}

// ParseArgv parses the first argc entries of argv, skipping the program name at index 0.
// Scanning stops at argc or at the end of argv, whichever comes first.
//
// Any error aborts the whole parse: no partial result is returned and the Parser forgets its
// previous result.
func (p *Parser) ParseArgv(argc int, argv []string) (*ParseResult, error) {
	limit := min(argc, len(argv))

	var args []string
	if limit > 1 {
		args = argv[1:limit]
	}

	result, err := p.scan(args)
	if err != nil {
		p.last = nil
		p.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	p.last = result
	p.logger.Debug("parse complete",
		"options", len(result.options),
		"positional", len(result.positionals))

	return result, nil
}

// ParseCommandLine splits cmdLine with shell quoting rules and parses the words. The first word
// is the program name.
func (p *Parser) ParseCommandLine(cmdLine string) (*ParseResult, error) {
	args, err := parse.Split(cmdLine)
	if err != nil {
		p.last = nil
		return nil, p.fail(errs.ErrSplitCommandLine.WithArgs(cmdLine).Wrap(err))
	}

	return p.Parse(args)
}

// Result returns the result of the last successful parse, nil when idle
func (p *Parser) Result() *ParseResult {
	return p.last
}

// Options returns the option tokens of the last successful parse
func (p *Parser) Options() []string {
	if p.last == nil {
		return []string{}
	}

	return p.last.Options()
}

// PositionalOptions returns the positional tokens of the last successful parse
func (p *Parser) PositionalOptions() []string {
	if p.last == nil {
		return []string{}
	}

	return p.last.PositionalOptions()
}

// Contains returns the key form under which the option named name was recorded by the last
// successful parse
func (p *Parser) Contains(name string) (string, bool) {
	if p.last == nil {
		return "", false
	}

	return p.last.Contains(name)
}

// ContainsOption returns the key form under which option was recorded by the last successful parse
func (p *Parser) ContainsOption(option Option) (string, bool) {
	if p.last == nil {
		return "", false
	}

	return p.last.ContainsOption(option)
}
