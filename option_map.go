package optbook

import (
	"github.com/napalu/optbook/errs"
	"github.com/napalu/optbook/internal/util"
	"github.com/napalu/optbook/types/orderedmap"
)

// OptionMap accumulates the arguments of parsed options per Option identity. Entries are keyed
// by the key form first seen on the command line, so -f a.txt followed by --file b.txt yields a
// single entry "-f" holding [a.txt b.txt].
//
// An OptionMap is not safe for concurrent use.
type OptionMap struct {
	groups  []Group
	entries *orderedmap.OrderedMap[identity, *optionEntry]
}

type optionEntry struct {
	key     string
	lastKey string
	option  Option
	values  []string
	count   int
}

// NewOptionMap returns an OptionMap resolving names through groups
func NewOptionMap(groups ...Group) *OptionMap {
	m := &OptionMap{
		groups:  []Group{},
		entries: orderedmap.NewOrderedMap[identity, *optionEntry](),
	}
	for _, g := range groups {
		m.AddGroup(g)
	}

	return m
}

// AddGroup registers g unless it is nil, empty or equal to a group already registered. It
// reports whether g was added.
func (m *OptionMap) AddGroup(g Group) bool {
	if g == nil || g.Empty() || m.HasGroup(g) {
		return false
	}
	m.groups = append(m.groups, g)

	return true
}

// HasGroup reports whether a group equal to g is registered
func (m *OptionMap) HasGroup(g Group) bool {
	if g == nil {
		return false
	}
	for _, registered := range m.groups {
		if registered.Equal(g) {
			return true
		}
	}

	return false
}

// Empty reports whether no group is registered
func (m *OptionMap) Empty() bool {
	return len(m.groups) == 0
}

// AddResult replays the option tokens of a ParseResult
func (m *OptionMap) AddResult(result *ParseResult) error {
	if result == nil {
		return nil
	}

	return m.AddFromParsed(result.Options())
}

type replayStep struct {
	key    string
	option Option
	values []string
}

// AddFromParsed replays tokens as produced by Parser.Options. Option tokens create or extend the
// entry of their Option; inline values of --name=a,b are split on commas with empty segments
// dropped; plain tokens are appended to the entry of the immediately preceding option token.
// On error the OptionMap is left unchanged.
func (m *OptionMap) AddFromParsed(tokens []string) error {
	steps := make([]*replayStep, 0, len(tokens))

	var current *replayStep
	for _, token := range tokens {
		if !IsOptionName(token) {
			if current == nil {
				return errs.ErrArgumentWithoutOption.WithArgs(token)
			}
			if !current.option.HasArguments() {
				return errs.ErrOptionDoesNotTakeArguments.WithArgs(current.key)
			}
			current.values = append(current.values, token)
			continue
		}

		key, value, hasValue := SplitOptionName(token)
		option, found := m.lookup(key)
		if !found {
			return errs.ErrUnrecognizedOption.WithArgs(key)
		}
		if hasValue && !option.HasArguments() {
			return errs.ErrOptionDoesNotTakeArguments.WithArgs(key)
		}

		current = &replayStep{key: key, option: option, values: []string{}}
		if hasValue {
			current.values = append(current.values, util.SplitNonEmpty(value, valueListSeparator)...)
		}
		steps = append(steps, current)
	}

	for _, step := range steps {
		m.apply(step)
	}

	return nil
}

func (m *OptionMap) apply(step *replayStep) {
	id := step.option.identity()
	entry, found := m.entries.Get(id)
	if !found {
		entry = &optionEntry{
			key:    step.key,
			option: step.option,
			values: []string{},
		}
		m.entries.Set(id, entry)
	}
	entry.lastKey = step.key
	entry.count++
	entry.values = append(entry.values, step.values...)
}

// Contains returns the key form under which the option named name was first recorded
func (m *OptionMap) Contains(name string) (string, bool) {
	option, found := m.lookup(name)
	if !found {
		return "", false
	}

	entry, found := m.entries.Get(option.identity())
	if !found {
		return "", false
	}

	return entry.key, true
}

// ContainsOption reports whether option has an entry
func (m *OptionMap) ContainsOption(option Option) bool {
	return m.entries.Has(option.identity())
}

// Get returns the accumulated arguments of the option named name
func (m *OptionMap) Get(name string) ([]string, error) {
	option, found := m.lookup(name)
	if !found {
		return nil, errs.ErrUnrecognizedOption.WithArgs(name)
	}

	return m.values(name, option)
}

// GetOption returns the accumulated arguments of option
func (m *OptionMap) GetOption(option Option) ([]string, error) {
	registered, found := m.lookupOption(option)
	if !found {
		return nil, errs.ErrUnrecognizedOption.WithArgs(option.Name())
	}

	return m.values(registered.Name(), registered)
}

func (m *OptionMap) values(name string, option Option) ([]string, error) {
	entry, found := m.entries.Get(option.identity())
	if !found {
		return nil, errs.ErrAccessingOptionNotYetAdded.WithArgs(name)
	}
	if !entry.option.HasArguments() {
		return nil, errs.ErrAccessingOptionWithoutArguments.WithArgs(name)
	}

	values := make([]string, len(entry.values))
	copy(values, entry.values)

	return values, nil
}

// Count returns how many times the option named name occurred, zero when it has no entry
func (m *OptionMap) Count(name string) int {
	option, found := m.lookup(name)
	if !found {
		return 0
	}
	if entry, found := m.entries.Get(option.identity()); found {
		return entry.count
	}

	return 0
}

// Keys returns the key forms of all entries in first-seen order
func (m *OptionMap) Keys() []string {
	keys := make([]string, 0, m.entries.Count())
	for it := m.entries.Front(); it != nil; it = it.Next() {
		keys = append(keys, it.Value.key)
	}

	return keys
}

// Len returns the number of entries
func (m *OptionMap) Len() int {
	return m.entries.Count()
}

// Reset drops all entries. Registered groups are kept.
func (m *OptionMap) Reset() {
	m.entries.Clear()
}

func (m *OptionMap) lookup(name string) (Option, bool) {
	for _, g := range m.groups {
		if option, err := g.Get(name); err == nil {
			return option, true
		}
	}

	return Option{}, false
}

func (m *OptionMap) lookupOption(option Option) (Option, bool) {
	for _, g := range m.groups {
		if registered, err := g.GetOption(option); err == nil {
			return registered, true
		}
	}

	return Option{}, false
}
