package optbook

import "github.com/napalu/optbook/errs"

// Book is the ordered Group flavor: members keep their registration order.
type Book struct {
	options []Option
}

// NewBook creates a Book from options, skipping duplicates by identity
func NewBook(options ...Option) *Book {
	b := &Book{options: make([]Option, 0, len(options))}
	b.Add(options...)

	return b
}

func (b *Book) Add(options ...Option) {
	for _, option := range options {
		if !b.ContainsOption(option) {
			b.options = append(b.options, option)
		}
	}
}

func (b *Book) Contains(name string) bool {
	return b.find(name) >= 0
}

func (b *Book) ContainsOption(option Option) bool {
	return b.findOption(option) >= 0
}

func (b *Book) Get(name string) (Option, error) {
	if i := b.find(name); i >= 0 {
		return b.options[i], nil
	}

	return Option{}, errs.ErrOutOfRange.WithArgs(name)
}

func (b *Book) GetOption(option Option) (Option, error) {
	if i := b.findOption(option); i >= 0 {
		return b.options[i], nil
	}

	return Option{}, errs.ErrOutOfRange.WithArgs(option.Name())
}

func (b *Book) Options() []Option {
	options := make([]Option, len(b.options))
	copy(options, b.options)

	return options
}

func (b *Book) Len() int {
	return len(b.options)
}

func (b *Book) Empty() bool {
	return len(b.options) == 0
}

func (b *Book) Equal(other Group) bool {
	return groupsEqual(b, other)
}

func (b *Book) find(name string) int {
	for i := range b.options {
		if b.options[i].Matches(name) {
			return i
		}
	}

	return -1
}

func (b *Book) findOption(option Option) int {
	for i := range b.options {
		if b.options[i].Equal(option) {
			return i
		}
	}

	return -1
}

// groupsEqual implements set equality shared by every Group flavor
func groupsEqual(g, other Group) bool {
	if g == nil || other == nil {
		return g == nil && other == nil
	}
	if g.Len() != other.Len() {
		return false
	}

	for _, option := range g.Options() {
		if !other.ContainsOption(option) {
			return false
		}
	}

	return true
}
