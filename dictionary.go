package optbook

import (
	"github.com/napalu/optbook/errs"
	"github.com/napalu/optbook/types/orderedmap"
)

// Dictionary is the set Group flavor: members are indexed by identity, which makes identity
// lookups constant time and allows removal. Iteration follows insertion order.
type Dictionary struct {
	options *orderedmap.OrderedMap[identity, Option]
}

// NewDictionary creates a Dictionary from options, skipping duplicates by identity
func NewDictionary(options ...Option) *Dictionary {
	d := &Dictionary{options: orderedmap.NewOrderedMap[identity, Option]()}
	d.Add(options...)

	return d
}

func (d *Dictionary) Add(options ...Option) {
	for _, option := range options {
		if !d.options.Has(option.identity()) {
			d.options.Set(option.identity(), option)
		}
	}
}

// Remove deletes the member with the identity of option and reports whether it was present
func (d *Dictionary) Remove(option Option) bool {
	return d.options.Delete(option.identity())
}

// Clear removes every member
func (d *Dictionary) Clear() {
	d.options.Clear()
}

func (d *Dictionary) Contains(name string) bool {
	_, found := d.find(name)
	return found
}

func (d *Dictionary) ContainsOption(option Option) bool {
	return d.options.Has(option.identity())
}

func (d *Dictionary) Get(name string) (Option, error) {
	if option, found := d.find(name); found {
		return option, nil
	}

	return Option{}, errs.ErrOutOfRange.WithArgs(name)
}

func (d *Dictionary) GetOption(option Option) (Option, error) {
	if member, found := d.options.Get(option.identity()); found {
		return member, nil
	}

	return Option{}, errs.ErrOutOfRange.WithArgs(option.Name())
}

func (d *Dictionary) Options() []Option {
	return d.options.Values()
}

func (d *Dictionary) Len() int {
	return d.options.Count()
}

func (d *Dictionary) Empty() bool {
	return d.options.Count() == 0
}

func (d *Dictionary) Equal(other Group) bool {
	return groupsEqual(d, other)
}

func (d *Dictionary) find(name string) (Option, bool) {
	for iter := d.options.Front(); iter != nil; iter = iter.Next() {
		if iter.Value.Matches(name) {
			return iter.Value, true
		}
	}

	return Option{}, false
}
