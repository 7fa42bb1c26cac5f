package optbook

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/optbook/errs"
)

// Value returns the last argument of the option named name
func (m *OptionMap) Value(name string) (string, error) {
	values, err := m.Get(name)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", errs.ErrOptionHasNoValue.WithArgs(name)
	}

	return values[len(values)-1], nil
}

// GetBool interprets the option named name as a boolean. A presence-only option is true when
// its last occurrence used a regular name and false when it used the negated form (--no-verbose).
// An argument-taking option is converted with strconv.ParseBool.
func (m *OptionMap) GetBool(name string) (bool, error) {
	option, found := m.lookup(name)
	if !found {
		return false, errs.ErrUnrecognizedOption.WithArgs(name)
	}

	if !option.HasArguments() {
		entry, found := m.entries.Get(option.identity())
		if !found {
			return false, errs.ErrAccessingOptionNotYetAdded.WithArgs(name)
		}

		return !entry.option.IsNegated(entry.lastKey), nil
	}

	value, err := m.Value(name)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(name, value).Wrap(err)
	}

	return b, nil
}

// GetInt converts the last argument of the option named name to an integer of bitSize bits
func (m *OptionMap) GetInt(name string, bitSize int) (int64, error) {
	value, err := m.Value(name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(value, 0, bitSize)
	if err != nil {
		return 0, errs.ErrParseInt.WithArgs(name, value).Wrap(err)
	}

	return i, nil
}

// GetFloat converts the last argument of the option named name to a float of bitSize bits
func (m *OptionMap) GetFloat(name string, bitSize int) (float64, error) {
	value, err := m.Value(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, bitSize)
	if err != nil {
		return 0, errs.ErrParseFloat.WithArgs(name, value).Wrap(err)
	}

	return f, nil
}

func (m *OptionMap) GetDuration(name string) (time.Duration, error) {
	value, err := m.Value(name)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errs.ErrParseDuration.WithArgs(name, value).Wrap(err)
	}

	return d, nil
}

// GetTime parses the last argument of the option named name in any of the layouts understood
// by dateparse, e.g. 2024-03-01, "Mar 1 2024 10:00" or 1709287200. Values without a zone are
// interpreted in the local time zone.
func (m *OptionMap) GetTime(name string) (time.Time, error) {
	value, err := m.Value(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(name, value).Wrap(err)
	}

	return t, nil
}
