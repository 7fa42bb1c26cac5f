package optbook

import (
	"errors"
	"testing"
	"time"

	"github.com/napalu/optbook/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseInto(t *testing.T, m *OptionMap, groups []Group, args ...string) *ParseResult {
	t.Helper()

	result, err := NewParserWithGroups(groups...).Parse(append([]string{"prog"}, args...))
	require.NoError(t, err)
	require.NoError(t, m.AddResult(result))

	return result
}

func TestOptionMap_CommaSplit(t *testing.T) {
	book := NewBook(MustOption("-f", "--file", WithArguments(true)))
	m := NewOptionMap(book)

	parseInto(t, m, []Group{book}, "--file=a.txt,b.txt,,c.txt")

	values, err := m.Get("-f")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, values)

	key, found := m.Contains("-f")
	assert.True(t, found)
	assert.Equal(t, "--file", key)
}

func TestOptionMap_MixedInput(t *testing.T) {
	book := NewBook(MustOption("-f", "--file", WithArguments(true)))
	m := NewOptionMap(book)

	result := parseInto(t, m, []Group{book}, "-f", "a.txt", "pos1", "--file", "b.txt", "pos2")
	assert.Equal(t, []string{"pos1", "pos2"}, result.PositionalOptions())

	values, err := m.Get("-f")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, values)

	values, err = m.Get("--file")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, values)

	assert.Equal(t, []string{"-f"}, m.Keys(), "entries are keyed by the first-seen form")
	assert.Equal(t, 2, m.Count("--file"))
	assert.Equal(t, 1, m.Len())
}

func TestOptionMap_AccumulatesAcrossReplays(t *testing.T) {
	book := NewBook(MustOption("-f", "--file", WithArguments(true)))
	m := NewOptionMap(book)

	require.NoError(t, m.AddFromParsed([]string{"--file=a,b"}))
	require.NoError(t, m.AddFromParsed([]string{"-f", "a"}))

	values, err := m.Get("-f")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, values, "values are never deduplicated")

	key, _ := m.Contains("-f")
	assert.Equal(t, "--file", key)
}

func TestOptionMap_EmptyInlineListCreatesEntry(t *testing.T) {
	book := NewBook(MustOption("-f", "--file", WithArguments(true)))
	m := NewOptionMap(book)

	require.NoError(t, m.AddFromParsed([]string{"--file=,,"}))

	values, err := m.Get("--file")
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = m.Value("--file")
	assert.True(t, errors.Is(err, errs.ErrOptionHasNoValue))
}

func TestOptionMap_GetErrors(t *testing.T) {
	book := NewBook(
		MustOption("-f", "--file", WithArguments(true)),
		MustOption("-o", "--output", WithArguments(true)),
		MustOption("-h", "--help"),
	)
	m := NewOptionMap(book)
	require.NoError(t, m.AddFromParsed([]string{"-f", "a", "-h"}))

	tests := []struct {
		name    string
		lookup  string
		wantErr error
		message string
	}{
		{"unknown", "-x", errs.ErrUnrecognizedOption, "unrecognized option -x"},
		{"known but absent", "--output", errs.ErrAccessingOptionNotYetAdded, "accessing --output not yet added"},
		{"presence only", "--help", errs.ErrAccessingOptionWithoutArguments, "accessing --help without arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Get(tt.lookup)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	_, err := m.GetOption(MustOption("-x", ""))
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedOption))

	values, err := m.GetOption(MustOption("-f", "--file"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, values)

	assert.True(t, m.ContainsOption(MustOption("-h", "--help")))
	assert.False(t, m.ContainsOption(MustOption("-o", "--output")))
	_, found := m.Contains("-x")
	assert.False(t, found)
}

func TestOptionMap_AddFromParsedErrors(t *testing.T) {
	book := NewBook(
		MustOption("-f", "--file", WithArguments(true)),
		MustOption("-h", "--help"),
	)

	tests := []struct {
		name    string
		tokens  []string
		wantErr error
	}{
		{"unknown option", []string{"-f", "a", "-x"}, errs.ErrUnrecognizedOption},
		{"argument without option", []string{"a", "-f", "b"}, errs.ErrArgumentWithoutOption},
		{"argument after presence-only option", []string{"-h", "a"}, errs.ErrOptionDoesNotTakeArguments},
		{"inline value on presence-only option", []string{"--help=a"}, errs.ErrOptionDoesNotTakeArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewOptionMap(book)
			err := m.AddFromParsed(tt.tokens)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 0, m.Len(), "a failed replay leaves the map unchanged")
		})
	}
}

func TestOptionMap_Groups(t *testing.T) {
	m := NewOptionMap()
	assert.True(t, m.Empty())

	assert.False(t, m.AddGroup(NewBook()), "empty groups are skipped")
	assert.False(t, m.AddGroup(nil))
	assert.True(t, m.AddGroup(NewBook(MustOption("-a", ""))))
	assert.False(t, m.AddGroup(NewDictionary(MustOption("-a", ""))), "equal groups are skipped")
	assert.True(t, m.HasGroup(NewBook(MustOption("-a", ""))))
	assert.False(t, m.Empty())

	require.NoError(t, m.AddFromParsed([]string{"-a"}))
	assert.Equal(t, 1, m.Len())

	m.Reset()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Empty(), "Reset keeps groups")
	assert.NoError(t, m.AddResult(nil))
}

func TestOptionMap_GetBool(t *testing.T) {
	book := NewBook(
		MustOption("-v", "--verbose", WithNegation()),
		MustOption("-c", "--color"),
		MustOption("", "--force", WithArguments(true)),
		MustOption("-q", "--quiet"),
	)
	m := NewOptionMap(book)
	require.NoError(t, m.AddFromParsed([]string{"--no-verbose", "-c", "--force", "yes"}))

	v, err := m.GetBool("--verbose")
	require.NoError(t, err)
	assert.False(t, v)

	c, err := m.GetBool("--color")
	require.NoError(t, err)
	assert.True(t, c)

	_, err = m.GetBool("--force")
	assert.True(t, errors.Is(err, errs.ErrParseBool))

	_, err = m.GetBool("-q")
	assert.True(t, errors.Is(err, errs.ErrAccessingOptionNotYetAdded))

	_, err = m.GetBool("-z")
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedOption))

	require.NoError(t, m.AddFromParsed([]string{"--force", "true"}))
	f, err := m.GetBool("--force")
	require.NoError(t, err)
	assert.True(t, f, "the last value wins")
}

func TestOptionMap_TypedGetters(t *testing.T) {
	book := NewBook(
		MustOption("-n", "--count", WithArguments(true)),
		MustOption("-r", "--ratio", WithArguments(true)),
		MustOption("-t", "--timeout", WithArguments(true)),
		MustOption("-s", "--since", WithArguments(true)),
		MustOption("-b", "--bad", WithArguments(true)),
	)
	m := NewOptionMap(book)
	require.NoError(t, m.AddFromParsed([]string{
		"--count=1,42",
		"-r", "0.25",
		"-t", "1m30s",
		"--since", "2024-03-01",
		"-b", "x",
	}))

	n, err := m.GetInt("-n", 64)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	r, err := m.GetFloat("--ratio", 64)
	require.NoError(t, err)
	assert.Equal(t, 0.25, r)

	d, err := m.GetDuration("-t")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	s, err := m.GetTime("--since")
	require.NoError(t, err)
	assert.Equal(t, 2024, s.Year())
	assert.Equal(t, time.March, s.Month())
	assert.Equal(t, 1, s.Day())

	_, err = m.GetInt("-b", 64)
	assert.True(t, errors.Is(err, errs.ErrParseInt))
	assert.Equal(t, `-b: invalid integer value "x": strconv.ParseInt: parsing "x": invalid syntax`, err.Error())

	_, err = m.GetFloat("-b", 64)
	assert.True(t, errors.Is(err, errs.ErrParseFloat))

	_, err = m.GetDuration("-b")
	assert.True(t, errors.Is(err, errs.ErrParseDuration))

	_, err = m.GetTime("-b")
	assert.True(t, errors.Is(err, errs.ErrParseTime))

	_, err = m.GetInt("-x", 64)
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedOption))
}
