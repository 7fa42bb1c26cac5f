package parse

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnterminatedQuote is returned when a double-quoted section is not closed
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Split breaks s into words the way the Microsoft C runtime splits a command line:
// double quotes group words, 2n backslashes before a quote yield n backslashes and a
// delimiter, 2n+1 backslashes yield n backslashes and a literal quote. Backslashes not
// followed by a quote are literal. Variables and operators are not interpreted.
func Split(s string) ([]string, error) {
	args := []string{}

	var word strings.Builder
	inWord := false
	inQuotes := false

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case r == '\\':
			n := 0
			for i < len(s) && s[i] == '\\' {
				n++
				i++
			}
			if i < len(s) && s[i] == '"' {
				word.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					word.WriteByte('"')
				} else {
					inQuotes = !inQuotes
				}
				i++
			} else {
				word.WriteString(strings.Repeat(`\`, n))
			}
			inWord = true
			continue
		case r == '"':
			// "" inside quotes is a literal quote
			if inQuotes && i+1 < len(s) && s[i+1] == '"' {
				word.WriteByte('"')
				i += 2
				inWord = true
				continue
			}
			inQuotes = !inQuotes
			inWord = true
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if inWord {
				args = append(args, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
		i += size
	}

	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	if inWord {
		args = append(args, word.String())
	}

	return args, nil
}
