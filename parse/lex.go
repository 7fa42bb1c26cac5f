//go:build !windows

// Package parse turns a command-line string into an argument vector.
package parse

import "github.com/google/shlex"

// Split breaks s into words using POSIX shell quoting and escaping rules. Variables
// and operators are not interpreted.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
