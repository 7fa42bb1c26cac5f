//go:build !windows

package parse

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "prog -f a.txt",
			want:  []string{"prog", "-f", "a.txt"},
		},
		{
			name:  "quoted arguments",
			input: `prog --file "my file.txt"`,
			want:  []string{"prog", "--file", "my file.txt"},
		},
		{
			name:  "multiple quotes",
			input: `prog "first quote" 'second quote'`,
			want:  []string{"prog", "first quote", "second quote"},
		},
		{
			name:  "escaped quotes",
			input: `prog \"hello\"`,
			want:  []string{"prog", `"hello"`},
		},
		{
			name:  "inline value list",
			input: "prog --file=a.txt,b.txt",
			want:  []string{"prog", "--file=a.txt,b.txt"},
		},
		{
			name:  "multiple spaces",
			input: "prog   -v    pos",
			want:  []string{"prog", "-v", "pos"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "variables are not expanded",
			input: "prog $HOME",
			want:  []string{"prog", "$HOME"},
		},
		{
			name:    "unterminated quote",
			input:   `prog "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}
