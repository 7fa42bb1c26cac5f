package parse

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitWindows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "simple command",
			input: "prog.exe -f a.txt",
			want:  []string{"prog.exe", "-f", "a.txt"},
		},
		{
			name:  "double quotes",
			input: `prog.exe --file "C:\My Files\a.txt"`,
			want:  []string{"prog.exe", "--file", `C:\My Files\a.txt`},
		},
		{
			name:  "quotes inside a word",
			input: `prog.exe --file="a b.txt",c.txt`,
			want:  []string{"prog.exe", "--file=a b.txt,c.txt"},
		},
		{
			name:  "empty quoted argument",
			input: `prog.exe "" pos`,
			want:  []string{"prog.exe", "", "pos"},
		},
		{
			name:  "escaped quote",
			input: `prog.exe "say \"hi\""`,
			want:  []string{"prog.exe", `say "hi"`},
		},
		{
			name:  "even backslashes before quote",
			input: `prog.exe "a\\" b`,
			want:  []string{"prog.exe", `a\`, "b"},
		},
		{
			name:  "doubled quote inside quotes",
			input: `prog.exe "a""b"`,
			want:  []string{"prog.exe", `a"b`},
		},
		{
			name:  "trailing backslashes are literal",
			input: `prog.exe C:\dir\`,
			want:  []string{"prog.exe", `C:\dir\`},
		},
		{
			name:  "single quotes are literal",
			input: "prog.exe 'a b'",
			want:  []string{"prog.exe", "'a", "b'"},
		},
		{
			name:  "variables and operators are literal",
			input: "prog.exe %PATH% a|b",
			want:  []string{"prog.exe", "%PATH%", "a|b"},
		},
		{
			name:  "whitespace",
			input: "  prog.exe\t-v \r\n pos  ",
			want:  []string{"prog.exe", "-v", "pos"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:    "unterminated quote",
			input:   `prog.exe "oops`,
			wantErr: ErrUnterminatedQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %q, want %q", got, tt.want)
			}
		})
	}
}
