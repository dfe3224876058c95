package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/your-org/humanise/pkg/cmdutil"
)

func TestListCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no items", nil, "\n"},
		{"single", []string{"a"}, "a\n"},
		{"pair", []string{"a", "b"}, "a and b\n"},
		{"serial comma", []string{"a", "b", "c"}, "a, b, and c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCmdList(&cmdutil.Factory{})
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetIn(strings.NewReader(""))
			// SetArgs(nil) would fall back to os.Args.
			cmd.SetArgs(append([]string{}, tt.args...))
			require.NoError(t, cmd.Execute())
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestListCommandStdin(t *testing.T) {
	cmd := NewCmdList(&cmdutil.Factory{})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("apples\n\n  pears  \nplums\n"))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "apples, pears, and plums\n", out.String())
}
