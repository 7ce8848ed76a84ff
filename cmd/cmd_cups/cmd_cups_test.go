// file:dline/cmd/cmd_cups/cmd_cups_test.go
package cmd_cups

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the cups command from default flags with a quiet config and
// returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "dline.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"log":{"level":"error"}}`), 0o644))

	for _, c := range Cmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs(append(args, "--config", cfg))
	err := Cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestPlay(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"play", "389125467", "--moves", "10"}, "92658374"},
		{[]string{"play", "389125467", "--moves", "100"}, "67384529"},
		{[]string{"play", "3", "8", "9", "1", "2", "5", "4", "6", "7", "--moves", "100"}, "67384529"},
		{[]string{"play", "389125467", "--moves", "100", "--baseline"}, "67384529"},
	}
	for _, tt := range tests {
		got, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}
}

func TestPlay_Input(t *testing.T) {
	in := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(in, []byte("389125467\n"), 0o644))

	got, err := run(t, "play", "--input", in, "--moves", "10")
	require.NoError(t, err)
	assert.Equal(t, "92658374", got)
}

func TestLong_SmallGame(t *testing.T) {
	// 3 8 9 1 2 5 4 6 7 10 11 12 untouched: cups 2 and 5 follow 1
	got, err := run(t, "long", "389125467", "--moves", "0", "--cups", "12")
	require.NoError(t, err)
	assert.Equal(t, "10", got)
}

func TestPlay_FlagsDoNotLeak(t *testing.T) {
	got, err := run(t, "play", "389125467", "--moves", "10", "--baseline")
	require.NoError(t, err)
	assert.Equal(t, "92658374", got)
	assert.True(t, playFlags.baseline)

	// defaults again: 100 moves on the line
	got, err = run(t, "play", "389125467")
	require.NoError(t, err)
	assert.Equal(t, "67384529", got)
	assert.False(t, playFlags.baseline)
	assert.Equal(t, 100, playFlags.moves)
}

func TestPlay_Errors(t *testing.T) {
	_, err := run(t, "play", "--moves", "1")
	assert.Error(t, err)

	_, err = run(t, "play", "3891", "--moves", "1")
	assert.Error(t, err)
}
