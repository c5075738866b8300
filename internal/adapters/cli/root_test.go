package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func newTestLogger(t *testing.T, out *bytes.Buffer) l.Logger {
	t.Helper()
	log, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig(out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr, logs bytes.Buffer
	cmd := NewRootCommand(newTestLogger(t, &logs))
	cmd.SetIn(stdin)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()
	return stdout.String(), logs.String(), err
}

func TestRootCommand_Verdicts(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		expected string
	}{
		{name: "Panama", stdin: "A man, a plan, a canal: Panama\n", expected: PalindromeMessage},
		{name: "Hello world", stdin: "Hello, World!\n", expected: NotPalindromeMessage},
		{name: "Empty line", stdin: "\n", expected: PalindromeMessage},
		{name: "Nixon", stdin: "No 'x' in Nixon\n", expected: PalindromeMessage},
		{name: "Digits only", stdin: "12321\n", expected: PalindromeMessage},
		{name: "CRLF", stdin: "Step on no pets\r\n", expected: PalindromeMessage},
		{name: "No trailing newline", stdin: "Hello", expected: NotPalindromeMessage},
		{name: "Only first line read", stdin: "level\nnot a palindrome\n", expected: PalindromeMessage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := execute(t, strings.NewReader(tc.stdin))
			require.NoError(t, err)
			assert.Equal(t, Prompt+tc.expected+"\n", stdout)
		})
	}
}

func TestRootCommand_EmptyInput(t *testing.T) {
	stdout, _, err := execute(t, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Prompt+PalindromeMessage+"\n", stdout)
}

func TestRootCommand_ReadErrorTreatedAsEmpty(t *testing.T) {
	stdout, logs, err := execute(t, failingReader{})
	require.NoError(t, err)
	assert.Equal(t, Prompt+PalindromeMessage+"\n", stdout)
	assert.Contains(t, logs, "Failed to read input")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	stdout, _, err := execute(t, strings.NewReader("racecar\n"), "racecar")
	assert.Error(t, err)
	assert.Empty(t, stdout)
}

func TestRootCommand_WriteFailure(t *testing.T) {
	var logs bytes.Buffer
	cmd := NewRootCommand(newTestLogger(t, &logs))
	cmd.SetIn(strings.NewReader("racecar\n"))
	cmd.SetOut(failingWriter{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "failed to write prompt")
}
