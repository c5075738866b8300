package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	palindrome "github.com/baditaflorin/go_palindrome"
	"github.com/baditaflorin/go_palindrome/internal/adapters/input"
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"
)

// Fixed terminal strings.
const (
	Prompt               = "Enter a sentence: "
	PalindromeMessage    = "The sentence is a palindrome."
	NotPalindromeMessage = "The sentence is not a palindrome."
)

// NewRootCommand builds the palindrome command. Diagnostics go to log and
// never to the command's output stream.
func NewRootCommand(log l.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome",
		Short: "Check whether a sentence is a palindrome",
		Long: `Reads one line from standard input, keeps only its letters in lowercase,
and reports whether they read the same forward and backward.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, log l.Logger) error {
	diag := logger.FromExisting(log)

	if _, err := fmt.Fprint(out, Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	line := readSentence(ctx, in, diag)

	p, err := palindrome.New(palindrome.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to create checker: %w", err)
	}
	defer p.Close()

	result := p.Check(ctx, line)

	message := NotPalindromeMessage
	if result.IsPalindrome {
		message = PalindromeMessage
	}
	if _, err := fmt.Fprintln(out, message); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// readSentence reads one line. Missing or unreadable input counts as an empty line.
func readSentence(ctx context.Context, in io.Reader, diag ports.Logger) string {
	line, err := input.NewLineReader(in).ReadLine(ctx)
	switch {
	case err == nil:
		return line
	case errors.Is(err, io.EOF):
		diag.Debug("No input line available, using empty sentence")
	default:
		diag.Warn("Failed to read input, using empty sentence", "error", err)
	}
	return ""
}
