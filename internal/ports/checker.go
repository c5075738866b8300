package ports

import (
	"context"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// PalindromeChecker defines the interface for checking a raw text.
type PalindromeChecker interface {
	Check(ctx context.Context, text string) domain.Result
}
