package palindrome

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// ResultName identifies results produced by the Checker.
const ResultName = "palindrome"

// IsPalindrome reports whether s reads the same forward and backward.
// The scan stops at the first mismatching pair.
func IsPalindrome(s []rune) bool {
	left, right := 0, len(s)-1
	for left < right {
		if s[left] != s[right] {
			return false
		}
		left++
		right--
	}
	return true
}

// Checker normalizes raw text and checks the cleaned sequence.
type Checker struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	runePool   *pool.RuneBufferPool
}

// NewChecker creates a new palindrome checker.
func NewChecker(logger ports.Logger, normalizer ports.Normalizer) (*Checker, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer must not be nil")
	}

	return &Checker{
		logger:     logger,
		normalizer: normalizer,
		runePool:   pool.NewRuneBufferPool(256),
	}, nil
}

// Check normalizes text and reports whether the cleaned form is a palindrome.
func (c *Checker) Check(ctx context.Context, text string) domain.Result {
	c.logger.Debug("Starting palindrome check", "input", text)

	details := make(map[string]interface{})
	inputLength := utf8.RuneCountInString(text)

	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "check cancelled"
		return domain.Result{
			Name:        ResultName,
			Input:       text,
			InputLength: inputLength,
			Details:     details,
		}
	default:
	}

	cleaned := c.normalizer.Normalize(text)

	runes := c.runePool.Get()
	defer c.runePool.Put(runes)
	for _, r := range cleaned {
		*runes = append(*runes, r)
	}

	isPalindrome := IsPalindrome(*runes)

	details["input_length"] = inputLength
	details["cleaned_length"] = len(*runes)
	details["dropped"] = inputLength - len(*runes)

	c.logger.Debug("Completed palindrome check",
		"cleaned", cleaned,
		"is_palindrome", isPalindrome,
		"details", details,
	)

	return domain.Result{
		Name:          ResultName,
		Input:         text,
		Cleaned:       cleaned,
		IsPalindrome:  isPalindrome,
		InputLength:   inputLength,
		CleanedLength: len(*runes),
		Details:       details,
	}
}
