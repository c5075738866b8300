// Package palindrome reports whether a sentence is a palindrome once every
// non-letter is dropped and the remaining letters are lowercased.
//
// "A man, a plan, a canal: Panama" is cleaned to "amanaplanacanalpanama",
// which reads the same in both directions, so it is a palindrome.
//
// A Palindrome is configured with functional options for the logger and the
// normalization strategy.
package palindrome

import (
	"context"

	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	core "github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/l"
)

// Result holds the outcome of a palindrome check.
type Result = domain.Result

// Config holds configuration options for a Palindrome.
type Config struct {
	// Logger for tracing check steps.
	Logger ports.Logger
	// NormalizerType selects the normalization strategy when Normalizer is nil.
	NormalizerType normalizer.NormalizerType
	Normalizer     ports.Normalizer
}

// Option defines a functional option for configuring a Palindrome.
type Option func(*Config)

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = loggerFromExisting(logger)
		}
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *Config) {
		cfg.Normalizer = n
	}
}

// WithOptimizedNormalizer selects the table-driven normalizer with pooled buffers.
func WithOptimizedNormalizer() Option {
	return func(cfg *Config) {
		cfg.NormalizerType = normalizer.OptimizedNormalizerType
	}
}

// WithASCIIOnly narrows letters to A-Z and a-z. Non-ASCII letters are dropped.
func WithASCIIOnly() Option {
	return func(cfg *Config) {
		cfg.NormalizerType = normalizer.ASCIINormalizerType
	}
}

// Palindrome checks sentences using the configured normalizer.
type Palindrome struct {
	checker ports.PalindromeChecker
	// logger is set only when New created it.
	logger ports.Logger
}

// New creates a new Palindrome with the provided functional options.
// If no logger is provided, log entries are discarded.
func New(opts ...Option) (*Palindrome, error) {
	cfg := Config{
		NormalizerType: normalizer.DefaultNormalizerType,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var owned ports.Logger
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
		owned = cfg.Logger
	}

	if cfg.Normalizer == nil {
		n, err := normalizer.NewNormalizerFactory().CreateNormalizer(cfg.NormalizerType)
		if err != nil {
			closeOwned(owned)
			return nil, err
		}
		cfg.Normalizer = n
	}

	checker, err := core.NewChecker(cfg.Logger, cfg.Normalizer)
	if err != nil {
		closeOwned(owned)
		return nil, err
	}

	return &Palindrome{
		checker: checker,
		logger:  owned,
	}, nil
}

// Check normalizes text and reports whether the cleaned form is a palindrome.
func (p *Palindrome) Check(ctx context.Context, text string) Result {
	return p.checker.Check(ctx, text)
}

// Close releases the default logger. A logger passed with WithLogger is left open.
func (p *Palindrome) Close() error {
	if p.logger == nil {
		return nil
	}
	return p.logger.Close()
}

func closeOwned(logger ports.Logger) {
	if logger != nil {
		_ = logger.Close()
	}
}

var defaultNormalizer = normalizer.NewDefaultNormalizer()

// Normalize keeps every Unicode letter of text, lowercased, in its original order.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// IsPalindrome reports whether s reads the same forward and backward.
func IsPalindrome(s string) bool {
	return core.IsPalindrome([]rune(s))
}

// CheckWithDefaults checks text with the default normalizer and no logging.
func CheckWithDefaults(text string) Result {
	p, err := New()
	if err != nil {
		cleaned := Normalize(text)
		return Result{
			Name:         core.ResultName,
			Input:        text,
			Cleaned:      cleaned,
			IsPalindrome: IsPalindrome(cleaned),
			Details:      map[string]interface{}{"error": err.Error()},
		}
	}
	defer p.Close()

	return p.Check(context.Background(), text)
}
