package normalizer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// ASCII decisions
const (
	asciiDrop byte = iota
	asciiKeep
	asciiLower
)

// OptimizedNormalizer implements the letter filter with a precomputed ASCII
// table and pooled output buffers. Output matches DefaultNormalizer.
type OptimizedNormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(1024),
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		switch {
		case unicode.IsUpper(r):
			n.asciiTable[i] = asciiLower
		case unicode.IsLetter(r):
			n.asciiTable[i] = asciiKeep
		default:
			n.asciiTable[i] = asciiDrop
		}
	}

	return n
}

// Normalize keeps letters, lowercased, and drops everything else
func (n *OptimizedNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get(len(text))
	defer n.bytePool.Put(buffer)

	for i := 0; i < len(text); {
		b := text[i]
		if b < utf8.RuneSelf {
			switch n.asciiTable[b] {
			case asciiKeep:
				*buffer = append(*buffer, b)
			case asciiLower:
				*buffer = append(*buffer, b+('a'-'A'))
			}
			i++
			continue
		}

		// Invalid sequences decode to RuneError, which is not a letter.
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) {
			*buffer = utf8.AppendRune(*buffer, unicode.ToLower(r))
		}
		i += size
	}

	return string(*buffer)
}

// NormalizerFactory creates normalizers by type
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a normalization strategy
type NormalizerType int

const (
	// DefaultNormalizerType keeps Unicode letters using strings.Builder
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType keeps Unicode letters using lookup tables and pooled buffers
	OptimizedNormalizerType
	// ASCIINormalizerType keeps only ASCII letters
	ASCIINormalizerType
)

// String returns the name of the normalizer type
func (t NormalizerType) String() string {
	switch t {
	case DefaultNormalizerType:
		return "default"
	case OptimizedNormalizerType:
		return "optimized"
	case ASCIINormalizerType:
		return "ascii"
	default:
		return fmt.Sprintf("NormalizerType(%d)", int(t))
	}
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) (ports.Normalizer, error) {
	switch normalizerType {
	case DefaultNormalizerType:
		return NewDefaultNormalizer(), nil
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer(), nil
	case ASCIINormalizerType:
		return NewASCIINormalizer(), nil
	default:
		return nil, fmt.Errorf("unknown normalizer type: %s", normalizerType)
	}
}
