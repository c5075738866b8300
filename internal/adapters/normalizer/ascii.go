package normalizer

import (
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// ASCIINormalizer is the narrow variant: only A-Z and a-z count as letters.
// Any non-ASCII byte is dropped.
type ASCIINormalizer struct{}

// NewASCIINormalizer creates a new ASCII-only normalizer.
func NewASCIINormalizer() ports.Normalizer {
	return &ASCIINormalizer{}
}

// Normalize keeps ASCII letters, lowercased, in their original order.
func (n *ASCIINormalizer) Normalize(text string) string {
	buf := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case b >= 'a' && b <= 'z':
			buf = append(buf, b)
		case b >= 'A' && b <= 'Z':
			buf = append(buf, b+('a'-'A'))
		}
	}
	return string(buf)
}
