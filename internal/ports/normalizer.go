package ports

// Normalizer defines the interface for text normalization.
// Implementations keep only letters, lowercased, in their original order.
type Normalizer interface {
	Normalize(text string) string
}
