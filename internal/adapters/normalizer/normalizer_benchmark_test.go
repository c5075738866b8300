package normalizer

import (
	"fmt"
	"strings"
	"testing"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(sample string, size int) string {
	if size <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(size)
	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	return sb.String()[:size]
}

func BenchmarkNormalizers(b *testing.B) {
	samples := map[string]string{
		"ascii":   "A man, a plan, a canal: Panama!",
		"unicode": "А роза упала на лапу Азора. Ärger über Öl.",
	}
	sizes := []int{32, 1024}

	for sampleName, sample := range samples {
		for _, size := range sizes {
			text := generateText(sample, size)
			for name, n := range allNormalizers() {
				b.Run(fmt.Sprintf("%s/%s/%d", sampleName, name, size), func(b *testing.B) {
					b.ReportAllocs()
					for i := 0; i < b.N; i++ {
						_ = n.Normalize(text)
					}
				})
			}
		}
	}
}
