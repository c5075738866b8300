package domain

// Result holds the outcome of a palindrome check.
type Result struct {
	Name string
	// Input is the raw text as received.
	Input string
	// Cleaned is the letters-only, lowercased form of Input.
	Cleaned      string
	IsPalindrome bool
	// InputLength and CleanedLength are rune counts.
	InputLength   int
	CleanedLength int
	Details       map[string]interface{}
}
