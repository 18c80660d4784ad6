package normalize

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// TextHash computes the hex-encoded SHA-256 of a text blob with normalized
// line endings, so the same bill uploaded from different systems hashes alike.
func TextHash(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}
