package shared

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// BuildCacheKey joins the given parts into a colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// HashText returns a short stable digest of the given text, used to key
// cached translation and classification results.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))

	return hex.EncodeToString(sum[:8])
}
