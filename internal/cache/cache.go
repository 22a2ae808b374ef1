// Package cache provides the response cache used by the AI provider
// clients. Keys are derived from (platform, normalized prompt) so repeat
// audits within the TTL reuse upstream answers instead of paying for them
// again.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is the contract the provider clients depend on. A miss is not an
// error; providers fall through to the upstream API.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

// Key derives the cache key for one platform+prompt pair
func Key(platform, prompt string) string {
	input := platform + ":" + strings.ToLower(strings.TrimSpace(prompt))
	hash := sha256.Sum256([]byte(input))
	return "brandlens:query:" + hex.EncodeToString(hash[:])
}
