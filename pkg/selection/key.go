package selection

import "strings"

// CacheKeyPrefix namespaces persisted selections in the store.
const CacheKeyPrefix = "multiSelectCache - "

// CacheKey returns the store key for a widget title.
func CacheKey(title string) string {
	return CacheKeyPrefix + title
}

// TitleFromKey reverses CacheKey. Keys without the prefix report false.
func TitleFromKey(key string) (string, bool) {
	return strings.CutPrefix(key, CacheKeyPrefix)
}
