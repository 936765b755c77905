package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/technophile-04/create-eth-codemod/core/logger"
)

type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// ContentCache remembers the last content hash seen for each path, bounded
// to a fixed number of entries.
type ContentCache struct {
	entries *lru.Cache[string, string]
	mutex   sync.Mutex
	stats   Stats
}

func NewContentCache(maxEntries int) (*ContentCache, error) {
	entries, err := lru.New[string, string](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create content cache: %w", err)
	}
	return &ContentCache{entries: entries}, nil
}

// Changed records content for path and reports whether it differs from the
// previously recorded content. Unknown paths count as changed.
func (cc *ContentCache) Changed(path string, content []byte) bool {
	hash := hashContent(content)

	cc.mutex.Lock()
	defer cc.mutex.Unlock()

	if prev, ok := cc.entries.Get(path); ok && prev == hash {
		cc.stats.Hits++
		logger.Debug("ContentCache: unchanged %s", path)
		return false
	}

	cc.stats.Misses++
	cc.entries.Add(path, hash)
	return true
}

// Remember records content without counting a lookup, e.g. after the
// migrator wrote the file.
func (cc *ContentCache) Remember(path string, content []byte) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()
	cc.entries.Add(path, hashContent(content))
}

func (cc *ContentCache) Forget(path string) {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()
	cc.entries.Remove(path)
}

func (cc *ContentCache) Stats() Stats {
	cc.mutex.Lock()
	defer cc.mutex.Unlock()
	stats := cc.stats
	stats.Entries = cc.entries.Len()
	return stats
}

func (cc *ContentCache) LogStats() {
	s := cc.Stats()
	logger.Debug("Cache stats: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Total Entries=%d",
		s.Hits, s.Misses, s.HitRate(), s.Entries)
}

func hashContent(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}
