package dedup

import (
	"github.com/elliotchance/orderedmap/v2"
)

// FileRecord is the last-seen file for a basename.
type FileRecord struct {
	Path string
	Size int64
}

// DuplicatePair is a confirmed match between a cached record and the file
// currently being scanned. Key is the basename the cached record is stored under.
type DuplicatePair struct {
	Key       string
	Cached    FileRecord
	Candidate FileRecord
}

// Cache maps basenames to the last FileRecord seen under that name. It is
// scoped to a single scan target. Iteration follows first-insertion order;
// overwriting a key keeps its position.
type Cache struct {
	entries *orderedmap.OrderedMap[string, FileRecord]
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: orderedmap.NewOrderedMap[string, FileRecord]()}
}

// Insert stores rec under basename, replacing any previous record.
func (c *Cache) Insert(basename string, rec FileRecord) {
	c.entries.Set(basename, rec)
}

// Get returns the record stored under basename.
func (c *Cache) Get(basename string) (FileRecord, bool) {
	return c.entries.Get(basename)
}

// Remove deletes the entry for basename and reports whether it existed.
func (c *Cache) Remove(basename string) bool {
	return c.entries.Delete(basename)
}

// Len returns the number of cached basenames.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Find returns the first entry, in iteration order, for which pred is true.
func (c *Cache) Find(pred func(key string, rec FileRecord) bool) (string, FileRecord, bool) {
	for el := c.entries.Front(); el != nil; el = el.Next() {
		if pred(el.Key, el.Value) {
			return el.Key, el.Value, true
		}
	}
	return "", FileRecord{}, false
}
