// Package fields tracks which hash fields exist under each key for byte
// stores that cannot enumerate their own contents.
package fields

import (
	"fmt"
	"sync"
)

// Key returns the flat store key for one hash field. The length prefix makes
// the split point unambiguous for any key/field contents.
func Key(key, field string) string {
	return fmt.Sprintf("%d:%s:%s", len(key), key, field)
}

// Index is a concurrency-safe field registry. Stores evict entries on their
// own schedule, so the index is advisory: readers must tolerate a listed
// field whose value is gone, and should Forget it when they notice.
type Index struct {
	mu sync.RWMutex
	m  map[string]map[string]struct{}
}

func NewIndex() *Index {
	return &Index{m: make(map[string]map[string]struct{})}
}

func (ix *Index) Add(key, field string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	set, ok := ix.m[key]
	if !ok {
		set = make(map[string]struct{})
		ix.m[key] = set
	}
	set[field] = struct{}{}
}

// Forget drops fields from the registry, and the key itself once empty.
func (ix *Index) Forget(key string, fields ...string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	set, ok := ix.m[key]
	if !ok {
		return
	}
	for _, f := range fields {
		delete(set, f)
	}
	if len(set) == 0 {
		delete(ix.m, key)
	}
}

// Fields returns a snapshot of the registered fields for key.
func (ix *Index) Fields(key string) []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	set := ix.m[key]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	return out
}
