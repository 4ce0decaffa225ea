package index

import (
	"os"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Index maps file paths to their last known entries, evicting the least recently used ones.
type Index struct {
	cache *lru.Cache[string, Entry]
	// keeps Entries consistent while scanner workers Put
	mu sync.RWMutex
}

func New(size int) (*Index, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, errors.Wrap(err, "index.New error")
	}
	return &Index{
		cache: cache,
	}, nil
}

// Get returns the entry for path when it is still fresh for info.
func (r *Index) Get(path string, info os.FileInfo) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.cache.Get(path)
	if !ok || !entry.Fresh(info) {
		return Entry{}, false
	}
	return entry, true
}

func (r *Index) Put(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Add(entry.Path, entry)
}

func (r *Index) Remove(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Remove(path)
}

func (r *Index) Len() int {
	return r.cache.Len()
}

// Entries returns every entry sorted by path.
func (r *Index) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := lo.Map(r.cache.Keys(), func(path string, _ int) Entry {
		entry, _ := r.cache.Peek(path)
		return entry
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}

// Duplicates groups the paths of entries sharing the same content hash.
// Groups of one are left out; each group and the group list are sorted.
func (r *Index) Duplicates() [][]string {
	return Duplicates(r.Entries())
}

func Duplicates(entries []Entry) [][]string {
	byHash := lo.GroupBy(entries, func(entry Entry) uint64 {
		return entry.Hash
	})
	groups := lo.Map(lo.Values(byHash), func(group []Entry, _ int) []string {
		paths := lo.Map(group, func(entry Entry, _ int) string {
			return entry.Path
		})
		sort.Strings(paths)
		return paths
	})
	groups = lo.Filter(groups, func(paths []string, _ int) bool {
		return len(paths) > 1
	})
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}
