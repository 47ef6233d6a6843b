package memtable

import (
	"encoding/binary"
	"github.com/coocood/freecache"
	"time"
)

// MemTable is a bounded in-memory table of numbers with eviction,
// used for remembering the outcome of idempotent requests
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// GetNum may not return an entry that it just set if the entry was evicted
func (m *MemTable) GetNum(key string) (num uint64, ok bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return 0, false
	}
	if len(data) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data), true
}

// SetNum stores num under key, a zero ttl never expires
func (m *MemTable) SetNum(key string, num uint64, ttl time.Duration) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], num)
	_ = m.cache.Set([]byte(key), data[:], int(ttl/time.Second))
}

// GetOrSetNum stores num under key only when key is absent.
// It returns the existing number and true when key was already set.
func (m *MemTable) GetOrSetNum(key string, num uint64, ttl time.Duration) (uint64, bool) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], num)

	existing, err := m.cache.GetOrSet([]byte(key), data[:], int(ttl/time.Second))
	if err != nil || existing == nil {
		return 0, false
	}
	if len(existing) < 8 {
		return 0, true
	}
	return binary.LittleEndian.Uint64(existing), true
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
