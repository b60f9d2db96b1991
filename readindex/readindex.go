// Package readindex resolves a read_id to its Read without the caller
// holding a direct pointer to it, mirroring the original pipeline's
// std::weak_ptr<Read> handle on a Chunk's source read (ReadPipeline.h):
// a Chunk there names its source read by a non-owning reference and
// resolves it through the shared_ptr only when needed, so a chunk can
// outlive, or be dropped independently of, the read it was cut from.
// Go's garbage collector doesn't need weak pointers to break the
// ownership cycle, but the same *decoupling* is still useful once reads
// flow through a pipeline stage on their own goroutines: a sharded,
// mutex-protected map keyed by read_id gives any stage a read-only lookup
// service instead of threading a pointer through every message.
package readindex

import (
	"sync"

	"blainsmith.com/go/seahash"
	"github.com/esteinig/dorado/duplexread"
	"github.com/grailbio/base/unsafe"
)

const numShards = 256

type shard struct {
	mu      sync.Mutex
	entries map[string]*duplexread.Read
}

// Index is a sharded concurrent map from read_id to *duplexread.Read,
// grounded on encoding/bamprovider's concurrentMap (which shards a
// read-name-keyed map the same way, using the same seahash-mod-shard-count
// scheme).
type Index struct {
	shards [numShards]shard
}

// New returns an empty Index ready for concurrent use.
func New() *Index {
	idx := &Index{}
	for i := range idx.shards {
		idx.shards[i].entries = make(map[string]*duplexread.Read)
	}
	return idx
}

func (idx *Index) shardFor(readID string) *shard {
	h := seahash.Sum64(unsafe.StringToBytes(readID))
	return &idx.shards[h%uint64(numShards)]
}

// Store registers r under its ReadID, replacing any prior entry with the
// same ID.
func (idx *Index) Store(r *duplexread.Read) {
	s := idx.shardFor(r.ReadID)
	s.mu.Lock()
	s.entries[r.ReadID] = r
	s.mu.Unlock()
}

// Lookup resolves readID to its Read, mirroring a weak_ptr::lock() call:
// the second return value is false once the entry has been Deleted (or was
// never Stored), the Go analogue of an expired weak pointer.
func (idx *Index) Lookup(readID string) (*duplexread.Read, bool) {
	s := idx.shardFor(readID)
	s.mu.Lock()
	r, ok := s.entries[readID]
	s.mu.Unlock()
	return r, ok
}

// Delete removes readID's entry, if any. Call this once a read (and all of
// its subreads) has fully drained out of the pipeline, so the index does
// not grow unboundedly across a long run.
func (idx *Index) Delete(readID string) {
	s := idx.shardFor(readID)
	s.mu.Lock()
	delete(s.entries, readID)
	s.mu.Unlock()
}

// approxSize returns the approximate number of entries across all shards;
// only accurate when no concurrent Store/Delete is in flight, same caveat
// as concurrentMap.approxSize.
func (idx *Index) approxSize() int {
	n := 0
	for i := range idx.shards {
		s := &idx.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}
