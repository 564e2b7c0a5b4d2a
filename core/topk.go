package core

import (
	"container/heap"
	"sort"

	"github.com/lawyerconnect/lawmatch/schema"
)

// candidateEntry is one live heap entry. seq is the upsert sequence number,
// used as a deterministic tie-break so repeated TopK calls on the same
// input always produce the same order.
type candidateEntry struct {
	result schema.MatchResult
	seq    int
	index  int // position in the heap slice, maintained by candidateHeap
}

// candidateHeap implements heap.Interface as a max-heap on combined score,
// breaking ties by insertion sequence.
type candidateHeap []*candidateEntry

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].result.Score != h[j].result.Score {
		return h[i].result.Score > h[j].result.Score
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *candidateHeap) Push(x any) {
	entry := x.(*candidateEntry)
	entry.index = len(*h)
	*h = append(*h, entry)
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*h = old[:n-1]
	return entry
}

// TopKSelector maintains a max-priority collection of scored candidates
// keyed by lawyer identity. At most one live entry exists per lawyer at any
// time; upserting an already-seen lawyer replaces its scores in place and
// restores heap ordering in O(log n) via heap.Fix.
type TopKSelector struct {
	heap    candidateHeap
	byID    map[int64]*candidateEntry
	nextSeq int
}

// NewTopKSelector returns an empty selector.
func NewTopKSelector() *TopKSelector {
	return &TopKSelector{byID: make(map[int64]*candidateEntry)}
}

// Len returns the number of live entries.
func (s *TopKSelector) Len() int {
	return len(s.heap)
}

// Upsert inserts a scored candidate, or replaces the existing entry for the
// same lawyer identity.
func (s *TopKSelector) Upsert(result schema.MatchResult) {
	id := result.Lawyer.ID
	if entry, ok := s.byID[id]; ok {
		entry.result = result
		heap.Fix(&s.heap, entry.index)
		return
	}
	entry := &candidateEntry{result: result, seq: s.nextSeq}
	s.nextSeq++
	s.byID[id] = entry
	heap.Push(&s.heap, entry)
}

// Peek returns the highest-scoring candidate without removing it. The
// second return value reports whether the selector is non-empty.
func (s *TopKSelector) Peek() (schema.MatchResult, bool) {
	if len(s.heap) == 0 {
		return schema.MatchResult{}, false
	}
	return s.heap[0].result, true
}

// Pop removes and returns the highest-scoring candidate.
func (s *TopKSelector) Pop() (schema.MatchResult, bool) {
	if len(s.heap) == 0 {
		return schema.MatchResult{}, false
	}
	entry := heap.Pop(&s.heap).(*candidateEntry)
	delete(s.byID, entry.result.Lawyer.ID)
	return entry.result, true
}

// TopK returns up to k candidates in descending score order without
// mutating the selector. Ties are broken by upsert sequence, so repeated
// calls on the same state return the same order.
func (s *TopKSelector) TopK(k int) []schema.MatchResult {
	if k <= 0 || len(s.heap) == 0 {
		return nil
	}

	entries := make([]*candidateEntry, len(s.heap))
	copy(entries, s.heap)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].result.Score != entries[j].result.Score {
			return entries[i].result.Score > entries[j].result.Score
		}
		return entries[i].seq < entries[j].seq
	})

	if k > len(entries) {
		k = len(entries)
	}
	out := make([]schema.MatchResult, k)
	for i := range k {
		out[i] = entries[i].result
	}
	return out
}
