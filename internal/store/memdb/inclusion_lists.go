package memdb

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/hedisam/txpoolviz/internal/store"
)

// InclusionListStore keeps the largest inclusion list seen per slot and the
// reports computed against the matching blocks.
type InclusionListStore struct {
	lists   map[uint64][]string
	reports map[uint64]*store.InclusionReport
	mu      sync.RWMutex
}

func NewInclusionListStore(opts ...Option) *InclusionListStore {
	cfg := newConfig(opts)
	return &InclusionListStore{
		lists:   make(map[uint64][]string, cfg.memSize),
		reports: make(map[uint64]*store.InclusionReport, cfg.memSize),
	}
}

// StoreInclusionList records txHashes for slot only if the slot has no list yet
// or the new list is strictly larger. It reports whether the list was stored.
func (s *InclusionListStore) StoreInclusionList(_ context.Context, slot uint64, txHashes []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.lists[slot]
	if ok && len(txHashes) <= len(existing) {
		return false, nil
	}
	s.lists[slot] = slices.Clone(txHashes)
	return true, nil
}

// GetInclusionList returns the tx hashes recorded for slot.
func (s *InclusionListStore) GetInclusionList(_ context.Context, slot uint64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[slot]
	if !ok {
		return nil, store.ErrNotFound
	}
	return slices.Clone(list), nil
}

func (s *InclusionListStore) PutInclusionReport(_ context.Context, report *store.InclusionReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *report
	s.reports[report.Slot] = &cp
	return nil
}

// GetInclusionReports returns every stored report, highest slot first.
func (s *InclusionListStore) GetInclusionReports(_ context.Context) ([]*store.InclusionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := slices.Collect(maps.Values(s.reports))
	slices.SortFunc(reports, func(a, b *store.InclusionReport) int {
		return cmp.Compare(b.Slot, a.Slot)
	})
	return reports, nil
}
