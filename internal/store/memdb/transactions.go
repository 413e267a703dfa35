package memdb

import (
	"context"
	"sync"

	"github.com/hedisam/txpoolviz/internal/ringbuffer"
	"github.com/hedisam/txpoolviz/internal/store"
)

// TxStore holds per-client transaction records along with a bounded window of
// recently seen hashes ordered by first sighting.
type TxStore struct {
	clientTxs map[string]map[string]*store.StoredTransaction
	recent    *ringbuffer.RingBuffer[string]
	seen      map[string]struct{}
	memSize   int
	mu        sync.RWMutex
}

func NewTxStore(opts ...Option) *TxStore {
	cfg := newConfig(opts)
	return &TxStore{
		clientTxs: make(map[string]map[string]*store.StoredTransaction),
		recent:    ringbuffer.New[string](cfg.maxTxs),
		seen:      make(map[string]struct{}, cfg.memSize),
		memSize:   cfg.memSize,
	}
}

// PutTransaction inserts or replaces the record the given client holds for tx.Hash.
// A hash seen for the first time is appended to the recent window, evicting the
// oldest hash (from every client) if the window is full.
func (s *TxStore) PutTransaction(_ context.Context, client string, tx *store.StoredTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[tx.Hash]; !ok {
		if s.recent.IsFull() {
			oldest, _ := s.recent.Pop()
			delete(s.seen, oldest)
			for _, txs := range s.clientTxs {
				delete(txs, oldest)
			}
		}
		s.recent.Push(tx.Hash)
		s.seen[tx.Hash] = struct{}{}
	}

	txs, ok := s.clientTxs[client]
	if !ok {
		txs = make(map[string]*store.StoredTransaction, s.memSize)
		s.clientTxs[client] = txs
	}
	cp := *tx
	txs[tx.Hash] = &cp

	return nil
}

// GetTransaction returns a copy of the record the client holds for hash.
func (s *TxStore) GetTransaction(_ context.Context, client, hash string) (*store.StoredTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.clientTxs[client][hash]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

// LatestTransactions returns up to n hashes, newest first.
func (s *TxStore) LatestTransactions(_ context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	hashes := make([]string, 0, min(n, s.recent.Size()))
	for hash := range s.recent.Backward() {
		if len(hashes) == n {
			break
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}
