// Package redisdb implements the transaction and inclusion list stores on top of Redis,
// so that several API replicas can share what the trackers record.
package redisdb

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hedisam/txpoolviz/internal/store"
)

// Connect parses a redis:// URL and verifies the server is reachable.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

type TxStore struct {
	rdb     *redis.Client
	clients []string
	maxTxs  int64
	now     func() time.Time
}

// NewTxStore creates a store keeping at most maxTxs distinct hashes, zero meaning no
// limit. Evicted hashes are removed from the meta hash of every client in clients.
func NewTxStore(rdb *redis.Client, clients []string, maxTxs int64) *TxStore {
	return &TxStore{
		rdb:     rdb,
		clients: clients,
		maxTxs:  maxTxs,
		now:     time.Now,
	}
}

// putTransaction writes a client's record and adds the hash to the universal zset the
// first time it is seen. When the zset grows past the limit, the oldest hashes are
// popped and removed from every client's meta hash in the same atomic step, so
// concurrent writers never evict more than the overflow.
//
// KEYS: universal zset, then the meta hash of each client. ARGV: hash, record, score, limit.
var putTransaction = redis.NewScript(`
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
redis.call('ZADD', KEYS[1], 'NX', ARGV[3], ARGV[1])

local limit = tonumber(ARGV[4])
if limit <= 0 then
	return 0
end
local over = redis.call('ZCARD', KEYS[1]) - limit
if over <= 0 then
	return 0
end

local popped = redis.call('ZPOPMIN', KEYS[1], over)
for i = 1, #popped, 2 do
	for k = 2, #KEYS do
		redis.call('HDEL', KEYS[k], popped[i])
	end
end
return over
`)

// PutTransaction stores the record the client holds for tx.Hash. Hashes are scored by
// the millisecond they were first stored.
func (s *TxStore) PutTransaction(ctx context.Context, client string, tx *store.StoredTransaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshal stored transaction: %w", err)
	}

	keys := make([]string, 0, len(s.clients)+2)
	keys = append(keys, universalKey, clientMetaKey(client))
	for _, c := range s.clients {
		if c != client {
			keys = append(keys, clientMetaKey(c))
		}
	}

	err = putTransaction.Run(ctx, s.rdb, keys, tx.Hash, data, s.now().UnixMilli(), s.maxTxs).Err()
	if err != nil {
		return fmt.Errorf("store transaction %s for %s: %w", tx.Hash, client, err)
	}
	return nil
}

func (s *TxStore) GetTransaction(ctx context.Context, client, hash string) (*store.StoredTransaction, error) {
	val, err := s.rdb.HGet(ctx, clientMetaKey(client), hash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get transaction %s for %s: %w", hash, client, err)
	}

	var tx store.StoredTransaction
	if err := json.Unmarshal([]byte(val), &tx); err != nil {
		return nil, fmt.Errorf("unmarshal stored transaction: %w", err)
	}
	return &tx, nil
}

func (s *TxStore) LatestTransactions(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	hashes, err := s.rdb.ZRevRange(ctx, universalKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list latest transactions: %w", err)
	}
	return hashes, nil
}

const maxWatchRetries = 5

type InclusionListStore struct {
	rdb *redis.Client
}

func NewInclusionListStore(rdb *redis.Client) *InclusionListStore {
	return &InclusionListStore{rdb: rdb}
}

// StoreInclusionList keeps the list only when it is larger than the one already
// scored for the slot. The score and the list are written in one transaction, retried
// when another writer touches the score in between.
func (s *InclusionListStore) StoreInclusionList(ctx context.Context, slot uint64, txHashes []string) (bool, error) {
	field := strconv.FormatUint(slot, 10)
	data, err := json.Marshal(txHashes)
	if err != nil {
		return false, fmt.Errorf("marshal inclusion list: %w", err)
	}

	var stored bool
	storeIfLarger := func(tx *redis.Tx) error {
		stored = false
		score, err := tx.ZScore(ctx, inclusionListScoreKey, field).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		case float64(len(txHashes)) <= score:
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZAdd(ctx, inclusionListScoreKey, redis.Z{Score: float64(len(txHashes)), Member: field})
			pipe.HSet(ctx, inclusionListTxnsKey, field, data)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}

	for range maxWatchRetries {
		err = s.rdb.Watch(ctx, storeIfLarger, inclusionListScoreKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return false, fmt.Errorf("store inclusion list for slot %d: %w", slot, err)
	}
	return stored, nil
}

func (s *InclusionListStore) GetInclusionList(ctx context.Context, slot uint64) ([]string, error) {
	val, err := s.rdb.HGet(ctx, inclusionListTxnsKey, strconv.FormatUint(slot, 10)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get inclusion list for slot %d: %w", slot, err)
	}

	var hashes []string
	if err := json.Unmarshal([]byte(val), &hashes); err != nil {
		return nil, fmt.Errorf("unmarshal inclusion list: %w", err)
	}
	return hashes, nil
}

func (s *InclusionListStore) PutInclusionReport(ctx context.Context, report *store.InclusionReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal inclusion report: %w", err)
	}
	field := strconv.FormatUint(report.Slot, 10)
	if err := s.rdb.HSet(ctx, inclusionListReportKey, field, data).Err(); err != nil {
		return fmt.Errorf("store inclusion report for slot %d: %w", report.Slot, err)
	}
	return nil
}

// GetInclusionReports returns every stored report, highest slot first. Entries
// that cannot be decoded are skipped.
func (s *InclusionListStore) GetInclusionReports(ctx context.Context) ([]*store.InclusionReport, error) {
	entries, err := s.rdb.HGetAll(ctx, inclusionListReportKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list inclusion reports: %w", err)
	}

	reports := make([]*store.InclusionReport, 0, len(entries))
	for _, val := range entries {
		var report store.InclusionReport
		if err := json.Unmarshal([]byte(val), &report); err != nil {
			continue
		}
		reports = append(reports, &report)
	}
	slices.SortFunc(reports, func(a, b *store.InclusionReport) int {
		return cmp.Compare(b.Slot, a.Slot)
	})
	return reports, nil
}
