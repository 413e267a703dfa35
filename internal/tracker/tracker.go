// Package tracker follows the txpool of a single execution client and records how each
// transaction moves through it until it is mined or dropped.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txpoolviz/internal/eth"
	"github.com/hedisam/txpoolviz/internal/store"
)

type Node interface {
	Name() string
	TxPoolContent(ctx context.Context) (*eth.TxPool, error)
	TransactionReceipt(ctx context.Context, txHash string) (*eth.Receipt, error)
	BlockByNumber(ctx context.Context, blockNum int64) (*eth.Block, error)
}

type TxStore interface {
	PutTransaction(ctx context.Context, client string, tx *store.StoredTransaction) error
}

type Tracker struct {
	logger  *logrus.Logger
	node    Node
	txStore TxStore
	now     func() time.Time

	// tracked holds the txs last seen in the pool and unsaved the ones whose latest
	// state failed to reach the store. Only the Start goroutine touches them.
	tracked map[string]*store.StoredTransaction
	unsaved map[string]struct{}
}

func New(logger *logrus.Logger, node Node, txStore TxStore) *Tracker {
	return &Tracker{
		logger:  logger,
		node:    node,
		txStore: txStore,
		now:     time.Now,
		tracked: make(map[string]*store.StoredTransaction),
		unsaved: make(map[string]struct{}),
	}
}

// Start polls the node's txpool on every tick until ctx is done.
func (t *Tracker) Start(ctx context.Context, pollInterval time.Duration) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for range chans.ReceiveOrDoneSeq(ctx, ticker.C) {
		err := t.poll(ctx)
		if err != nil {
			t.logger.WithField("client", t.node.Name()).WithError(err).Error("Failed to poll txpool")
			failedPolls.WithLabelValues(t.node.Name()).Inc()
		}
	}
}

func (t *Tracker) poll(ctx context.Context) error {
	pool, err := t.node.TxPoolContent(ctx)
	if err != nil {
		return fmt.Errorf("get txpool content: %w", err)
	}

	now := t.now().Unix()
	client := t.node.Name()
	logger := t.logger.WithContext(ctx).WithField("client", client)

	sections := []struct {
		status      store.Status
		txsBySender map[string]map[string]*eth.Transaction
	}{
		{status: store.StatusPending, txsBySender: pool.Pending},
		{status: store.StatusQueued, txsBySender: pool.Queued},
	}

	var storeErrs []error
	seen := make(map[string]struct{})
	for _, section := range sections {
		for _, txsByNonce := range section.txsBySender {
			for _, tx := range txsByNonce {
				if tx == nil || tx.Hash == "" {
					continue
				}
				seen[tx.Hash] = struct{}{}

				err = t.observe(ctx, tx, section.status, now)
				if err != nil {
					logger.WithField("tx_hash", tx.Hash).WithError(err).Warn("Could not store tx, will retry next tick")
					storeErrs = append(storeErrs, fmt.Errorf("record %s tx %q: %w", section.status, tx.Hash, err))
				}
			}
		}
	}

	var resolved int
	for hash, rec := range t.tracked {
		if _, ok := seen[hash]; ok {
			continue
		}
		done, err := t.resolve(ctx, rec, now)
		if err != nil {
			logger.WithField("tx_hash", hash).WithError(err).Warn("Could not resolve tx that left the pool, will retry")
			continue
		}
		if done {
			delete(t.tracked, hash)
			delete(t.unsaved, hash)
			resolved++
		}
	}

	trackedTransactions.WithLabelValues(client).Set(float64(len(t.tracked)))
	logger.WithFields(logrus.Fields{
		"tracked":  len(t.tracked),
		"unsaved":  len(t.unsaved),
		"resolved": resolved,
	}).Debug("Polled txpool")

	return errors.Join(storeErrs...)
}

// observe records a tx currently in the pool with the given status. The store is only
// written when the tx is new, its status changed or its last write failed.
func (t *Tracker) observe(ctx context.Context, tx *eth.Transaction, status store.Status, now int64) error {
	rec, ok := t.tracked[tx.Hash]
	if !ok {
		rec = &store.StoredTransaction{
			Hash: tx.Hash,
			Tx:   toStoreTx(tx),
			Metadata: store.Metadata{
				Status:       store.StatusReceived,
				TimeReceived: now,
			},
		}
		t.tracked[tx.Hash] = rec
		receivedTransactions.WithLabelValues(t.node.Name()).Inc()
	}

	changed := transition(&rec.Metadata, status, now)
	_, unsaved := t.unsaved[tx.Hash]
	if ok && !changed && !unsaved {
		return nil
	}

	err := t.txStore.PutTransaction(ctx, t.node.Name(), rec)
	if err != nil {
		t.unsaved[tx.Hash] = struct{}{}
		return err
	}
	delete(t.unsaved, tx.Hash)

	return nil
}

// transition moves md to status and reports whether anything changed.
func transition(md *store.Metadata, status store.Status, now int64) bool {
	if md.Status == status {
		return false
	}

	md.Status = status
	switch status {
	case store.StatusPending:
		if md.TimePending == nil {
			md.TimePending = &now
		}
	case store.StatusQueued:
		md.TimeQueued = now
	case store.StatusDropped:
		md.TimeDropped = now
	}

	return true
}

// resolve settles a tx that is no longer in the pool. It returns true once the tx got a
// final status and was written to the store.
func (t *Tracker) resolve(ctx context.Context, rec *store.StoredTransaction, now int64) (bool, error) {
	receipt, err := t.node.TransactionReceipt(ctx, rec.Hash)
	if err != nil {
		if !errors.Is(err, eth.ErrNotFound) {
			return false, fmt.Errorf("get receipt: %w", err)
		}
		transition(&rec.Metadata, store.StatusDropped, now)
		err = t.txStore.PutTransaction(ctx, t.node.Name(), rec)
		if err != nil {
			return false, fmt.Errorf("store dropped tx: %w", err)
		}
		droppedTransactions.WithLabelValues(t.node.Name()).Inc()
		return true, nil
	}

	block, err := t.node.BlockByNumber(ctx, int64(receipt.BlockNumber))
	if err != nil {
		return false, fmt.Errorf("get block %d: %w", uint64(receipt.BlockNumber), err)
	}

	md := &rec.Metadata
	md.Status = store.StatusMined
	minedAt := block.Timestamp
	md.TimeMined = &minedAt
	if md.TimePending == nil {
		md.TimePending = &minedAt
	}
	md.BlockNumber = uint64(receipt.BlockNumber)
	md.BlockHash = receipt.BlockHash
	md.GasUsed = uint64(receipt.GasUsed)
	md.MineStatus = "failed"
	if receipt.Succeeded() {
		md.MineStatus = "success"
	}

	err = t.txStore.PutTransaction(ctx, t.node.Name(), rec)
	if err != nil {
		return false, fmt.Errorf("store mined tx: %w", err)
	}
	minedTransactions.WithLabelValues(t.node.Name()).Inc()

	return true, nil
}

func toStoreTx(tx *eth.Transaction) store.Tx {
	out := store.Tx{
		ChainID:          bigString(tx.ChainID),
		From:             tx.From,
		Nonce:            uint64(tx.Nonce),
		Value:            bigString(tx.Value),
		Gas:              uint64(tx.Gas),
		GasPrice:         bigString(tx.GasPrice),
		MaxFeePerGas:     bigString(tx.MaxFeePerGas),
		MaxPriorityFee:   bigString(tx.MaxPriorityFeePerGas),
		MaxFeePerBlobGas: bigString(tx.MaxFeePerBlobGas),
		Data:             tx.Input.String(),
		Type:             store.TxType(tx.Type),
	}
	if tx.To == nil || *tx.To == "" {
		out.IsContractCreation = true
	} else {
		out.To = *tx.To
	}

	return out
}

func bigString(b *hexutil.Big) string {
	if b == nil {
		return ""
	}
	return b.ToInt().String()
}
