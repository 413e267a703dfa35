// Package focil follows the inclusion lists published by beacon nodes and checks which of
// their transactions made it into the matching execution blocks.
package focil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txpoolviz/internal/eth"
	"github.com/hedisam/txpoolviz/internal/store"
)

type InclusionListStore interface {
	StoreInclusionList(ctx context.Context, slot uint64, txHashes []string) (bool, error)
	GetInclusionList(ctx context.Context, slot uint64) ([]string, error)
	PutInclusionReport(ctx context.Context, report *store.InclusionReport) error
}

type inclusionListEvent struct {
	Version string `json:"version"`
	Data    struct {
		Message struct {
			Slot           string   `json:"slot"`
			ValidatorIndex string   `json:"validator_index"`
			Transactions   []string `json:"transactions"`
		} `json:"message"`
		Signature string `json:"signature"`
	} `json:"data"`
}

type Tracker struct {
	logger  *logrus.Logger
	ilStore InclusionListStore
}

func New(logger *logrus.Logger, ilStore InclusionListStore) *Tracker {
	return &Tracker{
		logger:  logger,
		ilStore: ilStore,
	}
}

// VerifyBlocks compares every block received on in against the inclusion list stored for
// its number and stores the outcome as a report.
func (t *Tracker) VerifyBlocks(ctx context.Context, in <-chan *eth.Block) {
	for block := range chans.ReceiveOrDoneSeq(ctx, in) {
		err := t.verifyBlock(ctx, block)
		if err != nil {
			t.logger.WithFields(logrus.Fields{
				"block_hash":   block.Hash,
				"block_number": block.Number,
			}).WithError(err).Error("Failed to verify block against inclusion list")
			failedVerifications.Inc()
		}
	}
}

func (t *Tracker) verifyBlock(ctx context.Context, block *eth.Block) error {
	if block == nil || block.Number < 0 {
		return nil
	}

	slot := uint64(block.Number)
	ilHashes, err := t.ilStore.GetInclusionList(ctx, slot)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			t.logger.WithField("slot", slot).Debug("No inclusion list for block")
			return nil
		}
		return fmt.Errorf("get inclusion list: %w", err)
	}

	inBlock := make(map[string]struct{}, len(block.TxHashes))
	for _, h := range block.TxHashes {
		inBlock[strings.ToLower(h)] = struct{}{}
	}

	report := &store.InclusionReport{
		Slot:     slot,
		Included: []string{},
		Missing:  []string{},
	}
	for _, h := range ilHashes {
		if _, ok := inBlock[strings.ToLower(h)]; ok {
			report.Included = append(report.Included, h)
		} else {
			report.Missing = append(report.Missing, h)
		}
	}
	report.Summary = store.InclusionSummary{
		Total:    len(ilHashes),
		Included: len(report.Included),
		Missing:  len(report.Missing),
	}

	err = t.ilStore.PutInclusionReport(ctx, report)
	if err != nil {
		return fmt.Errorf("store inclusion report: %w", err)
	}

	verifiedBlocks.Inc()
	missingTransactions.Add(float64(report.Summary.Missing))
	t.logger.WithFields(logrus.Fields{
		"slot":     slot,
		"included": report.Summary.Included,
		"missing":  report.Summary.Missing,
	}).Info("Verified block against inclusion list")

	return nil
}

// handleEvent stores the list carried by an inclusion_list event when it is larger than
// the one already kept for the slot.
func (t *Tracker) handleEvent(ctx context.Context, data []byte) error {
	var event inclusionListEvent
	err := json.Unmarshal(data, &event)
	if err != nil {
		return fmt.Errorf("unmarshal inclusion list event: %w", err)
	}

	msg := event.Data.Message
	if msg.Slot == "" {
		return errors.New("inclusion list event without slot")
	}
	slot, err := strconv.ParseUint(msg.Slot, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid slot %q: %w", msg.Slot, err)
	}

	hashes := t.decodeTxHashes(msg.Transactions)
	receivedInclusionLists.Inc()

	updated, err := t.ilStore.StoreInclusionList(ctx, slot, hashes)
	if err != nil {
		return fmt.Errorf("store inclusion list for slot %d: %w", slot, err)
	}
	if updated {
		t.logger.WithFields(logrus.Fields{
			"slot":          slot,
			"validator":     msg.ValidatorIndex,
			"total_txs":     len(hashes),
			"undecoded_txs": len(msg.Transactions) - len(hashes),
		}).Info("Updated inclusion list")
	}

	return nil
}

// decodeTxHashes turns hex encoded transactions into their hashes, skipping the ones
// that cannot be decoded.
func (t *Tracker) decodeTxHashes(rawTxs []string) []string {
	hashes := make([]string, 0, len(rawTxs))
	for _, raw := range rawTxs {
		hash, err := txHash(raw)
		if err != nil {
			t.logger.WithError(err).Warn("Skipping undecodable inclusion list transaction")
			undecodableTransactions.Inc()
			continue
		}
		hashes = append(hashes, hash)
	}

	return hashes
}

func txHash(raw string) (string, error) {
	data, err := hexutil.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("hex decode: %w", err)
	}

	var tx types.Transaction
	err = tx.UnmarshalBinary(data)
	if err != nil {
		return "", fmt.Errorf("unmarshal binary tx: %w", err)
	}

	return tx.Hash().Hex(), nil
}
