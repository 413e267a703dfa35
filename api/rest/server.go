package rest

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpoolviz/internal/diff"
	"github.com/hedisam/txpoolviz/internal/store"
)

const (
	DefaultTransactionsCount = 50
	MaxTransactionsCount     = 500
)

type TxStore interface {
	GetTransaction(ctx context.Context, client, hash string) (*store.StoredTransaction, error)
	LatestTransactions(ctx context.Context, n int) ([]string, error)
}

type InclusionListStore interface {
	GetInclusionReports(ctx context.Context) ([]*store.InclusionReport, error)
}

type Server struct {
	logger  *logrus.Logger
	txStore TxStore
	ilStore InclusionListStore
	clients []string
}

// NewServer creates the api server for the given client names, in priority order. A nil
// ilStore means inclusion list tracking is disabled.
func NewServer(logger *logrus.Logger, txStore TxStore, ilStore InclusionListStore, clients []string) *Server {
	return &Server{
		logger:  logger,
		txStore: txStore,
		ilStore: ilStore,
		clients: clients,
	}
}

func (s *Server) ListTransactions(ctx context.Context, req *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	count := req.Count
	switch {
	case count <= 0:
		count = DefaultTransactionsCount
	case count > MaxTransactionsCount:
		count = MaxTransactionsCount
	}
	logger := s.logger.WithContext(ctx).WithField("count", count)

	hashes, err := s.txStore.LatestTransactions(ctx, count)
	if err != nil {
		logger.WithError(err).Error("Failed to list latest transactions from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not list transactions")
	}

	summaries := make(ListTransactionsResponse, 0, len(hashes))
	for _, hash := range hashes {
		records, err := s.records(ctx, hash)
		if err != nil {
			logger.WithField("tx_hash", hash).WithError(err).Error("Failed to get transaction from store")
			return nil, NewErrf(http.StatusInternalServerError, "Could not list transactions")
		}
		if len(records) == 0 {
			// evicted after it was listed
			continue
		}
		summaries = append(summaries, toSummary(records[0].tx))
	}

	return &summaries, nil
}

func (s *Server) GetTransactionDetails(ctx context.Context, req *GetTransactionDetailsRequest) (*APITxResponse, error) {
	hash := strings.ToLower(strings.TrimSpace(req.TxHash))
	logger := s.logger.WithContext(ctx).WithField("tx_hash", hash)
	if hash == "" {
		logger.Warn("Transaction hash is required to get transaction details")
		return nil, NewErrf(http.StatusBadRequest, "Missing required path parameter: 'txHash'")
	}

	records, err := s.records(ctx, hash)
	if err != nil {
		logger.WithError(err).Error("Failed to get transaction from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get transaction details")
	}
	if len(records) == 0 {
		return nil, NewErrf(http.StatusNotFound, "Transaction %s not found", hash)
	}

	clients := make([]string, 0, len(records))
	txFields := make(map[string]map[string]any, len(records))
	mdFields := make(map[string]map[string]any, len(records))
	for _, rec := range records {
		clients = append(clients, rec.client)
		txFields[rec.client] = diff.TxFields(rec.tx.Tx)
		mdFields[rec.client] = diff.MetadataFields(rec.tx.Metadata)
	}

	primary := records[0].client
	txDiff := diff.Compute(txFields, primary)
	mdDiff := diff.Compute(mdFields, primary)

	return &APITxResponse{
		Hash:    hash,
		Clients: clients,
		Common: CommonFields{
			Tx:       txDiff.Common,
			Metadata: mdDiff.Common,
		},
		Diff: DiffFields{
			Tx:       txDiff.Diff,
			Metadata: mdDiff.Diff,
		},
	}, nil
}

func (s *Server) ListInclusionLists(ctx context.Context, _ *ListInclusionListsRequest) (*ListInclusionListsResponse, error) {
	if s.ilStore == nil {
		return nil, NewErrf(http.StatusNotFound, "Inclusion list tracking is disabled")
	}

	reports, err := s.ilStore.GetInclusionReports(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to list inclusion reports from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not list inclusion lists")
	}

	lists := make(ListInclusionListsResponse, 0, len(reports))
	for _, r := range reports {
		lists = append(lists, &InclusionList{
			Slot: r.Slot,
			Report: InclusionReport{
				Included: nonNil(r.Included),
				Missing:  nonNil(r.Missing),
				Summary: InclusionSummary{
					Total:    r.Summary.Total,
					Included: r.Summary.Included,
					Missing:  r.Summary.Missing,
				},
			},
		})
	}

	return &lists, nil
}

// Ping is a liveness probe.
func (s *Server) Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}

type clientRecord struct {
	client string
	tx     *store.StoredTransaction
}

// records returns the record of every configured client holding hash, in client order.
func (s *Server) records(ctx context.Context, hash string) ([]clientRecord, error) {
	var out []clientRecord
	for _, client := range s.clients {
		tx, err := s.txStore.GetTransaction(ctx, client, hash)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, clientRecord{client: client, tx: tx})
	}

	return out, nil
}

func toSummary(tx *store.StoredTransaction) *TxSummary {
	return &TxSummary{
		Hash:        tx.Hash,
		From:        tx.Tx.From,
		GasUsed:     tx.Metadata.GasUsed,
		PriorityFee: weiNumber(tx.Tx.MaxPriorityFee),
		Nonce:       tx.Tx.Nonce,
		Type:        tx.Tx.Type.String(),
	}
}

// weiNumber turns a decimal wei string into a JSON number, 0 when unset or malformed.
func weiNumber(wei string) json.Number {
	v, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return "0"
	}
	return json.Number(v.String())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
