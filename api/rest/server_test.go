package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restapi "github.com/hedisam/txpoolviz/api/rest"
	"github.com/hedisam/txpoolviz/api/rest/mocks"
	"github.com/hedisam/txpoolviz/internal/store"
)

//go:generate moq -out mocks/tx_store.go -pkg mocks -skip-ensure . TxStore
//go:generate moq -out mocks/inclusion_list_store.go -pkg mocks -skip-ensure . InclusionListStore

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func ptr[T any](v T) *T {
	return &v
}

func assertRestErr(t *testing.T, expected *restapi.Err, err error) {
	t.Helper()

	require.Error(t, err)
	castedErr := &restapi.Err{}
	if errors.As(err, &castedErr) {
		assert.Equal(t, expected, castedErr)
		return
	}
	assert.Equal(t, expected.Message, err.Error())
}

// records maps client -> hash -> stored tx
func newTxStore(latest []string, records map[string]map[string]*store.StoredTransaction) *mocks.TxStoreMock {
	return &mocks.TxStoreMock{
		LatestTransactionsFunc: func(ctx context.Context, n int) ([]string, error) {
			if n < len(latest) {
				return latest[:n], nil
			}
			return latest, nil
		},
		GetTransactionFunc: func(ctx context.Context, client string, hash string) (*store.StoredTransaction, error) {
			tx, ok := records[client][hash]
			if !ok {
				return nil, store.ErrNotFound
			}
			return tx, nil
		},
	}
}

func TestListTransactions(t *testing.T) {
	dynamicFeeTx := &store.StoredTransaction{
		Hash: "0xabc",
		Tx: store.Tx{
			From:           "0x1",
			Nonce:          5,
			MaxPriorityFee: "2",
			Type:           store.DynamicFeeTx,
		},
		Metadata: store.Metadata{Status: store.StatusMined, GasUsed: 21000},
	}
	legacyTx := &store.StoredTransaction{
		Hash: "0xdef",
		Tx: store.Tx{
			From:     "0x2",
			Nonce:    1,
			GasPrice: "30",
			Type:     store.LegacyTx,
		},
		Metadata: store.Metadata{Status: store.StatusPending},
	}

	tests := map[string]struct {
		req           *restapi.ListTransactionsRequest
		latest        []string
		latestErr     error
		records       map[string]map[string]*store.StoredTransaction
		expectedCount int
		expectedResp  *restapi.ListTransactionsResponse
		expectedErr   *restapi.Err
	}{
		"newest first with first client holding the record": {
			req:    &restapi.ListTransactionsRequest{},
			latest: []string{"0xdef", "0xabc"},
			records: map[string]map[string]*store.StoredTransaction{
				"geth": {"0xabc": dynamicFeeTx},
				"reth": {"0xdef": legacyTx, "0xabc": {Hash: "0xabc", Tx: store.Tx{From: "0xother"}}},
			},
			expectedCount: restapi.DefaultTransactionsCount,
			expectedResp: &restapi.ListTransactionsResponse{
				{Hash: "0xdef", From: "0x2", GasUsed: 0, PriorityFee: "0", Nonce: 1, Type: "legacy"},
				{Hash: "0xabc", From: "0x1", GasUsed: 21000, PriorityFee: "2", Nonce: 5, Type: "eip1559"},
			},
		},
		"evicted hashes are skipped": {
			req:           &restapi.ListTransactionsRequest{Count: 10},
			latest:        []string{"0xgone", "0xabc"},
			records:       map[string]map[string]*store.StoredTransaction{"geth": {"0xabc": dynamicFeeTx}},
			expectedCount: 10,
			expectedResp: &restapi.ListTransactionsResponse{
				{Hash: "0xabc", From: "0x1", GasUsed: 21000, PriorityFee: "2", Nonce: 5, Type: "eip1559"},
			},
		},
		"count is capped": {
			req:           &restapi.ListTransactionsRequest{Count: 10_000},
			expectedCount: restapi.MaxTransactionsCount,
			expectedResp:  &restapi.ListTransactionsResponse{},
		},
		"store failure": {
			req:           &restapi.ListTransactionsRequest{},
			latestErr:     errors.New("redis down"),
			expectedCount: restapi.DefaultTransactionsCount,
			expectedErr: &restapi.Err{
				Message:    "Could not list transactions",
				StatusCode: http.StatusInternalServerError,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			txStore := newTxStore(test.latest, test.records)
			if test.latestErr != nil {
				txStore.LatestTransactionsFunc = func(ctx context.Context, n int) ([]string, error) {
					return nil, test.latestErr
				}
			}

			s := restapi.NewServer(newLogger(), txStore, nil, []string{"geth", "reth"})
			resp, err := s.ListTransactions(context.Background(), test.req)

			calls := txStore.LatestTransactionsCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, test.expectedCount, calls[0].N)

			if test.expectedErr != nil {
				assertRestErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestGetTransactionDetails(t *testing.T) {
	gethRecord := &store.StoredTransaction{
		Hash: "0xabc",
		Tx:   store.Tx{ChainID: "1", From: "0x1", Nonce: 5, Value: "0", Gas: 21000, Type: store.DynamicFeeTx},
		Metadata: store.Metadata{
			Status:       store.StatusPending,
			TimeReceived: 100,
			TimePending:  ptr(int64(100)),
		},
	}
	rethRecord := &store.StoredTransaction{
		Hash: "0xabc",
		Tx:   store.Tx{ChainID: "1", From: "0x1", Nonce: 5, Value: "0", Gas: 21000, Type: store.DynamicFeeTx},
		Metadata: store.Metadata{
			Status:       store.StatusQueued,
			TimeReceived: 100,
			TimeQueued:   102,
		},
	}

	tests := map[string]struct {
		req         *restapi.GetTransactionDetailsRequest
		records     map[string]map[string]*store.StoredTransaction
		getErr      error
		assertResp  func(t *testing.T, resp *restapi.APITxResponse)
		expectedErr *restapi.Err
	}{
		"clients disagree on status": {
			req: &restapi.GetTransactionDetailsRequest{TxHash: " 0xABC "},
			records: map[string]map[string]*store.StoredTransaction{
				"geth": {"0xabc": gethRecord},
				"reth": {"0xabc": rethRecord},
			},
			assertResp: func(t *testing.T, resp *restapi.APITxResponse) {
				assert.Equal(t, "0xabc", resp.Hash)
				assert.Equal(t, []string{"geth", "reth"}, resp.Clients)
				assert.Empty(t, resp.Diff.Tx)
				assert.Equal(t, uint64(5), resp.Common.Tx["nonce"])
				assert.Equal(t, "eip1559", resp.Common.Tx["type"])
				assert.Equal(t, map[string]any{"geth": "pending", "reth": "queued"}, resp.Diff.Metadata["status"])
				assert.Equal(t, map[string]any{"geth": int64(100), "reth": nil}, resp.Diff.Metadata["timePending"])
				assert.Equal(t, map[string]any{"geth": int64(0), "reth": int64(102)}, resp.Diff.Metadata["timeQueued"])
				assert.Equal(t, int64(100), resp.Common.Metadata["timeReceived"])
				assert.NotContains(t, resp.Common.Metadata, "status")
			},
		},
		"single client holds the record": {
			req: &restapi.GetTransactionDetailsRequest{TxHash: "0xabc"},
			records: map[string]map[string]*store.StoredTransaction{
				"reth": {"0xabc": rethRecord},
			},
			assertResp: func(t *testing.T, resp *restapi.APITxResponse) {
				assert.Equal(t, []string{"reth"}, resp.Clients)
				assert.Empty(t, resp.Diff.Tx)
				assert.Empty(t, resp.Diff.Metadata)
				assert.Equal(t, "queued", resp.Common.Metadata["status"])
			},
		},
		"unknown hash": {
			req:     &restapi.GetTransactionDetailsRequest{TxHash: "0xdead"},
			records: map[string]map[string]*store.StoredTransaction{},
			expectedErr: &restapi.Err{
				Message:    "Transaction 0xdead not found",
				StatusCode: http.StatusNotFound,
			},
		},
		"missing hash": {
			req: &restapi.GetTransactionDetailsRequest{TxHash: "  "},
			expectedErr: &restapi.Err{
				Message:    "Missing required path parameter: 'txHash'",
				StatusCode: http.StatusBadRequest,
			},
		},
		"store failure": {
			req:    &restapi.GetTransactionDetailsRequest{TxHash: "0xabc"},
			getErr: errors.New("redis down"),
			expectedErr: &restapi.Err{
				Message:    "Could not get transaction details",
				StatusCode: http.StatusInternalServerError,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			txStore := newTxStore(nil, test.records)
			if test.getErr != nil {
				txStore.GetTransactionFunc = func(ctx context.Context, client string, hash string) (*store.StoredTransaction, error) {
					return nil, test.getErr
				}
			}

			s := restapi.NewServer(newLogger(), txStore, nil, []string{"geth", "reth"})
			resp, err := s.GetTransactionDetails(context.Background(), test.req)
			if test.expectedErr != nil {
				assertRestErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			test.assertResp(t, resp)
		})
	}
}

func TestListInclusionLists(t *testing.T) {
	tests := map[string]struct {
		ilStore      *mocks.InclusionListStoreMock
		expectedResp *restapi.ListInclusionListsResponse
		expectedErr  *restapi.Err
	}{
		"tracking disabled": {
			expectedErr: &restapi.Err{
				Message:    "Inclusion list tracking is disabled",
				StatusCode: http.StatusNotFound,
			},
		},
		"reports in store order": {
			ilStore: &mocks.InclusionListStoreMock{
				GetInclusionReportsFunc: func(ctx context.Context) ([]*store.InclusionReport, error) {
					return []*store.InclusionReport{
						{Slot: 9, Included: []string{"0x1"}, Summary: store.InclusionSummary{Total: 1, Included: 1}},
						{Slot: 8, Missing: []string{"0x2"}, Summary: store.InclusionSummary{Total: 1, Missing: 1}},
					}, nil
				},
			},
			expectedResp: &restapi.ListInclusionListsResponse{
				{
					Slot: 9,
					Report: restapi.InclusionReport{
						Included: []string{"0x1"},
						Missing:  []string{},
						Summary:  restapi.InclusionSummary{Total: 1, Included: 1},
					},
				},
				{
					Slot: 8,
					Report: restapi.InclusionReport{
						Included: []string{},
						Missing:  []string{"0x2"},
						Summary:  restapi.InclusionSummary{Total: 1, Missing: 1},
					},
				},
			},
		},
		"store failure": {
			ilStore: &mocks.InclusionListStoreMock{
				GetInclusionReportsFunc: func(ctx context.Context) ([]*store.InclusionReport, error) {
					return nil, errors.New("redis down")
				},
			},
			expectedErr: &restapi.Err{
				Message:    "Could not list inclusion lists",
				StatusCode: http.StatusInternalServerError,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var ilStore restapi.InclusionListStore
			if test.ilStore != nil {
				ilStore = test.ilStore
			}

			s := restapi.NewServer(newLogger(), newTxStore(nil, nil), ilStore, []string{"geth"})
			resp, err := s.ListInclusionLists(context.Background(), &restapi.ListInclusionListsRequest{})
			if test.expectedErr != nil {
				assertRestErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestRegisterFunc(t *testing.T) {
	txStore := newTxStore([]string{"0xabc"}, map[string]map[string]*store.StoredTransaction{
		"geth": {"0xabc": {Hash: "0xabc", Tx: store.Tx{From: "0x1", Nonce: 5, MaxPriorityFee: "2", Type: store.DynamicFeeTx}}},
	})
	s := restapi.NewServer(newLogger(), txStore, nil, []string{"geth"})

	mux := http.NewServeMux()
	restapi.RegisterFunc(newLogger(), mux, http.MethodGet, "/api/transactions", s.ListTransactions)
	restapi.RegisterFunc(newLogger(), mux, http.MethodGet, "/api/transaction/{txHash}", s.GetTransactionDetails)
	mux.HandleFunc("GET /ping", s.Ping)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	tests := map[string]struct {
		path           string
		expectedStatus int
		expectedBody   string
	}{
		"list transactions": {
			path:           "/api/transactions",
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"hash":"0xabc","from":"0x1","gasUsed":0,"priorityFee":2,"nonce":5,"type":"eip1559"}]`,
		},
		"invalid count": {
			path:           "/api/transactions?count=abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid count \"abc\", expected a positive integer"}`,
		},
		"unknown transaction": {
			path:           "/api/transaction/0xdead",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"Transaction 0xdead not found"}`,
		},
		"ping": {
			path:           "/ping",
			expectedStatus: http.StatusOK,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + test.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, test.expectedStatus, resp.StatusCode)
			if test.expectedBody != "" {
				assert.JSONEq(t, test.expectedBody, string(body))
			} else {
				assert.Equal(t, "pong", string(body))
			}
		})
	}

	t.Run("details round trip", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/transaction/0xabc")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var details restapi.APITxResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&details))
		assert.Equal(t, "0xabc", details.Hash)
		assert.Equal(t, []string{"geth"}, details.Clients)
		assert.Equal(t, "0x1", details.Common.Tx["from"])
	})
}
