package focil

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpoolviz/internal/eth"
	"github.com/hedisam/txpoolviz/internal/focil/mocks"
	"github.com/hedisam/txpoolviz/internal/store"
)

//go:generate moq -out mocks/inclusion_list_store.go -pkg mocks -skip-ensure . InclusionListStore

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func signedTx(t *testing.T, key *ecdsa.PrivateKey, nonce uint64) *types.Transaction {
	t.Helper()

	to := common.HexToAddress("0x00000000000000000000000000000000000000b0")
	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(big.NewInt(1)), &types.DynamicFeeTx{
		ChainID:   big.NewInt(1),
		Nonce:     nonce,
		GasTipCap: big.NewInt(2),
		GasFeeCap: big.NewInt(100),
		Gas:       21000,
		To:        &to,
		Value:     big.NewInt(1),
	})
	require.NoError(t, err)

	return tx
}

func rawTx(t *testing.T, tx *types.Transaction) string {
	t.Helper()

	data, err := tx.MarshalBinary()
	require.NoError(t, err)

	return hexutil.Encode(data)
}

func eventJSON(slot string, rawTxs ...string) string {
	txs := "[]"
	if len(rawTxs) > 0 {
		txs = `["` + rawTxs[0]
		for _, r := range rawTxs[1:] {
			txs += `","` + r
		}
		txs += `"]`
	}
	return fmt.Sprintf(`{"version":"eip7805","data":{"message":{"slot":%q,"validator_index":"7","inclusion_list_committee_root":"0x00","transactions":%s},"signature":"0x00"}}`, slot, txs)
}

func TestTracker_HandleEvent(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	tx1 := signedTx(t, key, 1)
	tx2 := signedTx(t, key, 2)

	tests := map[string]struct {
		data           string
		storeErr       error
		expectedSlot   uint64
		expectedHashes []string
		expectedCalls  int
		errContains    string
	}{
		"decodes transactions into hashes": {
			data:           eventJSON("12", rawTx(t, tx1), rawTx(t, tx2)),
			expectedSlot:   12,
			expectedHashes: []string{tx1.Hash().Hex(), tx2.Hash().Hex()},
			expectedCalls:  1,
		},
		"skips undecodable transactions": {
			data:           eventJSON("13", "0xzz", "0x02ff", rawTx(t, tx1)),
			expectedSlot:   13,
			expectedHashes: []string{tx1.Hash().Hex()},
			expectedCalls:  1,
		},
		"empty list": {
			data:           eventJSON("14"),
			expectedSlot:   14,
			expectedHashes: []string{},
			expectedCalls:  1,
		},
		"missing slot": {
			data:        eventJSON("", rawTx(t, tx1)),
			errContains: "without slot",
		},
		"invalid slot": {
			data:        eventJSON("abc"),
			errContains: "invalid slot",
		},
		"invalid json": {
			data:        `{"data":`,
			errContains: "unmarshal inclusion list event",
		},
		"store failure": {
			data:           eventJSON("15", rawTx(t, tx1)),
			storeErr:       errors.New("redis down"),
			expectedSlot:   15,
			expectedHashes: []string{tx1.Hash().Hex()},
			expectedCalls:  1,
			errContains:    "redis down",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ilStore := &mocks.InclusionListStoreMock{
				StoreInclusionListFunc: func(ctx context.Context, slot uint64, txHashes []string) (bool, error) {
					return test.storeErr == nil, test.storeErr
				},
			}

			err := New(newLogger(), ilStore).handleEvent(context.Background(), []byte(test.data))
			if test.errContains != "" {
				require.ErrorContains(t, err, test.errContains)
			} else {
				require.NoError(t, err)
			}

			calls := ilStore.StoreInclusionListCalls()
			require.Len(t, calls, test.expectedCalls)
			if test.expectedCalls > 0 {
				assert.Equal(t, test.expectedSlot, calls[0].Slot)
				assert.Equal(t, test.expectedHashes, calls[0].TxHashes)
			}
		})
	}
}

func TestTracker_VerifyBlock(t *testing.T) {
	tests := map[string]struct {
		block          *eth.Block
		inclusionList  []string
		getErr         error
		expectedReport *store.InclusionReport
		errContains    string
	}{
		"partially included": {
			block: &eth.Block{Number: 20, Hash: "0xb20", TxHashes: []string{"0xAA", "0xcc"}},
			inclusionList: []string{
				"0xaa",
				"0xbb",
			},
			expectedReport: &store.InclusionReport{
				Slot:     20,
				Included: []string{"0xaa"},
				Missing:  []string{"0xbb"},
				Summary:  store.InclusionSummary{Total: 2, Included: 1, Missing: 1},
			},
		},
		"all included": {
			block:         &eth.Block{Number: 21, TxHashes: []string{"0xaa", "0xbb"}},
			inclusionList: []string{"0xaa", "0xbb"},
			expectedReport: &store.InclusionReport{
				Slot:     21,
				Included: []string{"0xaa", "0xbb"},
				Missing:  []string{},
				Summary:  store.InclusionSummary{Total: 2, Included: 2},
			},
		},
		"empty inclusion list": {
			block:         &eth.Block{Number: 22, TxHashes: []string{"0xaa"}},
			inclusionList: []string{},
			expectedReport: &store.InclusionReport{
				Slot:     22,
				Included: []string{},
				Missing:  []string{},
			},
		},
		"no inclusion list for block": {
			block:  &eth.Block{Number: 23},
			getErr: store.ErrNotFound,
		},
		"store failure": {
			block:       &eth.Block{Number: 24},
			getErr:      errors.New("redis down"),
			errContains: "get inclusion list",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ilStore := &mocks.InclusionListStoreMock{
				GetInclusionListFunc: func(ctx context.Context, slot uint64) ([]string, error) {
					assert.EqualValues(t, test.block.Number, slot)
					return test.inclusionList, test.getErr
				},
				PutInclusionReportFunc: func(ctx context.Context, report *store.InclusionReport) error {
					return nil
				},
			}

			err := New(newLogger(), ilStore).verifyBlock(context.Background(), test.block)
			if test.errContains != "" {
				require.ErrorContains(t, err, test.errContains)
				assert.Empty(t, ilStore.PutInclusionReportCalls())
				return
			}
			require.NoError(t, err)

			calls := ilStore.PutInclusionReportCalls()
			if test.expectedReport == nil {
				assert.Empty(t, calls)
				return
			}
			require.Len(t, calls, 1)
			assert.Equal(t, test.expectedReport, calls[0].Report)
		})
	}
}

func TestTracker_Subscribe(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	tx := signedTx(t, key, 1)
	payload := eventJSON("30", rawTx(t, tx))

	var connections int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eth/v1/events", r.URL.Path)
		assert.Equal(t, "inclusion_list", r.URL.Query().Get("topics"))

		mu.Lock()
		connections++
		mu.Unlock()

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "event: inclusion_list\ndata: %s\n\n", payload)
		w.(http.Flusher).Flush()

		<-r.Context().Done()
	}))
	defer srv.Close()

	var stored sync.Map
	ilStore := &mocks.InclusionListStoreMock{
		StoreInclusionListFunc: func(ctx context.Context, slot uint64, txHashes []string) (bool, error) {
			stored.Store(slot, txHashes)
			return true, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- New(newLogger(), ilStore).Subscribe(ctx, &http.Client{}, srv.URL+"/")
	}()

	require.Eventually(t, func() bool {
		_, ok := stored.Load(uint64(30))
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	hashes, _ := stored.Load(uint64(30))
	assert.Equal(t, []string{tx.Hash().Hex()}, hashes)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("subscription did not stop after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, connections, 1)
}

func TestTracker_SubscribeReconnectsAfterFailedConnection(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	tx := signedTx(t, key, 2)
	payload := eventJSON("31", rawTx(t, tx))

	var connections int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		connections++
		first := connections == 1
		mu.Unlock()

		if first {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "event: inclusion_list\ndata: %s\n\n", payload)
		w.(http.Flusher).Flush()

		<-r.Context().Done()
	}))
	defer srv.Close()

	var stored sync.Map
	ilStore := &mocks.InclusionListStoreMock{
		StoreInclusionListFunc: func(ctx context.Context, slot uint64, txHashes []string) (bool, error) {
			stored.Store(slot, txHashes)
			return true, nil
		},
	}

	reconnectsBefore := testutil.ToFloat64(streamReconnects)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- New(newLogger(), ilStore).Subscribe(ctx, &http.Client{}, srv.URL)
	}()

	require.Eventually(t, func() bool {
		_, ok := stored.Load(uint64(31))
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	// the failed attempt must surface to our own retry loop rather than the sse client's
	assert.GreaterOrEqual(t, testutil.ToFloat64(streamReconnects)-reconnectsBefore, float64(1))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("subscription did not stop after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, connections, 2)
}
