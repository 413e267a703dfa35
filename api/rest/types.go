package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// request and response types are defined below
// the api client decodes into the same types, so any change here is a wire change

type ListTransactionsRequest struct {
	Count int `json:"count"`
}

// Bind reads the optional count query parameter.
func (r *ListTransactionsRequest) Bind(req *http.Request) error {
	raw := strings.TrimSpace(req.URL.Query().Get("count"))
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return NewErrf(http.StatusBadRequest, "Invalid count %q, expected a positive integer", raw)
	}
	r.Count = n

	return nil
}

// ListTransactionsResponse is encoded as a bare JSON array.
type ListTransactionsResponse []*TxSummary

// TxSummary is the condensed view of a transaction used by list views.
type TxSummary struct {
	Hash        string      `json:"hash"`
	From        string      `json:"from"`
	GasUsed     uint64      `json:"gasUsed"`
	PriorityFee json.Number `json:"priorityFee"`
	Nonce       uint64      `json:"nonce"`
	Type        string      `json:"type"`
}

type GetTransactionDetailsRequest struct {
	TxHash string `json:"txHash"`
}

func (r *GetTransactionDetailsRequest) Bind(req *http.Request) error {
	r.TxHash = req.PathValue("txHash")
	return nil
}

// APITxResponse shows where the clients holding a transaction agree and where they don't.
type APITxResponse struct {
	Hash    string       `json:"hash"`
	Clients []string     `json:"clients"`
	Common  CommonFields `json:"common"`
	Diff    DiffFields   `json:"diff"`
}

type CommonFields struct {
	Tx       map[string]any `json:"tx"`
	Metadata map[string]any `json:"metadata"`
}

// DiffFields maps field name to client name to the value that client reported.
type DiffFields struct {
	Tx       map[string]map[string]any `json:"tx"`
	Metadata map[string]map[string]any `json:"metadata"`
}

type ListInclusionListsRequest struct{}

// ListInclusionListsResponse is encoded as a bare JSON array.
type ListInclusionListsResponse []*InclusionList

type InclusionList struct {
	Slot   uint64          `json:"slot"`
	Report InclusionReport `json:"report"`
}

type InclusionReport struct {
	Included []string         `json:"included"`
	Missing  []string         `json:"missing"`
	Summary  InclusionSummary `json:"summary"`
}

type InclusionSummary struct {
	Total    int `json:"total"`
	Included int `json:"included"`
	Missing  int `json:"missing"`
}
