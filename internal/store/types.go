package store

import "errors"

var (
	// ErrNotFound is returned when an item in store is not found.
	ErrNotFound = errors.New("not found")
)

// TxType mirrors the EIP-2718 transaction type byte.
type TxType uint8

const (
	LegacyTx TxType = iota
	AccessListTx
	DynamicFeeTx
	BlobTx
	SetCodeTx
)

func (t TxType) String() string {
	switch t {
	case LegacyTx:
		return "legacy"
	case AccessListTx:
		return "eip2930"
	case DynamicFeeTx:
		return "eip1559"
	case BlobTx:
		return "eip4844"
	case SetCodeTx:
		return "eip7702"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a transaction as reported by one client.
type Status string

const (
	StatusReceived Status = "received"
	StatusPending  Status = "pending"
	StatusQueued   Status = "queued"
	StatusMined    Status = "mined"
	StatusDropped  Status = "dropped"
)

// Tx holds the transaction fields as reported by a client's txpool.
// Wei amounts are decimal strings.
type Tx struct {
	ChainID            string `json:"chain_id"`
	From               string `json:"from"`
	To                 string `json:"to,omitempty"`
	IsContractCreation bool   `json:"isContractCreation"`
	Nonce              uint64 `json:"nonce"`
	Value              string `json:"value"`
	Gas                uint64 `json:"gas"`
	GasPrice           string `json:"gas_price,omitempty"`
	MaxFeePerGas       string `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFee     string `json:"max_priority_fee,omitempty"`
	MaxFeePerBlobGas   string `json:"max_fee_per_blob_gas,omitempty"`
	Data               string `json:"data,omitempty"`
	Type               TxType `json:"type"`
}

// Metadata is what a single client observed about a transaction over time.
// Times are unix seconds.
type Metadata struct {
	Status       Status `json:"status"`
	TimeReceived int64  `json:"time_received"`
	TimePending  *int64 `json:"time_pending"`
	TimeQueued   int64  `json:"time_queued"`
	TimeMined    *int64 `json:"time_mined"`
	TimeDropped  int64  `json:"time_dropped"`
	BlockNumber  uint64 `json:"block_number"`
	BlockHash    string `json:"block_hash"`
	MineStatus   string `json:"mine_status"`
	GasUsed      uint64 `json:"gas_used"`
}

type StoredTransaction struct {
	Hash     string   `json:"hash"`
	Tx       Tx       `json:"tx"`
	Metadata Metadata `json:"metadata"`
}

// InclusionReport compares a slot's inclusion list with the block built for it.
type InclusionReport struct {
	Slot     uint64           `json:"slot"`
	Included []string         `json:"included"`
	Missing  []string         `json:"missing"`
	Summary  InclusionSummary `json:"summary"`
}

type InclusionSummary struct {
	Total    int `json:"total"`
	Included int `json:"included"`
	Missing  int `json:"missing"`
}
