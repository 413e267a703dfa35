package eth

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcMethod string

// RPCError is the error object a node returns in place of a result.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Transaction is a transaction as listed by txpool_content.
type Transaction struct {
	Hash                 string         `json:"hash"`
	Type                 hexutil.Uint64 `json:"type"`
	ChainID              *hexutil.Big   `json:"chainId"`
	From                 string         `json:"from"`
	To                   *string        `json:"to"`
	Nonce                hexutil.Uint64 `json:"nonce"`
	Value                *hexutil.Big   `json:"value"`
	Gas                  hexutil.Uint64 `json:"gas"`
	GasPrice             *hexutil.Big   `json:"gasPrice"`
	MaxFeePerGas         *hexutil.Big   `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big   `json:"maxPriorityFeePerGas"`
	MaxFeePerBlobGas     *hexutil.Big   `json:"maxFeePerBlobGas"`
	Input                hexutil.Bytes  `json:"input"`
}

// TxPool maps sender address to nonce to transaction for both pool sections.
type TxPool struct {
	Pending map[string]map[string]*Transaction `json:"pending"`
	Queued  map[string]map[string]*Transaction `json:"queued"`
}

type Receipt struct {
	TransactionHash string         `json:"transactionHash"`
	BlockHash       string         `json:"blockHash"`
	BlockNumber     hexutil.Uint64 `json:"blockNumber"`
	GasUsed         hexutil.Uint64 `json:"gasUsed"`
	Status          hexutil.Uint64 `json:"status"`
}

// Succeeded reports whether the transaction execution did not revert.
func (r *Receipt) Succeeded() bool {
	return r.Status == 1
}

type Block struct {
	Hash       string   `json:"hash"`
	Number     int64    `json:"number"`
	ParentHash string   `json:"parentHash"`
	Timestamp  int64    `json:"timestamp"`
	TxHashes   []string `json:"transactions"`
}

// UnmarshalJSON customizes Block decoding to parse the hex block number and timestamp.
func (b *Block) UnmarshalJSON(data []byte) error {
	// alias to avoid infinite recursion
	type blockAlias Block
	aux := &struct {
		*blockAlias
		Number    hexutil.Uint64 `json:"number"`
		Timestamp hexutil.Uint64 `json:"timestamp"`
	}{
		blockAlias: (*blockAlias)(b),
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("error unmarshalling Block: %w", err)
	}

	b.Number = int64(aux.Number)
	b.Timestamp = int64(aux.Timestamp)

	return nil
}
