package eth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"
)

const (
	getBlockByNumber      rpcMethod = "eth_getBlockByNumber"
	getTxPoolContent      rpcMethod = "txpool_content"
	getTransactionReceipt rpcMethod = "eth_getTransactionReceipt"
)

var (
	// ErrNotFound is returned when the node answers with a null result, e.g. for a block
	// that hasn't been minted yet or a transaction without a receipt.
	ErrNotFound = errors.New("not found")
)

type Client struct {
	logger *logrus.Logger
	rpc    *rpc.Client
	name   string
}

// New returns a client for the node at nodeAddr. The headers are set on every request,
// which is how authenticated endpoints are reached. Nothing is dialled for http(s)
// addresses, the first call opens the connection.
func New(ctx context.Context, logger *logrus.Logger, httpClient *http.Client, name, nodeAddr string, headers map[string]string) (*Client, error) {
	header := make(http.Header, len(headers))
	for k, v := range headers {
		header.Set(k, v)
	}

	rpcClient, err := rpc.DialOptions(ctx, nodeAddr, rpc.WithHTTPClient(httpClient), rpc.WithHeaders(header))
	if err != nil {
		return nil, fmt.Errorf("dial node %q: %w", name, err)
	}

	return &Client{
		logger: logger,
		rpc:    rpcClient,
		name:   name,
	}, nil
}

// Close releases the underlying rpc client.
func (c *Client) Close() {
	c.rpc.Close()
}

// Name returns the configured name of the node.
func (c *Client) Name() string {
	return c.name
}

func (c *Client) TxPoolContent(ctx context.Context) (*TxPool, error) {
	var pool TxPool
	err := c.call(ctx, getTxPoolContent, &pool)
	if err != nil {
		return nil, err
	}

	return &pool, nil
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	var receipt Receipt
	err := c.call(ctx, getTransactionReceipt, &receipt, txHash)
	if err != nil {
		return nil, err
	}

	return &receipt, nil
}

// BlockByNumber returns the block with only its transaction hashes. Use -1 for the latest block.
func (c *Client) BlockByNumber(ctx context.Context, blockNum int64) (*Block, error) {
	var requestedBlockNumber string
	switch blockNum {
	case -1:
		requestedBlockNumber = "latest"
	default:
		requestedBlockNumber = "0x" + strconv.FormatInt(blockNum, 16)
	}

	var block Block
	// last param is 'false' to only request the tx hashes
	err := c.call(ctx, getBlockByNumber, &block, requestedBlockNumber, false)
	if err != nil {
		return nil, err
	}

	return &block, nil
}

func (c *Client) Stream(ctx context.Context, pollTick time.Duration) <-chan *Block {
	out := make(chan *Block)

	go func() {
		defer close(out)

		t := time.NewTicker(pollTick)
		defer t.Stop()

		currentBlockNumber := int64(-2) // first time it'll be mapped to the 'latest' block number
		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			block, err := c.BlockByNumber(ctx, currentBlockNumber+1)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					continue
				}
				c.logger.WithField("node", c.name).WithError(err).Error("Failed to get latest block")
				failedBlockRetrievals.WithLabelValues(c.name).Inc()
				continue
			}

			if block.Number == currentBlockNumber {
				c.logger.WithField("current_block_number", block.Number).Debug("No new block yet")
				continue
			}

			c.logger.WithFields(logrus.Fields{
				"node":   c.name,
				"number": block.Number,
				"hash":   block.Hash,
			}).Debug("Received block")
			if !chans.SendOrDone(ctx, out, block) {
				return
			}
			currentBlockNumber = block.Number
			retrievedBlocks.WithLabelValues(c.name).Inc()
		}
	}()

	return out
}

// call sends a json-rpc request and decodes its result into out. A null result is
// reported as ErrNotFound and an error object as *RPCError. Only transport failures
// are retried.
func (c *Client) call(ctx context.Context, method rpcMethod, out any, rpcParams ...any) error {
	var result json.RawMessage
	bk := backoff.WithContext(newExponentialBackoffConfig(), ctx)
	err := backoff.Retry(func() error {
		err := c.rpc.CallContext(ctx, &result, string(method), rpcParams...)
		if err == nil {
			return nil
		}

		var rpcErr rpc.Error
		var httpErr rpc.HTTPError
		switch {
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
			return backoff.Permanent(err)
		case errors.Is(err, rpc.ErrNoResult):
			return backoff.Permanent(ErrNotFound)
		case errors.As(err, &rpcErr):
			return backoff.Permanent(&RPCError{Code: rpcErr.ErrorCode(), Message: rpcErr.Error()})
		case errors.As(err, &httpErr):
			c.logger.WithFields(logrus.Fields{
				"node":     c.name,
				"method":   method,
				"response": string(httpErr.Body),
			}).Error("Eth node responded with unexpected status code")
			return backoff.Permanent(fmt.Errorf("received unexpected status: %s", httpErr.Status))
		}

		c.logger.WithFields(logrus.Fields{
			"node":   c.name,
			"method": method,
		}).WithError(err).Error("Failed to call node, retrying...")
		return fmt.Errorf("call %s: %w", method, err)
	}, bk)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		rpcFailures.WithLabelValues(c.name, string(method)).Inc()
		return err
	}

	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return ErrNotFound
	}

	err = json.Unmarshal(result, out)
	if err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	return nil
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
