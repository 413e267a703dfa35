// Package client talks to the txpoolviz api. It never retries: each call is a single
// GET whose failure is returned to the caller as is.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpoolviz/api/rest"
)

const (
	transactionsPath   = "/api/transactions"
	transactionPath    = "/api/transaction/"
	inclusionListsPath = "/api/inclusion-lists"
)

type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	baseURL    string
}

// New returns a client for the api served at baseURL, e.g. http://localhost:8080. An
// empty baseURL keeps request paths relative.
func New(logger *logrus.Logger, httpClient *http.Client, baseURL string) *Client {
	return &Client{
		logger:     logger,
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchTransactions returns the latest transaction summaries in the order the api sent them.
func (c *Client) FetchTransactions(ctx context.Context) ([]*rest.TxSummary, error) {
	var txs []*rest.TxSummary
	err := c.get(ctx, transactionsPath, "Failed to fetch transactions", &txs)
	if err != nil {
		return nil, err
	}

	return txs, nil
}

// FetchTxDetails returns what each client reported about txHash. The hash is sent as
// given and left to the api to validate.
func (c *Client) FetchTxDetails(ctx context.Context, txHash string) (*rest.APITxResponse, error) {
	if strings.TrimSpace(txHash) == "" {
		return nil, ErrEmptyTxHash
	}

	var details rest.APITxResponse
	err := c.get(ctx, transactionPath+url.PathEscape(txHash), "Failed to fetch transaction details", &details)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (c *Client) FetchInclusionLists(ctx context.Context) ([]*rest.InclusionList, error) {
	var lists []*rest.InclusionList
	err := c.get(ctx, inclusionListsPath, "Failed to fetch inclusion lists", &lists)
	if err != nil {
		return nil, err
	}

	return lists, nil
}

// get decodes the JSON body of a GET on path into out. Any non-200 status becomes a
// *FetchError carrying failMsg.
func (c *Client) get(ctx context.Context, path, failMsg string, out any) error {
	logger := c.logger.WithContext(ctx).WithField("path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fetchErr := &FetchError{
			StatusCode: resp.StatusCode,
			Message:    failMsg,
			Detail:     errorDetail(resp.Body),
		}
		logger.WithField("status", resp.StatusCode).WithError(fetchErr).Debug("Api responded with non-OK status")
		return fetchErr
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

// errorDetail reads the message of an api error body, if the body is one.
func errorDetail(body io.Reader) string {
	var apiErr rest.Err
	data, err := io.ReadAll(io.LimitReader(body, 4<<10))
	if err != nil || json.Unmarshal(data, &apiErr) != nil {
		return ""
	}
	return apiErr.Message
}
