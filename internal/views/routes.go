// Package views renders what the api serves as plain text tables, one view per route.
package views

import (
	"context"
	"errors"
	"io"

	"github.com/hedisam/txpoolviz/api/rest"
)

const (
	TransactionsRoute   = "/"
	InclusionListsRoute = "/inclusion-lists"
)

var ErrUnknownRoute = errors.New("unknown route")

type Fetcher interface {
	FetchTransactions(ctx context.Context) ([]*rest.TxSummary, error)
	FetchTxDetails(ctx context.Context, txHash string) (*rest.APITxResponse, error)
	FetchInclusionLists(ctx context.Context) ([]*rest.InclusionList, error)
}

type View interface {
	Render(ctx context.Context, w io.Writer) error
}

// Routes maps each route path to the view serving it.
func Routes(f Fetcher) map[string]View {
	return map[string]View{
		TransactionsRoute:   &TransactionsView{fetcher: f},
		InclusionListsRoute: &InclusionListView{fetcher: f},
	}
}

func Lookup(routes map[string]View, path string) (View, error) {
	v, ok := routes[path]
	if !ok {
		return nil, ErrUnknownRoute
	}
	return v, nil
}
