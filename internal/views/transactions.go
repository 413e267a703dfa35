package views

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/hedisam/txpoolviz/api/rest"
)

var (
	header  = color.New(color.Bold, color.FgCyan).SprintFunc()
	divider = color.New(color.FgYellow).SprintFunc()
)

type TransactionsView struct {
	fetcher Fetcher
}

func (v *TransactionsView) Render(ctx context.Context, w io.Writer) error {
	txs, err := v.fetcher.FetchTransactions(ctx)
	if err != nil {
		return fmt.Errorf("fetch transactions: %w", err)
	}

	if len(txs) == 0 {
		_, err = fmt.Fprintln(w, "No transactions yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header("HASH\tFROM\tTYPE\tNONCE\tGAS USED\tPRIORITY FEE (GWEI)"))
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", tx.Hash, tx.From, tx.Type, tx.Nonce, tx.GasUsed, gwei(tx.PriorityFee.String()))
	}

	return tw.Flush()
}

// RenderTxDetails prints the fields all clients agree on followed by a table of the
// fields they report differently.
func RenderTxDetails(w io.Writer, details *rest.APITxResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", header("HASH"), details.Hash)
	fmt.Fprintf(tw, "%s\t%v\n", header("CLIENTS"), details.Clients)

	fmt.Fprintln(tw, divider("-- common tx --"))
	writeFields(tw, details.Common.Tx)
	fmt.Fprintln(tw, divider("-- common metadata --"))
	writeFields(tw, details.Common.Metadata)

	if len(details.Diff.Tx) == 0 && len(details.Diff.Metadata) == 0 {
		fmt.Fprintln(tw, divider("-- all clients agree --"))
		return tw.Flush()
	}

	fmt.Fprintln(tw, divider("-- diff --"))
	row := "FIELD"
	for _, c := range details.Clients {
		row += "\t" + c
	}
	fmt.Fprintln(tw, header(row))
	writeDiff(tw, details.Clients, details.Diff.Tx)
	writeDiff(tw, details.Clients, details.Diff.Metadata)

	return tw.Flush()
}

func writeFields(w io.Writer, fields map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "%s\t%v\n", k, fields[k])
	}
}

func writeDiff(w io.Writer, clients []string, diff map[string]map[string]any) {
	for _, field := range slices.Sorted(maps.Keys(diff)) {
		row := field
		for _, c := range clients {
			row += fmt.Sprintf("\t%v", diff[field][c])
		}
		fmt.Fprintln(w, row)
	}
}

// gwei converts a wei amount to gwei, keeping it as is when it isn't a number.
func gwei(wei string) string {
	d, err := decimal.NewFromString(wei)
	if err != nil {
		return wei
	}
	return d.Shift(-9).String()
}
