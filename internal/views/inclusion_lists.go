package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	complete   = color.New(color.FgGreen).SprintFunc()
	incomplete = color.New(color.FgRed).SprintFunc()
)

type InclusionListView struct {
	fetcher Fetcher
}

func (v *InclusionListView) Render(ctx context.Context, w io.Writer) error {
	lists, err := v.fetcher.FetchInclusionLists(ctx)
	if err != nil {
		return fmt.Errorf("fetch inclusion lists: %w", err)
	}

	if len(lists) == 0 {
		_, err = fmt.Fprintln(w, "No inclusion lists yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header("SLOT\tTOTAL\tINCLUDED\tMISSING"))
	for _, il := range lists {
		missing := fmt.Sprint(il.Report.Summary.Missing)
		if il.Report.Summary.Missing > 0 {
			missing = incomplete(missing)
		} else {
			missing = complete(missing)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", il.Slot, il.Report.Summary.Total, il.Report.Summary.Included, missing)
		for _, h := range il.Report.Missing {
			fmt.Fprintf(tw, "\t\t\t%s\n", incomplete(h))
		}
	}

	return tw.Flush()
}
