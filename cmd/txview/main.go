package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hedisam/txpoolviz/api/client"
	"github.com/hedisam/txpoolviz/internal/views"
)

type Options struct {
	APIURL  string
	Timeout time.Duration
	Watch   time.Duration
	Verbose bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts Options
	logger := logrus.New()

	newClient := func() *client.Client {
		if opts.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		return client.New(logger, &http.Client{Timeout: opts.Timeout}, opts.APIURL)
	}

	rootCmd := &cobra.Command{
		Use:   "txview [route]",
		Short: "Show what the txpoolviz server has seen",
		Long: `txview renders one of the txpoolviz routes as a table.

Routes:
  /                  latest pending transactions (default)
  /inclusion-lists   FOCIL inclusion lists and their reports

Examples:
  txview
  txview /inclusion-lists --watch 12s
  txview tx 0xabc...`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			route := views.TransactionsRoute
			if len(args) == 1 {
				route = args[0]
			}

			view, err := views.Lookup(views.Routes(newClient()), route)
			if err != nil {
				return fmt.Errorf("%w: %q", err, route)
			}

			return render(cmd.Context(), cmd.OutOrStdout(), opts.Watch, view.Render)
		},
	}

	txCmd := &cobra.Command{
		Use:          "tx <hash>",
		Short:        "Show how each client reports a transaction",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			return render(cmd.Context(), cmd.OutOrStdout(), opts.Watch, func(ctx context.Context, w io.Writer) error {
				details, err := c.FetchTxDetails(ctx, args[0])
				if err != nil {
					return err
				}
				return views.RenderTxDetails(w, details)
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "http://localhost:8080", "Base URL of the txpoolviz server")
	rootCmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Timeout of each api request")
	rootCmd.PersistentFlags().DurationVarP(&opts.Watch, "watch", "w", 0, "Re-render on this interval until interrupted, 0 renders once")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.AddCommand(txCmd)

	return rootCmd
}

// render runs fn once, or on every tick of interval when it's positive.
func render(ctx context.Context, w io.Writer, interval time.Duration, fn func(context.Context, io.Writer) error) error {
	if interval <= 0 {
		return fn(ctx, w)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := fn(ctx, w)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
		fmt.Fprintln(w)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
