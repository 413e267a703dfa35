package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/txpoolviz/api/rest"
	"github.com/hedisam/txpoolviz/internal/config"
	"github.com/hedisam/txpoolviz/internal/custompromauto"
	"github.com/hedisam/txpoolviz/internal/eth"
	"github.com/hedisam/txpoolviz/internal/focil"
	"github.com/hedisam/txpoolviz/internal/store/memdb"
	"github.com/hedisam/txpoolviz/internal/store/redisdb"
	"github.com/hedisam/txpoolviz/internal/tracker"
)

type Options struct {
	ConfigPath             string
	ServerAddr             string
	ReorgConfirmationDepth uint
	Verbose                bool
}

type txStore interface {
	tracker.TxStore
	restapi.TxStore
}

type inclusionListStore interface {
	focil.InclusionListStore
	restapi.InclusionListStore
}

func main() {
	var opts Options
	flag.StringVar(&opts.ConfigPath, "config", "cfg/config.yaml", "Path to the YAML config file")
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Server addr to serve the http server on")
	flag.UintVar(&opts.ReorgConfirmationDepth, "reorg-confirmation-depth", 3, "Number of blocks to check for reorganisation to mark a block confirmed. Cannot be less than 1")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}

	logger.SetLevel(cfg.Level())
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	txs, ils := mustOpenStores(ctx, logger, cfg)

	httpClient := &http.Client{Timeout: cfg.RequestTimeout()}
	var nodes []*eth.Client
	for _, e := range cfg.Endpoints {
		node, err := eth.New(ctx, logger, httpClient, e.Name, e.RPCURL, e.AuthHeaders)
		if err != nil {
			logger.WithField("node", e.Name).WithError(err).Fatal("Failed to create eth client")
		}
		defer node.Close()
		nodes = append(nodes, node)

		go tracker.New(logger, node, txs).Start(ctx, cfg.PollInterval())
	}

	if ils != nil {
		focilTracker := focil.New(logger, ils)
		// event streams are long lived, so no client timeout
		sseClient := &http.Client{}
		for _, b := range cfg.BeaconURLs {
			go func() {
				err := focilTracker.Subscribe(ctx, sseClient, b.BeaconURL)
				if err != nil && !errors.Is(err, context.Canceled) {
					logger.WithField("beacon", b.Name).WithError(err).Error("Inclusion list subscription stopped")
				}
			}()
		}

		blocksStream := nodes[0].Stream(ctx, cfg.PollInterval())
		confirmedBlocksStream := eth.ReorgFilter(ctx, logger, blocksStream, opts.ReorgConfirmationDepth)
		go focilTracker.VerifyBlocks(ctx, confirmedBlocksStream)
	}

	restServer := restapi.NewServer(logger, txs, ils, cfg.ClientNames())
	mux := http.NewServeMux()
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/transactions", restServer.ListTransactions)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/transaction/{txHash}", restServer.GetTransactionDetails)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/inclusion-lists", restServer.ListInclusionLists)
	mux.HandleFunc("GET /ping", restServer.Ping)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", custompromauto.Handler())

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

// mustOpenStores returns the Redis backed stores when a redis url is configured and
// the in-memory ones otherwise. The inclusion list store is nil unless FOCIL is enabled.
func mustOpenStores(ctx context.Context, logger *logrus.Logger, cfg *config.Config) (txStore, inclusionListStore) {
	maxTxs := cfg.MaxTransactions
	if maxTxs == 0 {
		maxTxs = memdb.DefaultMaxTransactions
	}

	if cfg.RedisURL == "" {
		logger.WithField("max_transactions", maxTxs).Info("Using in-memory stores")
		txs := memdb.NewTxStore(memdb.WithMaxTransactions(maxTxs))
		if !cfg.FocilEnabled {
			return txs, nil
		}
		return txs, memdb.NewInclusionListStore()
	}

	rdb, err := redisdb.Connect(ctx, cfg.RedisURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to redis")
	}
	context.AfterFunc(ctx, func() {
		_ = rdb.Close()
	})

	logger.WithField("max_transactions", maxTxs).Info("Using redis stores")
	txs := redisdb.NewTxStore(rdb, cfg.ClientNames(), int64(maxTxs))
	if !cfg.FocilEnabled {
		return txs, nil
	}
	return txs, redisdb.NewInclusionListStore(rdb)
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ConfigPath == "" {
		logger.Error("--config is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.ServerAddr == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.ReorgConfirmationDepth < 1 {
		logger.Error("--reorg-confirmation-depth is too small, it cannot be less than 1")
		flag.Usage()
		os.Exit(1)
	}
}
