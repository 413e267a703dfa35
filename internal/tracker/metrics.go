package tracker

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpoolviz/internal/custompromauto"
)

var (
	failedPolls = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "txpoolviz_txpool_polls_failed_total",
		Help: "Total number of txpool polls that failed per client",
	}, []string{"client"})

	trackedTransactions = custompromauto.Auto().NewGaugeVec(prometheus.GaugeOpts{
		Name: "txpoolviz_tracked_transactions",
		Help: "Number of transactions currently in the txpool of each client",
	}, []string{"client"})

	receivedTransactions = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "txpoolviz_received_transactions_total",
		Help: "Total number of transactions first seen in the txpool of each client",
	}, []string{"client"})
	minedTransactions = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "txpoolviz_mined_transactions_total",
		Help: "Total number of tracked transactions resolved as mined",
	}, []string{"client"})
	droppedTransactions = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "txpoolviz_dropped_transactions_total",
		Help: "Total number of tracked transactions resolved as dropped",
	}, []string{"client"})
)
