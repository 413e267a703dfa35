package focil

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpoolviz/internal/custompromauto"
)

var (
	receivedInclusionLists = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_inclusion_lists_received_total",
		Help: "Total number of inclusion list events received from beacon nodes",
	})
	undecodableTransactions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_inclusion_list_undecodable_txs_total",
		Help: "Total number of inclusion list transactions that could not be decoded",
	})
	failedEvents = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_inclusion_list_events_failed_total",
		Help: "Total number of inclusion list events that failed processing",
	})
	streamReconnects = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_beacon_stream_reconnects_total",
		Help: "Total number of reconnections to the beacon node event stream",
	})

	verifiedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_inclusion_list_verified_blocks_total",
		Help: "Total number of blocks checked against their inclusion list",
	})
	failedVerifications = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_inclusion_list_verifications_failed_total",
		Help: "Total number of blocks that could not be checked against their inclusion list",
	})
	missingTransactions = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "txpoolviz_inclusion_list_missing_txs_total",
		Help: "Total number of inclusion list transactions missing from their block",
	})
)
