package eth

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpoolviz/internal/custompromauto"
)

var failedBlockRetrievals = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "txpoolviz_failed_block_retrievals_total",
	Help: "Number of failed block retrievals per node",
}, []string{"node"})

var retrievedBlocks = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "txpoolviz_block_retrievals_total",
	Help: "Number of successful block retrievals per node",
}, []string{"node"})

var rpcFailures = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "txpoolviz_rpc_failures_total",
	Help: "Number of failed json-rpc calls per node and method",
}, []string{"node", "method"})

var reorgDroppedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
	Name: "txpoolviz_reorg_dropped_blocks_total",
	Help: "Number of blocks dropped from buffer due to chain reorganization",
})
