package redisdb

import "fmt"

const (
	clientMetaKeyFmt       = "txpool:%s:meta"          // per-client hash of txHash -> StoredTransaction
	universalKey           = "txpool:universal"        // zset of tx hashes scored by first sighting
	inclusionListTxnsKey   = "txpool:inclusion:txns"   // hash of slot -> JSON list of tx hashes
	inclusionListScoreKey  = "txpool:inclusion:score"  // zset of slot scored by list length
	inclusionListReportKey = "txpool:inclusion:report" // hash of slot -> InclusionReport
)

func clientMetaKey(client string) string {
	return fmt.Sprintf(clientMetaKeyFmt, client)
}
