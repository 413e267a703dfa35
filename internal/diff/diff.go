// Package diff compares what several clients report about the same transaction.
package diff

import (
	"fmt"

	"github.com/hedisam/txpoolviz/internal/store"
)

// Result splits the compared fields into the ones every client agrees on and the
// ones that diverge, keyed by field then by client.
type Result struct {
	Common map[string]any
	Diff   map[string]map[string]any
}

// TxFields flattens a Tx into field -> value.
func TxFields(t store.Tx) map[string]any {
	m := map[string]any{
		"chain_id":           t.ChainID,
		"from":               t.From,
		"to":                 t.To,
		"isContractCreation": t.IsContractCreation,
		"nonce":              t.Nonce,
		"value":              t.Value,
		"gas":                t.Gas,
		"type":               t.Type.String(),
		"data":               t.Data,
		"maxFeePerGas":       t.MaxFeePerGas,
		"maxPriorityFee":     t.MaxPriorityFee,
	}
	if t.GasPrice != "" {
		m["gasPrice"] = t.GasPrice
	}
	if t.MaxFeePerBlobGas != "" {
		m["maxFeePerBlobGas"] = t.MaxFeePerBlobGas
	}
	return m
}

// MetadataFields flattens Metadata into field -> value. Unset optional times are left out.
func MetadataFields(md store.Metadata) map[string]any {
	m := map[string]any{
		"status":       string(md.Status),
		"mineStatus":   md.MineStatus,
		"gasUsed":      md.GasUsed,
		"blockNumber":  md.BlockNumber,
		"blockHash":    md.BlockHash,
		"timeReceived": md.TimeReceived,
		"timeQueued":   md.TimeQueued,
		"timeDropped":  md.TimeDropped,
	}
	if md.TimePending != nil {
		m["timePending"] = *md.TimePending
	}
	if md.TimeMined != nil {
		m["timeMined"] = *md.TimeMined
	}
	return m
}

// Compute diffs the per-client field maps in all. Common takes its values from
// primary; it is empty when primary has no entry in all.
func Compute(all map[string]map[string]any, primary string) Result {
	d := diffFields(all)

	base := all[primary]
	common := make(map[string]any, len(base))
	for field, val := range base {
		if _, diverges := d[field]; !diverges {
			common[field] = val
		}
	}

	return Result{Common: common, Diff: d}
}

// diffFields returns the fields whose values are not identical across clients.
// A client lacking a field is treated as reporting nil for it.
func diffFields(all map[string]map[string]any) map[string]map[string]any {
	fields := make(map[string]struct{})
	for _, m := range all {
		for k := range m {
			fields[k] = struct{}{}
		}
	}

	out := make(map[string]map[string]any)
	for field := range fields {
		vals := make(map[string]any, len(all))
		uniq := make(map[string]struct{}, len(all))
		for client, m := range all {
			v := m[field]
			vals[client] = v
			uniq[fmt.Sprint(v)] = struct{}{}
		}
		if len(uniq) > 1 {
			out[field] = vals
		}
	}
	return out
}
