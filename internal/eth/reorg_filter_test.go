package eth_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/hedisam/txpoolviz/internal/eth"
)

func TestReorgFilter(t *testing.T) {
	tests := map[string]struct {
		blocks            []*eth.Block
		confirmationDepth uint
		expectedHashes    []string
	}{
		"linear chain": {
			blocks: []*eth.Block{
				{Hash: "b1", ParentHash: "b0", Number: 1},
				{Hash: "b2", ParentHash: "b1", Number: 2},
				{Hash: "b3", ParentHash: "b2", Number: 3},
				{Hash: "b4", ParentHash: "b3", Number: 4},
			},
			confirmationDepth: 2,
			expectedHashes:    []string{"b1", "b2"},
		},
		"reorged tail is dropped": {
			blocks: []*eth.Block{
				{Hash: "b1", ParentHash: "b0", Number: 1},
				{Hash: "b2", ParentHash: "b1", Number: 2},
				{Hash: "b3", ParentHash: "b2", Number: 3},
				{Hash: "b3'", ParentHash: "b2", Number: 3},
				{Hash: "b4'", ParentHash: "b3'", Number: 4},
				{Hash: "b5'", ParentHash: "b4'", Number: 5},
				{Hash: "b6'", ParentHash: "b5'", Number: 6},
			},
			confirmationDepth: 3,
			expectedHashes:    []string{"b1", "b2", "b3'"},
		},
		"unrelated block empties the buffer": {
			blocks: []*eth.Block{
				{Hash: "b1", ParentHash: "b0", Number: 1},
				{Hash: "x9", ParentHash: "x8", Number: 9},
				{Hash: "x10", ParentHash: "x9", Number: 10},
			},
			confirmationDepth: 1,
			expectedHashes:    []string{"x9"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			logger := logrus.New()
			logger.SetOutput(io.Discard)

			in := make(chan *eth.Block, len(test.blocks))
			for _, b := range test.blocks {
				in <- b
			}
			close(in)

			var hashes []string
			for block := range eth.ReorgFilter(context.Background(), logger, in, test.confirmationDepth) {
				hashes = append(hashes, block.Hash)
			}
			assert.Equal(t, test.expectedHashes, hashes)
		})
	}
}
