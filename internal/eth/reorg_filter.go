package eth

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"

	"github.com/hedisam/txpoolviz/internal/ringbuffer"
)

// ReorgFilter holds back the last confirmationDepth blocks of the stream and only
// forwards a block once enough descendants have built on it. Buffered blocks that
// stop being ancestors of the newest block are discarded.
func ReorgFilter(ctx context.Context, logger *logrus.Logger, in <-chan *Block, confirmationDepth uint) <-chan *Block {
	out := make(chan *Block)

	go func() {
		defer close(out)

		rb := ringbuffer.New[*Block](confirmationDepth)
		for block := range chans.ReceiveOrDoneSeq(ctx, in) {
			dropped := dropOrphans(rb, block)
			if dropped > 0 {
				logger.WithFields(logrus.Fields{
					"block_number":   block.Number,
					"block_hash":     block.Hash,
					"parent_hash":    block.ParentHash,
					"dropped_blocks": dropped,
				}).Warn("Block reorganisation detected, dropped queued non matching blocks")
				reorgDroppedBlocks.Add(float64(dropped))
			}

			if rb.IsFull() {
				// the oldest block is now deep enough to be treated as confirmed
				confirmed, _ := rb.Pop()
				if !chans.SendOrDone(ctx, out, confirmed) {
					return
				}
			}

			_ = rb.Push(block)
		}
	}()

	return out
}

// dropOrphans removes queued blocks from the back until the tail is the parent of block
// or the buffer is empty.
func dropOrphans(rb *ringbuffer.RingBuffer[*Block], block *Block) int {
	var dropped int
	for rb.Size() > 0 {
		tail, _ := rb.Back()
		if block.ParentHash == tail.Hash {
			break
		}
		rb.DropBack()
		dropped++
	}

	return dropped
}
