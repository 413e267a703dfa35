package focil

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/r3labs/sse/v2"
	ssebackoff "gopkg.in/cenkalti/backoff.v1"
)

const inclusionListTopic = "inclusion_list"

var errStreamClosed = errors.New("event stream closed by beacon node")

// Subscribe listens to the inclusion_list events of the beacon node at beaconURL and
// keeps reconnecting until ctx is done. httpClient must not carry a timeout since the
// connection is long lived.
func (t *Tracker) Subscribe(ctx context.Context, httpClient *http.Client, beaconURL string) error {
	url := strings.TrimRight(beaconURL, "/") + "/eth/v1/events?topics=" + inclusionListTopic
	logger := t.logger.WithField("url", url)

	client := sse.NewClient(url)
	client.Connection = httpClient
	// fail fast on a broken connection so reconnects go through the retry loop below
	client.ReconnectStrategy = &ssebackoff.StopBackOff{}

	subscribe := func() error {
		logger.Info("Subscribing to beacon node inclusion list events")
		err := client.SubscribeRawWithContext(ctx, func(msg *sse.Event) {
			if len(msg.Data) == 0 {
				return
			}
			if len(msg.Event) > 0 && string(msg.Event) != inclusionListTopic {
				return
			}
			err := t.handleEvent(ctx, msg.Data)
			if err != nil {
				logger.WithError(err).Error("Failed to handle inclusion list event")
				failedEvents.Inc()
			}
		})
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err == nil {
			err = errStreamClosed
		}
		return err
	}

	bk := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(500*time.Millisecond),
		backoff.WithMaxInterval(30*time.Second),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.RetryNotify(subscribe, backoff.WithContext(bk, ctx), func(err error, next time.Duration) {
		logger.WithError(err).WithField("retry_in", next).Warn("Inclusion list event stream disconnected, reconnecting...")
		streamReconnects.Inc()
	})
}
