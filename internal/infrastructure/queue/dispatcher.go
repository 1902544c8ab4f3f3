package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/carebridge/enrollment-api/internal/api/metrics"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

type message struct {
	To       string
	Subject  string
	HTMLBody string
}

// MailDispatcher decouples mail delivery from request handling. Messages are
// routed to a fixed set of workers by consistent hashing on the recipient, so
// mail to the same address is delivered in the order it was queued.
type MailDispatcher struct {
	workers []chan message
	sender  ports.Mailer
	log     zerolog.Logger
}

var _ ports.Mailer = (*MailDispatcher)(nil)

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, sender ports.Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan message, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan message, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Send enqueues the message for asynchronous delivery. The call is
// non-blocking up to channelBuffer capacity per worker.
func (d *MailDispatcher) Send(_ context.Context, to, subject, htmlBody string) error {
	idx := d.shardIndex(to)
	d.workers[idx] <- message{To: to, Subject: subject, HTMLBody: htmlBody}
	metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan message) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			err := d.sender.Send(ctx, msg.To, msg.Subject, msg.HTMLBody)
			metrics.MailSendDuration.Observe(time.Since(start).Seconds())
			metrics.MailQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err != nil {
				metrics.MailSentTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("to", msg.To).
					Str("subject", msg.Subject).
					Int("worker_id", id).
					Msg("mail delivery failed")
				continue
			}
			metrics.MailSentTotal.WithLabelValues("ok").Inc()
		}
	}
}
