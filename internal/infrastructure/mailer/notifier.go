package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

const defaultNotifyTimeout = 30 * time.Second

// Notifier sends mail on background goroutines. Each delivery is bounded by
// a timeout; Close stops accepting mail and waits for deliveries in flight.
type Notifier struct {
	mailer  inquiries.Mailer
	logger  logger.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewNotifier creates a Notifier delivering through mailer
func NewNotifier(mailer inquiries.Mailer, logger logger.Logger, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &Notifier{mailer: mailer, logger: logger, timeout: timeout}
}

// Notify starts delivering msg and returns immediately
func (n *Notifier) Notify(msg inquiries.Mail) {
	if len(msg.To) == 0 {
		return
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		n.logger.Warn("Notifier closed, dropping mail", "subject", msg.Subject)
		return
	}
	n.wg.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.mailer.Send(ctx, msg); err != nil {
			n.logger.Error("Failed to deliver notification", "subject", msg.Subject, "error", err.Error())
		}
	}()
}

// Close waits for pending deliveries or until ctx is done
func (n *Notifier) Close(ctx context.Context) error {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
