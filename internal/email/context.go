package email

import (
	"context"
	"fmt"
	"time"
)

func newEmailContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	// Detach cancellation so a stopping job does not abort a send mid-flight.
	parent = context.WithoutCancel(parent)
	return context.WithTimeout(parent, timeout)
}

// SendWithTimeout delivers message through sender, bounded by timeout but not
// by the cancellation of ctx. Values on ctx (such as the logger) are kept.
func SendWithTimeout(ctx context.Context, sender EmailSender, recipient string, message Message, timeout time.Duration) error {
	if sender == nil {
		return fmt.Errorf("email sender is not configured")
	}
	if message.Subject == "" || message.Body == "" {
		return fmt.Errorf("email subject and body are required")
	}
	sendCtx, cancel := newEmailContext(ctx, timeout)
	defer cancel()
	return sender.Send(sendCtx, recipient, message.Subject, message.Body)
}
