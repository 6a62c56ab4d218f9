package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const sendTimeout = 10 * time.Second

// Notifier dispatches transactional emails without blocking the caller.
// Delivery failures are logged, never returned: notification must not
// fail the primary request path.
type Notifier struct {
	sender Sender
	logger *zap.Logger
}

func NewNotifier(sender Sender, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		logger: logger,
	}
}

func (n *Notifier) SendOtpEmail(email string, otpCode string) {
	n.dispatch(Email{
		To:      email,
		Subject: "Verify your email",
		Text:    fmt.Sprintf("Your OTP is %s. It expires in 10 minutes.", otpCode),
	})
}

func (n *Notifier) SendTrackingActivatedEmail(email string, orderID string) {
	n.dispatch(Email{
		To:      email,
		Subject: "Tracking Activated",
		Text:    fmt.Sprintf("Tracking has been activated for your order %s.", orderID),
	})
}

func (n *Notifier) SendStatusUpdateEmail(email string, orderID string, newStatus string) {
	if email == "" {
		email = "unknown"
	}
	n.dispatch(Email{
		To:      email,
		Subject: "Order Status Update",
		Text:    fmt.Sprintf("Your order %s is now %s.", orderID, newStatus),
	})
}

func (n *Notifier) dispatch(email Email) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := n.sender.Send(ctx, email); err != nil {
			n.logger.Warn("email delivery failed",
				zap.String("to", email.To),
				zap.String("subject", email.Subject),
				zap.Error(err))
		}
	}()
}
