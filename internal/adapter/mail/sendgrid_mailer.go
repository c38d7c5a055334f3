package mail

import (
	"context"
	"fmt"

	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer notifies the shop operators about new orders. Customers pay
// cash on delivery and leave only a phone number, so the customer-facing
// channel stays SMS/phone and mail goes to the ops inbox.
type SendGridMailer struct {
	apiKey string
	from   string
	to     string
}

func NewSendGridMailer(apiKey, from, to string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, from: from, to: to}
}

func (m *SendGridMailer) SendOrderCreated(ctx context.Context, msg usecase.OrderCreatedMsg) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}

	subject := fmt.Sprintf("New order %s: %d %s", msg.Number, msg.GrandTotal, msg.Currency)
	body := fmt.Sprintf(
		"Order %s placed at %s\nCustomer: %s (%s)\nUnits: %d\nGrand total: %d %s\n",
		msg.Number, msg.PlacedAt.Format("2006-01-02 15:04"),
		msg.CustomerName, msg.CustomerPhone, msg.Units, msg.GrandTotal, msg.Currency,
	)

	from := sgmail.NewEmail("AllMartAvenue", m.from)
	to := sgmail.NewEmail("", m.to)
	message := sgmail.NewSingleEmail(from, subject, to, body, fmt.Sprintf("<pre>%s</pre>", body))

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", resp.StatusCode, resp.Body)
	}

	logging.FromCtx(ctx).Info("order mail sent", "order_number", msg.Number, "status", resp.StatusCode)
	return nil
}
