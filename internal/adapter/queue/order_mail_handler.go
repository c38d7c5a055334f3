package queue

import (
	"context"

	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
)

// Mailer is the port to the outbound mail service.
type Mailer interface {
	SendOrderCreated(ctx context.Context, msg usecase.OrderCreatedMsg) error
}

// OrderMailHandler turns order.created events into the new-order mail sent
// to the shop operators.
type OrderMailHandler struct {
	Mail Mailer
}

func NewOrderMailHandler(m Mailer) *OrderMailHandler {
	return &OrderMailHandler{Mail: m}
}

// HandleCreated is intended to be used with the JSON adapter
// (queue.JSONHandler[usecase.OrderCreatedMsg]).
func (h *OrderMailHandler) HandleCreated(ctx context.Context, msg usecase.OrderCreatedMsg) error {
	return h.Mail.SendOrderCreated(ctx, msg)
}
