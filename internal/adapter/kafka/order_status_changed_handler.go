package kafka

import (
	"context"
	"errors"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
)

var ErrUnmappedStatus = errors.New("unmapped courier status")

// OrderStatusChangedHandler applies fulfillment pipeline events to the order
// row. The storefront never moves an order past "pending" on its own; every
// later transition arrives here.
type OrderStatusChangedHandler struct {
	Repo  usecase.OrderRepo
	Cache usecase.StatusCache // optional
}

func NewOrderStatusChangedHandler(repo usecase.OrderRepo, cache usecase.StatusCache) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{Repo: repo, Cache: cache}
}

// mapCourierStatus maps the courier pipeline vocabulary onto the order enum.
func mapCourierStatus(s string) (domain.Status, error) {
	switch s {
	case "ACCEPTED":
		return domain.StatusConfirmed, nil
	case "PICKED", "IN_TRANSIT":
		return domain.StatusShipped, nil
	case "DELIVERED":
		return domain.StatusDelivered, nil
	case "CANCELLED":
		return domain.StatusCancelled, nil
	case "RETURNED":
		return domain.StatusReturned, nil
	}
	return "", ErrUnmappedStatus
}

func (h *OrderStatusChangedHandler) Handle(ctx context.Context, ev usecase.OrderStatusChangedMsg) error {
	newStatus, err := mapCourierStatus(ev.Status)
	if err != nil {
		// Unknown vocabulary is dropped, not retried: redelivery cannot fix it.
		logging.FromCtx(ctx).Warn("dropping fulfillment event", "order_id", ev.OrderID, "status", ev.Status)
		return nil
	}

	if err := h.Repo.UpdateStatus(ctx, ev.OrderID, newStatus); err != nil {
		return err
	}
	if ev.Courier != "" || ev.TrackingID != "" {
		if err := h.Repo.UpdateTracking(ctx, ev.OrderID, ev.Courier, ev.TrackingID); err != nil {
			return err
		}
	}

	// Cache best-effort
	if h.Cache != nil {
		_ = h.Cache.SetStatus(ctx, ev.Number, newStatus)
	}
	return nil
}
