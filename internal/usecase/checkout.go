package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCheckoutInFlight  = errors.New("checkout already in progress")
	ErrOrderNotPersisted = errors.New("order could not be saved, please retry")
)

type PlaceOrderInput struct {
	CartID           string
	Customer         domain.DeliveryAddress
	DeliveryLocation string
}

// Checkout turns a validated cart + address into an immutable order record.
// The cart is only cleared after the order row is durably written; on any
// failure the cart and its persisted blob stay exactly as they were, and the
// caller gets a retryable error. There is no idempotency key: a manual retry
// after an ambiguous failure can double-submit. Known gap, inherited from
// the storefront this replaces.
type Checkout struct {
	carts  CartStore
	orders OrderRepo
	guard  CheckoutGuard
	events OrderEvents
	now    func() time.Time
}

func NewCheckout(carts CartStore, orders OrderRepo, guard CheckoutGuard, events OrderEvents) *Checkout {
	return &Checkout{carts: carts, orders: orders, guard: guard, events: events, now: time.Now}
}

func (uc *Checkout) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	loc, err := domain.ParseDeliveryLocation(in.DeliveryLocation)
	if err != nil {
		return nil, err
	}
	// Fail-fast field validation: no network or storage work happens for an
	// invalid address.
	if err := in.Customer.Validate(); err != nil {
		return nil, err
	}

	cart, err := uc.carts.Load(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	ok, err := uc.guard.TryLock(ctx, in.CartID)
	if err != nil {
		return nil, fmt.Errorf("checkout guard: %w", err)
	}
	if !ok {
		return nil, ErrCheckoutInFlight
	}
	defer func() {
		if err := uc.guard.Release(context.WithoutCancel(ctx), in.CartID); err != nil {
			logging.FromCtx(ctx).Warn("checkout guard release failed", "cart_id", in.CartID, "err", err)
		}
	}()

	now := uc.now()
	totals := cart.Totals()
	charge := loc.Charge()
	order := &domain.Order{
		ID:               uuid.NewString(),
		Number:           domain.NewOrderNumber(now),
		Customer:         in.Customer,
		Items:            cart.Lines,
		DeliveryLocation: loc,
		Subtotal:         totals.Subtotal,
		DeliveryCharge:   charge,
		GrandTotal:       domain.Money{Amount: totals.Subtotal.Amount + charge.Amount, Currency: totals.Subtotal.Currency},
		PaymentMethod:    domain.PaymentCashOnDelivery,
		Status:           domain.StatusPending,
		PlacedAt:         now,
		UpdatedAt:        now,
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		logging.FromCtx(ctx).Error("order create failed", "order_number", order.Number, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrOrderNotPersisted, err)
	}

	// Best-effort event; the order is already durable.
	msg := OrderCreatedMsg{
		OrderID:       order.ID,
		Number:        order.Number,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		Units:         totals.Units,
		GrandTotal:    order.GrandTotal.Amount,
		Currency:      order.GrandTotal.Currency,
		PlacedAt:      order.PlacedAt,
	}
	if err := uc.events.PublishCreated(ctx, msg); err != nil {
		logging.FromCtx(ctx).Warn("order.created publish failed", "order_number", order.Number, "err", err)
	}

	if err := uc.carts.Delete(ctx, in.CartID); err != nil {
		logging.FromCtx(ctx).Warn("cart clear failed after checkout", "cart_id", in.CartID, "err", err)
	}

	return order, nil
}
