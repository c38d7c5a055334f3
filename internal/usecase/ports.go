package usecase

import (
	"context"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
)

// CartStore persists the serialized cart. Load must treat a missing or
// unreadable blob as "no prior data" and hand back an empty cart.
type CartStore interface {
	Load(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}

type ProductRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	List(ctx context.Context, status domain.Status) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, to domain.Status) error
	UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error)
	UpdateTracking(ctx context.Context, id, courier, trackingID string) error
	Delete(ctx context.Context, id string) error
}

type BannerRepo interface {
	Create(ctx context.Context, b *domain.Banner) error
	Update(ctx context.Context, b *domain.Banner) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Banner, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Banner, error)
}

// CheckoutGuard is the per-cart in-flight submission flag: a second
// submission attempt is rejected until the first completes.
type CheckoutGuard interface {
	TryLock(ctx context.Context, cartID string) (bool, error)
	Release(ctx context.Context, cartID string) error
}

// OrderEvents publishes order lifecycle events. Publishing is best-effort;
// a failed publish never fails the checkout.
type OrderEvents interface {
	PublishCreated(ctx context.Context, msg OrderCreatedMsg) error
}

// StatusCache keeps the latest known order status for cheap reads.
type StatusCache interface {
	SetStatus(ctx context.Context, orderNumber string, status domain.Status) error
	GetStatus(ctx context.Context, orderNumber string) (domain.Status, bool, error)
}
