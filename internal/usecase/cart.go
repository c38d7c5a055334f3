package usecase

import (
	"context"
	"errors"
	"time"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
)

var ErrProductNotFound = errors.New("product not found")

// CartService owns every cart mutation. Discipline: load, apply the state
// transition in memory, then write the whole cart back. A failed transition
// writes nothing. Load never writes back an empty cart, so a fresh visitor
// does not clobber a blob that is still being read elsewhere.
type CartService struct {
	store    CartStore
	products ProductRepo
	now      func() time.Time
}

func NewCartService(store CartStore, products ProductRepo) *CartService {
	return &CartService{store: store, products: products, now: time.Now}
}

func (s *CartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.store.Load(ctx, cartID)
}

type AddItemInput struct {
	ProductID  string
	Quantity   int
	ColorValue string
	ColorName  string
}

// AddItem snapshots the product's current price and stock onto the line.
func (s *CartService) AddItem(ctx context.Context, cartID string, in AddItemInput) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	ref := domain.ProductRef{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
	if len(p.Images) > 0 {
		ref.Image = p.Images[0]
	}
	if err := cart.AddOrMerge(ref, in.Quantity, in.ColorValue, in.ColorName, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) SetQuantity(ctx context.Context, cartID, productID, colorValue string, quantity int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.SetQuantity(productID, colorValue, quantity, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID, colorValue string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.Remove(productID, colorValue, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ChangeColor(ctx context.Context, cartID, productID, oldColorValue, newColorValue, newColorName string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.ChangeColor(productID, oldColorValue, newColorValue, newColorName, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear drops the cart and its persisted blob. Used after a successful
// checkout.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.store.Delete(ctx, cartID)
}
