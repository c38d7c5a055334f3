package usecase

import "time"

// Test hooks for pinning the clock.

func (s *CartService) SetNow(fn func() time.Time) { s.now = fn }

func (uc *Checkout) SetNow(fn func() time.Time) { uc.now = fn }
