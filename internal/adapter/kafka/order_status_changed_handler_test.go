package kafka_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KMTonmoy/allmartavenue-api/internal/adapter/kafka"
	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/mocks"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusChangedHandler(t *testing.T) {
	tests := []struct {
		courier string
		want    domain.Status
	}{
		{"ACCEPTED", domain.StatusConfirmed},
		{"PICKED", domain.StatusShipped},
		{"IN_TRANSIT", domain.StatusShipped},
		{"DELIVERED", domain.StatusDelivered},
		{"CANCELLED", domain.StatusCancelled},
		{"RETURNED", domain.StatusReturned},
	}
	for _, tt := range tests {
		t.Run(tt.courier, func(t *testing.T) {
			ctx := context.Background()
			repo := new(mocks.MockOrderRepo)
			cache := new(mocks.MockStatusCache)

			repo.On("UpdateStatus", ctx, "o1", tt.want).Return(nil)
			cache.On("SetStatus", ctx, "AMA-1-0001", tt.want).Return(nil)

			h := kafka.NewOrderStatusChangedHandler(repo, cache)
			err := h.Handle(ctx, usecase.OrderStatusChangedMsg{
				OrderID: "o1",
				Number:  "AMA-1-0001",
				Status:  tt.courier,
			})
			require.NoError(t, err)
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestOrderStatusChangedHandlerUpdatesTracking(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOrderRepo)
	cache := new(mocks.MockStatusCache)

	repo.On("UpdateStatus", ctx, "o1", domain.StatusShipped).Return(nil)
	repo.On("UpdateTracking", ctx, "o1", "Pathao", "PT-778899").Return(nil)
	cache.On("SetStatus", ctx, "AMA-1-0001", domain.StatusShipped).Return(nil)

	h := kafka.NewOrderStatusChangedHandler(repo, cache)
	err := h.Handle(ctx, usecase.OrderStatusChangedMsg{
		OrderID:    "o1",
		Number:     "AMA-1-0001",
		Status:     "IN_TRANSIT",
		Courier:    "Pathao",
		TrackingID: "PT-778899",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

// Unknown vocabulary is dropped without error so the message is not retried
// forever.
func TestOrderStatusChangedHandlerDropsUnknownStatus(t *testing.T) {
	repo := new(mocks.MockOrderRepo)

	h := kafka.NewOrderStatusChangedHandler(repo, nil)
	err := h.Handle(context.Background(), usecase.OrderStatusChangedMsg{OrderID: "o1", Status: "LOST"})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderStatusChangedHandlerRepoFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOrderRepo)
	boom := errors.New("mysql gone away")
	repo.On("UpdateStatus", ctx, "o1", domain.StatusDelivered).Return(boom)

	h := kafka.NewOrderStatusChangedHandler(repo, nil)
	err := h.Handle(ctx, usecase.OrderStatusChangedMsg{OrderID: "o1", Status: "DELIVERED"})
	assert.ErrorIs(t, err, boom)
}
