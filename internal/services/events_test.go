package services

import (
	"context"
	"errors"
	"testing"

	"storefront-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventDispatcher_Dispatch(t *testing.T) {
	events, pub := newTestDispatcher()
	pub.On("Publish", mock.Anything, domain.EventOrderCreated, domain.OrderEvent{OrderID: 1}).Return(nil).Once()
	pub.On("Publish", mock.Anything, domain.EventOrderDeleted, domain.OrderEvent{OrderID: 2}).Return(errors.New("channel closed")).Once()

	events.Dispatch(domain.EventOrderCreated, domain.OrderEvent{OrderID: 1})
	events.Dispatch(domain.EventOrderDeleted, domain.OrderEvent{OrderID: 2})
	events.Wait()

	pub.AssertExpectations(t)
	pub.AssertNumberOfCalls(t, "Publish", 2)
}

func TestEventDispatcher_PublishHasDeadline(t *testing.T) {
	events, pub := newTestDispatcher()
	pub.On("Publish", mock.Anything, domain.EventProductDeleted, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	})

	events.Dispatch(domain.EventProductDeleted, domain.ProductEvent{ProductID: 1})
	events.Wait()

	pub.AssertExpectations(t)
}
