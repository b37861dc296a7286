package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/mocks"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrders(t *testing.T, role models.UserRole) (*services.OrderService, *store.Store, *mocks.Backend) {
	st := store.New()
	st.Dispatch(store.AuthSucceeded{Token: "t", User: &models.User{Username: "staff", Role: role}})
	backend := mocks.NewBackend(t)
	return services.NewOrderService(st, backend), st, backend
}

func TestChefStartsPreparation(t *testing.T) {
	ctx := context.Background()
	svc, st, backend := newOrders(t, models.RoleChef)
	st.Dispatch(store.OrderReceived{Order: models.Order{ID: 55, Status: models.OrderStatusPending}})

	backend.On("StartPreparation", ctx, uint(55)).Run(func(args mock.Arguments) {
		// while the request is in flight the cache still holds the old status
		o, _ := store.OrderByID(st.State(), 55)
		assert.Equal(t, models.OrderStatusPending, o.Status)
		target, ok := store.PendingTransition(st.State(), 55)
		assert.True(t, ok)
		assert.Equal(t, models.OrderStatusInProgress, target)
	}).Return(&models.Order{ID: 55, Status: models.OrderStatusInProgress}, nil).Once()

	updated, err := svc.RequestTransition(ctx, 55, models.OrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, updated.Status)

	o, _ := store.OrderByID(st.State(), 55)
	assert.Equal(t, models.OrderStatusInProgress, o.Status)
	_, inFlight := store.PendingTransition(st.State(), 55)
	assert.False(t, inFlight)
}

func TestTransitionEndpoints(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		role   models.UserRole
		from   models.OrderStatus
		to     models.OrderStatus
		method string
	}{
		{models.RoleChef, models.OrderStatusInProgress, models.OrderStatusReady, "MarkReady"},
		{models.RoleWaiter, models.OrderStatusReady, models.OrderStatusDelivered, "MarkDelivered"},
		{models.RoleWaiter, models.OrderStatusPending, models.OrderStatusCancelled, "SetOrderStatus"},
		{models.RoleManager, models.OrderStatusDelivered, models.OrderStatusPending, "SetOrderStatus"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+string(tt.to), func(t *testing.T) {
			svc, st, backend := newOrders(t, tt.role)
			st.Dispatch(store.OrderReceived{Order: models.Order{ID: 1, Status: tt.from}})

			result := &models.Order{ID: 1, Status: tt.to}
			if tt.method == "SetOrderStatus" {
				backend.On(tt.method, ctx, uint(1), tt.to).Return(result, nil).Once()
			} else {
				backend.On(tt.method, ctx, uint(1)).Return(result, nil).Once()
			}

			_, err := svc.RequestTransition(ctx, 1, tt.to)
			require.NoError(t, err)
			o, _ := store.OrderByID(st.State(), 1)
			assert.Equal(t, tt.to, o.Status)
		})
	}
}

func TestDisallowedTransitionIsNeverSent(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newOrders(t, models.RoleWaiter)
	st.Dispatch(store.OrderReceived{Order: models.Order{ID: 3, Status: models.OrderStatusPending}})

	_, err := svc.RequestTransition(ctx, 3, models.OrderStatusInProgress)
	assert.ErrorIs(t, err, workflow.ErrTransitionNotAllowed)
	_, inFlight := store.PendingTransition(st.State(), 3)
	assert.False(t, inFlight)
}

func TestFailedTransitionKeepsCachedOrder(t *testing.T) {
	ctx := context.Background()
	svc, st, backend := newOrders(t, models.RoleChef)
	st.Dispatch(store.OrderReceived{Order: models.Order{ID: 8, Status: models.OrderStatusInProgress}})

	backend.On("MarkReady", ctx, uint(8)).Return(nil, &api.Error{StatusCode: 409, Message: "Order already ready"}).Once()

	_, err := svc.RequestTransition(ctx, 8, models.OrderStatusReady)
	require.Error(t, err)
	o, _ := store.OrderByID(st.State(), 8)
	assert.Equal(t, models.OrderStatusInProgress, o.Status)
	assert.Equal(t, "Order already ready", st.State().Orders.Error)
	_, inFlight := store.PendingTransition(st.State(), 8)
	assert.False(t, inFlight)
}

func TestTransitionFetchesUncachedOrder(t *testing.T) {
	ctx := context.Background()
	svc, st, backend := newOrders(t, models.RoleWaiter)

	backend.On("GetOrder", ctx, uint(4)).Return(&models.Order{ID: 4, Status: models.OrderStatusReady}, nil).Once()
	backend.On("MarkDelivered", ctx, uint(4)).Return(&models.Order{ID: 4, Status: models.OrderStatusDelivered}, nil).Once()

	_, err := svc.RequestTransition(ctx, 4, models.OrderStatusDelivered)
	require.NoError(t, err)
	o, _ := store.OrderByID(st.State(), 4)
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
}

func TestFetchOrderNotFound(t *testing.T) {
	ctx := context.Background()
	svc, st, backend := newOrders(t, models.RoleManager)
	backend.On("GetOrder", ctx, uint(404)).Return(nil, &api.Error{StatusCode: 404, Message: "Not Found"}).Once()

	_, err := svc.FetchOrder(ctx, 404)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	_, ok := store.CurrentOrder(st.State())
	assert.False(t, ok)
}

func TestFetchOrdersByRole(t *testing.T) {
	ctx := context.Background()

	t.Run("chef all is pending plus in progress", func(t *testing.T) {
		svc, st, backend := newOrders(t, models.RoleChef)
		backend.On("ListPendingOrders", ctx).Return([]models.Order{{ID: 1, Status: models.OrderStatusPending}}, nil).Once()
		backend.On("ListInProgressOrders", ctx).Return([]models.Order{{ID: 2, Status: models.OrderStatusInProgress}}, nil).Once()

		orders, err := svc.FetchOrders(ctx, workflow.ListAll)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, []uint{1, 2}, st.State().Orders.List)
	})

	t.Run("waiter never sees finished orders", func(t *testing.T) {
		svc, _, backend := newOrders(t, models.RoleWaiter)
		backend.On("ListOrders", ctx).Return([]models.Order{
			{ID: 1, Status: models.OrderStatusReady},
			{ID: 2, Status: models.OrderStatusDelivered},
			{ID: 3, Status: models.OrderStatusCancelled},
		}, nil).Once()

		orders, err := svc.FetchOrders(ctx, workflow.ListAll)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, uint(1), orders[0].ID)
	})

	t.Run("manager completed groups finished and cancelled", func(t *testing.T) {
		svc, _, backend := newOrders(t, models.RoleManager)
		backend.On("ListOrdersByStatus", ctx, models.OrderStatusDelivered).Return([]models.Order{{ID: 1, Status: models.OrderStatusDelivered}}, nil).Once()
		backend.On("ListOrdersByStatus", ctx, models.OrderStatusCompleted).Return([]models.Order{{ID: 2, Status: models.OrderStatusCompleted}}, nil).Once()
		backend.On("ListOrdersByStatus", ctx, models.OrderStatusCancelled).Return([]models.Order{}, nil).Once()

		orders, err := svc.FetchOrders(ctx, workflow.ListCompleted)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("failure is stored", func(t *testing.T) {
		svc, st, backend := newOrders(t, models.RoleManager)
		backend.On("ListOrders", ctx).Return(nil, errors.New("timeout")).Once()

		_, err := svc.FetchOrders(ctx, workflow.ListAll)
		require.Error(t, err)
		assert.Equal(t, "Failed to fetch orders", st.State().Orders.Error)
	})
}

func TestFetchTableOrders(t *testing.T) {
	ctx := context.Background()
	svc, st, backend := newOrders(t, models.RoleCustomer)

	_, err := svc.FetchTableOrders(ctx)
	assert.ErrorIs(t, err, services.ErrNoActiveSession)

	startTable(st, 7)
	backend.On("ListTableOrders", ctx, uint(7), "s-1").Return([]models.Order{{ID: 9}}, nil).Once()
	orders, err := svc.FetchTableOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestFetchTableOrder(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	backend := mocks.NewBackend(t)
	svc := services.NewOrderService(st, backend)

	_, err := svc.FetchTableOrder(ctx, 3)
	assert.ErrorIs(t, err, services.ErrNoActiveSession)

	st.Dispatch(store.TableSessionStarted{Session: models.TableSession{TableID: 7, SessionID: "s"}})

	backend.On("GetOrder", ctx, uint(99)).Return(&models.Order{ID: 99, Status: models.OrderStatusPending, RestaurantTableID: 9}, nil).Once()
	_, err = svc.FetchTableOrder(ctx, 99)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	_, cached := store.OrderByID(st.State(), 99)
	assert.False(t, cached)
	assert.Zero(t, st.State().Orders.CurrentID)

	backend.On("GetOrder", ctx, uint(100)).Return(&models.Order{ID: 100, Status: models.OrderStatusReady, RestaurantTableID: 7}, nil).Once()
	order, err := svc.FetchTableOrder(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, uint(100), order.ID)
	assert.Equal(t, uint(100), st.State().Orders.CurrentID)

	backend.On("GetOrder", ctx, uint(101)).Return(nil, &api.Error{StatusCode: 404, Message: "Order not found"}).Once()
	_, err = svc.FetchTableOrder(ctx, 101)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}
