// Package mocks holds testify mocks of the backend interfaces used by services.
package mocks

import (
	"context"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/stretchr/testify/mock"
)

// Backend mocks services.Backend.
type Backend struct {
	mock.Mock
}

// NewBackend creates a Backend whose expectations are asserted when the test ends.
func NewBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *Backend {
	m := &Backend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Backend) GetTableByUUID(ctx context.Context, uuid string) (*models.Table, error) {
	ret := m.Called(ctx, uuid)
	var r0 *models.Table
	if fn, ok := ret.Get(0).(func(ctx context.Context, uuid string) (*models.Table, error)); ok {
		return fn(ctx, uuid)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Table)
	}
	return r0, ret.Error(1)
}

func (m *Backend) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	ret := m.Called(ctx, id)
	var r0 *models.Table
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.Table, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Table)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListTables(ctx context.Context) ([]models.Table, error) {
	ret := m.Called(ctx)
	var r0 []models.Table
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Table, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Table)
	}
	return r0, ret.Error(1)
}

func (m *Backend) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	ret := m.Called(ctx, req)
	var r0 *models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)); ok {
		return fn(ctx, req)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	ret := m.Called(ctx, id)
	var r0 *models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.Order, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) SetOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	ret := m.Called(ctx, id, status)
	var r0 *models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)); ok {
		return fn(ctx, id, status)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) StartPreparation(ctx context.Context, id uint) (*models.Order, error) {
	ret := m.Called(ctx, id)
	var r0 *models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.Order, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) MarkReady(ctx context.Context, id uint) (*models.Order, error) {
	ret := m.Called(ctx, id)
	var r0 *models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.Order, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) MarkDelivered(ctx context.Context, id uint) (*models.Order, error) {
	ret := m.Called(ctx, id)
	var r0 *models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.Order, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListOrders(ctx context.Context) ([]models.Order, error) {
	ret := m.Called(ctx)
	var r0 []models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Order, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListPendingOrders(ctx context.Context) ([]models.Order, error) {
	ret := m.Called(ctx)
	var r0 []models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Order, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListInProgressOrders(ctx context.Context) ([]models.Order, error) {
	ret := m.Called(ctx)
	var r0 []models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Order, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListReadyOrders(ctx context.Context) ([]models.Order, error) {
	ret := m.Called(ctx)
	var r0 []models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Order, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	ret := m.Called(ctx, status)
	var r0 []models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, status models.OrderStatus) ([]models.Order, error)); ok {
		return fn(ctx, status)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListTableOrders(ctx context.Context, tableID uint, sessionID string) ([]models.Order, error) {
	ret := m.Called(ctx, tableID, sessionID)
	var r0 []models.Order
	if fn, ok := ret.Get(0).(func(ctx context.Context, tableID uint, sessionID string) ([]models.Order, error)); ok {
		return fn(ctx, tableID, sessionID)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Order)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	ret := m.Called(ctx)
	var r0 []models.MenuItem
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.MenuItem, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListAvailableMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	ret := m.Called(ctx)
	var r0 []models.MenuItem
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.MenuItem, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *Backend) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	ret := m.Called(ctx, id)
	var r0 *models.MenuItem
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.MenuItem, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *Backend) CreateMenuItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	ret := m.Called(ctx, req)
	var r0 *models.MenuItem
	if fn, ok := ret.Get(0).(func(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error)); ok {
		return fn(ctx, req)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *Backend) UpdateMenuItem(ctx context.Context, id uint, req models.MenuItemRequest) (*models.MenuItem, error) {
	ret := m.Called(ctx, id, req)
	var r0 *models.MenuItem
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint, req models.MenuItemRequest) (*models.MenuItem, error)); ok {
		return fn(ctx, id, req)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.MenuItem)
	}
	return r0, ret.Error(1)
}

func (m *Backend) DeleteMenuItem(ctx context.Context, id uint) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *Backend) ListCategories(ctx context.Context) ([]models.Category, error) {
	ret := m.Called(ctx)
	var r0 []models.Category
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Category, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Category)
	}
	return r0, ret.Error(1)
}

func (m *Backend) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	ret := m.Called(ctx, req)
	var r0 *models.LoginResponse
	if fn, ok := ret.Get(0).(func(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)); ok {
		return fn(ctx, req)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.LoginResponse)
	}
	return r0, ret.Error(1)
}

func (m *Backend) Logout(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}

func (m *Backend) CurrentUser(ctx context.Context) (*models.User, error) {
	ret := m.Called(ctx)
	var r0 *models.User
	if fn, ok := ret.Get(0).(func(ctx context.Context) (*models.User, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.User)
	}
	return r0, ret.Error(1)
}

func (m *Backend) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	ret := m.Called(ctx)
	var r0 []models.Notification
	if fn, ok := ret.Get(0).(func(ctx context.Context) ([]models.Notification, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Notification)
	}
	return r0, ret.Error(1)
}

func (m *Backend) MarkNotificationRead(ctx context.Context, id uint) (*models.Notification, error) {
	ret := m.Called(ctx, id)
	var r0 *models.Notification
	if fn, ok := ret.Get(0).(func(ctx context.Context, id uint) (*models.Notification, error)); ok {
		return fn(ctx, id)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Notification)
	}
	return r0, ret.Error(1)
}

func (m *Backend) KitchenStatistics(ctx context.Context) (*models.KitchenStatistics, error) {
	ret := m.Called(ctx)
	var r0 *models.KitchenStatistics
	if fn, ok := ret.Get(0).(func(ctx context.Context) (*models.KitchenStatistics, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.KitchenStatistics)
	}
	return r0, ret.Error(1)
}

func (m *Backend) SystemStatistics(ctx context.Context) (*models.SystemStatistics, error) {
	ret := m.Called(ctx)
	var r0 *models.SystemStatistics
	if fn, ok := ret.Get(0).(func(ctx context.Context) (*models.SystemStatistics, error)); ok {
		return fn(ctx)
	}
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.SystemStatistics)
	}
	return r0, ret.Error(1)
}
