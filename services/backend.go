package services

import (
	"context"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

// Backend calls used by the services, split by concern. *api.Client
// implements all of them.

type TableResolver interface {
	GetTableByUUID(ctx context.Context, uuid string) (*models.Table, error)
}

type TableAPI interface {
	TableResolver
	GetTable(ctx context.Context, id uint) (*models.Table, error)
	ListTables(ctx context.Context) ([]models.Table, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
}

type OrderAPI interface {
	OrderCreator
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	SetOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
	StartPreparation(ctx context.Context, id uint) (*models.Order, error)
	MarkReady(ctx context.Context, id uint) (*models.Order, error)
	MarkDelivered(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListPendingOrders(ctx context.Context) ([]models.Order, error)
	ListInProgressOrders(ctx context.Context) ([]models.Order, error)
	ListReadyOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	ListTableOrders(ctx context.Context, tableID uint, sessionID string) ([]models.Order, error)
}

type MenuAPI interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	ListAvailableMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uint, req models.MenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id uint) (*models.Notification, error)
}

type StatisticsAPI interface {
	KitchenStatistics(ctx context.Context) (*models.KitchenStatistics, error)
	SystemStatistics(ctx context.Context) (*models.SystemStatistics, error)
}

type Backend interface {
	TableAPI
	OrderAPI
	MenuAPI
	AuthAPI
	NotificationAPI
	StatisticsAPI
}
