package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/mocks"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name  string
		req   models.MenuItemRequest
		valid bool
	}{
		{"ok", models.MenuItemRequest{Name: "Soup", Price: 4, CategoryID: 1}, true},
		{"free item", models.MenuItemRequest{Name: "Water", Price: 0, CategoryID: 1}, true},
		{"blank name", models.MenuItemRequest{Name: "  ", Price: 4, CategoryID: 1}, false},
		{"negative price", models.MenuItemRequest{Name: "Soup", Price: -1, CategoryID: 1}, false},
		{"no category", models.MenuItemRequest{Name: "Soup", Price: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateMenuItem(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, services.ErrInvalidMenuItem)
			}
		})
	}
}

func TestMenuCuration(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	backend := mocks.NewBackend(t)
	menu := services.NewMenuService(st, backend)

	_, err := menu.Create(ctx, models.MenuItemRequest{Name: "", Price: 3, CategoryID: 1})
	assert.ErrorIs(t, err, services.ErrInvalidMenuItem)

	backend.On("CreateMenuItem", ctx, models.MenuItemRequest{Name: "Soup", Price: 4, CategoryID: 1, Available: true}).
		Return(&models.MenuItem{ID: 10, Name: "Soup", Price: 4, CategoryID: 1, Available: true}, nil).Once()
	_, err = menu.Create(ctx, models.MenuItemRequest{Name: " Soup ", Price: 4, CategoryID: 1, Available: true})
	require.NoError(t, err)

	backend.On("GetMenuItem", ctx, uint(10)).Return(&models.MenuItem{ID: 10, Name: "Soup", Price: 4, CategoryID: 1, Available: true}, nil).Once()
	backend.On("UpdateMenuItem", ctx, uint(10), mock.MatchedBy(func(r models.MenuItemRequest) bool { return !r.Available })).
		Return(&models.MenuItem{ID: 10, Name: "Soup", Price: 4, CategoryID: 1, Available: false}, nil).Once()
	item, err := menu.SetAvailability(ctx, 10, false)
	require.NoError(t, err)
	assert.False(t, item.Available)
	require.Len(t, st.State().Menu.Items, 1)
	assert.False(t, st.State().Menu.Items[0].Available)

	backend.On("DeleteMenuItem", ctx, uint(10)).Return(nil).Once()
	require.NoError(t, menu.Delete(ctx, 10))
	assert.Empty(t, st.State().Menu.Items)
}

func TestLoadAvailableMenu(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	backend := mocks.NewBackend(t)
	backend.On("ListAvailableMenuItems", ctx).Return([]models.MenuItem{{ID: 1, Name: "Soup", Available: true}}, nil).Once()
	backend.On("ListCategories", ctx).Return([]models.Category{{ID: 1, Name: "Starters"}}, nil).Once()

	items, err := services.NewMenuService(st, backend).LoadAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, st.State().Menu.Categories, 1)
	assert.False(t, st.State().Menu.Loading)
}

func TestTableQRCode(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewBackend(t)
	qr := services.DefaultQRGenerator{BaseURL: "https://restaurant.example/"}
	tables := services.NewTableService(store.New(), backend, qr)

	backend.On("GetTable", ctx, uint(7)).Return(&models.Table{ID: 7, UUID: "3f2b8c1e-9d4a-4b7e-8a6f-2c1d0e9b7a65"}, nil).Once()
	png, table, err := tables.QRCode(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), table.ID)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	assert.Equal(t, "https://restaurant.example/t/3f2b8c1e-9d4a-4b7e-8a6f-2c1d0e9b7a65", qr.Link(*table))
	assert.Equal(t, "https://restaurant.example/t/9", qr.Link(models.Table{ID: 9}))

	backend.On("GetTable", ctx, uint(8)).Return(nil, &api.Error{StatusCode: 404, Message: "Not Found"}).Once()
	_, _, err = tables.QRCode(ctx, 8)
	assert.ErrorIs(t, err, services.ErrTableNotFound)
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	backend := mocks.NewBackend(t)
	svc := services.NewNotificationService(st, backend)

	backend.On("ListNotifications", ctx).Return([]models.Notification{{ID: 1}, {ID: 2}}, nil).Once()
	backend.On("MarkNotificationRead", ctx, uint(1)).Return(&models.Notification{ID: 1, Read: true}, nil).Once()

	_, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.UnreadCount())
	require.NoError(t, svc.MarkRead(ctx, 1))
	assert.Equal(t, 1, svc.UnreadCount())
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	backend := mocks.NewBackend(t)
	backend.On("KitchenStatistics", ctx).Return(&models.KitchenStatistics{PendingOrders: 3}, nil).Once()
	backend.On("SystemStatistics", ctx).Return(&models.SystemStatistics{TotalOrders: 40}, nil).Once()

	stats, err := services.NewStatisticsService(st, backend).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Kitchen.PendingOrders)
	assert.Equal(t, 40, stats.System.TotalOrders)
}
