package api

import (
	"context"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	items := []models.Notification{}
	if err := c.get(ctx, "/waiter/notifications", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := c.put(ctx, fmt.Sprintf("/waiter/notifications/%d/read", id), nil, nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *Client) KitchenStatistics(ctx context.Context) (*models.KitchenStatistics, error) {
	var stats models.KitchenStatistics
	if err := c.get(ctx, "/kitchen/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) SystemStatistics(ctx context.Context) (*models.SystemStatistics, error) {
	var stats models.SystemStatistics
	if err := c.get(ctx, "/system/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
