package api

import (
	"context"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

func (c *Client) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := c.get(ctx, "/menu/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListAvailableMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := c.get(ctx, "/menu/items/available", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.get(ctx, fmt.Sprintf("/menu/items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.post(ctx, "/menu/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id uint, req models.MenuItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.put(ctx, fmt.Sprintf("/menu/items/%d", id), nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/menu/items/%d", id))
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := c.get(ctx, "/menu/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
