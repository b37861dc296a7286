package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

func (c *Client) GetTableByUUID(ctx context.Context, uuid string) (*models.Table, error) {
	var table models.Table
	if err := c.get(ctx, "/tables/uuid/"+url.PathEscape(uuid), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := c.get(ctx, fmt.Sprintf("/tables/%d", id), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	tables := []models.Table{}
	if err := c.get(ctx, "/tables", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}
