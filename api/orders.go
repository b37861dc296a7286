package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.post(ctx, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrderStatus(ctx context.Context, id uint) (*models.OrderStatusResponse, error) {
	var status models.OrderStatusResponse
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/status", id), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SetOrderStatus is the generic status endpoint.
func (c *Client) SetOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	return c.putOrder(ctx, fmt.Sprintf("/orders/%d/status", id), url.Values{"status": {string(status)}})
}

func (c *Client) StartPreparation(ctx context.Context, id uint) (*models.Order, error) {
	return c.putOrder(ctx, fmt.Sprintf("/kitchen/orders/%d/preparation", id), nil)
}

func (c *Client) MarkReady(ctx context.Context, id uint) (*models.Order, error) {
	return c.putOrder(ctx, fmt.Sprintf("/kitchen/orders/%d/ready", id), nil)
}

func (c *Client) MarkDelivered(ctx context.Context, id uint) (*models.Order, error) {
	return c.putOrder(ctx, fmt.Sprintf("/waiter/orders/%d/delivered", id), nil)
}

func (c *Client) putOrder(ctx context.Context, path string, query url.Values) (*models.Order, error) {
	var order models.Order
	if err := c.put(ctx, path, query, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/kitchen/orders", nil)
}

func (c *Client) ListPendingOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/kitchen/orders/pending", nil)
}

func (c *Client) ListInProgressOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/kitchen/orders/in-progress", nil)
}

func (c *Client) ListReadyOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/waiter/orders/ready", nil)
}

func (c *Client) ListOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return c.listOrders(ctx, "/orders/status/"+url.PathEscape(string(status)), nil)
}

func (c *Client) ListTableOrders(ctx context.Context, tableID uint, sessionID string) ([]models.Order, error) {
	return c.listOrders(ctx, fmt.Sprintf("/customer/table/%d/orders", tableID), url.Values{"sessionId": {sessionID}})
}

func (c *Client) listOrders(ctx context.Context, path string, query url.Values) ([]models.Order, error) {
	orders := []models.Order{}
	if err := c.get(ctx, path, query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
