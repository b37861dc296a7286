package models

import (
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses lists every status in workflow order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the canonical statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID                  uint        `json:"id"`
	Status              OrderStatus `json:"status"`
	RestaurantTableID   uint        `json:"restaurantTableId"`
	TableNumber         string      `json:"tableNumber,omitempty"`
	CustomerName        string      `json:"customerName"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// OrderItem is the immutable snapshot of a line taken when the order was created.
type OrderItem struct {
	ID                  uint    `json:"id"`
	MenuItemID          uint    `json:"menuItemId"`
	Name                string  `json:"name,omitempty"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions"`
	PriceAtTimeOfOrder  float64 `json:"priceAtTimeOfOrder"`
	Status              string  `json:"status"`
}

// Total sums the price snapshot of every line. Live menu prices are never consulted.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.PriceAtTimeOfOrder * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

type CreateOrderRequest struct {
	CustomerName        string             `json:"customerName"`
	RestaurantTableID   uint               `json:"restaurantTableId"`
	Items               []OrderItemRequest `json:"items"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`
}

type OrderItemRequest struct {
	MenuItemID          uint   `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// OrderStatusResponse is the lightweight status payload of GET /orders/{id}/status.
type OrderStatusResponse struct {
	OrderID                  uint        `json:"orderId"`
	Status                   OrderStatus `json:"status"`
	CreatedAt                time.Time   `json:"createdAt"`
	UpdatedAt                time.Time   `json:"updatedAt"`
	TableID                  uint        `json:"tableId"`
	EstimatedPreparationTime string      `json:"estimatedPreparationTime"`
}
