package workflow

import (
	"errors"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

func IsActive(s models.OrderStatus) bool { return !IsTerminal(s) }

func IsCompleted(s models.OrderStatus) bool { return IsTerminal(s) }

// VisibleTo reports whether role works with orders in status s.
// Customers only ever receive their own table's orders, so every status is visible.
func VisibleTo(role models.UserRole, s models.OrderStatus) bool {
	switch role {
	case models.RoleChef:
		return s == models.OrderStatusPending || s == models.OrderStatusInProgress
	case models.RoleWaiter:
		return IsActive(s)
	case models.RoleManager, models.RoleCustomer:
		return true
	}
	return false
}

func FilterActive(orders []models.Order) []models.Order {
	return filter(orders, func(o models.Order) bool { return IsActive(o.Status) })
}

func FilterCompleted(orders []models.Order) []models.Order {
	return filter(orders, func(o models.Order) bool { return IsCompleted(o.Status) })
}

func FilterForRole(orders []models.Order, role models.UserRole) []models.Order {
	return filter(orders, func(o models.Order) bool { return VisibleTo(role, o.Status) })
}

func filter(orders []models.Order, keep func(models.Order) bool) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// ListFilter is a named staff order list.
type ListFilter string

const (
	ListAll        ListFilter = "all"
	ListPending    ListFilter = "pending"
	ListInProgress ListFilter = "inProgress"
	ListReady      ListFilter = "ready"
	ListDelivered  ListFilter = "delivered"
	ListCancelled  ListFilter = "cancelled"
	ListActive     ListFilter = "active"
	ListCompleted  ListFilter = "completed"
)

var ErrUnknownFilter = errors.New("unknown order filter")

func ParseListFilter(raw string) (ListFilter, error) {
	if raw == "" {
		return ListAll, nil
	}
	switch f := ListFilter(raw); f {
	case ListAll, ListPending, ListInProgress, ListReady, ListDelivered, ListCancelled, ListActive, ListCompleted:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, raw)
}
