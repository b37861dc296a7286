package services

import (
	"context"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	State  *store.Store
	API    OrderAPI
	Logger logrus.FieldLogger
}

func NewOrderService(st *store.Store, orders OrderAPI) *OrderService {
	return &OrderService{State: st, API: orders, Logger: utils.InfoLogger}
}

// RequestTransition moves an order to target as the signed-in user. The
// cached order changes only once the backend has answered.
func (s *OrderService) RequestTransition(ctx context.Context, orderID uint, target models.OrderStatus) (*models.Order, error) {
	role := store.UserRole(s.State.State())

	current, ok := store.OrderByID(s.State.State(), orderID)
	if !ok {
		fetched, err := s.fetch(ctx, orderID)
		if err != nil {
			return nil, err
		}
		current = *fetched
	}

	log := s.Logger.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     current.Status,
		"to":       target,
		"role":     role,
	})
	if err := workflow.Validate(role, current.Status, target); err != nil {
		log.Warn("transition rejected")
		return nil, err
	}

	s.State.Dispatch(store.TransitionRequested{OrderID: orderID, Target: target})

	var (
		updated *models.Order
		err     error
	)
	switch workflow.EndpointFor(current.Status, target) {
	case workflow.EndpointStartPreparation:
		updated, err = s.API.StartPreparation(ctx, orderID)
	case workflow.EndpointMarkReady:
		updated, err = s.API.MarkReady(ctx, orderID)
	case workflow.EndpointMarkDelivered:
		updated, err = s.API.MarkDelivered(ctx, orderID)
	default:
		updated, err = s.API.SetOrderStatus(ctx, orderID, target)
	}
	if err != nil {
		s.State.Dispatch(store.TransitionFailed{OrderID: orderID, Error: api.Message(err, "Failed to update order status")})
		log.WithError(err).Error("transition failed")
		return nil, fmt.Errorf("update order %d: %w", orderID, err)
	}

	s.State.Dispatch(store.OrderReceived{Order: *updated})
	log.Info("order status updated")
	return updated, nil
}

// FetchOrder loads one order and makes it the current one.
func (s *OrderService) FetchOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.fetch(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.State.Dispatch(store.OrderSelected{ID: order.ID})
	return order, nil
}

// FetchTableOrder loads one order of the active table session. An order
// placed at another table is reported as not found and never cached.
func (s *OrderService) FetchTableOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	sess := store.ActiveSession(s.State.State())
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	order, err := s.API.GetOrder(ctx, orderID)
	if err != nil {
		return nil, s.fetchFailed(orderID, err)
	}
	if order.RestaurantTableID != sess.TableID {
		s.Logger.WithFields(logrus.Fields{
			"order_id": orderID,
			"table_id": sess.TableID,
		}).Warn("order belongs to another table")
		s.State.Dispatch(store.OrderNotFound{ID: orderID})
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}
	s.State.Dispatch(store.OrderReceived{Order: *order})
	s.State.Dispatch(store.OrderSelected{ID: order.ID})
	return order, nil
}

func (s *OrderService) fetch(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.API.GetOrder(ctx, orderID)
	if err != nil {
		return nil, s.fetchFailed(orderID, err)
	}
	s.State.Dispatch(store.OrderReceived{Order: *order})
	return order, nil
}

func (s *OrderService) fetchFailed(orderID uint, err error) error {
	if api.IsNotFound(err) {
		s.State.Dispatch(store.OrderNotFound{ID: orderID})
		return fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}
	s.State.Dispatch(store.OrdersFailed{Error: api.Message(err, "Failed to fetch order details")})
	return fmt.Errorf("fetch order %d: %w", orderID, err)
}

// FetchOrders loads a staff list. Whatever the filter, the result is narrowed
// to the statuses the role works with.
func (s *OrderService) FetchOrders(ctx context.Context, filter workflow.ListFilter) ([]models.Order, error) {
	role := store.UserRole(s.State.State())
	s.State.Dispatch(store.OrdersRequested{Filter: string(filter)})

	orders, err := s.list(ctx, role, filter)
	if err != nil {
		s.State.Dispatch(store.OrdersFailed{Error: api.Message(err, "Failed to fetch orders")})
		return nil, fmt.Errorf("fetch %s orders: %w", filter, err)
	}
	orders = workflow.FilterForRole(orders, role)
	s.State.Dispatch(store.OrdersLoaded{Filter: string(filter), Orders: orders})
	return orders, nil
}

func (s *OrderService) list(ctx context.Context, role models.UserRole, filter workflow.ListFilter) ([]models.Order, error) {
	switch filter {
	case workflow.ListPending:
		return s.API.ListPendingOrders(ctx)
	case workflow.ListInProgress:
		return s.API.ListInProgressOrders(ctx)
	case workflow.ListReady:
		return s.API.ListReadyOrders(ctx)
	case workflow.ListDelivered:
		return s.byStatuses(ctx, models.OrderStatusDelivered, models.OrderStatusCompleted)
	case workflow.ListCancelled:
		return s.API.ListOrdersByStatus(ctx, models.OrderStatusCancelled)
	case workflow.ListActive:
		return s.byStatuses(ctx, models.OrderStatusPending, models.OrderStatusInProgress, models.OrderStatusReady)
	case workflow.ListCompleted:
		return s.byStatuses(ctx, models.OrderStatusDelivered, models.OrderStatusCompleted, models.OrderStatusCancelled)
	}

	if role == models.RoleChef {
		return s.chefOrders(ctx)
	}
	return s.API.ListOrders(ctx)
}

func (s *OrderService) chefOrders(ctx context.Context) ([]models.Order, error) {
	pending, err := s.API.ListPendingOrders(ctx)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.API.ListInProgressOrders(ctx)
	if err != nil {
		return nil, err
	}
	return append(pending, inProgress...), nil
}

func (s *OrderService) byStatuses(ctx context.Context, statuses ...models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	for _, status := range statuses {
		orders, err := s.API.ListOrdersByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		out = append(out, orders...)
	}
	return out, nil
}

// FetchTableOrders loads the orders placed in the active table session.
func (s *OrderService) FetchTableOrders(ctx context.Context) ([]models.Order, error) {
	sess := store.ActiveSession(s.State.State())
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	s.State.Dispatch(store.OrdersRequested{Filter: "table"})
	orders, err := s.API.ListTableOrders(ctx, sess.TableID, sess.SessionID)
	if err != nil {
		s.State.Dispatch(store.OrdersFailed{Error: api.Message(err, "Failed to fetch orders")})
		return nil, fmt.Errorf("fetch table %d orders: %w", sess.TableID, err)
	}
	s.State.Dispatch(store.OrdersLoaded{Filter: "table", Orders: orders})
	return orders, nil
}

// Actions lists what the signed-in user may do with an order.
func (s *OrderService) Actions(order models.Order) []workflow.Action {
	return workflow.AvailableActions(order, store.UserRole(s.State.State()))
}
