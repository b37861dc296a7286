package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/sirupsen/logrus"
)

const DefaultTaxRate = 0.08

type SubmitRequest struct {
	CustomerName        string `json:"customerName"`
	SpecialInstructions string `json:"specialInstructions"`
}

type CartService struct {
	State   *store.Store
	Orders  OrderCreator
	TaxRate float64
	Logger  logrus.FieldLogger
}

func NewCartService(st *store.Store, orders OrderCreator, taxRate float64) *CartService {
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	return &CartService{State: st, Orders: orders, TaxRate: taxRate, Logger: utils.InfoLogger}
}

// Add merges item into the cart; its quantity is a delta.
func (s *CartService) Add(item models.CartItem) error {
	if item.MenuItemID == 0 {
		return fmt.Errorf("%w: menu item id is required", ErrInvalidCartItem)
	}
	s.State.Dispatch(store.CartItemAdded{Item: item})
	return nil
}

// Set inserts or overwrites a line; its quantity is absolute.
func (s *CartService) Set(item models.CartItem) error {
	if item.MenuItemID == 0 {
		return fmt.Errorf("%w: menu item id is required", ErrInvalidCartItem)
	}
	s.State.Dispatch(store.CartItemSet{Item: item})
	return nil
}

// Update edits an existing line. A quantity of zero or less removes it.
func (s *CartService) Update(menuItemID uint, quantity int, instructions string) error {
	if !s.has(menuItemID) {
		return fmt.Errorf("%w: menu item %d is not in the cart", ErrInvalidCartItem, menuItemID)
	}
	s.State.Dispatch(store.CartItemUpdated{MenuItemID: menuItemID, Quantity: quantity, SpecialInstructions: instructions})
	return nil
}

func (s *CartService) Remove(menuItemID uint) {
	s.State.Dispatch(store.CartItemRemoved{MenuItemID: menuItemID})
}

func (s *CartService) Clear() {
	s.State.Dispatch(store.CartCleared{})
}

func (s *CartService) Items() []models.CartItem {
	return store.CartItems(s.State.State())
}

func (s *CartService) Totals() models.CartTotals {
	return ComputeTotals(s.Items(), s.TaxRate)
}

func (s *CartService) has(menuItemID uint) bool {
	for _, line := range s.Items() {
		if line.MenuItemID == menuItemID {
			return true
		}
	}
	return false
}

// ComputeTotals prices the cart. Tax is rounded to cents and the total is
// exactly subtotal plus tax.
func ComputeTotals(items []models.CartItem, taxRate float64) models.CartTotals {
	var subtotal float64
	for _, line := range items {
		if line.Quantity > 0 {
			subtotal += line.UnitPrice * float64(line.Quantity)
		}
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * taxRate)
	return models.CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		TaxRate:  taxRate,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Submit turns the cart into an order for the active table session. On
// failure the cart is left as it was.
func (s *CartService) Submit(ctx context.Context, req SubmitRequest) (uint, error) {
	state := s.State.State()
	sess := store.ActiveSession(state)
	if sess == nil {
		return 0, ErrNoActiveSession
	}

	items := make([]models.OrderItemRequest, 0, len(state.Cart.Items))
	for _, line := range state.Cart.Items {
		if line.Quantity <= 0 {
			continue
		}
		items = append(items, models.OrderItemRequest{
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return 0, ErrMissingCustomerName
	}

	s.State.Dispatch(store.OrderSubmitting{})
	order, err := s.Orders.CreateOrder(ctx, models.CreateOrderRequest{
		CustomerName:        name,
		RestaurantTableID:   sess.TableID,
		Items:               items,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
	})
	if err != nil {
		s.State.Dispatch(store.OrderSubmitFailed{Error: api.Message(err, "Failed to create order")})
		s.Logger.WithError(err).WithField("table_id", sess.TableID).Error("order submission failed")
		return 0, fmt.Errorf("create order: %w", err)
	}

	s.State.Dispatch(store.OrderSubmitted{Order: *order})
	s.Logger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"table_id": sess.TableID,
		"lines":    len(items),
	}).Info("order submitted")
	return order.ID, nil
}
