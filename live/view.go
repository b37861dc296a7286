package live

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
)

type View string

const (
	ViewOrders        View = "orders"
	ViewOrder         View = "order"
	ViewTableOrders   View = "table-orders"
	ViewMenu          View = "menu"
	ViewNotifications View = "notifications"
	ViewDashboard     View = "dashboard"
)

var ErrUnknownView = errors.New("unknown live view")

// Params selects what a live socket shows.
type Params struct {
	View    View
	OrderID uint
	Filter  workflow.ListFilter
}

func ParseParams(view, id, filter string) (Params, error) {
	p := Params{View: View(view)}
	switch p.View {
	case ViewOrders:
		f, err := workflow.ParseListFilter(filter)
		if err != nil {
			return Params{}, err
		}
		p.Filter = f
	case ViewOrder:
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil || n == 0 {
			return Params{}, fmt.Errorf("invalid order id %q", id)
		}
		p.OrderID = uint(n)
	case ViewTableOrders, ViewMenu, ViewNotifications, ViewDashboard:
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	return p, nil
}

// Requirement is the route guard a socket for this view must pass. A single
// order is visible to staff, or to the table that placed it.
func (p Params) Requirement(snap guard.Snapshot) guard.Requirement {
	switch p.View {
	case ViewOrders:
		return guard.Requirement{RequireAuth: true, Roles: models.StaffRoles}
	case ViewOrder:
		if snap.Authenticated {
			return guard.Requirement{RequireAuth: true, Roles: models.StaffRoles}
		}
		return guard.Requirement{RequireTableSession: true, CustomerOnly: true}
	case ViewNotifications:
		return guard.Requirement{RequireAuth: true, Roles: []models.UserRole{models.RoleWaiter, models.RoleChef}}
	case ViewDashboard:
		return guard.Requirement{RequireAuth: true, Roles: []models.UserRole{models.RoleManager}}
	}
	return guard.Requirement{RequireTableSession: true, CustomerOnly: true}
}

// Fetch is the refresh the view's poller runs.
func (p Params) Fetch(d *services.Device) func(ctx context.Context) error {
	switch p.View {
	case ViewOrders:
		return func(ctx context.Context) error {
			_, err := d.Orders.FetchOrders(ctx, p.Filter)
			return err
		}
	case ViewOrder:
		return func(ctx context.Context) error {
			if d.Snapshot(0).Authenticated {
				_, err := d.Orders.FetchOrder(ctx, p.OrderID)
				return err
			}
			_, err := d.Orders.FetchTableOrder(ctx, p.OrderID)
			return err
		}
	case ViewTableOrders:
		return func(ctx context.Context) error {
			_, err := d.Orders.FetchTableOrders(ctx)
			return err
		}
	case ViewMenu:
		return func(ctx context.Context) error {
			_, err := d.Menu.LoadAvailable(ctx)
			return err
		}
	case ViewNotifications:
		return func(ctx context.Context) error {
			_, err := d.Notifications.Load(ctx)
			return err
		}
	case ViewDashboard:
		return func(ctx context.Context) error {
			_, err := d.Statistics.Load(ctx)
			return err
		}
	}
	return func(context.Context) error { return nil }
}

type OrderView struct {
	Order   models.Order      `json:"order"`
	Actions []workflow.Action `json:"actions"`
	Pending string            `json:"pending,omitempty"`
}

type OrdersPayload struct {
	Filter  workflow.ListFilter `json:"filter,omitempty"`
	Orders  []OrderView         `json:"orders"`
	Loading bool                `json:"loading"`
	Error   string              `json:"error,omitempty"`
}

type OrderPayload struct {
	Order *OrderView `json:"order,omitempty"`
	Found bool       `json:"found"`
	Error string     `json:"error,omitempty"`
}

type MenuPayload struct {
	Categories map[string][]models.MenuItem `json:"categories"`
	CartLines  int                          `json:"cartLines"`
	Error      string                       `json:"error,omitempty"`
}

type NotificationsPayload struct {
	Items  []models.Notification `json:"items"`
	Unread int                   `json:"unread"`
	Error  string                `json:"error,omitempty"`
}

// Snapshot projects the device state onto what the view renders.
func (p Params) Snapshot(s store.State) interface{} {
	role := store.UserRole(s)
	switch p.View {
	case ViewOrders, ViewTableOrders:
		orders := store.Orders(s)
		out := OrdersPayload{Filter: p.Filter, Orders: make([]OrderView, 0, len(orders)), Loading: s.Orders.Loading, Error: s.Orders.Error}
		for _, o := range orders {
			out.Orders = append(out.Orders, orderView(s, o, role))
		}
		return out
	case ViewOrder:
		out := OrderPayload{Error: s.Orders.Error}
		if o, ok := store.OrderByID(s, p.OrderID); ok && visible(s, o, role) {
			v := orderView(s, o, role)
			out.Order = &v
			out.Found = true
		}
		return out
	case ViewMenu:
		return MenuPayload{Categories: store.MenuByCategory(s), CartLines: len(s.Cart.Items), Error: s.Menu.Error}
	case ViewNotifications:
		return NotificationsPayload{Items: s.Notifications.Items, Unread: store.UnreadNotifications(s), Error: s.Notifications.Error}
	case ViewDashboard:
		return s.Statistics
	}
	return nil
}

// visible hides orders of other tables from diners.
func visible(s store.State, o models.Order, role models.UserRole) bool {
	if role.IsStaff() {
		return true
	}
	sess := store.ActiveSession(s)
	return sess != nil && o.RestaurantTableID == sess.TableID
}

func orderView(s store.State, o models.Order, role models.UserRole) OrderView {
	v := OrderView{Order: o, Actions: workflow.AvailableActions(o, role)}
	if target, ok := store.PendingTransition(s, o.ID); ok {
		v.Pending = string(target)
	}
	return v
}
