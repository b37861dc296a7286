package store

import "github.com/selcanmusayeva/restaurant-ordering-frontend/models"

// Reduce returns the state after applying a. It never mutates s: every slice
// or map it changes is copied first, so earlier snapshots stay valid.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case AuthRestoring:
		s.Auth.Loading = true
		s.Auth.Error = ""
	case AuthSucceeded:
		s.Auth = AuthState{Token: act.Token, User: act.User}
	case AuthFailed:
		s.Auth = AuthState{Error: act.Error}
	case LoggedOut:
		s.Auth = AuthState{}
		s.Orders = OrdersState{}
		s.Tables = TablesState{}
		s.Notifications = NotificationsState{}
		s.Statistics = StatisticsState{}

	case TableSessionStarted:
		sess := act.Session
		s.Session.Active = &sess
	case TableSessionCleared:
		s.Session.Active = nil

	case CartItemAdded:
		s.Cart.Items = addCartItem(s.Cart.Items, act.Item)
	case CartItemSet:
		s.Cart.Items = setCartItem(s.Cart.Items, act.Item)
	case CartItemUpdated:
		s.Cart.Items = updateCartItem(s.Cart.Items, act)
	case CartItemRemoved:
		s.Cart.Items = removeCartItem(s.Cart.Items, act.MenuItemID)
	case CartCleared:
		s.Cart.Items = nil

	case OrderSubmitting:
		s.Orders.Submitting = true
		s.Orders.Error = ""
	case OrderSubmitted:
		s.Orders.ByID = upsertOrders(s.Orders.ByID, act.Order)
		s.Orders.CurrentID = act.Order.ID
		s.Orders.Submitting = false
		s.Orders.Error = ""
		s.Cart.Items = nil
	case OrderSubmitFailed:
		s.Orders.Submitting = false
		s.Orders.Error = act.Error
	case OrdersRequested:
		s.Orders.Loading = true
		s.Orders.Filter = act.Filter
	case OrdersLoaded:
		ids := make([]uint, 0, len(act.Orders))
		for _, o := range act.Orders {
			ids = append(ids, o.ID)
		}
		s.Orders.ByID = upsertOrders(s.Orders.ByID, act.Orders...)
		s.Orders.List = ids
		s.Orders.Filter = act.Filter
		s.Orders.Loading = false
		s.Orders.Error = ""
	case OrdersFailed:
		s.Orders.Loading = false
		s.Orders.Error = act.Error
	case OrderSelected:
		s.Orders.CurrentID = act.ID
	case OrderReceived:
		s.Orders.ByID = upsertOrders(s.Orders.ByID, act.Order)
		s.Orders.InFlight = withoutInFlight(s.Orders.InFlight, act.Order.ID)
		s.Orders.Error = ""
	case OrderNotFound:
		if _, ok := s.Orders.ByID[act.ID]; ok {
			byID := copyOrders(s.Orders.ByID)
			delete(byID, act.ID)
			s.Orders.ByID = byID
		}
		if s.Orders.CurrentID == act.ID {
			s.Orders.CurrentID = 0
		}
	case TransitionRequested:
		inFlight := make(map[uint]models.OrderStatus, len(s.Orders.InFlight)+1)
		for k, v := range s.Orders.InFlight {
			inFlight[k] = v
		}
		inFlight[act.OrderID] = act.Target
		s.Orders.InFlight = inFlight
		s.Orders.Error = ""
	case TransitionFailed:
		s.Orders.InFlight = withoutInFlight(s.Orders.InFlight, act.OrderID)
		s.Orders.Error = act.Error
	case OrdersErrorDismissed:
		s.Orders.Error = ""

	case MenuRequested:
		s.Menu.Loading = true
	case MenuLoaded:
		s.Menu.Items = act.Items
		s.Menu.Loading = false
		s.Menu.Error = ""
	case CategoriesLoaded:
		s.Menu.Categories = act.Categories
	case MenuItemSaved:
		s.Menu.Items = upsertMenuItem(s.Menu.Items, act.Item)
		s.Menu.Error = ""
	case MenuItemDeleted:
		items := make([]models.MenuItem, 0, len(s.Menu.Items))
		for _, it := range s.Menu.Items {
			if it.ID != act.ID {
				items = append(items, it)
			}
		}
		s.Menu.Items = items
	case MenuFailed:
		s.Menu.Loading = false
		s.Menu.Error = act.Error

	case TablesLoaded:
		s.Tables = TablesState{Tables: act.Tables}
	case TablesFailed:
		s.Tables.Error = act.Error

	case NotificationsLoaded:
		s.Notifications = NotificationsState{Items: act.Items}
	case NotificationRead:
		items := make([]models.Notification, len(s.Notifications.Items))
		copy(items, s.Notifications.Items)
		for i := range items {
			if items[i].ID == act.ID {
				items[i].Read = true
			}
		}
		s.Notifications.Items = items
	case NotificationsFailed:
		s.Notifications.Error = act.Error

	case StatisticsLoaded:
		s.Statistics = StatisticsState{Kitchen: act.Kitchen, System: act.System}
	case StatisticsFailed:
		s.Statistics.Error = act.Error
	}
	return s
}

func addCartItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items)+1)
	found := false
	for _, line := range items {
		if line.MenuItemID == item.MenuItemID {
			found = true
			line.Quantity += item.Quantity
			line.SpecialInstructions = item.SpecialInstructions
			if item.Name != "" {
				line.Name = item.Name
			}
			if item.UnitPrice > 0 {
				line.UnitPrice = item.UnitPrice
			}
			if line.Quantity <= 0 {
				continue
			}
		}
		out = append(out, line)
	}
	if !found && item.Quantity > 0 {
		out = append(out, item)
	}
	return out
}

func setCartItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items)+1)
	found := false
	for _, line := range items {
		if line.MenuItemID == item.MenuItemID {
			found = true
			if item.Quantity <= 0 {
				continue
			}
			line = item
		}
		out = append(out, line)
	}
	if !found && item.Quantity > 0 {
		out = append(out, item)
	}
	return out
}

func updateCartItem(items []models.CartItem, upd CartItemUpdated) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, line := range items {
		if line.MenuItemID == upd.MenuItemID {
			if upd.Quantity <= 0 {
				continue
			}
			line.Quantity = upd.Quantity
			line.SpecialInstructions = upd.SpecialInstructions
		}
		out = append(out, line)
	}
	return out
}

func removeCartItem(items []models.CartItem, menuItemID uint) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, line := range items {
		if line.MenuItemID != menuItemID {
			out = append(out, line)
		}
	}
	return out
}

func copyOrders(byID map[uint]models.Order) map[uint]models.Order {
	out := make(map[uint]models.Order, len(byID)+1)
	for k, v := range byID {
		out[k] = v
	}
	return out
}

func upsertOrders(byID map[uint]models.Order, orders ...models.Order) map[uint]models.Order {
	out := copyOrders(byID)
	for _, o := range orders {
		out[o.ID] = o
	}
	return out
}

func withoutInFlight(inFlight map[uint]models.OrderStatus, id uint) map[uint]models.OrderStatus {
	if _, ok := inFlight[id]; !ok {
		return inFlight
	}
	out := make(map[uint]models.OrderStatus, len(inFlight))
	for k, v := range inFlight {
		if k != id {
			out[k] = v
		}
	}
	return out
}

func upsertMenuItem(items []models.MenuItem, item models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items)+1)
	found := false
	for _, it := range items {
		if it.ID == item.ID {
			found = true
			it = item
		}
		out = append(out, it)
	}
	if !found {
		out = append(out, item)
	}
	return out
}
