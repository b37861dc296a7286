package store

import (
	"sort"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

func HasActiveSession(s State) bool {
	return s.Session.Active != nil
}

func ActiveSession(s State) *models.TableSession {
	if s.Session.Active == nil {
		return nil
	}
	sess := *s.Session.Active
	return &sess
}

func CartItems(s State) []models.CartItem {
	out := make([]models.CartItem, len(s.Cart.Items))
	copy(out, s.Cart.Items)
	return out
}

func OrderByID(s State, id uint) (models.Order, bool) {
	o, ok := s.Orders.ByID[id]
	return o, ok
}

// Orders resolves the last fetched list against the cache.
func Orders(s State) []models.Order {
	out := make([]models.Order, 0, len(s.Orders.List))
	for _, id := range s.Orders.List {
		if o, ok := s.Orders.ByID[id]; ok {
			out = append(out, o)
		}
	}
	return out
}

func CurrentOrder(s State) (models.Order, bool) {
	if s.Orders.CurrentID == 0 {
		return models.Order{}, false
	}
	return OrderByID(s, s.Orders.CurrentID)
}

// PendingTransition reports the target of an unresolved transition request.
func PendingTransition(s State, id uint) (models.OrderStatus, bool) {
	t, ok := s.Orders.InFlight[id]
	return t, ok
}

// UserRole is empty when nobody is signed in.
func UserRole(s State) models.UserRole {
	if s.Auth.User == nil {
		return ""
	}
	return s.Auth.User.Role
}

func UnreadNotifications(s State) int {
	n := 0
	for _, item := range s.Notifications.Items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MenuByCategory groups menu items by category, ordered by display order.
func MenuByCategory(s State) map[string][]models.MenuItem {
	grouped := make(map[string][]models.MenuItem)
	for _, item := range s.Menu.Items {
		key := item.CategoryName
		if key == "" {
			key = "Other"
		}
		grouped[key] = append(grouped[key], item)
	}
	for _, items := range grouped {
		sort.SliceStable(items, func(i, j int) bool { return items[i].DisplayOrder < items[j].DisplayOrder })
	}
	return grouped
}
