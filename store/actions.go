package store

import "github.com/selcanmusayeva/restaurant-ordering-frontend/models"

// Action is anything the reducer understands.
type Action interface {
	Type() string
}

// auth
type AuthRestoring struct{}
type AuthSucceeded struct {
	Token string
	User  *models.User
}
type AuthFailed struct{ Error string }
type LoggedOut struct{}

// table session
type TableSessionStarted struct{ Session models.TableSession }
type TableSessionCleared struct{}

// cart
type CartItemAdded struct{ Item models.CartItem }
type CartItemSet struct{ Item models.CartItem }
type CartItemUpdated struct {
	MenuItemID          uint
	Quantity            int
	SpecialInstructions string
}
type CartItemRemoved struct{ MenuItemID uint }
type CartCleared struct{}

// orders
type OrderSubmitting struct{}
type OrderSubmitted struct{ Order models.Order }
type OrderSubmitFailed struct{ Error string }
type OrdersRequested struct{ Filter string }
type OrdersLoaded struct {
	Filter string
	Orders []models.Order
}
type OrdersFailed struct{ Error string }
type OrderSelected struct{ ID uint }
type OrderReceived struct{ Order models.Order }
type OrderNotFound struct{ ID uint }
type TransitionRequested struct {
	OrderID uint
	Target  models.OrderStatus
}
type TransitionFailed struct {
	OrderID uint
	Error   string
}
type OrdersErrorDismissed struct{}

// menu
type MenuRequested struct{}
type MenuLoaded struct{ Items []models.MenuItem }
type CategoriesLoaded struct{ Categories []models.Category }
type MenuItemSaved struct{ Item models.MenuItem }
type MenuItemDeleted struct{ ID uint }
type MenuFailed struct{ Error string }

// tables
type TablesLoaded struct{ Tables []models.Table }
type TablesFailed struct{ Error string }

// notifications
type NotificationsLoaded struct{ Items []models.Notification }
type NotificationRead struct{ ID uint }
type NotificationsFailed struct{ Error string }

// statistics
type StatisticsLoaded struct {
	Kitchen *models.KitchenStatistics
	System  *models.SystemStatistics
}
type StatisticsFailed struct{ Error string }

func (AuthRestoring) Type() string        { return "auth/restoring" }
func (AuthSucceeded) Type() string        { return "auth/succeeded" }
func (AuthFailed) Type() string           { return "auth/failed" }
func (LoggedOut) Type() string            { return "auth/loggedOut" }
func (TableSessionStarted) Type() string  { return "session/started" }
func (TableSessionCleared) Type() string  { return "session/cleared" }
func (CartItemAdded) Type() string        { return "cart/added" }
func (CartItemSet) Type() string          { return "cart/set" }
func (CartItemUpdated) Type() string      { return "cart/updated" }
func (CartItemRemoved) Type() string      { return "cart/removed" }
func (CartCleared) Type() string          { return "cart/cleared" }
func (OrderSubmitting) Type() string      { return "orders/submitting" }
func (OrderSubmitted) Type() string       { return "orders/submitted" }
func (OrderSubmitFailed) Type() string    { return "orders/submitFailed" }
func (OrdersRequested) Type() string      { return "orders/requested" }
func (OrdersLoaded) Type() string         { return "orders/loaded" }
func (OrdersFailed) Type() string         { return "orders/failed" }
func (OrderSelected) Type() string        { return "orders/selected" }
func (OrderReceived) Type() string        { return "orders/received" }
func (OrderNotFound) Type() string        { return "orders/notFound" }
func (TransitionRequested) Type() string  { return "orders/transitionRequested" }
func (TransitionFailed) Type() string     { return "orders/transitionFailed" }
func (OrdersErrorDismissed) Type() string { return "orders/errorDismissed" }
func (MenuRequested) Type() string        { return "menu/requested" }
func (MenuLoaded) Type() string           { return "menu/loaded" }
func (CategoriesLoaded) Type() string     { return "menu/categoriesLoaded" }
func (MenuItemSaved) Type() string        { return "menu/itemSaved" }
func (MenuItemDeleted) Type() string      { return "menu/itemDeleted" }
func (MenuFailed) Type() string           { return "menu/failed" }
func (TablesLoaded) Type() string         { return "tables/loaded" }
func (TablesFailed) Type() string         { return "tables/failed" }
func (NotificationsLoaded) Type() string  { return "notifications/loaded" }
func (NotificationRead) Type() string     { return "notifications/read" }
func (NotificationsFailed) Type() string  { return "notifications/failed" }
func (StatisticsLoaded) Type() string     { return "statistics/loaded" }
func (StatisticsFailed) Type() string     { return "statistics/failed" }
