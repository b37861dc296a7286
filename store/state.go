// Package store is the client-side state container of one device: a typed
// state tree changed only by dispatching actions through a pure reducer.
package store

import "github.com/selcanmusayeva/restaurant-ordering-frontend/models"

type AuthState struct {
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"-"`
	Loading bool         `json:"loading"`
	Error   string       `json:"error,omitempty"`
}

func (a AuthState) Authenticated() bool {
	return a.Token != ""
}

type SessionState struct {
	Active *models.TableSession `json:"active,omitempty"`
}

type CartState struct {
	Items []models.CartItem `json:"items"`
}

// OrdersState is normalized: ByID caches every order seen, List is the order
// of the last fetched list.
type OrdersState struct {
	ByID       map[uint]models.Order       `json:"byId"`
	List       []uint                      `json:"list"`
	Filter     string                      `json:"filter,omitempty"`
	CurrentID  uint                        `json:"currentId,omitempty"`
	InFlight   map[uint]models.OrderStatus `json:"inFlight,omitempty"`
	Submitting bool                        `json:"submitting"`
	Loading    bool                        `json:"loading"`
	Error      string                      `json:"error,omitempty"`
}

type MenuState struct {
	Items      []models.MenuItem `json:"items"`
	Categories []models.Category `json:"categories"`
	Loading    bool              `json:"loading"`
	Error      string            `json:"error,omitempty"`
}

type TablesState struct {
	Tables []models.Table `json:"tables"`
	Error  string         `json:"error,omitempty"`
}

type NotificationsState struct {
	Items []models.Notification `json:"items"`
	Error string                `json:"error,omitempty"`
}

type StatisticsState struct {
	Kitchen *models.KitchenStatistics `json:"kitchen,omitempty"`
	System  *models.SystemStatistics  `json:"system,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

type State struct {
	Auth          AuthState          `json:"auth"`
	Session       SessionState       `json:"session"`
	Cart          CartState          `json:"cart"`
	Orders        OrdersState        `json:"orders"`
	Menu          MenuState          `json:"menu"`
	Tables        TablesState        `json:"tables"`
	Notifications NotificationsState `json:"notifications"`
	Statistics    StatisticsState    `json:"statistics"`
}
