package live_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/storage"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []live.Message
	closed   bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	var msg live.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) snapshot() ([]live.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]live.Message, len(c.messages))
	copy(out, c.messages)
	return out, c.closed
}

func TestHubBroadcastIsPerDevice(t *testing.T) {
	hub := live.NewHub()
	a1, a2, b := &fakeConn{}, &fakeConn{}, &fakeConn{}
	hub.Register(a1, "a")
	hub.Register(a2, "a")
	hub.Register(b, "b")
	assert.Equal(t, 2, hub.Clients("a"))

	hub.Broadcast("a", live.Message{Event: live.EventLoggedOut})

	msgs, _ := a1.snapshot()
	assert.Len(t, msgs, 1)
	msgs, _ = a2.snapshot()
	assert.Len(t, msgs, 1)
	msgs, _ = b.snapshot()
	assert.Empty(t, msgs)

	hub.Unregister(a1)
	_, closed := a1.snapshot()
	assert.True(t, closed)
	assert.Equal(t, 1, hub.Clients("a"))

	require.NoError(t, hub.Send(a1, live.Message{Event: live.EventState}))
	msgs, _ = a1.snapshot()
	assert.Len(t, msgs, 1, "unregistered conns receive nothing")
}

func TestParseParams(t *testing.T) {
	p, err := live.ParseParams("orders", "", "inProgress")
	require.NoError(t, err)
	assert.Equal(t, workflow.ListInProgress, p.Filter)

	p, err = live.ParseParams("order", "42", "")
	require.NoError(t, err)
	assert.Equal(t, uint(42), p.OrderID)

	_, err = live.ParseParams("order", "x", "")
	assert.Error(t, err)

	_, err = live.ParseParams("orders", "", "bogus")
	assert.ErrorIs(t, err, workflow.ErrUnknownFilter)

	_, err = live.ParseParams("kitchen", "", "")
	assert.ErrorIs(t, err, live.ErrUnknownView)
}

func TestOrderViewRequirement(t *testing.T) {
	p := live.Params{View: live.ViewOrder, OrderID: 1}
	assert.True(t, p.Requirement(guard.Snapshot{}).RequireTableSession)
	staff := p.Requirement(guard.Snapshot{Authenticated: true})
	assert.True(t, staff.RequireAuth)
	assert.ElementsMatch(t, models.StaffRoles, staff.Roles)
}

func TestOrdersSnapshotCarriesActions(t *testing.T) {
	s := store.Reduce(store.State{}, store.AuthSucceeded{Token: "t", User: &models.User{Role: models.RoleChef}})
	s = store.Reduce(s, store.OrdersLoaded{Orders: []models.Order{{ID: 1, Status: models.OrderStatusPending}}})
	s = store.Reduce(s, store.TransitionRequested{OrderID: 1, Target: models.OrderStatusInProgress})

	payload, ok := live.Params{View: live.ViewOrders}.Snapshot(s).(live.OrdersPayload)
	require.True(t, ok)
	require.Len(t, payload.Orders, 1)
	assert.Equal(t, string(models.OrderStatusInProgress), payload.Orders[0].Pending)
	require.Len(t, payload.Orders[0].Actions, 1)
	assert.Equal(t, models.OrderStatusInProgress, payload.Orders[0].Actions[0].Target)
}

func TestSessionPushesUntilUnmounted(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/waiter/notifications", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Notification{{ID: 1, Message: "Order ready"}})
	}))
	defer backend.Close()

	fc := clockwork.NewFakeClock()
	device := services.NewDevice("d1", services.DeviceConfig{
		Storage:    storage.NewMemory(),
		APIBaseURL: backend.URL,
		Clock:      fc,
		QR:         services.DefaultQRGenerator{BaseURL: "http://shell"},
	})

	hub := live.NewHub()
	conn := &fakeConn{}
	sess := live.Mount(context.Background(), hub, conn, device, live.Params{View: live.ViewNotifications}, time.Minute, fc)

	assert.Eventually(t, func() bool {
		msgs, _ := conn.snapshot()
		for _, m := range msgs {
			raw, _ := json.Marshal(m.Data)
			var p live.NotificationsPayload
			if json.Unmarshal(raw, &p) == nil && p.Unread == 1 {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	sess.Unmount()
	sess.Unmount()
	before, closed := conn.snapshot()
	assert.True(t, closed)
	assert.Equal(t, 0, hub.Clients("d1"))

	device.State.Dispatch(store.NotificationRead{ID: 1})
	after, _ := conn.snapshot()
	assert.Len(t, after, len(before))
}

func TestOrderSnapshotHidesOtherTables(t *testing.T) {
	s := store.Reduce(store.State{}, store.TableSessionStarted{Session: models.TableSession{TableID: 7, SessionID: "s"}})
	s = store.Reduce(s, store.OrderReceived{Order: models.Order{ID: 99, Status: models.OrderStatusPending, RestaurantTableID: 9}})
	s = store.Reduce(s, store.OrderReceived{Order: models.Order{ID: 100, Status: models.OrderStatusPending, RestaurantTableID: 7}})

	foreign := live.Params{View: live.ViewOrder, OrderID: 99}.Snapshot(s).(live.OrderPayload)
	assert.False(t, foreign.Found)
	assert.Nil(t, foreign.Order)

	own := live.Params{View: live.ViewOrder, OrderID: 100}.Snapshot(s).(live.OrderPayload)
	assert.True(t, own.Found)

	staff := store.Reduce(s, store.AuthSucceeded{Token: "t", User: &models.User{Role: models.RoleWaiter}})
	assert.True(t, live.Params{View: live.ViewOrder, OrderID: 99}.Snapshot(staff).(live.OrderPayload).Found)
}

func TestDinerOrderViewRejectsOtherTable(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/99", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Order{ID: 99, CustomerName: "someone else", Status: models.OrderStatusPending, RestaurantTableID: 9})
	}))
	defer backend.Close()

	fc := clockwork.NewFakeClock()
	device := services.NewDevice("d2", services.DeviceConfig{
		Storage:    storage.NewMemory(),
		APIBaseURL: backend.URL,
		Clock:      fc,
		QR:         services.DefaultQRGenerator{BaseURL: "http://shell"},
	})
	require.NoError(t, device.Sessions.StartSession(context.Background(), 7, "s", fc.Now().Add(time.Hour), ""))

	hub := live.NewHub()
	conn := &fakeConn{}
	sess := live.Mount(context.Background(), hub, conn, device, live.Params{View: live.ViewOrder, OrderID: 99}, time.Minute, fc)
	defer sess.Unmount()

	assert.Eventually(t, func() bool {
		msgs, _ := conn.snapshot()
		for _, m := range msgs {
			if m.Event == live.EventError {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	msgs, _ := conn.snapshot()
	for _, m := range msgs {
		if m.Event != live.EventState {
			continue
		}
		raw, err := json.Marshal(m.Data)
		require.NoError(t, err)
		var p live.OrderPayload
		require.NoError(t, json.Unmarshal(raw, &p))
		assert.False(t, p.Found)
		assert.NotContains(t, string(raw), "someone else")
	}
	_, cached := store.OrderByID(device.State.State(), 99)
	assert.False(t, cached)
}

type brokenConn struct{}

func (brokenConn) WriteMessage(int, []byte) error { return errors.New("broken pipe") }
func (brokenConn) Close() error { return nil }

func TestFailedErrorPushIsLogged(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"kitchen offline"}`))
	}))
	defer backend.Close()

	fc := clockwork.NewFakeClock()
	device := services.NewDevice("d3", services.DeviceConfig{
		Storage:    storage.NewMemory(),
		APIBaseURL: backend.URL,
		Clock:      fc,
		QR:         services.DefaultQRGenerator{BaseURL: "http://shell"},
	})
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	device.Logger = logger

	sess := live.Mount(context.Background(), live.NewHub(), brokenConn{}, device, live.Params{View: live.ViewNotifications}, time.Minute, fc)
	defer sess.Unmount()

	assert.Eventually(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Message == "live error push failed" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
