package live

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
)

// Session is one mounted view: a poller refreshing the device state and a
// store subscription pushing every change down the socket.
type Session struct {
	hub    *Hub
	conn   Conn
	device *services.Device
	params Params

	poller      *services.Poller
	unsubscribe func()
	release     func()
	cancel      context.CancelFunc
	once        sync.Once
}

func Mount(ctx context.Context, hub *Hub, conn Conn, device *services.Device, params Params, interval time.Duration, clock clockwork.Clock) *Session {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{hub: hub, conn: conn, device: device, params: params, cancel: cancel}

	s.release = device.Hold()
	hub.Register(conn, device.ID)
	s.unsubscribe = device.State.Subscribe(s.push)
	s.push(device.State.State())

	s.poller = services.NewPoller(params.Fetch(device), services.PollerOptions{
		Enabled:  true,
		Interval: interval,
		OnError:  s.fail,
	}, clock)
	s.poller.Start(ctx)

	device.Logger.WithField("view", params.View).Debug("live view mounted")
	return s
}

// Refresh runs the view's fetch now, outside the poll schedule.
func (s *Session) Refresh(ctx context.Context) error {
	return s.poller.Refetch(ctx)
}

// Unmount is safe to call more than once. Responses still in flight land in
// the device state but are no longer pushed.
func (s *Session) Unmount() {
	s.once.Do(func() {
		s.unsubscribe()
		s.poller.Stop()
		s.cancel()
		s.hub.Unregister(s.conn)
		s.release()
		s.device.Logger.WithField("view", s.params.View).Debug("live view unmounted")
	})
}

func (s *Session) push(state store.State) {
	if err := s.hub.Send(s.conn, Message{Event: EventState, Data: s.params.Snapshot(state)}); err != nil {
		s.device.Logger.WithError(err).Debug("live push failed")
	}
}

func (s *Session) fail(err error) {
	if sendErr := s.hub.Send(s.conn, Message{Event: EventError, Data: api.Message(err, err.Error())}); sendErr != nil {
		s.device.Logger.WithError(sendErr).Debug("live error push failed")
	}
}
