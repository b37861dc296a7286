package services

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/storage"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/sirupsen/logrus"
)

type DeviceConfig struct {
	// Storage backs every device; each device gets its own namespace in it.
	Storage    storage.KeyValue
	APIBaseURL string
	HTTPClient api.HTTPClient
	TaxRate    float64
	SessionTTL time.Duration
	Clock      clockwork.Clock
	QR         QRGenerator
	// IdleTTL is how long a device stays in memory after its last request.
	IdleTTL time.Duration
}

const defaultIdleTTL = 30 * time.Minute

// Device is the client state of one browser and the services acting on it.
type Device struct {
	ID      string
	State   *store.Store
	Storage storage.KeyValue
	Client  *api.Client
	Logger  logrus.FieldLogger

	Sessions      *SessionManager
	Cart          *CartService
	Orders        *OrderService
	Auth          *AuthService
	Menu          *MenuService
	Tables        *TableService
	Notifications *NotificationService
	Statistics    *StatisticsService

	restoreOnce sync.Once
	holds       atomic.Int32
}

func NewDevice(id string, cfg DeviceConfig) *Device {
	logger := utils.InfoLogger.WithField("device", id)
	kv := storage.Namespace(cfg.Storage, "device:"+id)
	tokens := storage.Tokens(kv)
	st := store.New()

	d := &Device{ID: id, State: st, Storage: kv, Logger: logger}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	d.Client = api.NewClient(cfg.APIBaseURL, tokens,
		api.WithHTTPClient(httpClient),
		api.WithLogger(logger),
		api.WithAuthFailureHandler(func() { d.Auth.HandleAuthFailure() }),
	)

	d.Sessions = NewSessionManager(kv, st, d.Client, cfg.Clock, cfg.SessionTTL)
	d.Sessions.Logger = logger
	d.Cart = NewCartService(st, d.Client, cfg.TaxRate)
	d.Cart.Logger = logger
	d.Orders = NewOrderService(st, d.Client)
	d.Orders.Logger = logger
	d.Auth = NewAuthService(st, d.Client, tokens, cfg.Clock)
	d.Auth.Logger = logger
	d.Menu = NewMenuService(st, d.Client)
	d.Menu.Logger = logger
	d.Tables = NewTableService(st, d.Client, cfg.QR)
	d.Notifications = NewNotificationService(st, d.Client)
	d.Statistics = NewStatisticsService(st, d.Client)
	return d
}

// Restore runs once per device: the stored token and table session are
// brought back into memory.
func (d *Device) Restore(ctx context.Context) {
	d.restoreOnce.Do(func() {
		if err := d.Auth.Restore(ctx); err != nil {
			d.Logger.WithError(err).Info("no signed in user restored")
		}
		d.Sessions.LoadSession(ctx)
	})
}

// Hold keeps the device in memory until the returned release is called.
func (d *Device) Hold() (release func()) {
	d.holds.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { d.holds.Add(-1) })
	}
}

func (d *Device) held() bool {
	return d.holds.Load() > 0
}

// Snapshot is the guard's view of this device.
func (d *Device) Snapshot(urlTableID uint) guard.Snapshot {
	s := d.State.State()
	return guard.Snapshot{
		Loading:         s.Auth.Loading,
		Authenticated:   s.Auth.Authenticated(),
		Role:            store.UserRole(s),
		HasTableSession: store.HasActiveSession(s),
		URLTableID:      urlTableID,
	}
}

type DeviceRegistry struct {
	cfg      DeviceConfig
	mu       sync.Mutex
	devices  map[string]*Device
	lastSeen map[string]time.Time
}

func NewDeviceRegistry(cfg DeviceConfig) *DeviceRegistry {
	if cfg.Storage == nil {
		cfg.Storage = storage.NewMemory()
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.QR == nil {
		cfg.QR = DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}
	return &DeviceRegistry{
		cfg:      cfg,
		devices:  make(map[string]*Device),
		lastSeen: make(map[string]time.Time),
	}
}

// Get returns the device with id, creating and restoring it on first use.
func (r *DeviceRegistry) Get(ctx context.Context, id string) *Device {
	r.mu.Lock()
	d, ok := r.devices[id]
	if !ok {
		d = NewDevice(id, r.cfg)
		r.devices[id] = d
	}
	r.lastSeen[id] = r.cfg.Clock.Now()
	r.mu.Unlock()

	d.Restore(ctx)
	return d
}

// Forget drops the in-memory state of a device; its durable storage stays.
func (r *DeviceRegistry) Forget(id string) {
	r.mu.Lock()
	delete(r.devices, id)
	delete(r.lastSeen, id)
	r.mu.Unlock()
}

// Sweep forgets every device idle for IdleTTL or longer, except devices
// with an open live view. It returns how many were forgotten.
func (r *DeviceRegistry) Sweep() int {
	now := r.cfg.Clock.Now()

	r.mu.Lock()
	var idle []string
	for id, seen := range r.lastSeen {
		if now.Sub(seen) < r.cfg.IdleTTL {
			continue
		}
		if d, ok := r.devices[id]; ok && d.held() {
			continue
		}
		idle = append(idle, id)
	}
	r.mu.Unlock()

	for _, id := range idle {
		r.Forget(id)
	}
	if len(idle) > 0 {
		utils.InfoLogger.WithField("devices", len(idle)).Debug("idle devices evicted")
	}
	return len(idle)
}

// StartSweeper runs Sweep every half IdleTTL until ctx is cancelled.
func (r *DeviceRegistry) StartSweeper(ctx context.Context) {
	ticker := r.cfg.Clock.NewTicker(r.cfg.IdleTTL / 2)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				r.Sweep()
			}
		}
	}()
}

func (r *DeviceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.devices)
}
