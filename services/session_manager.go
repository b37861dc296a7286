package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/storage"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/sirupsen/logrus"
)

const DefaultSessionTTL = 2 * time.Hour

// SessionManager keeps the table session of one device in both its durable
// storage and its in-memory state.
type SessionManager struct {
	KV     storage.KeyValue
	State  *store.Store
	Tables TableResolver
	Clock  clockwork.Clock
	TTL    time.Duration
	Logger logrus.FieldLogger
}

func NewSessionManager(kv storage.KeyValue, st *store.Store, tables TableResolver, clock clockwork.Clock, ttl time.Duration) *SessionManager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{KV: kv, State: st, Tables: tables, Clock: clock, TTL: ttl, Logger: utils.InfoLogger}
}

// StartSession overwrites any previous session. The in-memory state is
// updated even if the durable write fails.
func (m *SessionManager) StartSession(ctx context.Context, tableID uint, sessionID string, expiresAt time.Time, tableUUID string) error {
	sess := models.TableSession{
		TableID:   tableID,
		SessionID: sessionID,
		TableUUID: tableUUID,
		ExpiresAt: expiresAt,
	}
	m.State.Dispatch(store.TableSessionStarted{Session: sess})

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode table session: %w", err)
	}
	if err := m.KV.Set(ctx, storage.KeyTableSession, string(raw)); err != nil {
		return fmt.Errorf("persist table session: %w", err)
	}
	m.Logger.WithFields(logrus.Fields{
		"table_id":   tableID,
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("table session started")
	return nil
}

// LoadSession hydrates the in-memory session from durable storage and purges
// expired or malformed records. It reports whether a session is active.
func (m *SessionManager) LoadSession(ctx context.Context) bool {
	raw, ok, err := m.KV.Get(ctx, storage.KeyTableSession)
	if err != nil {
		m.Logger.WithError(err).Warn("could not read table session")
		return m.HasActiveSession()
	}
	if !ok {
		return m.HasActiveSession()
	}

	var sess models.TableSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || sess.TableID == 0 || sess.SessionID == "" || sess.ExpiresAt.IsZero() {
		m.Logger.Warn("removing malformed table session")
		m.purge(ctx)
		return false
	}
	if !sess.ValidAt(m.Clock.Now()) {
		m.Logger.WithField("table_id", sess.TableID).Info("table session expired")
		m.purge(ctx)
		return false
	}

	m.State.Dispatch(store.TableSessionStarted{Session: sess})
	return true
}

// EndSession clears the session and returns where to navigate next.
func (m *SessionManager) EndSession(ctx context.Context) string {
	m.purge(ctx)
	return guard.PathScan
}

func (m *SessionManager) purge(ctx context.Context) {
	m.State.Dispatch(store.TableSessionCleared{})
	if err := m.KV.Remove(ctx, storage.KeyTableSession); err != nil {
		m.Logger.WithError(err).Error("could not remove table session")
	}
}

// HasActiveSession does not re-check expiry; LoadSession does.
func (m *SessionManager) HasActiveSession() bool {
	return store.HasActiveSession(m.State.State())
}

func (m *SessionManager) Current() *models.TableSession {
	return store.ActiveSession(m.State.State())
}

// StartFromCode starts a session from a scanned code: a numeric table id, a
// table UUID, or a URL ending in either.
func (m *SessionManager) StartFromCode(ctx context.Context, code string) (*models.TableSession, error) {
	code = strings.TrimSpace(code)
	if u, err := url.Parse(code); err == nil && u.Scheme != "" && u.Host != "" {
		code = path.Base(strings.TrimSuffix(u.Path, "/"))
	}
	if code == "" || code == "." || code == "/" {
		return nil, ErrInvalidTableCode
	}

	if id, err := strconv.ParseUint(code, 10, 64); err == nil {
		if id == 0 {
			return nil, ErrInvalidTableCode
		}
		return m.begin(ctx, uint(id), ""), nil
	}

	parsed, err := uuid.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableCode, code)
	}
	table, err := m.Tables.GetTableByUUID(ctx, parsed.String())
	if err != nil {
		if api.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, parsed)
		}
		return nil, fmt.Errorf("resolve table %s: %w", parsed, err)
	}
	if table.ID == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, parsed)
	}
	return m.begin(ctx, table.ID, parsed.String()), nil
}

// BootstrapFromURL starts a session for a table id taken from the URL unless
// one is already active.
func (m *SessionManager) BootstrapFromURL(ctx context.Context, tableID uint) (*models.TableSession, error) {
	if m.LoadSession(ctx) {
		return m.Current(), nil
	}
	if tableID == 0 {
		return nil, ErrInvalidTableCode
	}
	return m.begin(ctx, tableID, ""), nil
}

// begin starts a fresh session. A failed write is logged; the session still
// holds in memory for this process.
func (m *SessionManager) begin(ctx context.Context, tableID uint, tableUUID string) *models.TableSession {
	expires := m.Clock.Now().Add(m.TTL)
	if err := m.StartSession(ctx, tableID, uuid.NewString(), expires, tableUUID); err != nil {
		m.Logger.WithError(err).Error("table session not persisted")
	}
	return m.Current()
}
