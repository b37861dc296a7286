package controllers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type LiveController struct {
	Hub          *live.Hub
	PollInterval time.Duration
	Clock        clockwork.Clock
	upgrader     websocket.Upgrader
}

// NewLiveController accepts sockets from the shell's own host and from
// allowedOrigin.
func NewLiveController(hub *live.Hub, pollInterval time.Duration, clock clockwork.Clock, allowedOrigin string) *LiveController {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	lc := &LiveController{Hub: hub, PollInterval: pollInterval, Clock: clock}
	lc.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || origin == allowedOrigin {
				return true
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}
	return lc
}

// Handle mounts a view for the life of the socket.
func (lc *LiveController) Handle(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	params, err := live.ParseParams(c.Query("view"), c.Query("id"), c.Query("filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if params.View == live.ViewTableOrders || params.View == live.ViewMenu || params.View == live.ViewOrder {
		d.Sessions.LoadSession(c.Request.Context())
	}
	decision := guard.Evaluate(params.Requirement(d.Snapshot(0)), d.Snapshot(0))
	switch decision.Outcome {
	case guard.Loading:
		utils.RespondJSON(c, http.StatusAccepted, "loading", nil)
		return
	case guard.Redirect:
		utils.RespondRedirect(c, http.StatusSeeOther, decision.Location)
		return
	}

	ws, err := lc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		d.Logger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	sess := live.Mount(c.Request.Context(), lc.Hub, ws, d, params, lc.PollInterval, lc.Clock)
	defer sess.Unmount()

	// any client message asks for an immediate refresh
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
		if err := sess.Refresh(c.Request.Context()); err != nil {
			d.Logger.WithError(err).Debug("live refresh failed")
		}
	}
}
