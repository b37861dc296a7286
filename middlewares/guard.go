package middlewares

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/sirupsen/logrus"
)

// Guard re-evaluates req on every request to the route.
func Guard(req guard.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		device := CurrentDevice(c)
		if device == nil {
			utils.RespondError(c, http.StatusInternalServerError, errors.New("device not identified"))
			c.Abort()
			return
		}

		if req.RequireTableSession {
			device.Sessions.LoadSession(c.Request.Context())
		}

		var urlTableID uint
		if req.AllowURLTable {
			if id, err := strconv.ParseUint(c.Param("tableId"), 10, 64); err == nil {
				urlTableID = uint(id)
			}
		}

		decision := guard.Evaluate(req, device.Snapshot(urlTableID))
		switch decision.Outcome {
		case guard.Loading:
			utils.RespondJSON(c, http.StatusAccepted, "loading", nil)
			c.Abort()
			return
		case guard.Redirect:
			utils.InfoLogger.WithFields(logrus.Fields{
				"device": device.ID,
				"path":   c.Request.URL.Path,
				"to":     decision.Location,
			}).Debug("guard redirect")
			utils.RespondRedirect(c, http.StatusSeeOther, decision.Location)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return Guard(guard.Requirement{RequireAuth: true, Roles: roles})
}

func RequireStaff() gin.HandlerFunc {
	return RequireRoles(models.StaffRoles...)
}

func RequireAuth() gin.HandlerFunc {
	return Guard(guard.Requirement{RequireAuth: true})
}

// RequireTableSession guards diner routes; signed-in staff are sent home.
func RequireTableSession() gin.HandlerFunc {
	return Guard(guard.Requirement{RequireTableSession: true, CustomerOnly: true})
}

// TableSessionOrURL also admits a request carrying a :tableId path parameter.
func TableSessionOrURL() gin.HandlerFunc {
	return Guard(guard.Requirement{RequireTableSession: true, AllowURLTable: true, CustomerOnly: true})
}
