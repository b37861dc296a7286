package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

// WebSocketOnly rejects plain HTTP requests to a websocket endpoint.
func WebSocketOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			utils.RespondError(c, http.StatusUpgradeRequired, errors.New("websocket upgrade required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
