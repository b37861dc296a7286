package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type ScanController struct {
	Hub *live.Hub
}

func NewScanController(hub *live.Hub) *ScanController {
	return &ScanController{Hub: hub}
}

type scanRequest struct {
	Code string `json:"code" binding:"required"`
}

// Status tells the scan screen whether the device already sits at a table.
func (sc *ScanController) Status(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	if d.Sessions.LoadSession(c.Request.Context()) {
		utils.RespondJSON(c, http.StatusOK, "Table session active", gin.H{
			"session":  d.Sessions.Current(),
			"redirect": guard.PathCustomerMenu,
		})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Scan a table code to start ordering", gin.H{"session": nil})
}

// Scan starts a table session from a typed or scanned code.
func (sc *ScanController) Scan(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("table code is required"))
		return
	}

	sess, err := d.Sessions.StartFromCode(c.Request.Context(), req.Code)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table session started", gin.H{
		"session":  sess,
		"redirect": guard.PathCustomerMenu,
	})
}

// Link is where a printed QR code points.
func (sc *ScanController) Link(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	if _, err := d.Sessions.StartFromCode(c.Request.Context(), c.Param("code")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondRedirect(c, http.StatusSeeOther, guard.PathCustomerMenu)
}

func (sc *ScanController) End(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	location := d.Sessions.EndSession(c.Request.Context())
	sc.Hub.Broadcast(d.ID, live.Message{Event: live.EventSessionEnded, Data: gin.H{"redirect": location}})
	utils.RespondRedirect(c, http.StatusSeeOther, location)
}
