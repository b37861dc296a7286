package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type AuthController struct {
	Hub *live.Hub
}

func NewAuthController(hub *live.Hub) *AuthController {
	return &AuthController{Hub: hub}
}

func (ac *AuthController) Login(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("username and password are required"))
		return
	}

	user, home, err := d.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"user":     user,
		"redirect": home,
	})
}

// Logout tells every open view of the device before redirecting.
func (ac *AuthController) Logout(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	location := d.Auth.Logout(c.Request.Context())
	ac.Hub.Broadcast(d.ID, live.Message{Event: live.EventLoggedOut, Data: gin.H{"redirect": location}})
	utils.RespondRedirect(c, http.StatusSeeOther, location)
}

func (ac *AuthController) Me(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current user", d.State.State().Auth.User)
}
