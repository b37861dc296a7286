package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// PublicMenu serves a menu link that carries the table id, starting a
// session for it when the device has none.
func (mc *MenuController) PublicMenu(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	tableID, ok := uintParam(c, "tableId")
	if !ok {
		return
	}
	if _, err := d.Sessions.BootstrapFromURL(c.Request.Context(), tableID); err != nil {
		respondServiceError(c, err)
		return
	}
	mc.respondAvailable(c, d)
}

func (mc *MenuController) CustomerMenu(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	mc.respondAvailable(c, d)
}

func (mc *MenuController) respondAvailable(c *gin.Context, d *services.Device) {
	if _, err := d.Menu.LoadAvailable(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	s := d.State.State()
	utils.RespondJSON(c, http.StatusOK, "Menu", gin.H{
		"session":    store.ActiveSession(s),
		"categories": s.Menu.Categories,
		"items":      store.MenuByCategory(s),
		"cart":       d.Cart.Totals(),
	})
}

// ListAll includes unavailable items for curation.
func (mc *MenuController) ListAll(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	items, err := d.Menu.LoadAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", gin.H{
		"items":      items,
		"categories": d.State.State().Menu.Categories,
	})
}

func (mc *MenuController) Create(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and category are required"))
		return
	}
	item, err := d.Menu.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

func (mc *MenuController) Update(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "menu_id")
	if !ok {
		return
	}
	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name and category are required"))
		return
	}
	item, err := d.Menu.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

type availabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func (mc *MenuController) SetAvailability(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "menu_id")
	if !ok {
		return
	}
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("available is required"))
		return
	}
	item, err := d.Menu.SetAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

func (mc *MenuController) Delete(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "menu_id")
	if !ok {
		return
	}
	if err := d.Menu.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}
