package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

const (
	cartModeAdd = "add"
	cartModeSet = "set"
)

type CartController struct {
	Hub *live.Hub
}

func NewCartController(hub *live.Hub) *CartController {
	return &CartController{Hub: hub}
}

type cartItemRequest struct {
	MenuItemID          uint    `json:"menuItemId" binding:"required"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions"`
	// Mode is "add" (quantity is a delta, the default) or "set".
	Mode string `json:"mode"`
}

type cartUpdateRequest struct {
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (cc *CartController) Get(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	cc.respondCart(c, d, http.StatusOK, "Cart")
}

func (cc *CartController) AddItem(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("menuItemId is required"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item := models.CartItem{
		MenuItemID:          req.MenuItemID,
		Name:                req.Name,
		UnitPrice:           req.UnitPrice,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	}
	// the loaded menu wins over what the browser sent
	if known, found := menuItem(d, req.MenuItemID); found {
		if !known.Available {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("%s is not available right now", known.Name))
			return
		}
		item.Name = known.Name
		item.UnitPrice = known.Price
	}
	if item.UnitPrice < 0 {
		respondServiceError(c, fmt.Errorf("%w: negative price", services.ErrInvalidCartItem))
		return
	}

	var err error
	switch req.Mode {
	case "", cartModeAdd:
		err = d.Cart.Add(item)
	case cartModeSet:
		err = d.Cart.Set(item)
	default:
		err = fmt.Errorf("%w: unknown mode %q", services.ErrInvalidCartItem, req.Mode)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	cc.respondCart(c, d, http.StatusOK, "Cart updated")
}

func (cc *CartController) UpdateItem(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "menu_id")
	if !ok {
		return
	}
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid cart update"))
		return
	}
	if err := d.Cart.Update(id, req.Quantity, req.SpecialInstructions); err != nil {
		respondServiceError(c, err)
		return
	}
	cc.respondCart(c, d, http.StatusOK, "Cart updated")
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "menu_id")
	if !ok {
		return
	}
	d.Cart.Remove(id)
	cc.respondCart(c, d, http.StatusOK, "Item removed")
}

func (cc *CartController) Clear(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	d.Cart.Clear()
	cc.respondCart(c, d, http.StatusOK, "Cart cleared")
}

// Submit places the cart as an order and points the diner at its status page.
func (cc *CartController) Submit(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order request"))
		return
	}

	orderID, err := d.Cart.Submit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	redirect := fmt.Sprintf("/customer/orders/%d", orderID)
	cc.Hub.Broadcast(d.ID, live.Message{Event: live.EventOrderSubmitted, Data: gin.H{"order_id": orderID}})
	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"order_id": orderID,
		"redirect": redirect,
	})
}

func (cc *CartController) respondCart(c *gin.Context, d *services.Device, code int, message string) {
	totals := d.Cart.Totals()
	utils.RespondJSON(c, code, message, gin.H{
		"items":  d.Cart.Items(),
		"totals": totals,
		"display": gin.H{
			"subtotal": utils.FormatMoney(totals.Subtotal),
			"tax":      utils.FormatMoney(totals.Tax),
			"total":    utils.FormatMoney(totals.Total),
		},
	})
}

func menuItem(d *services.Device, id uint) (models.MenuItem, bool) {
	for _, item := range d.State.State().Menu.Items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
