package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
)

type OrderController struct{}

func NewOrderController() *OrderController {
	return &OrderController{}
}

type transitionRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type orderDetail struct {
	Order       models.Order      `json:"order"`
	StatusLabel string            `json:"statusLabel"`
	Total       string            `json:"total"`
	Actions     []workflow.Action `json:"actions"`
	Finished    bool              `json:"finished"`
}

func detail(d *services.Device, o models.Order) orderDetail {
	return orderDetail{
		Order:       o,
		StatusLabel: workflow.StatusLabel(o.Status),
		Total:       utils.FormatMoney(o.Total()),
		Actions:     d.Orders.Actions(o),
		Finished:    workflow.IsFinished(o.Status),
	}
}

func details(d *services.Device, orders []models.Order) []orderDetail {
	out := make([]orderDetail, 0, len(orders))
	for _, o := range orders {
		out = append(out, detail(d, o))
	}
	return out
}

// CustomerOrders lists what the table has ordered during this session.
func (oc *OrderController) CustomerOrders(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	orders, err := d.Orders.FetchTableOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table orders", details(d, orders))
}

// CustomerOrder is the status screen. Orders of other tables are not found.
func (oc *OrderController) CustomerOrder(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := d.Orders.FetchTableOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status", detail(d, *order))
}

func (oc *OrderController) StaffOrders(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	filter, err := workflow.ParseListFilter(c.Query("filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	orders, err := d.Orders.FetchOrders(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"filter": filter,
		"orders": details(d, orders),
	})
}

func (oc *OrderController) StaffOrder(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := d.Orders.FetchOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order details", detail(d, *order))
}

func (oc *OrderController) Transition(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status is required"))
		return
	}
	if !req.Status.Valid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown status %q", req.Status))
		return
	}

	updated, err := d.Orders.RequestTransition(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", detail(d, *updated))
}
