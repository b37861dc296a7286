package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type TableController struct{}

func NewTableController() *TableController {
	return &TableController{}
}

func (tc *TableController) List(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	tables, err := d.Tables.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// QRCode serves the printable PNG for a table.
func (tc *TableController) QRCode(c *gin.Context) {
	d, ok := device(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	png, table, err := d.Tables.QRCode(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	name := table.TableNumber
	if name == "" {
		name = fmt.Sprint(table.ID)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="table-%s.png"`, name))
	c.Data(http.StatusOK, "image/png", png)
}
