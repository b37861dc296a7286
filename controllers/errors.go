package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/middlewares"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
)

var errNoDevice = errors.New("device not identified")

var validationErrors = []error{
	services.ErrInvalidTableCode,
	services.ErrEmptyCart,
	services.ErrMissingCustomerName,
	services.ErrInvalidCartItem,
	services.ErrMissingCredentials,
	services.ErrInvalidMenuItem,
	workflow.ErrUnknownFilter,
}

// StatusFor maps a service error onto the status the shell answers with.
func StatusFor(err error) int {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	switch {
	case errors.Is(err, workflow.ErrTransitionNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, services.ErrTableNotFound), errors.Is(err, services.ErrOrderNotFound), api.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, api.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	switch code := api.StatusCode(err); code {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusConflict, http.StatusUnprocessableEntity:
		return code
	}
	return http.StatusBadGateway
}

func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoActiveSession) {
		utils.RespondRedirect(c, http.StatusSeeOther, guard.PathScan)
		return
	}
	// refresh failed and the device was signed out
	if errors.Is(err, api.ErrUnauthorized) {
		utils.RespondRedirect(c, http.StatusSeeOther, guard.PathLogin)
		return
	}
	code := StatusFor(err)
	if code == http.StatusBadGateway {
		utils.ErrorLogger.WithError(err).WithField("path", c.Request.URL.Path).Error("backend call failed")
		utils.RespondError(c, code, errors.New(api.Message(err, "The restaurant service is unavailable, please try again")))
		return
	}
	utils.RespondError(c, code, errors.New(api.Message(err, err.Error())))
}

func device(c *gin.Context) (*services.Device, bool) {
	d := middlewares.CurrentDevice(c)
	if d == nil {
		utils.RespondError(c, http.StatusInternalServerError, errNoDevice)
		return nil, false
	}
	return d, true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}
