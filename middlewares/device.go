package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
)

const (
	DefaultDeviceCookie = "device_id"
	deviceContextKey    = "device"
	deviceCookieMaxAge  = 365 * 24 * 60 * 60
)

// DeviceMiddleware identifies the browser by cookie, issuing a new id on first
// contact, and attaches its restored Device to the request.
func DeviceMiddleware(registry *services.DeviceRegistry, cookieName string, secure bool) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = DefaultDeviceCookie
	}
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || !validDeviceID(id) {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id, deviceCookieMaxAge, "/", "", secure, true)
		}

		c.Set(deviceContextKey, registry.Get(c.Request.Context(), id))
		c.Next()
	}
}

// CurrentDevice returns the device attached by DeviceMiddleware.
func CurrentDevice(c *gin.Context) *services.Device {
	v, ok := c.Get(deviceContextKey)
	if !ok {
		return nil
	}
	d, _ := v.(*services.Device)
	return d
}

func validDeviceID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
