package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/config"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/controllers"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/guard"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/live"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/middlewares"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/services"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

type Dependencies struct {
	Config   *config.Config
	Registry *services.DeviceRegistry
	Hub      *live.Hub
	Clock    clockwork.Clock
}

func SetupRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	if deps.Hub == nil {
		deps.Hub = live.NewHub()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(20*time.Millisecond, 50).RateLimit())
	r.Use(middlewares.DeviceMiddleware(deps.Registry, cfg.DeviceCookie, cfg.SecureCookies))

	scanCtrl := controllers.NewScanController(deps.Hub)
	menuCtrl := controllers.NewMenuController()
	cartCtrl := controllers.NewCartController(deps.Hub)
	orderCtrl := controllers.NewOrderController()
	authCtrl := controllers.NewAuthController(deps.Hub)
	tableCtrl := controllers.NewTableController()
	notificationCtrl := controllers.NewNotificationController()
	dashboardCtrl := controllers.NewDashboardController()
	liveCtrl := controllers.NewLiveController(deps.Hub, cfg.PollInterval, deps.Clock, cfg.CORSOrigin)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET(guard.PathRoot, home)

	strict := middlewares.NewStrictRateLimiter()
	r.GET(guard.PathScan, scanCtrl.Status)
	r.POST(guard.PathScan, strict, scanCtrl.Scan)
	r.GET("/t/:code", strict, scanCtrl.Link)
	r.POST("/session/end", scanCtrl.End)
	r.POST(guard.PathLogin, strict, authCtrl.Login)
	r.POST("/logout", authCtrl.Logout)
	r.GET("/me", middlewares.RequireAuth(), authCtrl.Me)

	r.GET("/public/menu/:tableId", middlewares.TableSessionOrURL(), menuCtrl.PublicMenu)

	r.GET("/live", middlewares.WebSocketOnly(), liveCtrl.Handle)

	// ----------------------------------------------------------------
	//                      CUSTOMER (table session)
	// ----------------------------------------------------------------
	customer := r.Group("/customer")
	customer.Use(middlewares.RequireTableSession())
	{
		customer.GET("/menu", menuCtrl.CustomerMenu)

		customer.GET("/cart", cartCtrl.Get)
		customer.DELETE("/cart", cartCtrl.Clear)
		customer.POST("/cart/items", cartCtrl.AddItem)
		customer.PATCH("/cart/items/:menu_id", cartCtrl.UpdateItem)
		customer.DELETE("/cart/items/:menu_id", cartCtrl.RemoveItem)
		customer.POST("/cart/submit", cartCtrl.Submit)

		customer.GET("/orders", orderCtrl.CustomerOrders)
		customer.GET("/orders/:id", orderCtrl.CustomerOrder)
	}

	// ----------------------------------------------------------------
	//                      STAFF
	// ----------------------------------------------------------------
	staff := r.Group("/staff")
	staff.Use(middlewares.RequireStaff())
	{
		staff.GET("/orders", orderCtrl.StaffOrders)
		staff.GET("/orders/:id", orderCtrl.StaffOrder)
		staff.POST("/orders/:id/transition", orderCtrl.Transition)

		floor := staff.Group("")
		floor.Use(middlewares.RequireRoles(models.RoleManager, models.RoleWaiter))
		floor.GET("/tables", tableCtrl.List)

		kitchen := staff.Group("/notifications")
		kitchen.Use(middlewares.RequireRoles(models.RoleWaiter, models.RoleChef))
		kitchen.GET("", notificationCtrl.List)
		kitchen.POST("/:id/read", notificationCtrl.MarkRead)

		manager := staff.Group("")
		manager.Use(middlewares.RequireRoles(models.RoleManager))
		manager.GET("/tables/:id/qr", tableCtrl.QRCode)
		manager.GET("/menu", menuCtrl.ListAll)
		manager.POST("/menu", menuCtrl.Create)
		manager.PUT("/menu/:menu_id", menuCtrl.Update)
		manager.PATCH("/menu/:menu_id/availability", menuCtrl.SetAvailability)
		manager.DELETE("/menu/:menu_id", menuCtrl.Delete)
	}

	managerOnly := r.Group("/manager")
	managerOnly.Use(middlewares.RequireRoles(models.RoleManager))
	managerOnly.GET("/dashboard", dashboardCtrl.Get)

	return r
}

// home sends the device wherever it belongs right now.
func home(c *gin.Context) {
	d := middlewares.CurrentDevice(c)
	location := guard.PathScan
	if d != nil {
		snap := d.Snapshot(0)
		switch {
		case snap.Authenticated:
			location = guard.HomeFor(snap.Role)
		case d.Sessions.LoadSession(c.Request.Context()):
			location = guard.PathCustomerMenu
		}
	}
	utils.RespondRedirect(c, http.StatusSeeOther, location)
}
