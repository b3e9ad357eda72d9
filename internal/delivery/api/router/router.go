// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sweets/config"
	"sweets/internal/delivery/api/middleware"
	"sweets/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	PaymentHandler    *handler.PaymentHandler
	SecureLinkHandler *handler.SecureLinkHandler
	ReviewHandler     *handler.ReviewHandler
	ComplaintHandler  *handler.ComplaintHandler
	ChatHandler       *handler.ChatHandler
	AdminHandler      *handler.AdminHandler
	DeviceHandler     *handler.DeviceHandler
	MediaHandler      *handler.MediaHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	user       *handler.UserHandler
	catalog    *handler.CatalogHandler
	cart       *handler.CartHandler
	order      *handler.OrderHandler
	payment    *handler.PaymentHandler
	secureLink *handler.SecureLinkHandler
	review     *handler.ReviewHandler
	complaint  *handler.ComplaintHandler
	chat       *handler.ChatHandler
	admin      *handler.AdminHandler
	device     *handler.DeviceHandler
	media      *handler.MediaHandler
	test       *handler.TestHandler
	auth       *middleware.AuthMiddleware
	config     *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:       params.UserHandler,
		catalog:    params.CatalogHandler,
		cart:       params.CartHandler,
		order:      params.OrderHandler,
		payment:    params.PaymentHandler,
		secureLink: params.SecureLinkHandler,
		review:     params.ReviewHandler,
		complaint:  params.ComplaintHandler,
		chat:       params.ChatHandler,
		admin:      params.AdminHandler,
		device:     params.DeviceHandler,
		media:      params.MediaHandler,
		test:       params.TestHandler,
		auth:       params.AuthMiddleware,
		config:     params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.user.Register)
		authGroup.POST("/login", r.user.Login)
		authGroup.POST("/refresh", r.user.RefreshToken)
		authGroup.POST("/logout", r.user.Logout)
	}

	// Anonymous holders of a share link.
	e.GET("/secure-order/:token", r.secureLink.Resolve)

	apiV1 := e.Group("/api/v1")

	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.catalog.ListCategories)
		catalogGroup.GET("/products", r.catalog.ListProducts)
		catalogGroup.GET("/products/:id", r.catalog.GetProduct)
		catalogGroup.GET("/products/:id/reviews", r.review.ListForProduct)
	}

	authed := apiV1.Group("", r.auth.Authenticate)
	r.registerCustomerRoutes(authed)

	adminGroup := apiV1.Group("/admin", r.auth.Authenticate, r.auth.RequireAdmin)
	r.registerAdminRoutes(adminGroup)
}

func (r *router) registerCustomerRoutes(g *echo.Group) {
	g.GET("/profile", r.user.GetProfile)

	sessionsGroup := g.Group("/sessions")
	{
		sessionsGroup.GET("", r.user.ListSessions)
		sessionsGroup.DELETE("/:id", r.user.RevokeSession)
		sessionsGroup.POST("/logout-all", r.user.LogoutAll)
	}

	cartGroup := g.Group("/cart")
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.PUT("/items/:id", r.cart.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cart.RemoveItem)
	}

	ordersGroup := g.Group("/orders")
	{
		ordersGroup.POST("/checkout", r.order.Checkout)
		ordersGroup.GET("", r.order.ListMyOrders)
		ordersGroup.GET("/:id", r.order.GetMyOrder)
		ordersGroup.POST("/:id/payments", r.payment.Submit)
		ordersGroup.GET("/:id/payments", r.payment.ListOrderProofs)
	}

	g.POST("/products/:id/reviews", r.review.Submit)

	complaintsGroup := g.Group("/complaints")
	{
		complaintsGroup.POST("", r.complaint.Submit)
		complaintsGroup.GET("", r.complaint.ListMine)
	}

	chatGroup := g.Group("/chat")
	{
		chatGroup.GET("", r.chat.ConversationWithAdmin)
		chatGroup.POST("", r.chat.PostToAdmin)
	}

	devicesGroup := g.Group("/devices")
	{
		devicesGroup.POST("", r.device.RegisterDevice)
		devicesGroup.GET("", r.device.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.device.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.device.DeactivateDevice)
	}

	g.GET("/media/*", r.media.Serve)
}

func (r *router) registerAdminRoutes(g *echo.Group) {
	g.GET("/dashboard", r.admin.Dashboard)
	g.GET("/customers", r.admin.Customers)

	g.POST("/categories", r.catalog.CreateCategory)

	productsGroup := g.Group("/products")
	{
		productsGroup.GET("", r.catalog.ListAllProducts)
		productsGroup.POST("", r.catalog.CreateProduct)
		productsGroup.PUT("/:id", r.catalog.UpdateProduct)
		productsGroup.DELETE("/:id", r.catalog.DeleteProduct)
	}

	ordersGroup := g.Group("/orders")
	{
		ordersGroup.GET("", r.order.ListOrders)
		ordersGroup.GET("/:id", r.order.GetOrder)
		ordersGroup.PUT("/:id/status", r.order.AdvanceStatus)
		ordersGroup.POST("/:id/status/override", r.order.OverrideStatus)
		ordersGroup.POST("/:id/deliver", r.order.MarkDelivered)
		ordersGroup.POST("/:id/secure-link", r.secureLink.Issue)
		ordersGroup.GET("/:id/secure-link/qr", r.secureLink.ShareQR)
	}

	paymentsGroup := g.Group("/payments")
	{
		paymentsGroup.GET("", r.payment.ListProofs)
		paymentsGroup.POST("/:id/decision", r.payment.Decide)
	}

	g.GET("/reviews", r.review.ListAll)

	complaintsGroup := g.Group("/complaints")
	{
		complaintsGroup.GET("", r.complaint.ListAll)
		complaintsGroup.GET("/:id", r.complaint.Get)
		complaintsGroup.POST("/:id/respond", r.complaint.Respond)
		complaintsGroup.POST("/:id/resolve", r.complaint.Resolve)
	}

	chatGroup := g.Group("/chat")
	{
		chatGroup.GET("", r.chat.Inbox)
		chatGroup.GET("/:customerId", r.chat.Conversation)
		chatGroup.POST("/:customerId", r.chat.Reply)
		chatGroup.DELETE("/:customerId", r.chat.DeleteConversation)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.test.TestPublicEndpoint)
	testGroup.GET("/auth", r.test.TestAuthMiddleware, r.auth.Authenticate)
	testGroup.GET("/admin", r.test.TestAdminMiddleware, r.auth.Authenticate, r.auth.RequireAdmin)
}
