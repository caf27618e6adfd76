package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/server/http/handlers"
	"github.com/vantran/anishop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	editHandler := handlers.NewEditRequestHandler(facade)
	ticketHandler := handlers.NewTicketHandler(facade)
	voucherHandler := handlers.NewVoucherHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	snapshotHandler := handlers.NewSnapshotHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	productHandler := handlers.NewProductHandler(facade)

	api := engine.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/public/settings", settingsHandler.Public)
	api.GET("/public/vouchers", voucherHandler.List)
	api.GET("/edit-orders/:token", editHandler.LookupLink)
	api.POST("/edit-orders/:token", editHandler.SubmitLink)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.ListMine)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders/:id/confirm-payment", orderHandler.ConfirmPayment)
	authed.POST("/orders/:id/cancel", orderHandler.RequestCancellation)
	authed.POST("/orders/:id/edit-requests", editHandler.Request)
	authed.POST("/tickets", ticketHandler.Create)
	authed.GET("/tickets", ticketHandler.ListMine)
	authed.GET("/tickets/:id", ticketHandler.Get)
	authed.POST("/tickets/:id/reply", ticketHandler.Reply)
	authed.GET("/notifications", notificationHandler.List)
	authed.POST("/notifications/read", notificationHandler.MarkRead)
	authed.GET("/product-info", productHandler.Lookup)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/orders", orderHandler.ListAll)
	admin.PUT("/orders/:id", orderHandler.Update)
	admin.POST("/orders/reset", orderHandler.Reset)
	admin.POST("/orders/:id/edit-link", editHandler.CreateLink)
	admin.GET("/revenue", orderHandler.Revenue)
	admin.GET("/edit-requests", editHandler.List)
	admin.POST("/edit-requests/:id/approve", editHandler.Approve)
	admin.POST("/edit-requests/:id/reject", editHandler.Reject)
	admin.GET("/tickets", ticketHandler.ListAll)
	admin.POST("/tickets/:id/status", ticketHandler.SetStatus)
	admin.POST("/vouchers", voucherHandler.Create)
	admin.DELETE("/vouchers/:id", voucherHandler.Delete)
	admin.GET("/users", userHandler.List)
	admin.POST("/users/:id/ban", userHandler.Ban)
	admin.POST("/users/:id/unban", userHandler.Unban)
	admin.POST("/users/:id/role", userHandler.SetRole)
	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)
	admin.GET("/snapshot", snapshotHandler.Export)
	admin.POST("/snapshot", snapshotHandler.Import)

	return engine
}
