package routes

import (
	"github.com/Akhilus26/firebased-quickbite/configs"
	"github.com/Akhilus26/firebased-quickbite/controllers"
	"github.com/Akhilus26/firebased-quickbite/middlewares"
	"github.com/Akhilus26/firebased-quickbite/repository"
	"github.com/Akhilus26/firebased-quickbite/services"
	"github.com/Akhilus26/firebased-quickbite/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, tokenRepo, menuRepo, userRepo, walletRepo, canteenRepo)
	tokenSvc := services.NewTokenService(db, tokenRepo)
	menuSvc := services.NewMenuService(menuRepo)
	walletSvc := services.NewWalletService(walletRepo)
	canteenSvc := services.NewCanteenService(canteenRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Live change feed: orders to staff dashboards, token reveals per order.
	hub := ws.NewFeedHub(orderSvc)
	go hub.Run()
	orderSvc.Feed = hub
	tokenSvc.Feed = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, tokenSvc)
	tokenCtrl := controllers.NewTokenController(tokenSvc)
	staffCtrl := controllers.NewStaffController(orderSvc)
	walletCtrl := controllers.NewWalletController(walletSvc)
	ownerCtrl := controllers.NewOwnerController(canteenSvc, orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/menu", menuCtrl.List)

	// Orders + wallet (any logged-in user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/tokens", orderCtrl.TokensForOrder)
		u.POST("/tokens/:id/reveal", tokenCtrl.Reveal)

		u.GET("/wallet", walletCtrl.Balance)
		u.POST("/wallet/topup", walletCtrl.TopUp)
	}

	// Counter staff
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "owner"))
	{
		staff.GET("/orders/active", staffCtrl.Active)
		staff.GET("/orders/completed", staffCtrl.Completed)
		staff.GET("/orders/code/:code", staffCtrl.ByCode)
		staff.GET("/orders/pending-count", staffCtrl.PendingCount)
		staff.PATCH("/orders/:id/status", staffCtrl.UpdateStatus)
		staff.PATCH("/orders/:id/items/:itemId/delivered", staffCtrl.MarkDelivered)
	}

	// Owner
	owner := r.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, "owner"))
	{
		owner.GET("/stats", ownerCtrl.Stats)
		owner.GET("/orders", ownerCtrl.AllOrders)
		owner.GET("/canteen-status", ownerCtrl.CanteenStatus)
		owner.PUT("/canteen-status", ownerCtrl.SetCanteenStatus)

		owner.POST("/menu", menuCtrl.Create)
		owner.PATCH("/menu/:id", menuCtrl.Update)
		owner.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)
		owner.DELETE("/menu/:id", menuCtrl.Delete)
	}

	// WebSocket feeds (token via query string for browser clients)
	feed := r.Group("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret))
	{
		feed.GET("/orders", hub.HandleOrderFeed)
		feed.GET("/orders/:id", hub.HandleSingleOrderFeed)
	}
}
