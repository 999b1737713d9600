package routes

import (
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/configs"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/controllers"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/middlewares"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/whatsapp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	delivRepo := repository.NewDelivererRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Services
	notifier := services.NewNotifier(whatsapp.New(cfg.WhatsAppBaseURL, cfg.WhatsAppToken))
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, addrRepo, productRepo,
		settingsRepo, userRepo, delivRepo, notifier)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	addrCtrl := controllers.NewAddressController(addrRepo)
	productCtrl := controllers.NewProductController(productRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)
	delivCtrl := controllers.NewDelivererController(delivRepo)
	settingsCtrl := controllers.NewSettingsController(settingsRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalog + store info
	r.GET("/products", productCtrl.List)
	r.GET("/products/:id", productCtrl.Detail)
	r.GET("/complements", productCtrl.ListComplements)
	r.GET("/settings", settingsCtrl.Get)

	// Customer (any logged-in user)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)

		u.GET("/addresses", addrCtrl.List)
		u.POST("/addresses", addrCtrl.Create)
		u.PATCH("/addresses/:id", addrCtrl.Update)
		u.PATCH("/addresses/:id/default", addrCtrl.SetDefault)
		u.DELETE("/addresses/:id", addrCtrl.Delete)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/orders", adminOrderCtrl.List)
		admin.GET("/orders/:id", adminOrderCtrl.Detail)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.Transition)
		admin.POST("/orders/:id/cancel", adminOrderCtrl.Cancel)
		admin.PATCH("/orders/:id/total", adminOrderCtrl.OverrideTotal)
		admin.POST("/orders/:id/items", adminOrderCtrl.AddItem)
		admin.DELETE("/orders/:id/items/:itemId", adminOrderCtrl.RemoveItem)

		admin.GET("/products", productCtrl.ListAll)
		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.POST("/complements", productCtrl.CreateComplement)
		admin.DELETE("/complements/:id", productCtrl.DeleteComplement)

		admin.GET("/deliverers", delivCtrl.List)
		admin.POST("/deliverers", delivCtrl.Create)
		admin.PATCH("/deliverers/:id", delivCtrl.Update)
		admin.DELETE("/deliverers/:id", delivCtrl.Delete)

		admin.PATCH("/settings", settingsCtrl.Update)
	}
}
