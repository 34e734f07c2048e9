package routes

import (
	"github.com/elsonbaty123/wagbty-sub000/configs"
	"github.com/elsonbaty123/wagbty-sub000/controllers"
	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/middlewares"
	"github.com/elsonbaty123/wagbty-sub000/repository"
	"github.com/elsonbaty123/wagbty-sub000/services"
	wshub "github.com/elsonbaty123/wagbty-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log zerolog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	notifSvc := services.NewNotificationService(notifRepo, log)
	hub := wshub.NewNotifyHub(log)
	notifSvc.Hub = hub
	go hub.Run()

	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	dishSvc := services.NewDishService(dishRepo)
	couponSvc := services.NewCouponService(couponRepo, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, userRepo, couponRepo, couponSvc, notifSvc)
	chefSvc := services.NewChefService(db, userRepo, orderRepo, notifSvc)
	deliverySvc := services.NewDeliveryService(db, userRepo, orderRepo, orderSvc)
	adminSvc := services.NewAdminService(db, userRepo, orderRepo, dishRepo, notifSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, couponSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	chefCtrl := controllers.NewChefController(chefSvc, orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc, orderSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public storefront
	r.GET("/chefs/:id/dishes", dishCtrl.ListForChef)
	r.GET("/dishes/:id", dishCtrl.Detail)
	r.GET("/dishes/:id/ratings", dishCtrl.Ratings)

	// Orders (customer)
	u := r.Group("/", auth())
	{
		u.POST("/orders", orderCtrl.Create)
		u.POST("/orders/validate-coupon", orderCtrl.ValidateCoupon)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/review", orderCtrl.AddReview)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Notifications (any authenticated role)
	n := r.Group("/notifications", auth())
	{
		n.GET("", notifCtrl.List)
		n.GET("/unread-count", notifCtrl.UnreadCount)
		n.PATCH("/:id/read", notifCtrl.MarkRead)
		n.POST("/read-all", notifCtrl.MarkAllRead)
	}

	// Live notification stream
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Chef kitchen (chef/admin)
	chef := r.Group("/chef", auth(entity.RoleChef, entity.RoleAdmin))
	{
		chef.GET("/profile", chefCtrl.Profile)
		chef.PATCH("/profile", chefCtrl.UpdateProfile)
		chef.PATCH("/availability", chefCtrl.SetAvailability)

		chef.GET("/orders", chefCtrl.ListOrders)
		chef.GET("/orders/:id", chefCtrl.OrderDetail)
		chef.PATCH("/orders/:id/status", chefCtrl.UpdateOrderStatus)

		chef.GET("/dishes", dishCtrl.ListMine)
		chef.POST("/dishes", dishCtrl.Create)
		chef.PATCH("/dishes/:id", dishCtrl.Update)

		chef.GET("/coupons", couponCtrl.List)
		chef.POST("/coupons", couponCtrl.Create)
		chef.PUT("/coupons/:id", couponCtrl.Update)
		chef.DELETE("/coupons/:id", couponCtrl.Delete)
	}

	// Delivery (delivery/admin)
	delivery := r.Group("/delivery", auth(entity.RoleDelivery, entity.RoleAdmin))
	{
		delivery.GET("/orders/available", deliveryCtrl.Available)
		delivery.POST("/orders/:id/accept", deliveryCtrl.Accept)
		delivery.PATCH("/orders/:id/status", deliveryCtrl.UpdateStatus)
		delivery.POST("/orders/:id/not-delivered", deliveryCtrl.MarkNotDelivered)
		delivery.GET("/work", deliveryCtrl.CurrentWork)
		delivery.GET("/histories", deliveryCtrl.Histories)
		delivery.GET("/profile", deliveryCtrl.Profile)
		delivery.PUT("/profile", deliveryCtrl.UpsertProfile)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/accounts", adminCtrl.Accounts)
		admin.PATCH("/accounts/:id/approve", adminCtrl.Approve)
		admin.PATCH("/accounts/:id/reject", adminCtrl.Reject)
		admin.PATCH("/accounts/:id/suspend", adminCtrl.Suspend)
		admin.PATCH("/accounts/:id/reinstate", adminCtrl.Reinstate)
	}
}
