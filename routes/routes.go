package routes

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/configs"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/controllers"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/middlewares"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	contentRepo := repository.NewContentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(db, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, catalogRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	contentSvc := services.NewContentService(contentRepo)
	statsSvc := services.NewStatsService(statsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	contentCtrl := controllers.NewContentController(contentSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")
	optionalAuth := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog (public reads, admin writes)
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/categories/:id/products", catalogCtrl.CategoryProducts)
	r.POST("/categories", adminOnly, catalogCtrl.CreateCategory)
	r.PATCH("/categories/:id", adminOnly, catalogCtrl.UpdateCategory)
	r.DELETE("/categories/:id", adminOnly, catalogCtrl.DeleteCategory)

	r.GET("/products", catalogCtrl.Products)
	r.GET("/products/featured", catalogCtrl.Featured)
	r.GET("/products/search", catalogCtrl.Search)
	r.GET("/products/:id", catalogCtrl.ProductDetail)
	r.POST("/products/:id/calculate-price", catalogCtrl.CalculatePrice)
	r.POST("/products", adminOnly, catalogCtrl.CreateProduct)
	r.PATCH("/products/:id", adminOnly, catalogCtrl.UpdateProduct)
	r.DELETE("/products/:id", adminOnly, catalogCtrl.DeleteProduct)

	r.GET("/ingredients", catalogCtrl.Ingredients)
	r.POST("/ingredients", adminOnly, catalogCtrl.CreateIngredient)
	r.PATCH("/ingredients/:id", adminOnly, catalogCtrl.UpdateIngredient)
	r.DELETE("/ingredients/:id", adminOnly, catalogCtrl.DeleteIngredient)

	// Orders — creation is open (identity attached when present)
	r.POST("/orders", optionalAuth, orderCtrl.Create)
	r.GET("/orders/my", auth, orderCtrl.ListForMe)
	r.GET("/orders/my/:id", auth, orderCtrl.DetailForMe)
	r.GET("/orders", adminOnly, orderCtrl.List)
	r.GET("/orders/:id", adminOnly, orderCtrl.Detail)
	r.PATCH("/orders/:id/status", adminOnly, orderCtrl.UpdateStatus)

	// Reviews
	r.GET("/reviews", optionalAuth, reviewCtrl.List)
	r.POST("/reviews", auth, reviewCtrl.Create)
	r.PATCH("/reviews/:id/visibility", adminOnly, reviewCtrl.SetVisibility)
	r.DELETE("/reviews/:id", adminOnly, reviewCtrl.Delete)

	// Editorial content
	content := r.Group("/content")
	{
		content.GET("/hero/active", contentCtrl.ActiveHero)
		content.GET("/about/active", contentCtrl.ActiveAbout)
		content.GET("/contact/active", contentCtrl.ActiveContact)
		content.GET("/featured/active", contentCtrl.ActiveFeatured)
		content.PUT("/hero", adminOnly, contentCtrl.SaveHero)
		content.PUT("/about", adminOnly, contentCtrl.SaveAbout)
		content.PUT("/contact", adminOnly, contentCtrl.SaveContact)
		content.PUT("/featured", adminOnly, contentCtrl.SaveFeatured)
	}
	r.GET("/site-config", contentCtrl.SiteConfig)
	r.PATCH("/site-config", adminOnly, contentCtrl.UpdateSiteConfig)

	// Admin dashboard
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/dashboard", statsCtrl.Dashboard)
		admin.GET("/stats", statsCtrl.AdminStats)
		admin.GET("/users/stats", statsCtrl.UserStats)
	}
}
