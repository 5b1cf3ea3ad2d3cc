package routes

import (
	"scoopshop-backend/config"
	"scoopshop-backend/controllers"
	"scoopshop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes; writes are owner-gated
		products := api.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)

			products.Use(utils.RequireOwner())
			products.POST("", controllers.CreateProduct)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
		}

		// Discount page routes; edits are owner-gated
		discounts := api.Group("/discounts")
		{
			discounts.GET("/:page", controllers.GetDiscountPage)

			discounts.Use(utils.RequireOwner())
			discounts.PUT("/:page/content", controllers.UpdateDiscountContent)
			discounts.POST("/:page/products", controllers.AddDiscountProduct)
			discounts.DELETE("/:page/products/:id", controllers.DeleteDiscountProduct)
		}

		// Bill generation
		api.POST("/bills/generate", controllers.GenerateBill)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Staff management, owner only
		staff := api.Group("/staff", utils.RequireOwner())
		{
			staff.GET("", controllers.GetStaff)
			staff.POST("", controllers.AddStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}
	}

	return r
}
