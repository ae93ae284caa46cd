package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mantleflow-backend/config"
	"mantleflow-backend/controllers"
	"mantleflow-backend/middleware"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Business *controllers.BusinessController
	Invoice  *controllers.InvoiceController
	AI       *controllers.AIController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	r.Use(config.PerformanceLogger())

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)

	api := r.Group("/api")
	{
		// Business routes
		business := api.Group("/business")
		{
			business.GET("", ctrl.Business.GetBusinesses)
			business.POST("", ctrl.Business.RegisterBusiness)
			business.GET("/:address", ctrl.Business.GetBusinessByAddress)
		}

		// Invoice routes
		invoice := api.Group("/invoice")
		{
			invoice.POST("", ctrl.Invoice.CreateInvoice)
		}

		// AI routes
		ai := api.Group("/ai")
		{
			ai.POST("/predict", ctrl.AI.PredictCashFlow)
		}
	}

	return r
}
