package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"mantleflow-backend/apperrors"
	"mantleflow-backend/config"
	"mantleflow-backend/controllers"
	"mantleflow-backend/models"
	"mantleflow-backend/repository"
	"mantleflow-backend/routes"
	"mantleflow-backend/services"
)

// testBusinessAddress seeds a known business so the dApp has something to
// show on a fresh database.
const testBusinessAddress = "0x1234567890123456789012345678901234567890"

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.Business{}, &models.Invoice{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database synchronized")

	businessRepo := repository.NewBusinessRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	businessService := services.NewBusinessService(businessRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, businessRepo)
	predictionService := services.NewPredictionService(cfg)

	if cfg.SeedTestBusiness {
		seedTestBusiness(businessService)
	}

	overdueService := services.NewOverdueService(invoiceRepo)
	overdueService.StartScheduler()

	r := routes.SetupRouter(routes.Controllers{
		Business: controllers.NewBusinessController(businessService),
		Invoice:  controllers.NewInvoiceController(invoiceService),
		AI:       controllers.NewAIController(predictionService),
	})
	printRoutes(r)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func seedTestBusiness(service *services.BusinessService) {
	if _, err := service.Register("Test Business", testBusinessAddress); err != nil {
		if apperrors.IsKind(err, apperrors.KindConflict) {
			log.Println("Test business already exists")
			return
		}
		log.Printf("Failed to seed test business: %v", err)
		return
	}
	log.Println("Test business created")
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
