package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reservation-system/internal/controllers"
	"reservation-system/internal/services"
)

func runChecklistRouter(secureGroup *echo.Group, registryService services.ChecklistRegistryServiceInterface, logger *zap.Logger) {
	checklistCtrl := controllers.NewChecklistController(registryService, logger)

	checklistGroup := secureGroup.Group("/checklists")
	{
		checklistGroup.GET("/summary", checklistCtrl.GetSummary)
		checklistGroup.GET("/:type/resources", checklistCtrl.GetResources)
		checklistGroup.GET("/:type/resources/:resourceId/items", checklistCtrl.GetItems)
		checklistGroup.POST("", checklistCtrl.CreateBatch)
		checklistGroup.PUT("/items/:id", checklistCtrl.UpdateItem)
	}
}
