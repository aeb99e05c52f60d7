package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reservation-system/internal/controllers"
	"reservation-system/internal/services"
)

func runCatalogRouter(secureGroup *echo.Group, catalogService services.CatalogServiceInterface, logger *zap.Logger) {
	catalogCtrl := controllers.NewCatalogController(catalogService, logger)

	catalogGroup := secureGroup.Group("/catalog")
	{
		catalogGroup.GET("/venues", catalogCtrl.GetVenues)
		catalogGroup.GET("/vehicles", catalogCtrl.GetVehicles)
		catalogGroup.GET("/equipments", catalogCtrl.GetEquipments)
		catalogGroup.GET("/users", catalogCtrl.GetUsers)
		catalogGroup.GET("/personnel", catalogCtrl.GetPersonnel)
	}
}
