package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reservation-system/internal/controllers"
	"reservation-system/internal/services"
)

func runReservationFormRouter(secureGroup *echo.Group, formService services.ReservationFormServiceInterface, logger *zap.Logger) {
	formCtrl := controllers.NewReservationFormController(formService, logger)

	formGroup := secureGroup.Group("/reservation-form")
	{
		formGroup.POST("", formCtrl.CreateSession)
		formGroup.GET("/:id", formCtrl.GetSession)
		formGroup.PATCH("/:id/draft", formCtrl.UpdateDraft)
		formGroup.PUT("/:id/venue", formCtrl.SelectVenue)
		formGroup.POST("/:id/vehicles/:vehicleId", formCtrl.ToggleVehicle)
		formGroup.POST("/:id/equipments/:equipmentId", formCtrl.ToggleEquipment)
		formGroup.PUT("/:id/equipments/:equipmentId/quantity", formCtrl.SetEquipmentQuantity)
		formGroup.POST("/:id/submit", formCtrl.Submit)
	}
}
