package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"reservation-system/internal/controllers"
	"reservation-system/internal/services"
)

func runAssignmentRouter(secureGroup *echo.Group, assignmentService services.AssignmentServiceInterface, logger *zap.Logger) {
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)

	reservationGroup := secureGroup.Group("/reservations")
	{
		reservationGroup.GET("", assignmentCtrl.GetReservations)
		reservationGroup.GET("/:id", assignmentCtrl.GetDetail)
		reservationGroup.POST("/:id/assign", assignmentCtrl.Assign)
		reservationGroup.POST("/:id/checklist/retry", assignmentCtrl.RetryChecklist)
		reservationGroup.POST("/:id/complete", assignmentCtrl.Complete)
	}
}
