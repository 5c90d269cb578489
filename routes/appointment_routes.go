package routes

import (
	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupAppointmentRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/admin/appointments", auth.RequireAuth(), auth.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		services.CreateAppointment(c, pool)
	})

	r.PUT("/api/v1/appointments/:appointmentId/confirm", auth.RequireAuth(), auth.RequireRole(auth.RolePatient), func(c *gin.Context) {
		services.ConfirmAppointment(c, pool)
	})

	r.GET("/api/v1/appointments/mine", auth.RequireAuth(), auth.RequireRole(auth.RolePatient), func(c *gin.Context) {
		services.GetMyAppointments(c, pool)
	})

	r.GET("/api/v1/admin/appointments", auth.RequireAuth(), auth.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		services.GetAllAppointments(c, pool)
	})
}
