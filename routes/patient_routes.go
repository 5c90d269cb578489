package routes

import (
	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupPatientRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/patients/register", func(c *gin.Context) {
		services.RegisterPatient(c, pool)
	})

	r.POST("/api/v1/admins/register", func(c *gin.Context) {
		services.RegisterAdmin(c, pool)
	})

	r.GET("/api/v1/patients/:patientId", auth.RequireAuth(), func(c *gin.Context) {
		services.GetPatientById(c, pool)
	})
}
