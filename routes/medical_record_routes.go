package routes

import (
	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupMedicalRecordRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/admin/medical-records", auth.RequireAuth(), auth.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		services.CreateMedicalRecord(c, pool)
	})

	r.GET("/api/v1/medical-records/mine", auth.RequireAuth(), auth.RequireRole(auth.RolePatient), func(c *gin.Context) {
		services.GetMyMedicalRecords(c, pool)
	})

	r.GET("/api/v1/admin/medical-records", auth.RequireAuth(), auth.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		services.GetAllMedicalRecords(c, pool)
	})
}
