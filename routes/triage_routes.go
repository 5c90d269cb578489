package routes

import (
	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupTriageRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/triage", auth.RequireAuth(), auth.RequireRole(auth.RolePatient), func(c *gin.Context) {
		services.CreateTriage(c, pool)
	})

	r.GET("/api/v1/triage/mine", auth.RequireAuth(), auth.RequireRole(auth.RolePatient), func(c *gin.Context) {
		services.GetMyTriages(c, pool)
	})

	r.GET("/api/v1/admin/triage", auth.RequireAuth(), auth.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		services.GetAllTriages(c, pool)
	})
}
