package routes

import (
	"meditriage_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupAuthRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/auth/login", func(c *gin.Context) {
		services.Login(c, pool)
	})

	r.POST("/api/v1/auth/reset-request", func(c *gin.Context) {
		services.RequestPasswordReset(c, pool)
	})

	r.POST("/api/v1/auth/reset-confirm", func(c *gin.Context) {
		services.ConfirmPasswordReset(c, pool)
	})
}
