package main

import (
	"log"
	"os"
	"time"

	"meditriage_back_end_go/db"
	"meditriage_back_end_go/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	r := gin.Default()

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	// Initialize database
	conn, err := db.InitDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer conn.Close()

	// Initialize routes
	routes.SetupAuthRoutes(r, conn)
	routes.SetupPatientRoutes(r, conn)
	routes.SetupTriageRoutes(r, conn)
	routes.SetupAppointmentRoutes(r, conn)
	routes.SetupMedicalRecordRoutes(r, conn)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "3001"
	}

	// Start server
	r.Run(":" + port)
}
