package services

import (
	"log"
	"net/http"

	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/models"
	"meditriage_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// RegisterAdmin creates an administrator account.
func RegisterAdmin(c *gin.Context, pool *pgxpool.Pool) {
	var admin models.Admin
	if err := c.ShouldBindJSON(&admin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": err.Error()})
		return
	}

	if admin.Name == "" || admin.Email == "" || admin.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required"})
		return
	}

	if !validators.IsValidEmail(admin.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
		return
	}

	conn, err := pool.Acquire(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not acquire database connection"})
		return
	}
	defer conn.Release()

	exists, err := emailExists(conn, "admins", admin.Email, c)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	var adminId string
	err = conn.QueryRow(c, `
	INSERT INTO admins (name, email, hashed_password)
	VALUES ($1, $2, $3)
	RETURNING admin_id`,
		admin.Name,
		admin.Email,
		string(hashedPassword),
	).Scan(&adminId)
	if err != nil {
		log.Printf("Insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token, err := auth.GenerateToken(adminId, admin.Email, auth.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
		"token":   token,
		"user": gin.H{
			"id":    adminId,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  auth.RoleAdmin,
		},
	})
}
