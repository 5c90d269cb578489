package services

import (
	"context"
	"net/http"

	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates either principal kind. The role field in the body
// selects which table the credential is checked against; the resulting
// token carries that role.
func Login(c *gin.Context, pool *pgxpool.Pool) {
	var loginReq models.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	role := auth.RolePatient
	query := "SELECT patient_id, name, email, hashed_password FROM patients WHERE email = $1"
	if loginReq.Role == auth.RoleAdmin {
		role = auth.RoleAdmin
		query = "SELECT admin_id, name, email, hashed_password FROM admins WHERE email = $1"
	}

	var id, name, email, hashedPassword string
	err := pool.QueryRow(context.Background(), query, loginReq.Email).Scan(&id, &name, &email, &hashedPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		return
	}

	// bcrypt comparison is constant time
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Incorrect password"})
		return
	}

	token, err := auth.GenerateToken(id, email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    id,
			"name":  name,
			"email": email,
			"role":  role,
		},
	})
}
