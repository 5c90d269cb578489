package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"meditriage_back_end_go/models"
	"meditriage_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL is the single source of truth for how long a reset token
// stays redeemable.
const resetTokenTTL = time.Hour

func resetTokenExpired(expiry time.Time, now time.Time) bool {
	return now.After(expiry)
}

// RequestPasswordReset issues a single-use token and emails it to the
// patient. The response is the same whether or not the email is registered,
// so the endpoint cannot be used to probe for accounts.
func RequestPasswordReset(c *gin.Context, pool *pgxpool.Pool) {
	var req models.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if !validators.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
		return
	}

	genericResponse := gin.H{"message": "If the email is registered, a reset link has been sent"}

	var patientId string
	err := pool.QueryRow(context.Background(), "SELECT patient_id FROM patients WHERE email = $1", req.Email).Scan(&patientId)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusOK, genericResponse)
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token := validators.GenerateResetToken()
	expiry := time.Now().Add(resetTokenTTL)

	_, err = pool.Exec(context.Background(),
		"UPDATE patients SET reset_token = $1, reset_token_expiry = $2, updated_at = NOW() WHERE patient_id = $3",
		token, expiry, patientId)
	if err != nil {
		log.Println("Failed to store reset token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	resetLink := validators.BuildResetLink(token)
	if err := validators.SendPasswordResetEmail(req.Email, resetLink); err != nil {
		log.Printf("Failed to send reset email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, genericResponse)
}

// ConfirmPasswordReset redeems a token exactly once: the new password is
// stored and the token cleared in the same statement, so a second attempt
// with the same token finds nothing.
func ConfirmPasswordReset(c *gin.Context, pool *pgxpool.Pool) {
	var req models.ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token and new password are required"})
		return
	}

	var patientId string
	var expiry time.Time
	err := pool.QueryRow(context.Background(),
		"SELECT patient_id, reset_token_expiry FROM patients WHERE reset_token = $1",
		req.Token).Scan(&patientId, &expiry)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if resetTokenExpired(expiry, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	_, err = pool.Exec(context.Background(),
		"UPDATE patients SET hashed_password = $1, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW() WHERE patient_id = $2",
		string(hashedPassword), patientId)
	if err != nil {
		log.Println("Failed to update password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
