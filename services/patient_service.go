package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/models"
	"meditriage_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func emailExists(conn *pgxpool.Conn, table string, email string, c *gin.Context) (bool, error) {
	var existingEmail string
	err := conn.QueryRow(c, "SELECT email FROM "+table+" WHERE email = $1", email).Scan(&existingEmail)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RegisterPatient creates a patient account and returns a session token so
// the client is logged in right after signing up.
func RegisterPatient(c *gin.Context, pool *pgxpool.Pool) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": err.Error()})
		return
	}

	if patient.Name == "" || patient.Email == "" || patient.Password == "" || patient.BirthDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, password and birth date are required"})
		return
	}

	if !validators.IsValidEmail(patient.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
		return
	}

	conn, err := pool.Acquire(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not acquire database connection"})
		return
	}
	defer conn.Release()

	exists, err := emailExists(conn, "patients", patient.Email, c)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if _, err := time.Parse("2006-01-02", patient.BirthDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid birth date, expected YYYY-MM-DD"})
		return
	}

	var patientId string
	err = conn.QueryRow(c, `
	INSERT INTO patients (
		name,
		email,
		hashed_password,
		address,
		phone_number,
		birth_date
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING patient_id`,
		patient.Name,
		patient.Email,
		string(hashedPassword),
		patient.Address,
		patient.PhoneNumber,
		patient.BirthDate,
	).Scan(&patientId)
	if err != nil {
		log.Printf("Insert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token, err := auth.GenerateToken(patientId, patient.Email, auth.RolePatient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Patient registered successfully",
		"token":   token,
		"user": gin.H{
			"id":    patientId,
			"name":  patient.Name,
			"email": patient.Email,
			"role":  auth.RolePatient,
		},
	})
}

func GetPatientById(c *gin.Context, pool *pgxpool.Pool) {
	patientId := c.Param("patientId")
	var patient models.Patient

	err := pool.QueryRow(context.Background(),
		"SELECT patient_id, name, email, phone_number, address, TO_CHAR(birth_date, 'YYYY-MM-DD') FROM patients WHERE patient_id = $1",
		patientId).Scan(
		&patient.PatientID,
		&patient.Name,
		&patient.Email,
		&patient.PhoneNumber,
		&patient.Address,
		&patient.BirthDate,
	)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		} else {
			log.Println("Database error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, patient)
}
