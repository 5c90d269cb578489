package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// CreateAppointment schedules a visit against a triage. The UNIQUE
// constraint on triage_id keeps concurrent requests from double-booking
// the same triage. Admin only.
func CreateAppointment(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": err.Error()})
		return
	}

	// Dates travel as plain calendar dates, no timezone arithmetic.
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	appointment := models.Appointment{
		PatientID: req.PatientID,
		AdminID:   claims.ID,
		TriageID:  req.TriageID,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Specialty: req.Specialty,
		Physician: req.Physician,
	}

	err := pool.QueryRow(context.Background(), `
	INSERT INTO appointments (
		patient_id,
		admin_id,
		triage_id,
		appointment_date,
		appointment_time,
		location,
		specialty,
		physician
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING appointment_id, confirmed, created_at`,
		appointment.PatientID,
		appointment.AdminID,
		appointment.TriageID,
		appointment.Date,
		appointment.Time,
		appointment.Location,
		appointment.Specialty,
		appointment.Physician,
	).Scan(&appointment.AppointmentID, &appointment.Confirmed, &appointment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "An appointment already exists for this triage"})
			return
		}
		log.Println("Insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment scheduled successfully",
		"appointment": appointment,
	})
}

// ConfirmAppointment marks an appointment as confirmed by its owner. The
// lookup is scoped to the logged-in patient, so someone else's appointment
// id simply comes back not found. Confirming twice is a no-op success.
func ConfirmAppointment(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	appointmentId, err := strconv.Atoi(c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid appointment id"})
		return
	}

	var exists int
	err = pool.QueryRow(context.Background(),
		"SELECT appointment_id FROM appointments WHERE appointment_id = $1 AND patient_id = $2",
		appointmentId, claims.ID).Scan(&exists)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	var appointment models.Appointment
	err = pool.QueryRow(context.Background(), `
	UPDATE appointments SET confirmed = TRUE
	WHERE appointment_id = $1
	RETURNING appointment_id, patient_id, admin_id, triage_id,
	          TO_CHAR(appointment_date, 'YYYY-MM-DD'), appointment_time,
	          location, specialty, physician, confirmed, created_at`,
		appointmentId).Scan(
		&appointment.AppointmentID, &appointment.PatientID, &appointment.AdminID,
		&appointment.TriageID, &appointment.Date, &appointment.Time,
		&appointment.Location, &appointment.Specialty, &appointment.Physician,
		&appointment.Confirmed, &appointment.CreatedAt)
	if err != nil {
		log.Println("Update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment confirmed successfully",
		"appointment": appointment,
	})
}

// GetMyAppointments lists the logged-in patient's appointments with their
// triage score and severity, soonest first.
func GetMyAppointments(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	rows, err := pool.Query(context.Background(), `
	SELECT appointments.appointment_id, appointments.patient_id, appointments.admin_id,
	       appointments.triage_id, TO_CHAR(appointments.appointment_date, 'YYYY-MM-DD'),
	       appointments.appointment_time, appointments.location, appointments.specialty,
	       appointments.physician, appointments.confirmed, appointments.created_at,
	       triages.score, triages.severity
	FROM appointments
	JOIN triages ON appointments.triage_id = triages.triage_id
	WHERE appointments.patient_id = $1
	ORDER BY appointments.appointment_date ASC`, claims.ID)
	if err != nil {
		log.Println("Query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	appointments := []models.AppointmentDetail{}
	for rows.Next() {
		var a models.AppointmentDetail
		err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.AdminID, &a.TriageID,
			&a.Date, &a.Time, &a.Location, &a.Specialty, &a.Physician,
			&a.Confirmed, &a.CreatedAt, &a.TriageScore, &a.TriageSeverity)
		if err != nil {
			log.Println("Row scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		appointments = append(appointments, a)
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAllAppointments lists every appointment with patient and triage
// context. Admin only.
func GetAllAppointments(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
	SELECT appointments.appointment_id, appointments.patient_id, appointments.admin_id,
	       appointments.triage_id, TO_CHAR(appointments.appointment_date, 'YYYY-MM-DD'),
	       appointments.appointment_time, appointments.location, appointments.specialty,
	       appointments.physician, appointments.confirmed, appointments.created_at,
	       triages.score, triages.severity,
	       patients.name, patients.email, patients.phone_number
	FROM appointments
	JOIN triages ON appointments.triage_id = triages.triage_id
	JOIN patients ON appointments.patient_id = patients.patient_id
	ORDER BY appointments.appointment_date ASC`)
	if err != nil {
		log.Println("Query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	appointments := []models.AppointmentDetail{}
	for rows.Next() {
		var a models.AppointmentDetail
		err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.AdminID, &a.TriageID,
			&a.Date, &a.Time, &a.Location, &a.Specialty, &a.Physician,
			&a.Confirmed, &a.CreatedAt, &a.TriageScore, &a.TriageSeverity,
			&a.PatientName, &a.PatientEmail, &a.PatientPhoneNumber)
		if err != nil {
			log.Println("Row scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		appointments = append(appointments, a)
	}

	c.JSON(http.StatusOK, appointments)
}
