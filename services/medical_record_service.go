package services

import (
	"context"
	"log"
	"net/http"

	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CreateMedicalRecord records the diagnosis for a completed appointment.
// The owning patient is taken from the appointment row, and the UNIQUE
// constraint on appointment_id guarantees at most one record per
// appointment even under concurrent requests. Admin only.
func CreateMedicalRecord(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	var req models.MedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": err.Error()})
		return
	}

	var patientId string
	err := pool.QueryRow(context.Background(),
		"SELECT patient_id FROM appointments WHERE appointment_id = $1",
		req.AppointmentID).Scan(&patientId)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
			return
		}
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	var existing int
	err = pool.QueryRow(context.Background(),
		"SELECT record_id FROM medical_records WHERE appointment_id = $1",
		req.AppointmentID).Scan(&existing)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A medical record already exists for this appointment"})
		return
	}
	if err.Error() != "no rows in result set" {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	record := models.MedicalRecord{
		AppointmentID: req.AppointmentID,
		PatientID:     patientId,
		AdminID:       claims.ID,
		Diagnosis:     req.Diagnosis,
		Conclusion:    req.Conclusion,
	}

	err = pool.QueryRow(context.Background(), `
	INSERT INTO medical_records (
		appointment_id,
		patient_id,
		admin_id,
		diagnosis,
		conclusion
	)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING record_id, created_at`,
		record.AppointmentID,
		record.PatientID,
		record.AdminID,
		record.Diagnosis,
		record.Conclusion,
	).Scan(&record.RecordID, &record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// lost the race to another admin, same outcome as the existence check
			c.JSON(http.StatusBadRequest, gin.H{"message": "A medical record already exists for this appointment"})
			return
		}
		log.Println("Insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Medical record registered successfully",
		"record":  record,
	})
}

// GetMyMedicalRecords lists the logged-in patient's records with the
// appointment and triage context, newest first.
func GetMyMedicalRecords(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	rows, err := pool.Query(context.Background(), `
	SELECT medical_records.record_id, medical_records.appointment_id,
	       medical_records.patient_id, medical_records.admin_id,
	       medical_records.diagnosis, medical_records.conclusion,
	       medical_records.created_at,
	       TO_CHAR(appointments.appointment_date, 'YYYY-MM-DD'),
	       appointments.appointment_time, appointments.specialty,
	       appointments.physician, triages.severity
	FROM medical_records
	JOIN appointments ON medical_records.appointment_id = appointments.appointment_id
	JOIN triages ON appointments.triage_id = triages.triage_id
	WHERE medical_records.patient_id = $1
	ORDER BY medical_records.created_at DESC`, claims.ID)
	if err != nil {
		log.Println("Query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	records := []models.MedicalRecordDetail{}
	for rows.Next() {
		var r models.MedicalRecordDetail
		err := rows.Scan(&r.RecordID, &r.AppointmentID, &r.PatientID, &r.AdminID,
			&r.Diagnosis, &r.Conclusion, &r.CreatedAt,
			&r.AppointmentDate, &r.AppointmentTime, &r.Specialty, &r.Physician,
			&r.TriageSeverity)
		if err != nil {
			log.Println("Row scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		records = append(records, r)
	}

	c.JSON(http.StatusOK, records)
}

// GetAllMedicalRecords lists every record with patient and appointment
// context. Admin only.
func GetAllMedicalRecords(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
	SELECT medical_records.record_id, medical_records.appointment_id,
	       medical_records.patient_id, medical_records.admin_id,
	       medical_records.diagnosis, medical_records.conclusion,
	       medical_records.created_at,
	       TO_CHAR(appointments.appointment_date, 'YYYY-MM-DD'),
	       appointments.appointment_time, appointments.specialty,
	       appointments.physician, triages.severity,
	       patients.name, patients.email
	FROM medical_records
	JOIN appointments ON medical_records.appointment_id = appointments.appointment_id
	JOIN triages ON appointments.triage_id = triages.triage_id
	JOIN patients ON medical_records.patient_id = patients.patient_id
	ORDER BY medical_records.created_at DESC`)
	if err != nil {
		log.Println("Query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	records := []models.MedicalRecordDetail{}
	for rows.Next() {
		var r models.MedicalRecordDetail
		err := rows.Scan(&r.RecordID, &r.AppointmentID, &r.PatientID, &r.AdminID,
			&r.Diagnosis, &r.Conclusion, &r.CreatedAt,
			&r.AppointmentDate, &r.AppointmentTime, &r.Specialty, &r.Physician,
			&r.TriageSeverity, &r.PatientName, &r.PatientEmail)
		if err != nil {
			log.Println("Row scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		records = append(records, r)
	}

	c.JSON(http.StatusOK, records)
}
