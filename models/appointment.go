package models

import "time"

type Appointment struct {
	AppointmentID int       `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	AdminID       string    `json:"admin_id"`
	TriageID      int       `json:"triage_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Location      string    `json:"location"`
	Specialty     string    `json:"specialty"`
	Physician     string    `json:"physician"`
	Confirmed     bool      `json:"confirmed"`
	CreatedAt     time.Time `json:"created_at"`
}

type AppointmentRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	TriageID  int    `json:"triage_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Physician string `json:"physician" binding:"required"`
}

// AppointmentDetail flattens the appointment with its triage severity and,
// for admin listings, the owning patient summary.
type AppointmentDetail struct {
	Appointment
	TriageScore        int    `json:"triage_score"`
	TriageSeverity     string `json:"triage_severity"`
	PatientName        string `json:"patient_name"`
	PatientEmail       string `json:"patient_email"`
	PatientPhoneNumber string `json:"patient_phone_number"`
}
