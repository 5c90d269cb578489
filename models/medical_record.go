package models

import "time"

type MedicalRecord struct {
	RecordID      int       `json:"record_id"`
	AppointmentID int       `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	AdminID       string    `json:"admin_id"`
	Diagnosis     string    `json:"diagnosis"`
	Conclusion    string    `json:"conclusion"`
	CreatedAt     time.Time `json:"created_at"`
}

type MedicalRecordRequest struct {
	AppointmentID int    `json:"appointment_id" binding:"required"`
	Diagnosis     string `json:"diagnosis" binding:"required"`
	Conclusion    string `json:"conclusion" binding:"required"`
}

// MedicalRecordDetail flattens the record with its appointment and the
// severity of the triage that led to it.
type MedicalRecordDetail struct {
	MedicalRecord
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Specialty       string `json:"specialty"`
	Physician       string `json:"physician"`
	TriageSeverity  string `json:"triage_severity"`
	PatientName     string `json:"patient_name"`
	PatientEmail    string `json:"patient_email"`
}
