package models

import "time"

type Triage struct {
	TriageID     int       `json:"triage_id"`
	PatientID    string    `json:"patient_id"`
	Diabetic     bool      `json:"diabetic"`
	Hypertensive bool      `json:"hypertensive"`
	Obese        bool      `json:"obese"`
	HasFever     bool      `json:"has_fever"`
	Temperature  *float64  `json:"temperature"`
	HasPain      bool      `json:"has_pain"`
	PainLocation *string   `json:"pain_location"`
	Weight       float64   `json:"weight"`
	Age          int       `json:"age"`
	Score        int       `json:"score"`
	Severity     string    `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
}

type TriageRequest struct {
	Diabetic     bool    `json:"diabetic"`
	Hypertensive bool    `json:"hypertensive"`
	Obese        bool    `json:"obese"`
	HasFever     bool    `json:"has_fever"`
	Temperature  float64 `json:"temperature"`
	HasPain      bool    `json:"has_pain"`
	PainLocation string  `json:"pain_location"`
	Weight       float64 `json:"weight"`
	Age          int     `json:"age"`
}

// TriageWithPatient is the flattened admin listing row: the triage plus
// the owning patient summary and, when one exists, the linked appointment id.
type TriageWithPatient struct {
	Triage
	PatientName        string `json:"patient_name"`
	PatientEmail       string `json:"patient_email"`
	PatientPhoneNumber string `json:"patient_phone_number"`
	AppointmentID      *int   `json:"appointment_id"`
}
