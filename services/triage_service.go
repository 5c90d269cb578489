package services

import (
	"context"
	"log"
	"net/http"

	"meditriage_back_end_go/auth"
	"meditriage_back_end_go/models"
	"meditriage_back_end_go/scoring"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func triageInput(req models.TriageRequest) scoring.Input {
	return scoring.Input{
		Diabetic:     req.Diabetic,
		Hypertensive: req.Hypertensive,
		Obese:        req.Obese,
		HasFever:     req.HasFever,
		Temperature:  req.Temperature,
		HasPain:      req.HasPain,
		PainLocation: req.PainLocation,
		Weight:       req.Weight,
		Age:          req.Age,
	}
}

// gatedFields returns the persistable temperature and pain location.
// Values submitted with their gating flag off are dropped, never stored.
func gatedFields(req models.TriageRequest) (*float64, *string) {
	var temperature *float64
	var painLocation *string
	if req.HasFever {
		t := req.Temperature
		temperature = &t
	}
	if req.HasPain {
		l := req.PainLocation
		painLocation = &l
	}
	return temperature, painLocation
}

// CreateTriage scores a submission and persists it for the logged-in patient.
func CreateTriage(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	var req models.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format", "error": err.Error()})
		return
	}

	in := triageInput(req)
	if err := scoring.Validate(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	score, severity := scoring.Evaluate(in)
	temperature, painLocation := gatedFields(req)

	triage := models.Triage{
		PatientID:    claims.ID,
		Diabetic:     req.Diabetic,
		Hypertensive: req.Hypertensive,
		Obese:        req.Obese,
		HasFever:     req.HasFever,
		Temperature:  temperature,
		HasPain:      req.HasPain,
		PainLocation: painLocation,
		Weight:       req.Weight,
		Age:          req.Age,
		Score:        score,
		Severity:     string(severity),
	}

	err := pool.QueryRow(context.Background(), `
	INSERT INTO triages (
		patient_id,
		diabetic,
		hypertensive,
		obese,
		has_fever,
		temperature,
		has_pain,
		pain_location,
		weight,
		age,
		score,
		severity
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING triage_id, created_at`,
		triage.PatientID,
		triage.Diabetic,
		triage.Hypertensive,
		triage.Obese,
		triage.HasFever,
		triage.Temperature,
		triage.HasPain,
		triage.PainLocation,
		triage.Weight,
		triage.Age,
		triage.Score,
		triage.Severity,
	).Scan(&triage.TriageID, &triage.CreatedAt)
	if err != nil {
		log.Println("Insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Triage registered successfully",
		"score":    triage.Score,
		"severity": triage.Severity,
		"triage":   triage,
	})
}

// GetMyTriages lists the logged-in patient's submissions, newest first.
func GetMyTriages(c *gin.Context, pool *pgxpool.Pool) {
	claims := auth.CurrentClaims(c)

	rows, err := pool.Query(context.Background(), `
	SELECT triage_id, patient_id, diabetic, hypertensive, obese, has_fever, temperature,
	       has_pain, pain_location, weight, age, score, severity, created_at
	FROM triages
	WHERE patient_id = $1
	ORDER BY created_at DESC`, claims.ID)
	if err != nil {
		log.Println("Query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	triages := []models.Triage{}
	for rows.Next() {
		var t models.Triage
		err := rows.Scan(&t.TriageID, &t.PatientID, &t.Diabetic, &t.Hypertensive, &t.Obese,
			&t.HasFever, &t.Temperature, &t.HasPain, &t.PainLocation, &t.Weight, &t.Age,
			&t.Score, &t.Severity, &t.CreatedAt)
		if err != nil {
			log.Println("Row scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		triages = append(triages, t)
	}

	c.JSON(http.StatusOK, triages)
}

// GetAllTriages lists every submission with the owning patient summary and
// the linked appointment id when one has been scheduled. Admin only.
func GetAllTriages(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(), `
	SELECT triages.triage_id, triages.patient_id, triages.diabetic, triages.hypertensive,
	       triages.obese, triages.has_fever, triages.temperature, triages.has_pain,
	       triages.pain_location, triages.weight, triages.age, triages.score,
	       triages.severity, triages.created_at,
	       patients.name, patients.email, patients.phone_number,
	       appointments.appointment_id
	FROM triages
	JOIN patients ON triages.patient_id = patients.patient_id
	LEFT JOIN appointments ON appointments.triage_id = triages.triage_id
	ORDER BY triages.created_at DESC`)
	if err != nil {
		log.Println("Query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	triages := []models.TriageWithPatient{}
	for rows.Next() {
		var t models.TriageWithPatient
		err := rows.Scan(&t.TriageID, &t.PatientID, &t.Diabetic, &t.Hypertensive, &t.Obese,
			&t.HasFever, &t.Temperature, &t.HasPain, &t.PainLocation, &t.Weight, &t.Age,
			&t.Score, &t.Severity, &t.CreatedAt,
			&t.PatientName, &t.PatientEmail, &t.PatientPhoneNumber, &t.AppointmentID)
		if err != nil {
			log.Println("Row scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		triages = append(triages, t)
	}

	c.JSON(http.StatusOK, triages)
}
