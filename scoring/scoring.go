package scoring

import "errors"

// Severity is the triage classification derived from the score.
type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeveritySevere   Severity = "Severe"
	SeverityCritical Severity = "Critical"
)

// Input holds one triage submission. Temperature is only meaningful when
// HasFever is set, PainLocation only when HasPain is set.
type Input struct {
	Diabetic     bool
	Hypertensive bool
	Obese        bool
	HasFever     bool
	Temperature  float64
	HasPain      bool
	PainLocation string
	Weight       float64
	Age          int
}

var (
	ErrTemperatureRequired  = errors.New("temperature is required when fever is reported")
	ErrPainLocationRequired = errors.New("pain location is required when pain is reported")
	ErrInvalidWeight        = errors.New("weight must be a positive number")
	ErrInvalidAge           = errors.New("age must be a positive number")
)

// Validate enforces the preconditions of Score. Score itself never fails,
// so callers must validate first.
func Validate(in Input) error {
	if in.HasFever && in.Temperature <= 0 {
		return ErrTemperatureRequired
	}
	if in.HasPain && in.PainLocation == "" {
		return ErrPainLocationRequired
	}
	if in.Weight <= 0 {
		return ErrInvalidWeight
	}
	if in.Age <= 0 {
		return ErrInvalidAge
	}
	return nil
}

// Score sums the fixed risk weights for a submission.
func Score(in Input) int {
	score := 0

	if in.Diabetic {
		score += 2
	}
	if in.Hypertensive {
		score += 2
	}
	if in.Obese {
		score++
	}

	if in.HasFever {
		switch {
		case in.Temperature >= 39:
			score += 3
		case in.Temperature >= 38:
			score += 2
		default:
			// any fever below 38 still counts
			score++
		}
	}

	if in.HasPain {
		score += 2
	}

	// ages 12 to 65 inclusive get no adjustment
	if in.Age > 65 {
		score += 2
	} else if in.Age < 12 {
		score++
	}

	return score
}

// Classify maps a score to its severity band.
func Classify(score int) Severity {
	switch {
	case score >= 7:
		return SeverityCritical
	case score >= 4:
		return SeveritySevere
	default:
		return SeverityMild
	}
}

// Evaluate runs Score and Classify in one step.
func Evaluate(in Input) (int, Severity) {
	score := Score(in)
	return score, Classify(score)
}
