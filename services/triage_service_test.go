package services

import (
	"testing"

	"meditriage_back_end_go/models"
	"meditriage_back_end_go/scoring"

	"github.com/stretchr/testify/assert"
)

func TestTriageInputMapsEveryField(t *testing.T) {
	req := models.TriageRequest{
		Diabetic:     true,
		Hypertensive: true,
		Obese:        true,
		HasFever:     true,
		Temperature:  38.7,
		HasPain:      true,
		PainLocation: "chest",
		Weight:       81.5,
		Age:          47,
	}

	in := triageInput(req)
	assert.Equal(t, scoring.Input{
		Diabetic:     true,
		Hypertensive: true,
		Obese:        true,
		HasFever:     true,
		Temperature:  38.7,
		HasPain:      true,
		PainLocation: "chest",
		Weight:       81.5,
		Age:          47,
	}, in)
}

func TestGatedFieldsDroppedWhenFlagsOff(t *testing.T) {
	// stale values submitted without their gating flag must not survive
	req := models.TriageRequest{
		HasFever:     false,
		Temperature:  39.2,
		HasPain:      false,
		PainLocation: "back",
		Weight:       70,
		Age:          30,
	}

	temperature, painLocation := gatedFields(req)
	assert.Nil(t, temperature)
	assert.Nil(t, painLocation)
}

func TestGatedFieldsKeptWhenFlagsOn(t *testing.T) {
	req := models.TriageRequest{
		HasFever:     true,
		Temperature:  38.2,
		HasPain:      true,
		PainLocation: "head",
		Weight:       70,
		Age:          30,
	}

	temperature, painLocation := gatedFields(req)
	if assert.NotNil(t, temperature) {
		assert.Equal(t, 38.2, *temperature)
	}
	if assert.NotNil(t, painLocation) {
		assert.Equal(t, "head", *painLocation)
	}
}

func TestGatedFieldsMixed(t *testing.T) {
	req := models.TriageRequest{
		HasFever:     true,
		Temperature:  37.6,
		HasPain:      false,
		PainLocation: "leg",
		Weight:       70,
		Age:          30,
	}

	temperature, painLocation := gatedFields(req)
	assert.NotNil(t, temperature)
	assert.Nil(t, painLocation)
}
