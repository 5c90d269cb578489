package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseInput() Input {
	return Input{Weight: 70, Age: 30}
}

func TestScoreWeights(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Input)
		expected int
	}{
		{"no risk factors", func(in *Input) {}, 0},
		{"diabetic", func(in *Input) { in.Diabetic = true }, 2},
		{"hypertensive", func(in *Input) { in.Hypertensive = true }, 2},
		{"obese", func(in *Input) { in.Obese = true }, 1},
		{"low fever", func(in *Input) { in.HasFever = true; in.Temperature = 37.5 }, 1},
		{"moderate fever at 38", func(in *Input) { in.HasFever = true; in.Temperature = 38 }, 2},
		{"moderate fever below 39", func(in *Input) { in.HasFever = true; in.Temperature = 38.9 }, 2},
		{"high fever at 39", func(in *Input) { in.HasFever = true; in.Temperature = 39 }, 3},
		{"high fever above 39", func(in *Input) { in.HasFever = true; in.Temperature = 40.2 }, 3},
		{"pain", func(in *Input) { in.HasPain = true; in.PainLocation = "chest" }, 2},
		{"elderly", func(in *Input) { in.Age = 70 }, 2},
		{"child", func(in *Input) { in.Age = 5 }, 1},
		{"diabetic and hypertensive", func(in *Input) { in.Diabetic = true; in.Hypertensive = true }, 4},
		{"everything at once", func(in *Input) {
			in.Diabetic = true
			in.Hypertensive = true
			in.Obese = true
			in.HasFever = true
			in.Temperature = 39.5
			in.HasPain = true
			in.PainLocation = "head"
			in.Age = 80
		}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.modify(&in)
			assert.Equal(t, tt.expected, Score(in))
		})
	}
}

func TestAgeBoundariesAreStrict(t *testing.T) {
	in := baseInput()

	in.Age = 65
	assert.Equal(t, 0, Score(in), "age 65 gets no adjustment")

	in.Age = 66
	assert.Equal(t, 2, Score(in), "age 66 gets the elderly adjustment")

	in.Age = 12
	assert.Equal(t, 0, Score(in), "age 12 gets no adjustment")

	in.Age = 11
	assert.Equal(t, 1, Score(in), "age 11 gets the child adjustment")
}

func TestClassifyBoundaries(t *testing.T) {
	assert.Equal(t, SeverityMild, Classify(0))
	assert.Equal(t, SeverityMild, Classify(3))
	assert.Equal(t, SeveritySevere, Classify(4))
	assert.Equal(t, SeveritySevere, Classify(6))
	assert.Equal(t, SeverityCritical, Classify(7))
	assert.Equal(t, SeverityCritical, Classify(12))
}

func TestEvaluateSpecCases(t *testing.T) {
	// diabetic + hypertensive lands exactly on the Severe boundary
	in := baseInput()
	in.Diabetic = true
	in.Hypertensive = true
	score, severity := Evaluate(in)
	assert.Equal(t, 4, score)
	assert.Equal(t, SeveritySevere, severity)

	// a high fever alone stays just under Severe
	in = baseInput()
	in.HasFever = true
	in.Temperature = 39.5
	score, severity = Evaluate(in)
	assert.Equal(t, 3, score)
	assert.Equal(t, SeverityMild, severity)

	// high fever, pain and old age reach Critical
	in.HasPain = true
	in.PainLocation = "abdomen"
	in.Age = 70
	score, severity = Evaluate(in)
	assert.Equal(t, 7, score)
	assert.Equal(t, SeverityCritical, severity)
}

func TestScoreIsDeterministic(t *testing.T) {
	in := Input{
		Diabetic:     true,
		HasFever:     true,
		Temperature:  38.4,
		HasPain:      true,
		PainLocation: "back",
		Weight:       82,
		Age:          44,
	}
	first := Score(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(in))
	}
}

func TestValidate(t *testing.T) {
	in := baseInput()
	assert.NoError(t, Validate(in))

	in = baseInput()
	in.HasFever = true
	assert.ErrorIs(t, Validate(in), ErrTemperatureRequired)

	in = baseInput()
	in.HasPain = true
	assert.ErrorIs(t, Validate(in), ErrPainLocationRequired)

	in = baseInput()
	in.Weight = 0
	assert.ErrorIs(t, Validate(in), ErrInvalidWeight)

	in = baseInput()
	in.Age = -3
	assert.ErrorIs(t, Validate(in), ErrInvalidAge)
}
