package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"ana.silva@clinic.example.org",
		"a+tag@example.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"ana",
		"ana@",
		"@example.com",
		"ana@example",
		"ana silva@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestGenerateResetTokenIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := GenerateResetToken()
		assert.NotEmpty(t, token)
		assert.False(t, seen[token], "token generated twice")
		seen[token] = true
	}
}

func TestBuildResetLink(t *testing.T) {
	t.Setenv("RESET_URL_BASE", "https://app.example.com")
	link := BuildResetLink("abc123")
	assert.Equal(t, "https://app.example.com/reset-password?token=abc123", link)
	assert.True(t, strings.HasPrefix(link, "https://"))
}
