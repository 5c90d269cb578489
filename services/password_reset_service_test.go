package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokenTTLIsOneHour(t *testing.T) {
	assert.Equal(t, time.Hour, resetTokenTTL)
}

func TestResetTokenExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issued := now.Add(resetTokenTTL)

	assert.False(t, resetTokenExpired(issued, now), "fresh token is valid")
	assert.False(t, resetTokenExpired(issued, issued), "token is valid up to the expiry instant")
	assert.True(t, resetTokenExpired(issued, issued.Add(time.Second)), "token expires after the window")
	assert.True(t, resetTokenExpired(issued, now.Add(2*time.Hour)))
}
