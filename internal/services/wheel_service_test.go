package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrawOutcomeBoundaries(t *testing.T) {
	tests := []struct {
		roll     float64
		expected int
	}{
		{0, 1},
		{39.9, 1},
		{40, 5},
		{69.9, 5},
		{70, 10},
		{89.9, 10},
		{90, -1},
		{99.9, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, drawOutcome(tt.roll), "roll %.1f", tt.roll)
	}
}

func TestDrawOutcomeDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := map[int]int{}
	const spins = 100000
	for i := 0; i < spins; i++ {
		counts[drawOutcome(rng.Float64()*100)]++
	}
	assert.InDelta(t, 0.40, float64(counts[1])/spins, 0.01)
	assert.InDelta(t, 0.30, float64(counts[5])/spins, 0.01)
	assert.InDelta(t, 0.20, float64(counts[10])/spins, 0.01)
	assert.InDelta(t, 0.10, float64(counts[-1])/spins, 0.01)
}

func TestSpinWheelWin(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

	result, err := spinWheel(now, 50) // lands on +5
	assert.NoError(t, err)
	assert.Equal(t, 5, result.Outcome)
	assert.Equal(t, 5, result.TotalPoints)
	assert.Equal(t, "🎉 Tu as gagné 5 points !", result.Message)

	summary, err := GetPoints()
	assert.NoError(t, err)
	assert.Len(t, summary.Transactions, 1)
	assert.Equal(t, "Roue de la chance : +5 points", summary.Transactions[0].Reason)

	status, err := GetWheelStatus(now)
	assert.NoError(t, err)
	assert.False(t, status.CanUse)
	assert.Equal(t, 7, status.DaysUntilNextUse)
}

func TestSpinWheelLoss(t *testing.T) {
	setupTestDB(t)
	now := time.Now()

	result, err := spinWheel(now, 95) // lands on -1
	assert.NoError(t, err)
	assert.Equal(t, -1, result.Outcome)
	assert.Equal(t, -1, result.TotalPoints)
	assert.Equal(t, "😢 Tu as perdu 1 point...", result.Message)

	summary, err := GetPoints()
	assert.NoError(t, err)
	assert.Len(t, summary.Transactions, 1)
	assert.Equal(t, "Roue de la chance : -1 point", summary.Transactions[0].Reason)
}

func TestSpinWheelCooldown(t *testing.T) {
	setupTestDB(t)
	start := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

	_, err := spinWheel(start, 10)
	assert.NoError(t, err)

	// Three days in, still four to wait.
	result, err := spinWheel(start.AddDate(0, 0, 3), 10)
	assert.ErrorIs(t, err, ErrWheelCooldown)
	assert.Equal(t, 4, result.DaysUntilNextUse)

	// Day seven reopens the wheel.
	_, err = spinWheel(start.AddDate(0, 0, 7), 10)
	assert.NoError(t, err)
}

func TestResetWheel(t *testing.T) {
	setupTestDB(t)
	now := time.Now()

	_, err := spinWheel(now, 10)
	assert.NoError(t, err)

	assert.NoError(t, ResetWheel())

	status, err := GetWheelStatus(now)
	assert.NoError(t, err)
	assert.True(t, status.CanUse)
	assert.Nil(t, status.LastUsed)
}
