package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

const wheelCooldownDays = 7

var ErrWheelCooldown = errors.New("the wheel can only be used once a week")

// wheelSegments maps outcomes to percentage weights; weights sum to 100.
var wheelSegments = []struct {
	Outcome int
	Weight  float64
}{
	{1, 40},
	{5, 30},
	{10, 20},
	{-1, 10},
}

type WheelStatus struct {
	CanUse           bool
	LastUsed         *time.Time
	DaysSinceLastUse int
	DaysUntilNextUse int
}

type SpinResult struct {
	Outcome          int
	TotalPoints      int
	Message          string
	DaysUntilNextUse int
}

func GetWheelStatus(now time.Time) (*WheelStatus, error) {
	var wheel models.WheelOfFortune
	err := database.DB.Order("last_used desc").First(&wheel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &WheelStatus{CanUse: true}, nil
	}
	if err != nil {
		return nil, err
	}

	days := DaysBetween(wheel.LastUsed, now)
	status := &WheelStatus{
		LastUsed:         &wheel.LastUsed,
		DaysSinceLastUse: days,
		CanUse:           days >= wheelCooldownDays,
	}
	if !status.CanUse {
		status.DaysUntilNextUse = wheelCooldownDays - days
	}
	return status, nil
}

// SpinWheel draws a weighted outcome and applies it to the points ledger.
// At most one spin per rolling 7-day window.
func SpinWheel(now time.Time) (*SpinResult, error) {
	return spinWheel(now, rand.Float64()*100)
}

func spinWheel(now time.Time, roll float64) (*SpinResult, error) {
	status, err := GetWheelStatus(now)
	if err != nil {
		return nil, err
	}
	if !status.CanUse {
		return &SpinResult{DaysUntilNextUse: status.DaysUntilNextUse}, ErrWheelCooldown
	}

	outcome := drawOutcome(roll)
	result := &SpinResult{Outcome: outcome}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var wheel models.WheelOfFortune
		err := tx.Order("last_used desc").First(&wheel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&models.WheelOfFortune{LastUsed: now}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else if err := tx.Model(&wheel).Update("last_used", now).Error; err != nil {
			return err
		}

		total, err := adjustPoints(tx, outcome)
		if err != nil {
			return err
		}
		result.TotalPoints = total

		txType := models.PointTransactionAdd
		magnitude := outcome
		sign := "+"
		if outcome < 0 {
			txType = models.PointTransactionRemove
			magnitude = -outcome
			sign = ""
		}
		reason := fmt.Sprintf("Roue de la chance : %s%d point%s", sign, outcome, plural(magnitude))
		return recordPointTransaction(tx, txType, magnitude, reason)
	})
	if err != nil {
		return nil, err
	}
	invalidatePointsCache()

	if outcome > 0 {
		result.Message = fmt.Sprintf("🎉 Tu as gagné %d point%s !", outcome, plural(outcome))
	} else {
		result.Message = "😢 Tu as perdu 1 point..."
	}
	return result, nil
}

// drawOutcome resolves a uniform roll in [0,100) against the cumulative
// segment weights, first match wins.
func drawOutcome(roll float64) int {
	cumulative := 0.0
	for _, segment := range wheelSegments {
		cumulative += segment.Weight
		if roll < cumulative {
			return segment.Outcome
		}
	}
	return wheelSegments[len(wheelSegments)-1].Outcome
}

// ResetWheel clears the cooldown marker, making the wheel immediately
// available again.
func ResetWheel() error {
	return database.DB.Where("1 = 1").Delete(&models.WheelOfFortune{}).Error
}
