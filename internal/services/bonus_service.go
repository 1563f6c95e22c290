package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type DailyBonusResult struct {
	AlreadyChecked bool
	BonusAwarded   bool
	Amount         int
	Days           int
	Message        string
}

// CheckDailyBonus awards one point per past day that has no point
// transaction at all, backfilling gaps since the last checked day. It is
// idempotent within a calendar day and safe to call from both page loads
// and the cron scheduler.
func CheckDailyBonus(now time.Time) (*DailyBonusResult, error) {
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	var todayRecord models.DailyBonus
	err := database.DB.Where("date = ?", today).First(&todayRecord).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && todayRecord.Checked {
		return &DailyBonusResult{
			AlreadyChecked: true,
			Message:        "Bonus quotidien déjà attribué aujourd'hui",
		}, nil
	}

	result := &DailyBonusResult{}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		yesterdayCount, err := countPointTransactions(tx, yesterday, today)
		if err != nil {
			return err
		}

		// A transaction yesterday means the parent was engaged; no
		// backfill walk happens at all, matching the original gating.
		if yesterdayCount == 0 {
			scanned, missed, err := missedDaysSince(tx, today, yesterday)
			if err != nil {
				return err
			}

			if len(missed) > 0 {
				bonus := len(missed)
				if _, err := adjustPoints(tx, bonus); err != nil {
					return err
				}
				if err := recordPointTransaction(tx, models.PointTransactionAdd, bonus, bonusReason(bonus)); err != nil {
					return err
				}
				result.BonusAwarded = true
				result.Amount = bonus
				result.Days = bonus
				result.Message = fmt.Sprintf("Bonus de %d point%s attribué !", bonus, plural(bonus))
			}

			for _, day := range scanned {
				if err := markDayChecked(tx, day); err != nil {
					return err
				}
			}
		}

		return markDayChecked(tx, today)
	})
	if err != nil {
		return nil, err
	}

	if result.BonusAwarded {
		invalidatePointsCache()
	} else if result.Message == "" {
		result.Message = "Aucun bonus à attribuer (transaction hier)"
	}
	return result, nil
}

// missedDaysSince walks from the day after the last checked record (or
// just yesterday when there is none) up to yesterday. It returns every
// scanned day and the subset with zero point transactions.
func missedDaysSince(tx *gorm.DB, today, yesterday time.Time) (scanned, missed []time.Time, err error) {
	var lastChecked models.DailyBonus
	err = tx.Where("checked = ?", true).Order("date desc").First(&lastChecked).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []time.Time{yesterday}, []time.Time{yesterday}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	for day := startOfDay(lastChecked.Date).AddDate(0, 0, 1); day.Before(today); day = day.AddDate(0, 0, 1) {
		scanned = append(scanned, day)
		count, err := countPointTransactions(tx, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, nil, err
		}
		if count == 0 {
			missed = append(missed, day)
		}
	}
	return scanned, missed, nil
}

func countPointTransactions(tx *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := tx.Model(&models.PointTransaction{}).
		Where("timestamp >= ? AND timestamp < ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error
	return count, err
}

func markDayChecked(tx *gorm.DB, day time.Time) error {
	var record models.DailyBonus
	err := tx.Where("date = ?", day).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.DailyBonus{Date: day, Checked: true}).Error
	}
	if err != nil {
		return err
	}
	if record.Checked {
		return nil
	}
	return tx.Model(&record).Update("checked", true).Error
}

func bonusReason(amount int) string {
	if amount > 1 {
		return "Points bonus quotidien (jours sans transaction)"
	}
	return "Point bonus quotidien"
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
