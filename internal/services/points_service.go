package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvalidPointAmount  = errors.New("point amount must be a positive number")
	ErrMissingReason       = errors.New("a reason is required")
	ErrTransactionNotFound = errors.New("point transaction not found")
)

const pointsCacheKey = "points:total"

// PointsSummary is the current total together with the full history,
// newest first.
type PointsSummary struct {
	TotalPoints  int
	Transactions []models.PointTransaction
}

// GetTotalPoints returns the running total, 0 when no account row exists
// yet. Reads go through the redis cache when one is configured.
func GetTotalPoints() (int, error) {
	if database.RedisClient != nil {
		if val, err := database.RedisClient.Get(database.Ctx, pointsCacheKey).Int(); err == nil {
			return val, nil
		}
	}

	total, err := currentPoints(database.DB)
	if err != nil {
		return 0, err
	}

	if database.RedisClient != nil {
		database.RedisClient.Set(database.Ctx, pointsCacheKey, total, time.Hour)
	}
	return total, nil
}

func GetPoints() (*PointsSummary, error) {
	total, err := GetTotalPoints()
	if err != nil {
		return nil, err
	}

	var transactions []models.PointTransaction
	// id breaks ties for rows written within the same millisecond
	if err := database.DB.Order("timestamp desc, id desc").Find(&transactions).Error; err != nil {
		return nil, err
	}

	return &PointsSummary{TotalPoints: total, Transactions: transactions}, nil
}

func AddPoints(amount int, reason string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidPointAmount
	}
	if strings.TrimSpace(reason) == "" {
		return 0, ErrMissingReason
	}
	return applyPointsDelta(models.PointTransactionAdd, amount, reason)
}

// RemovePoints subtracts the magnitude of amount. The total is NOT clamped
// at zero: negative totals are the debt state that payback tasks repay.
func RemovePoints(amount int, reason string) (int, error) {
	magnitude := amount
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude == 0 {
		return 0, ErrInvalidPointAmount
	}
	if strings.TrimSpace(reason) == "" {
		return 0, ErrMissingReason
	}
	return applyPointsDelta(models.PointTransactionRemove, magnitude, reason)
}

// SetPoints overwrites the total without recording any history row. Used
// for manual admin corrections; this intentionally lets the history and the
// total diverge.
func SetPoints(newTotal int) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.PointsAccount
		err := tx.Order("created_at desc").First(&account).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.PointsAccount{TotalPoints: newTotal}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&account).Update("total_points", newTotal).Error
	})
	if err != nil {
		return err
	}
	invalidatePointsCache()
	return nil
}

// DeleteTransaction removes a history row only; the running total keeps its
// value.
func DeleteTransaction(id uint) error {
	result := database.DB.Delete(&models.PointTransaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// currentPoints reads the singleton total inside tx, 0 when absent.
func currentPoints(tx *gorm.DB) (int, error) {
	var account models.PointsAccount
	err := tx.Order("created_at desc").First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return account.TotalPoints, nil
}

// adjustPoints applies a signed delta to the singleton account inside tx,
// creating the row on first write, and returns the new total.
func adjustPoints(tx *gorm.DB, delta int) (int, error) {
	var account models.PointsAccount
	err := tx.Order("created_at desc").First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = models.PointsAccount{TotalPoints: delta}
		if err := tx.Create(&account).Error; err != nil {
			return 0, err
		}
		return account.TotalPoints, nil
	}
	if err != nil {
		return 0, err
	}
	account.TotalPoints += delta
	if err := tx.Model(&account).Update("total_points", account.TotalPoints).Error; err != nil {
		return 0, err
	}
	return account.TotalPoints, nil
}

// recordPointTransaction appends a history row inside tx. amount is a
// magnitude; the sign convention lives in the type column.
func recordPointTransaction(tx *gorm.DB, txType models.PointTransactionType, amount int, reason string) error {
	record := models.PointTransaction{
		Type:      txType,
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now().UnixMilli(),
	}
	return tx.Create(&record).Error
}

func applyPointsDelta(txType models.PointTransactionType, amount int, reason string) (int, error) {
	delta := amount
	if txType == models.PointTransactionRemove {
		delta = -amount
	}

	var newTotal int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		total, err := adjustPoints(tx, delta)
		if err != nil {
			return err
		}
		newTotal = total
		return recordPointTransaction(tx, txType, amount, reason)
	})
	if err != nil {
		return 0, err
	}
	invalidatePointsCache()
	return newTotal, nil
}

func invalidatePointsCache() {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, pointsCacheKey)
	}
}
